package database

// Getting tables out of SQL databases. Any of the drivers below can be named in a call to
// load_sql, either by the name people know the database by or by the name of the driver.

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"fortio.org/log"

	"minilang/source/table"

	// SQL drivers

	_ "github.com/go-sql-driver/mysql"  // MariaDB & MySQL
	_ "github.com/lib/pq"               // Postgres
	_ "github.com/microsoft/go-mssqldb" // SQL Server
	_ "github.com/nakagami/firebirdsql" // Firebird
	_ "github.com/sijms/go-ora"         // Oracle
	_ "modernc.org/sqlite"              // SQLite
)

// List of SQL drivers for when I want to import more: https://zchee.github.io/golang-wiki/SQLDrivers/

var (
	drivers = map[string]string{"Firebird SQL": "firebirdsql", "MariaDB": "mysql", "MySQL": "mysql",
		"Oracle": "oracle", "Postgres": "postgres", "SQL Server": "sqlserver", "SQLite": "sqlite"}
)

// Finds the driver for a database, ignoring case. Driver names are accepted as themselves.
func DriverName(name string) (string, error) {
	for k, v := range drivers {
		if strings.EqualFold(k, name) || strings.EqualFold(v, name) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown SQL driver %q. %s", name, GetDriverOptions())
}

func GetdB(driver, dsn string) (*sql.DB, error) {
	driverName, err := DriverName(driver)
	if err != nil {
		return nil, err
	}
	sqlObj, connectionError := sql.Open(driverName, dsn)
	if connectionError != nil {
		return nil, connectionError
	}
	err = sqlObj.Ping()
	if err != nil {
		sqlObj.Close()
		return nil, err
	}
	log.Infof("connected to %s database", driverName)
	return sqlObj, nil
}

func GetDriverOptions() string {
	return "The following SQL drivers are available: " + strings.Join(GetSortedDrivers(), ", ") + "."
}

func GetSortedDrivers() []string {
	dr := []string{}
	for k := range drivers {
		dr = append(dr, k)
	}
	sort.Strings(dr)
	return dr
}

// Connects, runs the query, and disconnects.
func Query(driver, dsn, query string, args ...any) (*table.Table, error) {
	db, err := GetdB(driver, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return QueryTable(db, query, args...)
}

// Turns the result set of a query into a table. Columns that the driver hands back as raw
// bytes are treated like the text of a CSV file and may turn out to be numbers.
func QueryTable(db *sql.DB, query string, args ...any) (*table.Table, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	result := table.New(columns...)
	raw := make([]bool, len(columns))
	for rows.Next() {
		cells := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range cells {
			pointers[i] = &cells[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		row := make([]table.Cell, len(columns))
		for i, c := range cells {
			var isRaw bool
			row[i], isRaw = toCell(c)
			raw[i] = raw[i] || isRaw
		}
		result.Append(row...)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, isRaw := range raw {
		if isRaw {
			result.InferColumn(i)
		}
	}
	return result, nil
}

func toCell(c any) (table.Cell, bool) {
	switch c := c.(type) {
	case nil:
		return nil, false
	case []byte:
		return string(c), true
	case string:
		return c, false
	case int64:
		return c, false
	case int32:
		return int64(c), false
	case int:
		return int64(c), false
	case float64:
		return c, false
	case float32:
		return float64(c), false
	case bool:
		return c, false
	case time.Time:
		return c.Format(time.RFC3339), false
	}
	return fmt.Sprint(c), false
}
