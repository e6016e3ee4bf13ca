// Package table holds the tabular data that the built-in data functions load, reshape and
// summarize. The rest of the interpreter treats a table as an opaque value.
package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// A cell is nil (missing), int64, float64, string or bool.
type Cell = any

type Table struct {
	Columns []string
	Rows    [][]Cell
}

func New(columns ...string) *Table {
	return &Table{Columns: columns, Rows: [][]Cell{}}
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// Appends a row, padding it with missing cells or trimming it to the width of the table.
func (t *Table) Append(row ...Cell) {
	cells := make([]Cell, len(t.Columns))
	copy(cells, row)
	t.Rows = append(t.Rows, cells)
}

func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func (t *Table) Column(name string) []Cell {
	i := t.ColumnIndex(name)
	if i < 0 {
		return nil
	}
	result := make([]Cell, len(t.Rows))
	for j, row := range t.Rows {
		result[j] = row[i]
	}
	return result
}

// Returns the names of any of the given columns the table doesn't have.
func (t *Table) Missing(names ...string) []string {
	result := []string{}
	for _, name := range names {
		if t.ColumnIndex(name) < 0 {
			result = append(result, name)
		}
	}
	return result
}

// A column is numeric if it has no cells other than numbers and missing ones.
func (t *Table) IsNumeric(name string) bool {
	for _, c := range t.Column(name) {
		switch c.(type) {
		case nil, int64, float64:
		default:
			return false
		}
	}
	return t.ColumnIndex(name) >= 0
}

func (t *Table) NumericColumns() []string {
	result := []string{}
	for _, c := range t.Columns {
		if t.IsNumeric(c) {
			result = append(result, c)
		}
	}
	return result
}

func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	result := New(t.Columns...)
	for _, row := range t.Rows[:n] {
		result.Append(row...)
	}
	return result
}

// Lays the table out as a grid. If maxRows is positive, only that many rows are shown.
func (t *Table) Render(maxRows, precision int) string {
	if len(t.Columns) == 0 {
		return "(empty table)"
	}
	tw := prettytable.NewWriter()
	header := prettytable.Row{}
	for _, c := range t.Columns {
		header = append(header, c)
	}
	tw.AppendHeader(header)
	shown := t.Rows
	if maxRows > 0 && len(shown) > maxRows {
		shown = shown[:maxRows]
	}
	for _, row := range shown {
		cells := prettytable.Row{}
		for _, c := range row {
			cells = append(cells, FormatCell(c, precision))
		}
		tw.AppendRow(cells)
	}
	configs := []prettytable.ColumnConfig{}
	for i, c := range t.Columns {
		if t.IsNumeric(c) {
			configs = append(configs, prettytable.ColumnConfig{Number: i + 1, Align: text.AlignRight})
		}
	}
	tw.SetColumnConfigs(configs)
	tw.SetStyle(prettytable.StyleDefault)
	tw.Style().Format.Header = text.FormatDefault
	result := tw.Render()
	if len(shown) < len(t.Rows) {
		result = result + fmt.Sprintf("\n[%d rows x %d columns, showing the first %d]", len(t.Rows), len(t.Columns), len(shown))
	}
	return result
}

func FormatCell(c Cell, precision int) string {
	switch c := c.(type) {
	case nil:
		return "NaN"
	case int64:
		return strconv.FormatInt(c, 10)
	case float64:
		if math.IsNaN(c) {
			return "NaN"
		}
		if math.IsInf(c, 0) {
			if c > 0 {
				return "inf"
			}
			return "-inf"
		}
		s := strconv.FormatFloat(c, 'f', precision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			if strings.HasSuffix(s, ".") {
				s = s + "0"
			}
		} else {
			s = s + ".0"
		}
		return s
	case string:
		return c
	case bool:
		if c {
			return "True"
		}
		return "False"
	}
	return fmt.Sprint(c)
}

// Turns raw text from a file into cells, one column at a time: a column of whole numbers
// becomes int64, a column of numbers becomes float64, and anything else stays as text.
// Empty fields are missing values whatever the column.
func FromStrings(columns []string, records [][]string) *Table {
	t := New(columns...)
	for _, record := range records {
		row := make([]Cell, len(columns))
		for i := range columns {
			if i < len(record) && record[i] != "" {
				row[i] = record[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	for i := range columns {
		t.InferColumn(i)
	}
	return t
}

// Converts the text cells of a column to numbers if they all look like numbers.
func (t *Table) InferColumn(i int) {
	allInts, allNumbers := true, true
	for _, row := range t.Rows {
		s, ok := row[i].(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			allInts = false
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				allNumbers = false
				break
			}
		}
	}
	if !allNumbers {
		return
	}
	for _, row := range t.Rows {
		s, ok := row[i].(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if allInts {
			row[i], _ = strconv.ParseInt(s, 10, 64)
		} else {
			row[i], _ = strconv.ParseFloat(s, 64)
		}
	}
}

// Returns the cells of the table as text, the inverse of FromStrings.
func (t *Table) Strings() [][]string {
	result := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make([]string, len(row))
		for i, c := range row {
			if c != nil {
				record[i] = FormatCell(c, -1)
			}
		}
		result = append(result, record)
	}
	return result
}

func toFloat(c Cell) (float64, bool) {
	switch c := c.(type) {
	case int64:
		return float64(c), true
	case float64:
		return c, true
	}
	return 0, false
}
