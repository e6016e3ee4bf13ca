package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Reads a CSV file whose first record is the header.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}

func ParseCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	return FromStrings(headerNames(records[0]), records[1:]), nil
}

func WriteCSV(t *Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(t.Strings()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Blank column names are filled in the way spreadsheets users will recognize.
func headerNames(header []string) []string {
	result := make([]string, len(header))
	for i, name := range header {
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		result[i] = name
	}
	return result
}
