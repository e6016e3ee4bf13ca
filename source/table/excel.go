package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const DefaultSheet = "Sheet1"

// Reads a worksheet whose first row is the header. If sheet is empty, the first worksheet
// in the workbook is read.
func ReadExcel(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s has no worksheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q of %s has no header row", sheet, path)
	}
	return FromStrings(headerNames(rows[0]), rows[1:]), nil
}

func WriteExcel(t *Table, path, sheet string) error {
	f := excelize.NewFile()
	defer f.Close()
	if sheet == "" {
		sheet = DefaultSheet
	}
	if sheet != DefaultSheet {
		if err := f.SetSheetName(DefaultSheet, sheet); err != nil {
			return err
		}
	}
	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		copy(values, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
