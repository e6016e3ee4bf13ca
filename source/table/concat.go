package table

import "minilang/source/set"

// Stacks tables on top of each other. The result has every column of every table, in the
// order they're first met; rows from a table without some column have missing cells there.
func Concat(tables ...*Table) *Table {
	union := set.NewOrdered[string]()
	for _, t := range tables {
		for _, c := range t.Columns {
			union.Add(c)
		}
	}
	columns := union.ToSlice()
	result := New(columns...)
	for _, t := range tables {
		positions := make([]int, len(t.Columns))
		for i, c := range t.Columns {
			positions[i] = result.ColumnIndex(c)
		}
		for _, row := range t.Rows {
			cells := make([]Cell, len(columns))
			for i, c := range row {
				cells[positions[i]] = c
			}
			result.Rows = append(result.Rows, cells)
		}
	}
	return result
}
