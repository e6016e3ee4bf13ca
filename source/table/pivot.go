package table

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"minilang/source/set"
)

type PivotSpec struct {
	Index   []string // Required: the columns whose values label the rows of the result.
	Columns []string // Optional: the columns whose values label the columns of the result.
	Values  []string // Optional: the columns to aggregate. Defaults to every other numeric column.
	AggFunc string
}

var AggFuncs = []string{"count", "first", "last", "max", "mean", "median", "min", "std", "sum"}

// Groups the rows of the table by the index columns and the pivot columns, and aggregates
// each value column within each group. Rows of the result are sorted by their index values.
func (t *Table) Pivot(spec PivotSpec) (*Table, error) {
	if len(spec.Index) == 0 {
		return nil, fmt.Errorf("a pivot needs at least one index column")
	}
	if spec.AggFunc == "" {
		spec.AggFunc = "sum"
	}
	if !slices.Contains(AggFuncs, spec.AggFunc) {
		return nil, fmt.Errorf("unknown aggregation function %q, expected one of %s", spec.AggFunc, strings.Join(AggFuncs, ", "))
	}
	referenced := append(append(append([]string{}, spec.Index...), spec.Columns...), spec.Values...)
	if missing := t.Missing(referenced...); len(missing) > 0 {
		return nil, fmt.Errorf("column(s) not found: %s", strings.Join(missing, ", "))
	}
	values := spec.Values
	if len(values) == 0 {
		grouped := set.NewOrdered(spec.Index, spec.Columns)
		for _, c := range t.NumericColumns() {
			if !grouped.Contains(c) {
				values = append(values, c)
			}
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("no numeric columns left to aggregate")
		}
	}

	rowKeys, colKeys := newKeySet(), newKeySet()
	type cellKey struct{ row, col string }
	groups := map[cellKey][][]Cell{}
	for _, row := range t.Rows {
		rk := rowKeys.add(t.pick(row, spec.Index))
		ck := colKeys.add(t.pick(row, spec.Columns))
		key := cellKey{rk, ck}
		group, ok := groups[key]
		if !ok {
			group = make([][]Cell, len(values))
		}
		for i, v := range values {
			if c := row[t.ColumnIndex(v)]; c != nil {
				group[i] = append(group[i], c)
			}
		}
		groups[key] = group
	}
	rowKeys.sort()
	colKeys.sort()

	columns := append([]string{}, spec.Index...)
	for _, v := range values {
		for _, ck := range colKeys.order {
			columns = append(columns, pivotColumnName(v, colKeys.cells[ck], len(values), len(spec.Columns)))
		}
	}
	result := New(columns...)
	for _, rk := range rowKeys.order {
		row := append([]Cell{}, rowKeys.cells[rk]...)
		for i, v := range values {
			for _, ck := range colKeys.order {
				group, ok := groups[cellKey{rk, ck}]
				if !ok {
					row = append(row, nil)
					continue
				}
				agg, err := aggregate(spec.AggFunc, v, group[i])
				if err != nil {
					return nil, err
				}
				row = append(row, agg)
			}
		}
		result.Append(row...)
	}
	return result, nil
}

func (t *Table) pick(row []Cell, names []string) []Cell {
	result := make([]Cell, len(names))
	for i, name := range names {
		result[i] = row[t.ColumnIndex(name)]
	}
	return result
}

func pivotColumnName(value string, key []Cell, valueCount, pivotCount int) string {
	if pivotCount == 0 {
		return value
	}
	labels := make([]string, len(key))
	for i, c := range key {
		labels[i] = FormatCell(c, -1)
	}
	label := strings.Join(labels, "_")
	if valueCount == 1 {
		return label
	}
	return value + "_" + label
}

// The distinct group keys met so far, and the cells that make them up.
type keySet struct {
	order []string
	cells map[string][]Cell
}

func newKeySet() *keySet {
	return &keySet{cells: map[string][]Cell{}}
}

func (ks *keySet) add(cells []Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("%T:%v", c, c)
	}
	key := strings.Join(parts, "\x00")
	if _, ok := ks.cells[key]; !ok {
		ks.order = append(ks.order, key)
		ks.cells[key] = cells
	}
	return key
}

func (ks *keySet) sort() {
	sort.SliceStable(ks.order, func(i, j int) bool {
		return compareKeys(ks.cells[ks.order[i]], ks.cells[ks.order[j]]) < 0
	})
}

// Aggregates the non-missing cells of one group of one column.
func aggregate(aggFunc, column string, cells []Cell) (Cell, error) {
	switch aggFunc {
	case "count":
		return int64(len(cells)), nil
	case "first":
		if len(cells) == 0 {
			return nil, nil
		}
		return cells[0], nil
	case "last":
		if len(cells) == 0 {
			return nil, nil
		}
		return cells[len(cells)-1], nil
	case "min", "max":
		if len(cells) == 0 {
			return nil, nil
		}
		best := cells[0]
		for _, c := range cells[1:] {
			if rank(c) != rank(best) {
				return nil, fmt.Errorf("can't take the %s of column %q, which mixes numbers and text", aggFunc, column)
			}
			cmp := compareCells(c, best)
			if aggFunc == "min" && cmp < 0 || aggFunc == "max" && cmp > 0 {
				best = c
			}
		}
		return best, nil
	}
	xs, allInts, ok := numbers(cells)
	if !ok {
		return nil, fmt.Errorf("can't take the %s of column %q, which isn't numeric", aggFunc, column)
	}
	switch aggFunc {
	case "sum":
		if allInts {
			var total int64
			for _, c := range cells {
				total += c.(int64)
			}
			return total, nil
		}
		return floats.Sum(xs), nil
	case "mean":
		if len(xs) == 0 {
			return nil, nil
		}
		return stat.Mean(xs, nil), nil
	case "median":
		if len(xs) == 0 {
			return nil, nil
		}
		sort.Float64s(xs)
		return quantile(xs, 0.5), nil
	case "std":
		if len(xs) < 2 {
			return nil, nil
		}
		return stat.StdDev(xs, nil), nil
	}
	return nil, fmt.Errorf("unknown aggregation function %q", aggFunc)
}

func numbers(cells []Cell) ([]float64, bool, bool) {
	xs := make([]float64, 0, len(cells))
	allInts := true
	for _, c := range cells {
		x, ok := toFloat(c)
		if !ok {
			return nil, false, false
		}
		if _, isInt := c.(int64); !isInt {
			allInts = false
		}
		xs = append(xs, x)
	}
	return xs, allInts, true
}
