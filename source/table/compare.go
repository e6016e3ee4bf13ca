package table

import (
	"strings"
)

// Orders cells for sorting group keys: numbers first in numeric order, then booleans, then
// text, with missing cells last.
func compareCells(a, b Cell) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra - rb
	}
	switch a := a.(type) {
	case int64, float64:
		x, _ := toFloat(a)
		y, _ := toFloat(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	case bool:
		switch {
		case a == b.(bool):
			return 0
		case !a:
			return -1
		}
		return 1
	case string:
		return strings.Compare(a, b.(string))
	}
	return 0
}

func rank(c Cell) int {
	switch c.(type) {
	case int64, float64:
		return 0
	case bool:
		return 1
	case string:
		return 2
	}
	return 3
}

func compareKeys(a, b []Cell) int {
	for i := range a {
		if c := compareCells(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}
