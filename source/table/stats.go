package table

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// The summary statistics Describe knows, in the order it gives them by default.
var Metrics = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

var metricAliases = map[string]string{"median": "50%"}

// Summarizes the numeric columns of the table, one row per metric, in the order the metrics
// are asked for. With no metrics, all of them are given.
func (t *Table) Describe(metrics ...string) (*Table, error) {
	if len(metrics) == 0 {
		metrics = Metrics
	}
	unknown := []string{}
	for _, m := range metrics {
		if _, ok := metricAliases[m]; !ok && !slices.Contains(Metrics, m) {
			unknown = append(unknown, m)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown metric(s): %s; available metrics are %s", strings.Join(unknown, ", "), strings.Join(Metrics, ", "))
	}
	numeric := t.NumericColumns()
	if len(numeric) == 0 {
		return nil, fmt.Errorf("there are no numeric columns to describe")
	}
	summaries := make([]map[string]Cell, len(numeric))
	for i, c := range numeric {
		summaries[i] = summarize(t.Column(c))
	}
	result := New(append([]string{"stat"}, numeric...)...)
	for _, m := range metrics {
		row := []Cell{m}
		key := m
		if alias, ok := metricAliases[m]; ok {
			key = alias
		}
		for _, s := range summaries {
			row = append(row, s[key])
		}
		result.Append(row...)
	}
	return result, nil
}

func summarize(cells []Cell) map[string]Cell {
	xs := []float64{}
	for _, c := range cells {
		if x, ok := toFloat(c); ok && !math.IsNaN(x) {
			xs = append(xs, x)
		}
	}
	result := map[string]Cell{"count": float64(len(xs))}
	if len(xs) == 0 {
		return result
	}
	sort.Float64s(xs)
	result["mean"] = stat.Mean(xs, nil)
	if len(xs) > 1 {
		result["std"] = stat.StdDev(xs, nil)
	}
	result["min"] = floats.Min(xs)
	result["25%"] = quantile(xs, 0.25)
	result["50%"] = quantile(xs, 0.5)
	result["75%"] = quantile(xs, 0.75)
	result["max"] = floats.Max(xs)
	return result
}

// The q-quantile of sorted data, interpolating linearly between the two nearest ranks.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}
