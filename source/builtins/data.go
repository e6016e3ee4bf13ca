package builtins

import (
	"fmt"
	"io"
	"strings"

	"minilang/source/database"
	"minilang/source/table"
	"minilang/source/values"
)

var (
	tableParam = Param{Name: "table", Kind: POSITIONAL, Required: true, Accepts: []values.ValueType{values.TABLE}, Expected: "a table"}
	pathParam  = Param{Name: "path", Kind: POSITIONAL, Required: true, Accepts: []values.ValueType{values.STRING}, Expected: "a string"}
	namesOf    = []values.ValueType{values.STRING, values.LIST}
)

// Returns a registry holding every built-in function.
func Standard() *Registry {
	r := NewRegistry()
	r.Register(
		&Builtin{
			Name:   "load_csv",
			Params: []Param{pathParam},
			Fn:     loadCSV,
		},
		&Builtin{
			Name: "load_excel",
			Params: []Param{pathParam,
				{Name: "sheet", Kind: POSITIONAL, Default: values.NONE_VALUE, Accepts: []values.ValueType{values.STRING}, Expected: "a string"},
			},
			Fn: loadExcel,
		},
		&Builtin{
			Name: "load_sql",
			Params: []Param{
				{Name: "driver", Kind: POSITIONAL, Required: true, Accepts: []values.ValueType{values.STRING}, Expected: "a string"},
				{Name: "dsn", Kind: POSITIONAL, Required: true, Accepts: []values.ValueType{values.STRING}, Expected: "a string"},
				{Name: "query", Kind: POSITIONAL, Required: true, Accepts: []values.ValueType{values.STRING}, Expected: "a string"},
			},
			Fn: loadSQL,
		},
		&Builtin{
			Name: "concat_dataframes",
			Params: []Param{
				{Name: "list_of_df", Kind: POSITIONAL, Required: true, Accepts: []values.ValueType{values.LIST}, Expected: "a list of tables"},
			},
			Fn: concatDataframes,
		},
		&Builtin{
			Name: "create_pivot",
			Params: []Param{tableParam,
				{Name: "index", Kind: KEYWORD_ONLY, Required: true, Accepts: namesOf, Expected: "a string or a list of strings"},
				{Name: "columns", Kind: KEYWORD_ONLY, Default: values.NONE_VALUE, Accepts: namesOf, Expected: "a string or a list of strings"},
				{Name: "values", Kind: KEYWORD_ONLY, Default: values.NONE_VALUE, Accepts: namesOf, Expected: "a string or a list of strings"},
				{Name: "aggfunc", Kind: KEYWORD_ONLY, Default: values.String("sum"), Accepts: []values.ValueType{values.STRING}, Expected: "a string"},
			},
			Fn: createPivot,
		},
		&Builtin{
			Name: "stats",
			Params: []Param{tableParam,
				{Name: "metrics", Kind: POSITIONAL, Required: true, Accepts: []values.ValueType{values.LIST}, Expected: "a list of strings"},
			},
			Fn: stats,
		},
		&Builtin{
			Name:   "visualize_pivot_stats",
			Params: []Param{tableParam},
			Fn:     visualizePivotStats,
		},
		&Builtin{
			Name: "head",
			Params: []Param{tableParam,
				{Name: "n", Kind: POSITIONAL, Default: values.Int(5), Accepts: []values.ValueType{values.INT}, Expected: "an int"},
			},
			Fn: head,
		},
		&Builtin{
			Name:   "columns",
			Params: []Param{tableParam},
			Fn:     columns,
		},
		&Builtin{
			Name:   "save_csv",
			Params: []Param{tableParam, pathParam},
			Fn:     saveCSV,
		},
		&Builtin{
			Name: "save_excel",
			Params: []Param{tableParam, pathParam,
				{Name: "sheet", Kind: POSITIONAL, Default: values.String(table.DefaultSheet), Accepts: []values.ValueType{values.STRING}, Expected: "a string"},
			},
			Fn: saveExcel,
		},
	)
	return r
}

func loadCSV(ctx *Context, args *Args) (values.Value, error) {
	path, err := args.String("path")
	if err != nil {
		return values.NONE_VALUE, err
	}
	t, err := table.ReadCSV(path)
	if err != nil {
		return values.NONE_VALUE, err
	}
	return values.Table(t), nil
}

func loadExcel(ctx *Context, args *Args) (values.Value, error) {
	path, err := args.String("path")
	if err != nil {
		return values.NONE_VALUE, err
	}
	sheet := ""
	if !args.IsNone("sheet") {
		if sheet, err = args.String("sheet"); err != nil {
			return values.NONE_VALUE, err
		}
	}
	t, err := table.ReadExcel(path, sheet)
	if err != nil {
		return values.NONE_VALUE, err
	}
	return values.Table(t), nil
}

func loadSQL(ctx *Context, args *Args) (values.Value, error) {
	strs := make([]string, 3)
	for i, name := range []string{"driver", "dsn", "query"} {
		s, err := args.String(name)
		if err != nil {
			return values.NONE_VALUE, err
		}
		strs[i] = s
	}
	t, err := database.Query(strs[0], strs[1], strs[2])
	if err != nil {
		return values.NONE_VALUE, err
	}
	return values.Table(t), nil
}

func concatDataframes(ctx *Context, args *Args) (values.Value, error) {
	tables, err := args.Tables("list_of_df")
	if err != nil {
		return values.NONE_VALUE, err
	}
	if len(tables) == 0 {
		return values.NONE_VALUE, args.ValueError("list_of_df", "must not be empty")
	}
	return values.Table(table.Concat(tables...)), nil
}

func createPivot(ctx *Context, args *Args) (values.Value, error) {
	t, err := args.Table("table")
	if err != nil {
		return values.NONE_VALUE, err
	}
	spec := table.PivotSpec{}
	if spec.Index, err = args.Strings("index"); err != nil {
		return values.NONE_VALUE, err
	}
	if len(spec.Index) == 0 {
		return values.NONE_VALUE, args.ValueError("index", "must name at least one column")
	}
	if spec.Columns, err = args.Strings("columns"); err != nil {
		return values.NONE_VALUE, err
	}
	if spec.Values, err = args.Strings("values"); err != nil {
		return values.NONE_VALUE, err
	}
	if spec.AggFunc, err = args.String("aggfunc"); err != nil {
		return values.NONE_VALUE, err
	}
	pivot, err := t.Pivot(spec)
	if err != nil {
		return values.NONE_VALUE, err
	}
	return values.Table(pivot), nil
}

func stats(ctx *Context, args *Args) (values.Value, error) {
	t, err := args.Table("table")
	if err != nil {
		return values.NONE_VALUE, err
	}
	metrics, err := args.Strings("metrics")
	if err != nil {
		return values.NONE_VALUE, err
	}
	if len(metrics) == 0 {
		return values.NONE_VALUE, args.ValueError("metrics", "must name at least one metric")
	}
	summary, err := t.Describe(metrics...)
	if err != nil {
		return values.NONE_VALUE, err
	}
	return values.Table(summary), nil
}

const statsBanner = "--- Visualizing Pivot Table Statistics ---"

func visualizePivotStats(ctx *Context, args *Args) (values.Value, error) {
	t, err := args.Table("table")
	if err != nil {
		return values.NONE_VALUE, err
	}
	summary, err := t.Describe()
	if err != nil {
		return values.NONE_VALUE, err
	}
	out := ctx.Out
	if out == nil {
		out = io.Discard
	}
	fmt.Fprintln(out, statsBanner)
	fmt.Fprintln(out, summary.Render(0, ctx.Display.FloatPrecision))
	fmt.Fprintln(out, strings.Repeat("-", len(statsBanner)))
	return values.NONE_VALUE, nil
}

func head(ctx *Context, args *Args) (values.Value, error) {
	t, err := args.Table("table")
	if err != nil {
		return values.NONE_VALUE, err
	}
	n, err := args.Int("n")
	if err != nil {
		return values.NONE_VALUE, err
	}
	if n < 0 {
		return values.NONE_VALUE, args.ValueError("n", "must not be negative")
	}
	return values.Table(t.Head(n)), nil
}

func columns(ctx *Context, args *Args) (values.Value, error) {
	t, err := args.Table("table")
	if err != nil {
		return values.NONE_VALUE, err
	}
	names := make([]values.Value, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = values.String(c)
	}
	return values.List(names...), nil
}

func saveCSV(ctx *Context, args *Args) (values.Value, error) {
	t, err := args.Table("table")
	if err != nil {
		return values.NONE_VALUE, err
	}
	path, err := args.String("path")
	if err != nil {
		return values.NONE_VALUE, err
	}
	return values.NONE_VALUE, table.WriteCSV(t, path)
}

func saveExcel(ctx *Context, args *Args) (values.Value, error) {
	t, err := args.Table("table")
	if err != nil {
		return values.NONE_VALUE, err
	}
	path, err := args.String("path")
	if err != nil {
		return values.NONE_VALUE, err
	}
	sheet, err := args.String("sheet")
	if err != nil {
		return values.NONE_VALUE, err
	}
	return values.NONE_VALUE, table.WriteExcel(t, path, sheet)
}
