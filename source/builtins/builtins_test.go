package builtins

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"minilang/source/report"
	"minilang/source/settings"
	"minilang/source/table"
	"minilang/source/token"
	"minilang/source/values"
)

var tok = &token.Token{Type: token.IDENT, Line: 1, ChStart: 1, ChEnd: 1}

func pos(v values.Value) Arg {
	return Arg{Value: v, Token: tok}
}

func kw(name string, v values.Value) Arg {
	return Arg{Name: name, Value: v, Token: tok}
}

func call(r *Registry, out *bytes.Buffer, name string, args ...Arg) (values.Value, *report.Error) {
	b, ok := r.Lookup(name)
	if !ok {
		panic("no built-in called " + name)
	}
	ca, err := Partition(name, args)
	if err != nil {
		return values.NONE_VALUE, err
	}
	bound, err := b.Bind(ca, tok)
	if err != nil {
		return values.NONE_VALUE, err
	}
	return b.Call(&Context{Out: out, Display: settings.Default().Display}, bound)
}

func sampleTable() values.Value {
	return values.Table(&table.Table{Columns: []string{"A", "B"},
		Rows: [][]table.Cell{{"x", int64(1)}, {"y", int64(2)}, {"x", int64(3)}}})
}

func TestPartition(t *testing.T) {
	ca, err := Partition("create_pivot", []Arg{pos(sampleTable()), kw("index", values.String("A")), kw("values", values.String("B"))})
	if err != nil {
		t.Fatal(err)
	}
	if len(ca.Positional) != 1 || ca.Positional[0].T != values.TABLE {
		t.Errorf("positional = %v", ca.Positional)
	}
	if len(ca.Keyword) != 2 || !values.Equal(ca.Keyword["index"], values.String("A")) || !values.Equal(ca.Keyword["values"], values.String("B")) {
		t.Errorf("keyword = %v", ca.Keyword)
	}
	_, err = Partition("f", []Arg{kw("x", values.Int(1)), kw("x", values.Int(2))})
	if err == nil || err.Kind != report.DuplicateArgument {
		t.Errorf("expected DuplicateArgument, got %v", err)
	}
}

func TestBindErrors(t *testing.T) {
	r := Standard()
	tests := []struct {
		name string
		args []Arg
		want string
	}{
		{"load_csv", []Arg{pos(values.String("a.csv")), kw("path", values.String("b.csv"))},
			"DuplicateArgument: argument 'path' of 'load_csv' given both by position and by keyword"},
		{"load_csv", []Arg{pos(values.String("a.csv")), pos(values.String("b.csv"))},
			"ArgumentError: 'load_csv' takes at most 1 positional arguments but 2 were given"},
		{"load_csv", []Arg{pos(values.String("a.csv")), kw("sep", values.String(";"))},
			"ArgumentError: 'load_csv' got an unexpected keyword argument 'sep'"},
		{"load_csv", []Arg{},
			"ArgumentError: 'load_csv' is missing required argument 'path'"},
		{"load_csv", []Arg{pos(values.Int(1))},
			"ArgumentError: argument 'path' of 'load_csv' should be a string, not an int"},
		{"create_pivot", []Arg{pos(sampleTable())},
			"ArgumentError: 'create_pivot' is missing required argument 'index'"},
		{"create_pivot", []Arg{pos(sampleTable()), pos(values.String("A"))},
			"ArgumentError: 'create_pivot' takes at most 1 positional arguments but 2 were given"},
		{"create_pivot", []Arg{pos(values.Int(3)), kw("index", values.String("A"))},
			"ArgumentError: argument 'table' of 'create_pivot' should be a table, not an int"},
		{"create_pivot", []Arg{pos(sampleTable()), kw("index", values.List(values.Int(1)))},
			"ArgumentError: argument 'index' of 'create_pivot' should be a string or a list of strings, not a list"},
		{"stats", []Arg{pos(sampleTable()), pos(values.String("mean"))},
			"ArgumentError: argument 'metrics' of 'stats' should be a list of strings, not a string"},
		{"concat_dataframes", []Arg{pos(values.List())},
			"ArgumentError: argument 'list_of_df' of 'concat_dataframes' must not be empty"},
		{"head", []Arg{pos(sampleTable()), kw("n", values.Float(2))},
			"ArgumentError: argument 'n' of 'head' should be an int, not a float"},
	}
	for _, test := range tests {
		_, err := call(r, &bytes.Buffer{}, test.name, test.args...)
		if err == nil || err.Error() != test.want {
			t.Errorf("%s: got %v, want %s", test.name, err, test.want)
		}
	}
}

func TestFailuresBecomeBuiltinErrors(t *testing.T) {
	r := Standard()
	_, err := call(r, &bytes.Buffer{}, "load_csv", pos(values.String(filepath.Join(t.TempDir(), "missing.csv"))))
	if err == nil || err.Kind != report.BuiltinError || !strings.Contains(err.Message, "load_csv") {
		t.Errorf("got %v, want a BuiltinError", err)
	}
	r.Register(&Builtin{Name: "boom", Fn: func(ctx *Context, args *Args) (values.Value, error) {
		panic("kaboom")
	}})
	_, err = call(r, &bytes.Buffer{}, "boom")
	if err == nil || err.Kind != report.BuiltinError || !strings.Contains(err.Message, "kaboom") {
		t.Errorf("got %v, want a BuiltinError", err)
	}
	_, err = call(r, &bytes.Buffer{}, "create_pivot", pos(sampleTable()), kw("index", values.String("C")))
	if err == nil || err.Error() != "BuiltinError: 'create_pivot' failed: column(s) not found: C" {
		t.Errorf("got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	b, _ := Standard().Lookup("create_pivot")
	want := "create_pivot(table, *, index, columns=None, values=None, aggfunc='sum')"
	if b.Describe() != want {
		t.Errorf("got %s, want %s", b.Describe(), want)
	}
	if values.Literal(values.Func(b)) != "<built-in function create_pivot>" {
		t.Errorf("got %s", values.Literal(values.Func(b)))
	}
}

func TestDataFunctions(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "sales.csv")
	if err := os.WriteFile(csvPath, []byte("region,units\nNorth,10\nSouth,5\nNorth,7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := Standard()
	out := &bytes.Buffer{}
	sales, err := call(r, out, "load_csv", pos(values.String(csvPath)))
	if err != nil {
		t.Fatal(err)
	}
	both, err := call(r, out, "concat_dataframes", pos(values.List(sales, sales)))
	if err != nil {
		t.Fatal(err)
	}
	if n := both.V.(*table.Table).Len(); n != 6 {
		t.Errorf("concatenated table has %d rows, want 6", n)
	}
	pivot, err := call(r, out, "create_pivot", pos(both), kw("index", values.String("region")), kw("values", values.String("units")))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]table.Cell{{"North", int64(34)}, {"South", int64(10)}}
	if got := pivot.V.(*table.Table).Rows; len(got) != 2 || got[0][1] != want[0][1] || got[1][1] != want[1][1] {
		t.Errorf("pivot rows = %v, want %v", got, want)
	}
	summary, err := call(r, out, "stats", pos(sales), pos(values.List(values.String("mean"), values.String("max"))))
	if err != nil {
		t.Fatal(err)
	}
	if got := summary.V.(*table.Table).Rows; got[0][1] != 22.0/3 || got[1][1] != 10.0 {
		t.Errorf("stats rows = %v", got)
	}
	_, err = call(r, out, "stats", pos(sales), pos(values.List(values.String("mode"))))
	if err == nil || err.Kind != report.BuiltinError || !strings.Contains(err.Message, "unknown metric(s): mode") {
		t.Errorf("got %v", err)
	}
	result, err := call(r, out, "visualize_pivot_stats", pos(pivot))
	if err != nil || result.T != values.NONE {
		t.Fatalf("got %v, %v", result, err)
	}
	if !strings.HasPrefix(out.String(), statsBanner+"\n") || !strings.Contains(out.String(), "mean") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
	cols, err := call(r, out, "columns", pos(sales))
	if err != nil || values.Literal(cols) != "['region', 'units']" {
		t.Errorf("columns = %v, %v", cols, err)
	}
	top, err := call(r, out, "head", pos(both), pos(values.Int(2)))
	if err != nil || top.V.(*table.Table).Len() != 2 {
		t.Errorf("head = %v, %v", top, err)
	}
	xlsx := filepath.Join(dir, "pivot.xlsx")
	if _, err := call(r, out, "save_excel", pos(pivot), pos(values.String(xlsx))); err != nil {
		t.Fatal(err)
	}
	back, err := call(r, out, "load_excel", pos(values.String(xlsx)))
	if err != nil {
		t.Fatal(err)
	}
	if got := back.V.(*table.Table).Rows; len(got) != 2 || got[0][1] != int64(34) {
		t.Errorf("reloaded rows = %v", got)
	}
	saved := filepath.Join(dir, "copy.csv")
	if _, err := call(r, out, "save_csv", pos(sales), kw("path", values.String(saved))); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(saved); err != nil {
		t.Errorf("save_csv didn't write the file: %v", err)
	}
}

func TestLoadSQL(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")
	r := Standard()
	out := &bytes.Buffer{}
	got, err := call(r, out, "load_sql", pos(values.String("SQLite")), pos(values.String(dsn)),
		kw("query", values.String("SELECT 1 AS one, 'x' AS ex")))
	if err != nil {
		t.Fatal(err)
	}
	tb := got.V.(*table.Table)
	if len(tb.Rows) != 1 || tb.Rows[0][0] != int64(1) || tb.Rows[0][1] != "x" {
		t.Errorf("got %#v", tb)
	}
	_, err = call(r, out, "load_sql", pos(values.String("dBase")), pos(values.String(dsn)), pos(values.String("SELECT 1")))
	if err == nil || err.Kind != report.BuiltinError {
		t.Errorf("got %v, want a BuiltinError", err)
	}
}
