package values

import (
	"math"
	"testing"

	"minilang/source/table"
)

func TestRender(t *testing.T) {
	dict := NewDict().Set("k", List(Int(1), Int(2), Int(3)))
	tests := []struct {
		v    Value
		want string
	}{
		{NONE_VALUE, "None"},
		{TRUE, "True"},
		{Int(-42), "-42"},
		{Float(5), "5.0"},
		{Float(0.1), "0.1"},
		{Float(1e20), "1e+20"},
		{Float(0.00001), "1e-05"},
		{Float(math.Inf(-1)), "-inf"},
		{Float(math.NaN()), "nan"},
		{String("raw text"), "raw text"},
		{List(String("a"), NONE_VALUE, Float(2.5)), "['a', None, 2.5]"},
		{List(), "[]"},
		{DictValue(dict), "{'k': [1, 2, 3]}"},
		{DictValue(NewDict()), "{}"},
		{List(String("it's"), String("say \"hi\"")), `["it's", 'say "hi"']`},
	}
	for _, test := range tests {
		if got := Render(test.v); got != test.want {
			t.Errorf("got %s, want %s", got, test.want)
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	v := DictValue(NewDict().Set("k", List(Int(1), Int(2), Int(3))))
	first := Render(v)
	if second := Render(v); first != second {
		t.Errorf("rendered %s then %s", first, second)
	}
}

func TestRenderTable(t *testing.T) {
	tb := table.New("A", "B")
	tb.Append("x", int64(1))
	if Literal(Table(tb)) != "<table 1x2>" {
		t.Errorf("got %s", Literal(Table(tb)))
	}
	if Render(Table(tb)) != tb.Render(50, 6) {
		t.Errorf("tables should render as their grid")
	}
}

func TestTruthy(t *testing.T) {
	falsy := []Value{NONE_VALUE, FALSE, Int(0), Float(0), String(""), List(), DictValue(NewDict())}
	for _, v := range falsy {
		if v.Truthy() {
			t.Errorf("%s should be falsy", Literal(v))
		}
	}
	truthy := []Value{TRUE, Int(-1), Float(0.5), String("0"), List(NONE_VALUE), Table(table.New())}
	for _, v := range truthy {
		if !v.Truthy() {
			t.Errorf("%s should be truthy", Literal(v))
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Int(2), Float(2)) || Equal(Int(2), String("2")) {
		t.Errorf("numbers compare by value and nothing else")
	}
	if !Equal(List(Int(1), String("a")), List(Int(1), String("a"))) || Equal(List(Int(1)), List(Int(1), Int(2))) {
		t.Errorf("lists compare item by item")
	}
}

func TestDict(t *testing.T) {
	empty := NewDict()
	d := empty.Set("b", Int(1)).Set("a", Int(2)).Set("c", Int(3))
	d2 := d.Set("a", Int(20))
	if got := Literal(DictValue(d)); got != "{'b': 1, 'a': 2, 'c': 3}" {
		t.Errorf("got %s", got)
	}
	if got := Literal(DictValue(d2)); got != "{'b': 1, 'a': 20, 'c': 3}" {
		t.Errorf("got %s", got)
	}
	if empty.Len() != 0 || d.Len() != 3 || d2.Len() != 3 {
		t.Errorf("lengths are %d, %d, %d", empty.Len(), d.Len(), d2.Len())
	}
	if _, ok := d.Get("z"); ok {
		t.Errorf("found a key that was never set")
	}
	var zero Dict
	if zero.Len() != 0 || zero.Set("x", TRUE).Len() != 1 {
		t.Errorf("the zero Dict should behave as an empty one")
	}
}
