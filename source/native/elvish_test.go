package native

import (
	"math/big"
	"testing"

	"minilang/source/environment"
	"minilang/source/values"
)

func TestRoundTrip(t *testing.T) {
	dict := values.NewDict().Set("k", values.List(values.Int(1), values.String("two")))
	tests := []values.Value{
		values.NONE_VALUE,
		values.TRUE,
		values.Int(7),
		values.BigInt(new(big.Int).Lsh(big.NewInt(1), 100)),
		values.Float(2.5),
		values.String("hello"),
		values.List(values.Int(1), values.Float(0.5), values.List()),
		values.DictValue(dict),
	}
	for _, v := range tests {
		got := fromElvish(toElvish(v))
		if !values.Equal(got, v) {
			t.Errorf("%s came back as %s", values.Literal(v), values.Literal(got))
		}
	}
}

func TestSharedEnvironment(t *testing.T) {
	env := environment.New()
	env.Set("x", values.Int(2))
	elv := NewElvish()
	if err := elv.Eval("var y = (+ $x 3)", env); err != nil {
		t.Fatal(err)
	}
	y, ok := env.Get("y")
	if !ok || !values.Equal(y, values.Int(5)) {
		t.Errorf("y = %v", y)
	}
	if err := elv.Eval("fail oops", env); err == nil {
		t.Errorf("expected an error from 'fail'")
	}
	x, _ := env.Get("x")
	if !values.Equal(x, values.Int(2)) {
		t.Errorf("x = %v", x)
	}
}
