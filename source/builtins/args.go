package builtins

import (
	"math/big"

	"minilang/source/report"
	"minilang/source/table"
	"minilang/source/token"
	"minilang/source/values"
)

// The arguments of a call once they've been bound to the parameters of the function. Every
// parameter has a value, if only its default.
type Args struct {
	function string
	tok      *token.Token
	bound    map[string]values.Value
}

func (a *Args) Get(name string) values.Value {
	return a.bound[name]
}

func (a *Args) IsNone(name string) bool {
	return a.bound[name].T == values.NONE
}

func (a *Args) typeError(name, expected string) error {
	return report.CreateErr("call/args/type", a.tok, a.function, name, expected, describe(a.bound[name]))
}

// An ArgumentError about the value rather than the kind of an argument.
func (a *Args) ValueError(name, complaint string) error {
	return report.CreateErr("call/args/value", a.tok, a.function, name, complaint)
}

func (a *Args) String(name string) (string, error) {
	v := a.bound[name]
	if v.T != values.STRING {
		return "", a.typeError(name, "a string")
	}
	return v.V.(string), nil
}

// Accepts a string, a list of strings, or None, which gives an empty slice.
func (a *Args) Strings(name string) ([]string, error) {
	v := a.bound[name]
	switch v.T {
	case values.NONE:
		return []string{}, nil
	case values.STRING:
		return []string{v.V.(string)}, nil
	case values.LIST:
		result := []string{}
		for _, item := range v.Items() {
			if item.T != values.STRING {
				return nil, a.typeError(name, "a string or a list of strings")
			}
			result = append(result, item.V.(string))
		}
		return result, nil
	}
	return nil, a.typeError(name, "a string or a list of strings")
}

func (a *Args) Int(name string) (int, error) {
	v := a.bound[name]
	if v.T != values.INT || !v.V.(*big.Int).IsInt64() {
		return 0, a.typeError(name, "an int")
	}
	return int(v.V.(*big.Int).Int64()), nil
}

func (a *Args) Table(name string) (*table.Table, error) {
	v := a.bound[name]
	if v.T != values.TABLE {
		return nil, a.typeError(name, "a table")
	}
	return v.V.(*table.Table), nil
}

func (a *Args) Tables(name string) ([]*table.Table, error) {
	v := a.bound[name]
	if v.T != values.LIST {
		return nil, a.typeError(name, "a list of tables")
	}
	result := []*table.Table{}
	for _, item := range v.Items() {
		if item.T != values.TABLE {
			return nil, a.typeError(name, "a list of tables")
		}
		result = append(result, item.V.(*table.Table))
	}
	return result, nil
}
