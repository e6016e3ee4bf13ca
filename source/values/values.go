package values

import (
	"math/big"

	"src.elv.sh/pkg/persistent/vector"

	"minilang/source/table"
)

type ValueType uint32

const (
	UNDEFINED_VALUE ValueType = iota // For debugging purposes, it is useful to have the zero value something it should never actually be.
	NONE
	BOOL
	INT   // *big.Int
	FLOAT // float64
	STRING
	LIST  // vector.Vector of Values
	DICT  // Dict
	TABLE // *table.Table
	FUNC  // Callable
)

type Value struct {
	T ValueType
	V any
}

// What a FUNC value holds. Built-in functions are the only callables there are.
type Callable interface {
	GetName() string
	Describe() string
}

var (
	FALSE      = Value{T: BOOL, V: false}
	TRUE       = Value{T: BOOL, V: true}
	NONE_VALUE = Value{T: NONE}
)

var typeNames = map[ValueType]string{
	UNDEFINED_VALUE: "undefined",
	NONE:            "None",
	BOOL:            "bool",
	INT:             "int",
	FLOAT:           "float",
	STRING:          "string",
	LIST:            "list",
	DICT:            "dict",
	TABLE:           "table",
	FUNC:            "function",
}

func (t ValueType) String() string {
	return typeNames[t]
}

func (v Value) TypeName() string {
	return v.T.String()
}

func Bool(b bool) Value {
	if b {
		return TRUE
	}
	return FALSE
}

func Int(i int64) Value {
	return Value{INT, big.NewInt(i)}
}

func BigInt(i *big.Int) Value {
	return Value{INT, i}
}

func Float(f float64) Value {
	return Value{FLOAT, f}
}

func String(s string) Value {
	return Value{STRING, s}
}

func List(items ...Value) Value {
	vec := vector.Empty
	for _, item := range items {
		vec = vec.Conj(item)
	}
	return Value{LIST, vec}
}

func DictValue(d Dict) Value {
	return Value{DICT, d}
}

func Table(t *table.Table) Value {
	return Value{TABLE, t}
}

func Func(c Callable) Value {
	return Value{FUNC, c}
}

func (v Value) IsNumber() bool {
	return v.T == INT || v.T == FLOAT
}

// Returns the number as a float, however it is represented.
func (v Value) AsFloat() float64 {
	switch v.T {
	case INT:
		f, _ := new(big.Float).SetInt(v.V.(*big.Int)).Float64()
		return f
	case FLOAT:
		return v.V.(float64)
	}
	panic("AsFloat called on a " + v.TypeName())
}

func (v Value) IsZero() bool {
	switch v.T {
	case INT:
		return v.V.(*big.Int).Sign() == 0
	case FLOAT:
		return v.V.(float64) == 0
	}
	return false
}

// Returns the elements of a LIST as a slice.
func (v Value) Items() []Value {
	vec := v.V.(vector.Vector)
	result := make([]Value, 0, vec.Len())
	for it := vec.Iterator(); it.HasElem(); it.Next() {
		result = append(result, it.Elem().(Value))
	}
	return result
}

// None, False, zero, and empty strings, lists and dicts are falsy. Everything else is truthy.
func (v Value) Truthy() bool {
	switch v.T {
	case NONE, UNDEFINED_VALUE:
		return false
	case BOOL:
		return v.V.(bool)
	case INT, FLOAT:
		return !v.IsZero()
	case STRING:
		return v.V.(string) != ""
	case LIST:
		return v.V.(vector.Vector).Len() > 0
	case DICT:
		return v.V.(Dict).Len() > 0
	}
	return true
}

// Structural equality. Numbers of different representations are equal if their values are.
func Equal(v, w Value) bool {
	if v.IsNumber() && w.IsNumber() {
		if v.T == INT && w.T == INT {
			return v.V.(*big.Int).Cmp(w.V.(*big.Int)) == 0
		}
		return v.AsFloat() == w.AsFloat()
	}
	if v.T != w.T {
		return false
	}
	switch v.T {
	case NONE:
		return true
	case BOOL:
		return v.V.(bool) == w.V.(bool)
	case STRING:
		return v.V.(string) == w.V.(string)
	case LIST:
		vItems, wItems := v.Items(), w.Items()
		if len(vItems) != len(wItems) {
			return false
		}
		for i := range vItems {
			if !Equal(vItems[i], wItems[i]) {
				return false
			}
		}
		return true
	case DICT:
		vd, wd := v.V.(Dict), w.V.(Dict)
		if vd.Len() != wd.Len() {
			return false
		}
		equal := true
		vd.Range(func(k string, x Value) bool {
			y, ok := wd.Get(k)
			equal = ok && Equal(x, y)
			return equal
		})
		return equal
	case TABLE:
		return v.V.(*table.Table) == w.V.(*table.Table)
	case FUNC:
		return v.V.(Callable).GetName() == w.V.(Callable).GetName()
	}
	return false
}
