package values

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"minilang/source/settings"
	"minilang/source/table"
)

// Renders a value for output the way 'print' shows it, with tables laid out according to the
// default display settings.
func Render(v Value) string {
	return RenderWith(v, settings.Default().Display)
}

// Rendering is a pure function of the value and the display settings: rendering the same
// value twice gives the same text.
func RenderWith(v Value, display settings.Display) string {
	switch v.T {
	case STRING:
		return v.V.(string)
	case TABLE:
		return v.V.(*table.Table).Render(display.MaxRows, display.FloatPrecision)
	}
	return Literal(v)
}

// The form of a value as it appears nested inside a list or dict: strings are quoted.
func Literal(v Value) string {
	switch v.T {
	case UNDEFINED_VALUE:
		return "<undefined>"
	case NONE:
		return "None"
	case BOOL:
		if v.V.(bool) {
			return "True"
		}
		return "False"
	case INT:
		return v.V.(*big.Int).String()
	case FLOAT:
		return FormatFloat(v.V.(float64))
	case STRING:
		return Quote(v.V.(string))
	case LIST:
		var sb strings.Builder
		sb.WriteString("[")
		for i, item := range v.Items() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(Literal(item))
		}
		sb.WriteString("]")
		return sb.String()
	case DICT:
		var sb strings.Builder
		sb.WriteString("{")
		sep := ""
		v.V.(Dict).Range(func(k string, x Value) bool {
			sb.WriteString(sep + Quote(k) + ": " + Literal(x))
			sep = ", "
			return true
		})
		sb.WriteString("}")
		return sb.String()
	case TABLE:
		t := v.V.(*table.Table)
		return "<table " + strconv.Itoa(t.Len()) + "x" + strconv.Itoa(len(t.Columns)) + ">"
	case FUNC:
		return "<built-in function " + v.V.(Callable).GetName() + ">"
	}
	panic("unhandled value type " + strconv.Itoa(int(v.T)))
}

// Floats are shown in the shortest form that reads back as the same float, always with a
// point or an exponent so they can't be mistaken for ints.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + ".0"
	}
	return s
}

// Quotes a string with single quotes, or with double quotes if that avoids escaping.
func Quote(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}
	var sb strings.Builder
	sb.WriteRune(quote)
	for _, ch := range s {
		switch ch {
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case quote:
			sb.WriteRune('\\')
			sb.WriteRune(ch)
		default:
			sb.WriteRune(ch)
		}
	}
	sb.WriteRune(quote)
	return sb.String()
}
