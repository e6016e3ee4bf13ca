package native

import (
	"fmt"
	"math/big"
	"strings"

	"fortio.org/log"
	"src.elv.sh/pkg/eval"
	"src.elv.sh/pkg/eval/vals"
	"src.elv.sh/pkg/eval/vars"
	"src.elv.sh/pkg/parse"
	"src.elv.sh/pkg/persistent/hashmap"
	"src.elv.sh/pkg/persistent/vector"

	"minilang/source/environment"
	"minilang/source/values"
)

// Runs lines of Elvish against the session's Environment. Every binding is copied into Elvish's
// global namespace before a line runs and every global variable is copied back afterwards.
type Elvish struct {
	ev *eval.Evaler
}

func NewElvish() *Elvish {
	return &Elvish{ev: eval.NewEvaler()}
}

func (e *Elvish) Name() string {
	return "elvish"
}

func (e *Elvish) Eval(line string, env *environment.Environment) error {
	e.export(env)
	ports, cleanup := eval.PortsFromStdFiles("▶ ")
	defer cleanup()
	log.LogVf("elvish: %s", line)
	evalErr := e.ev.Eval(parse.Source{Name: "[native]", Code: line}, eval.EvalCfg{Ports: ports})
	// Bindings made before a failure are kept, as they would be in MiniLang.
	if err := e.importInto(env); err != nil {
		return err
	}
	return evalErr
}

func (e *Elvish) export(env *environment.Environment) {
	nb := eval.BuildNs()
	for _, name := range env.Names() {
		v, _ := env.Get(name)
		nb = nb.AddVar(name, vars.FromInit(toElvish(v)))
	}
	e.ev.ExtendGlobal(nb)
}

func (e *Elvish) importInto(env *environment.Environment) error {
	global := e.ev.Global()
	var failure error
	err := vals.IterateKeys(global, func(k any) bool {
		name, ok := k.(string)
		if !ok || strings.HasSuffix(name, "~") || strings.HasSuffix(name, ":") {
			return true
		}
		v, err := vals.Index(global, name)
		if err != nil {
			failure = fmt.Errorf("reading $%s back from elvish: %w", name, err)
			return false
		}
		env.Set(name, fromElvish(v))
		return true
	})
	if err != nil {
		return err
	}
	return failure
}

// Tables and functions mean nothing to Elvish, so they cross over as they are and come back
// the same way.
func toElvish(v values.Value) any {
	switch v.T {
	case values.NONE:
		return nil
	case values.BOOL:
		return v.V.(bool)
	case values.INT:
		i := v.V.(*big.Int)
		if i.IsInt64() && int64(int(i.Int64())) == i.Int64() {
			return int(i.Int64())
		}
		return i
	case values.FLOAT:
		return v.V.(float64)
	case values.STRING:
		return v.V.(string)
	case values.LIST:
		items := v.Items()
		result := make([]any, len(items))
		for i, item := range items {
			result[i] = toElvish(item)
		}
		return vals.MakeList(result...)
	case values.DICT:
		kvs := []any{}
		v.V.(values.Dict).Range(func(k string, x values.Value) bool {
			kvs = append(kvs, k, toElvish(x))
			return true
		})
		return vals.MakeMap(kvs...)
	}
	return v
}

func fromElvish(x any) values.Value {
	switch x := x.(type) {
	case nil:
		return values.NONE_VALUE
	case values.Value:
		return x
	case bool:
		return values.Bool(x)
	case int:
		return values.Int(int64(x))
	case *big.Int:
		return values.BigInt(x)
	case *big.Rat:
		f, _ := x.Float64()
		return values.Float(f)
	case float64:
		return values.Float(x)
	case string:
		return values.String(x)
	case vector.Vector:
		items := []values.Value{}
		for it := x.Iterator(); it.HasElem(); it.Next() {
			items = append(items, fromElvish(it.Elem()))
		}
		return values.List(items...)
	case hashmap.Map:
		dict := values.NewDict()
		for it := x.Iterator(); it.HasElem(); it.Next() {
			k, v := it.Elem()
			dict = dict.Set(vals.ToString(k), fromElvish(v))
		}
		return values.DictValue(dict)
	}
	return values.String(vals.ToString(x))
}
