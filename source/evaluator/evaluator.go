package evaluator

// This is your standard tree-walking evaluator. The one peculiarity is that the parser hands us
// runs of same-precedence operators as flat chains, which we fold from left to right.

import (
	"io"
	"math/big"

	"fortio.org/log"

	"minilang/source/ast"
	"minilang/source/builtins"
	"minilang/source/environment"
	"minilang/source/report"
	"minilang/source/settings"
	"minilang/source/token"
	"minilang/source/values"
)

// The evaluator keeps no state of its own between statements: everything that persists lives
// in the Environment. The writer is where 'print' and the built-ins send their output.
type Evaluator struct {
	Env      *environment.Environment
	Registry *builtins.Registry
	Out      io.Writer
	Display  settings.Display
}

func New(env *environment.Environment, reg *builtins.Registry, out io.Writer, display settings.Display) *Evaluator {
	return &Evaluator{Env: env, Registry: reg, Out: out, Display: display}
}

// Evaluates any node, statement or expression, returning either a value or exactly one error.
func (ev *Evaluator) Eval(node ast.Node) (values.Value, *report.Error) {
	switch node := node.(type) {

	case *ast.LetStatement, *ast.PrintStatement, *ast.ExpressionStatement:
		return ev.exec(node)

	case *ast.IntegerLiteral:
		return values.BigInt(node.Value), nil

	case *ast.FloatLiteral:
		return values.Float(node.Value), nil

	case *ast.StringLiteral:
		return values.String(node.Value), nil

	case *ast.BooleanLiteral:
		return values.Bool(node.Value), nil

	case *ast.NoneLiteral:
		return values.NONE_VALUE, nil

	case *ast.Identifier:
		v, ok := ev.Env.Get(node.Value)
		if !ok {
			return values.NONE_VALUE, report.CreateErr("eval/unbound", &node.Token, node.Value)
		}
		return v, nil

	case *ast.OperatorChain:
		return foldLeft(node.Operands, node.Operators, ev.Eval, applyInfix)

	case *ast.PowerExpression:
		base, err := ev.Eval(node.Base)
		if err != nil {
			return base, err
		}
		exponent, err := ev.Eval(node.Exponent)
		if err != nil {
			return exponent, err
		}
		return applyPower(&node.Token, base, exponent)

	case *ast.PrefixExpression:
		right, err := ev.Eval(node.Right)
		if err != nil {
			return right, err
		}
		return applyPrefix(&node.Token, node.Operator, right)

	case *ast.ListLiteral:
		items := make([]values.Value, 0, len(node.Items))
		for _, item := range node.Items {
			v, err := ev.Eval(item)
			if err != nil {
				return v, err
			}
			items = append(items, v)
		}
		return values.List(items...), nil

	case *ast.DictLiteral:
		dict := values.NewDict()
		for i, key := range node.Keys {
			v, err := ev.Eval(node.Values[i])
			if err != nil {
				return v, err
			}
			dict = dict.Set(key, v)
		}
		return values.DictValue(dict), nil

	case *ast.CallExpression:
		return ev.call(node)
	}
	panic("evaluator doesn't know how to evaluate a " + node.String())
}

// Folds a chain of operands and operators strictly from left to right: the accumulator starts
// as the first operand and each operator combines it with the next. Operands are evaluated only
// as they are reached, so an error stops the fold before anything to its right is evaluated.
func foldLeft[N any](operands []N, operators []token.Token, eval func(N) (values.Value, *report.Error),
	apply func(op *token.Token, left, right values.Value) (values.Value, *report.Error)) (values.Value, *report.Error) {
	acc, err := eval(operands[0])
	if err != nil {
		return acc, err
	}
	for i := range operators {
		right, err := eval(operands[i+1])
		if err != nil {
			return right, err
		}
		acc, err = apply(&operators[i], acc, right)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// Calls go: evaluate the arguments, partition them, look up the function, bind the arguments
// to its parameters, invoke it.
func (ev *Evaluator) call(node *ast.CallExpression) (values.Value, *report.Error) {
	args := make([]builtins.Arg, 0, len(node.Args))
	for _, arg := range node.Args {
		v, err := ev.Eval(arg.Value)
		if err != nil {
			return v, err
		}
		args = append(args, builtins.Arg{Name: arg.Name, Value: v, Token: &arg.Token})
	}
	partitioned, err := builtins.Partition(node.Function, args)
	if err != nil {
		return values.NONE_VALUE, err
	}
	fn, err := ev.lookup(node.Function, &node.Token)
	if err != nil {
		return values.NONE_VALUE, err
	}
	bound, err := fn.Bind(partitioned, &node.Token)
	if err != nil {
		return values.NONE_VALUE, err
	}
	log.LogVf("dispatching %s", node.String())
	result, err := fn.Call(&builtins.Context{Out: ev.Out, Display: ev.Display}, bound)
	if err != nil {
		err.AddToTrace(&node.Token)
		return values.NONE_VALUE, err
	}
	return result, nil
}

// Functions live in the same namespace as everything else, so a name that has been rebound with
// 'let' no longer calls anything.
func (ev *Evaluator) lookup(name string, tok *token.Token) (*builtins.Builtin, *report.Error) {
	v, ok := ev.Env.Get(name)
	if !ok {
		return nil, report.CreateErr("call/unknown", tok, name)
	}
	if v.T != values.FUNC {
		return nil, report.CreateErr("call/uncallable", tok, name, article(v.TypeName()))
	}
	if fn, ok := v.V.(*builtins.Builtin); ok {
		return fn, nil
	}
	if fn, ok := ev.Registry.Lookup(v.V.(values.Callable).GetName()); ok {
		return fn, nil
	}
	return nil, report.CreateErr("call/unknown", tok, name)
}

func article(kind string) string {
	switch kind[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + kind
	case 'N':
		return kind
	}
	return "a " + kind
}

func isInt(v values.Value) bool {
	return v.T == values.INT
}

func bigOf(v values.Value) *big.Int {
	return v.V.(*big.Int)
}
