package evaluator

import (
	"fmt"

	"fortio.org/log"

	"minilang/source/ast"
	"minilang/source/report"
	"minilang/source/values"
)

// Executes a statement. Only a bare expression has a value worth showing; 'let' and 'print'
// return None.
func (ev *Evaluator) exec(stmt ast.Node) (values.Value, *report.Error) {
	log.LogVf("executing %s", stmt.String())
	switch stmt := stmt.(type) {
	case *ast.LetStatement:
		v, err := ev.Eval(stmt.Value)
		if err != nil {
			return values.NONE_VALUE, err
		}
		ev.Env.Set(stmt.Name.Value, v)
		return values.NONE_VALUE, nil
	case *ast.PrintStatement:
		v, err := ev.Eval(stmt.Value)
		if err != nil {
			return values.NONE_VALUE, err
		}
		fmt.Fprintln(ev.Out, values.RenderWith(v, ev.Display))
		return values.NONE_VALUE, nil
	case *ast.ExpressionStatement:
		return ev.Eval(stmt.Expression)
	}
	panic("not a statement: " + stmt.String())
}

// Runs statements in order, stopping at the first one that fails. Whatever the statements
// before it did to the Environment stays done.
func (ev *Evaluator) Run(program []ast.Node) *report.Error {
	for _, stmt := range program {
		if _, err := ev.Eval(stmt); err != nil {
			return err
		}
	}
	return nil
}
