package ast

import (
	"bytes"
	"math/big"
	"strconv"

	"minilang/source/token"
)

// The base Node interface
type Node interface {
	Children() []Node
	GetToken() *token.Token
	String() string
}

// Nodes in alphabetical order. Other structures and functions are in a separate section at the bottom.

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) Children() []Node       { return []Node{} }
func (b *BooleanLiteral) GetToken() *token.Token { return &b.Token }
func (b *BooleanLiteral) String() string {
	if b.Value {
		return "True"
	}
	return "False"
}

// A call of a built-in function. Keyword arguments are Arguments with a non-empty Name.
type CallExpression struct {
	Token    token.Token
	Function string
	Args     []*Argument
}

func (ce *CallExpression) Children() []Node {
	result := []Node{}
	for _, arg := range ce.Args {
		result = append(result, arg.Value)
	}
	return result
}
func (ce *CallExpression) GetToken() *token.Token { return &ce.Token }
func (ce *CallExpression) String() string {
	var out bytes.Buffer
	out.WriteString(ce.Function)
	out.WriteString("(")
	for i, arg := range ce.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(arg.String())
	}
	out.WriteString(")")
	return out.String()
}

// Keys of a dict literal are always literal: a bare name in key position is not looked up.
type DictLiteral struct {
	Token  token.Token
	Keys   []string
	Values []Node
}

func (dl *DictLiteral) Children() []Node       { return dl.Values }
func (dl *DictLiteral) GetToken() *token.Token { return &dl.Token }
func (dl *DictLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, k := range dl.Keys {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(strconv.Quote(k))
		out.WriteString(": ")
		out.WriteString(dl.Values[i].String())
	}
	out.WriteString("}")
	return out.String()
}

type ExpressionStatement struct {
	Token      token.Token
	Expression Node
}

func (es *ExpressionStatement) Children() []Node       { return []Node{es.Expression} }
func (es *ExpressionStatement) GetToken() *token.Token { return &es.Token }
func (es *ExpressionStatement) String() string         { return es.Expression.String() }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) Children() []Node       { return []Node{} }
func (fl *FloatLiteral) GetToken() *token.Token { return &fl.Token }
func (fl *FloatLiteral) String() string         { return fl.Token.Literal }

type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) Children() []Node       { return []Node{} }
func (i *Identifier) GetToken() *token.Token { return &i.Token }
func (i *Identifier) String() string         { return i.Value }

type IntegerLiteral struct {
	Token token.Token
	Value *big.Int
}

func (il *IntegerLiteral) Children() []Node       { return []Node{} }
func (il *IntegerLiteral) GetToken() *token.Token { return &il.Token }
func (il *IntegerLiteral) String() string         { return il.Value.String() }

type LetStatement struct {
	Token token.Token
	Name  *Identifier
	Value Node
}

func (ls *LetStatement) Children() []Node       { return []Node{ls.Value} }
func (ls *LetStatement) GetToken() *token.Token { return &ls.Token }
func (ls *LetStatement) String() string {
	return "let " + ls.Name.Value + " = " + ls.Value.String()
}

type ListLiteral struct {
	Token token.Token
	Items []Node
}

func (ll *ListLiteral) Children() []Node       { return ll.Items }
func (ll *ListLiteral) GetToken() *token.Token { return &ll.Token }
func (ll *ListLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	for i, item := range ll.Items {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(item.String())
	}
	out.WriteString("]")
	return out.String()
}

type NoneLiteral struct {
	Token token.Token
}

func (nl *NoneLiteral) Children() []Node       { return []Node{} }
func (nl *NoneLiteral) GetToken() *token.Token { return &nl.Token }
func (nl *NoneLiteral) String() string         { return "None" }

// A run of operators of the same precedence, e.g. a - b + c, kept flat so that the evaluator
// can fold it from left to right. There is always one more operand than there are operators.
type OperatorChain struct {
	Token     token.Token
	Operands  []Node
	Operators []token.Token
}

func (oc *OperatorChain) Children() []Node       { return oc.Operands }
func (oc *OperatorChain) GetToken() *token.Token { return &oc.Token }
func (oc *OperatorChain) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(oc.Operands[0].String())
	for i, op := range oc.Operators {
		out.WriteString(" " + op.Literal + " ")
		out.WriteString(oc.Operands[i+1].String())
	}
	out.WriteString(")")
	return out.String()
}

// Exponentiation. The exponent may itself be a PowerExpression, which is how ** comes to
// associate to the right.
type PowerExpression struct {
	Token    token.Token
	Base     Node
	Exponent Node
}

func (pe *PowerExpression) Children() []Node       { return []Node{pe.Base, pe.Exponent} }
func (pe *PowerExpression) GetToken() *token.Token { return &pe.Token }
func (pe *PowerExpression) String() string {
	return "(" + pe.Base.String() + " ** " + pe.Exponent.String() + ")"
}

type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Node
}

func (pe *PrefixExpression) Children() []Node       { return []Node{pe.Right} }
func (pe *PrefixExpression) GetToken() *token.Token { return &pe.Token }
func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + pe.Right.String() + ")"
}

type PrintStatement struct {
	Token token.Token
	Value Node
}

func (ps *PrintStatement) Children() []Node       { return []Node{ps.Value} }
func (ps *PrintStatement) GetToken() *token.Token { return &ps.Token }
func (ps *PrintStatement) String() string         { return "print(" + ps.Value.String() + ")" }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Children() []Node       { return []Node{} }
func (sl *StringLiteral) GetToken() *token.Token { return &sl.Token }
func (sl *StringLiteral) String() string         { return strconv.Quote(sl.Value) }

// Other structures and functions.

// An argument in a call. The Name is empty for a positional argument.
type Argument struct {
	Token token.Token
	Name  string
	Value Node
}

func (a *Argument) IsKeyword() bool { return a.Name != "" }

func (a *Argument) String() string {
	if a.IsKeyword() {
		return a.Name + "=" + a.Value.String()
	}
	return a.Value.String()
}
