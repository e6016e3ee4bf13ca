package builtins

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/log"

	"minilang/source/report"
	"minilang/source/settings"
	"minilang/source/token"
	"minilang/source/values"
)

type ParamKind int

const (
	POSITIONAL   ParamKind = iota // May be given by position or by keyword.
	KEYWORD_ONLY                  // Must be given by keyword.
)

type Param struct {
	Name     string
	Kind     ParamKind
	Required bool
	Default  values.Value
	Accepts  []values.ValueType // Empty means anything goes.
	Expected string             // How we describe what it accepts in error messages.
}

// What a built-in gets to see of the session it's called from.
type Context struct {
	Out     io.Writer
	Display settings.Display
}

type Builtin struct {
	Name   string
	Params []Param
	Fn     func(ctx *Context, args *Args) (values.Value, error)
}

func (b *Builtin) GetName() string {
	return b.Name
}

// Describes the signature, e.g. create_pivot(table, *, index, columns=None, ...).
func (b *Builtin) Describe() string {
	parts := []string{}
	star := false
	for _, p := range b.Params {
		if p.Kind == KEYWORD_ONLY && !star {
			parts = append(parts, "*")
			star = true
		}
		if p.Required {
			parts = append(parts, p.Name)
		} else {
			parts = append(parts, p.Name+"="+values.Literal(p.Default))
		}
	}
	return b.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (b *Builtin) positionalCount() int {
	count := 0
	for _, p := range b.Params {
		if p.Kind == POSITIONAL {
			count++
		}
	}
	return count
}

func (b *Builtin) param(name string) (Param, bool) {
	for _, p := range b.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// The Registry is fixed once a session has started. It is the only place functions come from.
type Registry struct {
	builtins map[string]*Builtin
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{builtins: map[string]*Builtin{}}
}

func (r *Registry) Register(bs ...*Builtin) {
	for _, b := range bs {
		if _, ok := r.builtins[b.Name]; !ok {
			r.order = append(r.order, b.Name)
		}
		r.builtins[b.Name] = b
	}
}

func (r *Registry) Lookup(name string) (*Builtin, bool) {
	b, ok := r.builtins[name]
	return b, ok
}

func (r *Registry) Names() []string {
	return append([]string{}, r.order...)
}

// An evaluated argument from a call site. Name is empty for a positional argument.
type Arg struct {
	Name  string
	Value values.Value
	Token *token.Token
}

type CallArgs struct {
	Positional []values.Value
	Keyword    map[string]values.Value
	order      []string
	tokens     map[string]*token.Token
}

// Splits evaluated arguments into the positional ones, in order, and the keyword ones. The
// same keyword twice is an error.
func Partition(function string, args []Arg) (*CallArgs, *report.Error) {
	result := &CallArgs{Positional: []values.Value{}, Keyword: map[string]values.Value{}, tokens: map[string]*token.Token{}}
	for _, arg := range args {
		if arg.Name == "" {
			result.Positional = append(result.Positional, arg.Value)
			continue
		}
		if _, ok := result.Keyword[arg.Name]; ok {
			return nil, report.CreateErr("call/dup/kw", arg.Token, function, arg.Name)
		}
		result.Keyword[arg.Name] = arg.Value
		result.order = append(result.order, arg.Name)
		result.tokens[arg.Name] = arg.Token
	}
	return result, nil
}

// Matches the arguments to the parameters of the function, filling in defaults and checking
// kinds.
func (b *Builtin) Bind(ca *CallArgs, tok *token.Token) (*Args, *report.Error) {
	if len(ca.Positional) > b.positionalCount() {
		return nil, report.CreateErr("call/args/many", tok, b.Name, b.positionalCount(), len(ca.Positional))
	}
	for _, name := range ca.order {
		if _, ok := b.param(name); !ok {
			return nil, report.CreateErr("call/args/unknown", ca.tokens[name], b.Name, name)
		}
	}
	bound := map[string]values.Value{}
	for i, v := range ca.Positional {
		p := b.Params[i]
		if _, ok := ca.Keyword[p.Name]; ok {
			return nil, report.CreateErr("call/dup/pos", ca.tokens[p.Name], b.Name, p.Name)
		}
		bound[p.Name] = v
	}
	for name, v := range ca.Keyword {
		bound[name] = v
	}
	for _, p := range b.Params {
		v, ok := bound[p.Name]
		if !ok {
			if p.Required {
				return nil, report.CreateErr("call/args/missing", tok, b.Name, p.Name)
			}
			bound[p.Name] = p.Default
			continue
		}
		if !accepts(p, v) {
			return nil, report.CreateErr("call/args/type", tok, b.Name, p.Name, p.Expected, describe(v))
		}
	}
	return &Args{function: b.Name, tok: tok, bound: bound}, nil
}

func accepts(p Param, v values.Value) bool {
	if len(p.Accepts) == 0 {
		return true
	}
	for _, t := range p.Accepts {
		if v.T == t {
			return true
		}
	}
	return !p.Required && values.Equal(v, p.Default)
}

func describe(v values.Value) string {
	name := v.TypeName()
	switch {
	case v.T == values.NONE:
		return name
	case strings.ContainsRune("aeiou", rune(name[0])):
		return "an " + name
	}
	return "a " + name
}

// Runs the built-in. Whatever goes wrong inside it comes back labeled as a BuiltinError,
// unless the built-in itself decided it was an ArgumentError.
func (b *Builtin) Call(ctx *Context, args *Args) (result values.Value, e *report.Error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errf("built-in %s panicked: %v", b.Name, r)
			result = values.NONE_VALUE
			e = report.CreateErr("built/panic", args.tok, b.Name, r)
		}
	}()
	log.LogVf("calling %s with %d arguments", b.Name, len(args.bound))
	v, err := b.Fn(ctx, args)
	if err != nil {
		if re, ok := err.(*report.Error); ok {
			return values.NONE_VALUE, re
		}
		return values.NONE_VALUE, report.CreateErr("built/fail", args.tok, b.Name, err)
	}
	return v, nil
}

func (b *Builtin) String() string {
	return fmt.Sprintf("<built-in function %s>", b.Name)
}
