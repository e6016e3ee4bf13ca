package environment

import (
	"minilang/source/values"
)

// The Environment is the one flat mapping from names to values that a session has. There is
// no scoping: a binding made by any statement is visible to every later one, and stays even
// if a later statement in the same unit fails.
type Environment struct {
	Store map[string]values.Value
	order []string
}

func New() *Environment {
	return &Environment{Store: make(map[string]values.Value)}
}

func (e *Environment) Get(name string) (values.Value, bool) {
	v, ok := e.Store[name]
	return v, ok
}

// Binds the name, replacing any existing binding.
func (e *Environment) Set(name string, val values.Value) {
	if _, ok := e.Store[name]; !ok {
		e.order = append(e.order, name)
	}
	e.Store[name] = val
}

func (e *Environment) Exists(name string) bool {
	_, ok := e.Store[name]
	return ok
}

// The bound names in the order they were first bound.
func (e *Environment) Names() []string {
	return append([]string{}, e.order...)
}

func (e *Environment) Len() int {
	return len(e.Store)
}
