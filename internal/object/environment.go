package object

import "fmt"

// Environment is a lexical scope: a binding table plus a link to the
// enclosing scope it nests inside.
type Environment struct {
	store     map[string]Value
	constants map[string]bool
	outer     *Environment
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{
		store:     make(map[string]Value),
		constants: make(map[string]bool),
	}
}

// NewEnclosedEnvironment creates a scope nested inside outer, as used for
// function bodies, blocks, and loop bodies.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Get resolves name by searching this scope and then each enclosing scope
// in turn.
func (e *Environment) Get(name string) (Value, bool) {
	if val, ok := e.store[name]; ok {
		return val, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// GetLocal resolves name only within this scope, ignoring outer scopes.
func (e *Environment) GetLocal(name string) (Value, bool) {
	val, ok := e.store[name]
	return val, ok
}

// Define binds name to val in this scope, shadowing any outer binding of
// the same name. Used for `let`/`const` declarations and parameter binding.
func (e *Environment) Define(name string, val Value) {
	e.store[name] = val
}

// DefineConst behaves like Define but marks name as immutable in this
// scope, so a later Set targeting it fails.
func (e *Environment) DefineConst(name string, val Value) {
	e.store[name] = val
	e.constants[name] = true
}

// Set assigns to an already-declared variable, searching outward through
// enclosing scopes until it finds where name was declared. It returns an
// error if name was never declared, or if it was declared with `const`.
func (e *Environment) Set(name string, val Value) error {
	if _, ok := e.store[name]; ok {
		if e.constants[name] {
			return fmt.Errorf("cannot assign to constant %q", name)
		}
		e.store[name] = val
		return nil
	}
	if e.outer != nil {
		return e.outer.Set(name, val)
	}
	return fmt.Errorf("undefined variable %q", name)
}

// Has reports whether name is bound in this scope or any enclosing scope.
func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// IsConstant reports whether name was declared with `const` in whichever
// scope defines it.
func (e *Environment) IsConstant(name string) bool {
	if _, ok := e.store[name]; ok {
		return e.constants[name]
	}
	if e.outer != nil {
		return e.outer.IsConstant(name)
	}
	return false
}

// Outer returns the enclosing scope, or nil for the root environment.
func (e *Environment) Outer() *Environment {
	return e.outer
}
