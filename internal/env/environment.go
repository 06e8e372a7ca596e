// Package env implements the nested-scope environment model of
// spec.md §3, grounded on go-dws's internal/interp/runtime.Environment
// (store + outer pointer, Get/Set/Define/Has/GetLocal/Range). Scheme
// symbols are already case-folded at intern time (internal/symbol), so
// a plain map keyed by *symbol.Symbol pointer suffices in place of
// go-dws's case-insensitive ident.Map[Value].
package env

import (
	"fmt"

	"github.com/cwbudde/go-scheme/internal/symbol"
	"github.com/cwbudde/go-scheme/internal/value"
)

// Environment is a nested map from Symbol to Value with a parent link.
type Environment struct {
	store map[*symbol.Symbol]value.Value
	outer *Environment
}

// New creates a new root-level environment with no outer scope.
func New() *Environment {
	return &Environment{store: make(map[*symbol.Symbol]value.Value)}
}

// NewChild creates a new environment enclosed by e. Implements
// value.Environment so Closures can hold their defining scope without
// this package needing to be imported back from internal/value.
func (e *Environment) NewChild() value.Environment {
	return &Environment{store: make(map[*symbol.Symbol]value.Value), outer: e}
}

// Lookup walks parents for sym, returning (value, true) if bound,
// (nil, false) otherwise — spec.md's lookup fails with "unbound" at
// the call site, not inside Environment itself.
func (e *Environment) Lookup(sym *symbol.Symbol) (value.Value, bool) {
	for cur := e; cur != nil; cur = cur.outer {
		if v, ok := cur.store[sym]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define inserts or overwrites sym in the innermost (this) frame.
func (e *Environment) Define(sym *symbol.Symbol, val value.Value) {
	e.store[sym] = val
}

// DefineIfAbsent defines sym only if it is not already bound in this
// frame, returning false without modifying the environment if it was
// — backs MUST_DEFINE_TERM (spec.md §4.3), which must fail rather than
// silently overwrite.
func (e *Environment) DefineIfAbsent(sym *symbol.Symbol, val value.Value) bool {
	if _, ok := e.store[sym]; ok {
		return false
	}
	e.store[sym] = val
	return true
}

// Replace walks parents to find the innermost binding of sym and
// mutates it in place. Returns false if sym is never bound anywhere
// in the chain.
func (e *Environment) Replace(sym *symbol.Symbol, val value.Value) bool {
	for cur := e; cur != nil; cur = cur.outer {
		if _, ok := cur.store[sym]; ok {
			cur.store[sym] = val
			return true
		}
	}
	return false
}

// Has reports whether sym is bound in this environment or any outer scope.
func (e *Environment) Has(sym *symbol.Symbol) bool {
	_, ok := e.Lookup(sym)
	return ok
}

// GetLocal retrieves a value only from this environment, not outer scopes.
func (e *Environment) GetLocal(sym *symbol.Symbol) (value.Value, bool) {
	v, ok := e.store[sym]
	return v, ok
}

// Outer returns the enclosing environment, or nil at the root.
func (e *Environment) Outer() *Environment { return e.outer }

// MustLookup is a convenience for built-ins and the VM that formats
// the spec.md §3 "unbound" error directly.
func MustLookup(e *Environment, sym *symbol.Symbol) (value.Value, error) {
	if v, ok := e.Lookup(sym); ok {
		return v, nil
	}
	return nil, fmt.Errorf("unbound variable: %s", sym.Name)
}
