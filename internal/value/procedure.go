package value

import "github.com/cwbudde/go-scheme/internal/symbol"

// Builtin is a native procedure of (environment, args) -> (value, error).
type Builtin struct {
	Name string
	Fn   func(env Environment, args []Value) (Value, error)
}

func (*Builtin) schemeValue() {}

// Formals describes a Closure's parameter list: a sequence of fixed
// parameter symbols plus an optional variadic tail symbol that
// collects any remaining arguments into a list. A whole-symbol
// variadic formal (spec.md §4.3, LAMBDA) is represented with no fixed
// params and a non-empty Rest.
type Formals struct {
	Fixed []*symbol.Symbol
	Rest  *symbol.Symbol // nil if not variadic
}

// Closure is a procedure bundled with the environment it was created
// in (spec.md GLOSSARY).
type Closure struct {
	Name    string // empty for anonymous lambdas; set by (define (f ...) ...) sugar
	Formals Formals
	Body    []Value // non-empty sequence of body forms
	Env     Environment
}

func (*Closure) schemeValue() {}

// ContinuationFrames is an opaque snapshot of VM frame-stack state.
// It is declared as an empty interface here (rather than the concrete
// frame-stack type from internal/vm) for the same reason Environment
// is declared in this package: internal/vm must import internal/value
// to manipulate Values, so a Value variant cannot hold a concrete
// internal/vm type without a cycle. internal/vm both produces and
// consumes these snapshots.
type ContinuationFrames interface{}

// Continuation is an immutable, re-enterable snapshot of the VM's
// frame stack at the point call/cc captured it.
type Continuation struct {
	Frames ContinuationFrames
}

func (*Continuation) schemeValue() {}

// IsProcedure reports whether v is any procedure sub-variant.
func IsProcedure(v Value) bool {
	switch v.(type) {
	case *Builtin, *Closure, *Continuation:
		return true
	default:
		return false
	}
}
