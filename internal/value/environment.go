package value

import "github.com/cwbudde/go-scheme/internal/symbol"

// Environment is the minimal surface Closures and Continuations need
// from the environment model. It is declared here, rather than
// imported from internal/env, to break the circular dependency that
// would otherwise result: internal/env stores Values and so must
// import this package, while a Closure (a Value) must hold the
// environment it closed over. internal/env.Environment implements
// this interface; see its doc comment, which mirrors the same
// break-the-cycle note on go-dws's runtime.Environment.NewEnclosed.
type Environment interface {
	Lookup(sym *symbol.Symbol) (Value, bool)
	Define(sym *symbol.Symbol, val Value)
	Replace(sym *symbol.Symbol, val Value) bool
	NewChild() Environment
}
