// Package builtins implements spec.md §4.5's primitive procedures as
// value.Builtin Values, registered into a global environment. Each
// file groups one R5RS category, grounded on go-dws's
// internal/interp/builtins package layout (one file per stdlib
// category, a single Register entry point per file called from a
// top-level registry).
package builtins

import (
	"bufio"
	"io"

	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/value"
)

// Applier lets a built-in call back into the evaluator — needed by
// apply, map, for-each, force, and eval, all of which must invoke a
// Scheme procedure (or evaluate Scheme code) from native Go. Declared
// here rather than importing internal/vm directly, so this package
// does not depend on the VM's internals; pkg/scheme passes its *vm.VM
// in as the Applier.
type Applier interface {
	Apply(proc value.Value, args []value.Value) (value.Value, error)
	Eval(e value.Environment, expr value.Value) (value.Value, error)
}

// Ports bundles the default current-input-port/current-output-port
// streams a fresh interpreter starts with.
type Ports struct {
	Stdin  io.Reader
	Stdout io.Writer
}

// Register installs every built-in procedure into global.
func Register(global *env.Environment, ap Applier, ports Ports) {
	if ports.Stdin == nil {
		ports.Stdin = bufio.NewReader(io.MultiReader())
	}
	if ports.Stdout == nil {
		ports.Stdout = io.Discard
	}
	stdinPort := value.NewInputPort(ports.Stdin)
	stdoutPort := value.NewOutputPort(ports.Stdout)

	registerPredicates(global)
	registerNumeric(global)
	registerPairs(global)
	registerStrings(global)
	registerVectors(global)
	registerChars(global)
	registerSymbols(global)
	registerControl(global, ap)
	registerIO(global, stdinPort, stdoutPort)
}

// define is a small helper shared by every category file.
func define(global *env.Environment, name string, fn func(env value.Environment, args []value.Value) (value.Value, error)) {
	global.Define(symOf(name), &value.Builtin{Name: name, Fn: fn})
}
