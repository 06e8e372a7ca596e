package vm

import (
	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/printer"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/value"
)

// callFrame consolidates CALL_INIT/CALL_LOOP/CALL_TERM into a single
// self-reposting frame: it evaluates the operator and remaining
// operands left to right, accumulating results, then tail-applies.
type callFrame struct {
	Env      *env.Environment
	Pending  []value.Value // forms not yet evaluated
	Args     []value.Value // results collected so far (operator first)
	operator bool          // true while Args[0] (the operator) is still pending
}

func (f *callFrame) run(vm *VM) error {
	f.Args = append(f.Args, vm.result)
	if len(f.Pending) == 0 {
		proc := f.Args[0]
		args := f.Args[1:]
		return vm.tailApply(proc, args)
	}
	next := f.Pending[0]
	f.Pending = f.Pending[1:]
	vm.pushRet(f)
	vm.pushJmp(&evalFrame{Env: f.Env, Expr: next})
	return nil
}

func (f *callFrame) clone() Frame {
	c := *f
	c.Pending = append([]value.Value(nil), f.Pending...)
	c.Args = append([]value.Value(nil), f.Args...)
	return &c
}

// pushCall evaluates forms (operator followed by operand expressions)
// left to right and applies the result of the first to the rest.
func (vm *VM) pushCall(e *env.Environment, forms []value.Value) error {
	if len(forms) == 0 {
		return schemeerr.Eval("illegal empty combination ()")
	}
	f := &callFrame{Env: e, Pending: forms[1:], Args: make([]value.Value, 0, len(forms))}
	vm.pushRet(f)
	vm.pushJmp(&evalFrame{Env: e, Expr: forms[0]})
	return nil
}

// tailApply applies proc to args in tail position: Builtins run
// synchronously to completion, Closures push their body to run via
// pushBegin (the actual tail-call elimination — no Go stack growth),
// and Continuations replace the frame stack wholesale.
func (vm *VM) tailApply(proc value.Value, args []value.Value) error {
	switch p := proc.(type) {
	case *value.Builtin:
		res, err := p.Fn(vm.Global, args)
		if err != nil {
			return err
		}
		vm.result = res
		return nil
	case *value.Closure:
		child, err := bindFormals(p, args)
		if err != nil {
			return err
		}
		vm.pushBegin(child, p.Body)
		return nil
	case *value.Continuation:
		frames, ok := p.Frames.([]Frame)
		if !ok {
			return schemeerr.Eval("invalid continuation")
		}
		// Clone on every replay: a continuation is multi-shot, and
		// without this, the first invocation's in-place frame
		// mutations (callFrame.Args, seqEvalFrame.Results) would leak
		// into every later invocation of the same captured Continuation.
		vm.frames = cloneFrames(frames)
		if len(args) == 0 {
			vm.result = value.Void
		} else {
			vm.result = args[0]
		}
		return nil
	default:
		return schemeerr.Eval("not a procedure: %s", printer.ToScheme(proc))
	}
}

// bindFormals builds a fresh child environment binding c's formals to
// args, collecting any surplus into the variadic rest parameter.
func bindFormals(c *value.Closure, args []value.Value) (*env.Environment, error) {
	fixed := c.Formals.Fixed
	if c.Formals.Rest == nil {
		if len(args) != len(fixed) {
			return nil, schemeerr.Eval("%s: expected %d argument(s), got %d", procName(c), len(fixed), len(args))
		}
	} else if len(args) < len(fixed) {
		return nil, schemeerr.Eval("%s: expected at least %d argument(s), got %d", procName(c), len(fixed), len(args))
	}

	childIface := c.Env.NewChild()
	child, ok := childIface.(*env.Environment)
	if !ok {
		return nil, schemeerr.Eval("internal error: unexpected environment implementation")
	}
	for i, sym := range fixed {
		child.Define(sym, args[i])
	}
	if c.Formals.Rest != nil {
		child.Define(c.Formals.Rest, value.SliceToList(args[len(fixed):]))
	}
	return child, nil
}

func procName(c *value.Closure) string {
	if c.Name != "" {
		return c.Name
	}
	return "#[closure anonymous]"
}
