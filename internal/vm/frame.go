// Package vm implements the explicit-stack evaluator of spec.md §4.3:
// a loop over a slice of Frames (the VM's own data, not the host call
// stack), so that tail calls run in bounded host-stack space and the
// full computation state can be captured and re-entered via call/cc.
//
// This is grounded on internal/bytecode/vm.go's central idea in
// go-dws — a `[]callFrame` slice driven by `for len(vm.frames) > 0 {
// pop; switch on opcode }` — generalized from a packed-bytecode
// register machine to a tree-walking frame machine: instead of one
// opcode type with byte-packed operands, each spec.md §4.3 opcode
// here is a small Go struct implementing the Frame interface, holding
// exactly the state that opcode needs (its "operands") plus the
// environment in effect. This keeps the "operations become functions
// that pattern-match" idiom from spec.md §9 while being more directly
// typed than a generic Data/Extra union would be.
package vm

import (
	"errors"
	"io"

	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/value"
)

// Frame is one entry on the VM's explicit stack. Running a frame may
// push further frames (continuing the computation) and/or set the
// result register; it never recurses into the Go call stack for
// Scheme-level control flow.
//
// clone returns an independent copy of the frame, safe to run without
// affecting the original: any slice field a frame's run method grows
// via append (callFrame.Args, seqEvalFrame.Pending/Results) must get
// its own backing array. call/cc's Continuation snapshot (callcc.go)
// and replay (call.go's tailApply) both clone every captured frame —
// at capture time so the computation that keeps running past the
// call/cc site can't dirty the snapshot, and at every replay so a
// continuation invoked more than once always re-enters from the same
// pristine state instead of the previous invocation's leftovers.
type Frame interface {
	run(vm *VM) error
	clone() Frame
}

// cloneFrames deep-clones a captured frame slice so it can be stashed
// away (or replayed) without aliasing the mutable state of whichever
// copy runs next.
func cloneFrames(frames []Frame) []Frame {
	out := make([]Frame, len(frames))
	for i, f := range frames {
		out[i] = f.clone()
	}
	return out
}

// VM holds the explicit frame stack, the result register, and the
// global environment new top-level evaluations start from.
type VM struct {
	frames    []Frame
	result    value.Value
	Global    *env.Environment
	Output    io.Writer
	tracing   bool
	depth     int // frame-stack high-water mark, exposed for tests of tail-call boundedness
	maxFrames int   // 0 means unbounded; guards against runaway non-tail recursion
	pushErr   error // set by push when maxFrames is exceeded, consumed by drive
}

// New creates a VM with a fresh global environment.
func New(output io.Writer) *VM {
	return &VM{Global: env.New(), Output: output}
}

// SetMaxFrames bounds the explicit frame stack: pushing past the limit
// fails the in-flight evaluation with a KindEval error rather than
// growing without bound. A limit of 0 (the default) leaves the stack
// unbounded. This only guards non-tail recursion — proper tail calls
// never grow the stack, so a deeply tail-recursive loop is unaffected
// regardless of the limit (spec.md §8's boundedness property).
func (vm *VM) SetMaxFrames(n int) { vm.maxFrames = n }

func (vm *VM) push(f Frame) {
	vm.frames = append(vm.frames, f)
	if len(vm.frames) > vm.depth {
		vm.depth = len(vm.frames)
	}
	if vm.maxFrames > 0 && len(vm.frames) > vm.maxFrames && vm.pushErr == nil {
		vm.pushErr = schemeerr.Eval("maximum recursion depth exceeded")
	}
}

// pushJmp pushes f as the next frame to run (spec.md §4.3's "jmp"):
// evaluation continues there next, in tail position relative to
// whatever pushed it.
func (vm *VM) pushJmp(f Frame) { vm.push(f) }

// pushRet pushes f as a continuation that will run after whatever is
// pushed next completes, consuming the result register (spec.md §4.3's
// "pushRet"). Callers push the continuation first, then the
// expression to run before it, so LIFO order runs the expression
// first.
func (vm *VM) pushRet(f Frame) { vm.push(f) }

// drive runs frames until the stack height returns to stopDepth,
// implementing spec.md's RETURN opcode implicitly: rather than an
// explicit frame type, the loop simply halts when there is nothing
// left above stopDepth to run. Run and Apply pass stopDepth=0 and
// stopDepth=<entry height> respectively.
func (vm *VM) drive(stopDepth int) error {
	for len(vm.frames) > stopDepth {
		f := vm.frames[len(vm.frames)-1]
		vm.frames = vm.frames[:len(vm.frames)-1]
		if err := f.run(vm); err != nil {
			return err
		}
		if vm.pushErr != nil {
			err := vm.pushErr
			vm.pushErr = nil
			return err
		}
	}
	return nil
}

// Run evaluates expr in e to completion and returns the result.
func (vm *VM) Run(e *env.Environment, expr value.Value) (value.Value, error) {
	vm.result = value.Void
	vm.push(&evalFrame{Env: e, Expr: expr})
	if err := vm.drive(0); err != nil {
		return nil, err
	}
	return vm.result, nil
}

// Apply synchronously applies proc to args and returns the result.
// Used by built-ins (map, for-each, apply, force) that need to invoke
// a Scheme procedure from native Go code. It runs a nested drive loop
// bounded to the frames it pushes, so host Go recursion depth grows by
// one per nested Apply call — acceptable since these built-ins are not
// the tail-recursion path spec.md's invariant cares about (that path
// is direct closure self-application via EVAL_CLOSURE/pushBegin, which
// never nests Apply). A continuation captured inside an Apply callback
// and invoked after Apply returns behaves like an ordinary multi-shot
// continuation; one invoked *during* an Apply call in a way that tries
// to unwind past the Apply boundary itself is not supported: this
// implementation does not let call/cc escape outward across a
// map/for-each/apply/force native boundary.
func (vm *VM) Apply(proc value.Value, args []value.Value) (value.Value, error) {
	depth := len(vm.frames)
	saved := vm.result
	if err := vm.tailApply(proc, args); err != nil {
		vm.result = saved
		return nil, err
	}
	if err := vm.drive(depth); err != nil {
		vm.result = saved
		return nil, err
	}
	res := vm.result
	vm.result = saved
	return res, nil
}

// EvalValue evaluates an arbitrary Value as code in e — backs the
// `eval` built-in procedure. e is accepted as the value.Environment
// interface (rather than the concrete *env.Environment) so built-ins
// registered from internal/builtins, which only see that interface,
// can call back into the evaluator without importing internal/env.
func (vm *VM) EvalValue(e value.Environment, expr value.Value) (value.Value, error) {
	concrete, ok := e.(*env.Environment)
	if !ok {
		return nil, errUnsupportedEnvironment
	}
	depth := len(vm.frames)
	saved := vm.result
	vm.push(&evalFrame{Env: concrete, Expr: expr})
	if err := vm.drive(depth); err != nil {
		vm.result = saved
		return nil, err
	}
	res := vm.result
	vm.result = saved
	return res, nil
}

var errUnsupportedEnvironment = errors.New("internal error: unexpected environment implementation")

// Eval implements internal/builtins.Applier's Eval method as a thin
// alias for EvalValue, so *VM can be passed directly as the Applier
// built-ins call back through.
func (vm *VM) Eval(e value.Environment, expr value.Value) (value.Value, error) {
	return vm.EvalValue(e, expr)
}

// Depth returns the highest frame-stack height reached so far, for
// tests asserting that deep tail recursion stays bounded.
func (vm *VM) Depth() int { return vm.depth }

// SetTracing toggles debug tracing (the TRACE opcode).
func (vm *VM) SetTracing(on bool) { vm.tracing = on }

// Tracing reports the current trace toggle state.
func (vm *VM) Tracing() bool { return vm.tracing }
