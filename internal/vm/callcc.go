package vm

import (
	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/value"
)

// pushCallCC implements CALL_CC/CALL_CC_ALIAS (call/cc and
// call-with-current-continuation, the two accepted spellings). The
// single argument must evaluate to a procedure; that procedure is
// applied to a freshly captured Continuation.
func (vm *VM) pushCallCC(e *env.Environment, rest []value.Value) error {
	if len(rest) != 1 {
		return schemeerr.Eval("call/cc requires exactly one argument")
	}
	vm.pushRet(&callCCApplyFrame{Env: e})
	vm.pushJmp(&evalFrame{Env: e, Expr: rest[0]})
	return nil
}

// callCCApplyFrame runs once the operator expression has produced a
// procedure value (left in vm.result) and this frame has already
// popped itself off the stack — so the remaining vm.frames are
// exactly "the rest of the computation" relative to the call/cc call
// site. It snapshots that slice as the Continuation's captured state,
// then tail-applies proc to a Continuation wrapping it.
//
// Re-entering an old Continuation later (see tailApply) replaces
// vm.frames wholesale with a fresh clone of this snapshot, which
// correctly implements both single-shot escape (frames captured after
// the call/cc site still contain their own eventual termination) and
// multi-shot re-entry from a fresh top-level Run call. The one
// limitation: a continuation invoked from inside a built-in's nested
// Apply (map, for-each, apply, force) cannot unwind past that native
// Go call boundary — see VM.Apply's doc comment.
type callCCApplyFrame struct {
	Env *env.Environment
}

func (f *callCCApplyFrame) run(vm *VM) error {
	proc := vm.result
	if !value.IsProcedure(proc) {
		return schemeerr.Eval("call/cc: argument must be a procedure")
	}
	// Clone now, not just slice-copy: vm.frames keeps running after
	// this point, and frames like callFrame/seqEvalFrame mutate their
	// own Args/Results in place, which would otherwise dirty the
	// snapshot out from under it.
	k := &value.Continuation{Frames: cloneFrames(vm.frames)}
	return vm.tailApply(proc, []value.Value{k})
}

func (f *callCCApplyFrame) clone() Frame { c := *f; return &c }
