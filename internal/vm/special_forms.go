package vm

import (
	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/symbol"
	"github.com/cwbudde/go-scheme/internal/value"
)

// pushWhen implements WHEN and, with negate=true, UNLESS, both built
// directly as an if-equivalent rather than macro-expanded to cond.
func (vm *VM) pushWhen(e *env.Environment, rest []value.Value, negate bool) error {
	if len(rest) < 1 {
		return schemeerr.Eval("when/unless requires a test expression")
	}
	vm.pushRet(&whenFrame{Env: e, Body: rest[1:], Negate: negate})
	vm.pushJmp(&evalFrame{Env: e, Expr: rest[0]})
	return nil
}

type whenFrame struct {
	Env    *env.Environment
	Body   []value.Value
	Negate bool
}

func (f *whenFrame) run(vm *VM) error {
	truthy := value.Truthy(vm.result)
	if f.Negate {
		truthy = !truthy
	}
	if !truthy {
		vm.result = value.Void
		return nil
	}
	vm.pushBegin(f.Env, f.Body)
	return nil
}

func (f *whenFrame) clone() Frame { c := *f; return &c }

// --- cond ---------------------------------------------------------

type condClause struct {
	Test  value.Value
	Arrow bool // `(test => proc)` form
	Body  []value.Value
	Else  bool
}

func (vm *VM) pushCondForm(e *env.Environment, rest []value.Value) error {
	clauses := make([]condClause, 0, len(rest))
	for _, form := range rest {
		parts, err := value.ListToSlice(form)
		if err != nil || len(parts) == 0 {
			return schemeerr.Eval("cond: invalid clause")
		}
		cl := condClause{Test: parts[0], Body: parts[1:]}
		if sym, ok := parts[0].(*value.Symbol); ok && sym.Sym == kwElse {
			cl.Else = true
		}
		if len(parts) == 3 {
			if arrow, ok := parts[1].(*value.Symbol); ok && arrow.Sym == kwArrow {
				cl.Arrow = true
				cl.Body = parts[2:]
			}
		}
		clauses = append(clauses, cl)
	}
	return vm.runCondClauses(e, clauses)
}

func (vm *VM) runCondClauses(e *env.Environment, clauses []condClause) error {
	if len(clauses) == 0 {
		vm.result = value.Void
		return nil
	}
	first := clauses[0]
	if first.Else {
		vm.pushBegin(e, first.Body)
		return nil
	}
	vm.pushRet(&condFrame{Env: e, Clause: first, Rest: clauses[1:]})
	vm.pushJmp(&evalFrame{Env: e, Expr: first.Test})
	return nil
}

type condFrame struct {
	Env    *env.Environment
	Clause condClause
	Rest   []condClause
}

func (f *condFrame) run(vm *VM) error {
	if !value.Truthy(vm.result) {
		return vm.runCondClauses(f.Env, f.Rest)
	}
	if len(f.Clause.Body) == 0 {
		// `(test)` with no body: the test's own value is the result.
		return nil
	}
	if f.Clause.Arrow {
		test := vm.result
		return vm.pushCall(f.Env, []value.Value{f.Clause.Body[0], &quoteWrap{test}})
	}
	vm.pushBegin(f.Env, f.Clause.Body)
	return nil
}

func (f *condFrame) clone() Frame { c := *f; return &c }

// quoteWrap lets a host-built value.Value be spliced into a form that
// the evaluator will run through evalFrame without re-evaluating it —
// used by cond's `=>` clause, and by named let/do to pass an
// already-built Closure in operator position without making it look
// like a symbol reference or combination. evalFrame unwraps it
// directly to the wrapped value.
type quoteWrap struct{ v value.Value }

func (q *quoteWrap) schemeValue() {}

// --- case -----------------------------------------------------------

type caseClauseSpec struct {
	Data []value.Value
	Body []value.Value
	Else bool
}

func (vm *VM) pushCaseForm(e *env.Environment, rest []value.Value) error {
	if len(rest) < 1 {
		return schemeerr.Eval("case requires a key expression")
	}
	clauses := make([]caseClauseSpec, 0, len(rest)-1)
	for _, form := range rest[1:] {
		parts, err := value.ListToSlice(form)
		if err != nil || len(parts) == 0 {
			return schemeerr.Eval("case: invalid clause")
		}
		if sym, ok := parts[0].(*value.Symbol); ok && sym.Sym == kwElse {
			clauses = append(clauses, caseClauseSpec{Body: parts[1:], Else: true})
			continue
		}
		data, err := value.ListToSlice(parts[0])
		if err != nil {
			return schemeerr.Eval("case: clause datum list must be a proper list")
		}
		clauses = append(clauses, caseClauseSpec{Data: data, Body: parts[1:]})
	}
	vm.pushRet(&caseFrame{Env: e, Clauses: clauses})
	vm.pushJmp(&evalFrame{Env: e, Expr: rest[0]})
	return nil
}

type caseFrame struct {
	Env     *env.Environment
	Clauses []caseClauseSpec
}

func (f *caseFrame) run(vm *VM) error {
	key := vm.result
	for _, cl := range f.Clauses {
		if cl.Else {
			vm.pushBegin(f.Env, cl.Body)
			return nil
		}
		for _, d := range cl.Data {
			if value.Eqv(key, d) {
				vm.pushBegin(f.Env, cl.Body)
				return nil
			}
		}
	}
	vm.result = value.Void
	return nil
}

func (f *caseFrame) clone() Frame { c := *f; return &c }

// --- let / let* / letrec / named let --------------------------------

type letBinding struct {
	Sym  *symbol.Symbol
	Init value.Value
}

func parseLetBindings(form value.Value) ([]letBinding, error) {
	items, err := value.ListToSlice(form)
	if err != nil {
		return nil, schemeerr.Eval("let: bindings must be a proper list")
	}
	out := make([]letBinding, 0, len(items))
	for _, item := range items {
		parts, err := value.ListToSlice(item)
		if err != nil || len(parts) != 2 {
			return nil, schemeerr.Eval("let: each binding must be (name init)")
		}
		sym, ok := parts[0].(*value.Symbol)
		if !ok {
			return nil, schemeerr.Eval("let: binding name must be a symbol")
		}
		out = append(out, letBinding{Sym: sym.Sym, Init: parts[1]})
	}
	return out, nil
}

// pushLetForm implements LET, including the named-let form
// `(let name ((v init)...) body...)`, desugared to an immediately
// self-applied recursive lambda.
func (vm *VM) pushLetForm(e *env.Environment, rest []value.Value) error {
	if len(rest) < 1 {
		return schemeerr.Eval("let requires bindings and a body")
	}
	if name, ok := rest[0].(*value.Symbol); ok {
		if len(rest) < 2 {
			return schemeerr.Eval("named let requires bindings and a body")
		}
		bindings, err := parseLetBindings(rest[1])
		if err != nil {
			return err
		}
		body := rest[2:]
		if len(body) == 0 {
			return schemeerr.Eval("let: body must not be empty")
		}
		loopEnvIface := e.NewChild()
		loopEnv := loopEnvIface.(*env.Environment)
		formals := make([]*symbol.Symbol, len(bindings))
		inits := make([]value.Value, len(bindings))
		for i, b := range bindings {
			formals[i] = b.Sym
			inits[i] = b.Init
		}
		closure := &value.Closure{Name: name.Sym.Name, Formals: value.Formals{Fixed: formals}, Body: body, Env: loopEnv}
		loopEnv.Define(name.Sym, closure)
		return vm.pushCall(e, append([]value.Value{&quoteWrap{closure}}, inits...))
	}

	bindings, err := parseLetBindings(rest[0])
	if err != nil {
		return err
	}
	body := rest[1:]
	if len(body) == 0 {
		return schemeerr.Eval("let: body must not be empty")
	}
	inits := make([]value.Value, len(bindings))
	for i, b := range bindings {
		inits[i] = b.Init
	}
	vm.pushSeqEval(e, inits, func(vm *VM, results []value.Value) error {
		childIface := e.NewChild()
		child := childIface.(*env.Environment)
		for i, b := range bindings {
			child.Define(b.Sym, results[i])
		}
		vm.pushBegin(child, body)
		return nil
	})
	return nil
}

// pushLetStarForm implements LET*: bindings are evaluated and bound
// one at a time in a single, progressively growing environment, so
// each init expression sees all earlier bindings.
func (vm *VM) pushLetStarForm(e *env.Environment, rest []value.Value) error {
	if len(rest) < 1 {
		return schemeerr.Eval("let* requires bindings and a body")
	}
	bindings, err := parseLetBindings(rest[0])
	if err != nil {
		return err
	}
	body := rest[1:]
	if len(body) == 0 {
		return schemeerr.Eval("let*: body must not be empty")
	}
	childIface := e.NewChild()
	child := childIface.(*env.Environment)
	vm.stepLetStar(child, bindings, body)
	return nil
}

func (vm *VM) stepLetStar(e *env.Environment, bindings []letBinding, body []value.Value) {
	if len(bindings) == 0 {
		vm.pushBegin(e, body)
		return
	}
	first := bindings[0]
	vm.pushRet(&letStarFrame{Env: e, Sym: first.Sym, Rest: bindings[1:], Body: body})
	vm.pushJmp(&evalFrame{Env: e, Expr: first.Init})
}

type letStarFrame struct {
	Env  *env.Environment
	Sym  *symbol.Symbol
	Rest []letBinding
	Body []value.Value
}

func (f *letStarFrame) run(vm *VM) error {
	f.Env.Define(f.Sym, vm.result)
	vm.stepLetStar(f.Env, f.Rest, f.Body)
	return nil
}

func (f *letStarFrame) clone() Frame { c := *f; return &c }

// pushLetrecForm implements LETREC: all names are pre-declared to Void
// in one fresh environment, every init is evaluated against that same
// environment (so mutually recursive lambdas close over each other),
// and only once all inits finish are the names re-defined to their
// computed values.
func (vm *VM) pushLetrecForm(e *env.Environment, rest []value.Value) error {
	if len(rest) < 1 {
		return schemeerr.Eval("letrec requires bindings and a body")
	}
	bindings, err := parseLetBindings(rest[0])
	if err != nil {
		return err
	}
	body := rest[1:]
	if len(body) == 0 {
		return schemeerr.Eval("letrec: body must not be empty")
	}
	childIface := e.NewChild()
	child := childIface.(*env.Environment)
	for _, b := range bindings {
		child.Define(b.Sym, value.Void)
	}
	inits := make([]value.Value, len(bindings))
	for i, b := range bindings {
		inits[i] = b.Init
	}
	vm.pushSeqEval(child, inits, func(vm *VM, results []value.Value) error {
		for i, b := range bindings {
			child.Define(b.Sym, results[i])
		}
		vm.pushBegin(child, body)
		return nil
	})
	return nil
}

// --- generic left-to-right sequence evaluation -----------------------

type seqEvalFrame struct {
	Env     *env.Environment
	Pending []value.Value
	Results []value.Value
	Done    func(vm *VM, results []value.Value) error
}

func (f *seqEvalFrame) run(vm *VM) error {
	f.Results = append(f.Results, vm.result)
	if len(f.Pending) == 0 {
		return f.Done(vm, f.Results)
	}
	next := f.Pending[0]
	f.Pending = f.Pending[1:]
	vm.pushRet(f)
	vm.pushJmp(&evalFrame{Env: f.Env, Expr: next})
	return nil
}

func (f *seqEvalFrame) clone() Frame {
	c := *f
	c.Pending = append([]value.Value(nil), f.Pending...)
	c.Results = append([]value.Value(nil), f.Results...)
	return &c
}

// pushSeqEval evaluates exprs left to right in e, then invokes done
// with the collected results. Used by LET and LETREC, whose bindings
// must all be evaluated before any body form runs.
func (vm *VM) pushSeqEval(e *env.Environment, exprs []value.Value, done func(vm *VM, results []value.Value) error) {
	if len(exprs) == 0 {
		if err := done(vm, nil); err != nil {
			vm.pushRet(&errFrame{err: err})
		}
		return
	}
	f := &seqEvalFrame{Env: e, Pending: exprs[1:], Results: make([]value.Value, 0, len(exprs)), Done: done}
	vm.pushRet(f)
	vm.pushJmp(&evalFrame{Env: e, Expr: exprs[0]})
}

// errFrame surfaces a synchronously-known error through the normal
// frame-running path so pushSeqEval's empty-exprs case need not thread
// an early-return error up through VM.drive's caller directly.
type errFrame struct{ err error }

func (f *errFrame) run(vm *VM) error { return f.err }

func (f *errFrame) clone() Frame { c := *f; return &c }

// --- do ---------------------------------------------------------------

// pushDoForm implements DO, expanded into the named-let form spec.md
// describes: `(do ((v init step)...) (test expr...) body...)` becomes
// a self-recursive loop procedure, built and dispatched through the
// same machinery as a named let rather than a bespoke loop frame.
func (vm *VM) pushDoForm(e *env.Environment, rest []value.Value) error {
	if len(rest) < 2 {
		return schemeerr.Eval("do requires bindings, a test clause, and a body")
	}
	specs, err := value.ListToSlice(rest[0])
	if err != nil {
		return schemeerr.Eval("do: bindings must be a proper list")
	}
	type doVar struct {
		Sym  *symbol.Symbol
		Init value.Value
		Step value.Value
	}
	vars := make([]doVar, 0, len(specs))
	for _, spec := range specs {
		parts, err := value.ListToSlice(spec)
		if err != nil || (len(parts) != 2 && len(parts) != 3) {
			return schemeerr.Eval("do: each binding must be (var init [step])")
		}
		sym, ok := parts[0].(*value.Symbol)
		if !ok {
			return schemeerr.Eval("do: binding name must be a symbol")
		}
		step := parts[0] // no step: re-bind to itself each iteration
		if len(parts) == 3 {
			step = parts[2]
		}
		vars = append(vars, doVar{Sym: sym.Sym, Init: parts[1], Step: step})
	}

	testClause, err := value.ListToSlice(rest[1])
	if err != nil || len(testClause) == 0 {
		return schemeerr.Eval("do: test clause must be (test expr...)")
	}
	test := testClause[0]
	resultBody := testClause[1:]
	commandBody := rest[2:]

	loopName := symbol.Gensym("do-loop")
	formals := make([]*symbol.Symbol, len(vars))
	inits := make([]value.Value, len(vars))
	steps := make([]value.Value, len(vars))
	for i, v := range vars {
		formals[i] = v.Sym
		inits[i] = v.Init
		steps[i] = v.Step
	}

	loopEnvIface := e.NewChild()
	loopEnv := loopEnvIface.(*env.Environment)

	recurCall := value.List(append([]value.Value{value.NewSymbol(loopName)}, steps...)...)
	continueBranch := prependBegin(append(append([]value.Value{}, commandBody...), recurCall))
	ifExpr := value.List(value.NewSymbol(kwIf), test, prependBegin(resultBody), continueBranch)
	bodyForms := []value.Value{ifExpr}

	closure := &value.Closure{Name: loopName.Name, Formals: value.Formals{Fixed: formals}, Body: bodyForms, Env: loopEnv}
	loopEnv.Define(loopName, closure)
	return vm.pushCall(e, append([]value.Value{&quoteWrap{closure}}, inits...))
}

// prependBegin wraps forms in a single (begin ...) expression when
// there is more than one, or returns the lone form / Void unchanged.
func prependBegin(forms []value.Value) value.Value {
	switch len(forms) {
	case 0:
		return value.Void
	case 1:
		return forms[0]
	default:
		return value.List(append([]value.Value{value.NewSymbol(kwBegin)}, forms...)...)
	}
}
