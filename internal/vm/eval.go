package vm

import (
	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/printer"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/symbol"
	"github.com/cwbudde/go-scheme/internal/value"
)

// evalFrame is the EVAL opcode: central dispatch on the shape of expr.
type evalFrame struct {
	Env  *env.Environment
	Expr value.Value
}

func (f *evalFrame) run(vm *VM) error {
	switch t := f.Expr.(type) {
	case *quoteWrap:
		vm.result = t.v
		return nil
	case *value.Symbol:
		v, ok := f.Env.Lookup(t.Sym)
		if !ok {
			return schemeerr.Eval("unbound variable: %s", t.Sym.Name)
		}
		vm.result = v
		return nil
	case *value.Pair:
		return vm.evalList(f.Env, t)
	default:
		if value.IsNull(t) {
			return schemeerr.Eval("illegal empty combination ()")
		}
		vm.result = t // self-evaluating atom: number, string, char, boolean, vector, ...
		return nil
	}
}

func (f *evalFrame) clone() Frame { c := *f; return &c }

// evalList dispatches a combination: a special form if the head names
// one, otherwise an application.
func (vm *VM) evalList(e *env.Environment, pair *value.Pair) error {
	if sym, ok := pair.Car.(*value.Symbol); ok {
		rest, err := value.ListToSlice(pair.Cdr)
		if err == nil { // proper list of operands; special forms require this
			switch sym.Sym {
			case kwQuote:
				if len(rest) != 1 {
					return schemeerr.Eval("quote requires exactly one argument")
				}
				vm.result = rest[0]
				return nil
			case kwQuasiquote:
				if len(rest) != 1 {
					return schemeerr.Eval("quasiquote requires exactly one argument")
				}
				return vm.pushQuasiquote(e, rest[0])
			case kwUnquote, kwUnquoteSplicing:
				return schemeerr.Eval("%s outside quasiquote", sym.Sym.Name)
			case kwIf:
				return vm.pushIf(e, rest)
			case kwSet:
				return vm.pushSet(e, rest)
			case kwDefine:
				return vm.pushDefine(e, rest, false)
			case kwLambda:
				return vm.buildLambda(e, rest)
			case kwDelay:
				return vm.buildDelay(e, rest)
			case kwCond:
				return vm.pushCondForm(e, rest)
			case kwCase:
				return vm.pushCaseForm(e, rest)
			case kwWhen:
				return vm.pushWhen(e, rest, false)
			case kwUnless:
				return vm.pushWhen(e, rest, true)
			case kwLet:
				return vm.pushLetForm(e, rest)
			case kwLetStar:
				return vm.pushLetStarForm(e, rest)
			case kwLetrec:
				return vm.pushLetrecForm(e, rest)
			case kwDo:
				return vm.pushDoForm(e, rest)
			case kwAnd:
				vm.pushAnd(e, rest)
				return nil
			case kwOr:
				vm.pushOr(e, rest)
				return nil
			case kwBegin:
				vm.pushBegin(e, rest)
				return nil
			case kwCallCC, kwCallWithCC:
				return vm.pushCallCC(e, rest)
			case kwTrace:
				vm.tracing = !vm.tracing
				vm.result = value.Bool(vm.tracing)
				return nil
			}
		}
	}
	forms, err := value.ListToSlice(pair)
	if err != nil {
		return schemeerr.Eval("improper list in application")
	}
	return vm.pushCall(e, forms)
}

// beginFrame is the BEGIN opcode: evaluate forms in order, the last
// in tail position.
type beginFrame struct {
	Env   *env.Environment
	Forms []value.Value
}

func (f *beginFrame) run(vm *VM) error {
	vm.pushBegin(f.Env, f.Forms)
	return nil
}

func (f *beginFrame) clone() Frame { c := *f; return &c }

// pushBegin evaluates forms in sequence, yielding the result of the
// last. An empty sequence yields Void. The last form is always a
// direct tail jmp, never wrapped in a continuation frame, satisfying
// spec.md §4.3.3's tail-call discipline.
func (vm *VM) pushBegin(e *env.Environment, forms []value.Value) {
	switch len(forms) {
	case 0:
		vm.result = value.Void
	case 1:
		vm.pushJmp(&evalFrame{Env: e, Expr: forms[0]})
	default:
		vm.pushRet(&beginFrame{Env: e, Forms: forms[1:]})
		vm.pushJmp(&evalFrame{Env: e, Expr: forms[0]})
	}
}

// andFrame/orFrame implement AND/AND_TEST and OR/OR_TEST: short-circuit
// sequences driven by reading the previous result from the register.
type andFrame struct {
	Env  *env.Environment
	Rest []value.Value
}

func (f *andFrame) run(vm *VM) error {
	if !value.Truthy(vm.result) {
		return nil
	}
	vm.pushAndContinue(f.Env, f.Rest)
	return nil
}

func (f *andFrame) clone() Frame { c := *f; return &c }

func (vm *VM) pushAnd(e *env.Environment, exprs []value.Value) {
	if len(exprs) == 0 {
		vm.result = value.True
		return
	}
	vm.pushAndContinue(e, exprs)
}

func (vm *VM) pushAndContinue(e *env.Environment, exprs []value.Value) {
	if len(exprs) == 1 {
		vm.pushJmp(&evalFrame{Env: e, Expr: exprs[0]})
		return
	}
	vm.pushRet(&andFrame{Env: e, Rest: exprs[1:]})
	vm.pushJmp(&evalFrame{Env: e, Expr: exprs[0]})
}

type orFrame struct {
	Env  *env.Environment
	Rest []value.Value
}

func (f *orFrame) run(vm *VM) error {
	if value.Truthy(vm.result) {
		return nil
	}
	vm.pushOrContinue(f.Env, f.Rest)
	return nil
}

func (f *orFrame) clone() Frame { c := *f; return &c }

func (vm *VM) pushOr(e *env.Environment, exprs []value.Value) {
	if len(exprs) == 0 {
		vm.result = value.False
		return
	}
	vm.pushOrContinue(e, exprs)
}

func (vm *VM) pushOrContinue(e *env.Environment, exprs []value.Value) {
	if len(exprs) == 1 {
		vm.pushJmp(&evalFrame{Env: e, Expr: exprs[0]})
		return
	}
	vm.pushRet(&orFrame{Env: e, Rest: exprs[1:]})
	vm.pushJmp(&evalFrame{Env: e, Expr: exprs[0]})
}

// ifFrame implements IF_INIT/IF_TERM.
type ifFrame struct {
	Env    *env.Environment
	Cons   value.Value
	Alt    value.Value
	HasAlt bool
}

func (f *ifFrame) run(vm *VM) error {
	if value.Truthy(vm.result) {
		vm.pushJmp(&evalFrame{Env: f.Env, Expr: f.Cons})
		return nil
	}
	if f.HasAlt {
		vm.pushJmp(&evalFrame{Env: f.Env, Expr: f.Alt})
		return nil
	}
	vm.result = value.Void
	return nil
}

func (f *ifFrame) clone() Frame { c := *f; return &c }

func (vm *VM) pushIf(e *env.Environment, rest []value.Value) error {
	if len(rest) < 2 || len(rest) > 3 {
		return schemeerr.Eval("if requires (if test consequent [alternate])")
	}
	f := &ifFrame{Env: e, Cons: rest[1]}
	if len(rest) == 3 {
		f.Alt = rest[2]
		f.HasAlt = true
	}
	vm.pushRet(f)
	vm.pushJmp(&evalFrame{Env: e, Expr: rest[0]})
	return nil
}

// setFrame implements SET/SET_TERM.
type setFrame struct {
	Env *env.Environment
	Sym *symbol.Symbol
}

func (f *setFrame) run(vm *VM) error {
	if !f.Env.Replace(f.Sym, vm.result) {
		return schemeerr.Eval("unbound variable: %s", f.Sym.Name)
	}
	vm.result = value.Void
	return nil
}

func (f *setFrame) clone() Frame { c := *f; return &c }

func (vm *VM) pushSet(e *env.Environment, rest []value.Value) error {
	if len(rest) != 2 {
		return schemeerr.Eval("set! requires (set! var expr)")
	}
	sym, ok := rest[0].(*value.Symbol)
	if !ok {
		return schemeerr.Eval("set!: not a symbol: %s", printer.ToScheme(rest[0]))
	}
	vm.pushRet(&setFrame{Env: e, Sym: sym.Sym})
	vm.pushJmp(&evalFrame{Env: e, Expr: rest[1]})
	return nil
}

// defineFrame implements DEFINE_INIT/DEFINE_TERM/MUST_DEFINE_TERM.
type defineFrame struct {
	Env  *env.Environment
	Sym  *symbol.Symbol
	Must bool
}

func (f *defineFrame) run(vm *VM) error {
	if f.Must {
		if !f.Env.DefineIfAbsent(f.Sym, vm.result) {
			return schemeerr.Eval("%s is already defined", f.Sym.Name)
		}
	} else {
		f.Env.Define(f.Sym, vm.result)
	}
	vm.result = value.Void
	return nil
}

func (f *defineFrame) clone() Frame { c := *f; return &c }

// pushDefine handles both `(define var expr)` and the function-sugar
// `(define (f p...) body...)` ≡ `(define f (lambda (p...) body...))`.
func (vm *VM) pushDefine(e *env.Environment, rest []value.Value, must bool) error {
	if len(rest) < 1 {
		return schemeerr.Eval("define requires at least a name")
	}
	switch head := rest[0].(type) {
	case *value.Symbol:
		var valExpr value.Value = value.Void
		if len(rest) >= 2 {
			valExpr = rest[1]
		}
		vm.pushRet(&defineFrame{Env: e, Sym: head.Sym, Must: must})
		vm.pushJmp(&evalFrame{Env: e, Expr: valExpr})
		return nil
	case *value.Pair:
		nameVal, ok := head.Car.(*value.Symbol)
		if !ok {
			return schemeerr.Eval("define: invalid function header")
		}
		formals, err := parseFormals(head.Cdr)
		if err != nil {
			return err
		}
		body := rest[1:]
		if len(body) == 0 {
			return schemeerr.Eval("define: function body must not be empty")
		}
		closure := &value.Closure{Name: nameVal.Sym.Name, Formals: formals, Body: body, Env: e}
		if must {
			if !e.DefineIfAbsent(nameVal.Sym, closure) {
				return schemeerr.Eval("%s is already defined", nameVal.Sym.Name)
			}
		} else {
			e.Define(nameVal.Sym, closure)
		}
		vm.result = value.Void
		return nil
	default:
		return schemeerr.Eval("define: invalid first argument")
	}
}

// buildLambda builds a Closure immediately; the body is stored
// unevaluated, so this is purely constructive — no frame is pushed.
func (vm *VM) buildLambda(e *env.Environment, rest []value.Value) error {
	if len(rest) < 2 {
		return schemeerr.Eval("lambda requires (lambda formals body...)")
	}
	formals, err := parseFormals(rest[0])
	if err != nil {
		return err
	}
	vm.result = &value.Closure{Formals: formals, Body: rest[1:], Env: e}
	return nil
}

// buildDelay wraps rest[0] as a Promise, capturing e. Purely
// constructive like lambda.
func (vm *VM) buildDelay(e *env.Environment, rest []value.Value) error {
	if len(rest) != 1 {
		return schemeerr.Eval("delay requires exactly one expression")
	}
	vm.result = &value.Promise{Env: e, Body: rest[0]}
	return nil
}

// parseFormals interprets a LAMBDA/define formals spec: a bare symbol
// means whole-varargs; a proper list of symbols means fixed arity. A
// dotted (improper-list) formals spec is a known, deliberately
// unsupported form (spec.md §4.3/§9) and is rejected rather than
// silently handled.
func parseFormals(formals value.Value) (value.Formals, error) {
	if sym, ok := formals.(*value.Symbol); ok {
		return value.Formals{Rest: sym.Sym}, nil
	}
	var fixed []*symbol.Symbol
	seen := make(map[*symbol.Symbol]bool)
	cur := formals
	for {
		switch t := cur.(type) {
		case *value.Pair:
			sym, ok := t.Car.(*value.Symbol)
			if !ok {
				return value.Formals{}, schemeerr.Eval("lambda: formal parameter must be a symbol")
			}
			if seen[sym.Sym] {
				return value.Formals{}, schemeerr.Eval("lambda: duplicate parameter %s", sym.Sym.Name)
			}
			seen[sym.Sym] = true
			fixed = append(fixed, sym.Sym)
			cur = t.Cdr
		default:
			if value.IsNull(cur) {
				return value.Formals{Fixed: fixed}, nil
			}
			// Improper (dotted) formals list: known unsupported form.
			return value.Formals{}, schemeerr.Eval("lambda: dotted formals list is not supported")
		}
	}
}
