package vm

import (
	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/symbol"
	"github.com/cwbudde/go-scheme/internal/value"
)

var (
	symListToVector = symbol.Of("list->vector")
	symAppend       = symbol.Of("append")
	symCons         = symbol.Of("cons")
	symListProc     = symbol.Of("list")
)

// pushQuasiquote implements QQ_INIT: expandQQ rewrites the template
// into an ordinary expression (built from quote/cons/append/
// list->vector and the unquoted sub-expressions), which is then
// evaluated normally. Nesting depth is tracked by plain Go recursion
// rather than VM frames, since quasiquote nesting is bounded by the
// static source text, not by runtime data — unlike every other form
// in this package, it cannot recurse arbitrarily deep at runtime.
func (vm *VM) pushQuasiquote(e *env.Environment, template value.Value) error {
	expr, dynamic := expandQQ(template, 0)
	if !dynamic {
		// Nothing inside needed evaluation: collapse straight back to
		// the literal template, avoiding the reconstruction allocation
		// (spec.md's stated rationale for this optimization).
		vm.result = template
		return nil
	}
	vm.pushJmp(&evalFrame{Env: e, Expr: expr})
	return nil
}

// expandQQ rewrites a quasiquote template at nesting depth into an
// expression to evaluate, and reports whether it contains any
// evaluated (unquote/unquote-splicing) part at all. depth counts
// quasiquote levels opened but not yet closed by a matching unquote.
func expandQQ(t value.Value, depth int) (value.Value, bool) {
	switch v := t.(type) {
	case *value.Vector:
		return expandQQVector(v, depth)
	case *value.Pair:
		return expandQQPair(v, depth)
	default:
		return quoteOf(t), false
	}
}

func expandQQVector(v *value.Vector, depth int) (value.Value, bool) {
	items := make([]value.Value, 0, len(v.Items))
	anyDynamic := false
	for _, item := range v.Items {
		expanded, dyn := expandQQ(item, depth)
		items = append(items, expanded)
		anyDynamic = anyDynamic || dyn
	}
	if !anyDynamic {
		return quoteOf(v), false
	}
	listCall := value.List(append([]value.Value{value.NewSymbol(symListProc)}, items...)...)
	return value.List(value.NewSymbol(symListToVector), listCall), true
}

func expandQQPair(v *value.Pair, depth int) (value.Value, bool) {
	if x, ok := taggedArg(v, kwUnquote); ok {
		if depth == 0 {
			return x, true
		}
		inner, dyn := expandQQ(x, depth-1)
		if !dyn {
			return quoteOf(v), false
		}
		return reconstructTagged(kwUnquote, inner), true
	}
	if x, ok := taggedArg(v, kwQuasiquote); ok {
		inner, dyn := expandQQ(x, depth+1)
		if !dyn {
			return quoteOf(v), false
		}
		return reconstructTagged(kwQuasiquote, inner), true
	}
	if x, ok := taggedArg(v, kwUnquoteSplicing); ok {
		// A bare unquote-splicing not in a list-element (car) position
		// is not a spec-legal construct; best-effort treat it like
		// unquote rather than erroring.
		if depth == 0 {
			return x, true
		}
		inner, dyn := expandQQ(x, depth-1)
		if !dyn {
			return quoteOf(v), false
		}
		return reconstructTagged(kwUnquoteSplicing, inner), true
	}
	if carPair, ok := v.Car.(*value.Pair); ok && depth == 0 {
		if spliceExpr, ok2 := taggedArg(carPair, kwUnquoteSplicing); ok2 {
			tailExpr, _ := expandQQ(v.Cdr, depth)
			return value.List(value.NewSymbol(symAppend), spliceExpr, tailExpr), true
		}
	}
	carExpr, carDyn := expandQQ(v.Car, depth)
	cdrExpr, cdrDyn := expandQQ(v.Cdr, depth)
	if !carDyn && !cdrDyn {
		return quoteOf(v), false
	}
	return value.List(value.NewSymbol(symCons), carExpr, cdrExpr), true
}

// taggedArg reports whether p is exactly `(tag x)` and returns x.
func taggedArg(p *value.Pair, tag *symbol.Symbol) (value.Value, bool) {
	sym, ok := p.Car.(*value.Symbol)
	if !ok || sym.Sym != tag {
		return nil, false
	}
	rest, ok := p.Cdr.(*value.Pair)
	if !ok || !value.IsNull(rest.Cdr) {
		return nil, false
	}
	return rest.Car, true
}

func quoteOf(v value.Value) value.Value {
	return value.List(value.NewSymbol(kwQuote), v)
}

func reconstructTagged(tag *symbol.Symbol, inner value.Value) value.Value {
	return value.List(value.NewSymbol(symListProc), quoteOf(value.NewSymbol(tag)), inner)
}
