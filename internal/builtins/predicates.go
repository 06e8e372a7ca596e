package builtins

import (
	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/value"
)

func registerPredicates(g *env.Environment) {
	define(g, "eq?", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("eq?", args, 2); err != nil {
			return nil, err
		}
		return value.Bool(value.Eq(args[0], args[1])), nil
	})
	define(g, "eqv?", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("eqv?", args, 2); err != nil {
			return nil, err
		}
		return value.Bool(value.Eqv(args[0], args[1])), nil
	})
	define(g, "equal?", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("equal?", args, 2); err != nil {
			return nil, err
		}
		return value.Bool(value.Equal(args[0], args[1])), nil
	})
	define(g, "not", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("not", args, 1); err != nil {
			return nil, err
		}
		return value.Bool(!value.Truthy(args[0])), nil
	})
	define(g, "boolean?", typePred(func(v value.Value) bool { _, ok := v.(*value.Boolean); return ok }))
	define(g, "pair?", typePred(value.IsPair))
	define(g, "null?", typePred(value.IsNull))
	define(g, "list?", typePred(value.IsList))
	define(g, "symbol?", typePred(func(v value.Value) bool { _, ok := v.(*value.Symbol); return ok }))
	define(g, "string?", typePred(func(v value.Value) bool { _, ok := v.(*value.String); return ok }))
	define(g, "vector?", typePred(func(v value.Value) bool { _, ok := v.(*value.Vector); return ok }))
	define(g, "char?", typePred(func(v value.Value) bool { _, ok := v.(*value.Character); return ok }))
	define(g, "number?", typePred(func(v value.Value) bool { _, ok := v.(*value.Number); return ok }))
	define(g, "procedure?", typePred(value.IsProcedure))
	define(g, "port?", typePred(func(v value.Value) bool { _, ok := v.(*value.Port); return ok }))
	define(g, "input-port?", typePred(func(v value.Value) bool {
		p, ok := v.(*value.Port)
		return ok && p.Dir == value.InputPort
	}))
	define(g, "output-port?", typePred(func(v value.Value) bool {
		p, ok := v.(*value.Port)
		return ok && p.Dir == value.OutputPort
	}))
	define(g, "eof-object?", typePred(func(v value.Value) bool { return v == value.Eof }))
	define(g, "void?", typePred(func(v value.Value) bool { return v == value.Void }))
}

// typePred wraps a unary Go predicate as a single-argument Scheme
// type predicate, the pattern shared by the whole `x?` family.
func typePred(pred func(value.Value) bool) func(value.Environment, []value.Value) (value.Value, error) {
	return func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("type predicate", args, 1); err != nil {
			return nil, err
		}
		return value.Bool(pred(args[0])), nil
	}
}
