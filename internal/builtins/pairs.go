package builtins

import (
	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/value"
)

func registerPairs(g *env.Environment) {
	define(g, "cons", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("cons", args, 2); err != nil {
			return nil, err
		}
		return value.Cons(args[0], args[1]), nil
	})
	define(g, "car", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("car", args, 1); err != nil {
			return nil, err
		}
		p, err := asPair("car", args[0])
		if err != nil {
			return nil, err
		}
		return p.Car, nil
	})
	define(g, "cdr", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("cdr", args, 1); err != nil {
			return nil, err
		}
		p, err := asPair("cdr", args[0])
		if err != nil {
			return nil, err
		}
		return p.Cdr, nil
	})
	define(g, "set-car!", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("set-car!", args, 2); err != nil {
			return nil, err
		}
		p, err := asMutablePair("set-car!", args[0])
		if err != nil {
			return nil, err
		}
		p.Car = args[1]
		return value.Void, nil
	})
	define(g, "set-cdr!", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("set-cdr!", args, 2); err != nil {
			return nil, err
		}
		p, err := asMutablePair("set-cdr!", args[0])
		if err != nil {
			return nil, err
		}
		p.Cdr = args[1]
		return value.Void, nil
	})
	define(g, "list", func(_ value.Environment, args []value.Value) (value.Value, error) {
		return value.SliceToList(args), nil
	})
	define(g, "length", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("length", args, 1); err != nil {
			return nil, err
		}
		n, err := value.ListLength(args[0])
		if err != nil {
			return nil, schemeerr.Bind("length: not a proper list")
		}
		return value.NewNumber(intNum(n)), nil
	})
	define(g, "append", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return value.Null, nil
		}
		result := args[len(args)-1]
		for i := len(args) - 2; i >= 0; i-- {
			items, err := value.ListToSlice(args[i])
			if err != nil {
				return nil, schemeerr.Bind("append: not a proper list")
			}
			for j := len(items) - 1; j >= 0; j-- {
				result = value.Cons(items[j], result)
			}
		}
		return result, nil
	})
	define(g, "reverse", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("reverse", args, 1); err != nil {
			return nil, err
		}
		items, err := value.ListToSlice(args[0])
		if err != nil {
			return nil, schemeerr.Bind("reverse: not a proper list")
		}
		var result value.Value = value.Null
		for _, item := range items {
			result = value.Cons(item, result)
		}
		return result, nil
	})
	define(g, "list-tail", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("list-tail", args, 2); err != nil {
			return nil, err
		}
		k, err := asIndex("list-tail", args[1])
		if err != nil {
			return nil, err
		}
		cur := args[0]
		for i := 0; i < k; i++ {
			p, err := asPair("list-tail", cur)
			if err != nil {
				return nil, err
			}
			cur = p.Cdr
		}
		return cur, nil
	})
	define(g, "list-ref", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("list-ref", args, 2); err != nil {
			return nil, err
		}
		k, err := asIndex("list-ref", args[1])
		if err != nil {
			return nil, err
		}
		cur := args[0]
		for i := 0; i < k; i++ {
			p, err := asPair("list-ref", cur)
			if err != nil {
				return nil, err
			}
			cur = p.Cdr
		}
		p, err := asPair("list-ref", cur)
		if err != nil {
			return nil, err
		}
		return p.Car, nil
	})
}
