package builtins

import (
	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/value"
)

func registerVectors(g *env.Environment) {
	define(g, "make-vector", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := rangeArgs("make-vector", args, 1, 2); err != nil {
			return nil, err
		}
		n, err := asIndex("make-vector", args[0])
		if err != nil {
			return nil, err
		}
		var fill value.Value = value.False
		if len(args) == 2 {
			fill = args[1]
		}
		return value.NewVector(n, fill), nil
	})
	define(g, "vector", func(_ value.Environment, args []value.Value) (value.Value, error) {
		items := make([]value.Value, len(args))
		copy(items, args)
		return value.VectorOf(items...), nil
	})
	define(g, "vector-length", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("vector-length", args, 1); err != nil {
			return nil, err
		}
		v, err := asVector("vector-length", args[0])
		if err != nil {
			return nil, err
		}
		return value.NewNumber(intNum(len(v.Items))), nil
	})
	define(g, "vector-ref", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("vector-ref", args, 2); err != nil {
			return nil, err
		}
		v, err := asVector("vector-ref", args[0])
		if err != nil {
			return nil, err
		}
		i, err := asIndex("vector-ref", args[1])
		if err != nil {
			return nil, err
		}
		if i >= len(v.Items) {
			return nil, schemeerr.Bind("vector-ref: index %d out of range", i)
		}
		return v.Items[i], nil
	})
	define(g, "vector-set!", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("vector-set!", args, 3); err != nil {
			return nil, err
		}
		v, err := asMutableVector("vector-set!", args[0])
		if err != nil {
			return nil, err
		}
		i, err := asIndex("vector-set!", args[1])
		if err != nil {
			return nil, err
		}
		if i >= len(v.Items) {
			return nil, schemeerr.Bind("vector-set!: index %d out of range", i)
		}
		v.Items[i] = args[2]
		return value.Void, nil
	})
	define(g, "vector->list", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("vector->list", args, 1); err != nil {
			return nil, err
		}
		v, err := asVector("vector->list", args[0])
		if err != nil {
			return nil, err
		}
		return value.SliceToList(v.Items), nil
	})
	define(g, "list->vector", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("list->vector", args, 1); err != nil {
			return nil, err
		}
		items, err := value.ListToSlice(args[0])
		if err != nil {
			return nil, schemeerr.Bind("list->vector: not a proper list")
		}
		return value.VectorOf(items...), nil
	})
	define(g, "vector-fill!", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("vector-fill!", args, 2); err != nil {
			return nil, err
		}
		v, err := asMutableVector("vector-fill!", args[0])
		if err != nil {
			return nil, err
		}
		for i := range v.Items {
			v.Items[i] = args[1]
		}
		return value.Void, nil
	})
}
