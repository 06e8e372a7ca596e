package builtins

import (
	"strings"

	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/printer"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/value"
)

func registerControl(g *env.Environment, ap Applier) {
	define(g, "apply", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := minArgs("apply", args, 2); err != nil {
			return nil, err
		}
		proc := args[0]
		last := args[len(args)-1]
		tail, err := value.ListToSlice(last)
		if err != nil {
			return nil, schemeerr.Bind("apply: last argument must be a proper list")
		}
		callArgs := append(append([]value.Value{}, args[1:len(args)-1]...), tail...)
		return ap.Apply(proc, callArgs)
	})
	define(g, "map", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := minArgs("map", args, 2); err != nil {
			return nil, err
		}
		proc := args[0]
		lists, length, err := equalLengthLists("map", args[1:])
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, length)
		for i := 0; i < length; i++ {
			row := make([]value.Value, len(lists))
			for j, l := range lists {
				row[j] = l[i]
			}
			res, err := ap.Apply(proc, row)
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return value.SliceToList(out), nil
	})
	define(g, "for-each", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := minArgs("for-each", args, 2); err != nil {
			return nil, err
		}
		proc := args[0]
		lists, length, err := equalLengthLists("for-each", args[1:])
		if err != nil {
			return nil, err
		}
		for i := 0; i < length; i++ {
			row := make([]value.Value, len(lists))
			for j, l := range lists {
				row[j] = l[i]
			}
			if _, err := ap.Apply(proc, row); err != nil {
				return nil, err
			}
		}
		return value.Void, nil
	})
	define(g, "force", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("force", args, 1); err != nil {
			return nil, err
		}
		p, ok := args[0].(*value.Promise)
		if !ok {
			return args[0], nil // forcing a non-promise returns it unchanged
		}
		if p.Forced {
			return p.Result, nil
		}
		res, err := ap.Eval(p.Env, p.Body)
		if err != nil {
			return nil, err
		}
		p.Forced = true
		p.Result = res
		return res, nil
	})
	define(g, "eval", func(e value.Environment, args []value.Value) (value.Value, error) {
		// A second "environment specifier" argument is not supported:
		// this interpreter has no first-class environment Value
		// (spec.md Non-goals), so eval always runs in the environment
		// it was called from.
		if err := exactArgs("eval", args, 1); err != nil {
			return nil, err
		}
		return ap.Eval(e, args[0])
	})
	define(g, "error", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := minArgs("error", args, 1); err != nil {
			return nil, err
		}
		msg, err := asString("error", args[0])
		var text string
		if err == nil {
			text = msg.String()
		} else {
			text = printer.ToScheme(args[0])
		}
		var irritants []string
		for _, a := range args[1:] {
			irritants = append(irritants, printer.ToScheme(a))
		}
		if len(irritants) > 0 {
			text = text + ": " + strings.Join(irritants, " ")
		}
		return nil, schemeerr.Eval("%s", text)
	})
}

// equalLengthLists converts each of lists to a Go slice and requires
// them all to have the same length, per spec.md's map/for-each arity
// rule.
func equalLengthLists(name string, lists []value.Value) ([][]value.Value, int, error) {
	out := make([][]value.Value, len(lists))
	length := -1
	for i, l := range lists {
		items, err := value.ListToSlice(l)
		if err != nil {
			return nil, 0, schemeerr.Bind("%s: argument %d is not a proper list", name, i+2)
		}
		if length == -1 {
			length = len(items)
		} else if len(items) != length {
			return nil, 0, schemeerr.Eval("%s: lists of different lengths", name)
		}
		out[i] = items
	}
	return out, length, nil
}
