package builtins

import (
	"strings"

	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/symbol"
	"github.com/cwbudde/go-scheme/internal/value"
)

func registerStrings(g *env.Environment) {
	define(g, "make-string", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := rangeArgs("make-string", args, 1, 2); err != nil {
			return nil, err
		}
		n, err := asIndex("make-string", args[0])
		if err != nil {
			return nil, err
		}
		fill := ' '
		if len(args) == 2 {
			fill, err = asChar("make-string", args[1])
			if err != nil {
				return nil, err
			}
		}
		runes := make([]rune, n)
		for i := range runes {
			runes[i] = fill
		}
		return &value.String{Runes: runes, Mut: true}, nil
	})
	define(g, "string", func(_ value.Environment, args []value.Value) (value.Value, error) {
		runes := make([]rune, len(args))
		for i, a := range args {
			c, err := asChar("string", a)
			if err != nil {
				return nil, err
			}
			runes[i] = c
		}
		return &value.String{Runes: runes, Mut: true}, nil
	})
	define(g, "string-length", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("string-length", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("string-length", args[0])
		if err != nil {
			return nil, err
		}
		return value.NewNumber(intNum(s.Len())), nil
	})
	define(g, "string-ref", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("string-ref", args, 2); err != nil {
			return nil, err
		}
		s, err := asString("string-ref", args[0])
		if err != nil {
			return nil, err
		}
		i, err := asIndex("string-ref", args[1])
		if err != nil {
			return nil, err
		}
		if i >= s.Len() {
			return nil, schemeerr.Bind("string-ref: index %d out of range", i)
		}
		return &value.Character{R: s.Runes[i]}, nil
	})
	define(g, "string-set!", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("string-set!", args, 3); err != nil {
			return nil, err
		}
		s, err := asMutableString("string-set!", args[0])
		if err != nil {
			return nil, err
		}
		i, err := asIndex("string-set!", args[1])
		if err != nil {
			return nil, err
		}
		c, err := asChar("string-set!", args[2])
		if err != nil {
			return nil, err
		}
		if i >= s.Len() {
			return nil, schemeerr.Bind("string-set!: index %d out of range", i)
		}
		s.Runes[i] = c
		return value.Void, nil
	})
	define(g, "string-append", func(_ value.Environment, args []value.Value) (value.Value, error) {
		var runes []rune
		for _, a := range args {
			s, err := asString("string-append", a)
			if err != nil {
				return nil, err
			}
			runes = append(runes, s.Runes...)
		}
		return &value.String{Runes: runes, Mut: true}, nil
	})
	define(g, "substring", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("substring", args, 3); err != nil {
			return nil, err
		}
		s, err := asString("substring", args[0])
		if err != nil {
			return nil, err
		}
		start, err := asIndex("substring", args[1])
		if err != nil {
			return nil, err
		}
		end, err := asIndex("substring", args[2])
		if err != nil {
			return nil, err
		}
		if start > end || end > s.Len() {
			return nil, schemeerr.Bind("substring: invalid range [%d,%d)", start, end)
		}
		runes := make([]rune, end-start)
		copy(runes, s.Runes[start:end])
		return &value.String{Runes: runes, Mut: true}, nil
	})
	define(g, "string-copy", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("string-copy", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("string-copy", args[0])
		if err != nil {
			return nil, err
		}
		runes := make([]rune, len(s.Runes))
		copy(runes, s.Runes)
		return &value.String{Runes: runes, Mut: true}, nil
	})
	define(g, "string-fill!", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("string-fill!", args, 2); err != nil {
			return nil, err
		}
		s, err := asMutableString("string-fill!", args[0])
		if err != nil {
			return nil, err
		}
		c, err := asChar("string-fill!", args[1])
		if err != nil {
			return nil, err
		}
		for i := range s.Runes {
			s.Runes[i] = c
		}
		return value.Void, nil
	})
	define(g, "string->list", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("string->list", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("string->list", args[0])
		if err != nil {
			return nil, err
		}
		items := make([]value.Value, len(s.Runes))
		for i, r := range s.Runes {
			items[i] = &value.Character{R: r}
		}
		return value.SliceToList(items), nil
	})
	define(g, "list->string", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("list->string", args, 1); err != nil {
			return nil, err
		}
		items, err := value.ListToSlice(args[0])
		if err != nil {
			return nil, schemeerr.Bind("list->string: not a proper list")
		}
		runes := make([]rune, len(items))
		for i, item := range items {
			c, err := asChar("list->string", item)
			if err != nil {
				return nil, err
			}
			runes[i] = c
		}
		return &value.String{Runes: runes, Mut: true}, nil
	})
	define(g, "string->symbol", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("string->symbol", args, 1); err != nil {
			return nil, err
		}
		s, err := asString("string->symbol", args[0])
		if err != nil {
			return nil, err
		}
		return value.NewSymbol(symbol.Of(s.String())), nil
	})
	define(g, "symbol->string", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("symbol->string", args, 1); err != nil {
			return nil, err
		}
		sym, err := asSymbol("symbol->string", args[0])
		if err != nil {
			return nil, err
		}
		return value.NewImmutableString(sym.Name), nil
	})

	registerStringCompare(g, "string=?", false, func(c int) bool { return c == 0 })
	registerStringCompare(g, "string<?", false, func(c int) bool { return c < 0 })
	registerStringCompare(g, "string<=?", false, func(c int) bool { return c <= 0 })
	registerStringCompare(g, "string>?", false, func(c int) bool { return c > 0 })
	registerStringCompare(g, "string>=?", false, func(c int) bool { return c >= 0 })
	registerStringCompare(g, "string-ci=?", true, func(c int) bool { return c == 0 })
	registerStringCompare(g, "string-ci<?", true, func(c int) bool { return c < 0 })
	registerStringCompare(g, "string-ci<=?", true, func(c int) bool { return c <= 0 })
	registerStringCompare(g, "string-ci>?", true, func(c int) bool { return c > 0 })
	registerStringCompare(g, "string-ci>=?", true, func(c int) bool { return c >= 0 })
}

func registerStringCompare(g *env.Environment, name string, ci bool, ok func(int) bool) {
	define(g, name, func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := minArgs(name, args, 1); err != nil {
			return nil, err
		}
		strs := make([]string, len(args))
		for i, a := range args {
			s, err := asString(name, a)
			if err != nil {
				return nil, err
			}
			strs[i] = s.String()
			if ci {
				strs[i] = symbol.Fold(strs[i])
			}
		}
		for i := 1; i < len(strs); i++ {
			if !ok(strings.Compare(strs[i-1], strs[i])) {
				return value.False, nil
			}
		}
		return value.True, nil
	})
}
