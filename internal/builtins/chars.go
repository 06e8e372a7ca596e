package builtins

import (
	"unicode"

	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/value"
)

func registerChars(g *env.Environment) {
	registerCharCompare(g, "char=?", false, func(c int) bool { return c == 0 })
	registerCharCompare(g, "char<?", false, func(c int) bool { return c < 0 })
	registerCharCompare(g, "char<=?", false, func(c int) bool { return c <= 0 })
	registerCharCompare(g, "char>?", false, func(c int) bool { return c > 0 })
	registerCharCompare(g, "char>=?", false, func(c int) bool { return c >= 0 })
	registerCharCompare(g, "char-ci=?", true, func(c int) bool { return c == 0 })
	registerCharCompare(g, "char-ci<?", true, func(c int) bool { return c < 0 })
	registerCharCompare(g, "char-ci<=?", true, func(c int) bool { return c <= 0 })
	registerCharCompare(g, "char-ci>?", true, func(c int) bool { return c > 0 })
	registerCharCompare(g, "char-ci>=?", true, func(c int) bool { return c >= 0 })

	define(g, "char-alphabetic?", charPred(unicode.IsLetter))
	define(g, "char-numeric?", charPred(unicode.IsDigit))
	define(g, "char-whitespace?", charPred(unicode.IsSpace))
	define(g, "char-upper-case?", charPred(unicode.IsUpper))
	define(g, "char-lower-case?", charPred(unicode.IsLower))

	define(g, "char->integer", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("char->integer", args, 1); err != nil {
			return nil, err
		}
		c, err := asChar("char->integer", args[0])
		if err != nil {
			return nil, err
		}
		return value.NewNumber(intNum(int(c))), nil
	})
	define(g, "integer->char", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("integer->char", args, 1); err != nil {
			return nil, err
		}
		i, err := asIndex("integer->char", args[0])
		if err != nil {
			return nil, err
		}
		return &value.Character{R: rune(i)}, nil
	})
	define(g, "char-upcase", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("char-upcase", args, 1); err != nil {
			return nil, err
		}
		c, err := asChar("char-upcase", args[0])
		if err != nil {
			return nil, err
		}
		return &value.Character{R: unicode.ToUpper(c)}, nil
	})
	define(g, "char-downcase", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("char-downcase", args, 1); err != nil {
			return nil, err
		}
		c, err := asChar("char-downcase", args[0])
		if err != nil {
			return nil, err
		}
		return &value.Character{R: unicode.ToLower(c)}, nil
	})
}

func charPred(pred func(rune) bool) func(value.Environment, []value.Value) (value.Value, error) {
	return func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := exactArgs("char predicate", args, 1); err != nil {
			return nil, err
		}
		c, err := asChar("char predicate", args[0])
		if err != nil {
			return nil, err
		}
		return value.Bool(pred(c)), nil
	}
}

func registerCharCompare(g *env.Environment, name string, ci bool, ok func(int) bool) {
	define(g, name, func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := minArgs(name, args, 1); err != nil {
			return nil, err
		}
		runes := make([]rune, len(args))
		for i, a := range args {
			c, err := asChar(name, a)
			if err != nil {
				return nil, err
			}
			if ci {
				c = unicode.ToLower(c)
			}
			runes[i] = c
		}
		for i := 1; i < len(runes); i++ {
			c := 0
			switch {
			case runes[i-1] < runes[i]:
				c = -1
			case runes[i-1] > runes[i]:
				c = 1
			}
			if !ok(c) {
				return value.False, nil
			}
		}
		return value.True, nil
	})
}
