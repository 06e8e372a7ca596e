package builtins

import (
	"github.com/cwbudde/go-scheme/internal/env"
	"github.com/cwbudde/go-scheme/internal/symbol"
	"github.com/cwbudde/go-scheme/internal/value"
)

func registerSymbols(g *env.Environment) {
	define(g, "gensym", func(_ value.Environment, args []value.Value) (value.Value, error) {
		if err := rangeArgs("gensym", args, 0, 1); err != nil {
			return nil, err
		}
		hint := "g"
		if len(args) == 1 {
			s, err := asString("gensym", args[0])
			if err != nil {
				return nil, err
			}
			hint = s.String()
		}
		return value.NewSymbol(symbol.Gensym(hint)), nil
	})
}
