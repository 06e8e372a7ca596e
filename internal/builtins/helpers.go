package builtins

import (
	"github.com/cwbudde/go-scheme/internal/number"
	"github.com/cwbudde/go-scheme/internal/schemeerr"
	"github.com/cwbudde/go-scheme/internal/symbol"
	"github.com/cwbudde/go-scheme/internal/value"
)

func symOf(name string) *symbol.Symbol { return symbol.Of(name) }

// exactArgs errors unless args has exactly n elements.
func exactArgs(name string, args []value.Value, n int) error {
	if len(args) != n {
		return schemeerr.Bind("%s: expected %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// minArgs errors unless args has at least n elements.
func minArgs(name string, args []value.Value, n int) error {
	if len(args) < n {
		return schemeerr.Bind("%s: expected at least %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// rangeArgs errors unless len(args) is within [min, max].
func rangeArgs(name string, args []value.Value, min, max int) error {
	if len(args) < min || len(args) > max {
		return schemeerr.Bind("%s: expected %d to %d argument(s), got %d", name, min, max, len(args))
	}
	return nil
}

func asNumber(name string, v value.Value) (number.Number, error) {
	n, ok := v.(*value.Number)
	if !ok {
		return number.Number{}, schemeerr.Bind("%s: not a number: %s", name, value.TypeName(v))
	}
	return n.N, nil
}

func asString(name string, v value.Value) (*value.String, error) {
	s, ok := v.(*value.String)
	if !ok {
		return nil, schemeerr.Bind("%s: not a string: %s", name, value.TypeName(v))
	}
	return s, nil
}

func asMutableString(name string, v value.Value) (*value.String, error) {
	s, err := asString(name, v)
	if err != nil {
		return nil, err
	}
	if !s.Mut {
		return nil, schemeerr.Bind("%s: string is immutable", name)
	}
	return s, nil
}

func asPair(name string, v value.Value) (*value.Pair, error) {
	p, ok := v.(*value.Pair)
	if !ok {
		return nil, schemeerr.Bind("%s: not a pair: %s", name, value.TypeName(v))
	}
	return p, nil
}

func asMutablePair(name string, v value.Value) (*value.Pair, error) {
	p, err := asPair(name, v)
	if err != nil {
		return nil, err
	}
	if !p.Mut {
		return nil, schemeerr.Bind("%s: pair is immutable", name)
	}
	return p, nil
}

func asVector(name string, v value.Value) (*value.Vector, error) {
	vec, ok := v.(*value.Vector)
	if !ok {
		return nil, schemeerr.Bind("%s: not a vector: %s", name, value.TypeName(v))
	}
	return vec, nil
}

func asMutableVector(name string, v value.Value) (*value.Vector, error) {
	vec, err := asVector(name, v)
	if err != nil {
		return nil, err
	}
	if !vec.Mut {
		return nil, schemeerr.Bind("%s: vector is immutable", name)
	}
	return vec, nil
}

func asChar(name string, v value.Value) (rune, error) {
	c, ok := v.(*value.Character)
	if !ok {
		return 0, schemeerr.Bind("%s: not a character: %s", name, value.TypeName(v))
	}
	return c.R, nil
}

func asSymbol(name string, v value.Value) (*symbol.Symbol, error) {
	s, ok := v.(*value.Symbol)
	if !ok {
		return nil, schemeerr.Bind("%s: not a symbol: %s", name, value.TypeName(v))
	}
	return s.Sym, nil
}

// intNum wraps a host int as an exact Integer Number.
func intNum(n int) number.Number { return number.NewInteger(int64(n)) }

func asIndex(name string, v value.Value) (int, error) {
	n, err := asNumber(name, v)
	if err != nil {
		return 0, err
	}
	i, ok := n.AsInt64()
	if !ok || i < 0 {
		return 0, schemeerr.Bind("%s: not a valid non-negative index: %s", name, n.String())
	}
	return int(i), nil
}
