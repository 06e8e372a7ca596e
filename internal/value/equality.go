package value

import "github.com/cwbudde/go-scheme/internal/number"

// Eq implements pointer identity: two values are the same object.
// For the singletons (booleans, null, eof, void) and interned
// symbols, pointer identity already coincides with eqv? identity
// since there is exactly one instance per logical value.
func Eq(a, b Value) bool {
	// Symbols are the one variant where the Value wrapper itself is
	// not interned (NewSymbol allocates a fresh *Symbol per call site,
	// e.g. once per quoted occurrence in source) even though the
	// *symbol.Symbol it wraps is. Compare the wrapped pointer so two
	// occurrences of the same name are still eq?.
	if x, ok := a.(*Symbol); ok {
		y, ok := b.(*Symbol)
		return ok && x.Sym == y.Sym
	}
	// Every other variant is either a pointer to a mutable struct or
	// one of the singleton pointers above, so plain interface
	// comparison already is pointer identity.
	return a == b
}

// Eqv implements R5RS eqv?: true for same-bit booleans, same interned
// symbol, equal characters, numerically-equal-and-same-exactness
// numbers, both-null, and otherwise pointer identity. This fixes the
// source bug noted in spec.md §9 where one branch compared against
// the wrong type.
func Eqv(a, b Value) bool {
	switch x := a.(type) {
	case *Boolean:
		y, ok := b.(*Boolean)
		return ok && x.val == y.val
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x.Sym == y.Sym
	case *Character:
		y, ok := b.(*Character)
		return ok && x.R == y.R
	case *Number:
		y, ok := b.(*Number)
		return ok && x.N.IsExact() == y.N.IsExact() && number.Equal(x.N, y.N)
	case *nullType:
		_, ok := b.(*nullType)
		return ok
	default:
		return Eq(a, b)
	}
}

// Equal implements R5RS equal?: structural equality on pairs (car and
// cdr) and vectors (pairwise), codepoint equality on strings, eqv?
// elsewhere. Not required to terminate on cyclic structures — callers
// working with potentially-cyclic data must bound recursion
// themselves (spec.md §9).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case *Pair:
		y, ok := b.(*Pair)
		return ok && Equal(x.Car, y.Car) && Equal(x.Cdr, y.Cdr)
	case *Vector:
		y, ok := b.(*Vector)
		if !ok || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	case *String:
		y, ok := b.(*String)
		if !ok || len(x.Runes) != len(y.Runes) {
			return false
		}
		for i := range x.Runes {
			if x.Runes[i] != y.Runes[i] {
				return false
			}
		}
		return true
	default:
		return Eqv(a, b)
	}
}
