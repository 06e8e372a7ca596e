// Package number implements the R5RS numeric tower used by this
// interpreter: arbitrary-precision Integer, reduced Rational, and
// arbitrary-precision inexact Real, with one-way promotion
// Integer ⊂ Rational ⊂ Real.
package number

import (
	"fmt"
	"math/big"
)

// Kind identifies which tower level a Number occupies.
type Kind int

const (
	KindInteger Kind = iota
	KindRational
	KindReal
)

// Number is an immutable tagged numeric value. Exactly one of the
// three fields is meaningful, selected by Kind. Integers and
// Rationals are exact; Reals are inexact — this is fixed regardless
// of any disagreement in prior source variants (spec.md §9).
type Number struct {
	kind Kind
	i    *big.Int
	r    *big.Rat
	f    *big.Float
}

// NewInteger wraps a host int64 as an exact Integer.
func NewInteger(v int64) Number {
	return Number{kind: KindInteger, i: big.NewInt(v)}
}

// NewBigInteger wraps an arbitrary-precision integer as an exact Integer.
func NewBigInteger(v *big.Int) Number {
	return Number{kind: KindInteger, i: new(big.Int).Set(v)}
}

// NewRational builds an exact Rational in lowest terms with a
// positive, nonzero denominator. If the reduced denominator is 1 the
// value is still tagged KindRational; callers that want automatic
// demotion should call Simplify.
func NewRational(num, den *big.Int) (Number, error) {
	if den.Sign() == 0 {
		return Number{}, fmt.Errorf("division by zero")
	}
	r := new(big.Rat).SetFrac(num, den)
	return Number{kind: KindRational, r: r}, nil
}

// NewReal wraps a host float64 as an inexact Real.
func NewReal(v float64) Number {
	return Number{kind: KindReal, f: big.NewFloat(v)}
}

// NewBigReal wraps an arbitrary-precision float as an inexact Real.
func NewBigReal(v *big.Float) Number {
	return Number{kind: KindReal, f: new(big.Float).Set(v)}
}

// Kind reports which tower level n occupies.
func (n Number) Kind() Kind { return n.kind }

// IsExact reports whether n is exact (Integer or Rational).
func (n Number) IsExact() bool { return n.kind != KindReal }

// Simplify demotes a Rational with denominator 1 to an Integer.
// Integers and Reals are returned unchanged.
func (n Number) Simplify() Number {
	if n.kind == KindRational && n.r.IsInt() {
		return Number{kind: KindInteger, i: new(big.Int).Set(n.r.Num())}
	}
	return n
}

// commonKind returns the promotion target for a binary operation on a and b.
func commonKind(a, b Number) Kind {
	if a.kind > b.kind {
		return a.kind
	}
	return b.kind
}

// promote converts n to the given kind, which must be >= n.Kind().
func promote(n Number, to Kind) Number {
	switch {
	case n.kind == to:
		return n
	case n.kind == KindInteger && to == KindRational:
		r, _ := NewRational(n.i, big.NewInt(1))
		return r
	case n.kind == KindInteger && to == KindReal:
		return Number{kind: KindReal, f: new(big.Float).SetInt(n.i)}
	case n.kind == KindRational && to == KindReal:
		f := new(big.Float).SetPrec(big.MaxPrec).SetRat(n.r)
		return Number{kind: KindReal, f: f}
	default:
		panic("number: invalid promotion")
	}
}

// promoteBoth promotes a and b to their common kind.
func promoteBoth(a, b Number) (Number, Number, Kind) {
	k := commonKind(a, b)
	return promote(a, k), promote(b, k), k
}

// AsInt64 converts n to a host int64 if it fits exactly.
func (n Number) AsInt64() (int64, bool) {
	switch n.kind {
	case KindInteger:
		if n.i.IsInt64() {
			return n.i.Int64(), true
		}
	case KindRational:
		if n.r.IsInt() && n.r.Num().IsInt64() {
			return n.r.Num().Int64(), true
		}
	case KindReal:
		i, acc := n.f.Int(nil)
		if acc == big.Exact && i.IsInt64() {
			return i.Int64(), true
		}
	}
	return 0, false
}

// AsFloat64 converts n to a host float64, losing precision if needed.
func (n Number) AsFloat64() float64 {
	switch n.kind {
	case KindInteger:
		f := new(big.Float).SetInt(n.i)
		v, _ := f.Float64()
		return v
	case KindRational:
		v, _ := new(big.Float).SetPrec(big.MaxPrec).SetRat(n.r).Float64()
		return v
	case KindReal:
		v, _ := n.f.Float64()
		return v
	}
	panic("number: unknown kind")
}

// ToInteger converts n to an exact Integer if it represents a whole
// value: a Rational must have denominator 1, a Real must be exactly
// whole-valued.
func (n Number) ToInteger() (Number, bool) {
	switch n.kind {
	case KindInteger:
		return n, true
	case KindRational:
		if n.r.IsInt() {
			return Number{kind: KindInteger, i: new(big.Int).Set(n.r.Num())}, true
		}
	case KindReal:
		i, acc := n.f.Int(nil)
		if acc == big.Exact {
			return Number{kind: KindInteger, i: i}, true
		}
	}
	return Number{}, false
}

// BigInt returns the underlying big.Int for a KindInteger Number.
// Callers must check Kind() first.
func (n Number) BigInt() *big.Int { return n.i }

// BigRat returns the underlying big.Rat for a KindRational Number.
func (n Number) BigRat() *big.Rat { return n.r }

// BigFloat returns the underlying big.Float for a KindReal Number.
func (n Number) BigFloat() *big.Float { return n.f }

// Sign returns -1, 0, or 1 according to whether n is negative, zero, or positive.
func (n Number) Sign() int {
	switch n.kind {
	case KindInteger:
		return n.i.Sign()
	case KindRational:
		return n.r.Sign()
	case KindReal:
		return n.f.Sign()
	}
	panic("number: unknown kind")
}

// String renders n in its canonical form: integers as integer
// strings, rationals as "n/d", reals as decimal.
func (n Number) String() string {
	switch n.kind {
	case KindInteger:
		return n.i.String()
	case KindRational:
		return n.r.Num().String() + "/" + n.r.Denom().String()
	case KindReal:
		// Reals are printed rounded to 53 bits of mantissa: shortest
		// decimal formatting at the working precision of arithmetic
		// results is not usable.
		return new(big.Float).SetPrec(53).Set(n.f).Text('g', -1)
	}
	return "#<invalid-number>"
}
