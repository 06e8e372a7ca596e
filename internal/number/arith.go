package number

import (
	"fmt"
	"math/big"
)

// Add returns a + b, promoted to their common kind.
func Add(a, b Number) Number {
	x, y, k := promoteBoth(a, b)
	switch k {
	case KindInteger:
		return Number{kind: k, i: new(big.Int).Add(x.i, y.i)}
	case KindRational:
		return Number{kind: k, r: new(big.Rat).Add(x.r, y.r)}
	default:
		return Number{kind: k, f: new(big.Float).SetPrec(big.MaxPrec).Add(x.f, y.f)}
	}
}

// Sub returns a - b.
func Sub(a, b Number) Number {
	x, y, k := promoteBoth(a, b)
	switch k {
	case KindInteger:
		return Number{kind: k, i: new(big.Int).Sub(x.i, y.i)}
	case KindRational:
		return Number{kind: k, r: new(big.Rat).Sub(x.r, y.r)}
	default:
		return Number{kind: k, f: new(big.Float).SetPrec(big.MaxPrec).Sub(x.f, y.f)}
	}
}

// Mul returns a * b.
func Mul(a, b Number) Number {
	x, y, k := promoteBoth(a, b)
	switch k {
	case KindInteger:
		return Number{kind: k, i: new(big.Int).Mul(x.i, y.i)}
	case KindRational:
		return Number{kind: k, r: new(big.Rat).Mul(x.r, y.r)}
	default:
		return Number{kind: k, f: new(big.Float).SetPrec(big.MaxPrec).Mul(x.f, y.f)}
	}
}

// Div returns a / b. Integer divided by integer always promotes to
// Rational, even when the result is a whole number, to preserve
// exactness (spec.md §3 special rule).
func Div(a, b Number) (Number, error) {
	if b.Sign() == 0 {
		return Number{}, fmt.Errorf("division by zero")
	}
	if a.kind == KindInteger && b.kind == KindInteger {
		return NewRational(a.i, b.i)
	}
	x, y, k := promoteBoth(a, b)
	switch k {
	case KindRational:
		return Number{kind: k, r: new(big.Rat).Quo(x.r, y.r)}, nil
	default:
		return Number{kind: k, f: new(big.Float).SetPrec(big.MaxPrec).Quo(x.f, y.f)}, nil
	}
}

// Negate returns -n.
func Negate(n Number) Number {
	switch n.kind {
	case KindInteger:
		return Number{kind: n.kind, i: new(big.Int).Neg(n.i)}
	case KindRational:
		return Number{kind: n.kind, r: new(big.Rat).Neg(n.r)}
	default:
		return Number{kind: n.kind, f: new(big.Float).SetPrec(big.MaxPrec).Neg(n.f)}
	}
}

// Reciprocal returns 1/n.
func Reciprocal(n Number) (Number, error) {
	if n.Sign() == 0 {
		return Number{}, fmt.Errorf("division by zero")
	}
	switch n.kind {
	case KindInteger:
		return NewRational(big.NewInt(1), n.i)
	case KindRational:
		return Number{kind: n.kind, r: new(big.Rat).Inv(n.r)}, nil
	default:
		return Number{kind: n.kind, f: new(big.Float).SetPrec(big.MaxPrec).Quo(big.NewFloat(1), n.f)}, nil
	}
}

// Compare returns -1, 0, or 1 for a<b, a==b, a>b in the promoted common domain.
func Compare(a, b Number) int {
	x, y, k := promoteBoth(a, b)
	switch k {
	case KindInteger:
		return x.i.Cmp(y.i)
	case KindRational:
		return x.r.Cmp(y.r)
	default:
		return x.f.Cmp(y.f)
	}
}

// Equal reports numeric equality regardless of exactness (unlike eqv?,
// which also requires matching exactness).
func Equal(a, b Number) bool {
	return Compare(a, b) == 0
}

// requireIntegers converts a and b to exact integers, erroring if
// either cannot be (used by quotient/remainder/modulo/gcd/lcm, which
// are integer-only operations).
func requireIntegers(a, b Number) (*big.Int, *big.Int, error) {
	ai, ok := a.ToInteger()
	if !ok {
		return nil, nil, fmt.Errorf("not an integer: %s", a)
	}
	bi, ok := b.ToInteger()
	if !ok {
		return nil, nil, fmt.Errorf("not an integer: %s", b)
	}
	return ai.i, bi.i, nil
}

// Quotient returns truncated integer division a/b.
func Quotient(a, b Number) (Number, error) {
	x, y, err := requireIntegers(a, b)
	if err != nil {
		return Number{}, err
	}
	if y.Sign() == 0 {
		return Number{}, fmt.Errorf("division by zero")
	}
	q := new(big.Int).Quo(x, y)
	return Number{kind: KindInteger, i: q}, nil
}

// Remainder returns a - b*quotient(a,b); its sign matches the dividend a.
func Remainder(a, b Number) (Number, error) {
	x, y, err := requireIntegers(a, b)
	if err != nil {
		return Number{}, err
	}
	if y.Sign() == 0 {
		return Number{}, fmt.Errorf("division by zero")
	}
	r := new(big.Int).Rem(x, y)
	return Number{kind: KindInteger, i: r}, nil
}

// Modulo returns a mod b; its sign matches the divisor b, differing
// from Remainder whenever the dividend and divisor have different signs.
func Modulo(a, b Number) (Number, error) {
	x, y, err := requireIntegers(a, b)
	if err != nil {
		return Number{}, err
	}
	if y.Sign() == 0 {
		return Number{}, fmt.Errorf("division by zero")
	}
	m := new(big.Int).Mod(x, y) // Go's Mod is Euclidean: result has sign of... always non-negative
	// Adjust Go's non-negative Euclidean mod to match the sign of the divisor.
	if m.Sign() != 0 && y.Sign() < 0 {
		m.Add(m, y)
	}
	return Number{kind: KindInteger, i: m}, nil
}

// Sqrt returns an inexact Real square root of n.
func Sqrt(n Number) (Number, error) {
	if n.Sign() < 0 {
		return Number{}, fmt.Errorf("sqrt of negative number")
	}
	var f *big.Float
	switch n.kind {
	case KindInteger:
		f = new(big.Float).SetPrec(big.MaxPrec).SetInt(n.i)
	case KindRational:
		f = new(big.Float).SetPrec(big.MaxPrec).SetRat(n.r)
	default:
		f = n.f
	}
	return Number{kind: KindReal, f: new(big.Float).SetPrec(big.MaxPrec).Sqrt(f)}, nil
}

// Abs returns the absolute value of n.
func Abs(n Number) Number {
	if n.Sign() < 0 {
		return Negate(n)
	}
	return n
}

// GCD returns the greatest common divisor of two exact integers.
func GCD(a, b Number) (Number, error) {
	x, y, err := requireIntegers(a, b)
	if err != nil {
		return Number{}, err
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(x), new(big.Int).Abs(y))
	return Number{kind: KindInteger, i: g}, nil
}

// LCM returns the least common multiple of two exact integers.
func LCM(a, b Number) (Number, error) {
	x, y, err := requireIntegers(a, b)
	if err != nil {
		return Number{}, err
	}
	if x.Sign() == 0 || y.Sign() == 0 {
		return Number{kind: KindInteger, i: big.NewInt(0)}, nil
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(x), new(big.Int).Abs(y))
	l := new(big.Int).Div(new(big.Int).Abs(x), g)
	l.Mul(l, new(big.Int).Abs(y))
	return Number{kind: KindInteger, i: l}, nil
}

// Numerator returns the numerator of an Integer or Rational.
func Numerator(n Number) (Number, error) {
	switch n.kind {
	case KindInteger:
		return n, nil
	case KindRational:
		return Number{kind: KindInteger, i: new(big.Int).Set(n.r.Num())}, nil
	default:
		return Number{}, fmt.Errorf("numerator requires an exact number")
	}
}

// Denominator returns the denominator of an Integer (always 1) or Rational.
func Denominator(n Number) (Number, error) {
	switch n.kind {
	case KindInteger:
		return NewInteger(1), nil
	case KindRational:
		return Number{kind: KindInteger, i: new(big.Int).Set(n.r.Denom())}, nil
	default:
		return Number{}, fmt.Errorf("denominator requires an exact number")
	}
}

// ParseDecimal parses a base-10 numeric literal: an Integer if it has
// no fractional/exponent part, otherwise a Real. Literals with a
// non-decimal base prefix (0x, 0b, 0o) are rejected (spec.md §4.4).
func ParseDecimal(lit string) (Number, bool) {
	if i, ok := new(big.Int).SetString(lit, 10); ok {
		return Number{kind: KindInteger, i: i}, true
	}
	if f, _, err := new(big.Float).SetPrec(big.MaxPrec).Parse(lit, 10); err == nil {
		return Number{kind: KindReal, f: f}, true
	}
	return Number{}, false
}
