package value

import (
	"testing"

	"github.com/cwbudde/go-scheme/internal/number"
)

func TestEqIsPointerIdentity(t *testing.T) {
	a := Cons(True, Null)
	b := Cons(True, Null)
	if Eq(a, a) != true {
		t.Error("a value should be eq? to itself")
	}
	if Eq(a, b) {
		t.Error("two freshly consed pairs with equal contents should not be eq?")
	}
	if !Eq(True, True) {
		t.Error("the interned True singleton should be eq? to itself")
	}
}

func TestEqvNumbersRequireMatchingExactness(t *testing.T) {
	exact := NewNumber(number.NewInteger(3))
	inexact := NewNumber(number.NewReal(3.0))
	if Eqv(exact, inexact) {
		t.Error("eqv? should distinguish exact 3 from inexact 3.0")
	}
	if !Eqv(exact, NewNumber(number.NewInteger(3))) {
		t.Error("eqv? should hold for two exact integers with the same value")
	}
}

func TestEqvCharacters(t *testing.T) {
	if !Eqv(&Character{R: 'a'}, &Character{R: 'a'}) {
		t.Error("eqv? should compare characters by value")
	}
	if Eqv(&Character{R: 'a'}, &Character{R: 'b'}) {
		t.Error("eqv? should distinguish different characters")
	}
}

func TestEqualStructuralOnPairsAndVectors(t *testing.T) {
	a := List(NewNumber(number.NewInteger(1)), NewNumber(number.NewInteger(2)))
	b := List(NewNumber(number.NewInteger(1)), NewNumber(number.NewInteger(2)))
	if Eq(a, b) {
		t.Error("two freshly built lists should not be eq?")
	}
	if !Equal(a, b) {
		t.Error("two structurally identical lists should be equal?")
	}

	v1 := VectorOf(True, False)
	v2 := VectorOf(True, False)
	if !Equal(v1, v2) {
		t.Error("two structurally identical vectors should be equal?")
	}

	s1 := NewString("hi")
	s2 := NewImmutableString("hi")
	if !Equal(s1, s2) {
		t.Error("equal? on strings should compare codepoints, ignoring mutability")
	}
}

func TestTruthy(t *testing.T) {
	if Truthy(False) {
		t.Error("#f should be the only falsy value")
	}
	if !Truthy(True) {
		t.Error("#t should be truthy")
	}
	if !Truthy(Null) {
		t.Error("the empty list should be truthy, unlike some Lisps")
	}
	if !Truthy(NewNumber(number.NewInteger(0))) {
		t.Error("0 should be truthy in Scheme")
	}
}
