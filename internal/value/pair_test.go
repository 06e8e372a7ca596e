package value

import (
	"testing"

	"github.com/cwbudde/go-scheme/internal/number"
)

func TestConsAndList(t *testing.T) {
	p := Cons(NewNumber(number.NewInteger(1)), Null)
	if !IsPair(p) {
		t.Error("Cons should produce a Pair")
	}
	if !p.Mut {
		t.Error("Cons should build a mutable pair")
	}

	l := List(NewNumber(number.NewInteger(1)), NewNumber(number.NewInteger(2)), NewNumber(number.NewInteger(3)))
	if !IsList(l) {
		t.Error("List should build a proper list")
	}
	n, err := ListLength(l)
	if err != nil || n != 3 {
		t.Errorf("ListLength = (%d, %v), want (3, nil)", n, err)
	}
}

func TestListToSliceRoundTrip(t *testing.T) {
	orig := []Value{True, False, Null}
	l := SliceToList(orig)
	back, err := ListToSlice(l)
	if err != nil {
		t.Fatalf("ListToSlice error: %v", err)
	}
	if len(back) != len(orig) {
		t.Fatalf("got %d elements, want %d", len(back), len(orig))
	}
	for i := range orig {
		if back[i] != orig[i] {
			t.Errorf("element %d: got %v, want %v", i, back[i], orig[i])
		}
	}
}

func TestImproperListIsNotAList(t *testing.T) {
	improper := Cons(True, False)
	if IsList(improper) {
		t.Error("a pair whose cdr is not a list should not be IsList")
	}
	if _, err := ListToSlice(improper); err == nil {
		t.Error("ListToSlice should error on an improper list")
	}
	if _, err := ListLength(improper); err == nil {
		t.Error("ListLength should error on an improper list")
	}
}

func TestNullIsNotAPair(t *testing.T) {
	if IsPair(Null) {
		t.Error("the empty list should not be a Pair")
	}
	if !IsList(Null) {
		t.Error("the empty list should count as a (trivially) proper list")
	}
}
