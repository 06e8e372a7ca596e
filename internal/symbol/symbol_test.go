package symbol

import "testing"

func TestOfInternsByFoldedName(t *testing.T) {
	a := Of("list")
	b := Of("LIST")
	c := Of("List")
	if a != b || b != c {
		t.Error("Of should return the identical *Symbol regardless of case")
	}
	if a.Name != "list" {
		t.Errorf("Name = %q, want folded form %q", a.Name, "list")
	}
	if !a.Interned() {
		t.Error("interned symbol should report Interned() == true")
	}
}

func TestOfDistinctNames(t *testing.T) {
	a := Of("car")
	b := Of("cdr")
	if a == b {
		t.Error("distinct names should not intern to the same Symbol")
	}
}

func TestGensymAlwaysDistinct(t *testing.T) {
	a := Gensym("loop")
	b := Gensym("loop")
	if a == b {
		t.Error("Gensym should never return the same Symbol twice")
	}
	if a.Interned() || b.Interned() {
		t.Error("gensym'd symbols should report Interned() == false")
	}
	if a.Name == b.Name {
		t.Error("gensym'd symbols with the same hint should still have distinct names")
	}
}

func TestGensymDefaultHint(t *testing.T) {
	s := Gensym("")
	if len(s.Name) == 0 || s.Name[0] != 'g' {
		t.Errorf("Gensym(\"\") name = %q, want it to default to the g<n> hint", s.Name)
	}
}
