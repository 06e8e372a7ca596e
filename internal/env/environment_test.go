package env

import (
	"testing"

	"github.com/cwbudde/go-scheme/internal/number"
	"github.com/cwbudde/go-scheme/internal/symbol"
	"github.com/cwbudde/go-scheme/internal/value"
)

func TestDefineAndLookup(t *testing.T) {
	e := New()
	x := symbol.Of("x")
	one := value.NewNumber(number.NewInteger(1))
	e.Define(x, one)

	got, ok := e.Lookup(x)
	if !ok {
		t.Fatal("Lookup failed after Define")
	}
	if got != value.Value(one) {
		t.Errorf("Lookup returned a different value than stored")
	}
}

func TestLookupWalksOuterScopes(t *testing.T) {
	root := New()
	x := symbol.Of("x")
	root.Define(x, value.True)

	child := root.NewChild()
	got, ok := child.Lookup(x)
	if !ok || got != value.True {
		t.Fatalf("child scope should see parent's binding for x, got (%v, %v)", got, ok)
	}
}

func TestChildShadowsParent(t *testing.T) {
	root := New()
	x := symbol.Of("x")
	root.Define(x, value.True)

	child := root.NewChild().(*Environment)
	child.Define(x, value.False)

	got, _ := child.Lookup(x)
	if got != value.False {
		t.Error("child's own binding should shadow the parent's")
	}
	parentVal, _ := root.Lookup(x)
	if parentVal != value.True {
		t.Error("shadowing in the child should not mutate the parent's binding")
	}
}

func TestReplaceMutatesInnermostBinding(t *testing.T) {
	root := New()
	x := symbol.Of("x")
	root.Define(x, value.True)

	child := root.NewChild().(*Environment)
	if ok := child.Replace(x, value.False); !ok {
		t.Fatal("Replace should find x in the parent scope")
	}
	got, _ := root.Lookup(x)
	if got != value.False {
		t.Error("Replace should mutate the binding in place where it was found")
	}
}

func TestReplaceUnboundFails(t *testing.T) {
	e := New()
	if e.Replace(symbol.Of("never-defined"), value.True) {
		t.Error("Replace should fail for an unbound symbol")
	}
}

func TestDefineIfAbsent(t *testing.T) {
	e := New()
	x := symbol.Of("x")
	if !e.DefineIfAbsent(x, value.True) {
		t.Fatal("first DefineIfAbsent should succeed")
	}
	if e.DefineIfAbsent(x, value.False) {
		t.Fatal("second DefineIfAbsent should fail, not overwrite")
	}
	got, _ := e.Lookup(x)
	if got != value.True {
		t.Error("DefineIfAbsent should not have overwritten the existing binding")
	}
}

func TestGetLocalDoesNotWalkOuter(t *testing.T) {
	root := New()
	x := symbol.Of("x")
	root.Define(x, value.True)

	child := root.NewChild().(*Environment)
	if _, ok := child.GetLocal(x); ok {
		t.Error("GetLocal should not see the parent's binding")
	}
}

func TestMustLookupError(t *testing.T) {
	e := New()
	if _, err := MustLookup(e, symbol.Of("unbound")); err == nil {
		t.Error("MustLookup should error for an unbound symbol")
	}
}
