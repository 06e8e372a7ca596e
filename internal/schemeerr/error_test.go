package schemeerr

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-scheme/internal/token"
)

func TestErrorStringWithoutPosition(t *testing.T) {
	err := Eval("unbound variable: %s", "foo")
	if err.Error() != "unbound variable: foo" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Kind != KindEval {
		t.Errorf("Kind = %v, want KindEval", err.Kind)
	}
}

func TestBindErrorKind(t *testing.T) {
	err := Bind("car: expected a pair, got %s", "number")
	if err.Kind != KindBind {
		t.Errorf("Kind = %v, want KindBind", err.Kind)
	}
}

func TestErrorStringWithPosition(t *testing.T) {
	pos := token.Position{Line: 3, Column: 5}
	err := EvalAt(pos, "unexpected )")
	want := "unexpected ) at 3:5"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFormatWithSource(t *testing.T) {
	src := "(+ 1\n  2))"
	pos := token.Position{Line: 2, Column: 4}
	err := &SchemeError{Kind: KindEval, Message: "unexpected )", Pos: pos, HasPos: true, Source: src}

	out := err.Format()
	if !strings.Contains(out, "line 2:4") {
		t.Errorf("Format() missing position header: %q", out)
	}
	if !strings.Contains(out, "2))") {
		t.Errorf("Format() missing offending source line: %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("Format() missing caret: %q", out)
	}
}

func TestFormatWithoutSourceFallsBackToError(t *testing.T) {
	err := Eval("plain error")
	if err.Format() != err.Error() {
		t.Error("Format() without source/position should equal Error()")
	}
}
