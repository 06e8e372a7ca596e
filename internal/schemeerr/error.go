// Package schemeerr implements spec.md §7's two-kind error model,
// grounded on go-dws's internal/errors.CompilerError: a position-aware
// error type with a plain Error() string and a richer Format that
// renders a source-line-and-caret view when source text is available.
package schemeerr

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-scheme/internal/token"
)

// Kind distinguishes the two error categories spec.md §7 names.
type Kind int

const (
	// KindBind is a host<->Scheme type conversion failure at the
	// built-in boundary: wrong argument type, arity mismatch, a
	// non-exact conversion. A programmer error in a built-in,
	// surfaced as an evaluation error to the caller.
	KindBind Kind = iota
	// KindEval is any other evaluation-time failure: parse errors,
	// arithmetic errors, bounds errors, unbound symbols, improper
	// application, arity mismatches, redefinition, divide-by-zero,
	// and user (error ...) calls.
	KindEval
)

// SchemeError is the error type the evaluator, the built-ins and the
// public interpreter API return for a spec.md §7 failure. The parser
// reports its own ParseError, and the number and env packages return
// plain errors, which their callers wrap in a SchemeError.
type SchemeError struct {
	Kind    Kind
	Message string
	Pos     token.Position // zero value if unknown
	HasPos  bool
	Source  string // full source text, for Format's caret rendering
}

func (e *SchemeError) Error() string {
	if e.HasPos {
		return fmt.Sprintf("%s at %s", e.Message, e.Pos)
	}
	return e.Message
}

// Bind builds a KindBind error with no position information (built-in
// argument checks run after parsing, with no token position at hand).
func Bind(format string, args ...any) *SchemeError {
	return &SchemeError{Kind: KindBind, Message: fmt.Sprintf(format, args...)}
}

// Eval builds a KindEval error with no position information.
func Eval(format string, args ...any) *SchemeError {
	return &SchemeError{Kind: KindEval, Message: fmt.Sprintf(format, args...)}
}

// EvalAt builds a KindEval error carrying a source position, for
// parse-time and read-time failures.
func EvalAt(pos token.Position, format string, args ...any) *SchemeError {
	return &SchemeError{Kind: KindEval, Message: fmt.Sprintf(format, args...), Pos: pos, HasPos: true}
}

// Format renders e with a source-line-and-caret view when both a
// position and source text are available, mirroring go-dws's
// CompilerError.Format.
func (e *SchemeError) Format() string {
	if !e.HasPos || e.Source == "" {
		return e.Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)

	lines := strings.Split(e.Source, "\n")
	if e.Pos.Line >= 1 && e.Pos.Line <= len(lines) {
		line := lines[e.Pos.Line-1]
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		sb.WriteString("^\n")
	}

	sb.WriteString(e.Message)
	return sb.String()
}
