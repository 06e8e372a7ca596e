package scheme_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-scheme/internal/parser"
	"github.com/cwbudde/go-scheme/pkg/scheme"
)

func newInterp(t *testing.T, opts ...scheme.Option) *scheme.Interpreter {
	t.Helper()
	in, err := scheme.New(opts...)
	if err != nil {
		t.Fatalf("scheme.New: %v", err)
	}
	return in
}

func loadPrint(t *testing.T, in *scheme.Interpreter, src string) string {
	t.Helper()
	result, err := in.LoadString(src)
	if err != nil {
		t.Fatalf("LoadString(%q): %v", src, err)
	}
	return in.Print(result)
}

func TestNewLoadsBootstrapLibrary(t *testing.T) {
	in := newInterp(t, scheme.WithOutput(&bytes.Buffer{}))

	tests := []struct{ src, want string }{
		{"(caar '((1 2) 3))", "1"},
		{"(cadr '(1 2 3))", "2"},
		{"(cddddr '(1 2 3 4 5))", "(5)"},
		{"(memq 'c '(a b c d))", "(c d)"},
		{"(memq 'z '(a b c d))", "#f"},
		{"(member '(1) (list '(0) '(1) '(2)))", "((1) (2))"},
		{"(assq 'b '((a . 1) (b . 2)))", "(b . 2)"},
		{"(assoc 2 (list (cons 1 'one) (cons 2 'two)))", "(2 . two)"},
		{"(list-copy '(1 2 3))", "(1 2 3)"},
		{"(vector-map (lambda (x) (* x x)) #(1 2 3))", "#(1 4 9)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := loadPrint(t, in, tt.src); got != tt.want {
				t.Errorf("LoadString(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestListCopyIsAFreshSpine(t *testing.T) {
	in := newInterp(t, scheme.WithOutput(&bytes.Buffer{}))
	// list-copy must not share cons cells with the original: mutating
	// the head of the copy must leave the original untouched.
	src := `
		(define original (list 1 2 3))
		(define copy (list-copy original))
		(set-car! copy 99)
		original`
	if got := loadPrint(t, in, src); got != "(1 2 3)" {
		t.Errorf("original after mutating the copy = %q, want (1 2 3)", got)
	}
}

func TestVectorForEach(t *testing.T) {
	out := &bytes.Buffer{}
	in := newInterp(t, scheme.WithOutput(out))
	if _, err := in.LoadString(`(vector-for-each (lambda (x) (display x)) #(1 2 3))`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if out.String() != "123" {
		t.Errorf("vector-for-each output = %q, want 123", out.String())
	}
}

func TestWithOutputRedirectsDisplay(t *testing.T) {
	out := &bytes.Buffer{}
	in := newInterp(t, scheme.WithOutput(out))
	if _, err := in.LoadString(`(display "hello")`); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	if out.String() != "hello" {
		t.Errorf("output = %q, want hello", out.String())
	}
}

func TestWithInputKeepsCurrentInputPortAnInputPort(t *testing.T) {
	// With a WithInput stream configured, current-input-port still
	// yields an input port. No built-in reads from it, so this checks
	// the port's direction only, not the stream's contents.
	in := newInterp(t, scheme.WithOutput(&bytes.Buffer{}), scheme.WithInput(strings.NewReader("hello\n")))
	got := loadPrint(t, in, "(input-port? (current-input-port))")
	if got != "#t" {
		t.Errorf("(input-port? (current-input-port)) = %q, want #t", got)
	}
}

func TestWithMaxFramesBoundsNonTailRecursion(t *testing.T) {
	in := newInterp(t, scheme.WithOutput(&bytes.Buffer{}), scheme.WithMaxFrames(64))
	src := `(define (sum n) (if (= n 0) 0 (+ n (sum (- n 1)))))`
	if _, err := in.LoadString(src); err != nil {
		t.Fatalf("LoadString(define): %v", err)
	}
	if _, err := in.LoadString("(sum 100000)"); err == nil {
		t.Error("deep non-tail recursion should fail once maxFrames is exceeded")
	}
}

func TestDepthStaysBoundedAcrossTailCallsWithBootstrapLoaded(t *testing.T) {
	in := newInterp(t, scheme.WithOutput(&bytes.Buffer{}))
	src := `
		(define (loop n acc)
		  (if (= n 0) acc (loop (- n 1) (+ acc 1))))`
	if _, err := in.LoadString(src); err != nil {
		t.Fatalf("LoadString(define): %v", err)
	}
	if got := loadPrint(t, in, "(loop 50000 0)"); got != "50000" {
		t.Errorf("(loop 50000 0) = %q, want 50000", got)
	}
	if in.Depth() > 64 {
		t.Errorf("Depth() = %d, want a small bounded constant", in.Depth())
	}
}

func TestEvalOnAlreadyParsedForm(t *testing.T) {
	in := newInterp(t, scheme.WithOutput(&bytes.Buffer{}))
	p := parser.New("(+ 1 2 3)")
	form, err := p.ParseOne()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	result, err := in.Eval(form)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got := in.Print(result); got != "6" {
		t.Errorf("Eval((+ 1 2 3)) = %q, want 6", got)
	}
}

func TestSetTracingDoesNotChangeResults(t *testing.T) {
	in := newInterp(t, scheme.WithOutput(&bytes.Buffer{}))
	in.SetTracing(true)
	if got := loadPrint(t, in, "(+ 1 2)"); got != "3" {
		t.Errorf("(+ 1 2) with tracing on = %q, want 3", got)
	}
	in.SetTracing(false)
}

func TestLoadStringEvaluatesMultipleFormsReturningTheLast(t *testing.T) {
	in := newInterp(t, scheme.WithOutput(&bytes.Buffer{}))
	if got := loadPrint(t, in, "1 2 3"); got != "3" {
		t.Errorf("LoadString(\"1 2 3\") = %q, want 3", got)
	}
}

func TestLoadStringParseErrorReported(t *testing.T) {
	in := newInterp(t, scheme.WithOutput(&bytes.Buffer{}))
	if _, err := in.LoadString("(+ 1 2"); err == nil {
		t.Error("an unterminated form should produce a parse error")
	}
}
