package builtins_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-scheme/internal/builtins"
	"github.com/cwbudde/go-scheme/internal/parser"
	"github.com/cwbudde/go-scheme/internal/printer"
	"github.com/cwbudde/go-scheme/internal/value"
	"github.com/cwbudde/go-scheme/internal/vm"
)

// newMachine builds a VM with every built-in registered. A real VM is
// used (rather than a stub Applier) since apply/map/for-each/force/eval
// all need a working evaluator behind them.
func newMachine(out *bytes.Buffer) *vm.VM {
	machine := vm.New(out)
	builtins.Register(machine.Global, machine, builtins.Ports{Stdout: out})
	return machine
}

func evalPrint(t *testing.T, src string) string {
	t.Helper()
	machine := newMachine(&bytes.Buffer{})
	p := parser.New(src)
	forms, err := p.ParseAll()
	if err != nil {
		t.Fatalf("parse error for %q: %v", src, err)
	}
	var result value.Value = value.Void
	for _, form := range forms {
		result, err = machine.Run(machine.Global, form)
		if err != nil {
			t.Fatalf("eval error for %q: %v", src, err)
		}
	}
	return printer.ToScheme(result)
}

func evalErr(t *testing.T, src string) error {
	t.Helper()
	machine := newMachine(&bytes.Buffer{})
	p := parser.New(src)
	forms, err := p.ParseAll()
	if err != nil {
		t.Fatalf("parse error for %q: %v", src, err)
	}
	for _, form := range forms {
		if _, err := machine.Run(machine.Global, form); err != nil {
			return err
		}
	}
	return nil
}

func TestPredicates(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(eq? 'a 'a)", "#t"},
		{"(eq? (list 1) (list 1))", "#f"},
		{"(eqv? 3 3.0)", "#f"},
		{"(equal? (list 1 2) (list 1 2))", "#t"},
		{"(not #f)", "#t"},
		{"(not 0)", "#f"},
		{"(pair? '(1 2))", "#t"},
		{"(pair? '())", "#f"},
		{"(null? '())", "#t"},
		{"(list? '(1 2 3))", "#t"},
		{"(list? (cons 1 2))", "#f"},
		{"(symbol? 'x)", "#t"},
		{"(string? \"x\")", "#t"},
		{"(vector? #(1 2))", "#t"},
		{"(char? #\\a)", "#t"},
		{"(number? 3)", "#t"},
		{"(procedure? car)", "#t"},
		{"(eof-object? (eof-object))", "#t"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := evalPrint(t, tt.src); got != tt.want {
				t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestNumericPredicatesAndMinMax(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(zero? 0)", "#t"},
		{"(positive? -1)", "#f"},
		{"(negative? -1)", "#t"},
		{"(even? 4)", "#t"},
		{"(odd? 4)", "#f"},
		{"(exact? 3)", "#t"},
		{"(exact? 3.0)", "#f"},
		{"(min 3 1 2)", "1"},
		{"(max 3 1 2)", "3"},
		// min/max promote their result to inexact as soon as any
		// argument is inexact, even when the winning value itself was
		// given as exact.
		{"(min 3 1.5 2)", "1.5"},
		{"(max 1 2 2.5)", "2.5"},
		// The numeric tower is arbitrary-precision; even?/odd? must
		// test parity on the full big.Int, not on a value truncated
		// to fit an int64.
		{"(odd? 100000000000000000000000001)", "#t"},
		{"(even? 100000000000000000000000001)", "#f"},
		{"(even? 100000000000000000000000000)", "#t"},
		{"(odd? -100000000000000000000000001)", "#t"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := evalPrint(t, tt.src); got != tt.want {
				t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestArithmeticArgCountErrors(t *testing.T) {
	if err := evalErr(t, "(-)"); err == nil {
		t.Error("(-) with no arguments should error")
	}
	if err := evalErr(t, "(/)"); err == nil {
		t.Error("(/) with no arguments should error")
	}
}

func TestQuotientRemainderModuloGCDLCM(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(quotient 7 2)", "3"},
		{"(remainder 7 2)", "1"},
		{"(remainder -7 2)", "-1"},
		{"(modulo -7 2)", "1"},
		{"(gcd 12 18)", "6"},
		{"(lcm 4 6)", "12"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := evalPrint(t, tt.src); got != tt.want {
				t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestPairMutationAndListOps(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(cons 1 2)", "(1 . 2)"},
		{"(car '(1 2 3))", "1"},
		{"(cdr '(1 2 3))", "(2 3)"},
		{"(let ((p (cons 1 2))) (set-car! p 9) p)", "(9 . 2)"},
		{"(let ((p (cons 1 2))) (set-cdr! p 9) p)", "(1 . 9)"},
		{"(length '(1 2 3))", "3"},
		{"(append '(1 2) '(3 4) '(5))", "(1 2 3 4 5)"},
		{"(append)", "()"},
		{"(reverse '(1 2 3))", "(3 2 1)"},
		{"(list-tail '(1 2 3 4) 2)", "(3 4)"},
		{"(list-ref '(1 2 3 4) 2)", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := evalPrint(t, tt.src); got != tt.want {
				t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestSetCarOnQuotedListLiteralFails(t *testing.T) {
	// Like vector literals, reader-produced pairs are immutable
	// (parser.buildList clears their mutable bit), so set-car! on a
	// quoted list literal must fail.
	if err := evalErr(t, "(let ((p '(1 2))) (set-car! p 9) p)"); err == nil {
		t.Error("set-car! on a quoted list literal should fail (literals are immutable)")
	}
}

func TestStrings(t *testing.T) {
	tests := []struct{ src, want string }{
		{`(make-string 3 #\x)`, `"xxx"`},
		{`(string #\a #\b #\c)`, `"abc"`},
		{`(string-length "hello")`, "5"},
		{`(string-ref "hello" 1)`, `#\e`},
		{`(let ((s (string-copy "hello"))) (string-set! s 0 #\H) s)`, `"Hello"`},
		{`(string-append "foo" "bar")`, `"foobar"`},
		{`(substring "hello world" 6 11)`, `"world"`},
		{`(string-copy "abc")`, `"abc"`},
		{`(let ((s (string-copy "abc"))) (string-fill! s #\z) s)`, `"zzz"`},
		{`(string->list "ab")`, `(#\a #\b)`},
		{`(list->string (list #\a #\b))`, `"ab"`},
		{`(string->symbol "foo")`, "foo"},
		{`(symbol->string 'foo)`, `"foo"`},
		{`(string=? "abc" "abc")`, "#t"},
		{`(string<? "abc" "abd")`, "#t"},
		{`(string-ci=? "ABC" "abc")`, "#t"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := evalPrint(t, tt.src); got != tt.want {
				t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestStringLiteralsAreImmutable(t *testing.T) {
	if err := evalErr(t, `(string-set! "abc" 0 #\z)`); err == nil {
		t.Error("string-set! on a string literal should fail (literals are immutable)")
	}
}

func TestVectors(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(make-vector 3 0)", "#(0 0 0)"},
		{"(vector 1 2 3)", "#(1 2 3)"},
		{"(vector-length #(1 2 3))", "3"},
		{"(vector-ref #(1 2 3) 1)", "2"},
		{"(let ((v (vector 1 2 3))) (vector-set! v 1 9) v)", "#(1 9 3)"},
		{"(vector->list #(1 2 3))", "(1 2 3)"},
		{"(list->vector (list 1 2 3))", "#(1 2 3)"},
		{"(let ((v (vector 1 2 3))) (vector-fill! v 0) v)", "#(0 0 0)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := evalPrint(t, tt.src); got != tt.want {
				t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestVectorLiteralsAreImmutable(t *testing.T) {
	if err := evalErr(t, "(vector-set! #(1 2 3) 0 9)"); err == nil {
		t.Error("vector-set! on a vector literal should fail (reader vectors are immutable)")
	}
}

func TestChars(t *testing.T) {
	tests := []struct{ src, want string }{
		{`(char=? #\a #\a)`, "#t"},
		{`(char<? #\a #\b)`, "#t"},
		{`(char-ci=? #\A #\a)`, "#t"},
		{`(char-alphabetic? #\a)`, "#t"},
		{`(char-alphabetic? #\1)`, "#f"},
		{`(char-numeric? #\1)`, "#t"},
		{`(char-whitespace? #\space)`, "#t"},
		{`(char-upper-case? #\A)`, "#t"},
		{`(char-lower-case? #\a)`, "#t"},
		{`(char->integer #\A)`, "65"},
		{`(integer->char 65)`, `#\A`},
		{`(char-upcase #\a)`, `#\A`},
		{`(char-downcase #\A)`, `#\a`},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := evalPrint(t, tt.src); got != tt.want {
				t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestVoidAndEofConstants(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(void? (void))", "#t"},
		{"(eof-object? eof)", "#t"},
		{"(eq? eof (eof-object))", "#t"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := evalPrint(t, tt.src); got != tt.want {
				t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestGensym(t *testing.T) {
	got := evalPrint(t, "(eq? (gensym) (gensym))")
	if got != "#f" {
		t.Errorf("two gensym calls should never be eq?, got %q", got)
	}
}

func TestApplyFlattensTrailingList(t *testing.T) {
	tests := []struct{ src, want string }{
		{"(apply + '(1 2 3))", "6"},
		{"(apply + 1 2 '(3 4))", "10"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := evalPrint(t, tt.src); got != tt.want {
				t.Errorf("eval(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestMapAndForEach(t *testing.T) {
	if got := evalPrint(t, "(map (lambda (x) (* x x)) '(1 2 3))"); got != "(1 4 9)" {
		t.Errorf("map square = %q, want (1 4 9)", got)
	}
	if got := evalPrint(t, "(map + '(1 2 3) '(10 20 30))"); got != "(11 22 33)" {
		t.Errorf("map over two lists = %q, want (11 22 33)", got)
	}
	if err := evalErr(t, "(map + '(1 2) '(1 2 3))"); err == nil {
		t.Error("map over unequal-length lists should error")
	}

	out := &bytes.Buffer{}
	machine := newMachine(out)
	p := parser.New(`(for-each (lambda (x) (display x)) '(1 2 3))`)
	form, err := p.ParseOne()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := machine.Run(machine.Global, form); err != nil {
		t.Fatalf("eval error: %v", err)
	}
	if got := out.String(); got != "123" {
		t.Errorf("for-each output = %q, want 123", got)
	}
}

func TestForcePromiseMemoizes(t *testing.T) {
	// force must only evaluate the delayed body once; a counter in the
	// closed-over environment reveals a second evaluation.
	src := `
		(define n 0)
		(define p (delay (begin (set! n (+ n 1)) n)))
		(force p)
		(force p)
		n`
	if got := evalPrint(t, src); got != "1" {
		t.Errorf("n after two forces = %q, want 1 (force should memoize)", got)
	}
}

func TestForceOnNonPromiseReturnsItUnchanged(t *testing.T) {
	if got := evalPrint(t, "(force 42)"); got != "42" {
		t.Errorf("(force 42) = %q, want 42", got)
	}
}

func TestEvalEvaluatesAQuotedForm(t *testing.T) {
	if got := evalPrint(t, "(eval '(+ 1 2))"); got != "3" {
		t.Errorf("(eval '(+ 1 2)) = %q, want 3", got)
	}
}

func TestErrorProcedureFormatsIrritants(t *testing.T) {
	err := evalErr(t, `(error "bad value" 1 2)`)
	if err == nil {
		t.Fatal("(error ...) should raise")
	}
	msg := err.Error()
	if !strings.Contains(msg, "bad value") || !strings.Contains(msg, "1") || !strings.Contains(msg, "2") {
		t.Errorf("error message %q missing expected text/irritants", msg)
	}
}

func TestDisplayVsWriteQuoting(t *testing.T) {
	out := &bytes.Buffer{}
	machine := newMachine(out)
	p := parser.New(`(display "hi") (write "hi")`)
	forms, err := p.ParseAll()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	for _, form := range forms {
		if _, err := machine.Run(machine.Global, form); err != nil {
			t.Fatalf("eval error: %v", err)
		}
	}
	if got := out.String(); got != `hi"hi"` {
		t.Errorf("display+write output = %q, want hi\"hi\"", got)
	}
}

func TestNewlineAndWriteChar(t *testing.T) {
	out := &bytes.Buffer{}
	machine := newMachine(out)
	p := parser.New(`(write-char #\x) (newline)`)
	forms, err := p.ParseAll()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	for _, form := range forms {
		if _, err := machine.Run(machine.Global, form); err != nil {
			t.Fatalf("eval error: %v", err)
		}
	}
	if got := out.String(); got != "x\n" {
		t.Errorf("write-char+newline output = %q, want \"x\\n\"", got)
	}
}
