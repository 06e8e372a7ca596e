// Package value implements the tagged Value model shared by every
// other component: the tokenizer/parser build Values, the environment
// stores Values, and the VM evaluates Values to Values.
package value

import (
	"github.com/cwbudde/go-scheme/internal/number"
	"github.com/cwbudde/go-scheme/internal/symbol"
)

// Value is the single interface every runtime datum implements. There
// is deliberately no further method surface on the interface itself —
// operations on values are free functions that type-switch, per
// spec.md §9 ("replace the inheritance hierarchy with a single tagged
// sum").
type Value interface {
	schemeValue()
}

// Mutable is implemented by values whose mutable/immutable bit can be
// tested (spec.md §3). Values with no Mutable implementation are
// always immutable (booleans, numbers, symbols, procedures, ...).
type Mutable interface {
	Value
	Mutable() bool
}

// Boolean is one of the two interned boolean singletons.
type Boolean struct{ val bool }

func (*Boolean) schemeValue() {}

var (
	True  = &Boolean{val: true}
	False = &Boolean{val: false}
)

// Bool returns the interned Boolean singleton for v.
func Bool(v bool) *Boolean {
	if v {
		return True
	}
	return False
}

// Value reports the underlying bool.
func (b *Boolean) Value() bool { return b.val }

// Truthy implements spec.md's truthiness rule: everything except the
// false boolean is truthy.
func Truthy(v Value) bool {
	b, ok := v.(*Boolean)
	return !ok || b.val
}

// Character is a single Unicode scalar value.
type Character struct{ R rune }

func (*Character) schemeValue() {}

// Number wraps the numeric tower's Number as a runtime Value.
type Number struct{ N number.Number }

func (*Number) schemeValue() {}

func NewNumber(n number.Number) *Number { return &Number{N: n} }

// Symbol wraps an interned or uninterned *symbol.Symbol.
type Symbol struct{ Sym *symbol.Symbol }

func (*Symbol) schemeValue() {}

func NewSymbol(s *symbol.Symbol) *Symbol { return &Symbol{Sym: s} }

// Null is the empty-list singleton.
type nullType struct{}

func (*nullType) schemeValue() {}

var Null Value = &nullType{}

// IsNull reports whether v is the empty list.
func IsNull(v Value) bool {
	_, ok := v.(*nullType)
	return ok
}

// Eof is the end-of-stream singleton.
type eofType struct{}

func (*eofType) schemeValue() {}

var Eof Value = &eofType{}

// Void is the "unspecified result" singleton.
type voidType struct{}

func (*voidType) schemeValue() {}

var Void Value = &voidType{}

// TypeName returns a human-readable type tag, used in built-in error
// messages.
func TypeName(v Value) string {
	switch v.(type) {
	case *Boolean:
		return "boolean"
	case *Character:
		return "character"
	case *Number:
		return "number"
	case *String:
		return "string"
	case *Symbol:
		return "symbol"
	case *nullType:
		return "null"
	case *Pair:
		return "pair"
	case *Vector:
		return "vector"
	case *Builtin, *Closure, *Continuation:
		return "procedure"
	case *Port:
		return "port"
	case *Promise:
		return "promise"
	case *eofType:
		return "eof"
	case *voidType:
		return "void"
	default:
		return "unknown"
	}
}
