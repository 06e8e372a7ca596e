// Package printer implements spec.md §6's printed representation,
// grounded on go-dws's existence of a dedicated pkg/printer package
// separate from the value types themselves.
package printer

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-scheme/internal/value"
)

// ToScheme renders v in its canonical printed form.
func ToScheme(v value.Value) string {
	var sb strings.Builder
	write(&sb, v)
	return sb.String()
}

func write(sb *strings.Builder, v value.Value) {
	switch t := v.(type) {
	case *value.Boolean:
		if t.Value() {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
	case *value.Character:
		writeChar(sb, t.R)
	case *value.Number:
		sb.WriteString(t.N.String())
	case *value.String:
		writeString(sb, t)
	case *value.Symbol:
		sb.WriteString(t.Sym.String())
	case *value.Pair:
		writePair(sb, t)
	case *value.Vector:
		writeVector(sb, t)
	case *value.Builtin:
		fmt.Fprintf(sb, "#[bound procedure: %s]", t.Name)
	case *value.Closure:
		name := t.Name
		if name == "" {
			name = "anonymous"
		}
		fmt.Fprintf(sb, "#[closure %s]", name)
	case *value.Continuation:
		sb.WriteString("#[continuation]")
	case *value.Port:
		if t.Dir == value.InputPort {
			sb.WriteString("#[input-port]")
		} else {
			sb.WriteString("#[output-port]")
		}
	case *value.Promise:
		sb.WriteString("#[promise]")
	default:
		if value.IsNull(v) {
			sb.WriteString("()")
			return
		}
		if v == value.Eof {
			sb.WriteString("#<EOF>")
			return
		}
		if v == value.Void {
			sb.WriteString("#<void>")
			return
		}
		fmt.Fprintf(sb, "#<unknown:%v>", v)
	}
}

func writeChar(sb *strings.Builder, r rune) {
	switch r {
	case ' ':
		sb.WriteString(`#\space`)
	case '\n':
		sb.WriteString(`#\newline`)
	default:
		if isLetterOrDigit(r) {
			fmt.Fprintf(sb, `#\%c`, r)
		} else {
			fmt.Fprintf(sb, `#\U+%X`, r)
		}
	}
}

func isLetterOrDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// writeString prints a string's contents between double quotes as-is:
// no character, including an embedded double quote or backslash, is
// re-escaped.
func writeString(sb *strings.Builder, s *value.String) {
	sb.WriteByte('"')
	sb.WriteString(s.String())
	sb.WriteByte('"')
}

// maxPrintDepth bounds how many cdrs writePair walks before giving up,
// per spec.md §9: set-car!/set-cdr! can build cyclic pairs, and
// printing must not spin forever on one.
const maxPrintDepth = 100000

func writePair(sb *strings.Builder, p *value.Pair) {
	sb.WriteByte('(')
	write(sb, p.Car)
	cur := p.Cdr
	for i := 0; i < maxPrintDepth; i++ {
		switch t := cur.(type) {
		case *value.Pair:
			sb.WriteByte(' ')
			write(sb, t.Car)
			cur = t.Cdr
		default:
			if value.IsNull(cur) {
				sb.WriteByte(')')
				return
			}
			sb.WriteString(" . ")
			write(sb, cur)
			sb.WriteByte(')')
			return
		}
	}
	sb.WriteString(" ...)")
}

func writeVector(sb *strings.Builder, v *value.Vector) {
	sb.WriteString("#(")
	for i, item := range v.Items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		write(sb, item)
	}
	sb.WriteByte(')')
}
