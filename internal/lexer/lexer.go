// Package lexer tokenizes Scheme source text per spec.md §4.1: a
// fixed, ordered table of regular expressions, matched longest-prefix
// first with ties broken by table order, exactly mirroring the
// structure go-dws's own Lexer uses (a position/line/column-tracking
// struct with a New constructor and a token-producing driver loop) —
// only the match strategy itself (table-driven regexp instead of a
// hand-rolled character scanner) differs, since spec.md describes the
// token set literally as a regex table.
package lexer

import (
	"regexp"
	"strings"

	"github.com/cwbudde/go-scheme/internal/token"
)

// rule pairs a token type with the regular expression that recognizes
// it and whether matches should be discarded rather than emitted.
type rule struct {
	typ     token.Type
	pattern *regexp.Regexp
	skip    bool
}

// Table order encodes precedence for same-length matches, per spec.md §4.1.
var rules = []rule{
	{token.ILLEGAL, regexp.MustCompile(`^;[^\n]*`), true}, // COMMENT
	{token.QUASIQUOTE, regexp.MustCompile("^`"), false},
	{token.UNQUOTESPLICING, regexp.MustCompile(`^,@`), false},
	{token.UNQUOTE, regexp.MustCompile(`^,`), false},
	{token.LVECTOR, regexp.MustCompile(`^#\(`), false},
	{token.LPAREN, regexp.MustCompile(`^\(`), false},
	{token.RPAREN, regexp.MustCompile(`^\)`), false},
	{token.NUMBER, regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]*)?([eE][+-]?[0-9]+)?`), false},
	{token.TRUE, regexp.MustCompile(`(?i)^#t\b`), false},
	{token.FALSE, regexp.MustCompile(`(?i)^#f\b`), false},
	{token.CHARSPACE, regexp.MustCompile(`(?i)^#\\space\b`), false},
	{token.CHARNEWLINE, regexp.MustCompile(`(?i)^#\\newline\b`), false},
	{token.CHARRAW, regexp.MustCompile(`(?s)^#\\.`), false},
	{token.QUOTE, regexp.MustCompile(`^'`), false},
	{token.ILLEGAL, regexp.MustCompile(`^[ \t\r\n]+`), true}, // WHITESPACE
	{token.STRING, regexp.MustCompile(`^"(\\.|[^"\\])*"`), false},
	{token.DOT, regexp.MustCompile(`^\.`), false},
	{token.IDENTIFIER, regexp.MustCompile("^[^0-9\\s()'`,][^\\s()]*"), false},
}

// Lexer scans source text into a Token stream.
type Lexer struct {
	input  string
	pos    int
	line   int
	column int
}

// New creates a Lexer over input.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// Next returns the next token, or an EOF token once input is exhausted.
// Ignored tokens (comments, whitespace) are consumed internally and
// never returned.
func (l *Lexer) Next() token.Token {
	for {
		if l.pos >= len(l.input) {
			return token.Token{Type: token.EOF, Pos: token.Position{Line: l.line, Column: l.column}}
		}

		remaining := l.input[l.pos:]
		best := -1
		bestLen := 0
		for i, r := range rules {
			if loc := r.pattern.FindStringIndex(remaining); loc != nil {
				if loc[1] > bestLen {
					best = i
					bestLen = loc[1]
				}
			}
		}

		if best == -1 {
			// No rule matches: emit a single illegal rune so the
			// parser can report a precise position instead of the
			// lexer looping forever.
			tok := token.Token{
				Type:    token.ILLEGAL,
				Literal: string(remaining[0]),
				Pos:     token.Position{Line: l.line, Column: l.column},
			}
			l.advance(1)
			return tok
		}

		matched := remaining[:bestLen]
		r := rules[best]
		pos := token.Position{Line: l.line, Column: l.column}
		l.advance(bestLen)

		if r.skip {
			continue
		}

		return token.Token{Type: r.typ, Literal: matched, Pos: pos}
	}
}

// advance moves the scan position forward n bytes, updating line/column.
func (l *Lexer) advance(n int) {
	text := l.input[l.pos : l.pos+n]
	if idx := strings.LastIndexByte(text, '\n'); idx >= 0 {
		l.line += strings.Count(text, "\n")
		l.column = len(text) - idx
	} else {
		l.column += len(text)
	}
	l.pos += n
}

// Tokenize scans all of input, returning every emitted token including
// the trailing EOF. Useful for the CLI's debug `tokenize` subcommand.
func Tokenize(input string) []token.Token {
	l := New(input)
	var toks []token.Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Type == token.EOF {
			return toks
		}
	}
}
