package lexer

import (
	"testing"

	"github.com/cwbudde/go-scheme/internal/token"
)

func TestTokenizeBasicForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Type
	}{
		{"empty-list", "()", []token.Type{token.LPAREN, token.RPAREN, token.EOF}},
		{
			"simple-call",
			"(+ 1 2)",
			[]token.Type{token.LPAREN, token.IDENTIFIER, token.NUMBER, token.NUMBER, token.RPAREN, token.EOF},
		},
		{"quote-abbrev", "'x", []token.Type{token.QUOTE, token.IDENTIFIER, token.EOF}},
		{"quasiquote-abbrev", "`(a ,b ,@c)", []token.Type{
			token.QUASIQUOTE, token.LPAREN, token.IDENTIFIER,
			token.UNQUOTE, token.IDENTIFIER,
			token.UNQUOTESPLICING, token.IDENTIFIER,
			token.RPAREN, token.EOF,
		}},
		{"vector", "#(1 2 3)", []token.Type{token.LVECTOR, token.NUMBER, token.NUMBER, token.NUMBER, token.RPAREN, token.EOF}},
		{"booleans", "#t #f", []token.Type{token.TRUE, token.FALSE, token.EOF}},
		{"dotted-pair", "(a . b)", []token.Type{token.LPAREN, token.IDENTIFIER, token.DOT, token.IDENTIFIER, token.RPAREN, token.EOF}},
		{"string-literal", `"hello"`, []token.Type{token.STRING, token.EOF}},
		{"comment-skipped", "; comment\n42", []token.Type{token.NUMBER, token.EOF}},
		{"char-space", `#\space`, []token.Type{token.CHARSPACE, token.EOF}},
		{"char-newline", `#\newline`, []token.Type{token.CHARNEWLINE, token.EOF}},
		{"char-raw", `#\a`, []token.Type{token.CHARRAW, token.EOF}},
		{"negative-number", "-5", []token.Type{token.NUMBER, token.EOF}},
		{"float", "3.14", []token.Type{token.NUMBER, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.input)
			if len(toks) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tt.want), toks)
			}
			for i, typ := range tt.want {
				if toks[i].Type != typ {
					t.Errorf("token %d: got %v, want %v", i, toks[i].Type, typ)
				}
			}
		})
	}
}

func TestLexerTracksPosition(t *testing.T) {
	toks := Tokenize("a\nb")
	if toks[0].Pos.Line != 1 {
		t.Errorf("first token line = %d, want 1", toks[0].Pos.Line)
	}
	if toks[1].Pos.Line != 2 {
		t.Errorf("second token line = %d, want 2", toks[1].Pos.Line)
	}
}

func TestIdentifierCanContainSpecialChars(t *testing.T) {
	toks := Tokenize("list->vector")
	if len(toks) != 2 || toks[0].Type != token.IDENTIFIER || toks[0].Literal != "list->vector" {
		t.Fatalf("got %v, want a single IDENTIFIER token", toks)
	}
}

func TestBackslashTokenizesAsIdentifier(t *testing.T) {
	// The identifier rule matches anything but digits/whitespace/parens
	// and the ' ` , abbreviation marks as a leading character, so a bare
	// backslash outside a #\ char
	// literal reads as an (unusual but legal) identifier.
	toks := Tokenize("\\")
	if toks[0].Type != token.IDENTIFIER {
		t.Fatalf("got %v, want IDENTIFIER", toks[0])
	}
}
