// Package parser implements recursive-descent parsing of a Token
// stream into S-expression Value trees (spec.md §4.2), grounded on
// go-dws's parser package shape: a Parser struct wrapping the lexer,
// one method per grammar production, and a package-local ParseError
// carrying the source position; parsing stops at the first error.
package parser

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-scheme/internal/lexer"
	"github.com/cwbudde/go-scheme/internal/number"
	"github.com/cwbudde/go-scheme/internal/symbol"
	"github.com/cwbudde/go-scheme/internal/token"
	"github.com/cwbudde/go-scheme/internal/value"
)

// ParseError reports a syntax error with its source position.
type ParseError struct {
	Msg string
	Pos token.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Msg)
}

// Parser reads one parsed Value at a time from a token stream.
type Parser struct {
	lex  *lexer.Lexer
	tok  token.Token
	peek bool // true if a token was already scanned and buffered below
	buf  token.Token
}

// New creates a Parser over src.
func New(src string) *Parser {
	return &Parser{lex: lexer.New(src)}
}

func (p *Parser) next() token.Token {
	if p.peek {
		p.peek = false
		return p.buf
	}
	return p.lex.Next()
}

func (p *Parser) peekTok() token.Token {
	if !p.peek {
		p.buf = p.lex.Next()
		p.peek = true
	}
	return p.buf
}

// AtEOF reports whether the next token is EOF, without consuming it.
func (p *Parser) AtEOF() bool {
	return p.peekTok().Type == token.EOF
}

// ParseOne reads and returns a single top-level form. Returns
// value.Eof (and no error) when the input is exhausted, matching
// spec.md §4.2 ("EOF yields the Eof singleton").
func (p *Parser) ParseOne() (value.Value, error) {
	tok := p.next()
	return p.parseForm(tok)
}

// ParseAll reads every top-level form until EOF.
func (p *Parser) ParseAll() ([]value.Value, error) {
	var forms []value.Value
	for !p.AtEOF() {
		v, err := p.ParseOne()
		if err != nil {
			return nil, err
		}
		forms = append(forms, v)
	}
	return forms, nil
}

func (p *Parser) parseForm(tok token.Token) (value.Value, error) {
	switch tok.Type {
	case token.EOF:
		return value.Eof, nil
	case token.TRUE:
		return value.True, nil
	case token.FALSE:
		return value.False, nil
	case token.NUMBER:
		n, ok := number.ParseDecimal(tok.Literal)
		if !ok {
			return nil, &ParseError{Msg: "invalid number literal " + tok.Literal, Pos: tok.Pos}
		}
		return value.NewNumber(n), nil
	case token.STRING:
		return value.NewImmutableString(unquoteString(tok.Literal)), nil
	case token.IDENTIFIER:
		return value.NewSymbol(symbol.Of(tok.Literal)), nil
	case token.DOT:
		return value.NewSymbol(symbol.Of(".")), nil
	case token.CHARSPACE:
		return &value.Character{R: ' '}, nil
	case token.CHARNEWLINE:
		return &value.Character{R: '\n'}, nil
	case token.CHARRAW:
		r := []rune(tok.Literal)
		return &value.Character{R: r[len(r)-1]}, nil
	case token.QUOTE:
		return p.parseAbbrev("quote", tok)
	case token.QUASIQUOTE:
		return p.parseAbbrev("quasiquote", tok)
	case token.UNQUOTE:
		return p.parseAbbrev("unquote", tok)
	case token.UNQUOTESPLICING:
		return p.parseAbbrev("unquote-splicing", tok)
	case token.LPAREN:
		return p.parseList(tok)
	case token.LVECTOR:
		return p.parseVector(tok)
	case token.RPAREN:
		return nil, &ParseError{Msg: "unexpected )", Pos: tok.Pos}
	default:
		return nil, &ParseError{Msg: "unexpected token " + tok.Literal, Pos: tok.Pos}
	}
}

// parseAbbrev builds the two-element list (kw expr) for a reader
// abbreviation token (', `, ,, ,@).
func (p *Parser) parseAbbrev(kw string, tok token.Token) (value.Value, error) {
	inner, err := p.parseForm(p.next())
	if err != nil {
		return nil, err
	}
	if inner == value.Eof {
		return nil, &ParseError{Msg: "unexpected EOF after " + kw, Pos: tok.Pos}
	}
	return value.List(value.NewSymbol(symbol.Of(kw)), inner), nil
}

// parseList reads forms until RPAREN, building a proper list, or — if
// a lone DOT appears — an improper list whose final cdr is the form
// following the dot (spec.md §4.2).
func (p *Parser) parseList(open token.Token) (value.Value, error) {
	var items []value.Value
	var tail value.Value = value.Null

	for {
		tok := p.next()
		switch tok.Type {
		case token.RPAREN:
			return buildList(items, tail), nil
		case token.EOF:
			return nil, &ParseError{Msg: "unterminated list", Pos: open.Pos}
		case token.DOT:
			cdr, err := p.parseForm(p.next())
			if err != nil {
				return nil, err
			}
			closeTok := p.next()
			if closeTok.Type != token.RPAREN {
				return nil, &ParseError{Msg: "expected ) after dotted tail", Pos: closeTok.Pos}
			}
			tail = cdr
			return buildList(items, tail), nil
		default:
			form, err := p.parseForm(tok)
			if err != nil {
				return nil, err
			}
			items = append(items, form)
		}
	}
}

// buildList conses items onto tail. Like vector and string literals,
// the pairs it builds are literals, so their mutable bit is cleared.
func buildList(items []value.Value, tail value.Value) value.Value {
	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		p := value.Cons(items[i], result)
		p.Mut = false
		result = p
	}
	return result
}

// parseVector reads forms until RPAREN into a Vector.
func (p *Parser) parseVector(open token.Token) (value.Value, error) {
	var items []value.Value
	for {
		tok := p.next()
		switch tok.Type {
		case token.RPAREN:
			v := value.VectorOf(items...)
			v.Mut = false
			return v, nil
		case token.EOF:
			return nil, &ParseError{Msg: "unterminated vector", Pos: open.Pos}
		default:
			form, err := p.parseForm(tok)
			if err != nil {
				return nil, err
			}
			items = append(items, form)
		}
	}
}

// unquoteString strips the surrounding quotes and processes the one
// escape this implementation supports (\"). Further escape processing
// is a known limitation carried over from spec.md §9, not silently added.
func unquoteString(lit string) string {
	inner := lit[1 : len(lit)-1]
	return strings.ReplaceAll(inner, `\"`, `"`)
}
