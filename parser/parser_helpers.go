/*
File    : mxc/parser/parser_helpers.go
Package : parser

Token-cursor primitives and error/synchronization bookkeeping, grounded on
the teacher's CurrToken/NextToken two-token lookahead buffer and
Parser.Errors/addError pattern.
*/
package parser

import (
	"fmt"

	"github.com/mxc-lang/mxc/lexer"
)

// ParseError is one recorded parse failure, carrying a location when known.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.Line, e.Column, e.Message)
}

func (p *Parser) addError(format string, a ...interface{}) {
	tok := p.current()
	p.Errors = append(p.Errors, &ParseError{
		Message: fmt.Sprintf(format, a...),
		Line:    tok.Line,
		Column:  tok.Column,
	})
}

// current returns the token at the cursor without consuming it.
func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// peekNext looks one token past the cursor.
func (p *Parser) peekNext() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

// peekAt looks n tokens past the cursor.
func (p *Parser) peekAt(n int) lexer.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) isAtEnd() bool {
	return p.current().Type == lexer.EOF
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) check(t lexer.TokenType) bool {
	return p.current().Type == t
}

// match consumes and returns true if the current token is one of types.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it matches t, else records a
// ParseError and returns the current token unconsumed.
func (p *Parser) expect(t lexer.TokenType, context string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.addError("expected %s %s, got %q", t, context, p.current().Lexeme)
	return p.current()
}

// cursorMark with mark / restore implements the save/restore idiom speculative
// generics parsing needs (spec.md §4.2, §9).
type cursorMark struct {
	pos int
}

func (p *Parser) mark() cursorMark {
	return cursorMark{pos: p.pos}
}

func (p *Parser) restore(m cursorMark) {
	p.pos = m.pos
}

// synchronize discards tokens until just past the next semicolon or until
// the next token begins a recognizable declaration/statement, per spec.md
// §4.2's error-recovery rule.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.tokens[p.pos-1].Type == lexer.SEMICOLON {
			return
		}
		switch p.current().Type {
		case lexer.CLASS, lexer.STRUCT, lexer.FN, lexer.LET, lexer.MUT,
			lexer.FOR, lexer.IF, lexer.WHILE, lexer.RETURN, lexer.SWITCH:
			return
		}
		p.advance()
	}
}
