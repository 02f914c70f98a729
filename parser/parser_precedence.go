/*
File    : mxc/parser/parser_precedence.go
Package : mxc/parser

The binary precedence ladder of spec.md §4.2, lowest to highest:
assign < or < and < equality < comparison < additive < multiplicative <
unary < postfix/call < primary. Every level but assign is left-associative.
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

// parseExpression is the entry point for expression parsing; it starts at
// the lowest (assignment) precedence level.
func (p *Parser) parseExpression() Expr {
	return p.parseAssignment()
}

func (p *Parser) parseOr() Expr {
	left := p.parseAnd()
	for p.check(lexer.OR_OR) {
		op := p.advance()
		right := p.parseAnd()
		left = &Logical{Pos: posOf(op), Left: left, Operator: op.Lexeme, Right: right}
	}
	return left
}

func (p *Parser) parseAnd() Expr {
	left := p.parseEquality()
	for p.check(lexer.AND_AND) {
		op := p.advance()
		right := p.parseEquality()
		left = &Logical{Pos: posOf(op), Left: left, Operator: op.Lexeme, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() Expr {
	left := p.parseComparison()
	for p.check(lexer.EQUAL_EQUAL) || p.check(lexer.BANG_EQUAL) {
		op := p.advance()
		right := p.parseComparison()
		left = &Binary{Pos: posOf(op), Left: left, Operator: op.Lexeme, Right: right}
	}
	return left
}

func (p *Parser) parseComparison() Expr {
	left := p.parseAdditive()
	for p.check(lexer.LESS) || p.check(lexer.LESS_EQUAL) ||
		p.check(lexer.GREATER) || p.check(lexer.GREATER_EQUAL) {
		op := p.advance()
		right := p.parseAdditive()
		left = &Binary{Pos: posOf(op), Left: left, Operator: op.Lexeme, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() Expr {
	left := p.parseMultiplicative()
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = &Binary{Pos: posOf(op), Left: left, Operator: op.Lexeme, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() Expr {
	left := p.parseUnary()
	for p.check(lexer.STAR) || p.check(lexer.SLASH) || p.check(lexer.PERCENT) {
		op := p.advance()
		right := p.parseUnary()
		left = &Binary{Pos: posOf(op), Left: left, Operator: op.Lexeme, Right: right}
	}
	return left
}
