/*
File    : mxc/parser/parser_assignments.go
Package : parser

Assignment is right-associative and the lowest precedence level. The
left-hand side must be a Variable, Get, or Subscript; a Get target is
rewritten into a Set node, consuming the Get's object sub-tree rather than
aliasing it (spec.md §9's "ownership" note).
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

var assignOps = map[lexer.TokenType]bool{
	lexer.ASSIGN:         true,
	lexer.PLUS_ASSIGN:    true,
	lexer.MINUS_ASSIGN:   true,
	lexer.STAR_ASSIGN:    true,
	lexer.SLASH_ASSIGN:   true,
	lexer.PERCENT_ASSIGN: true,
}

func (p *Parser) parseAssignment() Expr {
	left := p.parseOr()

	if assignOps[p.current().Type] {
		opTok := p.advance()
		value := p.parseAssignment()

		switch target := left.(type) {
		case *Get:
			return &Set{Pos: target.Pos, Object: target.Object, Name: target.Name, Value: value}
		case *Variable, *Subscript:
			return &Assign{Pos: posOf(opTok), Target: left, Operator: opTok.Lexeme, Value: value}
		default:
			p.addError("invalid assignment target")
			return &Assign{Pos: posOf(opTok), Target: left, Operator: opTok.Lexeme, Value: value}
		}
	}

	return left
}
