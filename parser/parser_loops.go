/*
File    : mxc/parser/parser_loops.go
Package : parser
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

func (p *Parser) parseWhileStmt() Stmt {
	start := p.advance() // 'while'
	p.expect(lexer.LEFT_PAREN, "after 'while'")
	cond := p.parseExpression()
	p.expect(lexer.RIGHT_PAREN, "to close while condition")
	body := p.parseStatement()
	return &While{Pos: posOf(start), Cond: cond, Body: body}
}

// parseForStmt parses `for (init?; cond?; step?) body`. Any of the three
// header clauses may be omitted.
func (p *Parser) parseForStmt() Stmt {
	start := p.advance() // 'for'
	p.expect(lexer.LEFT_PAREN, "after 'for'")

	var init Stmt
	if !p.check(lexer.SEMICOLON) {
		switch {
		case p.check(lexer.LET), p.check(lexer.MUT):
			init = p.parseVarStmt()
		default:
			init = p.parseExprStmt()
		}
	} else {
		p.advance() // consume the bare ';'
	}

	var cond Expr
	if !p.check(lexer.SEMICOLON) {
		cond = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON, "after for condition")

	var step Expr
	if !p.check(lexer.RIGHT_PAREN) {
		step = p.parseExpression()
	}
	p.expect(lexer.RIGHT_PAREN, "to close for header")

	body := p.parseStatement()
	return &For{Pos: posOf(start), Init: init, Cond: cond, Step: step, Body: body}
}

// parseDoWhileStmt parses `do body while (cond);`.
func (p *Parser) parseDoWhileStmt() Stmt {
	start := p.advance() // 'do'
	body := p.parseStatement()
	p.expect(lexer.WHILE, "to close do-while body")
	p.expect(lexer.LEFT_PAREN, "after 'while'")
	cond := p.parseExpression()
	p.expect(lexer.RIGHT_PAREN, "to close do-while condition")
	p.expect(lexer.SEMICOLON, "after do-while statement")
	return &DoWhile{Pos: posOf(start), Body: body, Cond: cond}
}
