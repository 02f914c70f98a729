/*
File    : mxc/parser/switch_parser.go
Package : parser

`switch (expr) { case v: { body } ... }`. Every case body is parsed as a
Block; `fallthrough` and `break` inside it are ordinary statements handled
by parseStatement.
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

func (p *Parser) parseSwitchStmt() Stmt {
	start := p.advance() // 'switch'
	p.expect(lexer.LEFT_PAREN, "after 'switch'")
	expr := p.parseExpression()
	p.expect(lexer.RIGHT_PAREN, "to close switch expression")
	p.expect(lexer.LEFT_BRACE, "to start switch body")

	var cases []*Case
	for p.check(lexer.CASE) {
		cases = append(cases, p.parseCase())
	}
	p.expect(lexer.RIGHT_BRACE, "to close switch body")

	return &Switch{Pos: posOf(start), Expr: expr, Cases: cases}
}

// parseCase parses `case value: { stmt* }` up to the next `case` or the
// closing brace of the switch.
func (p *Parser) parseCase() *Case {
	start := p.advance() // 'case'
	value := p.parseExpression()
	p.expect(lexer.COLON, "after case value")

	if p.check(lexer.LEFT_BRACE) {
		return &Case{Pos: posOf(start), Value: value, Body: p.parseBlock().(*Block)}
	}

	body := &Block{Pos: posOf(start)}
	for !p.check(lexer.CASE) && !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt := p.parseDeclaration()
		if stmt != nil {
			body.Stmts = append(body.Stmts, stmt)
		}
	}

	return &Case{Pos: posOf(start), Value: value, Body: body}
}
