/*
File    : mxc/parser/parser_conditionals.go
Package : parser
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

// parseIfStmt parses `if (cond) then [else else]`.
func (p *Parser) parseIfStmt() Stmt {
	start := p.advance() // 'if'
	p.expect(lexer.LEFT_PAREN, "after 'if'")
	cond := p.parseExpression()
	p.expect(lexer.RIGHT_PAREN, "to close if condition")

	then := p.parseStatement()

	var elseBranch Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.parseStatement()
	}

	return &If{Pos: posOf(start), Cond: cond, Then: then, Else: elseBranch}
}
