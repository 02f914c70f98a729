/*
File    : mxc/parser/parser_controls.go
Package : parser
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

func (p *Parser) parseBreakStmt() Stmt {
	start := p.advance() // 'break'
	p.expect(lexer.SEMICOLON, "after 'break'")
	return &Break{Pos: posOf(start)}
}

// parseFallthroughStmt parses `fallthrough;`. The parser does not check
// that it appears inside a Switch case body, since it has no scope-stack
// concept of "inside a case"; the translator does not check this either and
// emits `[[fallthrough]];` wherever the statement appears.
func (p *Parser) parseFallthroughStmt() Stmt {
	start := p.advance() // 'fallthrough'
	p.expect(lexer.SEMICOLON, "after 'fallthrough'")
	return &Fallthrough{Pos: posOf(start)}
}
