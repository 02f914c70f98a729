/*
File    : mxc/parser/enum_parser.go
Package : parser

`enum Name { M1, M2 = expr, M3, ... }`. An explicit discriminant expression
per member is an enrichment beyond a bare name list, grounded on the
teacher's valued-enumerator support.
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

func (p *Parser) parseEnumDecl() Stmt {
	start := p.advance() // 'enum'
	name := p.expect(lexer.IDENTIFIER, "as enum name")
	p.expect(lexer.LEFT_BRACE, "to start enum body")

	var members []EnumMember
	if !p.check(lexer.RIGHT_BRACE) {
		members = append(members, p.parseEnumMember())
		for p.match(lexer.COMMA) {
			if p.check(lexer.RIGHT_BRACE) {
				break
			}
			members = append(members, p.parseEnumMember())
		}
	}
	p.expect(lexer.RIGHT_BRACE, "to close enum body")

	return &Enum{Pos: posOf(start), Name: name.Lexeme, Members: members}
}

func (p *Parser) parseEnumMember() EnumMember {
	name := p.expect(lexer.IDENTIFIER, "as enum member name")
	var value Expr
	if p.match(lexer.ASSIGN) {
		value = p.parseExpression()
	}
	return EnumMember{Name: name.Lexeme, Value: value}
}
