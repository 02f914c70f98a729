/*
File    : mxc/parser/parser_functions.go
Package : parser

`fn name<T1,...>(params): ret? { body }`. A destructor spells its name
`~ClassName`; the lexer tokenizes `~` and the identifier separately, so the
parser stitches them back into one logical name here.
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

func (p *Parser) parseFunctionDecl() Stmt {
	start := p.advance() // 'fn'
	name := p.parseFunctionName()

	typeParams := p.parseOptionalTypeParams()

	p.expect(lexer.LEFT_PAREN, "to start function parameters")
	var params []Param
	if !p.check(lexer.RIGHT_PAREN) {
		params = append(params, p.parseParam())
		for p.match(lexer.COMMA) {
			params = append(params, p.parseParam())
		}
	}
	p.expect(lexer.RIGHT_PAREN, "to close function parameters")

	var ret TypeNode
	if p.match(lexer.COLON) {
		ret = p.parseType()
	}

	body := p.parseBlock().(*Block)

	return &Function{
		Pos:        posOf(start),
		Name:       name,
		TypeParams: typeParams,
		Params:     params,
		Ret:        ret,
		Body:       body,
	}
}

// parseFunctionName reads a plain identifier, or a destructor name formed
// from `~` followed by an identifier.
func (p *Parser) parseFunctionName() string {
	if p.match(lexer.TILDE) {
		name := p.expect(lexer.IDENTIFIER, "after '~' in destructor name")
		return "~" + name.Lexeme
	}
	name := p.expect(lexer.IDENTIFIER, "as function name")
	return name.Lexeme
}
