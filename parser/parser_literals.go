/*
File    : mxc/parser/parser_literals.go
Package : parser

Primary expressions: literals, `this`, identifiers, groupings, array
literals, lambdas, `type_cast<T>(e)` and `new ClassName(args)`.
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

func (p *Parser) parsePrimary() Expr {
	tok := p.current()

	switch tok.Type {
	case lexer.INTEGER:
		p.advance()
		return &Literal{Pos: posOf(tok), Kind: LitInt, Raw: tok.Lexeme}
	case lexer.FLOAT:
		p.advance()
		return &Literal{Pos: posOf(tok), Kind: LitFloat, Raw: tok.Lexeme}
	case lexer.STRING:
		p.advance()
		return &Literal{Pos: posOf(tok), Kind: LitString, Raw: tok.Lexeme}
	case lexer.CHAR:
		p.advance()
		return &Literal{Pos: posOf(tok), Kind: LitChar, Raw: tok.Lexeme}
	case lexer.TRUE:
		p.advance()
		return &Literal{Pos: posOf(tok), Kind: LitBool, Bool: true}
	case lexer.FALSE:
		p.advance()
		return &Literal{Pos: posOf(tok), Kind: LitBool, Bool: false}
	case lexer.THIS:
		p.advance()
		return &This{Pos: posOf(tok)}
	case lexer.IDENTIFIER:
		p.advance()
		return &Variable{Pos: posOf(tok), Name: tok.Lexeme}
	case lexer.LEFT_PAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(lexer.RIGHT_PAREN, "to close grouping")
		return &Grouping{Pos: posOf(tok), Inner: inner}
	case lexer.LEFT_BRACKET:
		if p.isLambdaStart() {
			return p.parseLambda()
		}
		return p.parseArrayLiteral()
	case lexer.TYPE_CAST:
		return p.parseTypeCast()
	case lexer.NEW:
		return p.parseNewExpr()
	default:
		p.addError("unexpected token %q in expression", tok.Lexeme)
		p.advance()
		return &Literal{Pos: posOf(tok), Kind: LitNull}
	}
}

// isLambdaStart recognizes the lambda prefix `[`, `]`, `(` three tokens
// ahead of the cursor; anything else beginning with `[` is an array
// literal (spec.md §4.2).
func (p *Parser) isLambdaStart() bool {
	return p.current().Type == lexer.LEFT_BRACKET &&
		p.peekNext().Type == lexer.RIGHT_BRACKET &&
		p.peekAt(2).Type == lexer.LEFT_PAREN
}

func (p *Parser) parseArrayLiteral() Expr {
	start := p.advance() // '['
	var elems []Expr
	if !p.check(lexer.RIGHT_BRACKET) {
		elems = append(elems, p.parseExpression())
		for p.match(lexer.COMMA) {
			elems = append(elems, p.parseExpression())
		}
	}
	p.expect(lexer.RIGHT_BRACKET, "to close array literal")
	return &ArrayLiteral{Pos: posOf(start), Elements: elems}
}

// parseLambda parses `[](params) [: ret] { body }`.
func (p *Parser) parseLambda() Expr {
	start := p.advance() // '['
	p.expect(lexer.RIGHT_BRACKET, "to close lambda capture list")
	p.expect(lexer.LEFT_PAREN, "to start lambda parameters")

	var params []Param
	if !p.check(lexer.RIGHT_PAREN) {
		params = append(params, p.parseParam())
		for p.match(lexer.COMMA) {
			params = append(params, p.parseParam())
		}
	}
	p.expect(lexer.RIGHT_PAREN, "to close lambda parameters")

	var ret TypeNode
	if p.match(lexer.COLON) {
		ret = p.parseType()
	}

	body := p.parseBlock().(*Block)
	return &Lambda{Pos: posOf(start), Params: params, Ret: ret, Body: body}
}

func (p *Parser) parseTypeCast() Expr {
	start := p.advance() // 'type_cast'
	p.expect(lexer.LESS, "to start type_cast type argument")
	target := p.parseType()
	p.expect(lexer.GREATER, "to close type_cast type argument")
	p.expect(lexer.LEFT_PAREN, "to start type_cast argument")
	inner := p.parseExpression()
	p.expect(lexer.RIGHT_PAREN, "to close type_cast argument")
	return &TypeCast{Pos: posOf(start), Target: target, Inner: inner}
}

func (p *Parser) parseNewExpr() Expr {
	start := p.advance() // 'new'
	name := p.expect(lexer.IDENTIFIER, "after 'new'")
	p.expect(lexer.LEFT_PAREN, "to start constructor arguments")
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		args = append(args, p.parseExpression())
		for p.match(lexer.COMMA) {
			args = append(args, p.parseExpression())
		}
	}
	p.expect(lexer.RIGHT_PAREN, "to close constructor arguments")
	return &New{Pos: posOf(start), ClassName: name.Lexeme, Args: args}
}

// parseParam parses a single `name: Type` parameter declaration, shared by
// function declarations and lambdas.
func (p *Parser) parseParam() Param {
	name := p.expect(lexer.IDENTIFIER, "as parameter name")
	p.expect(lexer.COLON, "after parameter name")
	t := p.parseType()
	return Param{Name: name.Lexeme, Type: t}
}
