/*
File    : mxc/parser/parser_expressions.go
Package : parser

Unary prefix operators, postfix/call chains, and the speculative generics
parse that disambiguates `f<a,b>(c)` from a pair of comparisons (spec.md
§4.2, §9).
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

var unaryPrefixOps = map[lexer.TokenType]bool{
	lexer.BANG: true, lexer.MINUS: true, lexer.PLUS_PLUS: true,
	lexer.MINUS_MINUS: true, lexer.STAR: true, lexer.AMP: true, lexer.AND_AND: true,
}

func (p *Parser) parseUnary() Expr {
	if unaryPrefixOps[p.current().Type] {
		op := p.advance()
		operand := p.parseUnary()
		return &Unary{Pos: posOf(op), Operator: op.Lexeme, Operand: operand}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() Expr {
	expr := p.parsePrimary()

	for {
		switch {
		case p.check(lexer.LEFT_PAREN):
			expr = p.finishCall(expr, nil)
		case p.check(lexer.LEFT_BRACKET):
			lb := p.advance()
			index := p.parseExpression()
			p.expect(lexer.RIGHT_BRACKET, "after subscript index")
			expr = &Subscript{Pos: posOf(lb), Collection: expr, Index: index}
		case p.check(lexer.DOT):
			p.advance()
			name := p.expect(lexer.IDENTIFIER, "after '.'")
			expr = &Get{Pos: posOf(name), Object: expr, Name: name.Lexeme}
		case p.check(lexer.SCOPE):
			scopeTok := p.advance()
			name := p.expect(lexer.IDENTIFIER, "after '::'")
			expr = &Scope{Pos: posOf(scopeTok), Left: expr, Name: name.Lexeme}
		case p.check(lexer.LESS):
			if typeArgs, ok := p.trySpeculativeGenericCall(); ok {
				expr = p.finishCall(expr, typeArgs)
				continue
			}
			return expr
		case p.check(lexer.PLUS_PLUS), p.check(lexer.MINUS_MINUS):
			op := p.advance()
			expr = &Unary{Pos: posOf(op), Operator: op.Lexeme, Operand: expr}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee Expr, typeArgs []TypeNode) Expr {
	start := p.expect(lexer.LEFT_PAREN, "to start call arguments")
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		args = append(args, p.parseExpression())
		for p.match(lexer.COMMA) {
			args = append(args, p.parseExpression())
		}
	}
	p.expect(lexer.RIGHT_PAREN, "to close call arguments")
	return &Call{Pos: posOf(start), Callee: callee, Args: args, TypeArgs: typeArgs}
}

// trySpeculativeGenericCall attempts to parse `< Type (',' Type)* '>' '('`
// starting at the current `<` token. On any failure it rolls the cursor
// back and returns ok=false, leaving `<` to be reinterpreted as the
// comparison operator by the caller (spec.md §9's single non-LL(1) point).
func (p *Parser) trySpeculativeGenericCall() ([]TypeNode, bool) {
	mark := p.mark()
	savedErrs := len(p.Errors)

	p.advance() // consume '<'

	if !p.isTypeStart(0) {
		p.restore(mark)
		return nil, false
	}

	var typeArgs []TypeNode
	typeArgs = append(typeArgs, p.parseType())
	for p.check(lexer.COMMA) {
		p.advance()
		if !p.isTypeStart(0) {
			p.restore(mark)
			p.Errors = p.Errors[:savedErrs]
			return nil, false
		}
		typeArgs = append(typeArgs, p.parseType())
	}

	if !p.check(lexer.GREATER) {
		p.restore(mark)
		p.Errors = p.Errors[:savedErrs]
		return nil, false
	}
	p.advance() // consume '>'

	if !p.check(lexer.LEFT_PAREN) {
		p.restore(mark)
		p.Errors = p.Errors[:savedErrs]
		return nil, false
	}

	return typeArgs, true
}
