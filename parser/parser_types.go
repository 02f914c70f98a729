/*
File    : mxc/parser/parser_types.go
Package : parser

Parses the recursive type-node grammar of spec.md §3/§4.2: a bare
identifier, an array suffix `T[]`, and the three reference sigils
`&T`/`&&T`/`*T`.
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

// parseType parses a single TypeNode. The array suffix binds tighter than
// a reference sigil: `&T[]` is a Reference wrapping an Array.
func (p *Parser) parseType() TypeNode {
	var kind RefKind
	hasRef := true
	switch {
	case p.check(lexer.AND_AND):
		p.advance()
		kind = Move
	case p.check(lexer.AMP):
		p.advance()
		kind = Mutable
	case p.check(lexer.STAR):
		p.advance()
		kind = Copy
	default:
		hasRef = false
	}

	base := p.parseBaseType()

	if hasRef {
		return &ReferenceType{Inner: base, Kind: kind}
	}
	return base
}

// parseBaseType parses a primitive/user-defined name followed by any
// number of `[]` array suffixes.
func (p *Parser) parseBaseType() TypeNode {
	if !p.check(lexer.IDENTIFIER) {
		// Some primitive names coincide with keywords in other languages
		// but in this grammar every primitive is a plain identifier
		// (int, float, string, bool, ...), so an identifier is always
		// expected here.
		p.addError("expected type name, got %q", p.current().Lexeme)
		return &PrimitiveType{Name: "auto"}
	}
	name := p.advance().Lexeme

	var t TypeNode = &PrimitiveType{Name: name}
	for p.check(lexer.LEFT_BRACKET) && p.peekNext().Type == lexer.RIGHT_BRACKET {
		p.advance() // [
		p.advance() // ]
		t = &ArrayType{Element: t}
	}
	return t
}

// isTypeStart reports whether the token at offset n from the cursor could
// begin a TypeNode; used by speculative generics parsing.
func (p *Parser) isTypeStart(n int) bool {
	tok := p.peekAt(n)
	switch tok.Type {
	case lexer.IDENTIFIER, lexer.AMP, lexer.AND_AND, lexer.STAR:
		return true
	default:
		return false
	}
}
