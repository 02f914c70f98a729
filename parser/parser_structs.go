/*
File    : mxc/parser/parser_structs.go
Package : parser

Aggregate (class/struct) member parsing: access-mode flip on `public:` /
`private:`, `static` attaching to the next member only, and constructor /
destructor recognition by name (spec.md §3, §4.2).
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

func (p *Parser) parseClassDecl() Stmt {
	start := p.advance() // 'class'
	name := p.expect(lexer.IDENTIFIER, "as class name")
	typeParams := p.parseOptionalTypeParams()
	members := p.parseAggregateBody()
	p.match(lexer.SEMICOLON)
	return &Class{Pos: posOf(start), Name: name.Lexeme, TypeParams: typeParams, Members: members}
}

func (p *Parser) parseStructDecl() Stmt {
	start := p.advance() // 'struct'
	name := p.expect(lexer.IDENTIFIER, "as struct name")
	typeParams := p.parseOptionalTypeParams()
	members := p.parseAggregateBody()
	p.match(lexer.SEMICOLON)
	return &Struct{Pos: posOf(start), Name: name.Lexeme, TypeParams: typeParams, Members: members}
}

// parseOptionalTypeParams parses `<T1, T2, ...>` on a declaration. This
// position is unambiguous (it always follows a declaration identifier), so
// no speculative parsing is needed here, unlike call-site generics.
func (p *Parser) parseOptionalTypeParams() []TypeParam {
	var params []TypeParam
	if !p.match(lexer.LESS) {
		return params
	}
	if !p.check(lexer.GREATER) {
		name := p.expect(lexer.IDENTIFIER, "as type parameter")
		params = append(params, TypeParam{Name: name.Lexeme})
		for p.match(lexer.COMMA) {
			name := p.expect(lexer.IDENTIFIER, "as type parameter")
			params = append(params, TypeParam{Name: name.Lexeme})
		}
	}
	p.expect(lexer.GREATER, "to close type parameter list")
	return params
}

// parseAggregateBody parses the `{ member* }` body shared by class and
// struct. Access mode starts Public and is flipped by `public:`/`private:`
// labels; `static` attaches only to the member that immediately follows it.
func (p *Parser) parseAggregateBody() []*Member {
	p.expect(lexer.LEFT_BRACE, "to start aggregate body")

	var members []*Member
	access := Public

	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if p.check(lexer.PUBLIC) && p.peekNext().Type == lexer.COLON {
			p.advance()
			p.advance()
			access = Public
			continue
		}
		if p.check(lexer.PRIVATE) && p.peekNext().Type == lexer.COLON {
			p.advance()
			p.advance()
			access = Private
			continue
		}

		isStatic := p.match(lexer.STATIC)
		decl := p.parseMemberDeclaration()
		if decl == nil {
			p.synchronize()
			continue
		}
		members = append(members, &Member{Declaration: decl, Access: access, IsStatic: isStatic})
	}

	p.expect(lexer.RIGHT_BRACE, "to close aggregate body")
	return members
}

// parseMemberDeclaration parses one member: a method/constructor/
// destructor (`fn`) or a field (`let`/`mut`).
func (p *Parser) parseMemberDeclaration() Stmt {
	switch {
	case p.check(lexer.FN):
		return p.parseFunctionDecl()
	case p.check(lexer.LET), p.check(lexer.MUT):
		return p.parseVarStmt()
	default:
		p.addError("expected member declaration, got %q", p.current().Lexeme)
		return nil
	}
}
