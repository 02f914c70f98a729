/*
File    : mxc/parser/parser_statements.go
Package : parser

Plain statement forms: expression statements, variable declarations,
blocks, return, package and import.
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

func (p *Parser) parseExprStmt() Stmt {
	start := p.current()
	expr := p.parseExpression()
	p.expect(lexer.SEMICOLON, "after expression statement")
	return &ExprStmt{Pos: posOf(start), Expr: expr}
}

// parseVarStmt parses `let name[: Type] [= init];` or the `mut` form.
func (p *Parser) parseVarStmt() Stmt {
	start := p.advance() // 'let' or 'mut'
	mutability := Let
	if start.Type == lexer.MUT {
		mutability = Mut
	}

	name := p.expect(lexer.IDENTIFIER, "as binding name")

	var declared TypeNode
	if p.match(lexer.COLON) {
		declared = p.parseType()
	}

	var init Expr
	if p.match(lexer.ASSIGN) {
		init = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON, "after variable declaration")

	return &VarStmt{
		Pos:         posOf(start),
		Name:        name.Lexeme,
		Type:        declared,
		Initializer: init,
		Mutability:  mutability,
	}
}

// parseBlock parses `{ stmt* }`.
func (p *Parser) parseBlock() Stmt {
	start := p.expect(lexer.LEFT_BRACE, "to start block")
	block := &Block{Pos: posOf(start)}
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt := p.parseDeclaration()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}
	p.expect(lexer.RIGHT_BRACE, "to close block")
	return block
}

func (p *Parser) parseReturnStmt() Stmt {
	start := p.advance() // 'return'
	var value Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.parseExpression()
	}
	p.expect(lexer.SEMICOLON, "after return statement")
	return &Return{Pos: posOf(start), Value: value}
}

func (p *Parser) parsePackageStmt() Stmt {
	start := p.advance() // 'package'
	name := p.expect(lexer.IDENTIFIER, "as package name")
	p.expect(lexer.SEMICOLON, "after package statement")
	return &Package{Pos: posOf(start), Name: name.Lexeme}
}

// parseImportStmt parses `import NAME;`, `import "path";`, either
// optionally followed by `as ALIAS` (spec.md §4.3).
func (p *Parser) parseImportStmt() Stmt {
	start := p.advance() // 'import'

	var path string
	isStdlib := false
	switch {
	case p.check(lexer.STRING):
		tok := p.advance()
		path = tok.Lexeme
	case p.check(lexer.IDENTIFIER):
		tok := p.advance()
		path = tok.Lexeme
		isStdlib = true
	default:
		p.addError("expected module name or quoted path after 'import', got %q", p.current().Lexeme)
	}

	alias := ""
	if p.match(lexer.AS) {
		aliasTok := p.expect(lexer.IDENTIFIER, "as import alias")
		alias = aliasTok.Lexeme
	}
	p.expect(lexer.SEMICOLON, "after import statement")

	return &Import{Pos: posOf(start), Path: path, Alias: alias, IsStdlib: isStdlib}
}
