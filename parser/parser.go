/*
File    : mxc/parser/parser.go
Package : parser

Parser is a recursive-descent engine with a Pratt-style binary ladder. It
consumes the full token slice produced by the lexer and produces a Program
(an ordered list of top-level Stmt), synchronizing past malformed
declarations rather than aborting.
*/
package parser

import "github.com/mxc-lang/mxc/lexer"

// Parser holds the token cursor and the accumulated error list.
type Parser struct {
	tokens []lexer.Token
	pos    int

	Errors []*ParseError
}

// New builds a Parser over a complete token slice (including the
// terminating EOF token).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// HasErrors reports whether any ParseError was recorded.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// Parse consumes the whole token stream and returns the resulting Program.
// Parsing never aborts early: malformed declarations are skipped via
// synchronize and recorded in p.Errors.
func (p *Parser) Parse() *Program {
	prog := &Program{}
	for !p.isAtEnd() {
		stmt := p.parseDeclaration()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

// parseDeclaration implements the top-level/block declaration dispatch of
// spec.md §4.2: package/import/class/struct/enum/fn/let/mut, else a plain
// statement.
func (p *Parser) parseDeclaration() Stmt {
	defer func() {
		if r := recover(); r != nil {
			p.synchronize()
		}
	}()

	startErrCount := len(p.Errors)

	var stmt Stmt
	switch {
	case p.check(lexer.PACKAGE):
		stmt = p.parsePackageStmt()
	case p.check(lexer.IMPORT):
		stmt = p.parseImportStmt()
	case p.check(lexer.CLASS):
		stmt = p.parseClassDecl()
	case p.check(lexer.STRUCT):
		stmt = p.parseStructDecl()
	case p.check(lexer.ENUM):
		stmt = p.parseEnumDecl()
	case p.check(lexer.FN):
		stmt = p.parseFunctionDecl()
	case p.check(lexer.LET), p.check(lexer.MUT):
		stmt = p.parseVarStmt()
	default:
		stmt = p.parseStatement()
	}

	if len(p.Errors) > startErrCount {
		// The malformed declaration has consumed at least one token. When
		// the cursor already sits just past a ';' or on a synchronizing
		// keyword, parsing resumes right there; otherwise skip ahead.
		switch p.current().Type {
		case lexer.CLASS, lexer.STRUCT, lexer.FN, lexer.LET, lexer.MUT,
			lexer.FOR, lexer.IF, lexer.WHILE, lexer.RETURN, lexer.SWITCH:
		default:
			if p.pos == 0 || p.tokens[p.pos-1].Type != lexer.SEMICOLON {
				p.synchronize()
			}
		}
		return nil
	}
	return stmt
}

// parseStatement dispatches ordinary (non-declaration) statements.
func (p *Parser) parseStatement() Stmt {
	switch {
	case p.check(lexer.LEFT_BRACE):
		return p.parseBlock()
	case p.check(lexer.IF):
		return p.parseIfStmt()
	case p.check(lexer.WHILE):
		return p.parseWhileStmt()
	case p.check(lexer.FOR):
		return p.parseForStmt()
	case p.check(lexer.DO):
		return p.parseDoWhileStmt()
	case p.check(lexer.SWITCH):
		return p.parseSwitchStmt()
	case p.check(lexer.BREAK):
		return p.parseBreakStmt()
	case p.check(lexer.FALLTHROUGH):
		return p.parseFallthroughStmt()
	case p.check(lexer.RETURN):
		return p.parseReturnStmt()
	case p.check(lexer.LET), p.check(lexer.MUT):
		return p.parseVarStmt()
	default:
		return p.parseExprStmt()
	}
}
