/*
File    : mxc/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input  string
	Expect []Token
}

func collectTypes(toks []Token) []TokenType {
	types := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		if tok.Type == EOF {
			continue
		}
		types = append(types, tok.Type)
	}
	return types
}

func expectTypes(expect []Token) []TokenType {
	types := make([]TokenType, 0, len(expect))
	for _, tok := range expect {
		types = append(types, tok.Type)
	}
	return types
}

func TestLexer_Punctuation(t *testing.T) {
	cases := []tokenCase{
		{
			Input: ` 123 + 2   31 - 12 `,
			Expect: []Token{
				NewToken(INTEGER, "123"),
				NewToken(PLUS, "+"),
				NewToken(INTEGER, "2"),
				NewToken(INTEGER, "31"),
				NewToken(MINUS, "-"),
				NewToken(INTEGER, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			Expect: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER, "abc"),
				NewToken(MINUS, "-"),
				NewToken(IDENTIFIER, "a12"),
			},
		},
		{
			Input: ` << >> ~ | & ^ `,
			Expect: []Token{
				NewToken(SHIFT_LEFT, "<<"),
				NewToken(SHIFT_RIGHT, ">>"),
				NewToken(TILDE, "~"),
				NewToken(PIPE, "|"),
				NewToken(AMP, "&"),
				NewToken(CARET, "^"),
			},
		},
		{
			Input: ` :: -> ++ -- += -= *= /= %= `,
			Expect: []Token{
				NewToken(SCOPE, "::"),
				NewToken(ARROW, "->"),
				NewToken(PLUS_PLUS, "++"),
				NewToken(MINUS_MINUS, "--"),
				NewToken(PLUS_ASSIGN, "+="),
				NewToken(MINUS_ASSIGN, "-="),
				NewToken(STAR_ASSIGN, "*="),
				NewToken(SLASH_ASSIGN, "/="),
				NewToken(PERCENT_ASSIGN, "%="),
			},
		},
	}

	for _, c := range cases {
		lex := New(c.Input)
		toks := lex.Tokenize()
		assert.Empty(t, lex.Errors)
		assert.Equal(t, expectTypes(c.Expect), collectTypes(toks))
	}
}

func TestLexer_Keywords(t *testing.T) {
	lex := New(`let mut fn class struct public private static if else switch case break fallthrough while for do return true false this enum import as package new type_cast`)
	toks := lex.Tokenize()
	want := []TokenType{
		LET, MUT, FN, CLASS, STRUCT, PUBLIC, PRIVATE, STATIC, IF, ELSE, SWITCH,
		CASE, BREAK, FALLTHROUGH, WHILE, FOR, DO, RETURN, TRUE, FALSE, THIS,
		ENUM, IMPORT, AS, PACKAGE, NEW, TYPE_CAST,
	}
	assert.Equal(t, want, collectTypes(toks))
}

func TestLexer_StringLiteral(t *testing.T) {
	lex := New(`"hello\nworld" ident "escaped \"quote\""`)
	toks := lex.Tokenize()
	assert.Empty(t, lex.Errors)
	assert.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "hello\nworld", toks[0].LiteralValue)
	assert.Equal(t, IDENTIFIER, toks[1].Type)
	assert.Equal(t, STRING, toks[2].Type)
	assert.Equal(t, `escaped "quote"`, toks[2].LiteralValue)
}

func TestLexer_UnterminatedStringRecordsErrorAndContinues(t *testing.T) {
	lex := New("\"unterminated")
	toks := lex.Tokenize()
	assert.NotEmpty(t, lex.Errors)
	assert.Equal(t, EOF, toks[len(toks)-1].Type)
}

func TestLexer_CharLiteral(t *testing.T) {
	lex := New(`'a' '\n' '\''`)
	toks := lex.Tokenize()
	assert.Empty(t, lex.Errors)
	assert.Equal(t, CHAR, toks[0].Type)
	assert.Equal(t, byte('a'), toks[0].LiteralValue)
	assert.Equal(t, CHAR, toks[1].Type)
	assert.Equal(t, byte('\n'), toks[1].LiteralValue)
	assert.Equal(t, CHAR, toks[2].Type)
	assert.Equal(t, byte('\''), toks[2].LiteralValue)
}

func TestLexer_CharLiteralErrors(t *testing.T) {
	for _, src := range []string{"''", "'ab'", "'a"} {
		lex := New(src)
		lex.Tokenize()
		assert.NotEmptyf(t, lex.Errors, "expected lex error for %q", src)
	}
}

func TestLexer_NumberLiterals(t *testing.T) {
	lex := New(`0 42 3.14 0.5 10.`)
	toks := lex.Tokenize()
	assert.Equal(t, INTEGER, toks[0].Type)
	assert.Equal(t, INTEGER, toks[1].Type)
	assert.Equal(t, FLOAT, toks[2].Type)
	assert.Equal(t, "3.14", toks[2].LiteralValue)
	assert.Equal(t, FLOAT, toks[3].Type)
	// a trailing dot with no following digit is not part of the float
	assert.Equal(t, INTEGER, toks[4].Type)
	assert.Equal(t, "10", toks[4].Lexeme)
	assert.Equal(t, DOT, toks[5].Type)
}

func TestLexer_CommentsAreSkipped(t *testing.T) {
	lex := New("let x = 1; // a comment\n/* block\ncomment */let y = 2;")
	toks := lex.Tokenize()
	assert.Empty(t, lex.Errors)
	assert.Equal(t, []TokenType{LET, IDENTIFIER, ASSIGN, INTEGER, SEMICOLON, LET, IDENTIFIER, ASSIGN, INTEGER, SEMICOLON}, collectTypes(toks))
}

func TestLexer_TracksLineAndColumn(t *testing.T) {
	lex := New("let\nx")
	first := lex.NextToken()
	assert.Equal(t, 1, first.Line)
	second := lex.NextToken()
	assert.Equal(t, 2, second.Line)
}

func TestLexer_InvalidCharacterRecordsError(t *testing.T) {
	lex := New("let x = 1 @ 2;")
	lex.Tokenize()
	assert.NotEmpty(t, lex.Errors)
}
