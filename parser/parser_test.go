/*
File    : mxc/parser/parser_test.go
Package : parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxc-lang/mxc/lexer"
)

func parse(t *testing.T, src string) *Program {
	t.Helper()
	lx := lexer.New(src)
	toks := lx.Tokenize()
	require.Empty(t, lx.Errors, "lexer should not report errors for %q", src)
	p := New(toks)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "parser errors for %q: %v", src, p.Errors)
	return prog
}

func TestParser_LetBinary(t *testing.T) {
	prog := parse(t, `let x = 1 + 2;`)
	require.Len(t, prog.Statements, 1)
	v := prog.Statements[0].(*VarStmt)
	assert.Equal(t, "x", v.Name)
	assert.Equal(t, Let, v.Mutability)
	bin := v.Initializer.(*Binary)
	assert.Equal(t, "+", bin.Operator)
}

func TestParser_MutReassignment(t *testing.T) {
	prog := parse(t, `mut z = 1; z = 2;`)
	require.Len(t, prog.Statements, 2)
	v := prog.Statements[0].(*VarStmt)
	assert.Equal(t, Mut, v.Mutability)
	es := prog.Statements[1].(*ExprStmt)
	assign := es.Expr.(*Assign)
	assert.Equal(t, "=", assign.Operator)
}

func TestParser_TypedLet(t *testing.T) {
	prog := parse(t, `let x: int = 10;`)
	v := prog.Statements[0].(*VarStmt)
	prim := v.Type.(*PrimitiveType)
	assert.Equal(t, "int", prim.Name)
}

func TestParser_GenericFunction(t *testing.T) {
	prog := parse(t, `fn add<T>(a: T, b: T): T { return a + b; }`)
	fn := prog.Statements[0].(*Function)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.TypeParams, 1)
	assert.Equal(t, "T", fn.TypeParams[0].Name)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Body.Stmts, 1)
	ret := fn.Body.Stmts[0].(*Return)
	assert.IsType(t, &Binary{}, ret.Value)
}

func TestParser_ClassWithPrivateField(t *testing.T) {
	prog := parse(t, `class Account { private: let balance: double = 0.0; }`)
	cls := prog.Statements[0].(*Class)
	assert.Equal(t, "Account", cls.Name)
	require.Len(t, cls.Members, 1)
	m := cls.Members[0]
	assert.Equal(t, Private, m.Access)
	field := m.Declaration.(*VarStmt)
	assert.Equal(t, "balance", field.Name)
}

func TestParser_MainWithStringArrayParam(t *testing.T) {
	prog := parse(t, `fn main(args: string[]) { return args.size(); }`)
	fn := prog.Statements[0].(*Function)
	require.Len(t, fn.Params, 1)
	arr := fn.Params[0].Type.(*ArrayType)
	prim := arr.Element.(*PrimitiveType)
	assert.Equal(t, "string", prim.Name)
}

func TestParser_SwitchFallthrough(t *testing.T) {
	prog := parse(t, `switch (x) { case 1: { fallthrough; } case 2: { break; } }`)
	sw := prog.Statements[0].(*Switch)
	require.Len(t, sw.Cases, 2)
	assert.IsType(t, &Fallthrough{}, sw.Cases[0].Body.Stmts[0])
	assert.IsType(t, &Break{}, sw.Cases[1].Body.Stmts[0])
}

func TestParser_ReferenceDefaulting(t *testing.T) {
	prog := parse(t, `fn test(a: &int) {} fn test2(a: &&int) {} fn test3(a: *int) {}`)
	fn1 := prog.Statements[0].(*Function)
	ref1 := fn1.Params[0].Type.(*ReferenceType)
	assert.Equal(t, Mutable, ref1.Kind)

	fn2 := prog.Statements[1].(*Function)
	ref2 := fn2.Params[0].Type.(*ReferenceType)
	assert.Equal(t, Move, ref2.Kind)

	fn3 := prog.Statements[2].(*Function)
	ref3 := fn3.Params[0].Type.(*ReferenceType)
	assert.Equal(t, Copy, ref3.Kind)
}

func TestParser_GenericCallVsComparison(t *testing.T) {
	prog := parse(t, `let r = f<int, string>(c);`)
	v := prog.Statements[0].(*VarStmt)
	call := v.Initializer.(*Call)
	callee := call.Callee.(*Variable)
	assert.Equal(t, "f", callee.Name)
	require.Len(t, call.TypeArgs, 2)

	prog2 := parse(t, `let r = a < b;`)
	v2 := prog2.Statements[0].(*VarStmt)
	bin := v2.Initializer.(*Binary)
	assert.Equal(t, "<", bin.Operator)
}

func TestParser_LambdaVsArrayLiteral(t *testing.T) {
	prog := parse(t, `let fn1 = [](x: int): int { return x; }; let arr = [1, 2, 3];`)
	v1 := prog.Statements[0].(*VarStmt)
	lam := v1.Initializer.(*Lambda)
	require.Len(t, lam.Params, 1)

	v2 := prog.Statements[1].(*VarStmt)
	arr := v2.Initializer.(*ArrayLiteral)
	assert.Len(t, arr.Elements, 3)
}

func TestParser_NewAndTypeCast(t *testing.T) {
	prog := parse(t, `let a = new Widget(1, 2); let b = type_cast<int>(a);`)
	v1 := prog.Statements[0].(*VarStmt)
	newExpr := v1.Initializer.(*New)
	assert.Equal(t, "Widget", newExpr.ClassName)
	require.Len(t, newExpr.Args, 2)

	v2 := prog.Statements[1].(*VarStmt)
	cast := v2.Initializer.(*TypeCast)
	prim := cast.Target.(*PrimitiveType)
	assert.Equal(t, "int", prim.Name)
}

func TestParser_ScopeAndGetAndSet(t *testing.T) {
	prog := parse(t, `Foo::bar; a.b; a.b = 1;`)
	s1 := prog.Statements[0].(*ExprStmt).Expr.(*Scope)
	assert.Equal(t, "bar", s1.Name)
	s2 := prog.Statements[1].(*ExprStmt).Expr.(*Get)
	assert.Equal(t, "b", s2.Name)
	s3 := prog.Statements[2].(*ExprStmt).Expr.(*Set)
	assert.Equal(t, "b", s3.Name)
}

func TestParser_InvalidAssignmentTargetRecordsError(t *testing.T) {
	lx := lexer.New(`1 = 2;`)
	toks := lx.Tokenize()
	p := New(toks)
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestParser_SynchronizesPastMalformedDeclaration(t *testing.T) {
	lx := lexer.New(`let = ; let y = 5;`)
	toks := lx.Tokenize()
	p := New(toks)
	prog := p.Parse()
	assert.True(t, p.HasErrors())
	var foundY bool
	for _, stmt := range prog.Statements {
		if v, ok := stmt.(*VarStmt); ok && v.Name == "y" {
			foundY = true
		}
	}
	assert.True(t, foundY, "parser should recover and still parse 'y'")
}

func TestParser_ImportWithAlias(t *testing.T) {
	prog := parse(t, `import iostream as io; import "util/strings.mx" as strs;`)
	imp1 := prog.Statements[0].(*Import)
	assert.True(t, imp1.IsStdlib)
	assert.Equal(t, "io", imp1.Alias)

	imp2 := prog.Statements[1].(*Import)
	assert.False(t, imp2.IsStdlib)
	assert.Equal(t, "strs", imp2.Alias)
}

func TestParser_EnumWithValues(t *testing.T) {
	prog := parse(t, `enum Color { Red, Green = 5, Blue }`)
	e := prog.Statements[0].(*Enum)
	require.Len(t, e.Members, 3)
	assert.Equal(t, "Red", e.Members[0].Name)
	assert.NotNil(t, e.Members[1].Value)
}

func TestParser_ForLoopAllClausesOptional(t *testing.T) {
	prog := parse(t, `for (;;) { break; }`)
	f := prog.Statements[0].(*For)
	assert.Nil(t, f.Init)
	assert.Nil(t, f.Cond)
	assert.Nil(t, f.Step)
}

func TestParser_Destructor(t *testing.T) {
	prog := parse(t, `class Widget { fn ~Widget() { } }`)
	cls := prog.Statements[0].(*Class)
	fn := cls.Members[0].Declaration.(*Function)
	assert.Equal(t, "~Widget", fn.Name)
	assert.True(t, cls.Members[0].IsDestructor())
}

func TestParser_StaticAttachesToNextMemberOnly(t *testing.T) {
	prog := parse(t, `class Counter { static let count: int = 0; let other: int = 1; }`)
	cls := prog.Statements[0].(*Class)
	require.Len(t, cls.Members, 2)
	assert.True(t, cls.Members[0].IsStatic)
	assert.False(t, cls.Members[1].IsStatic)
}
