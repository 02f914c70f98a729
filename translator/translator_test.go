/*
File    : mxc/translator/translator_test.go
Package : translator

Exercises spec.md §8's concrete scenarios end-to-end through the full
lexer -> parser -> translator pipeline, grounded on parser_test.go's
"build a helper that runs the earlier stages and asserts no errors" idiom.
*/
package translator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxc-lang/mxc/diagnostics"
	"github.com/mxc-lang/mxc/lexer"
	"github.com/mxc-lang/mxc/modules"
	"github.com/mxc-lang/mxc/parser"
)

// normalize strips all whitespace, matching spec.md §8's "normalized by
// removing all whitespace" comparison rule for the concrete scenarios.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func mustTranslate(t *testing.T, src string) string {
	t.Helper()
	lx := lexer.New(src)
	toks := lx.Tokenize()
	require.Empty(t, lx.Errors, "lexer errors for %q: %v", src, lx.Errors)

	p := parser.New(toks)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "parser errors for %q: %v", src, p.Errors)

	out, _, err := Translate(prog, nil)
	require.NoError(t, err)
	return out
}

func translateErr(t *testing.T, src string) error {
	t.Helper()
	lx := lexer.New(src)
	toks := lx.Tokenize()
	require.Empty(t, lx.Errors)

	p := parser.New(toks)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "parser errors for %q: %v", src, p.Errors)

	_, _, err := Translate(prog, nil)
	require.Error(t, err)
	return err
}

func TestTranslate_LetBinary(t *testing.T) {
	out := mustTranslate(t, `let x = 1 + 2;`)
	assert.Contains(t, normalize(out), normalize("const auto x = (1 + 2);"))
}

func TestTranslate_MutReassignment(t *testing.T) {
	out := mustTranslate(t, `mut z = 1; z = 2;`)
	n := normalize(out)
	assert.Contains(t, n, normalize("auto z = 1;"))
	assert.Contains(t, n, normalize("z = 2;"))
	assert.NotContains(t, n, normalize("const auto z"))
}

func TestTranslate_TypedLet(t *testing.T) {
	out := mustTranslate(t, `let x: int = 10;`)
	assert.Contains(t, normalize(out), normalize("const int x = 10;"))
}

func TestTranslate_GenericFunction(t *testing.T) {
	out := mustTranslate(t, `fn add<T>(a: T, b: T): T { return a + b; }`)
	assert.Contains(t, normalize(out), normalize("template<typename T> T add(T a, T b) { return (a + b); }"))
}

func TestTranslate_PrivateFieldDefault(t *testing.T) {
	out := mustTranslate(t, `class Account { private: let balance: double = 0.0; }`)
	n := normalize(out)
	assert.Contains(t, n, normalize("class Account {"))
	assert.Contains(t, n, normalize("private:"))
	assert.Contains(t, n, normalize("const double balance = 0.0;"))
}

func TestTranslate_MainStringArrayParam(t *testing.T) {
	out := mustTranslate(t, `fn main(args: string[]) { return args.size(); }`)
	n := normalize(out)
	assert.Contains(t, n, normalize("int main(int argc, char* argv[]) {"))
	assert.Contains(t, n, normalize("std::vector<std::string> args(argv, argv + argc);"))
	assert.Contains(t, n, normalize("return args.size();"))
}

func TestTranslate_AssignToLetFieldFails(t *testing.T) {
	err := translateErr(t, `class Account { public: let x: int = 1; fn f() { this.x = 2; } }`)
	de, ok := err.(*diagnostics.Error)
	require.True(t, ok)
	assert.Equal(t, diagnostics.ImmutableAssign, de.Kind)
}

func TestTranslate_AssignToLetBindingFails(t *testing.T) {
	err := translateErr(t, `let x = 1; x = 2;`)
	de, ok := err.(*diagnostics.Error)
	require.True(t, ok)
	assert.Equal(t, diagnostics.ImmutableAssign, de.Kind)
}

func TestTranslate_PrivateMemberOutsideOwnerFails(t *testing.T) {
	err := translateErr(t, `
class Account { private: let balance: double = 0.0; }
fn main() { let a = new Account(); return a.balance; }
`)
	de, ok := err.(*diagnostics.Error)
	require.True(t, ok)
	assert.Equal(t, diagnostics.AccessViolation, de.Kind)
}

func TestTranslate_SwitchFallthrough(t *testing.T) {
	out := mustTranslate(t, `
fn f(x: int) {
    switch (x) {
        case 1: { fallthrough; }
        case 2: { break; }
    }
}
`)
	n := normalize(out)
	assert.Contains(t, n, normalize("[[fallthrough]];"))
	assert.Contains(t, n, normalize("case 2:"))
}

func TestTranslate_ImportDedup(t *testing.T) {
	src := `import iostream; import iostream;`
	lx := lexer.New(src)
	p := parser.New(lx.Tokenize())
	prog := p.Parse()
	require.Empty(t, lx.Errors)
	require.False(t, p.HasErrors(), "parser errors for %q: %v", src, p.Errors)

	out, _, err := Translate(prog, modules.NewRegistry(nil, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "#include <iostream>"))
}

func TestTranslate_ReferenceDefaulting(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`fn test(a: string) {}`, `auto test(const std::string& a) {}`},
		{`fn test(a: &int) {}`, `auto test(int& a) {}`},
		{`fn test(a: &&int) {}`, `auto test(int&& a) {}`},
		{`fn test(a: *int) {}`, `auto test(int a) {}`},
	}
	for _, c := range cases {
		out := mustTranslate(t, c.src)
		assert.Contains(t, normalize(out), normalize(c.want), "input: %s", c.src)
	}
}

func TestTranslate_NewBindingType(t *testing.T) {
	out := mustTranslate(t, `class Box {} fn main() { let b = new Box(); }`)
	n := normalize(out)
	assert.Contains(t, n, normalize("const std::unique_ptr<Box> b = std::make_unique<Box>();"))
}

func TestTranslate_LegacyScriptMode(t *testing.T) {
	out := mustTranslate(t, `let x = 1; let y = 2;`)
	n := normalize(out)
	assert.Contains(t, n, normalize("int main(int argc, char* argv[]) {"))
	assert.Contains(t, n, normalize("return 0;"))
}

func TestTranslate_EnumEmission(t *testing.T) {
	out := mustTranslate(t, `enum Color { Red, Green, Blue }`)
	assert.Contains(t, normalize(out), normalize("enum class Color { Red, Green, Blue };"))
}

func TestTranslate_WhitespaceInsensitiveIdempotence(t *testing.T) {
	src := `let x: int = 1; fn f(a: int): int { return a + x; }`
	first := mustTranslate(t, src)
	second := mustTranslate(t, src)
	assert.Equal(t, normalize(first), normalize(second))
}
