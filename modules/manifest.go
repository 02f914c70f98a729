/*
File    : mxc/modules/manifest.go
Package : modules

A supplemental, spec-additive feature: a user module file may open with a
`#module ... #end` manifest block declaring extra required target headers
and an optional alias, without the registry having to inspect translated
output to discover them. Parsed with a struct-tag grammar, the same idiom
`vinodhalaharvi-stencil/grammar/grammar.go` and `golangee-dyml`'s parser use
for alecthomas/participle/v2.
*/
package modules

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Manifest is the parsed form of a `#module ... #end` block.
type Manifest struct {
	Requires []string `"#" "module" "requires" ":" @Header ("," @Header)*`
	Alias    string   `("alias" ":" @Ident)? "#" "end"`
}

var manifestLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Header", Pattern: `<[^>\n]+>`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[:,#]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var manifestParser = participle.MustBuild[Manifest](
	participle.Lexer(manifestLexer),
	participle.Elide("Whitespace"),
	participle.Unquote(),
)

// SplitManifest detects a leading `#module ... #end` block in source. When
// present it is parsed and stripped; the returned body is the remainder of
// the file, exactly as if the block had never been there. When absent,
// manifest is nil and body is the whole, unmodified source (spec.md §4.3's
// "additive" guarantee).
func SplitManifest(source string) (*Manifest, string) {
	trimmed := strings.TrimLeft(source, " \t\r\n")
	if !strings.HasPrefix(trimmed, "#module") {
		return nil, source
	}

	endIdx := strings.Index(trimmed, "#end")
	if endIdx == -1 {
		return nil, source
	}
	blockEnd := endIdx + len("#end")
	block := trimmed[:blockEnd]
	rest := trimmed[blockEnd:]

	manifest, err := manifestParser.ParseString("", block)
	if err != nil {
		return nil, source
	}
	return manifest, rest
}
