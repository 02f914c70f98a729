/*
File    : mxc/modules/registry.go
Package : modules

Bundled-module lookup and user-module deferral, grounded on the teacher's
std.Builtins []*Builtin registration-table idiom (a flat table built at
package init, looked up by name) and on file/file.go's direct os usage for
the external file-reading collaborator shape.
*/
package modules

import (
	"fmt"

	"github.com/mxc-lang/mxc/diagnostics"
)

// Bundled is one standard-library namespace baked into the translator
// binary: opaque target-language text plus the host headers it needs.
type Bundled struct {
	Name    string
	Text    string
	Headers []string
}

// bundled is the fixed mapping built at package init, extensible by
// appending to it the way the teacher's std package appends to Builtins in
// per-file init() functions.
var bundled = map[string]*Bundled{}

func register(b *Bundled) {
	bundled[b.Name] = b
}

// FileReader is the one external collaborator this package depends on: the
// translator core never touches the filesystem directly (spec.md §1).
type FileReader interface {
	ReadModule(path string) (string, error)
}

// TranslateFunc compiles already-read user-module source into target
// headers and body text. The modules package cannot import the translator
// package directly (translator already imports modules for bundled
// lookups), so this indirection is supplied by whoever constructs a
// Registry — normally the CLI pipeline (cmd/mxc's newRegistry).
type TranslateFunc func(source string) (headers []string, body string, err error)

// Resolved is one import's contribution to the final prelude.
type Resolved struct {
	Namespace string
	Text      string
	Headers   []string
}

// Registry resolves Import statements in first-encounter order, per
// spec.md §4.3 and §5's "modules are resolved and prepended in
// first-encounter order; subsequent duplicate imports are no-ops".
type Registry struct {
	reader    FileReader
	translate TranslateFunc
	seen      map[string]bool
	manifests map[string]*Manifest
}

// NewRegistry builds a Registry. reader is used only for `import "path";`
// forms; translate is used only when such a path also needs its own
// content compiled.
func NewRegistry(reader FileReader, translate TranslateFunc) *Registry {
	return &Registry{
		reader:    reader,
		translate: translate,
		seen:      make(map[string]bool),
		manifests: make(map[string]*Manifest),
	}
}

// ResolveStdlib looks up a bundled module by name. It returns
// (nil, nil) on a duplicate (already-resolved) import, per the
// idempotent-imports law (spec.md §8).
func (r *Registry) ResolveStdlib(name string) (*Resolved, error) {
	key := "stdlib:" + name
	if r.seen[key] {
		return nil, nil
	}

	mod, ok := bundled[name]
	if !ok {
		return nil, diagnostics.Unlocated(diagnostics.UnknownStdlibModule, "unknown stdlib module %q", name)
	}

	r.seen[key] = true
	return &Resolved{Namespace: name, Text: mod.Text, Headers: mod.Headers}, nil
}

// ResolvePath loads and compiles a user module file through the injected
// FileReader and TranslateFunc, honoring an optional leading manifest
// comment block (manifest.go).
func (r *Registry) ResolvePath(path string) (*Resolved, error) {
	key := "path:" + path
	if r.seen[key] {
		return nil, nil
	}

	if r.reader == nil {
		return nil, diagnostics.Unlocated(diagnostics.ModuleLoadError, "no file reader configured to load %q", path)
	}

	source, err := r.reader.ReadModule(path)
	if err != nil {
		return nil, diagnostics.Unlocated(diagnostics.ModuleLoadError, "cannot load module %q: %v", path, err)
	}

	manifest, body := SplitManifest(source)
	var extraHeaders []string
	if manifest != nil {
		extraHeaders = manifest.Requires
		r.manifests[path] = manifest
	}

	if r.translate == nil {
		return nil, diagnostics.Unlocated(diagnostics.InternalError, "no translate function configured for module %q", path)
	}
	headers, text, err := r.translate(body)
	if err != nil {
		return nil, diagnostics.Unlocated(diagnostics.ModuleLoadError, "cannot translate module %q: %v", path, err)
	}

	r.seen[key] = true
	return &Resolved{
		Namespace: path,
		Text:      text,
		Headers:   append(append([]string{}, headers...), extraHeaders...),
	}, nil
}

// RegisteredNames lists every bundled module name, for diagnostics and
// help text.
func RegisteredNames() []string {
	names := make([]string, 0, len(bundled))
	for name := range bundled {
		names = append(names, name)
	}
	return names
}

func init() {
	register(&Bundled{
		Name:    "iostream",
		Headers: []string{"<iostream>"},
		Text:    "",
	})
	register(&Bundled{
		Name:    "string",
		Headers: []string{"<string>"},
		Text:    "",
	})
	register(&Bundled{
		Name:    "math",
		Headers: []string{"<cmath>"},
		Text:    "",
	})
	register(&Bundled{
		Name: "console",
		Headers: []string{"<iostream>"},
		Text: fmt.Sprintf("namespace console {\n  inline void log(const std::string& msg) { std::cout << msg << std::endl; }\n}\n"),
	})
}
