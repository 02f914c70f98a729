/*
File    : mxc/translator/translator.go
Package : translator

The translator is a single-pass walk over a *parser.Program that threads an
Environment (environment.go) and accumulates headers, a prelude, and a body
into a bytes.Buffer-based Emitter, grounded on the teacher's
PrintingVisitor.Buf/indent() idiom in main.go. Unlike the teacher's
dynamic-dispatch NodeVisitor, every traversal here is an exhaustive Go type
switch over the closed parser.Expr/parser.Stmt families (spec.md §9).
*/
package translator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mxc-lang/mxc/diagnostics"
	"github.com/mxc-lang/mxc/modules"
	"github.com/mxc-lang/mxc/parser"
)

// Emitter is a growing, indentation-tracking text buffer. Indentation is not
// semantically meaningful (spec.md §4.5) but is kept for readability, the
// same way the teacher's PrintingVisitor does.
type Emitter struct {
	buf    bytes.Buffer
	indent int
}

func (e *Emitter) writeLine(s string) {
	e.buf.WriteString(strings.Repeat("    ", e.indent))
	e.buf.WriteString(s)
	e.buf.WriteString("\n")
}

func (e *Emitter) String() string { return e.buf.String() }

// Translator holds the accumulated output and the class side-table built
// before any statement is emitted.
type Translator struct {
	registry *modules.Registry

	headerOrder []string
	headerSeen  map[string]bool

	preludeParts []string

	body *Emitter

	classes map[string]*ClassInfo

	// typeParams is the set of generic type-parameter names currently in
	// scope (the enclosing class's plus the enclosing function/method's
	// own), consulted by emitType/emitParamType so a bare `T` passes
	// through by name instead of being looked up as a primitive or user
	// class, per spec.md §8 scenario 4.
	typeParams map[string]bool

	openNamespace string

	Warnings []*diagnostics.Error
}

// enterTypeParams merges tps into the currently active type-parameter set
// and returns a restore func putting the previous set back, so nested
// scopes (a generic method inside a generic class) layer correctly.
func (t *Translator) enterTypeParams(tps []parser.TypeParam) (restore func()) {
	if len(tps) == 0 {
		return func() {}
	}
	prev := t.typeParams
	merged := make(map[string]bool, len(prev)+len(tps))
	for name := range prev {
		merged[name] = true
	}
	for _, tp := range tps {
		merged[tp.Name] = true
	}
	t.typeParams = merged
	return func() { t.typeParams = prev }
}

// New builds a Translator against the given module registry. The registry
// may be nil for inputs that perform no imports.
func New(registry *modules.Registry) *Translator {
	t := &Translator{
		registry:   registry,
		headerSeen: make(map[string]bool),
		body:       &Emitter{},
		classes:    make(map[string]*ClassInfo),
	}
	t.addHeader("<string>")
	t.addHeader("<vector>")
	return t
}

func (t *Translator) addHeader(h string) {
	if t.headerSeen[h] {
		return
	}
	t.headerSeen[h] = true
	t.headerOrder = append(t.headerOrder, h)
}

func (t *Translator) addHeaders(hs []string) {
	for _, h := range hs {
		t.addHeader(h)
	}
}

func (t *Translator) addPrelude(text string) {
	if text == "" {
		return
	}
	t.preludeParts = append(t.preludeParts, text)
}

// Translate runs the full pipeline over an already-parsed, error-free
// program and returns the assembled target-language source. Translator
// errors are fatal: the first one encountered stops the walk (spec.md §7).
func Translate(prog *parser.Program, registry *modules.Registry) (string, []*diagnostics.Error, error) {
	t := New(registry)
	if err := t.collectClasses(prog.Statements); err != nil {
		return "", t.Warnings, err
	}

	global := NewScope(nil)
	explicitMain := hasExplicitMain(prog.Statements)
	var loose []parser.Stmt

	for _, stmt := range prog.Statements {
		if fn, ok := stmt.(*parser.Function); ok && fn.Name == "main" {
			if err := t.emitMainFunction(fn, global, t.body); err != nil {
				return "", t.Warnings, err
			}
			continue
		}
		if !explicitMain && !isTopLevelDeclaration(stmt) {
			loose = append(loose, stmt)
			continue
		}
		if err := t.emitStmt(stmt, global, t.body); err != nil {
			return "", t.Warnings, err
		}
	}

	if !explicitMain {
		if err := t.emitSyntheticMain(loose, global); err != nil {
			return "", t.Warnings, err
		}
	}

	if t.openNamespace != "" {
		t.body.indent--
		t.body.writeLine("}")
		t.openNamespace = ""
	}

	return t.assemble(), t.Warnings, nil
}

func (t *Translator) assemble() string {
	var out bytes.Buffer
	for _, h := range t.headerOrder {
		out.WriteString(fmt.Sprintf("#include %s\n", h))
	}
	for _, p := range t.preludeParts {
		out.WriteString(p)
	}
	out.WriteString(t.body.String())
	return out.String()
}

// collectClasses pre-scans every top-level Class/Struct so member lookups
// (access, mutability, reference-defaulting against user types) are
// complete before any use site is visited, per spec.md §4.4.
func (t *Translator) collectClasses(stmts []parser.Stmt) error {
	for _, s := range stmts {
		switch n := s.(type) {
		case *parser.Class:
			t.classes[n.Name] = buildClassInfo(n.Name, false, n.TypeParams, n.Members)
		case *parser.Struct:
			t.classes[n.Name] = buildClassInfo(n.Name, true, n.TypeParams, n.Members)
		}
	}
	return nil
}

func buildClassInfo(name string, isStruct bool, typeParams []parser.TypeParam, members []*parser.Member) *ClassInfo {
	ci := &ClassInfo{Name: name, IsStruct: isStruct, TypeParams: typeParams, Members: make(map[string]*MemberInfo)}
	for _, m := range members {
		switch decl := m.Declaration.(type) {
		case *parser.VarStmt:
			ci.Members[decl.Name] = &MemberInfo{
				Mutable:      decl.Mutability == parser.Mut,
				DeclaredType: decl.Type,
				Access:       m.Access,
				IsStatic:     m.IsStatic,
			}
		case *parser.Function:
			ci.Members[decl.Name] = &MemberInfo{
				Mutable:  true,
				Access:   m.Access,
				IsStatic: m.IsStatic,
				IsMethod: true,
			}
		}
	}
	return ci
}

func (t *Translator) memberInfo(className, memberName string) (*MemberInfo, bool) {
	ci, ok := t.classes[className]
	if !ok {
		return nil, false
	}
	mi, ok := ci.Members[memberName]
	return mi, ok
}

func (t *Translator) resolveObjectClass(e parser.Expr, env *Scope) (string, bool) {
	switch n := e.(type) {
	case *parser.This:
		if env.ClassOwner != "" {
			return env.ClassOwner, true
		}
	case *parser.Variable:
		if b, ok := env.Lookup(n.Name); ok && b.DeclaredType != nil {
			if cls, ok2 := classNameOf(b.DeclaredType); ok2 {
				if _, known := t.classes[cls]; known {
					return cls, true
				}
			}
		}
		if _, ok := t.classes[n.Name]; ok {
			return n.Name, true
		}
	}
	return "", false
}

func (t *Translator) checkAccess(className, memberName string, env *Scope) error {
	info, ok := t.memberInfo(className, memberName)
	if !ok {
		return nil
	}
	if info.Access == parser.Private && env.ClassOwner != className {
		return diagnostics.Unlocated(diagnostics.AccessViolation,
			"cannot access private member %q of %q outside its class", memberName, className)
	}
	return nil
}

func (t *Translator) checkFieldMutability(className, memberName string) error {
	info, ok := t.memberInfo(className, memberName)
	if !ok || info.IsMethod {
		return nil
	}
	if !info.Mutable {
		return diagnostics.Unlocated(diagnostics.ImmutableAssign,
			"cannot assign to immutable field %q of %q", memberName, className)
	}
	return nil
}

func (t *Translator) isUserClassType(tn parser.TypeNode) bool {
	switch n := tn.(type) {
	case *parser.PrimitiveType:
		_, ok := t.classes[n.Name]
		return ok
	case *parser.ReferenceType:
		return t.isUserClassType(n.Inner)
	}
	return false
}

func unknownTypeWarning(name string) *diagnostics.Error {
	return diagnostics.Unlocated(diagnostics.UnknownType, "reference to undeclared type %q", name)
}

// translateImport resolves one Import statement against the registry and
// folds its headers/text into the prelude. A nil Resolved means a duplicate
// (already-resolved) import: a silent no-op, per spec.md §5's idempotent-
// imports guarantee.
func (t *Translator) translateImport(imp *parser.Import) error {
	if t.registry == nil {
		return diagnostics.Unlocated(diagnostics.ModuleLoadError, "no module registry configured")
	}

	if imp.IsStdlib {
		res, err := t.registry.ResolveStdlib(imp.Path)
		if err != nil {
			return err
		}
		if res == nil {
			return nil
		}
		t.addHeaders(res.Headers)
		t.addPrelude(res.Text)
		return nil
	}

	res, err := t.registry.ResolvePath(imp.Path)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}
	t.addHeaders(res.Headers)
	alias := imp.Alias
	if alias == "" {
		alias = res.Namespace
	}
	if res.Text != "" {
		t.addPrelude(fmt.Sprintf("namespace %s {\n%s}\n", alias, res.Text))
	}
	return nil
}
