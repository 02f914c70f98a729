/*
File    : mxc/translator/environment.go
Package : translator

The environment is a scope chain exactly in the shape of scope/scope.go's
Variables/Consts/LetVars/Parent linked list, generalized per spec.md §4.4:
a Binding replaces the flat "is a let var" bool with {Mutable, DeclaredType},
and each Scope additionally tracks the class currently being translated
(ClassOwner) so method bodies can resolve `this` accesses.
*/
package translator

import "github.com/mxc-lang/mxc/parser"

// Binding records what the translator knows about one local name: whether
// reassignment is legal and, when known, its declared type (used for
// reference-defaulting lookups and clone()/move() rewrites).
type Binding struct {
	Mutable      bool
	DeclaredType parser.TypeNode
}

// MemberInfo is the per-member entry in a class's side table: access mode,
// static-ness, and the same Mutable/DeclaredType pair a local Binding
// carries, so §4.6's two state machines share one shape for locals and
// fields alike.
type MemberInfo struct {
	Mutable      bool
	DeclaredType parser.TypeNode
	Access       parser.Access
	IsStatic     bool
	IsMethod     bool
}

// ClassInfo is the complete, pre-collected member table for one class or
// struct declaration. It exists before any use site is visited (spec.md
// §4.4's "the translator sees all declarations before emitting").
type ClassInfo struct {
	Name       string
	IsStruct   bool
	TypeParams []parser.TypeParam
	Members    map[string]*MemberInfo
}

// Scope is one lexical scope boundary, chained to its Parent exactly like
// scope.Scope. ClassOwner is non-empty only while translating the body of a
// method belonging to that class.
type Scope struct {
	Vars       map[string]*Binding
	ClassOwner string
	Parent     *Scope
}

// NewScope creates a child scope, inheriting ClassOwner from its parent so
// nested blocks inside a method still know they are inside that method.
func NewScope(parent *Scope) *Scope {
	s := &Scope{Vars: make(map[string]*Binding), Parent: parent}
	if parent != nil {
		s.ClassOwner = parent.ClassOwner
	}
	return s
}

// Bind introduces a new binding in the current scope only.
func (s *Scope) Bind(name string, b *Binding) {
	s.Vars[name] = b
}

// Lookup walks the scope chain outward, matching scope.Scope.LookUp's
// recursive shadowing behavior.
func (s *Scope) Lookup(name string) (*Binding, bool) {
	if b, ok := s.Vars[name]; ok {
		return b, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, false
}

// classNameOf reports the class name a type node statically denotes, seeing
// through reference wrappers, or false when the type is not a plain name.
func classNameOf(tn parser.TypeNode) (string, bool) {
	switch n := tn.(type) {
	case *parser.PrimitiveType:
		return n.Name, true
	case *parser.ReferenceType:
		return classNameOf(n.Inner)
	}
	return "", false
}
