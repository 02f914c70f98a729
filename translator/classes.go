/*
File    : mxc/translator/classes.go
Package : translator

Class/Struct/Function declaration emission, per spec.md §4.4's "Class /
Struct" and "Function" statement-lowering rules.
*/
package translator

import (
	"fmt"
	"strings"

	"github.com/mxc-lang/mxc/parser"
)

func (t *Translator) emitFunction(fn *parser.Function, env *Scope, w *Emitter) error {
	restore := t.enterTypeParams(fn.TypeParams)
	defer restore()

	methodEnv := NewScope(env)

	paramsText, err := t.emitParams(fn.Params, methodEnv)
	if err != nil {
		return err
	}

	ret := "auto"
	if fn.Ret != nil {
		ret = t.emitType(fn.Ret)
	}

	if len(fn.TypeParams) > 0 {
		w.writeLine(templateHeader(fn.TypeParams))
	}
	w.writeLine(fmt.Sprintf("%s %s(%s)", ret, fn.Name, paramsText))
	return t.emitBlock(fn.Body, methodEnv, w)
}

// emitParams renders a parameter list using parameter-type defaulting and
// binds each parameter into env so the body can resolve their types (for
// reference-defaulting lookups and clone()/move() rewrites).
func (t *Translator) emitParams(params []parser.Param, env *Scope) (string, error) {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s %s", t.emitParamType(p.Type), p.Name)
		env.Bind(p.Name, &Binding{Mutable: true, DeclaredType: p.Type})
	}
	return strings.Join(parts, ", "), nil
}

func templateHeader(typeParams []parser.TypeParam) string {
	names := make([]string, len(typeParams))
	for i, tp := range typeParams {
		names[i] = "typename " + tp.Name
	}
	return fmt.Sprintf("template<%s>", strings.Join(names, ", "))
}

func (t *Translator) emitClass(n *parser.Class, env *Scope, w *Emitter) error {
	return t.emitAggregate(n.Name, n.TypeParams, n.Members, "class", env, w)
}

func (t *Translator) emitStruct(n *parser.Struct, env *Scope, w *Emitter) error {
	return t.emitAggregate(n.Name, n.TypeParams, n.Members, "struct", env, w)
}

func (t *Translator) emitAggregate(name string, typeParams []parser.TypeParam, members []*parser.Member, keyword string, env *Scope, w *Emitter) error {
	restore := t.enterTypeParams(typeParams)
	defer restore()

	if len(typeParams) > 0 {
		w.writeLine(templateHeader(typeParams))
	}
	w.writeLine(fmt.Sprintf("%s %s {", keyword, name))
	w.indent++

	currentAccess := parser.Public
	labelEmitted := false
	for _, m := range members {
		if !labelEmitted || m.Access != currentAccess {
			currentAccess = m.Access
			w.writeLine(accessLabel(currentAccess) + ":")
			labelEmitted = true
		}
		if err := t.emitMember(name, m, env, w); err != nil {
			return err
		}
	}

	w.indent--
	w.writeLine("};")
	return nil
}

func accessLabel(a parser.Access) string {
	if a == parser.Private {
		return "private"
	}
	return "public"
}

func (t *Translator) emitMember(className string, m *parser.Member, env *Scope, w *Emitter) error {
	switch decl := m.Declaration.(type) {
	case *parser.VarStmt:
		line, err := t.emitMemberVar(decl, m, env)
		if err != nil {
			return err
		}
		w.writeLine(line)
		return nil
	case *parser.Function:
		return t.emitMemberFunc(decl, m, className, env, w)
	}
	return nil
}

// emitMemberVar implements §4.4's "plain variable with a compile-time
// literal initializer" and "static immutable literal" special cases on top
// of the ordinary VarStmt type/const rules.
func (t *Translator) emitMemberVar(v *parser.VarStmt, m *parser.Member, env *Scope) (string, error) {
	typeText, initText, err := t.varDeclPieces(v, env)
	if err != nil {
		return "", err
	}

	isLiteralInit := isCompileTimeLiteral(v.Initializer)
	if m.IsStatic && v.Mutability == parser.Let && isLiteralInit {
		bare := strings.TrimPrefix(typeText, "const ")
		return fmt.Sprintf("inline static const %s %s%s;", bare, v.Name, initText), nil
	}

	prefix := ""
	if m.IsStatic {
		prefix = "static "
	}
	return fmt.Sprintf("%s%s %s%s;", prefix, typeText, v.Name, initText), nil
}

func isCompileTimeLiteral(e parser.Expr) bool {
	_, ok := e.(*parser.Literal)
	return ok
}

// emitMemberFunc renders a method, constructor, or destructor. Constructors
// (name equals className) and destructors (name begins with `~`) have no
// return type per spec.md §3.
func (t *Translator) emitMemberFunc(fn *parser.Function, m *parser.Member, className string, env *Scope, w *Emitter) error {
	restore := t.enterTypeParams(fn.TypeParams)
	defer restore()

	methodEnv := NewScope(env)
	methodEnv.ClassOwner = className

	paramsText, err := t.emitParams(fn.Params, methodEnv)
	if err != nil {
		return err
	}

	isCtor := fn.Name == className
	isDtor := len(fn.Name) > 0 && fn.Name[0] == '~'

	if len(fn.TypeParams) > 0 {
		w.writeLine(templateHeader(fn.TypeParams))
	}

	if isCtor || isDtor {
		w.writeLine(fmt.Sprintf("%s(%s)", fn.Name, paramsText))
	} else {
		ret := "auto"
		if fn.Ret != nil {
			ret = t.emitType(fn.Ret)
		}
		prefix := ""
		if m.IsStatic {
			prefix = "static "
		}
		w.writeLine(fmt.Sprintf("%s%s %s(%s)", prefix, ret, fn.Name, paramsText))
	}

	return t.emitBlock(fn.Body, methodEnv, w)
}
