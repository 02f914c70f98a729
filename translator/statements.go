/*
File    : mxc/translator/statements.go
Package : translator

Statement lowering, per spec.md §4.4's "Statement lowering" table. emitStmt
is the single exhaustive type switch every statement variant dispatches
through, whether reached from the top level, a method body, or a nested
block.
*/
package translator

import (
	"fmt"
	"strings"

	"github.com/mxc-lang/mxc/diagnostics"
	"github.com/mxc-lang/mxc/parser"
)

func (t *Translator) emitStmt(s parser.Stmt, env *Scope, w *Emitter) error {
	switch n := s.(type) {
	case *parser.ExprStmt:
		expr, err := t.emitExpr(n.Expr, env)
		if err != nil {
			return err
		}
		w.writeLine(expr + ";")
		return nil

	case *parser.VarStmt:
		line, err := t.emitVarStmt(n, env)
		if err != nil {
			return err
		}
		w.writeLine(line)
		return nil

	case *parser.Block:
		return t.emitBlock(n, env, w)

	case *parser.If:
		return t.emitIf(n, env, w)

	case *parser.While:
		cond, err := t.emitExpr(n.Cond, env)
		if err != nil {
			return err
		}
		w.writeLine(fmt.Sprintf("while (%s)", cond))
		return t.emitAsBlockOrStmt(n.Body, env, w)

	case *parser.DoWhile:
		w.writeLine("do")
		if err := t.emitAsBlockOrStmt(n.Body, env, w); err != nil {
			return err
		}
		cond, err := t.emitExpr(n.Cond, env)
		if err != nil {
			return err
		}
		// rewrite the trailing brace's newline so "while (cond);" attaches
		// to the closing brace of the do-body, matching the source form.
		trimmed := strings.TrimRight(w.buf.String(), "\n")
		w.buf.Reset()
		w.buf.WriteString(trimmed)
		w.buf.WriteString(fmt.Sprintf(" while (%s);\n", cond))
		return nil

	case *parser.For:
		return t.emitFor(n, env, w)

	case *parser.Switch:
		return t.emitSwitch(n, env, w)

	case *parser.Break:
		w.writeLine("break;")
		return nil

	case *parser.Fallthrough:
		w.writeLine("[[fallthrough]];")
		return nil

	case *parser.Return:
		if n.Value == nil {
			w.writeLine("return;")
			return nil
		}
		v, err := t.emitExpr(n.Value, env)
		if err != nil {
			return err
		}
		w.writeLine(fmt.Sprintf("return %s;", v))
		return nil

	case *parser.Function:
		return t.emitFunction(n, env, w)

	case *parser.Class:
		return t.emitClass(n, env, w)

	case *parser.Struct:
		return t.emitStruct(n, env, w)

	case *parser.Enum:
		return t.emitEnum(n, w)

	case *parser.Import:
		return t.translateImport(n)

	case *parser.Package:
		if t.openNamespace != "" {
			w.indent--
			w.writeLine("}")
		}
		t.openNamespace = n.Name
		w.writeLine(fmt.Sprintf("namespace %s {", n.Name))
		w.indent++
		return nil

	default:
		return diagnostics.Unlocated(diagnostics.InternalError, "unhandled statement node %T", s)
	}
}

// emitBlock writes `{ ... }` with all inner statements in one child scope
// (a fresh Scope chained to env), matching the teacher's Scope(parent)
// nesting for every block boundary.
func (t *Translator) emitBlock(b *parser.Block, env *Scope, w *Emitter) error {
	w.writeLine("{")
	w.indent++
	inner := NewScope(env)
	for _, stmt := range b.Stmts {
		if err := t.emitStmt(stmt, inner, w); err != nil {
			return err
		}
	}
	w.indent--
	w.writeLine("}")
	return nil
}

// emitAsBlockOrStmt emits body as a brace block when it already is one,
// otherwise as a single indented statement line (e.g. `while (x) y++;`).
func (t *Translator) emitAsBlockOrStmt(body parser.Stmt, env *Scope, w *Emitter) error {
	if blk, ok := body.(*parser.Block); ok {
		return t.emitBlock(blk, env, w)
	}
	w.indent++
	err := t.emitStmt(body, env, w)
	w.indent--
	return err
}

func (t *Translator) emitIf(n *parser.If, env *Scope, w *Emitter) error {
	cond, err := t.emitExpr(n.Cond, env)
	if err != nil {
		return err
	}
	w.writeLine(fmt.Sprintf("if (%s)", cond))
	if err := t.emitAsBlockOrStmt(n.Then, env, w); err != nil {
		return err
	}
	if n.Else != nil {
		w.writeLine("else")
		if err := t.emitAsBlockOrStmt(n.Else, env, w); err != nil {
			return err
		}
	}
	return nil
}

// emitFor renders the header via a nested Emitter so the init statement's
// own trailing semicolon/newline do not leak into the `for (...)` header,
// per spec.md §4.4's explicit carve-out for this case.
func (t *Translator) emitFor(n *parser.For, env *Scope, w *Emitter) error {
	loopEnv := NewScope(env)

	initText := ""
	if n.Init != nil {
		sub := &Emitter{}
		if err := t.emitStmt(n.Init, loopEnv, sub); err != nil {
			return err
		}
		initText = strings.TrimRight(strings.TrimSpace(sub.String()), ";")
	}

	condText := ""
	if n.Cond != nil {
		c, err := t.emitExpr(n.Cond, loopEnv)
		if err != nil {
			return err
		}
		condText = c
	}

	stepText := ""
	if n.Step != nil {
		s, err := t.emitExpr(n.Step, loopEnv)
		if err != nil {
			return err
		}
		stepText = s
	}

	w.writeLine(fmt.Sprintf("for (%s; %s; %s)", initText, condText, stepText))
	return t.emitAsBlockOrStmt(n.Body, loopEnv, w)
}

func (t *Translator) emitSwitch(n *parser.Switch, env *Scope, w *Emitter) error {
	expr, err := t.emitExpr(n.Expr, env)
	if err != nil {
		return err
	}
	w.writeLine(fmt.Sprintf("switch (%s) {", expr))
	w.indent++
	for _, c := range n.Cases {
		val, err := t.emitExpr(c.Value, env)
		if err != nil {
			return err
		}
		w.writeLine(fmt.Sprintf("case %s:", val))
		caseEnv := NewScope(env)
		for _, stmt := range c.Body.Stmts {
			if err := t.emitStmt(stmt, caseEnv, w); err != nil {
				return err
			}
		}
	}
	w.indent--
	w.writeLine("}")
	return nil
}

// emitVarStmt lowers `let`/`mut` local declarations per §4.4's VarStmt
// rule, and records the new binding's mutability/type for later
// ImmutableAssign checks and reference-defaulting lookups.
func (t *Translator) emitVarStmt(v *parser.VarStmt, env *Scope) (string, error) {
	typeText, initText, err := t.varDeclPieces(v, env)
	if err != nil {
		return "", err
	}

	declaredType := v.Type
	if declaredType == nil {
		if nw, ok := v.Initializer.(*parser.New); ok {
			declaredType = &parser.PrimitiveType{Name: nw.ClassName}
		}
	}
	env.Bind(v.Name, &Binding{Mutable: v.Mutability == parser.Mut, DeclaredType: declaredType})

	return fmt.Sprintf("%s %s%s;", typeText, v.Name, initText), nil
}

// varDeclPieces computes the emitted type text (including a `const` prefix
// for `let`) and the ` = value` suffix, shared by local variables and class
// fields.
func (t *Translator) varDeclPieces(v *parser.VarStmt, env *Scope) (typeText, initText string, err error) {
	switch {
	case v.Type != nil:
		typeText = t.emitType(v.Type)
	default:
		if nw, ok := v.Initializer.(*parser.New); ok {
			typeText = fmt.Sprintf("std::unique_ptr<%s>", nw.ClassName)
		} else {
			typeText = "auto"
		}
	}
	if v.Mutability == parser.Let {
		typeText = "const " + typeText
	}
	if v.Initializer != nil {
		val, e := t.emitExpr(v.Initializer, env)
		if e != nil {
			return "", "", e
		}
		initText = " = " + val
	}
	return typeText, initText, nil
}

func (t *Translator) emitEnum(n *parser.Enum, w *Emitter) error {
	names := make([]string, len(n.Members))
	for i, m := range n.Members {
		if m.Value != nil {
			val, err := t.emitExpr(m.Value, NewScope(nil))
			if err != nil {
				return err
			}
			names[i] = fmt.Sprintf("%s = %s", m.Name, val)
		} else {
			names[i] = m.Name
		}
	}
	w.writeLine(fmt.Sprintf("enum class %s { %s };", n.Name, strings.Join(names, ", ")))
	return nil
}
