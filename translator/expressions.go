/*
File    : mxc/translator/expressions.go
Package : translator

Expression lowering, per spec.md §4.4's "Expression lowering" table.
emitExpr is the exhaustive type switch every expression variant goes
through; it always returns inline text since expressions never span
emitted statement boundaries.
*/
package translator

import (
	"fmt"
	"strings"

	"github.com/mxc-lang/mxc/diagnostics"
	"github.com/mxc-lang/mxc/parser"
)

func (t *Translator) emitExpr(e parser.Expr, env *Scope) (string, error) {
	switch n := e.(type) {
	case *parser.Literal:
		return t.emitLiteral(n), nil

	case *parser.Variable:
		return n.Name, nil

	case *parser.Grouping:
		inner, err := t.emitExpr(n.Inner, env)
		if err != nil {
			return "", err
		}
		return "(" + inner + ")", nil

	case *parser.Unary:
		return t.emitUnary(n, env)

	case *parser.Binary:
		left, err := t.emitExpr(n.Left, env)
		if err != nil {
			return "", err
		}
		right, err := t.emitExpr(n.Right, env)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s %s)", left, n.Operator, right), nil

	case *parser.Logical:
		left, err := t.emitExpr(n.Left, env)
		if err != nil {
			return "", err
		}
		right, err := t.emitExpr(n.Right, env)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s %s)", left, n.Operator, right), nil

	case *parser.Assign:
		return t.emitAssign(n, env)

	case *parser.Call:
		return t.emitCall(n, env)

	case *parser.Subscript:
		coll, err := t.emitExpr(n.Collection, env)
		if err != nil {
			return "", err
		}
		idx, err := t.emitExpr(n.Index, env)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s[%s]", coll, idx), nil

	case *parser.Scope:
		left, err := t.emitExpr(n.Left, env)
		if err != nil {
			return "", err
		}
		if cls, ok := t.resolveObjectClass(n.Left, env); ok {
			if err := t.checkAccess(cls, n.Name, env); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("%s::%s", left, n.Name), nil

	case *parser.Get:
		return t.emitGet(n, env)

	case *parser.Set:
		return t.emitSet(n, env)

	case *parser.This:
		return "this", nil

	case *parser.ArrayLiteral:
		return t.emitArrayLiteral(n, env)

	case *parser.Lambda:
		return t.emitLambda(n, env)

	case *parser.TypeCast:
		inner, err := t.emitExpr(n.Inner, env)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("static_cast<%s>(%s)", t.emitType(n.Target), inner), nil

	case *parser.New:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			v, err := t.emitExpr(a, env)
			if err != nil {
				return "", err
			}
			args[i] = v
		}
		return fmt.Sprintf("std::make_unique<%s>(%s)", n.ClassName, strings.Join(args, ", ")), nil

	default:
		return "", diagnostics.Unlocated(diagnostics.InternalError, "unhandled expression node %T", e)
	}
}

func (t *Translator) emitLiteral(l *parser.Literal) string {
	switch l.Kind {
	case parser.LitInt, parser.LitFloat:
		return l.Raw
	case parser.LitString:
		return "\"" + escapeForTarget(l.Raw) + "\""
	case parser.LitChar:
		return "'" + escapeForTarget(l.Raw) + "'"
	case parser.LitBool:
		if l.Bool {
			return "true"
		}
		return "false"
	case parser.LitNull:
		return "nullptr"
	}
	return ""
}

// escapeForTarget re-escapes the decoded bytes the lexer stored on a string
// or char literal (lexer/lexer_utils.go's readString/readChar expand `\n`
// etc. into the literal control byte) back into C++ source form, so the
// emitted text round-trips as valid target source per spec.md §8's
// round-trip well-formedness law rather than embedding a raw control byte
// inside a quoted literal.
func escapeForTarget(raw string) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; c {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\f':
			sb.WriteString(`\f`)
		case '\v':
			sb.WriteString(`\v`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\'':
			sb.WriteString(`\'`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// emitUnary recognizes the two pseudo-operator rewrites of §4.4: `*a` on a
// user-class binding becomes `a.clone()`, `&&a` becomes `a.move()`. Any
// other operand, or any operand whose declared type is not a known class,
// falls back to plain C-style prefix emission.
func (t *Translator) emitUnary(u *parser.Unary, env *Scope) (string, error) {
	if u.Operator == "*" || u.Operator == "&&" {
		if v, ok := u.Operand.(*parser.Variable); ok {
			if b, found := env.Lookup(v.Name); found && b.DeclaredType != nil && t.isUserClassType(b.DeclaredType) {
				if u.Operator == "*" {
					return v.Name + ".clone()", nil
				}
				return v.Name + ".move()", nil
			}
		}
	}
	inner, err := t.emitExpr(u.Operand, env)
	if err != nil {
		return "", err
	}
	return u.Operator + inner, nil
}

func (t *Translator) emitAssign(a *parser.Assign, env *Scope) (string, error) {
	if v, ok := a.Target.(*parser.Variable); ok {
		if b, found := env.Lookup(v.Name); found && !b.Mutable {
			return "", diagnostics.Unlocated(diagnostics.ImmutableAssign, "cannot assign to immutable binding %q", v.Name)
		}
	}
	lhs, err := t.emitExpr(a.Target, env)
	if err != nil {
		return "", err
	}
	rhs, err := t.emitExpr(a.Value, env)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s", lhs, a.Operator, rhs), nil
}

func (t *Translator) emitCall(c *parser.Call, env *Scope) (string, error) {
	callee, err := t.emitExpr(c.Callee, env)
	if err != nil {
		return "", err
	}
	if len(c.TypeArgs) > 0 {
		parts := make([]string, len(c.TypeArgs))
		for i, ta := range c.TypeArgs {
			parts[i] = t.emitType(ta)
		}
		callee += "<" + strings.Join(parts, ", ") + ">"
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		v, err := t.emitExpr(a, env)
		if err != nil {
			return "", err
		}
		args[i] = v
	}
	return fmt.Sprintf("%s(%s)", callee, strings.Join(args, ", ")), nil
}

func (t *Translator) emitGet(g *parser.Get, env *Scope) (string, error) {
	obj, err := t.emitExpr(g.Object, env)
	if err != nil {
		return "", err
	}
	if cls, ok := t.resolveObjectClass(g.Object, env); ok {
		if err := t.checkAccess(cls, g.Name, env); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%s.%s", obj, g.Name), nil
}

func (t *Translator) emitSet(s *parser.Set, env *Scope) (string, error) {
	obj, err := t.emitExpr(s.Object, env)
	if err != nil {
		return "", err
	}
	if cls, ok := t.resolveObjectClass(s.Object, env); ok {
		if err := t.checkAccess(cls, s.Name, env); err != nil {
			return "", err
		}
		if err := t.checkFieldMutability(cls, s.Name); err != nil {
			return "", err
		}
	}
	val, err := t.emitExpr(s.Value, env)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.%s = %s", obj, s.Name, val), nil
}

func (t *Translator) emitArrayLiteral(a *parser.ArrayLiteral, env *Scope) (string, error) {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		v, err := t.emitExpr(el, env)
		if err != nil {
			return "", err
		}
		parts[i] = v
	}
	elemType := t.inferArrayElementType(a.Elements, env)
	return fmt.Sprintf("std::vector<%s>({%s})", elemType, strings.Join(parts, ", ")), nil
}

// inferArrayElementType implements Open Question #3: infer from the first
// element's static type when known, else fall back to `auto`.
func (t *Translator) inferArrayElementType(elems []parser.Expr, env *Scope) string {
	if len(elems) == 0 {
		return "auto"
	}
	switch first := elems[0].(type) {
	case *parser.Literal:
		switch first.Kind {
		case parser.LitInt:
			return "int"
		case parser.LitFloat:
			return "double"
		case parser.LitString:
			return "std::string"
		case parser.LitChar:
			return "char"
		case parser.LitBool:
			return "bool"
		}
	case *parser.Variable:
		if b, ok := env.Lookup(first.Name); ok && b.DeclaredType != nil {
			return t.emitType(b.DeclaredType)
		}
	}
	return "auto"
}

func (t *Translator) emitLambda(l *parser.Lambda, env *Scope) (string, error) {
	inner := NewScope(env)
	params := make([]string, len(l.Params))
	for i, p := range l.Params {
		params[i] = fmt.Sprintf("%s %s", t.emitParamType(p.Type), p.Name)
		inner.Bind(p.Name, &Binding{Mutable: true, DeclaredType: p.Type})
	}
	header := fmt.Sprintf("[](%s)", strings.Join(params, ", "))
	if l.Ret != nil {
		header += " -> " + t.emitType(l.Ret)
	}

	nested := &Emitter{}
	if err := t.emitBlock(l.Body, inner, nested); err != nil {
		return "", err
	}
	body := strings.TrimSpace(nested.String())
	body = strings.Join(strings.Fields(body), " ")
	return header + " " + body, nil
}
