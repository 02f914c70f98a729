/*
File    : mxc/translator/types.go
Package : translator

Type-node emission, per spec.md §4.4's mapping table, plus the
parameter-type defaulting rule (§4.4, "Parameter-type defaulting").
*/
package translator

import (
	"fmt"
	"strings"

	"github.com/mxc-lang/mxc/parser"
)

var primitiveTable = map[string]string{
	"int":         "int",
	"i8":          "int8_t",
	"i16":         "int16_t",
	"i32":         "int32_t",
	"i64":         "int64_t",
	"u8":          "uint8_t",
	"u16":         "uint16_t",
	"u32":         "uint32_t",
	"u64":         "uint64_t",
	"float":       "float",
	"double":      "double",
	"long_double": "long double",
	"char":        "char",
	"bool":        "bool",
	"string":      "std::string",
	"void":        "void",
}

// byValueParamPrimitives is the exempt set from §4.4's parameter-defaulting
// rule: everything else gets wrapped as an immutable reference.
var byValueParamPrimitives = map[string]bool{
	"int": true, "float": true, "double": true, "bool": true, "char": true,
}

// emitType renders a type node in ordinary (non-parameter) position.
func (t *Translator) emitType(tn parser.TypeNode) string {
	switch n := tn.(type) {
	case *parser.PrimitiveType:
		if t.typeParams[n.Name] {
			return n.Name
		}
		if cpp, ok := primitiveTable[n.Name]; ok {
			return cpp
		}
		if _, known := t.classes[n.Name]; !known {
			t.warnUnknownType(n.Name)
		}
		return n.Name
	case *parser.ArrayType:
		return fmt.Sprintf("std::vector<%s>", t.emitType(n.Element))
	case *parser.ReferenceType:
		inner := t.emitType(n.Inner)
		switch n.Kind {
		case parser.Immutable:
			return "const " + inner + "&"
		case parser.Mutable:
			return inner + "&"
		case parser.Move:
			return inner + "&&"
		case parser.Copy:
			return inner
		}
		return inner
	case *parser.FunctionType:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = t.emitType(p)
		}
		ret := "void"
		if n.Ret != nil {
			ret = t.emitType(n.Ret)
		}
		return fmt.Sprintf("std::function<%s(%s)>", ret, strings.Join(params, ", "))
	}
	return "auto"
}

// emitParamType applies §4.4's parameter-defaulting rule: a bare
// non-reference primitive other than int/float/double/bool/char, or a bare
// user-defined (class) name, is wrapped as `const T&`. Explicit reference
// types and compound types (array, function) pass through emitType as-is.
// A bare name that is one of the enclosing declaration's own generic
// type parameters is exempt from this defaulting and passes by value
// (spec.md §8 scenario 4: `fn add<T>(a: T, b: T): T` emits `T a, T b`).
func (t *Translator) emitParamType(tn parser.TypeNode) string {
	switch n := tn.(type) {
	case *parser.ReferenceType:
		return t.emitType(n)
	case *parser.PrimitiveType:
		if t.typeParams[n.Name] || byValueParamPrimitives[n.Name] {
			return t.emitType(n)
		}
		return "const " + t.emitType(n) + "&"
	default:
		return t.emitType(tn)
	}
}

func (t *Translator) warnUnknownType(name string) {
	t.Warnings = append(t.Warnings, unknownTypeWarning(name))
}
