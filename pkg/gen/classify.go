package gen

import (
	"fmt"
	"path"
	"strings"

	"github.com/tsbridge/tsbridge/pkg/meta"
)

// typeExpr resolves t to its target-type expression, registering any nominal
// declarations it encounters along the way. Rules are tried in fixed priority
// order; the ordering is load-bearing: map abstractions are often also
// element-enumerable, and both collection shapes must win over the nominal
// fallback so built-in collections never get declarations of their own.
func (g *Generator) typeExpr(ctx *Context, t meta.Type) string {
	if t == nil {
		return "any"
	}
	if u := t.Nullable(); u != nil {
		t = u
	}

	// 1. generic parameter: its own name, verbatim
	if t.Kind() == meta.KindTypeParam {
		return t.Name()
	}

	// 2. enum
	if t.Kind() == meta.KindEnum {
		if d := g.registerEnum(ctx, t); d != nil {
			return d.Name
		}
		return "any"
	}

	// 3. primitive
	if t.Kind() == meta.KindPrimitive {
		return g.primitiveExpr(t)
	}

	// 4. dictionary-like
	if k, v, ok := dictionaryShape(t); ok {
		return fmt.Sprintf("{ [key: %s]: %s }", g.typeExpr(ctx, k), g.typeExpr(ctx, v))
	}

	// 5. sequence-like
	if elem, ok := sequenceShape(t); ok {
		if elem == nil {
			return "Array<any>"
		}
		return "Array<" + g.typeExpr(ctx, elem) + ">"
	}

	// 6. nominal fallback
	d := g.registerType(ctx, t)
	if d == nil {
		return "any"
	}
	return g.nominalExpr(ctx, t, d)
}

// primitiveExpr maps a primitive classification to its fixed target name.
func (g *Generator) primitiveExpr(t meta.Type) string {
	switch t.Primitive() {
	case meta.PrimitiveBool:
		return "boolean"
	case meta.PrimitiveInteger, meta.PrimitiveFloat:
		return "number"
	case meta.PrimitiveString, meta.PrimitiveUUID:
		return "string"
	case meta.PrimitiveTime:
		if g.opts.UseDateForDateTime {
			return "Date"
		}
		return "string"
	default:
		return "any"
	}
}

// nominalExpr builds the reference expression for a registered declaration,
// parameterized with resolved generic arguments when t is a constructed
// instance.
func (g *Generator) nominalExpr(ctx *Context, t meta.Type, d *TypeDeclaration) string {
	args := t.GenericArgs()
	if len(args) == 0 {
		return d.Name
	}
	exprs := make([]string, len(args))
	for i, a := range args {
		exprs[i] = g.typeExpr(ctx, a)
	}
	return d.Name + "<" + strings.Join(exprs, ", ") + ">"
}

// dictionaryShape reports whether t, or any interface it directly or
// indirectly implements, is the key/value map abstraction.
func dictionaryShape(t meta.Type) (key, value meta.Type, ok bool) {
	if k, v, ok := t.MapTypes(); ok {
		return k, v, true
	}
	for _, i := range interfaceClosure(t) {
		if k, v, ok := i.MapTypes(); ok {
			return k, v, true
		}
	}
	return nil, nil, false
}

// sequenceShape reports whether t is, or implements, the single-parameter
// element abstraction. A nil element means the untyped variant.
func sequenceShape(t meta.Type) (elem meta.Type, ok bool) {
	if e, ok := t.SliceType(); ok {
		return e, true
	}
	for _, i := range interfaceClosure(t) {
		if e, ok := i.SliceType(); ok {
			return e, true
		}
	}
	return nil, false
}

// interfaceClosure collects every interface transitively reachable from t
// through its interface list and base chain, excluding t itself. Reference
// cycles are tolerated.
func interfaceClosure(t meta.Type) []meta.Type {
	var out []meta.Type
	seen := map[string]bool{t.Key(): true}
	var walk func(meta.Type)
	walk = func(cur meta.Type) {
		for _, i := range cur.Interfaces() {
			if i == nil || seen[i.Key()] {
				continue
			}
			seen[i.Key()] = true
			out = append(out, i)
			walk(i)
		}
		if b := cur.Base(); b != nil && !seen[b.Key()] {
			seen[b.Key()] = true
			walk(b)
		}
	}
	walk(t)
	return out
}

// skipped reports whether t's display form matches a configured skip pattern.
// A malformed pattern degrades to literal comparison.
func (g *Generator) skipped(t meta.Type) bool {
	if len(g.opts.SkipTypePatterns) == 0 {
		return false
	}
	raw := t.Name()
	display := stripArity(raw)
	for _, pat := range g.opts.SkipTypePatterns {
		for _, name := range []string{display, raw} {
			matched, err := path.Match(pat, name)
			if err != nil {
				matched = pat == name
			}
			if matched {
				return true
			}
		}
	}
	return false
}
