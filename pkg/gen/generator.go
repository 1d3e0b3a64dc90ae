package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsbridge/tsbridge/pkg/meta"
)

// maxGenericDepth bounds generic-argument nesting during discovery. Reference
// cycles are broken by early registration; a generic-argument structure that
// never bottoms out is a caller error and aborts the generation.
const maxGenericDepth = 64

// Generator walks type graphs into declaration Contexts. A Generator is
// stateless between calls; concurrent Generate calls are safe because each
// call owns its own Context.
type Generator struct {
	opts *Options
}

// New returns a Generator configured by the given options.
func New(opts ...Option) *Generator {
	o := &Options{}
	for _, fn := range opts {
		fn(o)
	}
	return NewWithOptions(o)
}

// NewWithOptions returns a Generator over an explicit Options record.
func NewWithOptions(o *Options) *Generator {
	o.Normalize()
	return &Generator{opts: o}
}

// Generate discovers every type reachable from the given roots and returns
// the populated Context. Unrepresentable types degrade to "any"; the only
// abnormal termination is unbounded generic-argument nesting, which panics.
func (g *Generator) Generate(roots ...meta.Type) *Context {
	ctx := NewContext()
	for _, r := range roots {
		g.typeExpr(ctx, r)
	}
	return ctx
}

// registerEnum returns the enum declaration for t, creating it on first
// sight. Memoized by identity; enums are terminal and never reference other
// types. Returns nil when t is suppressed by a skip pattern.
func (g *Generator) registerEnum(ctx *Context, t meta.Type) *EnumDeclaration {
	if g.skipped(t) {
		return nil
	}
	if d := ctx.EnumFor(t.Key()); d != nil {
		return d
	}
	d := &EnumDeclaration{
		Identity: t.Key(),
		Name:     g.reserveName(ctx, stripArity(t.Name())),
	}
	for _, v := range t.EnumValues() {
		d.Values = append(d.Values, EnumField{Name: v.Name, Value: strconv.FormatInt(v.Value, 10)})
	}
	ctx.addEnum(d)
	return d
}

// registerType returns the nominal declaration for t, creating it on first
// sight. A nil result means SKIP: the type is unrepresentable and every
// reference site degrades to "any".
//
// The declaration is registered into the context, and its name bound, before
// member and method discovery begins: member discovery may reference the same
// type directly or mutually, and registering first breaks the cycle. The
// declaration is filled in afterward.
func (g *Generator) registerType(ctx *Context, t meta.Type) *TypeDeclaration {
	if t == nil {
		return nil
	}
	if u := t.Nullable(); u != nil {
		t = u
	}
	switch t.Kind() {
	case meta.KindTypeParam, meta.KindPrimitive:
		return nil
	case meta.KindEnum:
		// enums are registered through the classifier, never as nominals
		return nil
	}
	// collection shapes never get declarations of their own, whether the
	// shape is direct or inherited through an implemented interface
	if _, _, ok := dictionaryShape(t); ok {
		return nil
	}
	if _, ok := sequenceShape(t); ok {
		return nil
	}
	if g.skipped(t) {
		return nil
	}

	// Constructed instances never get their own declaration: resolve each
	// argument first to discover nested nominal dependencies, then re-target
	// registration onto the open definition.
	if def := t.Definition(); def != nil && len(t.GenericArgs()) > 0 {
		ctx.genericDepth++
		if ctx.genericDepth > maxGenericDepth {
			panic(fmt.Sprintf("gen: generic argument nesting exceeds %d resolving %s", maxGenericDepth, t.Name()))
		}
		for _, a := range t.GenericArgs() {
			g.typeExpr(ctx, a)
		}
		ctx.genericDepth--
		t = def
	}

	if d := ctx.TypeFor(t.Key()); d != nil {
		return d
	}

	d := &TypeDeclaration{Identity: t.Key()}
	ctx.addType(d)
	d.Name = g.reserveName(ctx, stripArity(t.Name()))
	g.synthesizeHeader(ctx, t, d)
	g.discoverMembers(ctx, t, d)
	g.discoverMethods(ctx, t, d)
	return d
}

// synthesizeHeader assembles the declaration header. Header text is the one
// piece of pre-rendered output the walk produces, because constraint and base
// resolution is interleaved with discovery.
func (g *Generator) synthesizeHeader(ctx *Context, t meta.Type, d *TypeDeclaration) {
	asInterface := t.Kind() == meta.KindInterface ||
		(g.opts.UseInterfaceForClasses != nil && g.opts.UseInterfaceForClasses(t))

	// base-type reference, or the configured fallback when the base is excluded
	baseExpr := ""
	if b := t.Base(); b != nil {
		if bd := g.registerType(ctx, b); bd != nil {
			baseExpr = g.nominalExpr(ctx, b, bd)
		} else if g.opts.DefaultBaseType != nil {
			baseExpr = g.opts.DefaultBaseType(t)
		}
	}

	genericClause := g.genericClause(ctx, t, asInterface)

	impls := g.implementsList(ctx, t)
	if asInterface && baseExpr != "" {
		// an interface has a single inheritance clause; fold the base in
		impls = append([]string{baseExpr}, impls...)
	}

	var sb strings.Builder
	sb.WriteString("export ")
	if !asInterface && t.Abstract() {
		sb.WriteString("abstract ")
	}
	if asInterface {
		sb.WriteString("interface ")
	} else {
		sb.WriteString("class ")
	}
	sb.WriteString(d.Name)
	sb.WriteString(genericClause)
	if asInterface {
		if len(impls) > 0 {
			sb.WriteString(" extends ")
			sb.WriteString(strings.Join(impls, ", "))
		}
	} else {
		if baseExpr != "" {
			sb.WriteString(" extends ")
			sb.WriteString(baseExpr)
		}
		if len(impls) > 0 {
			sb.WriteString(" implements ")
			sb.WriteString(strings.Join(impls, ", "))
		}
	}
	d.Header = sb.String()

	if !asInterface && g.opts.CtorGenerator != nil {
		d.Constructor = g.opts.CtorGenerator(t)
	}
}

// genericClause resolves each declared type parameter and its constraints.
// Constraints whose registration is SKIP are dropped; in class-emission mode a
// default-constructible requirement becomes a structural niladic-constructor
// constraint. Multiple constraints join with intersection.
func (g *Generator) genericClause(ctx *Context, t meta.Type, asInterface bool) string {
	params := t.GenericParams()
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		var cs []string
		for _, c := range p.Constraints {
			if cd := g.registerType(ctx, c); cd != nil {
				cs = append(cs, g.nominalExpr(ctx, c, cd))
			}
		}
		if !asInterface && p.RequiresNew {
			cs = append(cs, fmt.Sprintf("{ new(): %s }", p.Name))
		}
		if len(cs) > 0 {
			parts[i] = p.Name + " extends " + strings.Join(cs, " & ")
		} else {
			parts[i] = p.Name
		}
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// implementsList computes the most-derived, non-redundant set of implemented
// interfaces: interfaces already exposed by the immediate base are covered by
// the base clause, and an interface transitively reachable from another kept
// interface is implied by it. Interfaces that fail registration are dropped.
func (g *Generator) implementsList(ctx *Context, t meta.Type) []string {
	cands := t.Interfaces()
	if len(cands) == 0 {
		return nil
	}

	covered := map[string]bool{}
	if b := t.Base(); b != nil {
		for _, i := range interfaceClosure(b) {
			covered[i.Key()] = true
		}
	}

	kept := make([]meta.Type, 0, len(cands))
	for _, c := range cands {
		if c == nil || covered[c.Key()] {
			continue
		}
		kept = append(kept, c)
	}

	implied := map[string]bool{}
	for _, c := range kept {
		for _, i := range interfaceClosure(c) {
			implied[i.Key()] = true
		}
	}

	var out []string
	for _, c := range kept {
		if implied[c.Key()] {
			continue
		}
		if cd := g.registerType(ctx, c); cd != nil {
			out = append(out, g.nominalExpr(ctx, c, cd))
		}
	}
	return out
}

// discoverMembers resolves eligible fields, then properties, each group in
// provider order. A nullable-value wrapper is unwrapped to the underlying
// type before classification.
func (g *Generator) discoverMembers(ctx *Context, t meta.Type, d *TypeDeclaration) {
	appendGroup := func(group []meta.Field) {
		for _, f := range group {
			m := MemberDeclaration{Name: g.opts.MemberRenamer(f)}
			ft := f.Type
			if ft != nil {
				if u := ft.Nullable(); u != nil {
					ft = u
					m.Nullable = true
				}
			}
			m.Type = g.typeExpr(ctx, ft)
			if g.opts.UseDecorators != nil {
				m.Decorators = g.opts.UseDecorators(f)
			}
			if g.opts.ShouldGenerateMember(f, &m) {
				d.Members = append(d.Members, m)
			}
		}
	}
	appendGroup(t.Fields())
	appendGroup(t.Properties())
}

// discoverMethods resolves method signatures in provider order, skipping
// compiler-synthesized accessors.
func (g *Generator) discoverMethods(ctx *Context, t meta.Type, d *TypeDeclaration) {
	for _, mt := range t.Methods() {
		if mt.Synthetic {
			continue
		}
		sig := mt.Name
		if len(mt.TypeParams) > 0 {
			names := make([]string, len(mt.TypeParams))
			for i, p := range mt.TypeParams {
				names[i] = p.Name
			}
			sig += "<" + strings.Join(names, ", ") + ">"
		}
		md := MethodDeclaration{Signature: sig}
		for _, p := range mt.Params {
			pm := MemberDeclaration{Name: p.Name}
			pt := p.Type
			if pt != nil {
				if u := pt.Nullable(); u != nil {
					pt = u
					pm.Nullable = true
				}
			}
			pm.Type = g.typeExpr(ctx, pt)
			md.Params = append(md.Params, pm)
		}
		if g.opts.ShouldGenerateMethod(mt, &md) {
			d.Methods = append(d.Methods, md)
		}
	}
}
