package gopkg

import (
	"fmt"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/tsbridge/tsbridge/pkg/meta"
)

// Provider adapts loaded Go packages to the meta.Type model. Descriptors are
// memoized by fully qualified type string so identity survives repeated
// lookups.
type Provider struct {
	pkgs   []*packages.Package
	module string
	cache  map[string]meta.Type
	enums  map[*types.TypeName][]meta.EnumValue
}

// Module returns the module path of the loaded tree, or "" when none was found.
func (p *Provider) Module() string { return p.module }

// Roots returns descriptors for the requested type names. With no names, it
// returns every exported class, interface, or enum declared in the loaded
// module, in deterministic (package path, name) order.
func (p *Provider) Roots(names []string) []meta.Type {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			want[n] = true
		}
	}

	var out []meta.Type
	seen := make(map[string]bool)
	for _, pkg := range p.pkgs {
		if pkg.Types == nil {
			continue
		}
		if p.module != "" && !strings.HasPrefix(pkg.PkgPath, p.module) {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !obj.Exported() || obj.IsAlias() {
				continue
			}
			if len(want) > 0 && !want[name] {
				continue
			}
			named, ok := obj.Type().(*types.Named)
			if !ok {
				continue
			}
			d := p.namedOf(named)
			switch d.Kind() {
			case meta.KindClass, meta.KindInterface, meta.KindEnum:
				if !seen[d.Key()] {
					seen[d.Key()] = true
					out = append(out, d)
				}
			}
		}
	}
	return out
}

// typeOf maps an arbitrary types.Type to its descriptor.
func (p *Provider) typeOf(t types.Type) meta.Type {
	t = types.Unalias(t)
	switch tt := t.(type) {
	case *types.Basic:
		return basicOf(tt)
	case *types.Pointer:
		return meta.NullableOf(p.typeOf(tt.Elem()))
	case *types.Slice:
		return meta.SliceOf(p.typeOf(tt.Elem()))
	case *types.Array:
		return meta.SliceOf(p.typeOf(tt.Elem()))
	case *types.Map:
		return meta.MapOf(p.typeOf(tt.Key()), p.typeOf(tt.Elem()))
	case *types.TypeParam:
		return meta.ParamOf(tt.Obj().Name())
	case *types.Named:
		return p.namedOf(tt)
	default:
		// anonymous structs/interfaces, funcs, channels
		return meta.AnyType
	}
}

func basicOf(b *types.Basic) meta.Type {
	info := b.Info()
	switch {
	case info&types.IsBoolean != 0:
		return meta.BoolType
	case info&types.IsInteger != 0:
		return meta.IntType
	case info&types.IsFloat != 0:
		return meta.FloatType
	case info&types.IsString != 0:
		return meta.StringType
	default:
		return meta.AnyType
	}
}

// namedOf maps a named type to its descriptor. time.Time and uuid.UUID are
// surfaced as primitives; a named basic type with an associated const group
// is an enum, otherwise it collapses to its underlying primitive.
func (p *Provider) namedOf(n *types.Named) meta.Type {
	obj := n.Obj()
	if pkg := obj.Pkg(); pkg != nil {
		switch {
		case pkg.Path() == "time" && obj.Name() == "Time":
			return meta.TimeType
		case pkg.Path() == "github.com/google/uuid" && obj.Name() == "UUID":
			return meta.UUIDType
		}
	}

	key := types.TypeString(n, nil)
	if d, ok := p.cache[key]; ok {
		return d
	}

	gt := &goType{p: p, named: n, key: key}
	p.cache[key] = gt // registered before classification: types may self-reference

	switch u := n.Underlying().(type) {
	case *types.Struct:
		gt.kind = meta.KindClass
	case *types.Interface:
		gt.kind = meta.KindInterface
	case *types.Basic:
		if _, ok := p.enums[n.Origin().Obj()]; ok {
			gt.kind = meta.KindEnum
		} else {
			prim := basicOf(u)
			p.cache[key] = prim
			return prim
		}
	default:
		// named collection or pointer alias: shape is answered through
		// SliceType/MapTypes, so the nominal kind never matters
		gt.kind = meta.KindClass
	}
	return gt
}

// goType is the descriptor over one named Go type.
type goType struct {
	meta.Stub
	p     *Provider
	named *types.Named
	key   string
	kind  meta.Kind
}

func (t *goType) Key() string     { return t.key }
func (t *goType) Name() string    { return t.named.Obj().Name() }
func (t *goType) Kind() meta.Kind { return t.kind }

func (t *goType) Base() meta.Type {
	base, _ := t.embedded()
	return base
}

func (t *goType) Interfaces() []meta.Type {
	_, ifaces := t.embedded()
	return ifaces
}

// embedded maps Go embedding onto the nominal hierarchy: the first embedded
// named struct is the base type; remaining embedded structs and every
// embedded named interface are implemented interfaces.
func (t *goType) embedded() (meta.Type, []meta.Type) {
	switch u := t.named.Underlying().(type) {
	case *types.Struct:
		var base meta.Type
		var ifaces []meta.Type
		for i := 0; i < u.NumFields(); i++ {
			f := u.Field(i)
			if !f.Embedded() {
				continue
			}
			ft := types.Unalias(f.Type())
			if ptr, ok := ft.(*types.Pointer); ok {
				ft = types.Unalias(ptr.Elem())
			}
			named, ok := ft.(*types.Named)
			if !ok {
				continue
			}
			switch named.Underlying().(type) {
			case *types.Struct:
				if base == nil {
					base = t.p.namedOf(named)
				} else {
					ifaces = append(ifaces, t.p.namedOf(named))
				}
			case *types.Interface:
				ifaces = append(ifaces, t.p.namedOf(named))
			}
		}
		return base, ifaces
	case *types.Interface:
		var ifaces []meta.Type
		for i := 0; i < u.NumEmbeddeds(); i++ {
			if named, ok := types.Unalias(u.EmbeddedType(i)).(*types.Named); ok {
				ifaces = append(ifaces, t.p.namedOf(named))
			}
		}
		return nil, ifaces
	}
	return nil, nil
}

func (t *goType) GenericParams() []meta.GenericParam {
	tps := t.named.TypeParams()
	if tps == nil || tps.Len() == 0 {
		return nil
	}
	out := make([]meta.GenericParam, 0, tps.Len())
	for i := 0; i < tps.Len(); i++ {
		tp := tps.At(i)
		gp := meta.GenericParam{Name: tp.Obj().Name()}
		if c := tp.Constraint(); c != nil {
			// only nominal constraints survive; any/comparable and
			// structural type sets carry no target representation
			if named, ok := types.Unalias(c).(*types.Named); ok && named.Obj().Pkg() != nil {
				gp.Constraints = append(gp.Constraints, t.p.namedOf(named))
			}
		}
		out = append(out, gp)
	}
	return out
}

func (t *goType) GenericArgs() []meta.Type {
	targs := t.named.TypeArgs()
	if targs == nil || targs.Len() == 0 {
		return nil
	}
	out := make([]meta.Type, targs.Len())
	for i := range out {
		out[i] = t.p.typeOf(targs.At(i))
	}
	return out
}

func (t *goType) Definition() meta.Type {
	if targs := t.named.TypeArgs(); targs != nil && targs.Len() > 0 {
		return t.p.namedOf(t.named.Origin())
	}
	return nil
}

func (t *goType) MapTypes() (meta.Type, meta.Type, bool) {
	if m, ok := t.named.Underlying().(*types.Map); ok {
		return t.p.typeOf(m.Key()), t.p.typeOf(m.Elem()), true
	}
	return nil, nil, false
}

func (t *goType) SliceType() (meta.Type, bool) {
	switch u := t.named.Underlying().(type) {
	case *types.Slice:
		return t.p.typeOf(u.Elem()), true
	case *types.Array:
		return t.p.typeOf(u.Elem()), true
	}
	return nil, false
}

func (t *goType) Fields() []meta.Field {
	st, ok := t.named.Underlying().(*types.Struct)
	if !ok {
		return nil
	}
	var out []meta.Field
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Embedded() || !f.Exported() {
			continue
		}
		out = append(out, meta.Field{Name: f.Name(), Type: t.p.typeOf(f.Type()), Tag: st.Tag(i)})
	}
	return out
}

func (t *goType) Methods() []meta.Method {
	var out []meta.Method
	if iface, ok := t.named.Underlying().(*types.Interface); ok && t.kind == meta.KindInterface {
		for i := 0; i < iface.NumExplicitMethods(); i++ {
			if m := iface.ExplicitMethod(i); m.Exported() {
				out = append(out, t.methodOf(m))
			}
		}
		return out
	}
	for i := 0; i < t.named.NumMethods(); i++ {
		if m := t.named.Method(i); m.Exported() {
			out = append(out, t.methodOf(m))
		}
	}
	return out
}

func (t *goType) methodOf(fn *types.Func) meta.Method {
	m := meta.Method{Name: fn.Name()}
	if sig, ok := fn.Type().(*types.Signature); ok {
		params := sig.Params()
		for i := 0; i < params.Len(); i++ {
			pv := params.At(i)
			name := pv.Name()
			if name == "" {
				name = fmt.Sprintf("arg%d", i)
			}
			m.Params = append(m.Params, meta.Field{Name: name, Type: t.p.typeOf(pv.Type())})
		}
	}
	return m
}

func (t *goType) EnumValues() []meta.EnumValue {
	return t.p.enums[t.named.Origin().Obj()]
}
