package meta

import "strings"

// Primitive singletons shared by providers and hand-built models.
var (
	BoolType   Type = &primitive{kind: PrimitiveBool, name: "bool"}
	IntType    Type = &primitive{kind: PrimitiveInteger, name: "int"}
	FloatType  Type = &primitive{kind: PrimitiveFloat, name: "float"}
	StringType Type = &primitive{kind: PrimitiveString, name: "string"}
	UUIDType   Type = &primitive{kind: PrimitiveUUID, name: "uuid"}
	TimeType   Type = &primitive{kind: PrimitiveTime, name: "time"}

	// AnyType is the unclassified structural value; references to it
	// degrade to "any" in the target model.
	AnyType Type = &primitive{kind: PrimitiveNone, name: "object"}

	// UntypedSlice is the untyped element abstraction; its element is "any".
	UntypedSlice Type = &slice{}
)

type primitive struct {
	Stub
	kind PrimitiveKind
	name string
}

func (p *primitive) Key() string              { return "primitive:" + p.name }
func (p *primitive) Name() string             { return p.name }
func (p *primitive) Kind() Kind               { return KindPrimitive }
func (p *primitive) Primitive() PrimitiveKind { return p.kind }

// Decl is a mutable, hand-built type descriptor. It is the in-memory
// implementation of Type used by tests and by callers whose source model is
// not backed by a real introspection mechanism.
type Decl struct {
	Stub
	key      string
	name     string
	kind     Kind
	base     Type
	ifaces   []Type
	params   []GenericParam
	fields   []Field
	props    []Field
	methods  []Method
	values   []EnumValue
	abstract bool
}

// ClassOf returns a class descriptor with the given raw display name.
func ClassOf(name string) *Decl {
	return &Decl{name: name, kind: KindClass, key: "type:" + name}
}

// InterfaceOf returns an interface descriptor with the given raw display name.
func InterfaceOf(name string) *Decl {
	return &Decl{name: name, kind: KindInterface, key: "type:" + name}
}

// EnumOf returns an enum descriptor with the given members, in order.
func EnumOf(name string, values ...EnumValue) *Decl {
	return &Decl{name: name, kind: KindEnum, key: "enum:" + name, values: values}
}

// WithKey overrides the default name-derived identity. Needed when two
// distinct source types share a raw display name.
func (d *Decl) WithKey(key string) *Decl { d.key = key; return d }

// WithBase sets the immediate base type.
func (d *Decl) WithBase(base Type) *Decl { d.base = base; return d }

// WithInterfaces appends directly exposed interfaces.
func (d *Decl) WithInterfaces(ifaces ...Type) *Decl {
	d.ifaces = append(d.ifaces, ifaces...)
	return d
}

// WithParam appends a declared type parameter.
func (d *Decl) WithParam(p GenericParam) *Decl { d.params = append(d.params, p); return d }

// WithField appends a field.
func (d *Decl) WithField(name string, t Type) *Decl {
	d.fields = append(d.fields, Field{Name: name, Type: t})
	return d
}

// WithTaggedField appends a field carrying a source annotation.
func (d *Decl) WithTaggedField(name string, t Type, tag string) *Decl {
	d.fields = append(d.fields, Field{Name: name, Type: t, Tag: tag})
	return d
}

// WithProperty appends a property.
func (d *Decl) WithProperty(name string, t Type) *Decl {
	d.props = append(d.props, Field{Name: name, Type: t})
	return d
}

// WithMethod appends a method signature.
func (d *Decl) WithMethod(m Method) *Decl { d.methods = append(d.methods, m); return d }

// WithAbstract marks the type abstract.
func (d *Decl) WithAbstract() *Decl { d.abstract = true; return d }

func (d *Decl) Key() string                   { return d.key }
func (d *Decl) Name() string                  { return d.name }
func (d *Decl) Kind() Kind                    { return d.kind }
func (d *Decl) Base() Type                    { return d.base }
func (d *Decl) Interfaces() []Type            { return d.ifaces }
func (d *Decl) GenericParams() []GenericParam { return d.params }
func (d *Decl) Fields() []Field               { return d.fields }
func (d *Decl) Properties() []Field           { return d.props }
func (d *Decl) Methods() []Method             { return d.methods }
func (d *Decl) EnumValues() []EnumValue       { return d.values }
func (d *Decl) Abstract() bool                { return d.abstract }

type nullable struct {
	Stub
	elem Type
}

// NullableOf wraps t as a nullable-value type.
func NullableOf(t Type) Type { return &nullable{elem: t} }

func (n *nullable) Key() string              { return "?" + n.elem.Key() }
func (n *nullable) Name() string             { return n.elem.Name() }
func (n *nullable) Kind() Kind               { return n.elem.Kind() }
func (n *nullable) Primitive() PrimitiveKind { return n.elem.Primitive() }
func (n *nullable) Nullable() Type           { return n.elem }

type dict struct {
	Stub
	k, v Type
}

// MapOf returns the two-parameter key/value map abstraction.
func MapOf(key, value Type) Type { return &dict{k: key, v: value} }

func (d *dict) Key() string  { return "map[" + d.k.Key() + "]" + d.v.Key() }
func (d *dict) Name() string { return "map" }
func (d *dict) MapTypes() (Type, Type, bool) {
	return d.k, d.v, true
}

type slice struct {
	Stub
	elem Type // nil for the untyped variant
}

// SliceOf returns the single-parameter element abstraction.
func SliceOf(elem Type) Type { return &slice{elem: elem} }

func (s *slice) Key() string {
	if s.elem == nil {
		return "[]"
	}
	return "[]" + s.elem.Key()
}
func (s *slice) Name() string            { return "slice" }
func (s *slice) SliceType() (Type, bool) { return s.elem, true }

type param struct {
	Stub
	name string
}

// ParamOf returns a generic type parameter as it appears at a usage site.
func ParamOf(name string) Type { return &param{name: name} }

func (p *param) Key() string  { return "param:" + p.name }
func (p *param) Name() string { return p.name }
func (p *param) Kind() Kind   { return KindTypeParam }

type constructed struct {
	Stub
	def  Type
	args []Type
}

// Construct returns a constructed instance of the generic definition def with
// the supplied type arguments.
func Construct(def Type, args ...Type) Type {
	return &constructed{def: def, args: args}
}

func (c *constructed) Key() string {
	keys := make([]string, len(c.args))
	for i, a := range c.args {
		keys[i] = a.Key()
	}
	return c.def.Key() + "<" + strings.Join(keys, ",") + ">"
}
func (c *constructed) Name() string              { return c.def.Name() }
func (c *constructed) Kind() Kind                { return c.def.Kind() }
func (c *constructed) Base() Type                { return c.def.Base() }
func (c *constructed) Interfaces() []Type        { return c.def.Interfaces() }
func (c *constructed) GenericArgs() []Type       { return c.args }
func (c *constructed) Definition() Type          { return c.def }
