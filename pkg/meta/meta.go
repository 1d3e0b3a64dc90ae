// Package meta defines the read-only metadata model consumed by the
// declaration generator. A Type describes the shape of one source type in the
// manner of reflect.Type; providers (the bundled go/types provider, or a
// hand-built model) implement it, and the generator never assumes a specific
// introspection mechanism.
package meta

// Kind identifies the category of a described type.
type Kind int

const (
	KindInvalid Kind = iota
	KindPrimitive
	KindEnum
	KindClass
	KindInterface
	KindTypeParam
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindEnum:
		return "Enum"
	case KindClass:
		return "Class"
	case KindInterface:
		return "Interface"
	case KindTypeParam:
		return "TypeParam"
	default:
		return "Invalid"
	}
}

// PrimitiveKind classifies a primitive type for target mapping.
type PrimitiveKind int

const (
	PrimitiveNone PrimitiveKind = iota // unclassified structural value
	PrimitiveBool
	PrimitiveInteger
	PrimitiveFloat
	PrimitiveString
	PrimitiveUUID // opaque identifier, emitted as string
	PrimitiveTime // date/time, emitted as Date or string by policy
)

// Type describes a single type in the source model. Implementations must be
// read-only: the generator calls these methods freely and caches nothing
// beyond declaration identity.
type Type interface {
	// Key is a stable identity, unique per distinct generic definition or
	// non-generic type. Constructed generic instances carry their own keys;
	// the generator collapses them onto their definition.
	Key() string

	// Name is the raw display name. It may carry a generic-arity marker
	// (a backtick suffix or bracketed parameter list) which the generator
	// strips for output.
	Name() string

	Kind() Kind

	// Primitive is meaningful only when Kind is KindPrimitive.
	Primitive() PrimitiveKind

	// Base is the immediate base type, or nil when there is none (or when
	// the base is the universal root, which providers do not surface).
	Base() Type

	// Interfaces lists the interfaces the type directly exposes.
	Interfaces() []Type

	// GenericParams lists declared type parameters of a generic definition.
	GenericParams() []GenericParam

	// GenericArgs lists supplied type arguments of a constructed instance;
	// empty for definitions and non-generic types.
	GenericArgs() []Type

	// Definition returns the open generic definition of a constructed
	// instance, nil otherwise.
	Definition() Type

	// Nullable returns the underlying type when this type is a
	// nullable-value wrapper, nil otherwise.
	Nullable() Type

	// MapTypes reports whether this type is a two-parameter key/value map
	// abstraction, and if so its key and value types.
	MapTypes() (key, value Type, ok bool)

	// SliceType reports whether this type is a single-parameter element
	// abstraction. A nil element with ok=true is the untyped variant.
	SliceType() (elem Type, ok bool)

	Fields() []Field
	Properties() []Field
	Methods() []Method

	// EnumValues lists named integral members in declaration order.
	// Meaningful only when Kind is KindEnum.
	EnumValues() []EnumValue

	Abstract() bool
}

// GenericParam describes one declared type parameter.
type GenericParam struct {
	Name        string
	Constraints []Type
	// RequiresNew marks a parameter whose arguments must be
	// default-constructible.
	RequiresNew bool
}

// Field describes a field or property.
type Field struct {
	Name string
	Type Type
	// Tag carries the provider-specific source annotation, if any, for
	// member policies to inspect.
	Tag string
	Doc string
}

// Method describes a method signature. Bodies are never represented.
type Method struct {
	Name       string
	Params     []Field
	TypeParams []GenericParam
	// Synthetic marks compiler-generated accessors, which are never emitted.
	Synthetic bool
}

// EnumValue is one named integral enum member.
type EnumValue struct {
	Name  string
	Value int64
}

// Stub provides zero-value implementations of every Type method so that
// descriptor implementations only override what they need.
type Stub struct{}

func (Stub) Key() string                       { return "" }
func (Stub) Name() string                      { return "" }
func (Stub) Kind() Kind                        { return KindInvalid }
func (Stub) Primitive() PrimitiveKind          { return PrimitiveNone }
func (Stub) Base() Type                        { return nil }
func (Stub) Interfaces() []Type                { return nil }
func (Stub) GenericParams() []GenericParam     { return nil }
func (Stub) GenericArgs() []Type               { return nil }
func (Stub) Definition() Type                  { return nil }
func (Stub) Nullable() Type                    { return nil }
func (Stub) MapTypes() (Type, Type, bool)      { return nil, nil, false }
func (Stub) SliceType() (Type, bool)           { return nil, false }
func (Stub) Fields() []Field                   { return nil }
func (Stub) Properties() []Field               { return nil }
func (Stub) Methods() []Method                 { return nil }
func (Stub) EnumValues() []EnumValue           { return nil }
func (Stub) Abstract() bool                    { return false }
