// Package gen walks a graph of source type descriptors and produces ordered,
// deduplicated TypeScript declaration records. The walk discovers every
// nominal type and enum reachable from a caller-supplied root set through
// fields, properties, method signatures, base types, interfaces, and generic
// arguments; each distinct identity yields exactly one declaration.
package gen

// TypeDeclaration is one nominal (non-enum) target declaration.
type TypeDeclaration struct {
	// Identity is the source type's identity key; one declaration exists
	// per identity within a Context.
	Identity string

	// Name is the final, collision-free target name.
	Name string

	// Header is the synthesized declaration header: export qualifier, kind
	// keyword, name with generic clause, extends/implements clauses.
	Header string

	Members []MemberDeclaration
	Methods []MethodDeclaration

	// Constructor is optional metadata supplied by the constructor policy,
	// rendered verbatim inside the declaration body.
	Constructor string
}

// EnumDeclaration is one enum target declaration.
type EnumDeclaration struct {
	Identity string
	Name     string
	Values   []EnumField
}

// EnumField is one enum member; Value is the underlying integral value in
// decimal form.
type EnumField struct {
	Name  string
	Value string
}

// MemberDeclaration is one field, property, or method parameter.
type MemberDeclaration struct {
	Name string

	// Type is the resolved target-type expression, e.g. "Array<Foo>",
	// "{ [key: string]: number }", "Bar<Baz>".
	Type string

	// Nullable is true when the original was a nullable-wrapped value type.
	Nullable bool

	// Decorators are opaque annotations supplied by the decorator policy.
	Decorators []string
}

// MethodDeclaration is one method signature: name plus an optional
// generic-parameter clause, and its ordered parameters.
type MethodDeclaration struct {
	Signature string
	Params    []MemberDeclaration
}
