package gen

// Context is the per-invocation registry of discovered declarations. One
// generation call owns one Context; it is discarded afterward and is not safe
// for concurrent mutation.
type Context struct {
	types map[string]*TypeDeclaration
	enums map[string]*EnumDeclaration

	// registration order, preserved for stable output
	typeOrder []*TypeDeclaration
	enumOrder []*EnumDeclaration

	// target names already bound to a declaration
	names map[string]struct{}

	// genericDepth guards against generic-argument graphs that never
	// bottom out; tripping it is a caller error, not a recoverable condition.
	genericDepth int
}

// NewContext returns an empty declaration registry.
func NewContext() *Context {
	return &Context{
		types: make(map[string]*TypeDeclaration),
		enums: make(map[string]*EnumDeclaration),
		names: make(map[string]struct{}),
	}
}

// Types returns all nominal declarations in registration order.
func (c *Context) Types() []*TypeDeclaration { return c.typeOrder }

// Enums returns all enum declarations in registration order.
func (c *Context) Enums() []*EnumDeclaration { return c.enumOrder }

// TypeFor returns the nominal declaration registered for the given identity,
// or nil.
func (c *Context) TypeFor(identity string) *TypeDeclaration { return c.types[identity] }

// EnumFor returns the enum declaration registered for the given identity,
// or nil.
func (c *Context) EnumFor(identity string) *EnumDeclaration { return c.enums[identity] }

func (c *Context) addType(d *TypeDeclaration) {
	c.types[d.Identity] = d
	c.typeOrder = append(c.typeOrder, d)
}

func (c *Context) addEnum(d *EnumDeclaration) {
	c.enums[d.Identity] = d
	c.enumOrder = append(c.enumOrder, d)
}

func (c *Context) nameTaken(name string) bool {
	_, ok := c.names[name]
	return ok
}

func (c *Context) bindName(name string) {
	c.names[name] = struct{}{}
}
