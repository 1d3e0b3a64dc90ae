package gen

import (
	"fmt"
	"strings"
)

// reserveName applies the rename policy to raw and binds a collision-free
// target name in ctx. Collisions are broken deterministically with the lowest
// unused $N suffix; a name already bound to a previous declaration is never
// reassigned.
func (g *Generator) reserveName(ctx *Context, raw string) string {
	name := raw
	if g.opts.TypeRenamer != nil {
		name = g.opts.TypeRenamer(name)
	}
	final := name
	for i := 1; ctx.nameTaken(final); i++ {
		final = fmt.Sprintf("%s$%d", name, i)
	}
	ctx.bindName(final)
	return final
}

// stripArity removes a generic-arity marker from a raw display name: either a
// backtick suffix ("Box`1") or a bracketed parameter list ("Box[T]"). Source
// names that differ only in arity collapse to the same surface name; the
// collision suffix keeps them distinct.
func stripArity(name string) string {
	if i := strings.IndexByte(name, '`'); i >= 0 {
		return name[:i]
	}
	if i := strings.IndexByte(name, '['); i > 0 && strings.HasSuffix(name, "]") {
		return name[:i]
	}
	return name
}
