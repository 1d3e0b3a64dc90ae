package gopkg

import (
	"go/constant"
	"go/token"
	"go/types"
	"sort"
	"strings"

	"github.com/tsbridge/tsbridge/pkg/meta"
)

// indexEnums scans package scopes for constants whose type is a named
// integral type declared in the loaded module, grouping them by origin type.
// Members keep source-position order, which is declaration order.
func (p *Provider) indexEnums() {
	type member struct {
		value meta.EnumValue
		pos   token.Pos
	}
	groups := make(map[*types.TypeName][]member)

	for _, pkg := range p.pkgs {
		if pkg.Types == nil {
			continue
		}
		if p.module != "" && !strings.HasPrefix(pkg.PkgPath, p.module) {
			continue
		}
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			c, ok := scope.Lookup(name).(*types.Const)
			if !ok {
				continue
			}
			named, ok := types.Unalias(c.Type()).(*types.Named)
			if !ok {
				continue
			}
			basic, ok := named.Underlying().(*types.Basic)
			if !ok || basic.Info()&types.IsInteger == 0 {
				continue
			}
			val, ok := constant.Int64Val(constant.ToInt(c.Val()))
			if !ok {
				continue
			}
			obj := named.Origin().Obj()
			groups[obj] = append(groups[obj], member{
				value: meta.EnumValue{Name: c.Name(), Value: val},
				pos:   c.Pos(),
			})
		}
	}

	for obj, members := range groups {
		sort.Slice(members, func(i, j int) bool { return members[i].pos < members[j].pos })
		values := make([]meta.EnumValue, len(members))
		for i, m := range members {
			values[i] = m.value
		}
		p.enums[obj] = values
	}
}
