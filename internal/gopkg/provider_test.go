package gopkg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tsbridge/tsbridge/pkg/meta"
)

const fixtureDir = "../../test/testdata/fixtures/models"

func loadFixture(t *testing.T) *Provider {
	t.Helper()
	p, err := Load(fixtureDir)
	require.NoError(t, err)
	return p
}

func rootNamed(t *testing.T, p *Provider, name string) meta.Type {
	t.Helper()
	roots := p.Roots([]string{name})
	require.Len(t, roots, 1, "expected exactly one root for %s", name)
	return roots[0]
}

func TestLoadModule(t *testing.T) {
	p := loadFixture(t)
	require.Equal(t, "github.com/tsbridge/tsbridge", p.Module())
}

func TestRootsDiscovery(t *testing.T) {
	p := loadFixture(t)

	var names []string
	for _, r := range p.Roots(nil) {
		names = append(names, r.Name())
	}
	want := []string{"Account", "AccountPage", "Audited", "Named", "Page", "Status", "User"}
	require.Empty(t, cmp.Diff(want, names))

	require.Len(t, p.Roots([]string{"Account"}), 1)
	require.Empty(t, p.Roots([]string{"NoSuchType"}))
}

func TestEnumIndexing(t *testing.T) {
	p := loadFixture(t)
	status := rootNamed(t, p, "Status")

	require.Equal(t, meta.KindEnum, status.Kind())
	want := []meta.EnumValue{
		{Name: "StatusPending", Value: 0},
		{Name: "StatusActive", Value: 1},
		{Name: "StatusClosed", Value: 2},
	}
	require.Empty(t, cmp.Diff(want, status.EnumValues()))
}

func TestStructClassification(t *testing.T) {
	p := loadFixture(t)
	account := rootNamed(t, p, "Account")

	require.Equal(t, meta.KindClass, account.Kind())
	require.NotNil(t, account.Base())
	require.Equal(t, "Audited", account.Base().Name())

	fields := account.Fields()
	var fieldNames []string
	byName := map[string]meta.Field{}
	for _, f := range fields {
		fieldNames = append(fieldNames, f.Name)
		byName[f.Name] = f
	}
	require.Empty(t, cmp.Diff(
		[]string{"Name", "Status", "Balance", "Tags", "Attrs", "Owner", "Internal"},
		fieldNames,
	))

	require.Equal(t, meta.PrimitiveString, byName["Name"].Type.Primitive())
	require.Equal(t, meta.KindEnum, byName["Status"].Type.Kind())
	require.NotNil(t, byName["Balance"].Type.Nullable())
	require.Equal(t, `ts:"-"`, byName["Internal"].Tag)

	elem, ok := byName["Tags"].Type.SliceType()
	require.True(t, ok)
	require.Equal(t, meta.PrimitiveString, elem.Primitive())

	k, v, ok := byName["Attrs"].Type.MapTypes()
	require.True(t, ok)
	require.Equal(t, meta.PrimitiveString, k.Primitive())
	require.Equal(t, meta.PrimitiveInteger, v.Primitive())

	owner := byName["Owner"].Type.Nullable()
	require.NotNil(t, owner)
	require.Equal(t, "User", owner.Name())
}

func TestWellKnownScalars(t *testing.T) {
	p := loadFixture(t)
	audited := rootNamed(t, p, "Audited")

	fields := audited.Fields()
	require.Len(t, fields, 2)
	require.Equal(t, meta.PrimitiveUUID, fields[0].Type.Primitive())
	require.Equal(t, meta.PrimitiveTime, fields[1].Type.Primitive())
}

func TestInterfaceMethods(t *testing.T) {
	p := loadFixture(t)
	named := rootNamed(t, p, "Named")

	require.Equal(t, meta.KindInterface, named.Kind())
	methods := named.Methods()
	require.Len(t, methods, 1)
	require.Equal(t, "DisplayName", methods[0].Name)
}

func TestGenericDefinitionAndInstance(t *testing.T) {
	p := loadFixture(t)

	page := rootNamed(t, p, "Page")
	params := page.GenericParams()
	require.Len(t, params, 1)
	require.Equal(t, "T", params[0].Name)
	require.Empty(t, params[0].Constraints)
	require.Nil(t, page.Definition())

	holder := rootNamed(t, p, "AccountPage")
	fields := holder.Fields()
	require.Len(t, fields, 2)

	inst := fields[0].Type
	require.Len(t, inst.GenericArgs(), 1)
	require.Equal(t, "Account", inst.GenericArgs()[0].Name())
	require.NotNil(t, inst.Definition())
	require.Equal(t, page.Key(), inst.Definition().Key())
}

func TestDescriptorIdentity(t *testing.T) {
	p := loadFixture(t)

	first := rootNamed(t, p, "Account")
	second := rootNamed(t, p, "Account")
	require.Equal(t, first.Key(), second.Key())

	// the memoized descriptor is shared, not rebuilt
	require.Same(t, first, second)
}
