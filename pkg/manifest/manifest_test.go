package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingIsEmpty(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Empty(t, m.Entries)
	require.Empty(t, m.Current)
}

func TestRecordRotation(t *testing.T) {
	m := &Manifest{}

	m.Record("v1", "models/v1.d.ts")
	require.Equal(t, "v1", m.Current)
	require.Empty(t, m.Previous)

	m.Record("v2", "models/v2.d.ts")
	require.Equal(t, "v2", m.Current)
	require.Equal(t, "v1", m.Previous)

	// re-recording the current version replaces the entry without rotating
	m.Record("v2", "models/v2b.d.ts")
	require.Equal(t, "v2", m.Current)
	require.Equal(t, "v1", m.Previous)
	require.Len(t, m.Entries, 2)
	require.Equal(t, "models/v2b.d.ts", m.File("v2"))
}

func TestFileLookup(t *testing.T) {
	m := &Manifest{}
	m.Record("v1", "models/v1.d.ts")
	require.Equal(t, "models/v1.d.ts", m.File("v1"))
	require.Empty(t, m.File("v9"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "manifest.yaml")

	m := &Manifest{}
	m.Record("v1", "models/v1.d.ts")
	m.Record("v2", "models/v2.d.ts")
	require.NoError(t, m.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, m.Current, got.Current)
	require.Equal(t, m.Previous, got.Previous)
	require.Len(t, got.Entries, 2)
	require.Equal(t, "v1", got.Entries[0].Version)
	require.False(t, got.Entries[0].GeneratedAt.IsZero())
}
