// Package snapshot records generated declaration files in a versioned
// manifest and diffs recorded versions against each other.
package snapshot

import (
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"

	"github.com/tsbridge/tsbridge/pkg/action/generate"
	"github.com/tsbridge/tsbridge/pkg/manifest"
)

// Take generates the declarations, records the output under version in the
// manifest, and saves the manifest. It returns the generated file path.
func Take(p *generate.Params, manifestPath, version string) (string, error) {
	if version == "" {
		return "", fmt.Errorf("snapshot version is required")
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	outFile, err := generate.Run(p)
	if err != nil {
		return "", err
	}

	m.Record(version, outFile)
	if err := m.Save(manifestPath); err != nil {
		return "", err
	}
	return outFile, nil
}

// List returns the manifest with every recorded snapshot.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest, locates the current and
// previous snapshot files, and returns a textual diff of their contents.
// An empty string means the two snapshots are identical.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.Current == "" || m.Previous == "" {
		return "", fmt.Errorf("no current/previous snapshots recorded")
	}

	currentPath := m.File(m.Current)
	previousPath := m.File(m.Previous)
	if currentPath == "" || previousPath == "" {
		return "", fmt.Errorf("snapshot files not found in manifest")
	}

	current, err := os.ReadFile(currentPath)
	if err != nil {
		return "", fmt.Errorf("read current snapshot: %w", err)
	}
	previous, err := os.ReadFile(previousPath)
	if err != nil {
		return "", fmt.Errorf("read previous snapshot: %w", err)
	}

	return cmp.Diff(string(previous), string(current)), nil
}
