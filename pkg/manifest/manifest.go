// Package manifest tracks generated declaration-file snapshots across runs,
// so consumers can pin and diff versions of the emitted TypeScript models.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Entry records one generated declaration file.
type Entry struct {
	Version     string    `yaml:"version" json:"version"`
	File        string    `yaml:"file" json:"file"`
	GeneratedAt time.Time `yaml:"generated_at" json:"generated_at"`
}

// Manifest tracks the lifecycle of generated declaration snapshots.
type Manifest struct {
	Current  string  `yaml:"current" json:"current"`
	Previous string  `yaml:"previous" json:"previous"`
	Entries  []Entry `yaml:"entries" json:"entries"`
}

// Load reads a manifest from the provided path. If the file does not exist,
// an empty manifest is returned.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// Save writes the manifest to the provided path, creating parent directories
// as needed.
func (m *Manifest) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Record adds or replaces the entry for version and rotates Current/Previous.
func (m *Manifest) Record(version, file string) {
	entry := Entry{Version: version, File: file, GeneratedAt: time.Now().UTC()}

	replaced := false
	for i := range m.Entries {
		if m.Entries[i].Version == version {
			m.Entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		m.Entries = append(m.Entries, entry)
	}

	if m.Current != version {
		m.Previous = m.Current
		m.Current = version
	}
}

// File returns the file recorded for version, or "".
func (m *Manifest) File(version string) string {
	for _, e := range m.Entries {
		if e.Version == version {
			return e.File
		}
	}
	return ""
}
