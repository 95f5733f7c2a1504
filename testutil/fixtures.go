// Package testutil provides utilities for testing.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// LoadFixture loads a fixture file from the testdata directory.
// The path is relative to the testdata directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	fullPath := filepath.Join("testdata", path)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", path, err)
	}

	return data
}

// CopyFixture copies a fixture file into dir under the same base name.
// Returns the path to the copy.
func CopyFixture(t *testing.T, dir, fixturePath string) string {
	t.Helper()

	data := LoadFixture(t, fixturePath)
	return WriteFile(t, dir, filepath.Base(fixturePath), data)
}

// WriteFile writes content to dir/name, creating parent directories.
// Returns the absolute path of the file.
func WriteFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", name, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("failed to resolve %s: %v", path, err)
	}
	return abs
}

// WriteString writes string content to dir/name.
func WriteString(t *testing.T, dir, name, content string) string {
	t.Helper()
	return WriteFile(t, dir, name, []byte(content))
}

// WriteYAML marshals v as YAML and writes it to dir/name.
func WriteYAML(t *testing.T, dir, name string, v any) string {
	t.Helper()

	data, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal YAML for %s: %v", name, err)
	}
	return WriteFile(t, dir, name, data)
}

// WriteJSON marshals v as indented JSON and writes it to dir/name.
func WriteJSON(t *testing.T, dir, name string, v any) string {
	t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal JSON for %s: %v", name, err)
	}
	return WriteFile(t, dir, name, data)
}
