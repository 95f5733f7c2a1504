package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ExportFormats lists the formats accepted by Export.
var ExportFormats = []string{"yaml", "json", "toml"}

// IsExportFormat reports whether Export accepts format.
func IsExportFormat(format string) bool {
	switch strings.ToLower(format) {
	case "yaml", "yml", "json", "toml":
		return true
	}
	return false
}

// Export writes tree to w as yaml (or yml), json or toml.
func Export(w io.Writer, tree map[string]any, format string) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "toml":
		if err := toml.NewEncoder(w).Encode(tree); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: %s)", ErrUnsupportedExport, format, strings.Join(ExportFormats, ", "))
	}
}

// ExportFile writes tree to path in the format named by its extension.
// Parent directories are created as needed.
func ExportFile(path string, tree map[string]any) error {
	var buf bytes.Buffer
	if err := Export(&buf, tree, strings.TrimPrefix(filepath.Ext(path), ".")); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	// Exported config is meant to be shared and should be readable
	return os.WriteFile(path, buf.Bytes(), 0o644) //nolint:gosec
}

// Export writes the store's effective configuration (see Snapshot) to w.
func (s *Store) Export(w io.Writer, format string) error {
	tree, err := s.Snapshot()
	if err != nil {
		return err
	}
	return Export(w, tree, format)
}
