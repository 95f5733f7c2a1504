package document

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ParseFunc parses raw file content into a tree.
type ParseFunc func(data []byte) (map[string]any, error)

// Registry maps file extensions to parsers.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]ParseFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]ParseFunc)}
}

// DefaultRegistry returns a new registry with the built-in formats:
// ini, yml, yaml, json, csv and toml.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("ini", ParseINI)
	r.Register("yml", ParseYAML)
	r.Register("yaml", ParseYAML)
	r.Register("json", ParseJSON)
	r.Register("csv", ParseCSV)
	r.Register("toml", ParseTOML)
	return r
}

// Register sets the parser for ext. A leading dot is ignored and matching is
// case-insensitive. Registering an extension twice replaces the parser.
func (r *Registry) Register(ext string, fn ParseFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[normalizeExt(ext)] = fn
}

// Lookup returns the parser registered for ext.
func (r *Registry) Lookup(ext string) (ParseFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.parsers[normalizeExt(ext)]
	return fn, ok
}

// Extensions returns the registered extensions, sorted.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exts := make([]string, 0, len(r.parsers))
	for ext := range r.parsers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Parse parses data as the format implied by path's extension.
// The result is normalized to document leaf types.
func (r *Registry) Parse(path string, data []byte) (*Document, error) {
	format := normalizeExt(filepath.Ext(path))
	fn, ok := r.Lookup(format)
	if !ok {
		return nil, &ParseError{
			Path:   path,
			Format: format,
			Err:    fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path)),
		}
	}

	root, err := fn(data)
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}

	return &Document{
		path:   path,
		format: format,
		root:   normalizeRoot(root),
	}, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
