package document

import (
	"sort"
)

// Document is the parsed tree of a single configuration file.
// It is never modified after construction.
type Document struct {
	path   string
	format string
	root   map[string]any
}

// New creates a document from an already parsed tree.
// The tree is copied, so later changes to root do not affect the document.
func New(path, format string, root map[string]any) *Document {
	if root == nil {
		root = map[string]any{}
	}
	return &Document{
		path:   path,
		format: format,
		root:   CloneMap(root),
	}
}

// Path returns the absolute path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Format returns the format name (file extension without the dot).
func (d *Document) Format() string {
	return d.format
}

// Root returns a copy of the whole tree.
func (d *Document) Root() map[string]any {
	return CloneMap(d.root)
}

// Keys returns the sorted top-level keys.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.root))
	for k := range d.root {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup walks the tree along keys and returns a copy of the value found.
// With no keys it returns the root.
func (d *Document) Lookup(keys ...string) (any, bool) {
	v, ok := lookup(d.root, keys)
	if !ok {
		return nil, false
	}
	return Clone(v), true
}

// Section returns a copy of the mapping at keys.
// The second result is false when the path is missing or not a mapping.
func (d *Document) Section(keys ...string) (map[string]any, bool) {
	v, ok := lookup(d.root, keys)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return CloneMap(m), true
}

// Has reports whether a value exists at keys.
func (d *Document) Has(keys ...string) bool {
	_, ok := lookup(d.root, keys)
	return ok
}

func lookup(root map[string]any, keys []string) (any, bool) {
	var cur any = root
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[k]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
