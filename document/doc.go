// Package document loads configuration files into immutable trees.
//
// Core types:
//   - Document: parsed tree of one configuration file, identified by absolute path
//   - Registry: maps file extensions to parsers
//   - Cache: absolute path -> Document, populated once per path
//
// Supported formats (DefaultRegistry):
//   - .ini: sections nest on dots, values typed (booleans, integers, floats)
//   - .yml, .yaml: mapping root
//   - .json: object root
//   - .csv: flat "key,value" or "section,key,value" rows
//   - .toml: tables
//
// Every parser normalises its output to map[string]any with leaves of type
// string, int64, float64, bool, []any or nil.
//
// Example usage:
//
//	doc, err := document.Load("/srv/app", "config/app.yml")
//	if errors.Is(err, document.ErrFileNotFound) {
//	    // ...
//	}
//	host, ok := doc.Lookup("default", "db", "host")
//
// Load goes through the process-wide Shared cache. Documents are never
// re-read once cached; call Shared().Reset() (or Forget) to force a reload,
// or Watch a path to have changes evict it automatically.
package document
