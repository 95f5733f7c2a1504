package environment

import (
	"fmt"
	"sort"

	"github.com/randalmurphal/envconf/document"
)

// Reserved document keys.
const (
	// EnvironmentsKey is the top-level mapping of environment name to its entry.
	EnvironmentsKey = "environments"

	// DefaultKey is the top-level fallback section consulted for every lookup.
	DefaultKey = "default"

	// AliasKey redirects an environment to another one.
	AliasKey = "alias"

	// ExtendsKey makes an environment inherit another one's keys.
	ExtendsKey = "extends"
)

// Link is one hop in an environment resolution chain.
type Link struct {
	Name string // Environment name
	Via  string // How it was reached: "", AliasKey or ExtendsKey
}

// View is the effective tree of one environment after following its alias
// and extends links. It does not include the default section.
type View struct {
	name     string
	resolved string
	links    []Link
	tree     map[string]any
}

// Name returns the environment that was requested.
func (v *View) Name() string {
	return v.name
}

// Resolved returns the environment the view was built from after alias hops.
func (v *View) Resolved() string {
	return v.resolved
}

// Chain returns the environment names visited during resolution, in order.
func (v *View) Chain() []string {
	names := make([]string, len(v.links))
	for i, l := range v.links {
		names[i] = l.Name
	}
	return names
}

// Links returns the resolution hops, in order.
func (v *View) Links() []Link {
	return append([]Link(nil), v.links...)
}

// Root returns a copy of the effective tree.
func (v *View) Root() map[string]any {
	return document.CloneMap(v.tree)
}

// Lookup returns the value of key inside section. An empty section looks
// key up at the top level of the view.
func (v *View) Lookup(section, key string) (any, bool) {
	val, ok := lookupIn(v.tree, section, key)
	if !ok {
		return nil, false
	}
	return document.Clone(val), true
}

// Section returns a copy of section, or false if it is missing or not a mapping.
func (v *View) Section(section string) (map[string]any, bool) {
	m, ok := v.tree[section].(map[string]any)
	if !ok {
		return nil, false
	}
	return document.CloneMap(m), true
}

// Names returns the declared environment names, sorted.
func Names(doc *document.Document) []string {
	envs, _ := doc.Section(EnvironmentsKey)
	names := make([]string, 0, len(envs))
	for name := range envs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Declared reports whether name is declared in the document.
func Declared(doc *document.Document, name string) bool {
	return doc.Has(EnvironmentsKey, name)
}

// Default returns a copy of the document's default section. A missing or
// non-mapping default section yields an empty map.
func Default(doc *document.Document) map[string]any {
	m, ok := doc.Section(DefaultKey)
	if !ok {
		return map[string]any{}
	}
	return m
}

// LookupDefault returns key inside section of the default section.
func LookupDefault(doc *document.Document, section, key string) (any, bool) {
	if section == "" {
		return doc.Lookup(DefaultKey, key)
	}
	return doc.Lookup(DefaultKey, section, key)
}

// Resolve builds the view of environment name.
//
// An undeclared name fails with *UnknownError. Alias targets replace the
// environment entirely; extends parents are merged underneath the
// environment's own keys, leaf by leaf. A link to an undeclared environment,
// a cycle, or a malformed entry fails with *ResolutionError.
func Resolve(doc *document.Document, name string) (*View, error) {
	envs, _ := doc.Section(EnvironmentsKey)
	if _, ok := envs[name]; !ok {
		return nil, &UnknownError{Name: name}
	}

	r := &resolver{root: name, envs: envs}
	tree, resolved, err := r.resolve(name, "", nil)
	if err != nil {
		return nil, err
	}

	return &View{
		name:     name,
		resolved: resolved,
		links:    r.links,
		tree:     tree,
	}, nil
}

// Describe returns the alias/extends hops taken to resolve name.
func Describe(doc *document.Document, name string) ([]Link, error) {
	v, err := Resolve(doc, name)
	if err != nil {
		return nil, err
	}
	return v.Links(), nil
}

type resolver struct {
	root  string
	envs  map[string]any
	links []Link
}

// resolve follows name's links. visited holds the names already on the
// current path; alias and extends each add one hop, so the path is linear
// and a repeated name is a cycle.
func (r *resolver) resolve(name, via string, visited []Link) (map[string]any, string, error) {
	for _, l := range visited {
		if l.Name == name {
			return nil, "", r.fail(append(visited, Link{Name: name, Via: via}), "cycle detected")
		}
	}
	visited = append(visited, Link{Name: name, Via: via})
	r.links = visited

	raw, ok := r.envs[name]
	if !ok {
		return nil, "", r.fail(visited, fmt.Sprintf("%s %q is not declared", via, name))
	}

	var entry map[string]any
	switch val := raw.(type) {
	case nil:
		entry = map[string]any{}
	case map[string]any:
		entry = val
	default:
		return nil, "", r.fail(visited, fmt.Sprintf("environment %q is not a mapping", name))
	}

	if target, ok := entry[AliasKey]; ok {
		targetName, err := r.linkTarget(visited, name, AliasKey, target)
		if err != nil {
			return nil, "", err
		}
		return r.resolve(targetName, AliasKey, visited)
	}

	own := make(map[string]any, len(entry))
	for k, v := range entry {
		if k == ExtendsKey {
			continue
		}
		own[k] = v
	}

	parent, ok := entry[ExtendsKey]
	if !ok {
		return document.CloneMap(own), name, nil
	}

	parentName, err := r.linkTarget(visited, name, ExtendsKey, parent)
	if err != nil {
		return nil, "", err
	}
	parentTree, _, err := r.resolve(parentName, ExtendsKey, visited)
	if err != nil {
		return nil, "", err
	}
	return document.Merge(parentTree, own), name, nil
}

func (r *resolver) linkTarget(visited []Link, name, kind string, target any) (string, error) {
	s, ok := target.(string)
	if !ok || s == "" {
		return "", r.fail(visited, fmt.Sprintf("%s of %q must be a non-empty string", kind, name))
	}
	return s, nil
}

func (r *resolver) fail(visited []Link, reason string) error {
	chain := make([]string, len(visited))
	for i, l := range visited {
		chain[i] = l.Name
	}
	return &ResolutionError{Name: r.root, Chain: chain, Reason: reason}
}

func lookupIn(tree map[string]any, section, key string) (any, bool) {
	if section == "" {
		return document.Get(tree, key)
	}
	return document.Get(tree, section, key)
}
