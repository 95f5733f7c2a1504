package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/randalmurphal/envconf/document"
	"github.com/randalmurphal/envconf/environment"
)

// NoSection looks a key up at the top level of the view instead of inside a section.
const NoSection = ""

var validate = validator.New()

// Options configures a Store.
type Options struct {
	// ProjectDir is the project root. Relative config files and path values
	// are resolved against it. Made absolute once in New.
	ProjectDir string `validate:"required"`

	// ConfigFile is the configuration file, relative to ProjectDir unless absolute.
	// Its extension selects the parser.
	ConfigFile string `validate:"required"`

	// Environment is the initial environment. Empty means default section only.
	Environment string

	// Flat treats the whole document as the view: no default section, no
	// environments. Use for plain (section -> key -> value) files.
	Flat bool

	// EnvPrefix enables environment variable overrides. With prefix "MYAPP_",
	// section "db" key "host" is overridden by MYAPP_DB_HOST.
	EnvPrefix string `validate:"omitempty,uppercase"`

	// Lazy defers loading the document to the first lookup.
	// By default New loads it and returns load errors.
	Lazy bool

	// Registry selects parsers. Defaults to document.DefaultRegistry().
	Registry *document.Registry `validate:"-"`

	// Cache holds parsed documents. Defaults to document.Shared().
	Cache *document.Cache `validate:"-"`

	// Logger receives debug diagnostics, including the cache's load and
	// eviction events for this store's file. Defaults to slog.Default(), or
	// to the cache's logger for cache events.
	Logger *slog.Logger `validate:"-"`
}

// Store answers lookups against one configuration file, optionally through
// an environment overlay. It is safe for concurrent use.
type Store struct {
	projectDir string
	configPath string
	flat       bool
	envPrefix  string
	registry   *document.Registry
	cache      *document.Cache
	logger     *slog.Logger
	docLogger  *slog.Logger // nil: the cache's logger

	mu   sync.Mutex
	env  string
	memo *viewMemo
}

// viewMemo remembers the resolved view for one (document, environment) pair.
type viewMemo struct {
	doc  *document.Document
	env  string
	view *environment.View
	err  error
}

// New creates a store for opts.ConfigFile under opts.ProjectDir.
func New(opts Options) (*Store, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	projectDir, err := filepath.Abs(opts.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("resolve project dir %s: %w", opts.ProjectDir, err)
	}
	configPath, err := document.ResolvePath(projectDir, opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	s := &Store{
		projectDir: projectDir,
		configPath: configPath,
		flat:       opts.Flat,
		envPrefix:  opts.EnvPrefix,
		registry:   opts.Registry,
		cache:      opts.Cache,
		logger:     opts.Logger,
		docLogger:  opts.Logger,
		env:        opts.Environment,
	}
	if s.registry == nil {
		s.registry = document.DefaultRegistry()
	}
	if s.cache == nil {
		s.cache = document.Shared()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	if !opts.Lazy {
		if _, err := s.Document(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ProjectDir returns the absolute project root.
func (s *Store) ProjectDir() string {
	return s.projectDir
}

// ConfigPath returns the absolute path of the configuration file.
func (s *Store) ConfigPath() string {
	return s.configPath
}

// Environment returns the active environment name.
func (s *Store) Environment() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.env
}

// SetEnvironment changes the active environment. An empty name means
// default section only. Unknown names behave like an empty name for lookups.
func (s *Store) SetEnvironment(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.env == name {
		return
	}
	s.env = name
	s.memo = nil
}

// Document returns the parsed configuration document, loading it on first use.
func (s *Store) Document() (*document.Document, error) {
	return s.cache.LoadWithLogger(s.projectDir, s.configPath, s.registry, s.docLogger)
}

// ResetCache evicts this store's document from its cache and forgets the
// resolved environment, so the next lookup re-reads the file.
func (s *Store) ResetCache() {
	s.cache.Forget(s.configPath)

	s.mu.Lock()
	s.memo = nil
	s.mu.Unlock()
}

// Watch evicts the store's document whenever the file changes, so lookups
// pick up edits. It runs until ctx is done.
func (s *Store) Watch(ctx context.Context) error {
	return s.cache.WatchWithLogger(ctx, s.configPath, s.docLogger)
}

// Environments returns the environments declared in the document.
func (s *Store) Environments() ([]string, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	if s.flat {
		return []string{}, nil
	}
	return environment.Names(doc), nil
}

// ResolveEnvironment returns the view of the active environment. Unlike
// lookups it is strict: an undeclared environment fails with
// ErrUnknownEnvironment. It returns nil without error when no environment
// is active or the store is flat.
func (s *Store) ResolveEnvironment() (*environment.View, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	env := s.Environment()
	if env == "" || s.flat {
		return nil, nil
	}
	return environment.Resolve(doc, env)
}

// Value returns the value of key in section. Lookup order: environment
// variable override (with EnvPrefix), active environment, default section.
// Missing values fail with *MissingValueError.
func (s *Store) Value(section, key string) (any, error) {
	v, _, err := s.Lookup(section, key)
	return v, err
}

// ValueOr is Value with def returned instead of a missing-value error.
// Other errors (load, alias/extends resolution) are still returned.
func (s *Store) ValueOr(section, key string, def any) (any, error) {
	v, _, err := s.LookupOr(section, key, def)
	return v, err
}

// LookupOr is Lookup with def returned (as SourceFallback) instead of a
// missing-value error.
func (s *Store) LookupOr(section, key string, def any) (any, Source, error) {
	v, src, err := s.Lookup(section, key)
	if errors.Is(err, ErrMissingValue) {
		return def, SourceFallback, nil
	}
	return v, src, err
}

// Lookup returns the value of key in section together with where it came from.
func (s *Store) Lookup(section, key string) (any, Source, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, "", err
	}

	view, err := s.view(doc)
	if err != nil {
		return nil, "", err
	}

	if v, ok := s.lookupEnvVar(section, key); ok {
		return v, SourceEnv, nil
	}

	if s.flat {
		if v, ok := lookupDoc(doc, section, key); ok {
			return v, SourceDocument, nil
		}
		return nil, "", s.missing(section, key)
	}

	if view != nil {
		if v, ok := view.Lookup(section, key); ok {
			return v, SourceEnvironment, nil
		}
	}

	if v, ok := environment.LookupDefault(doc, section, key); ok {
		return v, SourceDefault, nil
	}

	return nil, "", s.missing(section, key)
}

// Section returns the effective section: the default section's keys with
// the active environment's keys merged on top.
func (s *Store) Section(section string) (map[string]any, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}

	if s.flat {
		m, ok := doc.Section(section)
		if !ok {
			return nil, s.missing(section, "")
		}
		return m, nil
	}

	view, err := s.view(doc)
	if err != nil {
		return nil, err
	}

	base, hasBase := doc.Section(environment.DefaultKey, section)
	var overlay map[string]any
	hasOverlay := false
	if view != nil {
		overlay, hasOverlay = view.Section(section)
	}
	if !hasBase && !hasOverlay {
		return nil, s.missing(section, "")
	}
	return document.Merge(base, overlay), nil
}

// Snapshot returns the effective configuration tree: the default section
// with the active environment merged on top, or the whole document for a
// flat store.
func (s *Store) Snapshot() (map[string]any, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	if s.flat {
		return doc.Root(), nil
	}

	view, err := s.view(doc)
	if err != nil {
		return nil, err
	}

	tree := environment.Default(doc)
	if view != nil {
		tree = document.Merge(tree, view.Root())
	}
	return tree, nil
}

// String returns the value as a string. Numbers and booleans are formatted.
func (s *Store) String(section, key string) (string, error) {
	v, err := s.Value(section, key)
	if err != nil {
		return "", err
	}
	switch val := v.(type) {
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	default:
		return "", &TypeError{Section: section, Key: key, Want: "string", Value: v}
	}
}

// Int returns the value as an int. Integral floats and numeric strings convert.
func (s *Store) Int(section, key string) (int, error) {
	v, err := s.Value(section, key)
	if err != nil {
		return 0, err
	}
	switch val := v.(type) {
	case int64:
		return int(val), nil
	case float64:
		if val == float64(int(val)) {
			return int(val), nil
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return i, nil
		}
	}
	return 0, &TypeError{Section: section, Key: key, Want: "int", Value: v}
}

// Bool returns the value as a bool. Strings accepted by strconv.ParseBool convert.
func (s *Store) Bool(section, key string) (bool, error) {
	v, err := s.Value(section, key)
	if err != nil {
		return false, err
	}
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return b, nil
		}
	}
	return false, &TypeError{Section: section, Key: key, Want: "bool", Value: v}
}

// Path returns a path-valued setting as an absolute path. Relative values
// are joined to the project directory; absolute values are cleaned. The
// path is not checked for existence.
func (s *Store) Path(section, key string) (string, error) {
	v, err := s.Value(section, key)
	if err != nil {
		return "", err
	}
	return s.resolvePath(section, key, v)
}

// PathOr is Path with def used when the value is missing. def is resolved
// against the project directory the same way.
func (s *Store) PathOr(section, key, def string) (string, error) {
	v, err := s.ValueOr(section, key, def)
	if err != nil {
		return "", err
	}
	return s.resolvePath(section, key, v)
}

func (s *Store) resolvePath(section, key string, v any) (string, error) {
	p, ok := v.(string)
	if !ok {
		return "", &TypeError{Section: section, Key: key, Want: "path", Value: v}
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	return filepath.Join(s.projectDir, p), nil
}

// view returns the memoised view of the active environment. It returns nil
// when no environment is active, the store is flat, or the environment is
// not declared.
func (s *Store) view(doc *document.Document) (*environment.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.env == "" || s.flat {
		return nil, nil
	}
	if m := s.memo; m != nil && m.doc == doc && m.env == s.env {
		return m.view, m.err
	}

	view, err := environment.Resolve(doc, s.env)
	if errors.Is(err, environment.ErrUnknownEnvironment) {
		s.logger.Debug("unknown environment, using default section",
			slog.String("environment", s.env),
			slog.String("path", doc.Path()))
		view, err = nil, nil
	}

	s.memo = &viewMemo{doc: doc, env: s.env, view: view, err: err}
	return view, err
}

func (s *Store) lookupEnvVar(section, key string) (string, bool) {
	if s.envPrefix == "" {
		return "", false
	}
	return os.LookupEnv(EnvVarName(s.envPrefix, section, key))
}

func (s *Store) missing(section, key string) error {
	return &MissingValueError{Section: section, Key: key, Environment: s.Environment()}
}

// EnvVarName returns the environment variable consulted for section and key:
// prefix followed by the upper-cased section and key joined with "_".
// Characters other than letters and digits become "_".
func EnvVarName(prefix, section, key string) string {
	name := key
	if section != "" {
		name = section + "_" + key
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
	return prefix + name
}

func lookupDoc(doc *document.Document, section, key string) (any, bool) {
	if section == "" {
		return doc.Lookup(key)
	}
	return doc.Lookup(section, key)
}
