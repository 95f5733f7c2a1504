package document

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/singleflight"
)

var shared = NewCache()

// Shared returns the process-wide cache used by Load.
func Shared() *Cache {
	return shared
}

// Load loads configFile relative to projectDir through the shared cache
// using the default formats.
func Load(projectDir, configFile string) (*Document, error) {
	return shared.Load(projectDir, configFile, nil)
}

// Cache holds parsed documents keyed by absolute path.
// Entries are never evicted implicitly.
type Cache struct {
	mu     sync.RWMutex
	docs   map[string]*Document
	group  singleflight.Group
	logger *slog.Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sends the cache's debug diagnostics to logger.
// Without it the cache logs through slog.Default().
func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) {
		c.logger = logger
	}
}

// NewCache creates an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{docs: make(map[string]*Document)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolvePath returns the absolute, cleaned path of configFile.
// Relative paths are resolved against projectDir.
func ResolvePath(projectDir, configFile string) (string, error) {
	path := configFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(projectDir, configFile)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path %s: %w", configFile, err)
	}
	return abs, nil
}

// Load returns the document for configFile, parsing it on first use.
// Concurrent first loads of the same path parse the file once.
// A nil registry means DefaultRegistry.
func (c *Cache) Load(projectDir, configFile string, reg *Registry) (*Document, error) {
	return c.LoadWithLogger(projectDir, configFile, reg, nil)
}

// LoadWithLogger is Load with diagnostics sent to logger. A nil logger means
// the cache's own. When concurrent first loads coalesce, only the caller that
// runs the parse logs it.
func (c *Cache) LoadWithLogger(projectDir, configFile string, reg *Registry, logger *slog.Logger) (*Document, error) {
	path, err := ResolvePath(projectDir, configFile)
	if err != nil {
		return nil, err
	}

	if doc, ok := c.Get(path); ok {
		return doc, nil
	}

	v, err, _ := c.group.Do(path, func() (any, error) {
		// Another caller may have finished between Get and Do.
		if doc, ok := c.Get(path); ok {
			return doc, nil
		}

		doc, err := parseFile(path, reg)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.docs[path] = doc
		c.mu.Unlock()

		c.loggerOr(logger).Debug("config document loaded",
			slog.String("path", path),
			slog.String("format", doc.Format()))
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Document), nil
}

// Get returns the cached document for an absolute path.
func (c *Cache) Get(path string) (*Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[path]
	return doc, ok
}

// Forget evicts the document for an absolute path.
func (c *Cache) Forget(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.docs, path)
}

// Reset evicts every document.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = make(map[string]*Document)
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

func (c *Cache) loggerOr(logger *slog.Logger) *slog.Logger {
	switch {
	case logger != nil:
		return logger
	case c.logger != nil:
		return c.logger
	default:
		return slog.Default()
	}
}

func parseFile(path string, reg *Registry) (*Document, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return reg.Parse(path, data)
}
