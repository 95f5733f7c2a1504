package context

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/randalmurphal/envconf/config"
	"github.com/randalmurphal/envconf/document"
)

// Stores wraps the configuration stores of an application for convenient injection
type Stores struct {
	Default *config.Store            // Injected with WithStore
	Named   map[string]*config.Store // Injected with WithNamedStore
}

// InjectAll adds all configured stores to the context
func (s *Stores) InjectAll(ctx context.Context) context.Context {
	if s.Default != nil {
		ctx = WithStore(ctx, s.Default)
	}
	for name, store := range s.Named {
		if store != nil {
			ctx = WithNamedStore(ctx, name, store)
		}
	}
	return ctx
}

// Source describes one configuration file of an application
type Source struct {
	Name       string // Store name; empty for the default store
	ConfigFile string // Path relative to ProjectDir (required)
	Flat       bool   // Plain section/key file without environments
}

// Config configures NewStores
type Config struct {
	ProjectDir  string   // Project root (required)
	Environment string   // Active environment for every store
	EnvPrefix   string   // Optional environment variable override prefix
	Sources     []Source // Configuration files to open

	Cache  *document.Cache // Shared by all stores (default: document.Shared())
	Logger *slog.Logger    // Default: slog.Default()
}

// NewStores opens one store per source. All stores share one cache and the
// same environment.
func NewStores(cfg Config) (*Stores, error) {
	s := &Stores{Named: make(map[string]*config.Store)}

	for _, src := range cfg.Sources {
		store, err := config.New(config.Options{
			ProjectDir:  cfg.ProjectDir,
			ConfigFile:  src.ConfigFile,
			Environment: cfg.Environment,
			Flat:        src.Flat,
			EnvPrefix:   cfg.EnvPrefix,
			Cache:       cfg.Cache,
			Logger:      cfg.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("open config %s: %w", src.ConfigFile, err)
		}

		if src.Name == "" {
			if s.Default != nil {
				return nil, fmt.Errorf("open config %s: default store already set", src.ConfigFile)
			}
			s.Default = store
			continue
		}
		if _, dup := s.Named[src.Name]; dup {
			return nil, fmt.Errorf("open config %s: duplicate store name %q", src.ConfigFile, src.Name)
		}
		s.Named[src.Name] = store
	}

	return s, nil
}

// SetEnvironment switches every store to the named environment
func (s *Stores) SetEnvironment(name string) {
	if s.Default != nil {
		s.Default.SetEnvironment(name)
	}
	for _, store := range s.Named {
		store.SetEnvironment(name)
	}
}
