// Package envconf provides environment-aware configuration lookup.
//
// A configuration file holds a "default" section and an "environments"
// mapping. Each environment overrides keys of the default section, and may
// redirect to another environment ("alias") or inherit from one ("extends").
//
// The package is organized into subpackages by concern:
//
//   - document: File loading, format parsers (YAML, JSON, TOML, INI, CSV), process-wide cache
//   - environment: Alias/extends resolution into an environment view
//   - config: Store with layered lookups, typed getters, path resolution, export
//   - context: Store dependency injection
//   - errors: User-facing error wrapping for CLIs
//   - testutil: Test utilities and fixtures
//
// The envconf command (cmd/envconf) inspects configuration files from the shell.
//
// # Quick Start
//
//	import (
//	    "github.com/randalmurphal/envconf/config"
//	    "github.com/randalmurphal/envconf/context"
//	)
//
//	// Open a store for the production environment
//	store, _ := config.New(config.Options{
//	    ProjectDir:  "/srv/app",
//	    ConfigFile:  "config/app.yml",
//	    Environment: "production",
//	})
//
//	// Look up a value: environment first, then the default section
//	host, _ := store.String("db", "host")
//
//	// Inject into a context
//	ctx = context.WithStore(ctx, store)
//
// See individual package documentation for detailed usage.
package envconf
