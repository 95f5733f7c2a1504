// Package config provides environment-aware configuration stores.
//
// A Store reads one configuration file (INI, YAML, JSON, CSV or TOML) from a
// project directory and answers (section, key) lookups with clear precedence:
//  1. Environment variables (only when EnvPrefix is set)
//  2. The active environment (own keys, extends parents, alias targets)
//  3. The document's default section
//  4. The caller-supplied default (ValueOr, PathOr)
//
// # Basic Usage
//
//	store, err := config.New(config.Options{
//	    ProjectDir:  "/srv/app",
//	    ConfigFile:  "config/app.yml",
//	    Environment: "production",
//	})
//	if err != nil {
//	    return err
//	}
//
//	host, err := store.Value("db", "host")
//	logs, err := store.Path("paths", "logs")   // absolute, joined to ProjectDir
//	ttl, err := store.ValueOr("cache", "ttl", 60)
//
// # Document Shape
//
//	default:
//	  db:
//	    host: localhost
//	environments:
//	  production:
//	    db:
//	      host: db.internal
//	  staging:
//	    extends: production
//	  prod:
//	    alias: production
//
// Stores created with Flat read (section, key) straight from the document
// root and ignore environments.
//
// # Environments
//
// An environment that is not declared behaves like no environment: lookups
// fall through to the default section. A declared environment whose alias or
// extends chain cannot be resolved makes every lookup fail with ErrResolution.
// ResolveEnvironment is the strict variant and reports ErrUnknownEnvironment.
//
// # Caching
//
// Documents are cached per absolute path in a document.Cache (the shared
// process-wide cache unless Options.Cache is set) and never re-read on their
// own. ResetCache evicts the store's document; Watch evicts it whenever the
// file changes.
//
// # Value Sources
//
// Lookup reports where a value came from:
//   - "env": environment variable override
//   - "environment": active environment view
//   - "default": default section
//   - "document": document root of a flat store
//   - "fallback": caller-supplied default
package config
