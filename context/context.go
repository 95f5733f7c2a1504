package context

import (
	"context"

	"github.com/randalmurphal/envconf/config"
)

// =============================================================================
// Context Injection Helpers
// =============================================================================
// These helpers let configuration stores travel with a context.Context
// instead of living in package-level variables.

// storeContextKey is a private type for context keys to avoid collisions
type storeContextKey string

const (
	defaultStoreKey storeContextKey = "envconf.store"
	namedStorePrefix                = "envconf.store."
)

// WithStore adds the default store to the context
func WithStore(ctx context.Context, store *config.Store) context.Context {
	return context.WithValue(ctx, defaultStoreKey, store)
}

// Store extracts the default store from context
func Store(ctx context.Context) *config.Store {
	if store, ok := ctx.Value(defaultStoreKey).(*config.Store); ok {
		return store
	}
	return nil
}

// MustStore extracts the default store or panics
func MustStore(ctx context.Context) *config.Store {
	store := Store(ctx)
	if store == nil {
		panic("envconf/context: config.Store not found in context")
	}
	return store
}

// WithNamedStore adds a store under name, for applications that read
// several configuration sources.
func WithNamedStore(ctx context.Context, name string, store *config.Store) context.Context {
	return context.WithValue(ctx, storeContextKey(namedStorePrefix+name), store)
}

// NamedStore extracts the store registered under name
func NamedStore(ctx context.Context, name string) *config.Store {
	if store, ok := ctx.Value(storeContextKey(namedStorePrefix + name)).(*config.Store); ok {
		return store
	}
	return nil
}

// MustNamedStore extracts the store registered under name or panics
func MustNamedStore(ctx context.Context, name string) *config.Store {
	store := NamedStore(ctx, name)
	if store == nil {
		panic("envconf/context: config.Store " + name + " not found in context")
	}
	return store
}
