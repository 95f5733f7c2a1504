// Package context provides dependency injection for configuration stores.
//
// Core types:
//   - Stores: Collection of an application's stores for injection
//   - Source: One configuration file opened by NewStores
//
// Context injection functions:
//   - WithStore/Store/MustStore: Default store injection
//   - WithNamedStore/NamedStore/MustNamedStore: Named store injection
//
// Example usage:
//
//	stores, err := context.NewStores(context.Config{
//	    ProjectDir:  "/srv/app",
//	    Environment: "production",
//	    Sources: []context.Source{
//	        {ConfigFile: "config/app.yml"},
//	        {Name: "features", ConfigFile: "config/features.csv", Flat: true},
//	    },
//	})
//	ctx = stores.InjectAll(ctx)
//
//	// Later, retrieve stores
//	cfg := context.MustStore(ctx)
//	features := context.NamedStore(ctx, "features")
package context
