package config

// Source indicates where a configuration value came from.
type Source string

// Configuration source constants.
const (
	// SourceEnv indicates the value came from an environment variable
	// (only when Options.EnvPrefix is set).
	SourceEnv Source = "env"

	// SourceEnvironment indicates the value came from the active
	// environment's view, including inherited and aliased keys.
	SourceEnvironment Source = "environment"

	// SourceDefault indicates the value came from the document's
	// default section.
	SourceDefault Source = "default"

	// SourceDocument indicates the value was read directly from the
	// document root of a flat store.
	SourceDocument Source = "document"

	// SourceFallback indicates the caller-supplied default was used.
	SourceFallback Source = "fallback"
)
