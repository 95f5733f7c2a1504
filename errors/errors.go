package errors

import (
	"errors"

	"github.com/randalmurphal/envconf/config"
)

// Common CLI errors with actionable guidance. The configuration sentinels
// are the ones returned by package config, so errors.Is works across both.
var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = config.ErrFileNotFound

	// ErrConfigInvalid indicates the configuration file cannot be parsed.
	ErrConfigInvalid = config.ErrParse

	// ErrUnknownEnvironment indicates the environment is not declared.
	ErrUnknownEnvironment = config.ErrUnknownEnvironment

	// ErrEnvironmentChain indicates an alias/extends chain is broken.
	ErrEnvironmentChain = config.ErrResolution

	// ErrMissingValue indicates a requested setting is not defined.
	ErrMissingValue = config.ErrMissingValue

	// ErrUsage indicates the command line was invalid.
	ErrUsage = errors.New("invalid usage")
)
