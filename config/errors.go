package config

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/envconf/document"
	"github.com/randalmurphal/envconf/environment"
)

// Store errors
var (
	// ErrMissingValue indicates no value was found in the environment view,
	// the default section, or a caller default.
	ErrMissingValue = errors.New("missing config value")

	// ErrType indicates a value exists but has the wrong type for the accessor.
	ErrType = errors.New("config value has wrong type")

	// ErrInvalidOptions indicates Options failed validation.
	ErrInvalidOptions = errors.New("invalid config options")

	// ErrUnsupportedExport indicates Export was asked for an unknown format.
	ErrUnsupportedExport = errors.New("unsupported export format")
)

// Errors from the packages a Store delegates to, re-exported so callers
// only need this package for errors.Is checks.
var (
	ErrFileNotFound       = document.ErrFileNotFound
	ErrParse              = document.ErrParse
	ErrUnknownEnvironment = environment.ErrUnknownEnvironment
	ErrResolution         = environment.ErrResolution
)

// MissingValueError reports a lookup that found nothing.
type MissingValueError struct {
	Section     string // Empty when the key was looked up at the top level
	Key         string // Empty for whole-section lookups
	Environment string // Active environment, empty if none
}

func (e *MissingValueError) Error() string {
	msg := "missing config value " + qualified(e.Section, e.Key)
	if e.Environment != "" {
		msg += " (environment " + e.Environment + ")"
	}
	return msg
}

func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}

// TypeError reports a value that cannot be converted for an accessor.
type TypeError struct {
	Section string
	Key     string
	Want    string // Expected type, e.g. "string", "int", "path"
	Value   any    // Value found
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("config value %s is %T, want %s", qualified(e.Section, e.Key), e.Value, e.Want)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrType
}

func qualified(section, key string) string {
	switch {
	case section == "":
		return key
	case key == "":
		return section
	default:
		return section + "." + key
	}
}
