package environment

import (
	"errors"
	"strings"
)

// Resolution errors
var (
	// ErrUnknownEnvironment indicates the environment is not declared.
	ErrUnknownEnvironment = errors.New("unknown environment")

	// ErrResolution indicates an alias or extends chain cannot be resolved:
	// it points to an undeclared environment, loops, or hits a malformed entry.
	ErrResolution = errors.New("environment resolution failed")
)

// UnknownError reports a requested environment missing from the document.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return "unknown environment: " + e.Name
}

func (e *UnknownError) Is(target error) bool {
	return target == ErrUnknownEnvironment
}

// ResolutionError reports a failure while following alias/extends links.
type ResolutionError struct {
	Name   string   // Environment that was requested
	Chain  []string // Environments visited, in order
	Reason string   // What went wrong
}

func (e *ResolutionError) Error() string {
	msg := "resolve environment " + e.Name + ": " + e.Reason
	if len(e.Chain) > 1 {
		msg += " (" + strings.Join(e.Chain, " -> ") + ")"
	}
	return msg
}

func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}
