package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/randalmurphal/envconf/config"
	"github.com/randalmurphal/envconf/document"
	"github.com/randalmurphal/envconf/environment"
)

// CLIError wraps an error with user-friendly context and suggestions.
type CLIError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *CLIError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// ErrorMessenger provides customizable error messages.
// Implement this interface to customize suggestions for your CLI.
type ErrorMessenger interface {
	// ConfigNotFoundMessage returns the message and suggestion for a missing config file.
	ConfigNotFoundMessage(path string) (message, suggestion string)

	// ConfigInvalidMessage returns the message and suggestion for a malformed config file.
	ConfigInvalidMessage(path, format string) (message, suggestion string)

	// UnknownEnvironmentMessage returns the message and suggestion for an undeclared environment.
	UnknownEnvironmentMessage(name string) (message, suggestion string)

	// EnvironmentChainMessage returns the message and suggestion for a broken alias/extends chain.
	EnvironmentChainMessage(name string) (message, suggestion string)

	// MissingValueMessage returns the message and suggestion for an undefined setting.
	// setting is "section.key" (or "key" at the top level).
	MissingValueMessage(setting, environment string) (message, suggestion string)

	// UsageMessage returns the message and suggestion for command line errors.
	UsageMessage() (message, suggestion string)
}

// DefaultMessenger provides default error messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) ConfigNotFoundMessage(path string) (string, string) {
	return fmt.Sprintf("Configuration file not found: %s", path),
		"Check the project directory and file name, or create the file."
}

func (m DefaultMessenger) ConfigInvalidMessage(path, format string) (string, string) {
	return fmt.Sprintf("Configuration file %s is not valid %s.", path, strings.ToUpper(format)),
		"Fix the syntax error below and try again."
}

func (m DefaultMessenger) UnknownEnvironmentMessage(name string) (string, string) {
	return fmt.Sprintf("Environment %q is not declared.", name),
		"Declare it under 'environments' or pick one of the declared environments."
}

func (m DefaultMessenger) EnvironmentChainMessage(name string) (string, string) {
	return fmt.Sprintf("Environment %q cannot be resolved.", name),
		"Check the 'alias' and 'extends' entries along the chain:\n  - every target must be declared\n  - chains must not loop"
}

func (m DefaultMessenger) MissingValueMessage(setting, environment string) (string, string) {
	msg := fmt.Sprintf("Setting %s is not defined.", setting)
	if environment != "" {
		msg = fmt.Sprintf("Setting %s is not defined for environment %q.", setting, environment)
	}
	return msg, "Add it to the 'default' section or to the environment."
}

func (m DefaultMessenger) UsageMessage() (string, string) {
	return "Invalid command line.", "Run with --help to see usage."
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger ErrorMessenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom error messenger.
func WithMessenger(m ErrorMessenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) ErrorMessenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// WrapConfigError wraps configuration errors with helpful guidance.
// Errors it does not recognize are returned unchanged. The original error
// stays reachable through errors.Is and errors.As.
func WrapConfigError(err error, opts ...Option) error {
	if err == nil {
		return nil
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return err
	}

	messenger := getMessenger(opts)

	var notFound *document.FileNotFoundError
	if errors.As(err, &notFound) {
		msg, suggestion := messenger.ConfigNotFoundMessage(notFound.Path)
		return &CLIError{Err: err, Message: msg, Suggestion: suggestion}
	}

	var parseErr *document.ParseError
	if errors.As(err, &parseErr) {
		msg, suggestion := messenger.ConfigInvalidMessage(parseErr.Path, parseErr.Format)
		return &CLIError{
			Err:        err,
			Message:    msg,
			Details:    parseErr.Err.Error(),
			Suggestion: suggestion,
		}
	}

	var unknown *environment.UnknownError
	if errors.As(err, &unknown) {
		msg, suggestion := messenger.UnknownEnvironmentMessage(unknown.Name)
		return &CLIError{Err: err, Message: msg, Suggestion: suggestion}
	}

	var resErr *environment.ResolutionError
	if errors.As(err, &resErr) {
		msg, suggestion := messenger.EnvironmentChainMessage(resErr.Name)
		return &CLIError{
			Err:        err,
			Message:    msg,
			Details:    resErr.Error(),
			Suggestion: suggestion,
		}
	}

	var missing *config.MissingValueError
	if errors.As(err, &missing) {
		setting := missing.Key
		if missing.Section != "" {
			setting = missing.Section
			if missing.Key != "" {
				setting += "." + missing.Key
			}
		}
		msg, suggestion := messenger.MissingValueMessage(setting, missing.Environment)
		return &CLIError{Err: err, Message: msg, Suggestion: suggestion}
	}

	return err
}

// NewUsageError creates an error for invalid command lines.
func NewUsageError(details string, opts ...Option) error {
	messenger := getMessenger(opts)
	msg, suggestion := messenger.UsageMessage()
	return &CLIError{
		Err:        ErrUsage,
		Message:    msg,
		Details:    details,
		Suggestion: suggestion,
	}
}
