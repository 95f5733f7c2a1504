// Package errors provides CLI error patterns with user-friendly messaging
// for configuration failures.
//
// Core types:
//   - CLIError: Wraps errors with message, suggestion, and details
//   - ErrorMessenger: Interface for customizing error messages
//
// Sentinel errors (shared with package config):
//   - ErrConfigNotFound: Configuration file does not exist
//   - ErrConfigInvalid: Configuration file cannot be parsed
//   - ErrUnknownEnvironment: Environment is not declared
//   - ErrEnvironmentChain: Alias/extends chain is broken
//   - ErrMissingValue: Setting is not defined
//   - ErrUsage: Invalid command line
//
// Example usage:
//
//	// Wrap a lookup error with default messages
//	if _, err := store.Value("db", "host"); err != nil {
//	    return errors.WrapConfigError(err)
//	}
//
//	// Wrap with custom messages
//	type MyMessenger struct{ errors.DefaultMessenger }
//	func (m MyMessenger) ConfigNotFoundMessage(path string) (string, string) {
//	    return "No config at " + path, "Run 'myapp init' to create one."
//	}
//
//	wrapped := errors.WrapConfigError(err, errors.WithMessenger(MyMessenger{}))
//
//	// Check error types
//	if errors.IsEnvironmentError(err) {
//	    // Handle environment-related error
//	}
package errors
