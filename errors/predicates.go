package errors

import (
	"errors"
)

// IsNotFoundError checks if an error is a missing configuration file.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrConfigNotFound)
}

// IsParseError checks if an error is a malformed configuration file.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrConfigInvalid)
}

// IsEnvironmentError checks if an error is environment-related:
// an unknown environment or a broken alias/extends chain.
func IsEnvironmentError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrUnknownEnvironment) || errors.Is(err, ErrEnvironmentChain)
}

// IsMissingValueError checks if an error is an undefined setting.
func IsMissingValueError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrMissingValue)
}

// IsUsageError checks if an error is a command line usage error.
func IsUsageError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrUsage)
}
