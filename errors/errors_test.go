package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/envconf/config"
	"github.com/randalmurphal/envconf/document"
	"github.com/randalmurphal/envconf/environment"
)

func TestCLIError(t *testing.T) {
	err := &CLIError{
		Err:        ErrMissingValue,
		Message:    "Test message",
		Suggestion: "Test suggestion",
		Details:    "Test details",
	}

	assert.Equal(t, "Test message\nTest details\n\nTest suggestion", err.Error())
	assert.True(t, errors.Is(err, ErrMissingValue))
}

func TestCLIError_MinimalFields(t *testing.T) {
	err := &CLIError{
		Err:     ErrConfigNotFound,
		Message: "Config not found",
	}

	assert.Equal(t, "Config not found", err.Error())
}

func TestWrapConfigError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantIs     error
		wantSubstr string
	}{
		{
			name:       "file not found",
			err:        &document.FileNotFoundError{Path: "/srv/app/config.yml"},
			wantIs:     ErrConfigNotFound,
			wantSubstr: "Configuration file not found: /srv/app/config.yml",
		},
		{
			name:       "parse error",
			err:        &document.ParseError{Path: "/srv/app/config.json", Format: "json", Err: errors.New("unexpected EOF")},
			wantIs:     ErrConfigInvalid,
			wantSubstr: "unexpected EOF",
		},
		{
			name:       "unknown environment",
			err:        &environment.UnknownError{Name: "asdf"},
			wantIs:     ErrUnknownEnvironment,
			wantSubstr: `Environment "asdf" is not declared`,
		},
		{
			name:       "broken chain",
			err:        &environment.ResolutionError{Name: "development", Chain: []string{"development", "staging2"}, Reason: `alias "staging2" is not declared`},
			wantIs:     ErrEnvironmentChain,
			wantSubstr: "development -> staging2",
		},
		{
			name:       "missing value",
			err:        &config.MissingValueError{Section: "db", Key: "host", Environment: "production"},
			wantIs:     ErrMissingValue,
			wantSubstr: `Setting db.host is not defined for environment "production"`,
		},
		{
			name:       "wrapped missing value without environment",
			err:        fmt.Errorf("startup: %w", &config.MissingValueError{Key: "name"}),
			wantIs:     ErrMissingValue,
			wantSubstr: "Setting name is not defined.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapConfigError(tt.err)

			var cliErr *CLIError
			require.True(t, errors.As(wrapped, &cliErr), "expected CLIError, got %T", wrapped)
			assert.True(t, errors.Is(wrapped, tt.wantIs))
			assert.Contains(t, wrapped.Error(), tt.wantSubstr)
			assert.NotEmpty(t, cliErr.Suggestion)
		})
	}
}

func TestWrapConfigError_PassThrough(t *testing.T) {
	assert.Nil(t, WrapConfigError(nil))

	plain := errors.New("something else")
	assert.Same(t, plain, WrapConfigError(plain))

	already := &CLIError{Err: ErrUsage, Message: "x"}
	assert.Same(t, already, WrapConfigError(already))
}

type customMessenger struct {
	DefaultMessenger
}

func (customMessenger) ConfigNotFoundMessage(path string) (string, string) {
	return "no config at " + path, "run 'myapp init'"
}

func TestWrapConfigError_CustomMessenger(t *testing.T) {
	err := WrapConfigError(&document.FileNotFoundError{Path: "/x.yml"}, WithMessenger(customMessenger{}))

	assert.Equal(t, "no config at /x.yml\n\nrun 'myapp init'", err.Error())
}

func TestNewUsageError(t *testing.T) {
	err := NewUsageError("unknown command \"frob\"")

	assert.True(t, IsUsageError(err))
	assert.Contains(t, err.Error(), "unknown command")
	assert.Contains(t, err.Error(), "--help")
}

func TestPredicates(t *testing.T) {
	notFound := &document.FileNotFoundError{Path: "/x"}
	parseErr := &document.ParseError{Path: "/x", Format: "ini", Err: errors.New("bad")}
	unknown := &environment.UnknownError{Name: "x"}
	chain := &environment.ResolutionError{Name: "x", Reason: "cycle detected"}
	missing := &config.MissingValueError{Key: "x"}

	assert.True(t, IsNotFoundError(notFound))
	assert.False(t, IsNotFoundError(parseErr))
	assert.False(t, IsNotFoundError(nil))

	assert.True(t, IsParseError(parseErr))
	assert.False(t, IsParseError(missing))

	assert.True(t, IsEnvironmentError(unknown))
	assert.True(t, IsEnvironmentError(chain))
	assert.False(t, IsEnvironmentError(missing))

	assert.True(t, IsMissingValueError(missing))
	assert.True(t, IsMissingValueError(WrapConfigError(missing)))
	assert.False(t, IsMissingValueError(nil))

	assert.False(t, IsUsageError(errors.New("x")))
}
