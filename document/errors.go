package document

import "errors"

// Loading errors
var (
	// ErrFileNotFound indicates the resolved configuration path does not exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrParse indicates the file content is not valid for its format.
	ErrParse = errors.New("config parse error")

	// ErrUnsupportedFormat indicates no parser is registered for the file extension.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// FileNotFoundError reports a configuration file missing at load time.
type FileNotFoundError struct {
	Path string // Absolute path that was looked up
	Err  error  // Underlying stat error
}

func (e *FileNotFoundError) Error() string {
	return "config file not found: " + e.Path
}

func (e *FileNotFoundError) Unwrap() error {
	return e.Err
}

func (e *FileNotFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

// ParseError wraps a parser failure with the file and format involved.
type ParseError struct {
	Path   string // Absolute path of the file
	Format string // Format name (extension without dot)
	Err    error  // Underlying parser error
}

func (e *ParseError) Error() string {
	return "parse " + e.Format + " config " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
