package cli

import (
	"errors"

	"github.com/yaklabco/bioread/pkg/fsutil"
)

// Exit codes for bioread, following BSD sysexits conventions.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitUsageError indicates invalid command-line usage.
	ExitUsageError = 64

	// ExitDataError indicates configuration or input data errors.
	ExitDataError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// UsageError marks command-line misuse: bad flag values or conflicting
// options. It maps to ExitUsageError.
type UsageError struct {
	Err error
}

// Error implements the error interface.
func (e *UsageError) Error() string { return e.Err.Error() }

// Unwrap supports errors.Is and errors.As.
func (e *UsageError) Unwrap() error { return e.Err }

// ConfigError marks a failure to load or validate configuration.
// It maps to ExitDataError.
type ConfigError struct {
	Err error
}

// Error implements the error interface.
func (e *ConfigError) Error() string { return e.Err.Error() }

// Unwrap supports errors.Is and errors.As.
func (e *ConfigError) Unwrap() error { return e.Err }

// IOError marks a failure reading an input or writing the output.
// It maps to ExitIOError.
type IOError struct {
	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string { return e.Err.Error() }

// Unwrap supports errors.Is and errors.As.
func (e *IOError) Unwrap() error { return e.Err }

// ExitCode classifies an error from command execution into an exit code.
// Unknown errors are treated as internal.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return ExitDataError
	}

	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ExitIOError
	}

	if errors.Is(err, fsutil.ErrNotFound) ||
		errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrIsDirectory) {
		return ExitIOError
	}

	return ExitInternalError
}
