package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between strategies or against the reference sequence.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError encapsulates a calculation error while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during the Fibonacci calculation.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents a calculation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// MismatchError reports a divergence between a computed Fibonacci term and
// the expected value, either against the reference sequence or between two
// strategies that should agree.
type MismatchError struct {
	// Strategy is the display name of the strategy that produced the value.
	Strategy string
	// Index is the sequence index n at which the divergence occurred.
	Index uint64
	// Got is the decimal representation of the computed term.
	Got string
	// Want is the decimal representation of the expected term.
	Want string
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("strategy %q: F(%d) = %s, want %s", e.Strategy, e.Index, e.Got, e.Want)
}

// ColorProvider supplies ANSI color codes for error presentation. It
// decouples error handling from the terminal theming layer; a nil provider
// disables colorization.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// noColor is the fallback provider used when no ColorProvider is supplied.
type noColor struct{}

func (noColor) Red() string    { return "" }
func (noColor) Yellow() string { return "" }
func (noColor) Reset() string  { return "" }

// HandleCalculationError writes a user-facing diagnostic for a failed
// calculation and maps the error to the appropriate process exit code.
//
// Parameters:
//   - err: The calculation error to report.
//   - duration: How long the operation ran before failing.
//   - out: The writer for the diagnostic message.
//   - colors: The color provider for the message (nil for plain output).
//
// Returns:
//   - int: The exit code corresponding to the error class.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if colors == nil {
		colors = noColor{}
	}

	var timeoutErr TimeoutError
	var mismatchErr MismatchError
	var configErr ConfigError

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.As(err, &timeoutErr):
		fmt.Fprintf(out, "\n%sTimeout: calculation exceeded the allotted time (%s elapsed).%s\n",
			colors.Yellow(), duration.Round(time.Millisecond), colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "\n%sCanceled: calculation interrupted after %s.%s\n",
			colors.Yellow(), duration.Round(time.Millisecond), colors.Reset())
		return ExitErrorCanceled
	case errors.As(err, &mismatchErr):
		fmt.Fprintf(out, "\n%sMismatch: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorMismatch
	case errors.As(err, &configErr):
		fmt.Fprintf(out, "\n%sConfiguration error: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorConfig
	default:
		fmt.Fprintf(out, "\n%sError: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
