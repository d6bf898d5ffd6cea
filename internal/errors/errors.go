// Package apperrors provides domain-specific error types for the digitsum application.
// These error types include contextual information to aid debugging and error reporting.
package apperrors

import "fmt"

// UsageError represents a command invocation with the wrong argument arity.
// It records how many positional arguments were actually supplied.
type UsageError struct {
	Got int // Number of positional arguments received
}

// Error implements the error interface for UsageError.
func (e *UsageError) Error() string {
	return fmt.Sprintf("requires exactly one integer argument, got %d", e.Got)
}

// ParseError represents a failure to interpret an argument as a signed integer.
// It includes the offending input so diagnostics can name it verbatim.
type ParseError struct {
	Input string // The argument that failed to parse
	Err   error  // Underlying error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a base-10 integer: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ParseError) Unwrap() error {
	return e.Err
}
