// Package errors provides structured error types and exit codes for bddconv.
package errors

import (
	"fmt"
	"strings"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (file write failed, etc.)
	ExitInputError   = 2 // Input error (bad arguments, malformed suite document, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindUsage
	KindInput
	KindNotFound
)

// ConvertError is the base error type for bddconv.
type ConvertError struct {
	Kind    ErrorKind
	Message string
	Source  string // Data-source path if applicable
	Cause   error  // Underlying error
}

func (e *ConvertError) Error() string {
	msg := e.Message
	if e.Source != "" {
		msg = fmt.Sprintf("[%s] %s", e.Source, msg)
	}
	if e.Cause != nil && !strings.Contains(msg, e.Cause.Error()) {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConvertError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *ConvertError) ExitCode() int {
	switch e.Kind {
	case KindUsage, KindInput, KindNotFound:
		return ExitInputError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *ConvertError {
	return &ConvertError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *ConvertError {
	return New(fmt.Sprintf(format, args...))
}

// Usage creates a new usage error (bad command-line arguments).
func Usage(message string) *ConvertError {
	return &ConvertError{
		Kind:    KindUsage,
		Message: message,
	}
}

// Usagef creates a new usage error with formatting.
func Usagef(format string, args ...interface{}) *ConvertError {
	return Usage(fmt.Sprintf(format, args...))
}

// Input creates a new input error for a data source.
func Input(source, message string) *ConvertError {
	return &ConvertError{
		Kind:    KindInput,
		Source:  source,
		Message: message,
	}
}

// InputWrap wraps an error as an input error for a data source.
func InputWrap(source string, err error) *ConvertError {
	return &ConvertError{
		Kind:    KindInput,
		Source:  source,
		Message: err.Error(),
		Cause:   err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *ConvertError {
	return &ConvertError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *ConvertError {
	return &ConvertError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ce, ok := err.(*ConvertError); ok {
		return ce.ExitCode()
	}
	return ExitRuntimeError
}
