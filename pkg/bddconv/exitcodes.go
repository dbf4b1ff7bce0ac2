// Package bddconv provides public constants for external tools
// integrating with the bddconv CLI.
package bddconv

// Exit codes returned by the bddconv CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the conversion completed successfully.
	ExitSuccess = 0

	// ExitRuntimeError indicates a runtime failure (feature file or
	// document write failed, etc.).
	ExitRuntimeError = 1

	// ExitInputError indicates an input error (bad arguments, missing
	// data source, malformed suite document, etc.).
	ExitInputError = 2
)
