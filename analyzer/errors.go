package analyzer

import "fmt"

// MalformedInputError indicates a required input structure was missing or
// empty (no tag tree, no HTML). Fatal to the analyzer that raised it.
type MalformedInputError struct {
	Analyzer string
	Reason   string
}

func (e MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input for %s: %s", e.Analyzer, e.Reason)
}

// InsufficientTextError indicates the extracted text produced no sentences
// or words, making the text statistics undefined.
type InsufficientTextError struct {
	Reason string
}

func (e InsufficientTextError) Error() string {
	return fmt.Sprintf("insufficient text: %s", e.Reason)
}

// ConfigurationError indicates an invalid scoring configuration (weights not
// summing to 1, unknown curve). Raised at pipeline construction, before any
// analysis runs.
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid scoring configuration: %s", e.Reason)
}
