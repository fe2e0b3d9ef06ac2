package store

import "fmt"

// ValidationError represents a project record that failed validation at load
// time. The record is dropped and loading continues; it is never fatal for
// the whole load.
type ValidationError struct {
	File    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("invalid project %s: %s", e.File, e.Message)
	}
	return fmt.Sprintf("invalid project: %s", e.Message)
}

// LoadError represents a file that could not be read or parsed.
type LoadError struct {
	File    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.File, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
