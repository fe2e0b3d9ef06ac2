package analysis

import "fmt"

// ExtractionError represents a job description whose structured extraction
// could not be parsed after both the strict and fallback attempts. It is
// surfaced to the caller and never retried automatically: no section can be
// sensibly generated without job data.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
