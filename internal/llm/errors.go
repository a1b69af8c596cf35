package llm

import "fmt"

// GenerationError represents a failed model call: a transport error, a
// response with no candidate, or a candidate with no content. Each is
// terminal for the current attempt; retries are an operator-level concern.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
