package parsing

import "fmt"

// ParseError represents a failure to decode material content
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// MissingMetadataError indicates a Markdown material without the required
// trailing fenced JSON metadata block
type MissingMetadataError struct {
	MaterialType string
}

func (e *MissingMetadataError) Error() string {
	return fmt.Sprintf("no JSON metadata block found in %s content", e.MaterialType)
}
