package pipeline

import (
	"fmt"

	"github.com/jonathan/course-builder/internal/types"
)

// ConfigurationError indicates the pipeline cannot start at all, e.g. missing
// model credentials. It is surfaced immediately with no state mutation.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// NotFoundError indicates a missing course or material.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError indicates a generation attempt whose verdict blocks
// advancement (WARNING or CRITICAL). The raw output has already been
// persisted on the material for human inspection.
type ValidationError struct {
	MaterialType types.MaterialType
	Result       *types.ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation %s for %s: %s", e.Result.Level, e.MaterialType, e.Result.ErrorText())
}

// ConflictError indicates the requested transition is not possible in the
// course's current state (e.g. a material already in flight).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
