package types

import (
	"time"

	"github.com/google/uuid"
)

// CourseStatus constants
const (
	CourseStatusDraft      = "draft"
	CourseStatusGenerating = "generating"
	CourseStatusCompleted  = "completed"
	CourseStatusFailed     = "failed"
)

// Course represents a user-level course generation request. Status is mutated
// only by the pipeline orchestrator.
type Course struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Subject      string    `json:"subject"`
	Duration     string    `json:"duration"` // free text, e.g. "2 days"
	Level        string    `json:"level"`
	Environment  string    `json:"environment"`
	Participants string    `json:"participants"`
	Tone         string    `json:"tone"`
	Language     string    `json:"language"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CourseInput holds the fields a requester supplies when creating a course.
type CourseInput struct {
	Title        string `json:"title" validate:"required"`
	Subject      string `json:"subject" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	Level        string `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Environment  string `json:"environment" validate:"required,oneof=academic corporate"`
	Participants string `json:"participants" validate:"required"`
	Tone         string `json:"tone" validate:"required"`
	Language     string `json:"language" validate:"required"`
}
