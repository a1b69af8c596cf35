// Package types defines the core domain records shared across the course
// generation pipeline: courses, materials, pipeline state, cumulative context,
// and validation results.
package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaterialType identifies one of the eight fixed course deliverables.
type MaterialType string

// The eight material kinds, in fixed generation order.
const (
	MaterialObjectives   MaterialType = "objectives"
	MaterialAgenda       MaterialType = "agenda"
	MaterialSlides       MaterialType = "slides"
	MaterialTrainerNotes MaterialType = "trainer_notes"
	MaterialExercises    MaterialType = "exercises"
	MaterialManual       MaterialType = "manual"
	MaterialAssessment   MaterialType = "assessment"
	MaterialResources    MaterialType = "resources"
)

// TotalSteps is the number of materials in a complete course package.
const TotalSteps = 8

// MaterialOrder lists all material types in their fixed step order (1..8).
var MaterialOrder = []MaterialType{
	MaterialObjectives,
	MaterialAgenda,
	MaterialSlides,
	MaterialTrainerNotes,
	MaterialExercises,
	MaterialManual,
	MaterialAssessment,
	MaterialResources,
}

// StepOrder returns the 1-based position of the material type in the
// generation sequence, or 0 for an unknown type.
func (m MaterialType) StepOrder() int {
	for i, t := range MaterialOrder {
		if t == m {
			return i + 1
		}
	}
	return 0
}

// IsMarkdown reports whether the material's canonical output is Markdown with
// a trailing fenced JSON metadata block (as opposed to a pure JSON body).
func (m MaterialType) IsMarkdown() bool {
	switch m {
	case MaterialSlides, MaterialTrainerNotes, MaterialManual:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for the material type.
func (m MaterialType) DisplayName() string {
	switch m {
	case MaterialObjectives:
		return "Learning Objectives"
	case MaterialAgenda:
		return "Course Agenda"
	case MaterialSlides:
		return "Slide Deck"
	case MaterialTrainerNotes:
		return "Trainer Notes"
	case MaterialExercises:
		return "Exercises"
	case MaterialManual:
		return "Participant Manual"
	case MaterialAssessment:
		return "Assessment"
	case MaterialResources:
		return "Resource List"
	}
	return string(m)
}

// ParseMaterialType validates a raw string against the known material types.
func ParseMaterialType(s string) (MaterialType, error) {
	mt := MaterialType(s)
	if mt.StepOrder() == 0 {
		return "", fmt.Errorf("unknown material type: %q", s)
	}
	return mt, nil
}

// MaterialStatus constants
const (
	MaterialStatusPending    = "pending"
	MaterialStatusGenerating = "generating"
	MaterialStatusCompleted  = "completed"
	MaterialStatusFailed     = "failed"
)

// ApprovalStatus constants
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Material represents one deliverable in the 8-step course package.
// All eight rows are created in pending status when the course is created;
// the orchestrator advances them one at a time in step order.
type Material struct {
	ID              uuid.UUID    `json:"id"`
	CourseID        uuid.UUID    `json:"course_id"`
	MaterialType    MaterialType `json:"material_type"`
	StepOrder       int          `json:"step_order"`
	Title           string       `json:"title"`
	Content         *string      `json:"content,omitempty"`
	ApprovedContent *string      `json:"approved_content,omitempty"`
	ApprovalStatus  string       `json:"approval_status"`
	Status          string       `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// EffectiveContent returns the human-approved content when present, otherwise
// the raw generated content. Empty string if neither is set.
func (m *Material) EffectiveContent() string {
	if m.ApprovedContent != nil && *m.ApprovedContent != "" {
		return *m.ApprovedContent
	}
	if m.Content != nil {
		return *m.Content
	}
	return ""
}

// Eligible reports whether the material may be picked up for generation:
// never attempted, failed on a prior attempt, or rejected by a reviewer.
func (m *Material) Eligible() bool {
	if m.Status == MaterialStatusPending || m.Status == MaterialStatusFailed {
		return true
	}
	return m.ApprovalStatus == ApprovalRejected
}
