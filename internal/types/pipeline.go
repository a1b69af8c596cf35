package types

import (
	"time"

	"github.com/google/uuid"
)

// PipelineStatus constants
const (
	PipelineStatusPending   = "pending"
	PipelineStatusRunning   = "running"
	PipelineStatusCompleted = "completed"
	PipelineStatusFailed    = "failed"
)

// Pipeline is the persisted state of a course's generation state machine.
// Invariant: WaitingForApproval is true iff the current material is completed
// and its approval status is still pending.
type Pipeline struct {
	ID                 uuid.UUID  `json:"id"`
	CourseID           uuid.UUID  `json:"course_id"`
	CurrentStep        int        `json:"current_step"`
	TotalSteps         int        `json:"total_steps"`
	ProgressPercent    int        `json:"progress_percent"`
	Status             string     `json:"status"`
	ErrorMessage       *string    `json:"error_message,omitempty"`
	CurrentMaterialID  *uuid.UUID `json:"current_material_id,omitempty"`
	WaitingForApproval bool       `json:"waiting_for_approval"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ProgressFor computes the rounded progress percentage for a completed step count.
func ProgressFor(completedStep, totalSteps int) int {
	if totalSteps <= 0 {
		return 0
	}
	return int(float64(completedStep)/float64(totalSteps)*100 + 0.5)
}
