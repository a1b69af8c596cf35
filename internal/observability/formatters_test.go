package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/course-builder/internal/types"
)

func TestPrintCourse(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCourse(&types.Course{
		ID:          uuid.New(),
		Title:       "Intro to Hydrology",
		Subject:     "the water cycle",
		Duration:    "2 days",
		Level:       "beginner",
		Environment: "academic",
		Language:    "en",
		Status:      types.CourseStatusDraft,
	})

	out := buf.String()
	assert.Contains(t, out, "COURSE")
	assert.Contains(t, out, "Intro to Hydrology")
	assert.Contains(t, out, "beginner")
	assert.Contains(t, out, "draft")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintCourseNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCourse(nil)
	assert.Empty(t, buf.String())
}

func TestPrintPipelineProgressBar(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPipeline(&types.Pipeline{
		Status:          types.PipelineStatusRunning,
		CurrentStep:     4,
		TotalSteps:      8,
		ProgressPercent: 50,
	})

	out := buf.String()
	assert.Contains(t, out, "4 of 8")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, strings.Repeat("█", 10)+strings.Repeat("░", 10))
}

func TestPrintPipelineWaitingAndError(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	msg := "generation failed for slides"
	p.PrintPipeline(&types.Pipeline{
		Status:             types.PipelineStatusFailed,
		TotalSteps:         8,
		WaitingForApproval: true,
		ErrorMessage:       &msg,
	})

	out := buf.String()
	assert.Contains(t, out, "Waiting for approval")
	assert.Contains(t, out, "generation failed for slides")
}

func TestPrintMaterialsMarkers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMaterials([]types.Material{
		{StepOrder: 1, MaterialType: types.MaterialObjectives, Status: types.MaterialStatusCompleted, ApprovalStatus: types.ApprovalApproved},
		{StepOrder: 2, MaterialType: types.MaterialAgenda, Status: types.MaterialStatusCompleted, ApprovalStatus: types.ApprovalPending},
		{StepOrder: 3, MaterialType: types.MaterialSlides, Status: types.MaterialStatusFailed, ApprovalStatus: types.ApprovalPending},
		{StepOrder: 4, MaterialType: types.MaterialTrainerNotes, Status: types.MaterialStatusPending, ApprovalStatus: types.ApprovalRejected},
	})

	out := buf.String()
	assert.Contains(t, out, "✓ 1. objectives")
	assert.Contains(t, out, "? 2. agenda")
	assert.Contains(t, out, "! 3. slides")
	assert.Contains(t, out, "✗ 4. trainer_notes")
	assert.Contains(t, out, "completed / pending")
}

func TestPrintMaterialsEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMaterials(nil)
	assert.Empty(t, buf.String())
}

func TestPrintValidationResultCapsFindings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	res := &types.ValidationResult{Level: types.ValidationWarning}
	for i := 0; i < 7; i++ {
		res.Warnings = append(res.Warnings, "warning message")
	}
	bloom := 85.0
	res.Metadata.BloomCoveragePercent = &bloom

	p.PrintValidationResult(res)

	out := buf.String()
	assert.Contains(t, out, "Verdict: WARNING")
	assert.Contains(t, out, "... and 2 more")
	assert.Contains(t, out, "Bloom coverage")
	assert.Equal(t, maxItemsToShow, strings.Count(out, "warning message"))
}
