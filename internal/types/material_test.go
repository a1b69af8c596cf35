package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepOrder(t *testing.T) {
	tests := []struct {
		name     string
		mt       MaterialType
		expected int
	}{
		{"Objectives first", MaterialObjectives, 1},
		{"Agenda second", MaterialAgenda, 2},
		{"Slides third", MaterialSlides, 3},
		{"Trainer notes fourth", MaterialTrainerNotes, 4},
		{"Exercises fifth", MaterialExercises, 5},
		{"Manual sixth", MaterialManual, 6},
		{"Assessment seventh", MaterialAssessment, 7},
		{"Resources last", MaterialResources, 8},
		{"Unknown type", MaterialType("quiz"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mt.StepOrder())
		})
	}
}

func TestMaterialOrderCoversAllSteps(t *testing.T) {
	assert.Len(t, MaterialOrder, TotalSteps)
	seen := map[MaterialType]bool{}
	for _, mt := range MaterialOrder {
		assert.False(t, seen[mt], "duplicate material type %s", mt)
		seen[mt] = true
	}
}

func TestIsMarkdown(t *testing.T) {
	markdown := []MaterialType{MaterialSlides, MaterialTrainerNotes, MaterialManual}
	for _, mt := range MaterialOrder {
		expected := false
		for _, m := range markdown {
			if mt == m {
				expected = true
			}
		}
		assert.Equal(t, expected, mt.IsMarkdown(), "IsMarkdown(%s)", mt)
	}
}

func TestParseMaterialType(t *testing.T) {
	mt, err := ParseMaterialType("trainer_notes")
	assert.NoError(t, err)
	assert.Equal(t, MaterialTrainerNotes, mt)

	_, err = ParseMaterialType("homework")
	assert.Error(t, err)

	_, err = ParseMaterialType("")
	assert.Error(t, err)
}

func TestEffectiveContent(t *testing.T) {
	content := "generated"
	approved := "approved version"

	tests := []struct {
		name     string
		material Material
		expected string
	}{
		{"Approved wins", Material{Content: &content, ApprovedContent: &approved}, "approved version"},
		{"Falls back to content", Material{Content: &content}, "generated"},
		{"Empty approved falls back", Material{Content: &content, ApprovedContent: new(string)}, "generated"},
		{"Neither set", Material{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.material.EffectiveContent())
		})
	}
}

func TestEligible(t *testing.T) {
	tests := []struct {
		name     string
		material Material
		expected bool
	}{
		{"Pending", Material{Status: MaterialStatusPending, ApprovalStatus: ApprovalPending}, true},
		{"Failed", Material{Status: MaterialStatusFailed, ApprovalStatus: ApprovalPending}, true},
		{"Completed awaiting approval", Material{Status: MaterialStatusCompleted, ApprovalStatus: ApprovalPending}, false},
		{"Completed approved", Material{Status: MaterialStatusCompleted, ApprovalStatus: ApprovalApproved}, false},
		{"Completed rejected", Material{Status: MaterialStatusCompleted, ApprovalStatus: ApprovalRejected}, true},
		{"Generating", Material{Status: MaterialStatusGenerating, ApprovalStatus: ApprovalPending}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.material.Eligible())
		})
	}
}

func TestProgressFor(t *testing.T) {
	tests := []struct {
		name     string
		step     int
		total    int
		expected int
	}{
		{"Zero", 0, 8, 0},
		{"First step", 1, 8, 13},
		{"Half", 4, 8, 50},
		{"Seventh", 7, 8, 88},
		{"Complete", 8, 8, 100},
		{"Zero total", 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProgressFor(tt.step, tt.total))
		})
	}
}
