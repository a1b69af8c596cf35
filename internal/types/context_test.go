package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptTextEmpty(t *testing.T) {
	cc := NewCumulativeContext()
	assert.Equal(t, "No materials have been generated yet.", cc.PromptText())
}

func TestPromptTextSections(t *testing.T) {
	cc := NewCumulativeContext()
	cc.LearningOutcomes = []string{"Explain the water cycle"}
	cc.BloomLevelsUsed = []string{"remember", "understand"}
	cc.Terminology = []string{"evaporation"}
	cc.Duration = DurationConstraints{TotalMinutes: 480, AllocatedMinutes: 420, RemainingMinutes: 60}
	cc.ForbiddenNewTopics = true

	text := cc.PromptText()
	assert.Contains(t, text, "Explain the water cycle")
	assert.Contains(t, text, "remember, understand")
	assert.Contains(t, text, "evaporation")
	assert.Contains(t, text, "480 minutes total, 420 allocated, 60 remaining")
	assert.Contains(t, text, "do NOT introduce topics")
	assert.False(t, strings.HasSuffix(text, "\n"))
}

func TestSummaryTextEmpty(t *testing.T) {
	cc := NewCumulativeContext()
	assert.Equal(t, "No prior materials.", cc.SummaryText())
}

func TestSummaryTextDeterministicOrder(t *testing.T) {
	cc := NewCumulativeContext()
	cc.MaterialsSummary[MaterialAgenda] = MaterialSummary{ContentPreview: "agenda preview"}
	cc.MaterialsSummary[MaterialObjectives] = MaterialSummary{
		ContentPreview: "objectives preview",
		KeyPoints:      []string{"outcome-driven"},
	}

	text := cc.SummaryText()
	objectivesIdx := strings.Index(text, "Learning Objectives")
	agendaIdx := strings.Index(text, "Course Agenda")
	assert.Greater(t, objectivesIdx, -1)
	assert.Greater(t, agendaIdx, objectivesIdx, "objectives must precede agenda")
	assert.Contains(t, text, "- outcome-driven")

	// Same input, same output.
	assert.Equal(t, text, cc.SummaryText())
}
