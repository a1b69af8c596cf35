package types

import (
	"fmt"
	"strings"
)

// BloomLevels are the six cognitive-skill categories of Bloom's Taxonomy.
var BloomLevels = []string{"remember", "understand", "apply", "analyze", "evaluate", "create"}

// MerrillPrinciples are the five instructional-design principles that every
// material must fully represent.
var MerrillPrinciples = []string{"activation", "demonstration", "application", "integration", "task-centered"}

// DurationConstraints tracks how the course's total time budget has been
// allocated by the agenda.
type DurationConstraints struct {
	TotalMinutes     int `json:"total_minutes"`
	AllocatedMinutes int `json:"allocated_minutes"`
	RemainingMinutes int `json:"remaining_minutes"`
}

// MaterialSummary is a compact view of one already-generated material, used to
// ground subsequent prompts.
type MaterialSummary struct {
	ContentPreview string   `json:"content_preview"`
	KeyPoints      []string `json:"key_points,omitempty"`
}

// CumulativeContext is the ephemeral snapshot of everything generated so far.
// It is rebuilt from stored materials on every pipeline invocation and never
// persisted or shared between courses.
type CumulativeContext struct {
	Terminology        []string                         `json:"terminology"`
	KeyConcepts        []string                         `json:"key_concepts"`
	BloomLevelsUsed    []string                         `json:"bloom_levels_used"`
	LearningOutcomes   []string                         `json:"learning_outcomes"`
	Duration           DurationConstraints              `json:"duration_constraints"`
	ForbiddenNewTopics bool                             `json:"forbidden_new_topics"`
	MaterialsSummary   map[MaterialType]MaterialSummary `json:"materials_summary"`
}

// NewCumulativeContext returns an empty context with initialized collections.
func NewCumulativeContext() *CumulativeContext {
	return &CumulativeContext{
		MaterialsSummary: make(map[MaterialType]MaterialSummary),
	}
}

// PromptText serializes the context into the plain-text form substituted for
// the {cumulative_context} placeholder.
func (c *CumulativeContext) PromptText() string {
	var sb strings.Builder

	if len(c.LearningOutcomes) > 0 {
		sb.WriteString("Learning outcomes established so far:\n")
		for _, o := range c.LearningOutcomes {
			sb.WriteString("- " + o + "\n")
		}
	}
	if len(c.BloomLevelsUsed) > 0 {
		sb.WriteString("Bloom levels already addressed: " + strings.Join(c.BloomLevelsUsed, ", ") + "\n")
	}
	if len(c.Terminology) > 0 {
		sb.WriteString("Established terminology (use consistently): " + strings.Join(c.Terminology, ", ") + "\n")
	}
	if len(c.KeyConcepts) > 0 {
		sb.WriteString("Key concepts covered: " + strings.Join(c.KeyConcepts, ", ") + "\n")
	}
	if c.Duration.TotalMinutes > 0 {
		sb.WriteString(fmt.Sprintf("Time budget: %d minutes total, %d allocated, %d remaining\n",
			c.Duration.TotalMinutes, c.Duration.AllocatedMinutes, c.Duration.RemainingMinutes))
	}
	if c.ForbiddenNewTopics {
		sb.WriteString("The agenda is fixed: do NOT introduce topics that are not on the agenda.\n")
	}

	if sb.Len() == 0 {
		return "No materials have been generated yet."
	}
	return strings.TrimRight(sb.String(), "\n")
}

// SummaryText serializes the materials summary into the plain-text form
// substituted for the {materials_summary} placeholder.
func (c *CumulativeContext) SummaryText() string {
	if len(c.MaterialsSummary) == 0 {
		return "No prior materials."
	}

	var sb strings.Builder
	// Iterate in step order so the output is deterministic.
	for _, mt := range MaterialOrder {
		summary, ok := c.MaterialsSummary[mt]
		if !ok {
			continue
		}
		sb.WriteString("### " + mt.DisplayName() + "\n")
		if len(summary.KeyPoints) > 0 {
			for _, p := range summary.KeyPoints {
				sb.WriteString("- " + p + "\n")
			}
		}
		if summary.ContentPreview != "" {
			sb.WriteString(summary.ContentPreview + "\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
