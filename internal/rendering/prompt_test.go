package rendering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/course-builder/internal/prompts"
	"github.com/jonathan/course-builder/internal/types"
)

func testCourse() *types.Course {
	return &types.Course{
		Title:        "Intro to Hydrology",
		Subject:      "the water cycle",
		Duration:     "2 days",
		Level:        "beginner",
		Environment:  "academic",
		Participants: "first-year students",
		Tone:         "friendly",
		Language:     "en",
	}
}

func TestSubstituteCourseFields(t *testing.T) {
	template := "Create {title} about {subject} for {participants} at {level} level, {tone} tone, in {language}."

	out := Substitute(template, testCourse(), nil, nil)
	assert.Equal(t, "Create Intro to Hydrology about the water cycle for first-year students at beginner level, friendly tone, in en.", out)
}

func TestSubstituteContextPlaceholders(t *testing.T) {
	cc := types.NewCumulativeContext()
	cc.Terminology = []string{"evaporation"}
	cc.MaterialsSummary[types.MaterialObjectives] = types.MaterialSummary{ContentPreview: "objectives text"}

	out := Substitute("CTX:\n{cumulative_context}\nSUMMARY:\n{materials_summary}", testCourse(), cc, nil)
	assert.Contains(t, out, "evaporation")
	assert.Contains(t, out, "objectives text")
	assert.NotContains(t, out, "{cumulative_context}")
	assert.NotContains(t, out, "{materials_summary}")
}

func TestSubstitutePriorContent(t *testing.T) {
	prior := map[types.MaterialType]string{
		types.MaterialObjectives: "the objectives body",
	}

	out := Substitute("Based on: {objectives_content}", testCourse(), nil, prior)
	assert.Equal(t, "Based on: the objectives body", out)
}

func TestSubstitutePriorContentTruncated(t *testing.T) {
	long := strings.Repeat("x", PriorContentLimit+500)
	prior := map[types.MaterialType]string{types.MaterialSlides: long}

	out := Substitute("{slides_content}", testCourse(), nil, prior)
	assert.Equal(t, PriorContentLimit, len([]rune(out)))
}

func TestSubstituteLeavesUnresolvedPlaceholders(t *testing.T) {
	out := Substitute("{agenda_content} and {unknown_thing}", testCourse(), nil, nil)
	assert.Equal(t, "{agenda_content} and {unknown_thing}", out)
}

func TestRenderPromptPrependsSystemPrompt(t *testing.T) {
	cc := types.NewCumulativeContext()
	prompt, err := RenderPrompt(types.MaterialObjectives, testCourse(), cc, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, prompts.SystemPrompt()))
	assert.Contains(t, prompt, "Intro to Hydrology")
}

func TestRenderPromptAllMaterials(t *testing.T) {
	cc := types.NewCumulativeContext()
	for _, mt := range types.MaterialOrder {
		prompt, err := RenderPrompt(mt, testCourse(), cc, nil)
		require.NoError(t, err, "material %s", mt)
		assert.NotEmpty(t, prompt)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		limit    int
		expected string
	}{
		{"Under limit", "short", 10, "short"},
		{"At limit", "exact", 5, "exact"},
		{"Over limit", "overflowing", 4, "over"},
		{"Multibyte runes", "ééééé", 3, "ééé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.in, tt.limit))
		})
	}
}
