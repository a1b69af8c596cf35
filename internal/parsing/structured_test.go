package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructuredDoc(t *testing.T) {
	body := `{
		"learning_outcomes": [
			{"statement": "Explain evaporation", "bloom_level": "understand"}
		],
		"metadata": {"bloom_coverage_percent": 66}
	}`

	doc, err := ParseStructuredDoc(body)
	require.NoError(t, err)
	require.Len(t, doc.LearningOutcomes, 1)
	assert.Equal(t, "Explain evaporation", doc.LearningOutcomes[0].Statement)
	assert.Equal(t, "understand", doc.LearningOutcomes[0].BloomLevel)
	require.NotNil(t, doc.Metadata)
	require.NotNil(t, doc.Metadata.BloomCoveragePercent)
	assert.Equal(t, 66.0, *doc.Metadata.BloomCoveragePercent)
}

func TestParseStructuredDocStripsCodeFence(t *testing.T) {
	body := "```json\n{\"sessions\": [{\"topic\": \"Intro\", \"duration_minutes\": 30}]}\n```"

	doc, err := ParseStructuredDoc(body)
	require.NoError(t, err)
	require.Len(t, doc.Sessions, 1)
	assert.Equal(t, "Intro", doc.Sessions[0].Topic)
	assert.Equal(t, 30, doc.Sessions[0].DurationMinutes)
}

func TestParseStructuredDocInvalid(t *testing.T) {
	_, err := ParseStructuredDoc("this is not JSON at all")
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
