package translation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/course-builder/internal/llm"
)

type fakeClient struct {
	response string
	err      error
	prompts  []string
	tiers    []llm.ModelTier
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestIsEnglish(t *testing.T) {
	tests := []struct {
		language string
		expected bool
	}{
		{"en", true},
		{"EN", true},
		{"english", true},
		{"English", true},
		{" en ", true},
		{"de", false},
		{"es", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsEnglish(tt.language), "IsEnglish(%q)", tt.language)
	}
}

func TestTranslateEnglishIdentity(t *testing.T) {
	client := &fakeClient{response: "should never be used"}
	content := "# Original\n\nContent stays byte-identical."

	out := Translate(context.Background(), client, content, "en")
	assert.Equal(t, content, out)
	assert.Empty(t, client.prompts, "no model call for English")
}

func TestTranslateUsesLiteTier(t *testing.T) {
	client := &fakeClient{response: "# Übersetzt\n\nInhalt."}

	out := Translate(context.Background(), client, "# Original\n\nContent.", "de")
	assert.Equal(t, "# Übersetzt\n\nInhalt.", out)
	assert.Equal(t, []llm.ModelTier{llm.TierLite}, client.tiers)
	assert.True(t, strings.Contains(client.prompts[0], "de"))
	assert.True(t, strings.Contains(client.prompts[0], "# Original"))
}

func TestTranslateFailureFallsBack(t *testing.T) {
	client := &fakeClient{err: &llm.GenerationError{Message: "model unavailable"}}
	content := "untranslated content"

	out := Translate(context.Background(), client, content, "fr")
	assert.Equal(t, content, out)
}

func TestTranslateEmptyResponseFallsBack(t *testing.T) {
	client := &fakeClient{response: "   \n"}
	content := "untranslated content"

	out := Translate(context.Background(), client, content, "fr")
	assert.Equal(t, content, out)
}
