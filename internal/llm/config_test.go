package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
}

func TestGetModelFallsBackToStandard(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierStandard: "gemini-2.5-flash"}}
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierLite))

	empty := &Config{Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierLite))
}

func TestWithModel(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel(TierStandard, "gemini-2.5-pro")

	assert.Equal(t, "gemini-2.5-pro", custom.GetModel(TierStandard))
	// Original is untouched.
	assert.Equal(t, "gemini-2.5-flash", base.GetModel(TierStandard))
	// Unmodified tiers carry over.
	assert.Equal(t, "gemini-2.5-flash-lite", custom.GetModel(TierLite))
}
