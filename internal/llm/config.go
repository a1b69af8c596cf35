// Package llm provides the generation client abstraction over Google Gemini
// and the decoding/safety configuration used for course material generation.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierLite is for cheap secondary calls such as translation.
	TierLite ModelTier = "lite"
	// TierStandard is for primary material generation.
	TierStandard ModelTier = "standard"
)

// Config holds the model selection for the application.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with one tier overridden.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Models: make(map[ModelTier]string, len(c.Models))}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}

// Decoding parameters for material generation. These mirror the fixed
// generation config of the production deployment.
const (
	GenTemperature     = 0.7
	GenTopK            = 40
	GenTopP            = 0.95
	GenMaxOutputTokens = 8192
)
