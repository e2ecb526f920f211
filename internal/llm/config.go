// Package llm provides the generative-service client, model configuration,
// and tolerant response extraction shared by every assistant task.
package llm

// ModelTier represents the capability level requested for a call
type ModelTier string

const (
	// TierLite is for small mechanical tasks: skill extraction, short lists
	TierLite ModelTier = "lite"
	// TierStandard is for conversational and summary output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for analysis and long-form generation
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model selection for the assistant
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back through
// standard and lite when the requested tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
