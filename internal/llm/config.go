// Package llm provides the text-completion oracle abstraction and its Gemini
// implementation. The rest of the system treats the model as opaque: prompts
// in, text out.
package llm

// ModelTier represents the capability level requested for a call.
type ModelTier string

const (
	// TierLite is for simple tasks: tag extraction, short classification.
	TierLite ModelTier = "lite"
	// TierStandard is for structured extraction and section generation.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long-form prose such as cover letters.
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model configuration for the application.
type Config struct {
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the default Gemini model configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0.1,
	}
}

// Model returns the model name for a tier, falling back to standard, then lite.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return c.Models[TierLite]
}
