package anthropic

// Model pricing last verified: December 2025
// Source: https://docs.anthropic.com/en/docs/about-claude/pricing

// DefaultModel is used when neither the client nor the request names a model.
const DefaultModel = "claude-sonnet-4-5"

// Claude chat models.
const (
	ClaudeSonnet45 = "claude-sonnet-4-5"
	ClaudeHaiku45  = "claude-haiku-4-5"
	ClaudeOpus45   = "claude-opus-4-5"
)

// ModelPricing contains pricing per million tokens (USD).
type ModelPricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// PricingFor returns the pricing for a model, or false when the model is
// unknown (cost logging is skipped in that case).
func PricingFor(model string) (ModelPricing, bool) {
	switch model {
	case ClaudeSonnet45:
		return ModelPricing{InputPerMillion: 3.00, OutputPerMillion: 15.00}, true
	case ClaudeHaiku45:
		return ModelPricing{InputPerMillion: 1.00, OutputPerMillion: 5.00}, true
	case ClaudeOpus45:
		return ModelPricing{InputPerMillion: 5.00, OutputPerMillion: 25.00}, true
	default:
		return ModelPricing{}, false
	}
}
