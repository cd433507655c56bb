package openai

// Model pricing last verified: December 2025
// Source: https://platform.openai.com/docs/pricing

// DefaultModel is used when neither the client nor the request names a model.
const DefaultModel = "gpt-3.5-turbo"

// OpenAI chat models.
const (
	GPT35Turbo = "gpt-3.5-turbo"
	GPT4o      = "gpt-4o"
	GPT4oMini  = "gpt-4o-mini"
	O3Mini     = "o3-mini"
	O4Mini     = "o4-mini"
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
	case GPT35Turbo:
		return ModelPricing{InputPerMillion: 0.50, OutputPerMillion: 1.50}, true
	case GPT4o:
		return ModelPricing{InputPerMillion: 2.50, OutputPerMillion: 10.00}, true
	case GPT4oMini:
		return ModelPricing{InputPerMillion: 0.15, OutputPerMillion: 0.60}, true
	case O3Mini:
		return ModelPricing{InputPerMillion: 1.10, OutputPerMillion: 4.40}, true
	case O4Mini:
		return ModelPricing{InputPerMillion: 1.10, OutputPerMillion: 4.40}, true
	default:
		return ModelPricing{}, false
	}
}
