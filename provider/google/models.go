package google

// Model pricing last verified: December 2025
// Source: https://ai.google.dev/gemini-api/docs/pricing

// DefaultModel is used when neither the client nor the request names a model.
const DefaultModel = "gemini-pro"

// Gemini chat models.
const (
	GeminiPro         = "gemini-pro"
	Gemini25Pro       = "gemini-2.5-pro"
	Gemini25Flash     = "gemini-2.5-flash"
	Gemini25FlashLite = "gemini-2.5-flash-lite"
	Gemini20Flash     = "gemini-2.0-flash"
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
	case Gemini25Pro:
		return ModelPricing{InputPerMillion: 1.25, OutputPerMillion: 10.00}, true
	case Gemini25Flash:
		return ModelPricing{InputPerMillion: 0.30, OutputPerMillion: 2.50}, true
	case Gemini25FlashLite:
		return ModelPricing{InputPerMillion: 0.10, OutputPerMillion: 0.40}, true
	case Gemini20Flash:
		return ModelPricing{InputPerMillion: 0.10, OutputPerMillion: 0.40}, true
	case GeminiPro:
		return ModelPricing{InputPerMillion: 0.50, OutputPerMillion: 1.50}, true
	default:
		return ModelPricing{}, false
	}
}
