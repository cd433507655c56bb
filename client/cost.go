package client

import (
	ai "github.com/spetersoncode/genq"
	"github.com/spetersoncode/genq/provider/anthropic"
	"github.com/spetersoncode/genq/provider/google"
	"github.com/spetersoncode/genq/provider/openai"
)

// estimateCost computes the USD cost of a request from published
// per-million-token pricing. Returns false when the model's pricing is
// unknown.
func estimateCost(provider ai.Provider, model string, usage ai.Usage) (float64, bool) {
	switch provider {
	case ai.ProviderGoogle:
		if p, ok := google.PricingFor(model); ok {
			return tokenCost(usage, p.InputPerMillion, p.OutputPerMillion), true
		}
	case ai.ProviderOpenAI:
		if p, ok := openai.PricingFor(model); ok {
			return tokenCost(usage, p.InputPerMillion, p.OutputPerMillion), true
		}
	case ai.ProviderAnthropic:
		if p, ok := anthropic.PricingFor(model); ok {
			return tokenCost(usage, p.InputPerMillion, p.OutputPerMillion), true
		}
	}
	return 0, false
}

func tokenCost(usage ai.Usage, inputPerMillion, outputPerMillion float64) float64 {
	return float64(usage.InputTokens)/1_000_000*inputPerMillion +
		float64(usage.OutputTokens)/1_000_000*outputPerMillion
}
