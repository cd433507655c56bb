package genq

import (
	"context"
	"fmt"
	"strings"
)

// Provider identifies an AI provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderGoogle    Provider = "google"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// GenerationProvider defines the interface for single-shot text generation.
type GenerationProvider interface {
	// Generate sends one prompt and returns the complete response.
	// Exactly one outbound request is made per call.
	Generate(ctx context.Context, prompt string, opts ...Option) (*Result, error)
}

// ProviderForModel infers the provider from a model name.
// Gemini models route to Google, gpt-* and o-series models to OpenAI,
// and claude-* models to Anthropic.
func ProviderForModel(model string) (Provider, error) {
	name := strings.ToLower(model)
	switch {
	case strings.HasPrefix(name, "gemini-"):
		return ProviderGoogle, nil
	case strings.HasPrefix(name, "gpt-"), isOSeries(name):
		return ProviderOpenAI, nil
	case strings.HasPrefix(name, "claude-"):
		return ProviderAnthropic, nil
	default:
		return "", fmt.Errorf("cannot determine provider for model %q: expected gemini-*, gpt-*, o*, or claude-*", model)
	}
}

// isOSeries reports whether the name looks like an OpenAI reasoning model
// (o1, o3-mini, o4-mini, ...).
func isOSeries(name string) bool {
	if len(name) < 2 || name[0] != 'o' {
		return false
	}
	if name[1] < '0' || name[1] > '9' {
		return false
	}
	return len(name) == 2 || name[2] == '-'
}
