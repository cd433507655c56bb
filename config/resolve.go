package config

import (
	"os"

	"github.com/spetersoncode/genq"
)

// Environment variables consumed as credential fallback. They apply only
// when the configuration file does not set the corresponding key; flags
// and file values always win.
const (
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
	EnvOpenAIAPIKey    = "OPENAI_API_KEY"
	EnvAnthropicAPIKey = "ANTHROPIC_API_KEY"
)

// Overrides holds command-line flag values. A nil field means the flag
// was not given, so the file value (or default) stands.
type Overrides struct {
	Model       *string
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// EnvCredentials collects the credential environment variables from the
// process environment.
func EnvCredentials() map[string]string {
	env := make(map[string]string, 3)
	for _, key := range []string{EnvGeminiAPIKey, EnvOpenAIAPIKey, EnvAnthropicAPIKey} {
		if v := os.Getenv(key); v != "" {
			env[key] = v
		}
	}
	return env
}

// Resolve merges a loaded configuration with environment credentials and
// flag overrides into the effective settings for one invocation.
// Precedence, highest to lowest: flag, file, environment (credentials
// only), built-in default.
func Resolve(cfg Config, env map[string]string, ov Overrides) Config {
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = env[EnvGeminiAPIKey]
	}
	if cfg.OpenAIAPIKey == "" {
		cfg.OpenAIAPIKey = env[EnvOpenAIAPIKey]
	}
	if cfg.AnthropicAPIKey == "" {
		cfg.AnthropicAPIKey = env[EnvAnthropicAPIKey]
	}

	if ov.Model != nil {
		cfg.PrimaryModel = *ov.Model
	}
	if ov.Temperature != nil {
		cfg.Temperature = *ov.Temperature
	}
	if ov.TopP != nil {
		cfg.TopP = *ov.TopP
	}
	if ov.MaxTokens != nil {
		cfg.MaxTokens = *ov.MaxTokens
	}
	return cfg
}

// APIKeyFor returns the resolved credential for a provider, or "" when
// none is configured.
func (c Config) APIKeyFor(p genq.Provider) string {
	switch p {
	case genq.ProviderGoogle:
		return c.GeminiAPIKey
	case genq.ProviderOpenAI:
		return c.OpenAIAPIKey
	case genq.ProviderAnthropic:
		return c.AnthropicAPIKey
	default:
		return ""
	}
}

// CredentialEnvVar returns the environment variable that supplies the
// credential for a provider.
func CredentialEnvVar(p genq.Provider) string {
	switch p {
	case genq.ProviderGoogle:
		return EnvGeminiAPIKey
	case genq.ProviderOpenAI:
		return EnvOpenAIAPIKey
	case genq.ProviderAnthropic:
		return EnvAnthropicAPIKey
	default:
		return ""
	}
}
