package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default model and sampling settings used when neither a flag nor the
// configuration file provides a value.
const (
	DefaultPrimaryModel  = "gemini-pro"
	DefaultFallbackModel = "gpt-3.5-turbo"
	DefaultMaxTokens     = 4000
	DefaultTemperature   = 0.7
	DefaultTopP          = 0.9
	DefaultLogLevel      = "INFO"
)

// Config holds the full genq configuration. Field names mirror the keys
// of the YAML configuration file.
type Config struct {
	GeminiAPIKey    string  `yaml:"gemini_api_key,omitempty" json:"gemini_api_key,omitempty"`
	OpenAIAPIKey    string  `yaml:"openai_api_key,omitempty" json:"openai_api_key,omitempty"`
	AnthropicAPIKey string  `yaml:"anthropic_api_key,omitempty" json:"anthropic_api_key,omitempty"`
	PrimaryModel    string  `yaml:"primary_model" json:"primary_model"`
	FallbackModel   string  `yaml:"fallback_model" json:"fallback_model"`
	MaxTokens       int     `yaml:"max_tokens" json:"max_tokens"`
	Temperature     float64 `yaml:"temperature" json:"temperature"`
	TopP            float64 `yaml:"top_p" json:"top_p"`
	MaxRetries      int     `yaml:"max_retries" json:"max_retries"`
	LogLevel        string  `yaml:"log_level" json:"log_level"`
	LogFile         string  `yaml:"log_file,omitempty" json:"log_file,omitempty"`
}

// Default returns a fully populated configuration with built-in defaults.
// MaxRetries defaults to 0: a failed generation call is not retried
// unless the user opts in.
func Default() Config {
	return Config{
		PrimaryModel:  DefaultPrimaryModel,
		FallbackModel: DefaultFallbackModel,
		MaxTokens:     DefaultMaxTokens,
		Temperature:   DefaultTemperature,
		TopP:          DefaultTopP,
		LogLevel:      DefaultLogLevel,
	}
}

// ParseError indicates the configuration file exists but could not be parsed.
type ParseError struct {
	Path string
	Err  error
}

// Error returns a formatted message naming the offending file.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Path returns the fixed configuration file location under the per-user
// config directory, e.g. ~/.config/genq/config.yaml on Linux.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "genq", "config.yaml"), nil
}

// Load reads the configuration file at path. A missing file is not an
// error: the built-in defaults are returned. Fields absent from the file
// keep their default values. A file that exists but does not parse
// returns a *ParseError.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// Write persists cfg to path as YAML, creating parent directories as
// needed. The file is written with owner-only permissions since it may
// hold API keys.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
