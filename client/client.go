package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	ai "github.com/spetersoncode/genq"
	"github.com/spetersoncode/genq/provider/anthropic"
	"github.com/spetersoncode/genq/provider/google"
	"github.com/spetersoncode/genq/provider/openai"
	"github.com/spetersoncode/genq/retry"
)

// ErrNoModel is returned when no model is specified and no default is configured.
var ErrNoModel = errors.New("no model specified and no default configured")

// credentialEnvVars names the environment variable that can supply each
// provider's API key, used to build actionable error messages.
var credentialEnvVars = map[ai.Provider]string{
	ai.ProviderGoogle:    "GEMINI_API_KEY",
	ai.ProviderOpenAI:    "OPENAI_API_KEY",
	ai.ProviderAnthropic: "ANTHROPIC_API_KEY",
}

// APIKeys holds API keys for different providers.
// Only configure keys for providers you intend to use.
type APIKeys struct {
	Google    string
	OpenAI    string
	Anthropic string
}

// Config holds configuration for creating a dispatch client.
type Config struct {
	// APIKeys contains authentication keys for each provider.
	APIKeys APIKeys

	// DefaultModel is used when a request does not name a model.
	DefaultModel string

	// RetryConfig configures retry behavior for transient errors.
	// If nil, a single attempt is made and failures are terminal.
	RetryConfig *retry.Config

	// Logger receives structured request/response logs. If nil, logs
	// are discarded.
	Logger *logrus.Logger
}

// Client dispatches generation requests to the provider matching the
// requested model. Provider clients are lazily initialized when first
// needed.
type Client struct {
	apiKeys      APIKeys
	defaultModel string
	retryConfig  retry.Config
	log          *logrus.Logger

	// Construction hooks, replaced in tests.
	newGoogle    func(ctx context.Context, apiKey string) (ai.GenerationProvider, error)
	newOpenAI    func(apiKey string) ai.GenerationProvider
	newAnthropic func(apiKey string) ai.GenerationProvider

	// Lazy-initialized providers (protected by mutex)
	mu                sync.RWMutex
	googleProvider    ai.GenerationProvider
	openaiProvider    ai.GenerationProvider
	anthropicProvider ai.GenerationProvider
	googleInitErr     error
}

// New creates a dispatch client with the given configuration.
func New(cfg Config) *Client {
	retryConfig := retry.Disabled()
	if cfg.RetryConfig != nil {
		retryConfig = *cfg.RetryConfig
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Client{
		apiKeys:      cfg.APIKeys,
		defaultModel: cfg.DefaultModel,
		retryConfig:  retryConfig,
		log:          log,
		newGoogle: func(ctx context.Context, apiKey string) (ai.GenerationProvider, error) {
			return google.New(ctx, apiKey)
		},
		newOpenAI:    func(apiKey string) ai.GenerationProvider { return openai.New(apiKey) },
		newAnthropic: func(apiKey string) ai.GenerationProvider { return anthropic.New(apiKey) },
	}
}

// Generate resolves the model, checks credentials, and performs the
// generation call. Exactly one outbound request is made unless a retry
// configuration allows more attempts on transient failures. A missing
// credential fails before any network activity.
func (c *Client) Generate(ctx context.Context, prompt string, opts ...ai.Option) (*ai.Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ai.ErrEmptyPrompt
	}

	options := ai.ApplyOptions(opts...)
	model := options.Model
	if model == "" {
		model = c.defaultModel
	}
	if model == "" {
		return nil, ErrNoModel
	}

	provider, err := ai.ProviderForModel(model)
	if err != nil {
		return nil, err
	}

	log := c.log.WithFields(logrus.Fields{
		"request_id": ai.RequestID(),
		"provider":   provider,
		"model":      model,
	})

	p, err := c.getProvider(ctx, provider)
	if err != nil {
		log.WithError(err).Error("cannot dispatch prompt")
		return nil, err
	}

	log.Debug("dispatching prompt")
	start := time.Now()

	result, err := retry.Do(ctx, c.retryConfig, func() (*ai.Result, error) {
		return p.Generate(ctx, prompt, append(opts, ai.WithModel(model))...)
	})
	if err != nil {
		genErr := &ai.GenerationError{Provider: provider, Model: model, Err: err}
		log.WithError(genErr).Error("generation failed")
		return nil, genErr
	}

	fields := logrus.Fields{
		"duration_ms":   time.Since(start).Milliseconds(),
		"input_tokens":  result.Usage.InputTokens,
		"output_tokens": result.Usage.OutputTokens,
		"finish_reason": result.FinishReason,
	}
	if cost, ok := estimateCost(provider, model, result.Usage); ok {
		fields["est_cost_usd"] = fmt.Sprintf("%.6f", cost)
	}
	log.WithFields(fields).Info("generation complete")

	return result, nil
}

// getProvider returns the provider client for the given provider,
// initializing it if needed. A missing API key is reported before any
// provider client is constructed.
func (c *Client) getProvider(ctx context.Context, provider ai.Provider) (ai.GenerationProvider, error) {
	switch provider {
	case ai.ProviderGoogle:
		return c.getGoogleProvider(ctx)
	case ai.ProviderOpenAI:
		return c.getOpenAIProvider()
	case ai.ProviderAnthropic:
		return c.getAnthropicProvider()
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func (c *Client) getGoogleProvider(ctx context.Context) (ai.GenerationProvider, error) {
	c.mu.RLock()
	if c.googleProvider != nil {
		defer c.mu.RUnlock()
		return c.googleProvider, nil
	}
	if c.googleInitErr != nil {
		defer c.mu.RUnlock()
		return nil, c.googleInitErr
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.googleProvider != nil {
		return c.googleProvider, nil
	}
	if c.googleInitErr != nil {
		return nil, c.googleInitErr
	}

	if c.apiKeys.Google == "" {
		return nil, &ai.MissingCredentialError{Provider: ai.ProviderGoogle, EnvVar: credentialEnvVars[ai.ProviderGoogle]}
	}

	p, err := c.newGoogle(ctx, c.apiKeys.Google)
	if err != nil {
		c.googleInitErr = fmt.Errorf("failed to initialize Google client: %w", err)
		return nil, c.googleInitErr
	}

	c.googleProvider = p
	return c.googleProvider, nil
}

func (c *Client) getOpenAIProvider() (ai.GenerationProvider, error) {
	c.mu.RLock()
	if c.openaiProvider != nil {
		defer c.mu.RUnlock()
		return c.openaiProvider, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.openaiProvider != nil {
		return c.openaiProvider, nil
	}

	if c.apiKeys.OpenAI == "" {
		return nil, &ai.MissingCredentialError{Provider: ai.ProviderOpenAI, EnvVar: credentialEnvVars[ai.ProviderOpenAI]}
	}

	c.openaiProvider = c.newOpenAI(c.apiKeys.OpenAI)
	return c.openaiProvider, nil
}

func (c *Client) getAnthropicProvider() (ai.GenerationProvider, error) {
	c.mu.RLock()
	if c.anthropicProvider != nil {
		defer c.mu.RUnlock()
		return c.anthropicProvider, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.anthropicProvider != nil {
		return c.anthropicProvider, nil
	}

	if c.apiKeys.Anthropic == "" {
		return nil, &ai.MissingCredentialError{Provider: ai.ProviderAnthropic, EnvVar: credentialEnvVars[ai.ProviderAnthropic]}
	}

	c.anthropicProvider = c.newAnthropic(c.apiKeys.Anthropic)
	return c.anthropicProvider, nil
}
