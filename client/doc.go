// Package client dispatches a prompt to the provider selected by the model name.
//
// The client is the entry point for genq generation. It infers the
// provider from the model (gemini-* to Google, gpt-*/o* to OpenAI,
// claude-* to Anthropic), verifies a credential is configured before any
// network activity, performs the generation call, and logs the outcome
// with token usage and estimated cost.
//
//	c := client.New(client.Config{
//	    APIKeys:      client.APIKeys{Google: key},
//	    DefaultModel: "gemini-pro",
//	    Logger:       log,
//	})
//	result, err := c.Generate(ctx, prompt, genq.WithTemperature(0.2))
//
// By default a failed call is not retried. Supply a retry.Config to opt
// in to exponential backoff on transient errors (rate limits, 5xx,
// network timeouts).
package client
