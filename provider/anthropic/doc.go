// Package anthropic provides a Claude client implementing genq.GenerationProvider.
//
// This package wraps the official Anthropic Go SDK and serves claude-*
// models. It is only selected when the user explicitly names a Claude
// model; genq never switches to it silently.
//
//	client := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"))
//	result, err := client.Generate(ctx, "Explain YAML anchors briefly.",
//	    genq.WithModel(anthropic.ClaudeSonnet45))
package anthropic
