// Package openai provides an OpenAI client implementing genq.GenerationProvider.
//
// This package wraps the official OpenAI Go SDK and serves gpt-* and
// o-series models. It is the fallback provider of the genq CLI.
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"))
//	result, err := client.Generate(ctx, "Summarize this in one line.",
//	    genq.WithModel(openai.GPT4oMini))
//
// Rate limits surface the server's Retry-After header through the genq
// error categorization so callers can honor suggested delays.
package openai
