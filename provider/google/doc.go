// Package google provides a Gemini API client implementing genq.GenerationProvider.
//
// This package wraps the Google GenAI SDK. It is the primary backend of
// the genq CLI and serves any gemini-* model.
//
// # Basic Usage
//
// Note: the Google client requires a context for initialization:
//
//	client, err := google.New(ctx, os.Getenv("GEMINI_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Generate(ctx, "What's the weather like on Mars?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Content)
//
// # Model Selection
//
// Set a default model at client creation:
//
//	client, err := google.New(ctx, apiKey, google.WithModel(google.Gemini25Flash))
//
// Or override per-request:
//
//	result, err := client.Generate(ctx, prompt, genq.WithModel(google.Gemini25FlashLite))
//
// Errors returned by the Gemini API are mapped onto the genq error
// categories so rate limits and server errors are recognized as
// transient.
package google
