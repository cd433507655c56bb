// Package genq provides single-shot prompt dispatch to generative-AI providers.
//
// The genq library sends one text prompt to Google (Gemini), OpenAI, or
// Anthropic and returns the complete response text. It is the library half
// of the genq command-line tool; the CLI layers YAML configuration,
// environment credentials, and flag overrides on top of it.
//
// # Core Interface
//
// Every provider implements [GenerationProvider]: one prompt in, one
// [Result] out, exactly one outbound call per invocation.
//
// Use the [github.com/spetersoncode/genq/client] package as the entry
// point. It selects a provider from the model name, checks credentials
// before any network activity, and handles logging and optional retries:
//
//	c := client.New(client.Config{
//	    APIKeys:      client.APIKeys{Google: os.Getenv("GEMINI_API_KEY")},
//	    DefaultModel: "gemini-pro",
//	})
//
//	result, err := c.Generate(ctx, "What is the capital of France?")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Content)
//
// # Request Options
//
// Customize requests with functional options:
//
//	result, err := c.Generate(ctx, prompt,
//	    genq.WithModel("gemini-2.5-flash"),
//	    genq.WithTemperature(0.2),
//	    genq.WithTopP(0.9),
//	    genq.WithMaxTokens(1000),
//	)
//
// # Errors
//
// Failures are typed: [MissingCredentialError] when no API key resolves
// for the selected provider (raised before any network call),
// [GenerationError] for provider or transport failures, and
// [OutputError] when the CLI cannot write a response file. Provider
// errors additionally carry a [CategorizedError] classification so the
// [github.com/spetersoncode/genq/retry] package can distinguish
// transient failures from permanent ones.
package genq
