package cli

import (
	"strings"

	"github.com/spetersoncode/genq"
	"github.com/spetersoncode/genq/client"
	"github.com/spetersoncode/genq/config"
	"github.com/spetersoncode/genq/internal/logging"
	"github.com/spetersoncode/genq/retry"
	"github.com/spf13/cobra"
)

func newGenerateCmd(cfgPath *string) *cobra.Command {
	var (
		model       string
		temperature float64
		topP        float64
		maxTokens   int
		output      string
	)

	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Send a prompt and print or save the response",
		Long: `Generate sends a single prompt to the provider selected by the model
name and writes the full response to stdout, or to a file with --output.

Examples:
  genq generate "Explain YAML anchors in one paragraph"
  genq generate -m gpt-4o -t 0.2 "Write a haiku about config files"
  genq generate -o answer.txt "What is the capital of France?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(*cfgPath)
			if err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			ov := config.Overrides{}
			flags := cmd.Flags()
			if flags.Changed("model") {
				ov.Model = &model
			}
			if flags.Changed("temperature") {
				ov.Temperature = &temperature
			}
			if flags.Changed("top-p") {
				ov.TopP = &topP
			}
			if flags.Changed("max-tokens") {
				ov.MaxTokens = &maxTokens
			}
			resolved := config.Resolve(cfg, config.EnvCredentials(), ov)

			log, err := logging.New(resolved.LogLevel, resolved.LogFile)
			if err != nil {
				return err
			}

			var retryCfg *retry.Config
			if resolved.MaxRetries > 0 {
				rc := retry.WithRetries(resolved.MaxRetries)
				retryCfg = &rc
			}

			c := client.New(client.Config{
				APIKeys: client.APIKeys{
					Google:    resolved.GeminiAPIKey,
					OpenAI:    resolved.OpenAIAPIKey,
					Anthropic: resolved.AnthropicAPIKey,
				},
				DefaultModel: resolved.PrimaryModel,
				RetryConfig:  retryCfg,
				Logger:       log,
			})

			prompt := strings.Join(args, " ")
			result, err := c.Generate(cmd.Context(), prompt,
				genq.WithTemperature(resolved.Temperature),
				genq.WithTopP(resolved.TopP),
				genq.WithMaxTokens(resolved.MaxTokens),
			)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), output, result.Content)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&model, "model", "m", "", "model to use (default: primary_model from config)")
	f.Float64VarP(&temperature, "temperature", "t", 0, "sampling temperature")
	f.Float64Var(&topP, "top-p", 0, "nucleus sampling probability mass")
	f.IntVar(&maxTokens, "max-tokens", 0, "maximum tokens to generate")
	f.StringVarP(&output, "output", "o", "", "write the response to this file instead of stdout")
	return cmd
}
