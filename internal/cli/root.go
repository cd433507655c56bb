// Package cli wires the genq command tree.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spetersoncode/genq/config"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the genq command tree.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "genq",
		Short: "Send one prompt to a generative-AI provider",
		Long: `genq forwards a text prompt to Google Gemini, OpenAI, or Anthropic
and prints or saves the response.

Settings merge from three places, highest precedence first: command-line
flags, the YAML config file (see "genq config path"), and the
GEMINI_API_KEY / OPENAI_API_KEY / ANTHROPIC_API_KEY environment
variables (credentials only).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A local .env is a development convenience; absence is fine.
			_ = godotenv.Load()
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default "+defaultPathHint()+")")

	root.AddCommand(newGenerateCmd(&cfgPath))
	root.AddCommand(newConfigCmd(&cfgPath))
	return root
}

// configPath returns the explicit --config value or the fixed per-user
// location.
func configPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return config.Path()
}

func defaultPathHint() string {
	if p, err := config.Path(); err == nil {
		return p
	}
	return "~/.config/genq/config.yaml"
}
