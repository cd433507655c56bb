package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spetersoncode/genq"
	"github.com/spetersoncode/genq/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the genq command tree with args and captures output.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

// scrubCredentials blanks the credential env vars so ambient keys on the
// test machine cannot leak into assertions.
func scrubCredentials(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvGeminiAPIKey, "")
	t.Setenv(config.EnvOpenAIAPIKey, "")
	t.Setenv(config.EnvAnthropicAPIKey, "")
}

func TestConfigShow(t *testing.T) {
	scrubCredentials(t)

	t.Run("is idempotent for an unchanged file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("temperature: 0.5\nprimary_model: gemini-2.5-flash\n"), 0o600))

		first, err := runCmd(t, "--config", path, "config", "show")
		require.NoError(t, err)
		second, err := runCmd(t, "--config", path, "config", "show")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("shows file values merged over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("temperature: 0.5\n"), 0o600))

		out, err := runCmd(t, "--config", path, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, `"temperature": 0.5`)
		assert.Contains(t, out, `"primary_model": "gemini-pro"`)
		assert.Contains(t, out, `"max_tokens": 4000`)
	})

	t.Run("masks credentials", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("gemini_api_key: super-secret-key-abcd\n"), 0o600))

		out, err := runCmd(t, "--config", path, "config", "show")
		require.NoError(t, err)
		assert.NotContains(t, out, "super-secret-key-abcd")
		assert.Contains(t, out, "****abcd")
	})

	t.Run("missing file shows pure defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.yaml")
		out, err := runCmd(t, "--config", path, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, `"primary_model": "gemini-pro"`)
		assert.Contains(t, out, `"fallback_model": "gpt-3.5-turbo"`)
	})
}

func TestConfigSet(t *testing.T) {
	t.Run("persists and is visible in show", func(t *testing.T) {
		scrubCredentials(t)
		path := filepath.Join(t.TempDir(), "config.yaml")

		out, err := runCmd(t, "--config", path, "config", "set", "temperature", "0.25")
		require.NoError(t, err)
		assert.Contains(t, out, "Set temperature")

		out, err = runCmd(t, "--config", path, "config", "show")
		require.NoError(t, err)
		assert.Contains(t, out, `"temperature": 0.25`)
	})

	t.Run("unknown key fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		_, err := runCmd(t, "--config", path, "config", "set", "warp_speed", "9")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown config key")
	})
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, err := runCmd(t, "--config", path, "config", "init")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	t.Run("refuses to overwrite without --force", func(t *testing.T) {
		_, err := runCmd(t, "--config", path, "config", "init")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("--force overwrites", func(t *testing.T) {
		require.NoError(t, config.Set(path, "temperature", "1.5"))
		_, err := runCmd(t, "--config", path, "config", "init", "--force")
		require.NoError(t, err)

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultTemperature, cfg.Temperature)
	})
}

func TestConfigPath(t *testing.T) {
	t.Run("echoes the override", func(t *testing.T) {
		out, err := runCmd(t, "--config", "/tmp/custom.yaml", "config", "path")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.yaml\n", out)
	})
}

func TestGenerateFailsFast(t *testing.T) {
	t.Run("no credential anywhere", func(t *testing.T) {
		scrubCredentials(t)
		path := filepath.Join(t.TempDir(), "config.yaml")

		_, err := runCmd(t, "--config", path, "generate", "hello")

		var mce *genq.MissingCredentialError
		require.ErrorAs(t, err, &mce)
		assert.Equal(t, genq.ProviderGoogle, mce.Provider)
	})

	t.Run("malformed config file", func(t *testing.T) {
		scrubCredentials(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("temperature: [oops\n"), 0o600))

		_, err := runCmd(t, "--config", path, "generate", "hello")

		var parseErr *config.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("flag model routes the credential check", func(t *testing.T) {
		scrubCredentials(t)
		path := filepath.Join(t.TempDir(), "config.yaml")

		_, err := runCmd(t, "--config", path, "generate", "-m", "claude-sonnet-4-5", "hello")

		var mce *genq.MissingCredentialError
		require.ErrorAs(t, err, &mce)
		assert.Equal(t, genq.ProviderAnthropic, mce.Provider)
	})

	t.Run("invalid log level from config", func(t *testing.T) {
		scrubCredentials(t)
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("log_level: shouty\n"), 0o600))

		_, err := runCmd(t, "--config", path, "generate", "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
		// Not a credential failure: config validation happens first.
		var mce *genq.MissingCredentialError
		assert.False(t, errors.As(err, &mce))
	})
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{"empty stays empty", "", ""},
		{"short key fully masked", "abcd", "****"},
		{"long key keeps tail", "sk-1234567890wxyz", "****wxyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskKey(tt.key))
		})
	}
}
