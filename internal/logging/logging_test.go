package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("parses levels case-insensitively", func(t *testing.T) {
		for level, expected := range map[string]logrus.Level{
			"DEBUG": logrus.DebugLevel,
			"INFO":  logrus.InfoLevel,
			"warn":  logrus.WarnLevel,
			"Error": logrus.ErrorLevel,
		} {
			log, err := New(level, "")
			require.NoError(t, err, level)
			assert.Equal(t, expected, log.GetLevel(), level)
		}
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := New("loud", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid log level "loud"`)
	})

	t.Run("writes to the log file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "genq.log")
		log, err := New("INFO", path)
		require.NoError(t, err)

		log.Info("first line")
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "first line")
	})

	t.Run("appends across instances", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "genq.log")

		log1, err := New("INFO", path)
		require.NoError(t, err)
		log1.Info("run one")

		log2, err := New("INFO", path)
		require.NoError(t, err)
		log2.Info("run two")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "run one")
		assert.Contains(t, string(data), "run two")
	})

	t.Run("unwritable log file path errors", func(t *testing.T) {
		_, err := New("INFO", filepath.Join(t.TempDir(), "missing-dir", "genq.log"))
		assert.Error(t, err)
	})
}
