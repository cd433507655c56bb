package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spetersoncode/genq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResult(t *testing.T) {
	t.Run("file contains exactly the response", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.txt")
		require.NoError(t, writeResult(&bytes.Buffer{}, path, "ok"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ok", string(data))
	})

	t.Run("file is overwritten, not appended", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.txt")
		require.NoError(t, os.WriteFile(path, []byte("previous longer content"), 0o644))

		require.NoError(t, writeResult(&bytes.Buffer{}, path, "ok"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ok", string(data))
	})

	t.Run("stdout gets a trailing newline", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeResult(&buf, "", "hello"))
		assert.Equal(t, "hello\n", buf.String())
	})

	t.Run("stdout newline is not doubled", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeResult(&buf, "", "hello\n"))
		assert.Equal(t, "hello\n", buf.String())
	})

	t.Run("unwritable path yields OutputError", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "result.txt")
		err := writeResult(&bytes.Buffer{}, path, "ok")

		var outErr *genq.OutputError
		require.ErrorAs(t, err, &outErr)
		assert.Equal(t, path, outErr.Path)
	})
}
