package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spetersoncode/genq"
)

// writeResult delivers the full response text. A non-empty path means
// overwrite that file with exactly the response; otherwise print to out,
// adding a trailing newline for terminals.
func writeResult(out io.Writer, path, content string) error {
	if path != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return &genq.OutputError{Path: path, Err: err}
		}
		return nil
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	_, err := io.WriteString(out, content)
	return err
}
