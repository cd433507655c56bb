// Package logging constructs the logger used across one genq invocation.
//
// The logger is built once from the resolved configuration and passed
// explicitly to the dispatcher; nothing in genq logs through a package
// global.
package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds a logrus logger from a configured level and optional log
// file path. An empty path logs to stderr. The log file is opened in
// append mode so repeated invocations accumulate.
func New(level, file string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(parsed)

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", file, err)
		}
		log.SetOutput(f)
	}

	return log, nil
}
