package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// fieldKind describes how a config key's value is coerced.
type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindFloat
)

// fields maps configuration keys to their value kinds. Keys not listed
// here are rejected by Set.
var fields = map[string]fieldKind{
	"gemini_api_key":    kindString,
	"openai_api_key":    kindString,
	"anthropic_api_key": kindString,
	"primary_model":     kindString,
	"fallback_model":    kindString,
	"max_tokens":        kindInt,
	"temperature":       kindFloat,
	"top_p":             kindFloat,
	"max_retries":       kindInt,
	"log_level":         kindString,
	"log_file":          kindString,
}

// Keys returns the settable configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set persists a single key/value pair to the configuration file at
// path, creating the file from defaults when it does not exist. Keys the
// file already holds but Set does not know about are preserved as-is.
func Set(path, key, value string) error {
	kind, ok := fields[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}

	coerced, err := coerce(kind, value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	doc[key] = coerced

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// readDocument loads the config file as a generic YAML mapping so that
// unrecognized keys survive a round trip. A missing file yields the
// default configuration as a mapping.
func readDocument(path string) (map[string]any, error) {
	doc := make(map[string]any)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			defaults, err := yaml.Marshal(Default())
			if err != nil {
				return nil, fmt.Errorf("encoding defaults: %w", err)
			}
			if err := yaml.Unmarshal(defaults, &doc); err != nil {
				return nil, fmt.Errorf("decoding defaults: %w", err)
			}
			return doc, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}

func coerce(kind fieldKind, value string) (any, error) {
	switch kind {
	case kindInt:
		return cast.ToIntE(value)
	case kindFloat:
		return cast.ToFloat64E(value)
	default:
		return value, nil
	}
}
