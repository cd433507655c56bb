// Package config loads and resolves genq settings.
//
// Settings come from three places and merge under a fixed precedence,
// highest to lowest:
//
//  1. Command-line flags ([Overrides])
//  2. The YAML configuration file (see [Path])
//  3. Environment variables (credentials only: GEMINI_API_KEY,
//     OPENAI_API_KEY, ANTHROPIC_API_KEY)
//  4. Built-in defaults ([Default])
//
// A missing configuration file is not an error; [Load] returns the
// defaults. A malformed file is a *[ParseError]. The file is read once
// per invocation and never mutated at runtime; [Set] and [Write] exist
// only for the `genq config` subcommands.
package config
