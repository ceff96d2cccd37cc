// File: validation.go
// Title: Configuration Validation
// Description: Validates configuration values and converts the logging section
//              into logger settings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-14 v0.2.0: Fixed rule set for the typed configuration

package config

import (
	"fmt"
	"strings"

	sferror "github.com/msto63/snowflake/foundation/core/error"
	sflog "github.com/msto63/snowflake/foundation/core/log"
)

// OutputFormats lists the accepted values of output.format
var OutputFormats = []string{"sexpr", "tree", "json", "yaml"}

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Check validates every field and collects all failures
func (c *Config) Check() *ValidationResult {
	result := &ValidationResult{Valid: true}

	fail := func(format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	if _, err := sflog.ParseLevel(c.Log.Level); err != nil {
		fail("log.level: unknown level %q", c.Log.Level)
	}
	if _, err := sflog.ParseFormat(c.Log.Format); err != nil {
		fail("log.format: unknown format %q", c.Log.Format)
	}
	if c.Parser.MaxInputLength < 0 {
		fail("parser.max_input_length: must not be negative, got %d", c.Parser.MaxInputLength)
	}
	if !isOutputFormat(c.Output.Format) {
		fail("output.format: unknown format %q (want one of %s)", c.Output.Format, strings.Join(OutputFormats, ", "))
	}

	return result
}

// Validate returns an INVALID_CONFIG error describing every failed field
func (c *Config) Validate() error {
	result := c.Check()
	if result.Valid {
		return nil
	}
	return sferror.New("invalid configuration: "+strings.Join(result.Errors, "; ")).
		WithCode(sferror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", result.Errors)
}

// LoggerConfig converts the log section into logger settings. Unknown values
// fall back to the logger defaults; call Validate first to reject them.
func (c *Config) LoggerConfig() sflog.Config {
	level, err := sflog.ParseLevel(c.Log.Level)
	if err != nil {
		level = sflog.DefaultLevel()
	}
	format, err := sflog.ParseFormat(c.Log.Format)
	if err != nil {
		format = sflog.FormatConsole
	}
	return sflog.Config{Level: level, Format: format, Name: "snowflake"}
}

func isOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}
