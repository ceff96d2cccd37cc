// File: config.go
// Title: Front-End Configuration
// Description: Defines the typed configuration of the snowflake tools and loads
//              it from TOML or YAML files. Missing values receive defaults.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Typed configuration replaces the generic key tree

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	sferror "github.com/msto63/snowflake/foundation/core/error"
)

// FileFormat represents the configuration file format
type FileFormat int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML FileFormat = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f FileFormat) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the complete front-end configuration
type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	// MaxInputLength is the largest accepted source in bytes; 0 means unlimited
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
}

// OutputConfig holds command-line output settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  *bool  `toml:"color" yaml:"color"`
}

// Defaults
const (
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "console"
	DefaultOutputFormat = "sexpr"
)

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a file, choosing TOML or YAML by extension
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, sferror.New("config file path cannot be empty").
			WithCode(sferror.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sferror.New(fmt.Sprintf("config file not found: %s", path)).
				WithCode(sferror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("filePath", path)
		}
		return nil, sferror.Wrap(err, "failed to read config file").
			WithCode(sferror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}

	cfg, err := parseContent(content, detectFormat(path))
	if err != nil {
		return nil, sferror.Wrap(err, "failed to parse config file").
			WithDetail("filePath", path)
	}
	return cfg, nil
}

// LoadFromString loads configuration from a string in the given format
func LoadFromString(content string, format FileFormat) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	return parseContent([]byte(content), format)
}

// detectFormat detects the configuration format from the file extension
func detectFormat(filePath string) FileFormat {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent decodes content strictly; unknown keys are configuration errors
func parseContent(content []byte, format FileFormat) (*Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(content), &cfg)
		if err != nil {
			return nil, sferror.Wrap(err, "TOML parse error").
				WithCode(sferror.CodeConfigError).
				WithOperation("config.parseContent")
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, sferror.New(fmt.Sprintf("unknown configuration key: %s", undecoded[0])).
				WithCode(sferror.CodeInvalidConfig).
				WithOperation("config.parseContent").
				WithDetail("key", undecoded[0].String())
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, sferror.Wrap(err, "YAML parse error").
				WithCode(sferror.CodeConfigError).
				WithOperation("config.parseContent")
		}
	default:
		return nil, sferror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(sferror.CodeInvalidConfig).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
}

// ColorEnabled reports whether styled output is requested
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// String returns a TOML rendering of the configuration
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return buf.String()
}
