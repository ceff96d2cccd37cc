// File: config_test.go
// Title: Configuration Tests
// Description: Tests for TOML/YAML loading, defaults, environment overrides,
//              discovery and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-14 v0.2.0: Tests for the typed configuration

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sferror "github.com/msto63/snowflake/foundation/core/error"
	sflog "github.com/msto63/snowflake/foundation/core/log"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "snowflake.toml",
			content: heredoc.Doc(`
				[log]
				level = "debug"
				format = "json"

				[parser]
				max_input_length = 4096

				[output]
				format = "tree"
				color = false
			`),
		},
		{
			name: "yaml",
			file: "snowflake.yaml",
			content: heredoc.Doc(`
				log:
				  level: debug
				  format: json
				parser:
				  max_input_length: 4096
				output:
				  format: tree
				  color: false
			`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, dir, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, "debug", cfg.Log.Level)
			assert.Equal(t, "json", cfg.Log.Format)
			assert.Equal(t, 4096, cfg.Parser.MaxInputLength)
			assert.Equal(t, "tree", cfg.Output.Format)
			assert.False(t, cfg.ColorEnabled())
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFromString("[parser]\nmax_input_length = 10\n", FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
	assert.True(t, cfg.ColorEnabled())
	assert.Equal(t, 10, cfg.Parser.MaxInputLength)

	empty, err := LoadFromString("", FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), empty)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		path     string
		wantCode sferror.Code
	}{
		{"empty path", "  ", sferror.CodeInvalidConfig},
		{"missing file", filepath.Join(dir, "absent.toml"), sferror.CodeNotFound},
		{"broken toml", writeFile(t, dir, "broken.toml", "[log\n"), sferror.CodeConfigError},
		{"broken yaml", writeFile(t, dir, "broken.yml", "log: [\n"), sferror.CodeConfigError},
		{"unknown toml key", writeFile(t, dir, "extra.toml", "[log]\nlevl = \"x\"\n"), sferror.CodeInvalidConfig},
		{"unknown yaml key", writeFile(t, dir, "extra.yaml", "output:\n  colour: true\n"), sferror.CodeConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, sferror.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.Parser.MaxInputLength = -1
	cfg.Output.Format = "dot"

	result := cfg.Check()
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 4)

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, sferror.HasCode(err, sferror.CodeInvalidConfig))
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "output.format")
}

func TestLoggerConfig(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "trace"
	cfg.Log.Format = "logfmt"

	lc := cfg.LoggerConfig()
	assert.Equal(t, sflog.LevelTrace, lc.Level)
	assert.Equal(t, sflog.FormatLogfmt, lc.Format)

	cfg.Log.Level = "bogus"
	assert.Equal(t, sflog.DefaultLevel(), cfg.LoggerConfig().Level)
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", "[output]\nformat = \"json\"\n")

	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogFormat, "")
	t.Setenv(EnvOutputFormat, "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)

	t.Setenv(EnvOutputFormat, "yaml")
	cfg, err = LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoadFromEnv_MissingExplicitFile(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "nope.toml"))

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Equal(t, sferror.CodeNotFound, sferror.GetCode(err))
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
	t.Setenv(EnvOutputFormat, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv_WorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "snowflake.toml", "[log]\nlevel = \"trace\"\n")

	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(dir)

	assert.Equal(t, "./snowflake.toml", FindConfigFile())
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Log.Level)
}

func TestFileFormat_String(t *testing.T) {
	assert.Equal(t, "toml", FormatTOML.String())
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "auto", FormatAuto.String())
	assert.Equal(t, "unknown", FileFormat(9).String())
	assert.Equal(t, FormatYAML, detectFormat("a/b.YML"))
	assert.Equal(t, FormatTOML, detectFormat("a/b.conf"))
}

func TestConfig_String(t *testing.T) {
	out := Default().String()
	assert.Contains(t, out, "[log]")
	assert.Contains(t, out, `level = "warn"`)
}
