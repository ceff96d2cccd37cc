// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates the configuration file from the environment or the
//              default search paths and applies environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-14 v0.2.0: Fixed search order, SNOWFLAKE_* overrides

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Environment variables read by LoadFromEnv
const (
	EnvConfigPath   = "SNOWFLAKE_CONFIG"
	EnvLogLevel     = "SNOWFLAKE_LOG_LEVEL"
	EnvLogFormat    = "SNOWFLAKE_LOG_FORMAT"
	EnvOutputFormat = "SNOWFLAKE_OUTPUT"
)

// SearchPaths returns the files tried when SNOWFLAKE_CONFIG is not set
func SearchPaths() []string {
	paths := []string{"./snowflake.toml"}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "snowflake", "config.toml"))
	}
	return paths
}

// FindConfigFile returns the first existing file of SearchPaths, or ""
func FindConfigFile() string {
	for _, p := range SearchPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// LoadFromEnv loads the file named by SNOWFLAKE_CONFIG, else the first file of
// SearchPaths, else the defaults. Environment overrides are applied last.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		path = FindConfigFile()
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides configuration values from SNOWFLAKE_* variables
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutputFormat)); v != "" {
		c.Output.Format = v
	}
}
