// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config provides the typed configuration of the snowflake
//              tools, loaded from TOML or YAML with environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Typed configuration for the language front end

/*
Package config provides the configuration of the snowflake command-line tool.

A configuration file has three sections:

	[log]
	level = "debug"      # trace, debug, info, warn, error
	format = "console"   # json, text, console, logfmt

	[parser]
	max_input_length = 1048576   # bytes, 0 = unlimited

	[output]
	format = "sexpr"     # sexpr, tree, json, yaml
	color = true

The same keys are accepted in YAML when the file ends in .yaml or .yml.
Unknown keys are rejected.

# Loading

	cfg, err := sfconfig.LoadFromEnv()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := sflog.NewWithConfig(cfg.LoggerConfig())

LoadFromEnv reads the file named by SNOWFLAKE_CONFIG, then ./snowflake.toml,
then ~/.config/snowflake/config.toml. When no file exists the defaults are used.
SNOWFLAKE_LOG_LEVEL, SNOWFLAKE_LOG_FORMAT and SNOWFLAKE_OUTPUT override the
corresponding values.

Errors are *sferror.Error values with CodeNotFound, CodeConfigError or
CodeInvalidConfig.
*/
package config
