// Package log provides structured logging for the snowflake toolchain.
//
// Package: log
// Title: snowflake Structured Logging Framework
// Description: This package implements a small structured logger with levels,
//              contextual fields, several output formats and operation timers.
//              It integrates with the coded errors of foundation/core/error so a
//              failed parse is logged with its code and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-14 v0.2.0: Deterministic field order, stderr default output, dropped async mode
//
// Features:
// - Structured logging with JSON, text, console and logfmt formats
// - Multiple log levels with filtering capabilities
// - Immutable contextual loggers (WithField, WithName, WithCorrelationID)
// - Integration with coded errors for automatic severity mapping
// - Performance timers for parse and scan operations
//
// Usage:
//   import sflog "github.com/msto63/snowflake/foundation/core/log"
//
//   logger := sflog.New().
//     WithLevel(sflog.LevelDebug).
//     WithFormat(sflog.FormatText).
//     WithField("component", "snowflake-parser")
//
//   logger.Debug("Starting parse", sflog.Fields{"source": "main.sf", "length": 120})
//
//   timer := logger.StartTimer("parse")
//   // ... parse
//   timer.Stop()
package log
