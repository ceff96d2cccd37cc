// Package error provides structured, coded errors for the snowflake toolchain.
//
// Package: error
// Title: snowflake Error Handling Framework
// Description: This package implements a structured error type carrying an error
//              code, a severity, an operation name and free-form details. Positioned
//              front-end errors (lexical, indentation, syntax) are wrapped into it so
//              callers get one uniform error surface while the original positioned
//              error stays reachable through errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: Front-end codes, code adoption from wrapped causes, exit codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes shared by parser, config and CLI
// - Stack trace capture for debugging
// - Severity derived from the error code
// - Process exit codes per error category
//
// Usage:
//   import sferror "github.com/msto63/snowflake/foundation/core/error"
//
//   err := sferror.New("config file not found").
//     WithCode(sferror.CodeNotFound).
//     WithDetail("path", path)
//
//   // Wrapping a positioned parser error adopts its code
//   wrapped := sferror.Wrap(parseErr, "parse main.sf").WithOperation("lang.Parse")
//   if sferror.HasCode(wrapped, sferror.CodeSyntax) {
//     // report a syntax error
//   }
package error
