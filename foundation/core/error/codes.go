// File: codes.go
// Title: Error Codes
// Description: Defines the structured error codes used across the snowflake
//              toolchain, their categories and the process exit code the CLI
//              reports for each category.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial code set
// - 2026-10-14 v0.2.0: Replaced service codes with front-end codes, added ExitCode

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Front end
	CodeLexical       Code = "LEX_ERROR"
	CodeIndentation   Code = "INDENTATION_ERROR"
	CodeSyntax        Code = "SYNTAX_ERROR"
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"
	CodeInvalidAST    Code = "INVALID_AST"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// I/O performed by the command-line tool
	CodeIOError Code = "IO_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexical, CodeIndentation, CodeSyntax, CodeInputTooLarge, CodeInvalidAST,
		CodeConfigError, CodeInvalidConfig,
		CodeIOError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeIndentation, CodeSyntax, CodeInputTooLarge, CodeInvalidAST:
		return "frontend"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeIOError, CodeNotFound:
		return "io"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this error code.
// Source errors exit with 1 so scripts can tell them apart from tool failures.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "frontend":
		return 1
	case "configuration":
		return 2
	case "io":
		return 3
	default:
		return 70
	}
}
