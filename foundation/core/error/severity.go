// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors and the mapping from error
//              codes to their default severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial severity levels
// - 2026-10-14 v0.2.0: Severity mapping for front-end codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates an error in user input, e.g. malformed source text
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that stops the current operation
	SeverityMedium

	// SeverityHigh indicates a broken environment, e.g. unreadable configuration
	SeverityHigh

	// SeverityCritical indicates a bug in the toolchain itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeInvalidAST:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeIOError:
		return SeverityHigh
	case CodeLexical, CodeIndentation, CodeSyntax, CodeInputTooLarge,
		CodeInvalidInput, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
