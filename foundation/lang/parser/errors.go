// File: errors.go
// Title: Snowflake Front-End Errors
// Description: Defines the positioned lexical, indentation and parse errors.
//              Each reports its error code and formats as source:line:col.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: ParseError with position information
// - 2026-10-14 v0.2.0: Lexical and indentation errors, error kinds and codes

package parser

import (
	"fmt"

	sferror "github.com/msto63/snowflake/foundation/core/error"
)

// LexError is a scan failure. Char is the offending character, or
// utf8.RuneError for invalid encodings.
type LexError struct {
	Pos    Position
	Char   rune
	Reason string
	Source string
}

// Error implements the error interface
func (e *LexError) Error() string {
	return locate(e.Source, e.Pos) + "lexical error: " + e.Reason
}

// Code implements sferror.Coder
func (e *LexError) Code() sferror.Code { return sferror.CodeLexical }

// Position returns where the failure starts
func (e *LexError) Position() Position { return e.Pos }

// IndentationError is a dedent to a depth that no enclosing block uses
type IndentationError struct {
	Pos      Position
	Expected int // depth of the innermost enclosing block after popping
	Found    int
	Source   string
}

// Error implements the error interface
func (e *IndentationError) Error() string {
	return locate(e.Source, e.Pos) + fmt.Sprintf(
		"inconsistent indentation: depth %d does not match any enclosing block (nearest is %d)",
		e.Found, e.Expected)
}

// Code implements sferror.Coder
func (e *IndentationError) Code() sferror.Code { return sferror.CodeIndentation }

// Position returns the position of the offending line
func (e *IndentationError) Position() Position { return e.Pos }

// ErrorKind classifies parse errors
type ErrorKind int

const (
	// UnexpectedToken means the token does not fit the current production
	UnexpectedToken ErrorKind = iota

	// UnexpectedEOF means the input ended inside a construct
	UnexpectedEOF

	// DuplicateParameter means a function names the same parameter twice
	DuplicateParameter

	// InputTooLarge means the source exceeds the configured limit
	InputTooLarge
)

// String returns the string representation of the kind
func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnexpectedEOF:
		return "unexpected end of input"
	case DuplicateParameter:
		return "duplicate parameter"
	case InputTooLarge:
		return "input too large"
	default:
		return "unknown"
	}
}

// ParseError is a grammar violation. Expected names the construct the parser
// was looking for; Found is the token it saw instead.
type ParseError struct {
	Kind     ErrorKind
	Pos      Position
	Found    Token
	Expected string
	Message  string // overrides the generated message when set
	Source   string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return locate(e.Source, e.Pos) + e.message()
}

func (e *ParseError) message() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case UnexpectedEOF:
		if e.Expected != "" {
			return "unexpected end of input, expected " + e.Expected
		}
		return "unexpected end of input"
	default:
		if e.Expected != "" {
			return fmt.Sprintf("unexpected %s, expected %s", e.Found.Describe(), e.Expected)
		}
		return "unexpected " + e.Found.Describe()
	}
}

// Code implements sferror.Coder
func (e *ParseError) Code() sferror.Code {
	if e.Kind == InputTooLarge {
		return sferror.CodeInputTooLarge
	}
	return sferror.CodeSyntax
}

// Position returns where the error was detected
func (e *ParseError) Position() Position { return e.Pos }

// Positioned is implemented by all front-end errors
type Positioned interface {
	error
	Position() Position
}

// locate renders the "source:line:col: " prefix
func locate(source string, pos Position) string {
	switch {
	case source != "" && pos.IsValid():
		return fmt.Sprintf("%s:%d:%d: ", source, pos.Line, pos.Column)
	case source != "":
		return source + ": "
	case pos.IsValid():
		return fmt.Sprintf("%d:%d: ", pos.Line, pos.Column)
	default:
		return ""
	}
}
