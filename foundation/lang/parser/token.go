// File: token.go
// Title: Snowflake Tokens
// Description: Defines the token types shared by the scanner, the indentation
//              normalizer and the parser, and the pull-based TokenSource.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial token definitions
// - 2026-10-14 v0.2.0: Snowflake token set with structural tokens

package parser

import (
	"fmt"
	"math/big"
	"strconv"

	sfast "github.com/msto63/snowflake/foundation/lang/ast"
)

// Position is a source position (1-based line and column, 0-based offset)
type Position = sfast.Position

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Identifiers and literals
	TokenIdentifier // fib, main, x_1
	TokenInteger    // 42, 1_000
	TokenFloat      // 3.14
	TokenString     // "text"

	// Raw indentation marker, removed by the normalizer
	TokenIndentation // "\n" followed by N groups of two spaces

	// Keywords
	TokenMatch // match
	TokenLet   // let
	TokenIn    // in
	TokenTag   // tag

	// Fixed symbols
	TokenEqual           // =
	TokenColonColon      // ::
	TokenDotDot          // ..
	TokenStarStar        // **
	TokenLargeArrowRight // =>
	TokenSmallArrowRight // ->
	TokenTagStart        // #{

	// Single punctuation character, Value is the rune
	TokenSymbol

	// Character matching no rule, Value is the rune
	TokenUnknown

	// Terminal scan failure, Value is *LexError
	TokenLexError

	// Structural tokens produced by the normalizer
	TokenNewline
	TokenIndent
	TokenDedent

	// Terminal indentation failure, Value is *IndentationError
	TokenIndentError
)

var tokenTypeNames = [...]string{
	TokenEOF:             "EOF",
	TokenIdentifier:      "Identifier",
	TokenInteger:         "Integer",
	TokenFloat:           "Float",
	TokenString:          "String",
	TokenIndentation:     "Indentation",
	TokenMatch:           "Match",
	TokenLet:             "Let",
	TokenIn:              "In",
	TokenTag:             "Tag",
	TokenEqual:           "Equal",
	TokenColonColon:      "ColonColon",
	TokenDotDot:          "DotDot",
	TokenStarStar:        "StarStar",
	TokenLargeArrowRight: "LargeArrowRight",
	TokenSmallArrowRight: "SmallArrowRight",
	TokenTagStart:        "TagStart",
	TokenSymbol:          "Symbol",
	TokenUnknown:         "Unknown",
	TokenLexError:        "LexError",
	TokenNewline:         "Newline",
	TokenIndent:          "Indent",
	TokenDedent:          "Dedent",
	TokenIndentError:     "IndentError",
}

// String returns the name of the token type
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsError reports whether the type is a terminal error token
func (t TokenType) IsError() bool {
	return t == TokenLexError || t == TokenIndentError
}

// IsStructural reports whether the type is produced by the normalizer
func (t TokenType) IsStructural() bool {
	return t == TokenNewline || t == TokenIndent || t == TokenDedent
}

var keywords = map[string]TokenType{
	"match": TokenMatch,
	"let":   TokenLet,
	"in":    TokenIn,
	"tag":   TokenTag,
}

// Token is a lexical or structural token. Text is the raw lexeme as sliced from
// the source; Value carries the payload:
//
//	TokenIdentifier, TokenString   string
//	TokenInteger                   *big.Int
//	TokenFloat                     float64
//	TokenIndentation               int (depth in two-space groups)
//	TokenSymbol, TokenUnknown      rune
//	TokenLexError                  *LexError
//	TokenIndentError               *IndentationError
type Token struct {
	Type  TokenType
	Text  string
	Value interface{}
	Pos   Position // first character
	End   Position // just past the last character
}

// String returns a compact description used in diagnostics and dumps
func (t Token) String() string {
	switch t.Type {
	case TokenIdentifier:
		return fmt.Sprintf("Identifier(%s)", t.Value)
	case TokenInteger:
		if v, ok := t.Value.(*big.Int); ok {
			return "Integer(" + v.String() + ")"
		}
	case TokenFloat:
		if v, ok := t.Value.(float64); ok {
			return "Float(" + strconv.FormatFloat(v, 'g', -1, 64) + ")"
		}
	case TokenString:
		return fmt.Sprintf("String(%q)", t.Value)
	case TokenIndentation:
		return fmt.Sprintf("Indentation(%d)", t.Value)
	case TokenSymbol, TokenUnknown:
		if r, ok := t.Value.(rune); ok {
			return fmt.Sprintf("%s(%q)", t.Type, r)
		}
	case TokenLexError, TokenIndentError:
		if err, ok := t.Value.(error); ok {
			return fmt.Sprintf("%s(%s)", t.Type, err.Error())
		}
	}
	return t.Type.String()
}

// Describe returns the token as a user would recognise it in an error message
func (t Token) Describe() string {
	switch t.Type {
	case TokenEOF:
		return "end of input"
	case TokenNewline:
		return "newline"
	case TokenIndent:
		return "indented block"
	case TokenDedent:
		return "end of block"
	case TokenIdentifier:
		return fmt.Sprintf("identifier %q", t.Text)
	case TokenInteger, TokenFloat:
		return "number " + t.Text
	case TokenString:
		return "string " + t.Text
	default:
		if t.Text != "" {
			return fmt.Sprintf("%q", t.Text)
		}
		return t.Type.String()
	}
}

// IsSymbol reports whether the token is the single punctuation character r
func (t Token) IsSymbol(r rune) bool {
	if t.Type != TokenSymbol {
		return false
	}
	v, ok := t.Value.(rune)
	return ok && v == r
}

// TokenSource produces tokens on demand. After the final EOF or error token a
// source keeps returning that token.
type TokenSource interface {
	Next() Token
}

// SliceSource replays a fixed token slice, then repeats an EOF token
type SliceSource struct {
	tokens []Token
	index  int
}

// NewSliceSource creates a source over tokens
func NewSliceSource(tokens []Token) *SliceSource {
	return &SliceSource{tokens: tokens}
}

// Next implements TokenSource
func (s *SliceSource) Next() Token {
	if s.index < len(s.tokens) {
		tok := s.tokens[s.index]
		s.index++
		return tok
	}
	if n := len(s.tokens); n > 0 && (s.tokens[n-1].Type == TokenEOF || s.tokens[n-1].Type.IsError()) {
		return s.tokens[n-1]
	}
	return Token{Type: TokenEOF}
}

// Collect drains src up to and including the first EOF or error token
func Collect(src TokenSource) []Token {
	var out []Token
	for {
		tok := src.Next()
		out = append(out, tok)
		if tok.Type == TokenEOF || tok.Type.IsError() {
			return out
		}
	}
}
