// File: indent_test.go
// Title: Indentation Normalizer Unit Tests
// Description: Tests for Newline/Indent/Dedent synthesis, stack balance,
//              inconsistent dedents and error pass-through.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial test suite

package parser

import (
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalized(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Normalize(Tokenize(src))
	require.NoError(t, err)
	return tokens
}

func countTypes(tokens []Token, typ TokenType) int {
	n := 0
	for _, tok := range tokens {
		if tok.Type == typ {
			n++
		}
	}
	return n
}

// marker builds a raw indentation token of the given depth
func marker(depth int) Token {
	return Token{Type: TokenIndentation, Text: "\n" + strings.Repeat("  ", depth), Value: depth}
}

func ident(name string) Token {
	return Token{Type: TokenIdentifier, Text: name, Value: name}
}

func TestNormalizer_Streams(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Flat lines",
			input:    "a\nb\nc",
			expected: []string{"Identifier(a)", "Newline", "Identifier(b)", "Newline", "Identifier(c)", "EOF"},
		},
		{
			name: "Block of two lines",
			input: heredoc.Doc(`
				f =>
				  a
				  b
				g`),
			expected: []string{
				"Identifier(f)", "LargeArrowRight",
				"Indent", "Identifier(a)", "Newline", "Identifier(b)", "Dedent",
				"Identifier(g)", "EOF",
			},
		},
		{
			name:     "Jump of several levels is one indent",
			input:    "a\n      b\nc",
			expected: []string{"Identifier(a)", "Indent", "Identifier(b)", "Dedent", "Identifier(c)", "EOF"},
		},
		{
			name:     "Dedent through several levels",
			input:    "a\n  b\n    c\nd",
			expected: []string{"Identifier(a)", "Indent", "Identifier(b)", "Indent", "Identifier(c)", "Dedent", "Dedent", "Identifier(d)", "EOF"},
		},
		{
			name:     "Partial dedent",
			input:    "a\n  b\n    c\n  d",
			expected: []string{"Identifier(a)", "Indent", "Identifier(b)", "Indent", "Identifier(c)", "Dedent", "Identifier(d)", "Dedent", "EOF"},
		},
		{
			name:     "Open blocks close at end of input",
			input:    "a\n  b\n    c",
			expected: []string{"Identifier(a)", "Indent", "Identifier(b)", "Indent", "Identifier(c)", "Dedent", "Dedent", "EOF"},
		},
		{
			name:     "Trailing newline",
			input:    "a\n  b\n",
			expected: []string{"Identifier(a)", "Indent", "Identifier(b)", "Dedent", "EOF"},
		},
		{
			name:     "Blank line inside a block keeps its markers",
			input:    "a\n  b\n  \n  c",
			expected: []string{"Identifier(a)", "Indent", "Identifier(b)", "Newline", "Newline", "Identifier(c)", "Dedent", "EOF"},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: []string{"EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenStrings(normalized(t, tt.input)))
		})
	}
}

func TestNormalizer_Balanced(t *testing.T) {
	sources := []string{
		fibSource,
		"a\n  b\n    c\n      d\n  e\n    f\ng",
		"a\n  b\n    c",
		"a\n\n  b\n\n",
		"x",
	}

	for _, src := range sources {
		tokens := normalized(t, src)
		assert.Equal(t, countTypes(tokens, TokenIndent), countTypes(tokens, TokenDedent), "source %q", src)
		assert.Equal(t, TokenEOF, tokens[len(tokens)-1].Type)
	}

	n := NewNormalizer(NewScanner("a\n  b\n    c\n"))
	Collect(n)
	assert.Equal(t, 0, n.Depth())
}

func TestNormalizer_FlatInputHasNoBlocks(t *testing.T) {
	sources := []string{
		"a\nb\nc",
		"a\n\n\nb",
		"fib n => n\nmain => fib 5\n",
		"",
	}

	for _, src := range sources {
		tokens := normalized(t, src)
		assert.Zero(t, countTypes(tokens, TokenIndent), "source %q", src)
		assert.Zero(t, countTypes(tokens, TokenDedent), "source %q", src)
		assert.Equal(t, strings.Count(src, "\n"), countTypes(tokens, TokenNewline), "source %q", src)
	}
}

func TestNormalizer_UntrackedDedent(t *testing.T) {
	// stack [0, 2], then a line at depth 1
	raw := []Token{ident("a"), marker(2), ident("b"), marker(1), ident("c"), {Type: TokenEOF}}

	tokens, err := Normalize(raw)
	require.Error(t, err)

	var indentErr *IndentationError
	require.ErrorAs(t, err, &indentErr)
	assert.Equal(t, 0, indentErr.Expected)
	assert.Equal(t, 1, indentErr.Found)

	assert.Equal(t, []TokenType{TokenIdentifier, TokenIndent, TokenIdentifier, TokenDedent, TokenIndentError}, tokenTypes(tokens))
}

func TestNormalizer_UntrackedDedentFromSource(t *testing.T) {
	src := heredoc.Doc(`
		a
		    b
		  c`)

	n := NewNormalizer(NewScanner(src))
	tokens := Collect(n)
	last := tokens[len(tokens)-1]
	require.Equal(t, TokenIndentError, last.Type)

	indentErr := last.Value.(*IndentationError)
	assert.Equal(t, Position{Line: 3, Column: 3, Offset: 10}, indentErr.Pos)
	assert.Equal(t, 0, indentErr.Expected)
	assert.Equal(t, 1, indentErr.Found)
	assert.Contains(t, indentErr.Error(), "3:3: inconsistent indentation: depth 1")

	// the normalizer stays on the error
	assert.Equal(t, last, n.Next())
	assert.Equal(t, last, n.Next())
}

func TestNormalizer_NestedUntrackedDedent(t *testing.T) {
	raw := []Token{ident("a"), marker(1), ident("b"), marker(3), ident("c"), marker(2), {Type: TokenEOF}}

	_, err := Normalize(raw)
	var indentErr *IndentationError
	require.ErrorAs(t, err, &indentErr)
	assert.Equal(t, 1, indentErr.Expected)
	assert.Equal(t, 2, indentErr.Found)
}

func TestNormalizer_LexErrorPassesThrough(t *testing.T) {
	n := NewNormalizer(NewScanner("a\n  \"open"))
	tokens := Collect(n)

	assert.Equal(t, []TokenType{TokenIdentifier, TokenIndent, TokenLexError}, tokenTypes(tokens))
	assert.Equal(t, TokenLexError, n.Next().Type)

	_, err := Normalize(Tokenize("a\n  \"open"))
	var lexErr *LexError
	assert.ErrorAs(t, err, &lexErr)
}

func TestNormalizer_Positions(t *testing.T) {
	tokens := normalized(t, "a\n  b\nc")
	require.Equal(t, []TokenType{TokenIdentifier, TokenIndent, TokenIdentifier, TokenDedent, TokenIdentifier, TokenEOF}, tokenTypes(tokens))

	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 4}, tokens[1].Pos)
	assert.Equal(t, Position{Line: 3, Column: 1, Offset: 6}, tokens[3].Pos)
}

func TestNormalizer_PassesOtherTokensUnchanged(t *testing.T) {
	raw := Tokenize(`f x => "s" + 1.5 :: #{a}`)
	tokens := normalized(t, `f x => "s" + 1.5 :: #{a}`)
	assert.Equal(t, raw, tokens)
}

func TestNormalizer_Depth(t *testing.T) {
	n := NewNormalizer(NewSliceSource([]Token{ident("a"), marker(2), ident("b"), marker(4), {Type: TokenEOF}}))
	assert.Equal(t, 0, n.Depth())

	n.Next() // a
	n.Next() // Indent
	assert.Equal(t, 2, n.Depth())
	n.Next() // b
	n.Next() // Indent
	assert.Equal(t, 4, n.Depth())

	assert.Equal(t, TokenDedent, n.Next().Type)
	assert.Equal(t, TokenDedent, n.Next().Type)
	assert.Equal(t, TokenEOF, n.Next().Type)
	assert.Equal(t, 0, n.Depth())
}

func tokenTypes(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func BenchmarkNormalizer_FibProgram(b *testing.B) {
	for i := 0; i < b.N; i++ {
		n := NewNormalizer(NewScanner(fibSource))
		for tok := n.Next(); tok.Type != TokenEOF; tok = n.Next() {
		}
	}
}
