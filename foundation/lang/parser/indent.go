// File: indent.go
// Title: Indentation Normalizer
// Description: Replaces the scanner's raw indentation markers with Newline,
//              Indent and Dedent tokens using a stack of open block depths.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial normalizer

package parser

// Normalizer is a TokenSource over a raw token source. The stack starts at
// [0] and never becomes empty.
type Normalizer struct {
	src      TokenSource
	stack    []int
	pending  []Token
	terminal *Token
}

// NewNormalizer creates a normalizer reading raw tokens from src
func NewNormalizer(src TokenSource) *Normalizer {
	return &Normalizer{src: src, stack: []int{0}}
}

// Depth returns the depth of the innermost open block
func (n *Normalizer) Depth() int {
	return n.stack[len(n.stack)-1]
}

// Next implements TokenSource
func (n *Normalizer) Next() Token {
	if len(n.pending) > 0 {
		tok := n.pending[0]
		n.pending = n.pending[1:]
		return tok
	}
	if n.terminal != nil {
		return *n.terminal
	}

	tok := n.src.Next()
	switch tok.Type {
	case TokenIndentation:
		depth, _ := tok.Value.(int)
		n.marker(tok, depth)
	case TokenEOF:
		for len(n.stack) > 1 {
			n.stack = n.stack[:len(n.stack)-1]
			n.pending = append(n.pending, Token{Type: TokenDedent, Pos: tok.Pos, End: tok.Pos})
		}
		n.pending = append(n.pending, tok)
		n.terminal = &tok
	case TokenLexError, TokenIndentError:
		n.terminal = &tok
		return tok
	default:
		return tok
	}

	return n.Next()
}

// marker queues the structural tokens for one indentation marker. The tokens
// are positioned at the first character of the following line.
func (n *Normalizer) marker(tok Token, depth int) {
	structural := func(typ TokenType) Token {
		return Token{Type: typ, Text: tok.Text, Pos: tok.End, End: tok.End}
	}

	switch top := n.Depth(); {
	case depth == top:
		n.pending = append(n.pending, structural(TokenNewline))
	case depth > top:
		n.stack = append(n.stack, depth)
		n.pending = append(n.pending, structural(TokenIndent))
	default:
		for n.Depth() > depth {
			n.stack = n.stack[:len(n.stack)-1]
			n.pending = append(n.pending, structural(TokenDedent))
		}
		if n.Depth() != depth {
			errTok := Token{
				Type:  TokenIndentError,
				Text:  tok.Text,
				Value: &IndentationError{Pos: tok.End, Expected: n.Depth(), Found: depth},
				Pos:   tok.End,
				End:   tok.End,
			}
			n.pending = append(n.pending, errTok)
			n.terminal = &errTok
		}
	}
}

// Normalize runs tokens through a fresh normalizer. The result ends with EOF
// or with the error token, whose error is also returned.
func Normalize(tokens []Token) ([]Token, error) {
	out := Collect(NewNormalizer(NewSliceSource(tokens)))
	if last := out[len(out)-1]; last.Type.IsError() {
		if err, ok := last.Value.(error); ok {
			return out, err
		}
	}
	return out, nil
}
