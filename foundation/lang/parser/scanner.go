// File: scanner.go
// Title: Snowflake Scanner
// Description: Converts source text into raw tokens. Each newline yields one
//              indentation marker carrying the number of two-space groups
//              that follow it; other whitespace is skipped.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-14 v0.2.0: Snowflake lexical rules, indentation markers, iterators

package parser

import (
	"iter"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Scanner produces raw tokens from a source string. Its only state is the
// cursor; after a LexError it keeps returning that error token.
type Scanner struct {
	src    string
	offset int
	line   int
	column int
	failed *Token
}

// NewScanner creates a scanner positioned at the start of src
func NewScanner(src string) *Scanner {
	s := &Scanner{src: src}
	s.Reset()
	return s
}

// Reset moves the cursor back to the start of the source
func (s *Scanner) Reset() {
	s.offset = 0
	s.line = 1
	s.column = 1
	s.failed = nil
}

// All yields the tokens of the source from the start, up to and including
// EOF or the terminal error token. It does not move this scanner's cursor.
func (s *Scanner) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		sc := NewScanner(s.src)
		for {
			tok := sc.Next()
			if !yield(tok) || tok.Type == TokenEOF || tok.Type.IsError() {
				return
			}
		}
	}
}

// Tokenize scans src completely
func Tokenize(src string) []Token {
	return Collect(NewScanner(src))
}

// Next returns the next raw token
func (s *Scanner) Next() Token {
	if s.failed != nil {
		return *s.failed
	}

	s.skipWhitespace()
	start := s.pos()

	if s.offset >= len(s.src) {
		return Token{Type: TokenEOF, Pos: start, End: start}
	}

	c := s.src[s.offset]
	switch {
	case c == '\n':
		return s.scanIndentation(start)
	case isLetter(c):
		return s.scanIdentifier(start)
	case isDigit(c):
		return s.scanNumber(start)
	case c == '"':
		return s.scanString(start)
	}

	if tok, ok := s.scanFixedSymbol(start); ok {
		return tok
	}

	if isSymbolChar(c) {
		s.advance(1)
		return s.token(TokenSymbol, start, rune(c))
	}

	r, size := utf8.DecodeRuneInString(s.src[s.offset:])
	if r == utf8.RuneError && size <= 1 {
		return s.fail(start, utf8.RuneError, "invalid UTF-8 encoding")
	}
	s.advance(size)
	return s.token(TokenUnknown, start, r)
}

func (s *Scanner) pos() Position {
	return Position{Line: s.line, Column: s.column, Offset: s.offset}
}

// advance moves the cursor n bytes forward, tracking lines and columns
func (s *Scanner) advance(n int) {
	end := s.offset + n
	for s.offset < end {
		if s.src[s.offset] == '\n' {
			s.line++
			s.column = 1
			s.offset++
			continue
		}
		_, size := utf8.DecodeRuneInString(s.src[s.offset:end])
		s.offset += size
		s.column++
	}
}

func (s *Scanner) token(typ TokenType, start Position, value interface{}) Token {
	return Token{
		Type:  typ,
		Text:  s.src[start.Offset:s.offset],
		Value: value,
		Pos:   start,
		End:   s.pos(),
	}
}

func (s *Scanner) fail(start Position, char rune, reason string) Token {
	tok := Token{
		Type:  TokenLexError,
		Value: &LexError{Pos: start, Char: char, Reason: reason},
		Pos:   start,
		End:   start,
	}
	if start.Offset < len(s.src) {
		tok.Text = s.src[start.Offset:min(start.Offset+1, len(s.src))]
	}
	s.failed = &tok
	return tok
}

func (s *Scanner) skipWhitespace() {
	for s.offset < len(s.src) {
		switch s.src[s.offset] {
		case ' ', '\t', '\r', '\f', '\v':
			s.offset++
			s.column++
		default:
			return
		}
	}
}

// scanIndentation consumes "\n" and the two-space groups after it. The token
// starts at the newline; its depth counts complete groups only.
func (s *Scanner) scanIndentation(start Position) Token {
	s.advance(1)
	depth := 0
	for strings.HasPrefix(s.src[s.offset:], "  ") {
		s.advance(2)
		depth++
	}
	return s.token(TokenIndentation, start, depth)
}

func (s *Scanner) scanIdentifier(start Position) Token {
	end := s.offset + 1
	for end < len(s.src) && (isLetter(s.src[end]) || isDigit(s.src[end]) || s.src[end] == '_') {
		end++
	}
	s.advance(end - s.offset)
	text := s.src[start.Offset:s.offset]

	if kw, ok := keywords[text]; ok {
		return s.token(kw, start, nil)
	}
	return s.token(TokenIdentifier, start, text)
}

// scanNumber reads an integer "[0-9][0-9_]*" or, when the digits contain no
// underscore and a '.' plus digit follows, a float "[0-9]+\.[0-9]+".
func (s *Scanner) scanNumber(start Position) Token {
	end := s.offset
	for end < len(s.src) && (isDigit(s.src[end]) || s.src[end] == '_') {
		end++
	}
	digits := s.src[s.offset:end]

	if !strings.Contains(digits, "_") && end+1 < len(s.src) && s.src[end] == '.' && isDigit(s.src[end+1]) {
		end++
		for end < len(s.src) && isDigit(s.src[end]) {
			end++
		}
		text := s.src[s.offset:end]
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return s.fail(start, rune(text[0]), "float literal out of range: "+text)
		}
		s.advance(end - s.offset)
		return s.token(TokenFloat, start, value)
	}

	value, _ := new(big.Int).SetString(strings.ReplaceAll(digits, "_", ""), 10)
	s.advance(end - s.offset)
	return s.token(TokenInteger, start, value)
}

// scanString reads a double-quoted literal. There are no escapes; the
// contents may span lines.
func (s *Scanner) scanString(start Position) Token {
	closing := strings.IndexByte(s.src[s.offset+1:], '"')
	if closing < 0 {
		return s.fail(start, '"', "unterminated string literal")
	}
	contents := s.src[s.offset+1 : s.offset+1+closing]
	if !utf8.ValidString(contents) {
		return s.fail(start, utf8.RuneError, "invalid UTF-8 encoding in string literal")
	}
	s.advance(closing + 2)
	return s.token(TokenString, start, contents)
}

var fixedSymbols = []struct {
	text string
	typ  TokenType
}{
	{"::", TokenColonColon},
	{"..", TokenDotDot},
	{"**", TokenStarStar},
	{"=>", TokenLargeArrowRight},
	{"->", TokenSmallArrowRight},
	{"#{", TokenTagStart},
	{"=", TokenEqual},
}

func (s *Scanner) scanFixedSymbol(start Position) (Token, bool) {
	rest := s.src[s.offset:]
	for _, sym := range fixedSymbols {
		if strings.HasPrefix(rest, sym.text) {
			s.advance(len(sym.text))
			return s.token(sym.typ, start, nil), true
		}
	}
	return Token{}, false
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isSymbolChar matches the ASCII punctuation class [!-/:-@\[-`{-~]
func isSymbolChar(c byte) bool {
	return ('!' <= c && c <= '/') || (':' <= c && c <= '@') || ('[' <= c && c <= '`') || ('{' <= c && c <= '~')
}
