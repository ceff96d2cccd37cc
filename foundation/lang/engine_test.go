// File: engine_test.go
// Title: Snowflake Engine Tests
// Description: Tests for parsing through the engine, coded error wrapping,
//              failure logging, token dumps and configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine tests
// - 2026-10-14 v0.2.0: Snowflake front end

package lang

import (
	"bytes"
	"sync"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sfconfig "github.com/msto63/snowflake/foundation/core/config"
	sferror "github.com/msto63/snowflake/foundation/core/error"
	sflog "github.com/msto63/snowflake/foundation/core/log"
	sfparser "github.com/msto63/snowflake/foundation/lang/parser"
)

var program = heredoc.Doc(`
	fib :: Int -> Int
	fib n => match n =>
	  0 => 0
	  1 => 1
	  _ => fib (n - 1) + fib (n - 2)

	main =>
	  println (fib 10)
`)

func newTestEngine(t *testing.T) (*Engine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := sflog.NewWithConfig(sflog.Config{Level: sflog.LevelWarn, Format: sflog.FormatLogfmt, Output: &buf})

	engine, err := NewEngine(Options{Logger: logger})
	require.NoError(t, err)
	return engine, &buf
}

func TestEngine_Parse(t *testing.T) {
	engine, logs := newTestEngine(t)

	prog, err := engine.Parse(program, "fib.sf")
	require.NoError(t, err)
	assert.Len(t, prog.Statements, 3)
	assert.Empty(t, logs.String())
}

func TestEngine_ParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   sferror.Code
		line   int
		column int
	}{
		{"Lexical", `main => "open`, sferror.CodeLexical, 1, 9},
		{"Indentation", "main =>\n    a\n  b", sferror.CodeIndentation, 3, 3},
		{"Syntax", "main => 1 +", sferror.CodeSyntax, 1, 12},
		{"Duplicate parameter", "f a a => a", sferror.CodeSyntax, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, logs := newTestEngine(t)

			prog, err := engine.Parse(tt.source, "bad.sf")
			require.Error(t, err)
			assert.Nil(t, prog)

			var sfErr *sferror.Error
			require.ErrorAs(t, err, &sfErr)
			assert.Equal(t, tt.code, sfErr.Code())
			assert.Equal(t, sferror.SeverityLow, sfErr.Severity())
			assert.Equal(t, "lang.Parse", sfErr.Operation())
			assert.Equal(t, "bad.sf", sfErr.Details()["source"])
			assert.Equal(t, tt.line, sfErr.Details()["line"])
			assert.Equal(t, tt.column, sfErr.Details()["column"])
			assert.Contains(t, err.Error(), "bad.sf:")

			var positioned sfparser.Positioned
			assert.ErrorAs(t, err, &positioned)

			pos, ok := PositionOf(err)
			assert.True(t, ok)
			assert.Equal(t, tt.line, pos.Line)

			assert.Contains(t, logs.String(), "snowflake front end failed")
			assert.Contains(t, logs.String(), string(tt.code))
		})
	}
}

func TestEngine_InputTooLarge(t *testing.T) {
	engine, err := NewEngine(Options{Logger: sflog.Discard(), MaxInputLength: 4})
	require.NoError(t, err)

	err = engine.Check("main => 1", "big.sf")
	require.Error(t, err)
	assert.True(t, sferror.HasCode(err, sferror.CodeInputTooLarge))

	_, ok := PositionOf(err)
	assert.False(t, ok)
}

func TestEngine_InvalidOptions(t *testing.T) {
	_, err := NewEngine(Options{MaxInputLength: -1})
	require.Error(t, err)
	assert.True(t, sferror.HasCode(err, sferror.CodeInvalidInput))
}

func TestEngine_Check(t *testing.T) {
	engine, _ := newTestEngine(t)
	assert.NoError(t, engine.Check(program, "fib.sf"))
	assert.NoError(t, engine.Check("", "empty.sf"))
	assert.Error(t, engine.Check("=>", "bad.sf"))
}

func TestEngine_Tokens(t *testing.T) {
	engine, _ := newTestEngine(t)

	raw, err := engine.Tokens("f =>\n  x", "t.sf", false)
	require.NoError(t, err)
	assert.Equal(t, sfparser.TokenIndentation, raw[2].Type)

	structural, err := engine.Tokens("f =>\n  x", "t.sf", true)
	require.NoError(t, err)
	types := make([]sfparser.TokenType, len(structural))
	for i, tok := range structural {
		types[i] = tok.Type
	}
	assert.Equal(t, []sfparser.TokenType{
		sfparser.TokenIdentifier, sfparser.TokenLargeArrowRight,
		sfparser.TokenIndent, sfparser.TokenIdentifier, sfparser.TokenDedent, sfparser.TokenEOF,
	}, types)
}

func TestEngine_TokensError(t *testing.T) {
	engine, _ := newTestEngine(t)

	tokens, err := engine.Tokens("a \xff", "t.sf", false)
	require.Error(t, err)
	assert.Len(t, tokens, 2)
	assert.True(t, sferror.HasCode(err, sferror.CodeLexical))
	assert.Contains(t, err.Error(), "t.sf:1:3: lexical error")

	_, err = engine.Tokens("a\n    b\n  c", "t.sf", true)
	require.Error(t, err)
	assert.True(t, sferror.HasCode(err, sferror.CodeIndentation))

	var sfErr *sferror.Error
	require.ErrorAs(t, err, &sfErr)
	assert.Equal(t, "lang.Tokens", sfErr.Operation())
}

func TestEngine_FromConfig(t *testing.T) {
	cfg, err := sfconfig.LoadFromString("[parser]\nmax_input_length = 3\n", sfconfig.FormatTOML)
	require.NoError(t, err)

	engine, err := NewEngineFromConfig(cfg, sflog.Discard())
	require.NoError(t, err)
	assert.True(t, sferror.HasCode(engine.Check("main => 1", "x.sf"), sferror.CodeInputTooLarge))

	engine, err = NewEngineFromConfig(nil, sflog.Discard())
	require.NoError(t, err)
	assert.NoError(t, engine.Check("main => 1", "x.sf"))
}

func TestEngine_ConcurrentUse(t *testing.T) {
	engine, err := NewEngine(Options{Logger: sflog.Discard()})
	require.NoError(t, err)

	expected, err := engine.Parse(program, "fib.sf")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prog, err := engine.Parse(program, "fib.sf")
			if assert.NoError(t, err) {
				assert.Equal(t, expected.String(), prog.String())
			}
		}()
	}
	wg.Wait()
}
