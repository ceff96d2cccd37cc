// File: engine.go
// Title: Snowflake Front-End Engine
// Description: Provides a high-level interface that runs the scanner,
//              normalizer and parser for one compilation unit and reports
//              failures as coded errors. Callers supply text and a source
//              name; the engine does no file I/O.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial high-level engine implementation
// - 2026-10-14 v0.2.0: Snowflake front end with coded errors

// Package lang ties the snowflake front end together.
package lang

import (
	"errors"

	sfconfig "github.com/msto63/snowflake/foundation/core/config"
	sferror "github.com/msto63/snowflake/foundation/core/error"
	sflog "github.com/msto63/snowflake/foundation/core/log"
	sfast "github.com/msto63/snowflake/foundation/lang/ast"
	sfparser "github.com/msto63/snowflake/foundation/lang/parser"
)

// Engine parses snowflake sources. It is safe for concurrent use.
type Engine struct {
	logger  *sflog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	// Logger for engine and parser output (optional, defaults to the default logger)
	Logger *sflog.Logger

	// MaxInputLength limits the source size in bytes (0 means unlimited)
	MaxInputLength int

	// Trace logs every token the parser reads
	Trace bool
}

// NewEngine creates a new engine
func NewEngine(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = sflog.GetDefault()
	}

	if _, err := sfparser.New(sfparser.Options{MaxInputLength: opts.MaxInputLength}); err != nil {
		return nil, sferror.Wrap(err, "failed to initialize snowflake engine").WithOperation("lang.NewEngine")
	}

	return &Engine{
		logger:  opts.Logger.WithField("component", "snowflake-engine"),
		options: opts,
	}, nil
}

// NewEngineFromConfig creates an engine from the parser section of cfg
func NewEngineFromConfig(cfg *sfconfig.Config, logger *sflog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = sfconfig.Default()
	}
	return NewEngine(Options{
		Logger:         logger,
		MaxInputLength: cfg.Parser.MaxInputLength,
	})
}

// Parse parses and validates one compilation unit. name identifies the
// source in error messages.
func (e *Engine) Parse(src, name string) (*sfast.Program, error) {
	p, err := sfparser.New(sfparser.Options{
		Logger:         e.logger,
		MaxInputLength: e.options.MaxInputLength,
		Source:         name,
		Trace:          e.options.Trace,
	})
	if err != nil {
		return nil, e.fail(sferror.Wrap(err, "failed to create parser"), "lang.Parse", name)
	}

	prog, err := p.Parse(src)
	if err != nil {
		return nil, e.fail(sferror.Wrap(err, "parse failed"), "lang.Parse", name)
	}

	if errs := sfast.ValidateAST(prog); len(errs) > 0 {
		err := sferror.Wrap(errors.Join(errs...), "parser produced an invalid tree").
			WithCode(sferror.CodeInvalidAST).
			WithSeverity(sferror.SeverityCritical)
		return nil, e.fail(err, "lang.Parse", name)
	}

	return prog, nil
}

// Check reports whether src parses
func (e *Engine) Check(src, name string) error {
	_, err := e.Parse(src, name)
	return err
}

// Tokens scans src and returns its raw tokens, or the structural tokens when
// normalized is set. On a lexical or indentation error the tokens read so far
// are returned together with the error.
func (e *Engine) Tokens(src, name string, normalized bool) ([]sfparser.Token, error) {
	tokens := sfparser.Tokenize(src)

	var err error
	if normalized {
		tokens, err = sfparser.Normalize(tokens)
	} else if last := tokens[len(tokens)-1]; last.Type.IsError() {
		err, _ = last.Value.(error)
	}

	if err != nil {
		return tokens, e.fail(sferror.Wrap(withSource(err, name), "tokenization failed"), "lang.Tokens", name)
	}
	return tokens, nil
}

// fail annotates err with the source and its position and logs it
func (e *Engine) fail(err *sferror.Error, operation, name string) error {
	err = err.WithOperation(operation).WithDetail("source", name)

	var positioned sfparser.Positioned
	if errors.As(err, &positioned) && positioned.Position().IsValid() {
		err = err.WithDetails(map[string]interface{}{
			"line":   positioned.Position().Line,
			"column": positioned.Position().Column,
		})
	}

	e.logger.WarnWithErr("snowflake front end failed", err, sflog.Fields{
		"source": name,
		"code":   err.Code().String(),
	})
	return err
}

// withSource returns a copy of a scanner or normalizer error naming the source
func withSource(err error, name string) error {
	switch e := err.(type) {
	case *sfparser.LexError:
		c := *e
		c.Source = name
		return &c
	case *sfparser.IndentationError:
		c := *e
		c.Source = name
		return &c
	}
	return err
}

// PositionOf returns the source position of a front-end error anywhere in
// err's chain
func PositionOf(err error) (sfast.Position, bool) {
	var positioned sfparser.Positioned
	if errors.As(err, &positioned) {
		return positioned.Position(), positioned.Position().IsValid()
	}
	return sfast.Position{}, false
}
