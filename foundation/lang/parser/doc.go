// File: doc.go
// Title: Snowflake Parser Package Documentation
// Description: Implements the scanner, indentation normalizer and parser of
//              the snowflake front end.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-14 v0.2.0: Three-stage snowflake pipeline

/*
Package parser turns snowflake source text into an ast.Program.

The pipeline has three pull-based stages, each a TokenSource:

	Scanner     source text -> raw tokens, one Indentation marker per newline
	Normalizer  markers -> Newline, Indent and Dedent using a stack of depths
	Parser      structural tokens -> AST, recursive descent

Each stage asks its upstream for one token at a time, so memory use follows
the nesting depth rather than the input size. Nothing is shared between
parses; a Parser may be reused and called from several goroutines.

Indentation is counted in groups of two spaces. A block is opened by a line
deeper than the current one and closed by returning to an enclosing depth;
returning to a depth no enclosing block uses is an IndentationError.

	fib n =>
	  match n =>
	    0 => 0
	    1 => 1
	    _ => fib (n - 1) + fib (n - 2)

Errors are positioned and carry a code from foundation/core/error:

	*LexError          LEX_ERROR          no lexical rule matches
	*IndentationError  INDENTATION_ERROR  dedent to an untracked depth
	*ParseError        SYNTAX_ERROR       token does not fit the grammar

There is no recovery. The first error fails the parse and no partial tree
is returned.

Usage:

	p, err := parser.New(parser.Options{Source: "fib.sf"})
	if err != nil {
	    return err
	}
	prog, err := p.Parse(src)
*/
package parser
