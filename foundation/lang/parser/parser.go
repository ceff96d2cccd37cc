// File: parser.go
// Title: Snowflake Recursive Descent Parser
// Description: Implements the parsing phase of the snowflake front end.
//              Pulls structural tokens from the normalizer and builds the
//              program AST with recursive descent and precedence climbing.
//              The first error aborts the parse.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-14 v0.2.0: Snowflake grammar, per-parse state, positioned errors

package parser

import (
	"fmt"
	"math/big"

	sferror "github.com/msto63/snowflake/foundation/core/error"
	sflog "github.com/msto63/snowflake/foundation/core/log"
	sfast "github.com/msto63/snowflake/foundation/lang/ast"
)

// Parser turns snowflake source into a Program. A Parser holds only its
// options; every call to Parse uses fresh state, so one Parser may be shared.
type Parser struct {
	logger  *sflog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *sflog.Logger
	MaxInputLength int    // in bytes, 0 means unlimited
	Source         string // name used in error messages, e.g. a file path
	Trace          bool   // log every token at trace level
}

// New creates a new snowflake parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.MaxInputLength < 0 {
		return nil, sferror.New(fmt.Sprintf("max input length must not be negative, got %d", opts.MaxInputLength)).
			WithCode(sferror.CodeInvalidInput).
			WithOperation("parser.New")
	}
	if opts.Logger == nil {
		opts.Logger = sflog.Discard()
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "snowflake-parser"),
		options: opts,
	}, nil
}

// Parse parses a complete compilation unit
func (p *Parser) Parse(src string) (*sfast.Program, error) {
	if limit := p.options.MaxInputLength; limit > 0 && len(src) > limit {
		return nil, &ParseError{
			Kind:    InputTooLarge,
			Message: fmt.Sprintf("input exceeds maximum length: %d > %d", len(src), limit),
			Source:  p.options.Source,
		}
	}

	timer := p.logger.StartTimer("parse").WithFields(sflog.Fields{
		"source": p.options.Source,
		"length": len(src),
	})

	prog, err := p.run(NewNormalizer(NewScanner(src)))
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.WithField("statements", len(prog.Statements)).Stop()
	return prog, nil
}

// ParseTokens parses a pre-built structural token stream, such as one
// produced by a Normalizer
func (p *Parser) ParseTokens(src TokenSource) (*sfast.Program, error) {
	return p.run(src)
}

func (p *Parser) run(src TokenSource) (*sfast.Program, error) {
	st := &state{parser: p, src: src, trace: p.options.Trace && p.logger.IsLevelEnabled(sflog.LevelTrace)}
	return st.parseProgram()
}

// Parse parses src with default options
func Parse(src string) (*sfast.Program, error) {
	p, err := New(Options{})
	if err != nil {
		return nil, err
	}
	return p.Parse(src)
}

// state is the cursor of a single parse. The lookahead buffer holds only the
// few tokens needed to tell patterns from expressions.
type state struct {
	parser   *Parser
	src      TokenSource
	buf      []Token
	previous Token
	trace    bool
}

// peek returns the token k positions ahead without consuming it
func (s *state) peek(k int) Token {
	for len(s.buf) <= k {
		tok := s.src.Next()
		if s.trace {
			s.parser.logger.Trace("token", sflog.Fields{"token": tok.String(), "pos": tok.Pos.String()})
		}
		s.buf = append(s.buf, tok)
	}
	return s.buf[k]
}

func (s *state) current() Token { return s.peek(0) }

// advance consumes and returns the current token
func (s *state) advance() Token {
	tok := s.peek(0)
	s.buf = s.buf[1:]
	s.previous = tok
	return tok
}

func (s *state) expect(typ TokenType, expected string) (Token, error) {
	if tok := s.current(); tok.Type != typ {
		return tok, s.unexpected(tok, expected)
	}
	return s.advance(), nil
}

func (s *state) expectSymbol(r rune, expected string) (Token, error) {
	if tok := s.current(); !tok.IsSymbol(r) {
		return tok, s.unexpected(tok, expected)
	}
	return s.advance(), nil
}

// blankRunLength returns the length of a run of Indent, Newline and Dedent
// tokens starting k tokens ahead that opens and closes without content, or
// 0. Such runs come from whitespace-only lines deeper than the current block.
func (s *state) blankRunLength(k int) int {
	if s.peek(k).Type != TokenIndent {
		return 0
	}
	n := 1
	for {
		switch s.peek(k + n).Type {
		case TokenNewline:
			n++
		case TokenDedent:
			return n + 1
		default:
			inner := s.blankRunLength(k + n)
			if inner == 0 {
				return 0
			}
			n += inner
		}
	}
}

// blankLine consumes one newline, or one blank indented run, and reports
// whether it did
func (s *state) blankLine() bool {
	if s.current().Type == TokenNewline {
		s.advance()
		return true
	}
	n := s.blankRunLength(0)
	for i := 0; i < n; i++ {
		s.advance()
	}
	return n > 0
}

// unexpected builds the error for tok. Error tokens surface the lexical or
// indentation error they carry instead.
func (s *state) unexpected(tok Token, expected string) error {
	source := s.parser.options.Source
	switch v := tok.Value.(type) {
	case *LexError:
		e := *v
		e.Source = source
		return &e
	case *IndentationError:
		e := *v
		e.Source = source
		return &e
	}

	kind := UnexpectedToken
	if tok.Type == TokenEOF {
		kind = UnexpectedEOF
	}
	return &ParseError{Kind: kind, Pos: tok.Pos, Found: tok, Expected: expected, Source: source}
}

// continues reports whether another item of the current sequence follows.
// Items are separated by blank lines, or follow directly after a nested
// block has closed.
func (s *state) continues(close TokenType, expected string) (bool, error) {
	separated := s.previous.Type == TokenDedent
	for s.blankLine() {
		separated = true
	}

	switch tok := s.current(); {
	case tok.Type == close:
		return false, nil
	case separated:
		return true, nil
	default:
		return false, s.unexpected(tok, expected)
	}
}

// Statements

func (s *state) parseProgram() (*sfast.Program, error) {
	prog := &sfast.Program{Pos: s.current().Pos}
	for s.blankLine() {
	}

	for s.current().Type != TokenEOF {
		stmt, err := s.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)

		if _, err := s.continues(TokenEOF, "newline or end of input"); err != nil {
			return nil, err
		}
	}

	if prog.Statements == nil {
		prog.Statements = []sfast.Statement{}
	}
	return prog, nil
}

func (s *state) parseStatement() (sfast.Statement, error) {
	// a Dedent directly followed by an Indent comes from an empty line
	// inside a block
	if tok := s.current(); tok.Type == TokenIndent && s.previous.Type == TokenDedent {
		return nil, &ParseError{
			Kind:     UnexpectedToken,
			Pos:      tok.Pos,
			Found:    tok,
			Expected: "function or type declaration",
			Message:  "unexpected indented block: an empty line without indentation closes the enclosing block",
			Source:   s.parser.options.Source,
		}
	}

	name, err := s.expect(TokenIdentifier, "function or type declaration")
	if err != nil {
		return nil, err
	}

	if s.current().Type == TokenColonColon {
		s.advance()
		typ, err := s.parseType()
		if err != nil {
			return nil, err
		}
		return &sfast.TypeDecl{Name: name.Text, Type: typ, Pos: name.Pos}, nil
	}

	args := []string{}
	seen := map[string]bool{}
	for s.current().Type == TokenIdentifier {
		arg := s.advance()
		if seen[arg.Text] {
			return nil, &ParseError{
				Kind:    DuplicateParameter,
				Pos:     arg.Pos,
				Found:   arg,
				Message: fmt.Sprintf("duplicate parameter %q in function %q", arg.Text, name.Text),
				Source:  s.parser.options.Source,
			}
		}
		seen[arg.Text] = true
		args = append(args, arg.Text)
	}

	if _, err := s.expect(TokenLargeArrowRight, `parameter, "::" or "=>"`); err != nil {
		return nil, err
	}

	body, err := s.parseBody()
	if err != nil {
		return nil, err
	}
	return &sfast.FnDecl{Name: name.Text, Args: args, Body: body, Pos: name.Pos}, nil
}

// parseBody parses an indented block or a single inline expression
func (s *state) parseBody() ([]sfast.Expression, error) {
	if s.current().Type == TokenIndent {
		return s.parseBlock()
	}
	expr, err := s.parseExpr()
	if err != nil {
		return nil, err
	}
	return []sfast.Expression{expr}, nil
}

func (s *state) parseBlock() ([]sfast.Expression, error) {
	if _, err := s.expect(TokenIndent, "indented block"); err != nil {
		return nil, err
	}

	var body []sfast.Expression
	for {
		expr, err := s.parseExprStmt()
		if err != nil {
			return nil, err
		}
		body = append(body, expr)

		more, err := s.continues(TokenDedent, "newline or end of block")
		if err != nil {
			return nil, err
		}
		if !more {
			s.advance()
			return body, nil
		}
	}
}

// parseExprStmt parses one entry of a block. A pattern directly followed by
// an indented block is a destructure; a pattern followed by "=" is a value
// assignment.
func (s *state) parseExprStmt() (sfast.Expression, error) {
	if n := s.patternLength(0); n > 0 {
		switch s.peek(n).Type {
		case TokenIndent:
			if s.blankRunLength(n) == 0 {
				return s.parseDestructure()
			}
		case TokenEqual:
			return s.parseValueAssign()
		}
	}
	return s.parseExpr()
}

func (s *state) parseDestructure() (sfast.Expression, error) {
	pattern, err := s.parsePattern()
	if err != nil {
		return nil, err
	}
	body, err := s.parseBlock()
	if err != nil {
		return nil, err
	}
	return &sfast.DestructureExpr{Pattern: pattern, Body: body, Pos: pattern.Position()}, nil
}

func (s *state) parseValueAssign() (*sfast.ValueAssignExpr, error) {
	pattern, err := s.parsePattern()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenEqual, `"="`); err != nil {
		return nil, err
	}
	value, err := s.parseExpr()
	if err != nil {
		return nil, err
	}
	return &sfast.ValueAssignExpr{Pattern: pattern, Value: value, Pos: pattern.Position()}, nil
}

// Expressions

func (s *state) parseExpr() (sfast.Expression, error) {
	switch s.current().Type {
	case TokenLet:
		return s.parseValueDecl()
	case TokenMatch:
		return s.parseMatch()
	case TokenTag, TokenTagStart:
		return s.parseTagAssign()
	}
	return s.parseAscription()
}

func (s *state) parseValueDecl() (sfast.Expression, error) {
	let := s.advance()
	decl := &sfast.ValueDeclExpr{Pos: let.Pos}

	if s.current().Type == TokenIndent {
		s.advance()
		for {
			assign, err := s.parseValueAssign()
			if err != nil {
				return nil, err
			}
			decl.Assigns = append(decl.Assigns, assign)

			more, err := s.continues(TokenDedent, "newline or end of block")
			if err != nil {
				return nil, err
			}
			if !more {
				s.advance()
				break
			}
		}
	} else {
		for {
			assign, err := s.parseValueAssign()
			if err != nil {
				return nil, err
			}
			decl.Assigns = append(decl.Assigns, assign)

			if !s.current().IsSymbol(',') {
				break
			}
			s.advance()
		}
	}

	if s.current().Type == TokenNewline && s.peek(1).Type == TokenIn {
		s.advance()
	}
	if s.current().Type == TokenIn {
		s.advance()
		body, err := s.parseBody()
		if err != nil {
			return nil, err
		}
		decl.Body = body
	}
	return decl, nil
}

func (s *state) parseMatch() (sfast.Expression, error) {
	start := s.advance()

	scrutinee, err := s.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenLargeArrowRight, `"=>"`); err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenIndent, "indented match arms"); err != nil {
		return nil, err
	}

	match := &sfast.MatchExpr{Scrutinee: scrutinee, Pos: start.Pos}
	for {
		arm, err := s.parseArm()
		if err != nil {
			return nil, err
		}
		match.Arms = append(match.Arms, arm)

		more, err := s.continues(TokenDedent, "newline or end of match")
		if err != nil {
			return nil, err
		}
		if !more {
			s.advance()
			return match, nil
		}
	}
}

func (s *state) parseArm() (*sfast.MatchArm, error) {
	pattern, err := s.parsePattern()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenLargeArrowRight, `"=>"`); err != nil {
		return nil, err
	}
	body, err := s.parseBody()
	if err != nil {
		return nil, err
	}
	return &sfast.MatchArm{Pattern: pattern, Body: body, Pos: pattern.Position()}, nil
}

func (s *state) parseTagAssign() (sfast.Expression, error) {
	target, err := s.parseTag()
	if err != nil {
		return nil, err
	}
	if _, err := s.expect(TokenEqual, `"="`); err != nil {
		return nil, err
	}
	source, err := s.parseTag()
	if err != nil {
		return nil, err
	}
	return &sfast.TagAssignExpr{Target: target, Source: source, Pos: target.Position()}, nil
}

func (s *state) parseAscription() (sfast.Expression, error) {
	expr, err := s.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if s.current().Type != TokenColonColon {
		return expr, nil
	}
	s.advance()
	typ, err := s.parseType()
	if err != nil {
		return nil, err
	}
	return &sfast.TypeDeclExpr{Type: typ, Expr: expr, Pos: expr.Position()}, nil
}

const powerPrecedence = 4

// binaryOperator returns the operator and precedence of tok, if it is one
func binaryOperator(tok Token) (sfast.OpSymbol, int, bool) {
	if tok.Type == TokenStarStar {
		return sfast.Circumflex, powerPrecedence, true
	}
	if tok.Type != TokenSymbol {
		return 0, 0, false
	}
	switch tok.Value {
	case '<':
		return sfast.LAngleBracket, 1, true
	case '>':
		return sfast.RAngleBracket, 1, true
	case '+':
		return sfast.Plus, 2, true
	case '-':
		return sfast.Minus, 2, true
	case '*':
		return sfast.Star, 3, true
	case '/':
		return sfast.ForwardSlash, 3, true
	case '^':
		return sfast.Circumflex, powerPrecedence, true
	}
	return 0, 0, false
}

// parseBinary implements precedence climbing. Only "^" is right associative.
func (s *state) parseBinary(minPrec int) (sfast.Expression, error) {
	left, err := s.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op, prec, ok := binaryOperator(s.current())
		if !ok || prec < minPrec {
			return left, nil
		}
		s.advance()

		next := prec + 1
		if op == sfast.Circumflex {
			next = prec
		}
		right, err := s.parseBinary(next)
		if err != nil {
			return nil, err
		}
		left = &sfast.OpCallExpr{Op: op, Args: []sfast.Expression{left, right}, Pos: left.Position()}
	}
}

// parseUnary handles prefix minus, which binds looser than "^": -x^2 is -(x^2)
func (s *state) parseUnary() (sfast.Expression, error) {
	if !s.current().IsSymbol('-') {
		return s.parseCall()
	}
	minus := s.advance()
	operand, err := s.parseBinary(powerPrecedence)
	if err != nil {
		return nil, err
	}
	return &sfast.OpCallExpr{Op: sfast.Minus, Args: []sfast.Expression{operand}, Pos: minus.Pos}, nil
}

func startsAtom(tok Token) bool {
	switch tok.Type {
	case TokenIdentifier, TokenInteger, TokenFloat, TokenString:
		return true
	}
	return tok.IsSymbol('(') || tok.IsSymbol('[')
}

// parseCall parses juxtaposition: an identifier followed by atoms is a call.
// "f ()" calls f without arguments.
func (s *state) parseCall() (sfast.Expression, error) {
	if s.current().Type != TokenIdentifier {
		return s.parseAtom()
	}

	if s.peek(1).IsSymbol('(') && s.peek(2).IsSymbol(')') {
		name := s.advance()
		s.advance()
		s.advance()
		return &sfast.FnCallExpr{Name: name.Text, Args: []sfast.Expression{}, Pos: name.Pos}, nil
	}

	if !startsAtom(s.peek(1)) {
		return s.parseAtom()
	}

	name := s.advance()
	call := &sfast.FnCallExpr{Name: name.Text, Pos: name.Pos}
	for startsAtom(s.current()) {
		arg, err := s.parseAtom()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
	}
	return call, nil
}

func (s *state) parseAtom() (sfast.Expression, error) {
	tok := s.current()
	switch tok.Type {
	case TokenIdentifier:
		s.advance()
		return &sfast.IdentifierExpr{Name: tok.Text, Pos: tok.Pos}, nil
	case TokenInteger:
		s.advance()
		value, _ := tok.Value.(*big.Int)
		return &sfast.IntegerExpr{Value: value, Pos: tok.Pos}, nil
	case TokenFloat:
		s.advance()
		value, _ := tok.Value.(float64)
		return &sfast.FloatExpr{Value: value, Pos: tok.Pos}, nil
	case TokenString:
		s.advance()
		value, _ := tok.Value.(string)
		return &sfast.StringLiteralExpr{Value: value, Pos: tok.Pos}, nil
	}

	switch {
	case tok.IsSymbol('('):
		s.advance()
		expr, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := s.expectSymbol(')', `")"`); err != nil {
			return nil, err
		}
		return expr, nil
	case tok.IsSymbol('['):
		return s.parseList()
	}

	return nil, s.unexpected(tok, "expression")
}

func (s *state) parseList() (sfast.Expression, error) {
	open := s.advance()
	list := &sfast.ListExpr{Elements: []sfast.Expression{}, Pos: open.Pos}

	if s.current().IsSymbol(']') {
		s.advance()
		return list, nil
	}

	for {
		elem, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, elem)

		if !s.current().IsSymbol(',') {
			break
		}
		s.advance()
	}

	if _, err := s.expectSymbol(']', `"," or "]"`); err != nil {
		return nil, err
	}
	return list, nil
}

// Patterns

// boundLength returns the number of tokens of a range bound starting k
// tokens ahead, or 0
func (s *state) boundLength(k int) int {
	tok := s.peek(k)
	switch {
	case tok.Type == TokenInteger, tok.Type == TokenIdentifier, tok.Type == TokenString:
		return 1
	case tok.IsSymbol('-') && s.peek(k+1).Type == TokenInteger:
		return 2
	}
	return 0
}

// patternLength returns the number of tokens of a pattern starting k tokens
// ahead, or 0 if none starts there
func (s *state) patternLength(k int) int {
	if s.peek(k).IsSymbol('_') {
		return 1
	}
	n := s.boundLength(k)
	if s.peek(k+n).Type == TokenDotDot {
		return n + 1 + s.boundLength(k+n+1)
	}
	return n
}

func (s *state) parsePattern() (sfast.Pattern, error) {
	tok := s.current()
	if tok.IsSymbol('_') {
		s.advance()
		return &sfast.WildcardPattern{Pos: tok.Pos}, nil
	}

	var start sfast.Pattern
	if s.boundLength(0) > 0 {
		start = s.parseBound()
	}

	if s.current().Type != TokenDotDot {
		if start == nil {
			return nil, s.unexpected(tok, "pattern")
		}
		return start, nil
	}

	dots := s.advance()
	rng := &sfast.RangePattern{Start: start, Pos: dots.Pos}
	if start != nil {
		rng.Pos = start.Position()
	}
	if s.boundLength(0) > 0 {
		rng.End = s.parseBound()
	}
	return rng, nil
}

// parseBound parses a literal or identifier pattern; callers check
// boundLength first
func (s *state) parseBound() sfast.Pattern {
	tok := s.advance()
	switch tok.Type {
	case TokenIdentifier:
		return &sfast.IdentifierPattern{Name: tok.Text, Pos: tok.Pos}
	case TokenString:
		value, _ := tok.Value.(string)
		return &sfast.StringLiteralPattern{Value: value, Pos: tok.Pos}
	case TokenInteger:
		value, _ := tok.Value.(*big.Int)
		return &sfast.IntegerPattern{Value: value, Pos: tok.Pos}
	}

	// negative integer literal
	lit := s.advance()
	value, _ := lit.Value.(*big.Int)
	return &sfast.IntegerPattern{Value: new(big.Int).Neg(value), Pos: tok.Pos}
}

// Types

// parseType parses a type. Arrows are flattened: A -> B -> C has arguments A
// and B and returns C; a leading arrow declares no arguments.
func (s *state) parseType() (sfast.Type, error) {
	if s.current().Type == TokenSmallArrowRight {
		arrow := s.advance()
		ret, err := s.parseTypeAtom()
		if err != nil {
			return nil, err
		}
		return &sfast.FnSigType{Args: []sfast.Type{}, Return: ret, Pos: arrow.Pos}, nil
	}

	first, err := s.parseTypeAtom()
	if err != nil {
		return nil, err
	}
	if s.current().Type != TokenSmallArrowRight {
		return first, nil
	}

	types := []sfast.Type{first}
	for s.current().Type == TokenSmallArrowRight {
		s.advance()
		next, err := s.parseTypeAtom()
		if err != nil {
			return nil, err
		}
		types = append(types, next)
	}

	last := len(types) - 1
	return &sfast.FnSigType{Args: types[:last], Return: types[last], Pos: first.Position()}, nil
}

func (s *state) parseTypeAtom() (sfast.Type, error) {
	tok := s.current()
	switch {
	case tok.Type == TokenIdentifier:
		s.advance()
		return &sfast.IdentifierType{Name: tok.Text, Pos: tok.Pos}, nil
	case tok.Type == TokenInteger:
		s.advance()
		value, _ := tok.Value.(*big.Int)
		return &sfast.NatType{Value: value, Pos: tok.Pos}, nil
	case tok.Type == TokenTag, tok.Type == TokenTagStart:
		tag, err := s.parseTag()
		if err != nil {
			return nil, err
		}
		return &sfast.TagType{Tag: tag, Pos: tok.Pos}, nil
	case tok.IsSymbol('('):
		s.advance()
		typ, err := s.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := s.expectSymbol(')', `")"`); err != nil {
			return nil, err
		}
		return typ, nil
	}
	return nil, s.unexpected(tok, "type")
}

// Tags

func tagOperator(tok Token, ops ...rune) (sfast.OpSymbol, bool) {
	for _, r := range ops {
		if tok.IsSymbol(r) {
			op, ok := sfast.OpSymbolFromGlyph(string(r))
			return op, ok
		}
	}
	return 0, false
}

// parseTag parses "+" and "-", the loosest tag operators
func (s *state) parseTag() (sfast.Tag, error) {
	left, err := s.parseTagTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := tagOperator(s.current(), '+', '-')
		if !ok {
			return left, nil
		}
		s.advance()
		right, err := s.parseTagTerm()
		if err != nil {
			return nil, err
		}
		left = &sfast.OpCallTag{Op: op, Args: []sfast.Tag{left, right}, Pos: left.Position()}
	}
}

func (s *state) parseTagTerm() (sfast.Tag, error) {
	left, err := s.parseTagAtom()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := tagOperator(s.current(), '*', '/')
		if !ok {
			return left, nil
		}
		s.advance()
		right, err := s.parseTagAtom()
		if err != nil {
			return nil, err
		}
		left = &sfast.OpCallTag{Op: op, Args: []sfast.Tag{left, right}, Pos: left.Position()}
	}
}

func (s *state) parseTagAtom() (sfast.Tag, error) {
	tok := s.current()
	switch {
	case tok.Type == TokenTag:
		s.advance()
		name, err := s.expect(TokenIdentifier, "tag name")
		if err != nil {
			return nil, err
		}
		return &sfast.PrimaryIdentifierTag{Name: name.Text, Pos: tok.Pos}, nil
	case tok.Type == TokenIdentifier:
		s.advance()
		return &sfast.IdentifierTag{Name: tok.Text, Pos: tok.Pos}, nil
	case tok.Type == TokenTagStart:
		s.advance()
		assign := &sfast.AssignTag{Tags: []sfast.Tag{}, Pos: tok.Pos}
		if s.current().IsSymbol('}') {
			s.advance()
			return assign, nil
		}
		for {
			tag, err := s.parseTag()
			if err != nil {
				return nil, err
			}
			assign.Tags = append(assign.Tags, tag)
			if !s.current().IsSymbol(',') {
				break
			}
			s.advance()
		}
		if _, err := s.expectSymbol('}', `"," or "}"`); err != nil {
			return nil, err
		}
		return assign, nil
	case tok.IsSymbol('('):
		s.advance()
		tag, err := s.parseTag()
		if err != nil {
			return nil, err
		}
		if _, err := s.expectSymbol(')', `")"`); err != nil {
			return nil, err
		}
		return tag, nil
	}
	return nil, s.unexpected(tok, "tag")
}
