// File: nodes.go
// Title: Snowflake AST Core Definitions
// Description: Defines the Node interface, source positions, operator symbols,
//              the node families and the statement and type nodes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST node definitions
// - 2026-10-14 v0.2.0: Sealed node families for the snowflake grammar

package ast

import (
	"fmt"
	"math/big"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a deterministic s-expression rendering of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the position of the node's first token
	Position() Position

	// Validate checks the structural invariants of the node and its children
	Validate() error

	// check validates this node only; it also seals the interface
	check() error
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Statement is a top-level declaration
type Statement interface {
	Node
	statementNode()
}

// Type is a type expression
type Type interface {
	Node
	typeNode()
}

// Expression is a value-producing construct
type Expression interface {
	Node
	expressionNode()
}

// Pattern selects values in match arms, destructures and bindings
type Pattern interface {
	Node
	patternNode()
}

// Tag is a term of the tag mini-language
type Tag interface {
	Node
	tagNode()
}

// OpSymbol is the fixed operator vocabulary
type OpSymbol int

const (
	Plus OpSymbol = iota
	Minus
	Star
	ForwardSlash
	LAngleBracket
	RAngleBracket
	Circumflex
)

var opGlyphs = [...]string{
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	ForwardSlash:  "/",
	LAngleBracket: "<",
	RAngleBracket: ">",
	Circumflex:    "^",
}

var opNames = [...]string{
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	ForwardSlash:  "ForwardSlash",
	LAngleBracket: "LAngleBracket",
	RAngleBracket: "RAngleBracket",
	Circumflex:    "Circumflex",
}

// String returns the source glyph of the operator
func (op OpSymbol) String() string {
	if op.IsValid() {
		return opGlyphs[op]
	}
	return fmt.Sprintf("OpSymbol(%d)", int(op))
}

// Name returns the operator's symbolic name, e.g. "Star"
func (op OpSymbol) Name() string {
	if op.IsValid() {
		return opNames[op]
	}
	return "Unknown"
}

// IsValid reports whether op is one of the defined operators
func (op OpSymbol) IsValid() bool {
	return op >= Plus && op <= Circumflex
}

// OpSymbolFromGlyph maps a source glyph to its operator. "**" is an alias of "^".
func OpSymbolFromGlyph(glyph string) (OpSymbol, bool) {
	switch glyph {
	case "+":
		return Plus, true
	case "-":
		return Minus, true
	case "*":
		return Star, true
	case "/":
		return ForwardSlash, true
	case "<":
		return LAngleBracket, true
	case ">":
		return RAngleBracket, true
	case "^", "**":
		return Circumflex, true
	default:
		return 0, false
	}
}

// Program is a parsed compilation unit
type Program struct {
	Statements []Statement
	Pos        Position
}

// FnDecl is a top-level function definition
type FnDecl struct {
	Name string
	Args []string     // parameter names in source order
	Body []Expression // last expression is the result
	Pos  Position
}

// TypeDecl is a top-level named type binding
type TypeDecl struct {
	Name string
	Type Type
	Pos  Position
}

// FnSigType is a function type; Args are the argument types in order
type FnSigType struct {
	Args   []Type
	Return Type
	Pos    Position
}

// TagType is a type given by a tag
type TagType struct {
	Tag Tag
	Pos Position
}

// NatType is a numeric literal used as a type
type NatType struct {
	Value *big.Int
	Pos   Position
}

// IdentifierType is a named type reference
type IdentifierType struct {
	Name string
	Pos  Position
}

// Program

func (p *Program) String() string {
	parts := make([]string, len(p.Statements))
	for i, stmt := range p.Statements {
		parts[i] = stmt.String()
	}
	return strings.Join(parts, "\n")
}

func (p *Program) Accept(visitor Visitor) interface{} { return visitor.VisitProgram(p) }
func (p *Program) Position() Position                 { return p.Pos }
func (p *Program) Validate() error                    { return validateTree(p) }

func (p *Program) check() error {
	for i, stmt := range p.Statements {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
	}
	return nil
}

// FnDecl

func (f *FnDecl) String() string {
	return fmt.Sprintf("(fn %s (%s)%s)", f.Name, strings.Join(f.Args, " "), joinPrefixed(f.Body))
}

func (f *FnDecl) Accept(visitor Visitor) interface{} { return visitor.VisitFnDecl(f) }
func (f *FnDecl) Position() Position                 { return f.Pos }
func (f *FnDecl) Validate() error                    { return validateTree(f) }
func (f *FnDecl) statementNode()                     {}

func (f *FnDecl) check() error {
	if f.Name == "" {
		return fmt.Errorf("function name is required")
	}
	seen := make(map[string]bool, len(f.Args))
	for _, arg := range f.Args {
		if seen[arg] {
			return fmt.Errorf("function %s: duplicate parameter %s", f.Name, arg)
		}
		seen[arg] = true
	}
	if len(f.Body) == 0 {
		return fmt.Errorf("function %s: body is empty", f.Name)
	}
	return checkExpressions(f.Body)
}

// TypeDecl

func (t *TypeDecl) String() string {
	return fmt.Sprintf("(type %s %s)", t.Name, nodeString(t.Type))
}

func (t *TypeDecl) Accept(visitor Visitor) interface{} { return visitor.VisitTypeDecl(t) }
func (t *TypeDecl) Position() Position                 { return t.Pos }
func (t *TypeDecl) Validate() error                    { return validateTree(t) }
func (t *TypeDecl) statementNode()                     {}

func (t *TypeDecl) check() error {
	if t.Name == "" {
		return fmt.Errorf("type name is required")
	}
	if t.Type == nil {
		return fmt.Errorf("type %s: body is required", t.Name)
	}
	return nil
}

// FnSigType

func (f *FnSigType) String() string {
	parts := make([]string, 0, len(f.Args)+1)
	for _, arg := range f.Args {
		parts = append(parts, nodeString(arg))
	}
	parts = append(parts, nodeString(f.Return))
	return "(-> " + strings.Join(parts, " ") + ")"
}

func (f *FnSigType) Accept(visitor Visitor) interface{} { return visitor.VisitFnSigType(f) }
func (f *FnSigType) Position() Position                 { return f.Pos }
func (f *FnSigType) Validate() error                    { return validateTree(f) }
func (f *FnSigType) typeNode()                          {}

func (f *FnSigType) check() error {
	if f.Return == nil {
		return fmt.Errorf("function type has no return type")
	}
	for i, arg := range f.Args {
		if arg == nil {
			return fmt.Errorf("function type argument %d is nil", i)
		}
	}
	return nil
}

// Arity returns the number of argument types
func (f *FnSigType) Arity() int {
	return len(f.Args)
}

// TagType

func (t *TagType) String() string                     { return "(tag " + nodeString(t.Tag) + ")" }
func (t *TagType) Accept(visitor Visitor) interface{} { return visitor.VisitTagType(t) }
func (t *TagType) Position() Position                 { return t.Pos }
func (t *TagType) Validate() error                    { return validateTree(t) }
func (t *TagType) typeNode()                          {}

func (t *TagType) check() error {
	if t.Tag == nil {
		return fmt.Errorf("tag type has no tag")
	}
	return nil
}

// NatType

func (n *NatType) String() string                     { return bigString(n.Value) }
func (n *NatType) Accept(visitor Visitor) interface{} { return visitor.VisitNatType(n) }
func (n *NatType) Position() Position                 { return n.Pos }
func (n *NatType) Validate() error                    { return validateTree(n) }
func (n *NatType) typeNode()                          {}

func (n *NatType) check() error {
	if n.Value == nil {
		return fmt.Errorf("numeric type has no value")
	}
	if n.Value.Sign() < 0 {
		return fmt.Errorf("numeric type %s is negative", n.Value)
	}
	return nil
}

// IdentifierType

func (i *IdentifierType) String() string                     { return i.Name }
func (i *IdentifierType) Accept(visitor Visitor) interface{} { return visitor.VisitIdentifierType(i) }
func (i *IdentifierType) Position() Position                 { return i.Pos }
func (i *IdentifierType) Validate() error                    { return validateTree(i) }
func (i *IdentifierType) typeNode()                          {}

func (i *IdentifierType) check() error {
	if i.Name == "" {
		return fmt.Errorf("type name is required")
	}
	return nil
}

// helpers shared by the String implementations

func nodeString(n Node) string {
	if isNil(n) {
		return "<nil>"
	}
	return n.String()
}

// joinPrefixed renders each expression preceded by a space
func joinPrefixed(exprs []Expression) string {
	var b strings.Builder
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(nodeString(e))
	}
	return b.String()
}

func bigString(v *big.Int) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

func checkExpressions(exprs []Expression) error {
	for i, e := range exprs {
		if isNil(e) {
			return fmt.Errorf("expression %d is nil", i)
		}
	}
	return nil
}
