// File: expressions.go
// Title: Snowflake AST Expression Nodes
// Description: Defines the expression nodes, including match arms, bindings,
//              literals and operator applications.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial expression nodes
// - 2026-10-14 v0.2.0: Expression set of the snowflake grammar

package ast

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// OpCallExpr applies a fixed operator. Binary operators carry two Args,
// prefix Minus carries one.
type OpCallExpr struct {
	Op   OpSymbol
	Args []Expression
	Pos  Position
}

// FnCallExpr is a function application by juxtaposition; Args may be empty
type FnCallExpr struct {
	Name string
	Args []Expression
	Pos  Position
}

// MatchExpr dispatches on Scrutinee; arms are tried in source order
type MatchExpr struct {
	Scrutinee Expression
	Arms      []*MatchArm
	Pos       Position
}

// MatchArm is one "pattern => body" alternative of a match
type MatchArm struct {
	Pattern Pattern
	Body    []Expression
	Pos     Position
}

// DestructureExpr evaluates Body only if the bound value matches Pattern
type DestructureExpr struct {
	Pattern Pattern
	Body    []Expression
	Pos     Position
}

// ValueDeclExpr is a let group. A nil Body means the bindings persist in the
// enclosing scope; otherwise they are scoped to Body.
type ValueDeclExpr struct {
	Assigns []*ValueAssignExpr
	Body    []Expression
	Pos     Position
}

// ValueAssignExpr binds Value to Pattern
type ValueAssignExpr struct {
	Pattern Pattern
	Value   Expression
	Pos     Position
}

// TagAssignExpr binds the Source tag to the Target tag
type TagAssignExpr struct {
	Target Tag
	Source Tag
	Pos    Position
}

// TypeDeclExpr ascribes Type to Expr
type TypeDeclExpr struct {
	Type Type
	Expr Expression
	Pos  Position
}

// IntegerExpr is an arbitrary-precision integer literal
type IntegerExpr struct {
	Value *big.Int
	Pos   Position
}

// FloatExpr is a floating-point literal
type FloatExpr struct {
	Value float64
	Pos   Position
}

// IdentifierExpr is a reference by name
type IdentifierExpr struct {
	Name string
	Pos  Position
}

// StringLiteralExpr is a string literal; Value excludes the quotes
type StringLiteralExpr struct {
	Value string
	Pos   Position
}

// ListExpr is a list literal, elements evaluated left to right
type ListExpr struct {
	Elements []Expression
	Pos      Position
}

// OpCallExpr

func (o *OpCallExpr) String() string {
	return "(" + o.Op.String() + joinPrefixed(o.Args) + ")"
}

func (o *OpCallExpr) Accept(visitor Visitor) interface{} { return visitor.VisitOpCall(o) }
func (o *OpCallExpr) Position() Position                 { return o.Pos }
func (o *OpCallExpr) Validate() error                    { return validateTree(o) }
func (o *OpCallExpr) expressionNode()                    {}

func (o *OpCallExpr) check() error {
	if !o.Op.IsValid() {
		return fmt.Errorf("unknown operator %d", int(o.Op))
	}
	switch {
	case o.IsUnary() && o.Op == Minus:
	case len(o.Args) != 2:
		return fmt.Errorf("operator %s expects 2 arguments, got %d", o.Op, len(o.Args))
	}
	return checkExpressions(o.Args)
}

// IsUnary reports whether this is a prefix operator application
func (o *OpCallExpr) IsUnary() bool {
	return len(o.Args) == 1
}

// FnCallExpr

func (f *FnCallExpr) String() string {
	return "(call " + f.Name + joinPrefixed(f.Args) + ")"
}

func (f *FnCallExpr) Accept(visitor Visitor) interface{} { return visitor.VisitFnCall(f) }
func (f *FnCallExpr) Position() Position                 { return f.Pos }
func (f *FnCallExpr) Validate() error                    { return validateTree(f) }
func (f *FnCallExpr) expressionNode()                    {}

func (f *FnCallExpr) check() error {
	if f.Name == "" {
		return fmt.Errorf("callee name is required")
	}
	return checkExpressions(f.Args)
}

// MatchExpr

func (m *MatchExpr) String() string {
	var b strings.Builder
	b.WriteString("(match ")
	b.WriteString(nodeString(m.Scrutinee))
	for _, arm := range m.Arms {
		b.WriteByte(' ')
		b.WriteString(nodeString(arm))
	}
	b.WriteByte(')')
	return b.String()
}

func (m *MatchExpr) Accept(visitor Visitor) interface{} { return visitor.VisitMatch(m) }
func (m *MatchExpr) Position() Position                 { return m.Pos }
func (m *MatchExpr) Validate() error                    { return validateTree(m) }
func (m *MatchExpr) expressionNode()                    {}

func (m *MatchExpr) check() error {
	if isNil(m.Scrutinee) {
		return fmt.Errorf("match has no scrutinee")
	}
	if len(m.Arms) == 0 {
		return fmt.Errorf("match has no arms")
	}
	for i, arm := range m.Arms {
		if arm == nil {
			return fmt.Errorf("match arm %d is nil", i)
		}
	}
	return nil
}

// MatchArm

func (a *MatchArm) String() string {
	return "(arm " + nodeString(a.Pattern) + joinPrefixed(a.Body) + ")"
}

func (a *MatchArm) Accept(visitor Visitor) interface{} { return visitor.VisitMatchArm(a) }
func (a *MatchArm) Position() Position                 { return a.Pos }
func (a *MatchArm) Validate() error                    { return validateTree(a) }

func (a *MatchArm) check() error {
	if isNil(a.Pattern) {
		return fmt.Errorf("match arm has no pattern")
	}
	if len(a.Body) == 0 {
		return fmt.Errorf("match arm body is empty")
	}
	return checkExpressions(a.Body)
}

// DestructureExpr

func (d *DestructureExpr) String() string {
	return "(destructure " + nodeString(d.Pattern) + joinPrefixed(d.Body) + ")"
}

func (d *DestructureExpr) Accept(visitor Visitor) interface{} { return visitor.VisitDestructure(d) }
func (d *DestructureExpr) Position() Position                 { return d.Pos }
func (d *DestructureExpr) Validate() error                    { return validateTree(d) }
func (d *DestructureExpr) expressionNode()                    {}

func (d *DestructureExpr) check() error {
	if isNil(d.Pattern) {
		return fmt.Errorf("destructure has no pattern")
	}
	if len(d.Body) == 0 {
		return fmt.Errorf("destructure body is empty")
	}
	return checkExpressions(d.Body)
}

// ValueDeclExpr

func (v *ValueDeclExpr) String() string {
	var b strings.Builder
	b.WriteString("(let (")
	for i, assign := range v.Assigns {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(nodeString(assign))
	}
	b.WriteByte(')')
	if v.Body != nil {
		b.WriteString(" (in")
		b.WriteString(joinPrefixed(v.Body))
		b.WriteByte(')')
	}
	b.WriteByte(')')
	return b.String()
}

func (v *ValueDeclExpr) Accept(visitor Visitor) interface{} { return visitor.VisitValueDecl(v) }
func (v *ValueDeclExpr) Position() Position                 { return v.Pos }
func (v *ValueDeclExpr) Validate() error                    { return validateTree(v) }
func (v *ValueDeclExpr) expressionNode()                    {}

func (v *ValueDeclExpr) check() error {
	if len(v.Assigns) == 0 {
		return fmt.Errorf("let has no assignments")
	}
	for i, assign := range v.Assigns {
		if assign == nil {
			return fmt.Errorf("let assignment %d is nil", i)
		}
	}
	if v.Body != nil && len(v.Body) == 0 {
		return fmt.Errorf("let body is present but empty")
	}
	return checkExpressions(v.Body)
}

// HasBody reports whether the bindings are scoped to an "in" body
func (v *ValueDeclExpr) HasBody() bool {
	return v.Body != nil
}

// ValueAssignExpr

func (v *ValueAssignExpr) String() string {
	return "(= " + nodeString(v.Pattern) + " " + nodeString(v.Value) + ")"
}

func (v *ValueAssignExpr) Accept(visitor Visitor) interface{} { return visitor.VisitValueAssign(v) }
func (v *ValueAssignExpr) Position() Position                 { return v.Pos }
func (v *ValueAssignExpr) Validate() error                    { return validateTree(v) }
func (v *ValueAssignExpr) expressionNode()                    {}

func (v *ValueAssignExpr) check() error {
	if isNil(v.Pattern) {
		return fmt.Errorf("assignment has no pattern")
	}
	if isNil(v.Value) {
		return fmt.Errorf("assignment has no value")
	}
	return nil
}

// TagAssignExpr

func (t *TagAssignExpr) String() string {
	return "(tag= " + nodeString(t.Target) + " " + nodeString(t.Source) + ")"
}

func (t *TagAssignExpr) Accept(visitor Visitor) interface{} { return visitor.VisitTagAssign(t) }
func (t *TagAssignExpr) Position() Position                 { return t.Pos }
func (t *TagAssignExpr) Validate() error                    { return validateTree(t) }
func (t *TagAssignExpr) expressionNode()                    {}

func (t *TagAssignExpr) check() error {
	if isNil(t.Target) || isNil(t.Source) {
		return fmt.Errorf("tag assignment needs a target and a source")
	}
	return nil
}

// TypeDeclExpr

func (t *TypeDeclExpr) String() string {
	return "(:: " + nodeString(t.Expr) + " " + nodeString(t.Type) + ")"
}

func (t *TypeDeclExpr) Accept(visitor Visitor) interface{} { return visitor.VisitTypeDeclExpr(t) }
func (t *TypeDeclExpr) Position() Position                 { return t.Pos }
func (t *TypeDeclExpr) Validate() error                    { return validateTree(t) }
func (t *TypeDeclExpr) expressionNode()                    {}

func (t *TypeDeclExpr) check() error {
	if isNil(t.Expr) || isNil(t.Type) {
		return fmt.Errorf("type ascription needs an expression and a type")
	}
	return nil
}

// IntegerExpr

func (i *IntegerExpr) String() string                     { return bigString(i.Value) }
func (i *IntegerExpr) Accept(visitor Visitor) interface{} { return visitor.VisitInteger(i) }
func (i *IntegerExpr) Position() Position                 { return i.Pos }
func (i *IntegerExpr) Validate() error                    { return validateTree(i) }
func (i *IntegerExpr) expressionNode()                    {}

func (i *IntegerExpr) check() error {
	if i.Value == nil {
		return fmt.Errorf("integer literal has no value")
	}
	return nil
}

// FloatExpr

func (f *FloatExpr) String() string                     { return formatFloat(f.Value) }
func (f *FloatExpr) Accept(visitor Visitor) interface{} { return visitor.VisitFloat(f) }
func (f *FloatExpr) Position() Position                 { return f.Pos }
func (f *FloatExpr) Validate() error                    { return validateTree(f) }
func (f *FloatExpr) expressionNode()                    {}
func (f *FloatExpr) check() error                       { return nil }

// formatFloat always keeps a decimal point so floats never read as integers
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

// IdentifierExpr

func (i *IdentifierExpr) String() string                     { return i.Name }
func (i *IdentifierExpr) Accept(visitor Visitor) interface{} { return visitor.VisitIdentifier(i) }
func (i *IdentifierExpr) Position() Position                 { return i.Pos }
func (i *IdentifierExpr) Validate() error                    { return validateTree(i) }
func (i *IdentifierExpr) expressionNode()                    {}

func (i *IdentifierExpr) check() error {
	if i.Name == "" {
		return fmt.Errorf("identifier name is required")
	}
	return nil
}

// StringLiteralExpr

func (s *StringLiteralExpr) String() string                     { return `"` + s.Value + `"` }
func (s *StringLiteralExpr) Accept(visitor Visitor) interface{} { return visitor.VisitStringLiteral(s) }
func (s *StringLiteralExpr) Position() Position                 { return s.Pos }
func (s *StringLiteralExpr) Validate() error                    { return validateTree(s) }
func (s *StringLiteralExpr) expressionNode()                    {}

func (s *StringLiteralExpr) check() error {
	if strings.Contains(s.Value, `"`) {
		return fmt.Errorf("string literal contains a quote")
	}
	return nil
}

// ListExpr

func (l *ListExpr) String() string                     { return "(list" + joinPrefixed(l.Elements) + ")" }
func (l *ListExpr) Accept(visitor Visitor) interface{} { return visitor.VisitList(l) }
func (l *ListExpr) Position() Position                 { return l.Pos }
func (l *ListExpr) Validate() error                    { return validateTree(l) }
func (l *ListExpr) expressionNode()                    {}
func (l *ListExpr) check() error                       { return checkExpressions(l.Elements) }
