// File: patterns.go
// Title: Snowflake AST Pattern and Tag Nodes
// Description: Defines the pattern nodes used by match arms, destructures and
//              bindings, and the nodes of the tag mini-language.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial pattern and tag nodes

package ast

import (
	"fmt"
	"math/big"
	"strings"
)

// WildcardPattern "_" always matches and binds nothing
type WildcardPattern struct {
	Pos Position
}

// RangePattern "start..end"; a nil bound leaves that side open
type RangePattern struct {
	Start Pattern
	End   Pattern
	Pos   Position
}

// IntegerPattern matches an integer literal
type IntegerPattern struct {
	Value *big.Int
	Pos   Position
}

// IdentifierPattern matches anything and binds it to Name
type IdentifierPattern struct {
	Name string
	Pos  Position
}

// StringLiteralPattern matches a string literal
type StringLiteralPattern struct {
	Value string
	Pos   Position
}

func (w *WildcardPattern) String() string                     { return "_" }
func (w *WildcardPattern) Accept(visitor Visitor) interface{} { return visitor.VisitWildcardPattern(w) }
func (w *WildcardPattern) Position() Position                 { return w.Pos }
func (w *WildcardPattern) Validate() error                    { return validateTree(w) }
func (w *WildcardPattern) patternNode()                       {}
func (w *WildcardPattern) check() error                       { return nil }

func (r *RangePattern) String() string {
	var b strings.Builder
	if !isNil(r.Start) {
		b.WriteString(r.Start.String())
	}
	b.WriteString("..")
	if !isNil(r.End) {
		b.WriteString(r.End.String())
	}
	return b.String()
}

func (r *RangePattern) Accept(visitor Visitor) interface{} { return visitor.VisitRangePattern(r) }
func (r *RangePattern) Position() Position                 { return r.Pos }
func (r *RangePattern) Validate() error                    { return validateTree(r) }
func (r *RangePattern) patternNode()                       {}

func (r *RangePattern) check() error {
	for _, bound := range []Pattern{r.Start, r.End} {
		switch bound.(type) {
		case nil, *IntegerPattern, *IdentifierPattern, *StringLiteralPattern:
		default:
			return fmt.Errorf("range bound %s is not a literal or identifier", bound)
		}
	}
	return nil
}

func (i *IntegerPattern) String() string                     { return bigString(i.Value) }
func (i *IntegerPattern) Accept(visitor Visitor) interface{} { return visitor.VisitIntegerPattern(i) }
func (i *IntegerPattern) Position() Position                 { return i.Pos }
func (i *IntegerPattern) Validate() error                    { return validateTree(i) }
func (i *IntegerPattern) patternNode()                       {}

func (i *IntegerPattern) check() error {
	if i.Value == nil {
		return fmt.Errorf("integer pattern has no value")
	}
	return nil
}

func (i *IdentifierPattern) String() string { return i.Name }
func (i *IdentifierPattern) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifierPattern(i)
}
func (i *IdentifierPattern) Position() Position { return i.Pos }
func (i *IdentifierPattern) Validate() error    { return validateTree(i) }
func (i *IdentifierPattern) patternNode()       {}

func (i *IdentifierPattern) check() error {
	if i.Name == "" {
		return fmt.Errorf("pattern name is required")
	}
	return nil
}

func (s *StringLiteralPattern) String() string { return `"` + s.Value + `"` }
func (s *StringLiteralPattern) Accept(visitor Visitor) interface{} {
	return visitor.VisitStringLiteralPattern(s)
}
func (s *StringLiteralPattern) Position() Position { return s.Pos }
func (s *StringLiteralPattern) Validate() error    { return validateTree(s) }
func (s *StringLiteralPattern) patternNode()       {}
func (s *StringLiteralPattern) check() error       { return nil }

// OpCallTag combines tags with an operator
type OpCallTag struct {
	Op   OpSymbol
	Args []Tag
	Pos  Position
}

// AssignTag is a tag group "#{a, b}"
type AssignTag struct {
	Tags []Tag
	Pos  Position
}

// PrimaryIdentifierTag is a namespace root "tag Name"
type PrimaryIdentifierTag struct {
	Name string
	Pos  Position
}

// IdentifierTag is a member reference
type IdentifierTag struct {
	Name string
	Pos  Position
}

func (o *OpCallTag) String() string {
	parts := make([]string, len(o.Args))
	for i, arg := range o.Args {
		parts[i] = nodeString(arg)
	}
	return "(" + o.Op.String() + " " + strings.Join(parts, " ") + ")"
}

func (o *OpCallTag) Accept(visitor Visitor) interface{} { return visitor.VisitOpCallTag(o) }
func (o *OpCallTag) Position() Position                 { return o.Pos }
func (o *OpCallTag) Validate() error                    { return validateTree(o) }
func (o *OpCallTag) tagNode()                           {}

func (o *OpCallTag) check() error {
	switch o.Op {
	case Plus, Minus, Star, ForwardSlash:
	default:
		return fmt.Errorf("operator %s is not a tag operator", o.Op)
	}
	if len(o.Args) != 2 {
		return fmt.Errorf("tag operator %s expects 2 arguments, got %d", o.Op, len(o.Args))
	}
	return nil
}

func (a *AssignTag) String() string {
	parts := make([]string, len(a.Tags))
	for i, t := range a.Tags {
		parts[i] = nodeString(t)
	}
	return "#{" + strings.Join(parts, ", ") + "}"
}

func (a *AssignTag) Accept(visitor Visitor) interface{} { return visitor.VisitAssignTag(a) }
func (a *AssignTag) Position() Position                 { return a.Pos }
func (a *AssignTag) Validate() error                    { return validateTree(a) }
func (a *AssignTag) tagNode()                           {}

func (a *AssignTag) check() error {
	for i, t := range a.Tags {
		if isNil(t) {
			return fmt.Errorf("tag group element %d is nil", i)
		}
	}
	return nil
}

func (p *PrimaryIdentifierTag) String() string { return "(primary " + p.Name + ")" }
func (p *PrimaryIdentifierTag) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrimaryIdentifierTag(p)
}
func (p *PrimaryIdentifierTag) Position() Position { return p.Pos }
func (p *PrimaryIdentifierTag) Validate() error    { return validateTree(p) }
func (p *PrimaryIdentifierTag) tagNode()           {}

func (p *PrimaryIdentifierTag) check() error {
	if p.Name == "" {
		return fmt.Errorf("primary tag name is required")
	}
	return nil
}

func (i *IdentifierTag) String() string                     { return i.Name }
func (i *IdentifierTag) Accept(visitor Visitor) interface{} { return visitor.VisitIdentifierTag(i) }
func (i *IdentifierTag) Position() Position                 { return i.Pos }
func (i *IdentifierTag) Validate() error                    { return validateTree(i) }
func (i *IdentifierTag) tagNode()                           {}

func (i *IdentifierTag) check() error {
	if i.Name == "" {
		return fmt.Errorf("tag name is required")
	}
	return nil
}
