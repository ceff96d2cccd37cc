// File: visitor.go
// Title: Snowflake AST Visitor Pattern Implementation
// Description: Implements the visitor interface, pre-order traversal, the
//              validation visitor and the indented tree printer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor pattern implementation
// - 2026-10-14 v0.2.0: Traversal separated from visiting, tree printer

package ast

import (
	"fmt"
	"reflect"
	"strings"
)

// Visitor has one method per concrete node type
type Visitor interface {
	VisitProgram(node *Program) interface{}

	// Statements
	VisitFnDecl(node *FnDecl) interface{}
	VisitTypeDecl(node *TypeDecl) interface{}

	// Types
	VisitFnSigType(node *FnSigType) interface{}
	VisitTagType(node *TagType) interface{}
	VisitNatType(node *NatType) interface{}
	VisitIdentifierType(node *IdentifierType) interface{}

	// Expressions
	VisitOpCall(node *OpCallExpr) interface{}
	VisitFnCall(node *FnCallExpr) interface{}
	VisitMatch(node *MatchExpr) interface{}
	VisitMatchArm(node *MatchArm) interface{}
	VisitDestructure(node *DestructureExpr) interface{}
	VisitValueDecl(node *ValueDeclExpr) interface{}
	VisitValueAssign(node *ValueAssignExpr) interface{}
	VisitTagAssign(node *TagAssignExpr) interface{}
	VisitTypeDeclExpr(node *TypeDeclExpr) interface{}
	VisitInteger(node *IntegerExpr) interface{}
	VisitFloat(node *FloatExpr) interface{}
	VisitIdentifier(node *IdentifierExpr) interface{}
	VisitStringLiteral(node *StringLiteralExpr) interface{}
	VisitList(node *ListExpr) interface{}

	// Patterns
	VisitWildcardPattern(node *WildcardPattern) interface{}
	VisitRangePattern(node *RangePattern) interface{}
	VisitIntegerPattern(node *IntegerPattern) interface{}
	VisitIdentifierPattern(node *IdentifierPattern) interface{}
	VisitStringLiteralPattern(node *StringLiteralPattern) interface{}

	// Tags
	VisitOpCallTag(node *OpCallTag) interface{}
	VisitAssignTag(node *AssignTag) interface{}
	VisitPrimaryIdentifierTag(node *PrimaryIdentifierTag) interface{}
	VisitIdentifierTag(node *IdentifierTag) interface{}
}

// BaseVisitor returns nil for every node. Embed it in concrete visitors to
// override only the needed methods; traversal is left to Inspect or Children.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program) interface{}                           { return nil }
func (BaseVisitor) VisitFnDecl(*FnDecl) interface{}                             { return nil }
func (BaseVisitor) VisitTypeDecl(*TypeDecl) interface{}                         { return nil }
func (BaseVisitor) VisitFnSigType(*FnSigType) interface{}                       { return nil }
func (BaseVisitor) VisitTagType(*TagType) interface{}                           { return nil }
func (BaseVisitor) VisitNatType(*NatType) interface{}                           { return nil }
func (BaseVisitor) VisitIdentifierType(*IdentifierType) interface{}             { return nil }
func (BaseVisitor) VisitOpCall(*OpCallExpr) interface{}                         { return nil }
func (BaseVisitor) VisitFnCall(*FnCallExpr) interface{}                         { return nil }
func (BaseVisitor) VisitMatch(*MatchExpr) interface{}                           { return nil }
func (BaseVisitor) VisitMatchArm(*MatchArm) interface{}                         { return nil }
func (BaseVisitor) VisitDestructure(*DestructureExpr) interface{}               { return nil }
func (BaseVisitor) VisitValueDecl(*ValueDeclExpr) interface{}                   { return nil }
func (BaseVisitor) VisitValueAssign(*ValueAssignExpr) interface{}               { return nil }
func (BaseVisitor) VisitTagAssign(*TagAssignExpr) interface{}                   { return nil }
func (BaseVisitor) VisitTypeDeclExpr(*TypeDeclExpr) interface{}                 { return nil }
func (BaseVisitor) VisitInteger(*IntegerExpr) interface{}                       { return nil }
func (BaseVisitor) VisitFloat(*FloatExpr) interface{}                           { return nil }
func (BaseVisitor) VisitIdentifier(*IdentifierExpr) interface{}                 { return nil }
func (BaseVisitor) VisitStringLiteral(*StringLiteralExpr) interface{}           { return nil }
func (BaseVisitor) VisitList(*ListExpr) interface{}                             { return nil }
func (BaseVisitor) VisitWildcardPattern(*WildcardPattern) interface{}           { return nil }
func (BaseVisitor) VisitRangePattern(*RangePattern) interface{}                 { return nil }
func (BaseVisitor) VisitIntegerPattern(*IntegerPattern) interface{}             { return nil }
func (BaseVisitor) VisitIdentifierPattern(*IdentifierPattern) interface{}       { return nil }
func (BaseVisitor) VisitStringLiteralPattern(*StringLiteralPattern) interface{} { return nil }
func (BaseVisitor) VisitOpCallTag(*OpCallTag) interface{}                       { return nil }
func (BaseVisitor) VisitAssignTag(*AssignTag) interface{}                       { return nil }
func (BaseVisitor) VisitPrimaryIdentifierTag(*PrimaryIdentifierTag) interface{} { return nil }
func (BaseVisitor) VisitIdentifierTag(*IdentifierTag) interface{}               { return nil }

// Children returns the direct children of n in source order. Absent optional
// children (open range bounds) are skipped.
func Children(n Node) []Node {
	var out []Node
	add := func(children ...Node) {
		for _, c := range children {
			if !isNil(c) {
				out = append(out, c)
			}
		}
	}

	switch n := n.(type) {
	case *Program:
		for _, s := range n.Statements {
			add(s)
		}
	case *FnDecl:
		addExpressions(add, n.Body)
	case *TypeDecl:
		add(n.Type)
	case *FnSigType:
		for _, a := range n.Args {
			add(a)
		}
		add(n.Return)
	case *TagType:
		add(n.Tag)
	case *OpCallExpr:
		addExpressions(add, n.Args)
	case *FnCallExpr:
		addExpressions(add, n.Args)
	case *MatchExpr:
		add(n.Scrutinee)
		for _, arm := range n.Arms {
			if arm != nil {
				add(arm)
			}
		}
	case *MatchArm:
		add(n.Pattern)
		addExpressions(add, n.Body)
	case *DestructureExpr:
		add(n.Pattern)
		addExpressions(add, n.Body)
	case *ValueDeclExpr:
		for _, a := range n.Assigns {
			if a != nil {
				add(a)
			}
		}
		addExpressions(add, n.Body)
	case *ValueAssignExpr:
		add(n.Pattern, n.Value)
	case *TagAssignExpr:
		add(n.Target, n.Source)
	case *TypeDeclExpr:
		add(n.Expr, n.Type)
	case *ListExpr:
		addExpressions(add, n.Elements)
	case *RangePattern:
		add(n.Start, n.End)
	case *OpCallTag:
		for _, a := range n.Args {
			add(a)
		}
	case *AssignTag:
		for _, t := range n.Tags {
			add(t)
		}
	}
	return out
}

func addExpressions(add func(...Node), exprs []Expression) {
	for _, e := range exprs {
		add(e)
	}
}

// Inspect traverses the tree rooted at n in pre-order. If fn returns false the
// children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if isNil(n) || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}

// Collect returns every node of type T in the tree, in pre-order
func Collect[T Node](root Node) []T {
	var out []T
	Inspect(root, func(n Node) bool {
		if t, ok := n.(T); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// isNil reports whether n is nil or a typed nil pointer
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// ValidationError is a structural violation found in a tree
type ValidationError struct {
	Pos     Position
	Node    string // concrete node type, e.g. "FnDecl"
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Node, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Node, e.Message)
}

// ValidationVisitor checks every node it is handed and collects the failures
type ValidationVisitor struct {
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{errors: make([]error, 0)}
}

// Visit checks a single node; it is suitable as an Inspect callback
func (vv *ValidationVisitor) Visit(n Node) bool {
	if err := n.check(); err != nil {
		vv.errors = append(vv.errors, &ValidationError{
			Pos:     n.Position(),
			Node:    nodeName(n),
			Message: err.Error(),
		})
	}
	return true
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

// ValidateAST validates every node of the tree and returns all failures
func ValidateAST(node Node) []error {
	visitor := NewValidationVisitor()
	Inspect(node, visitor.Visit)
	if !visitor.HasErrors() {
		return nil
	}
	return visitor.Errors()
}

// validateTree returns the first failure in the tree rooted at n
func validateTree(n Node) error {
	var first error
	Inspect(n, func(c Node) bool {
		if first != nil {
			return false
		}
		if err := c.check(); err != nil {
			first = &ValidationError{Pos: c.Position(), Node: nodeName(c), Message: err.Error()}
			return false
		}
		return true
	})
	return first
}

func nodeName(n Node) string {
	return reflect.TypeOf(n).Elem().Name()
}

// TreePrinter renders one line per node, children indented below their parent
type TreePrinter struct {
	// Indent is repeated once per depth level; defaults to two spaces
	Indent string

	// Positions appends "@line:col" to every line
	Positions bool
}

// Print returns the indented dump of the tree rooted at n
func (tp *TreePrinter) Print(n Node) string {
	var b strings.Builder
	tp.print(&b, n, 0)
	return b.String()
}

func (tp *TreePrinter) print(b *strings.Builder, n Node, depth int) {
	indent := tp.Indent
	if indent == "" {
		indent = "  "
	}
	b.WriteString(strings.Repeat(indent, depth))
	b.WriteString(n.Accept(tp).(string))
	if tp.Positions {
		b.WriteString(" @")
		b.WriteString(n.Position().String())
	}
	b.WriteByte('\n')
	for _, c := range Children(n) {
		tp.print(b, c, depth+1)
	}
}

// The Visit methods of TreePrinter return the line label of a node

func (tp *TreePrinter) VisitProgram(n *Program) interface{} {
	return fmt.Sprintf("Program (%d statements)", len(n.Statements))
}

func (tp *TreePrinter) VisitFnDecl(n *FnDecl) interface{} {
	return fmt.Sprintf("FnDecl %s (%s)", n.Name, strings.Join(n.Args, " "))
}

func (tp *TreePrinter) VisitTypeDecl(n *TypeDecl) interface{} { return "TypeDecl " + n.Name }
func (tp *TreePrinter) VisitFnSigType(n *FnSigType) interface{} {
	return fmt.Sprintf("FnSigType (arity %d)", n.Arity())
}
func (tp *TreePrinter) VisitTagType(*TagType) interface{}        { return "TagType" }
func (tp *TreePrinter) VisitNatType(n *NatType) interface{}      { return "NatType " + n.String() }
func (tp *TreePrinter) VisitIdentifierType(n *IdentifierType) interface{} {
	return "IdentifierType " + n.Name
}
func (tp *TreePrinter) VisitOpCall(n *OpCallExpr) interface{}       { return "OpCall " + n.Op.Name() }
func (tp *TreePrinter) VisitFnCall(n *FnCallExpr) interface{}       { return "FnCall " + n.Name }
func (tp *TreePrinter) VisitMatch(*MatchExpr) interface{}           { return "Match" }
func (tp *TreePrinter) VisitMatchArm(*MatchArm) interface{}         { return "MatchArm" }
func (tp *TreePrinter) VisitDestructure(*DestructureExpr) interface{} { return "Destructure" }

func (tp *TreePrinter) VisitValueDecl(n *ValueDeclExpr) interface{} {
	if n.HasBody() {
		return "ValueDecl (scoped)"
	}
	return "ValueDecl"
}

func (tp *TreePrinter) VisitValueAssign(*ValueAssignExpr) interface{} { return "ValueAssign" }
func (tp *TreePrinter) VisitTagAssign(*TagAssignExpr) interface{}     { return "TagAssign" }
func (tp *TreePrinter) VisitTypeDeclExpr(*TypeDeclExpr) interface{}   { return "TypeDecl (ascription)" }
func (tp *TreePrinter) VisitInteger(n *IntegerExpr) interface{}       { return "Integer " + n.String() }
func (tp *TreePrinter) VisitFloat(n *FloatExpr) interface{}           { return "Float " + n.String() }
func (tp *TreePrinter) VisitIdentifier(n *IdentifierExpr) interface{} { return "Identifier " + n.Name }
func (tp *TreePrinter) VisitStringLiteral(n *StringLiteralExpr) interface{} {
	return "StringLiteral " + n.String()
}
func (tp *TreePrinter) VisitList(n *ListExpr) interface{} {
	return fmt.Sprintf("List (%d elements)", len(n.Elements))
}
func (tp *TreePrinter) VisitWildcardPattern(*WildcardPattern) interface{} { return "Wildcard" }
func (tp *TreePrinter) VisitRangePattern(n *RangePattern) interface{} {
	return "Range " + n.String()
}
func (tp *TreePrinter) VisitIntegerPattern(n *IntegerPattern) interface{} {
	return "IntegerPattern " + n.String()
}
func (tp *TreePrinter) VisitIdentifierPattern(n *IdentifierPattern) interface{} {
	return "IdentifierPattern " + n.Name
}
func (tp *TreePrinter) VisitStringLiteralPattern(n *StringLiteralPattern) interface{} {
	return "StringLiteralPattern " + n.String()
}
func (tp *TreePrinter) VisitOpCallTag(n *OpCallTag) interface{} { return "OpCallTag " + n.Op.Name() }
func (tp *TreePrinter) VisitAssignTag(*AssignTag) interface{}   { return "AssignTag" }
func (tp *TreePrinter) VisitPrimaryIdentifierTag(n *PrimaryIdentifierTag) interface{} {
	return "PrimaryIdentifierTag " + n.Name
}
func (tp *TreePrinter) VisitIdentifierTag(n *IdentifierTag) interface{} {
	return "IdentifierTag " + n.Name
}

// ASTToString returns the indented dump of a tree with default settings
func ASTToString(node Node) string {
	return (&TreePrinter{}).Print(node)
}
