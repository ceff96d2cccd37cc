// File: doc.go
// Title: Snowflake Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree of the snowflake language and
//              the visitor, printing, validation and encoding utilities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST implementation
// - 2026-10-14 v0.2.0: Node set of the snowflake language

/*
Package ast defines the Abstract Syntax Tree produced by the snowflake parser.

A Program is an ordered list of Statements. Every other node belongs to one
of five closed families, each a Go interface that only types of this package
implement:

	Statement   FnDecl, TypeDecl
	Type        FnSigType, TagType, NatType, IdentifierType
	Expression  OpCallExpr, FnCallExpr, MatchExpr, DestructureExpr,
	            ValueDeclExpr, ValueAssignExpr, TagAssignExpr, TypeDeclExpr,
	            IntegerExpr, FloatExpr, IdentifierExpr, StringLiteralExpr, ListExpr
	Pattern     WildcardPattern, RangePattern, IntegerPattern,
	            IdentifierPattern, StringLiteralPattern
	Tag         OpCallTag, AssignTag, PrimaryIdentifierTag, IdentifierTag

MatchArm pairs a Pattern with a body and only appears inside MatchExpr.

Consumers switch exhaustively over the concrete types or implement Visitor.
Nodes are built once by the parser and must not be modified afterwards;
sequence fields keep source order.

Every node renders as a deterministic s-expression through String:

	fib n => n + 1          (fn fib (n) (+ n 1))
	x :: Int -> Int         (type x (-> Int Int))

TreePrinter produces an indented dump, Encode a JSON/YAML friendly value and
ValidateAST reports every structural violation in a tree.
*/
package ast
