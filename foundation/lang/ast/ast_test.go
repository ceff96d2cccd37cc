// File: ast_test.go
// Title: Snowflake AST Unit Tests
// Description: Tests for s-expression rendering, validation, traversal, the
//              tree printer, encoding and operator symbols.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor test suite
// - 2026-10-14 v0.2.0: Tests for the snowflake node set

package ast

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(name string) *IdentifierExpr { return &IdentifierExpr{Name: name} }
func integer(v int64) *IntegerExpr      { return &IntegerExpr{Value: big.NewInt(v)} }

// fibProgram builds:
//
//	fib n =>
//	  match n =>
//	    0 => 0
//	    _ => n + fib (n - 1)
//	main :: Int
func fibProgram() *Program {
	return &Program{
		Statements: []Statement{
			&FnDecl{
				Name: "fib",
				Args: []string{"n"},
				Pos:  Position{Line: 1, Column: 1, Offset: 0},
				Body: []Expression{
					&MatchExpr{
						Scrutinee: ident("n"),
						Pos:       Position{Line: 2, Column: 3, Offset: 11},
						Arms: []*MatchArm{
							{Pattern: &IntegerPattern{Value: big.NewInt(0)}, Body: []Expression{integer(0)}},
							{Pattern: &WildcardPattern{}, Body: []Expression{
								&OpCallExpr{Op: Plus, Args: []Expression{
									ident("n"),
									&FnCallExpr{Name: "fib", Args: []Expression{
										&OpCallExpr{Op: Minus, Args: []Expression{ident("n"), integer(1)}},
									}},
								}},
							}},
						},
					},
				},
			},
			&TypeDecl{Name: "main", Type: &IdentifierType{Name: "Int"}},
		},
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"program", fibProgram(), "(fn fib (n) (match n (arm 0 0) (arm _ (+ n (call fib (- n 1))))))\n(type main Int)"},
		{"fn without args", &FnDecl{Name: "main", Body: []Expression{integer(1)}}, "(fn main () 1)"},
		{"unary minus", &OpCallExpr{Op: Minus, Args: []Expression{ident("x")}}, "(- x)"},
		{"zero arg call", &FnCallExpr{Name: "now"}, "(call now)"},
		{"float keeps point", &FloatExpr{Value: 2}, "2.0"},
		{"float", &FloatExpr{Value: 1.25}, "1.25"},
		{"string", &StringLiteralExpr{Value: "hi there"}, `"hi there"`},
		{"list", &ListExpr{Elements: []Expression{integer(1), integer(2)}}, "(list 1 2)"},
		{"empty list", &ListExpr{}, "(list)"},
		{
			"let without body",
			&ValueDeclExpr{Assigns: []*ValueAssignExpr{{Pattern: &IdentifierPattern{Name: "x"}, Value: integer(1)}}},
			"(let ((= x 1)))",
		},
		{
			"let with body",
			&ValueDeclExpr{
				Assigns: []*ValueAssignExpr{
					{Pattern: &IdentifierPattern{Name: "x"}, Value: integer(1)},
					{Pattern: &WildcardPattern{}, Value: ident("y")},
				},
				Body: []Expression{ident("x")},
			},
			"(let ((= x 1) (= _ y)) (in x))",
		},
		{
			"destructure",
			&DestructureExpr{Pattern: &StringLiteralPattern{Value: "a"}, Body: []Expression{integer(1)}},
			`(destructure "a" 1)`,
		},
		{"closed range", &RangePattern{Start: &IntegerPattern{Value: big.NewInt(1)}, End: &IntegerPattern{Value: big.NewInt(5)}}, "1..5"},
		{"open start", &RangePattern{End: &IdentifierPattern{Name: "n"}}, "..n"},
		{"fully open", &RangePattern{}, ".."},
		{
			"ascription",
			&TypeDeclExpr{Expr: ident("x"), Type: &FnSigType{Args: []Type{&IdentifierType{Name: "Int"}}, Return: &NatType{Value: big.NewInt(3)}}},
			"(:: x (-> Int 3))",
		},
		{
			"tag assign",
			&TagAssignExpr{
				Target: &AssignTag{Tags: []Tag{&IdentifierTag{Name: "Red"}, &IdentifierTag{Name: "Green"}}},
				Source: &OpCallTag{Op: Plus, Args: []Tag{&PrimaryIdentifierTag{Name: "Color"}, &IdentifierTag{Name: "Blue"}}},
			},
			"(tag= #{Red, Green} (+ (primary Color) Blue))",
		},
		{"tag type", &TagType{Tag: &IdentifierTag{Name: "Red"}}, "(tag Red)"},
		{"empty tag group", &AssignTag{Tags: []Tag{}}, "#{}"},
		{"huge integer", &IntegerExpr{Value: mustBig("123456789012345678901234567890")}, "123456789012345678901234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad integer " + s)
	}
	return v
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr string
	}{
		{"valid program", fibProgram(), ""},
		{"empty fn body", &FnDecl{Name: "f"}, "body is empty"},
		{"duplicate parameter", &FnDecl{Name: "f", Args: []string{"a", "a"}, Body: []Expression{integer(1)}}, "duplicate parameter a"},
		{"binary arity", &OpCallExpr{Op: Star, Args: []Expression{integer(1)}}, "expects 2 arguments"},
		{"unary plus rejected", &OpCallExpr{Op: Plus, Args: []Expression{integer(1)}}, "expects 2 arguments"},
		{"match without arms", &MatchExpr{Scrutinee: ident("x")}, "no arms"},
		{"let without assigns", &ValueDeclExpr{}, "no assignments"},
		{
			"let with empty body",
			&ValueDeclExpr{Assigns: []*ValueAssignExpr{{Pattern: &WildcardPattern{}, Value: integer(1)}}, Body: []Expression{}},
			"present but empty",
		},
		{"fn sig without return", &FnSigType{}, "no return type"},
		{"empty tag group", &AssignTag{}, ""},
		{"nil tag in group", &AssignTag{Tags: []Tag{nil}}, "element 0 is nil"},
		{"nested failure is found", &FnDecl{Name: "f", Body: []Expression{&MatchExpr{Scrutinee: ident("x")}}}, "MatchExpr: match has no arms"},
		{"range bound kind", &RangePattern{Start: &WildcardPattern{}}, "not a literal or identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestValidateAST_CollectsAllErrors(t *testing.T) {
	prog := &Program{Statements: []Statement{
		&FnDecl{Name: "a", Pos: Position{Line: 1, Column: 1}},
		&FnDecl{Name: "b", Body: []Expression{&OpCallExpr{Op: Plus}}, Pos: Position{Line: 2, Column: 1}},
	}}

	errs := ValidateAST(prog)
	require.Len(t, errs, 2)
	assert.Equal(t, "1:1: FnDecl: function a: body is empty", errs[0].Error())
	assert.Equal(t, "OpCallExpr: operator + expects 2 arguments, got 0", errs[1].Error())

	assert.Nil(t, ValidateAST(fibProgram()))
}

func TestOpCallExpr_IsUnary(t *testing.T) {
	neg := &OpCallExpr{Op: Minus, Args: []Expression{integer(1)}}
	assert.True(t, neg.IsUnary())
	assert.NoError(t, neg.Validate())

	sub := &OpCallExpr{Op: Minus, Args: []Expression{integer(1), integer(2)}}
	assert.False(t, sub.IsUnary())
	assert.NoError(t, sub.Validate())
}

func TestInspectOrder(t *testing.T) {
	var visited []string
	Inspect(fibProgram(), func(n Node) bool {
		visited = append(visited, nodeName(n))
		return true
	})

	assert.Equal(t, []string{
		"Program",
		"FnDecl", "MatchExpr", "IdentifierExpr",
		"MatchArm", "IntegerPattern", "IntegerExpr",
		"MatchArm", "WildcardPattern", "OpCallExpr", "IdentifierExpr", "FnCallExpr", "OpCallExpr", "IdentifierExpr", "IntegerExpr",
		"TypeDecl", "IdentifierType",
	}, visited)
}

func TestInspectSkipsChildren(t *testing.T) {
	count := 0
	Inspect(fibProgram(), func(n Node) bool {
		count++
		_, isFn := n.(*FnDecl)
		return !isFn
	})
	// Program, FnDecl, TypeDecl, IdentifierType
	assert.Equal(t, 4, count)
}

func TestCollect(t *testing.T) {
	prog := fibProgram()

	calls := Collect[*FnCallExpr](prog)
	require.Len(t, calls, 1)
	assert.Equal(t, "fib", calls[0].Name)

	idents := Collect[*IdentifierExpr](prog)
	assert.Len(t, idents, 3)

	exprs := Collect[Expression](prog)
	assert.Len(t, exprs, 9)
}

func TestTreePrinter(t *testing.T) {
	got := ASTToString(fibProgram())

	want := heredoc.Doc(`
		Program (2 statements)
		  FnDecl fib (n)
		    Match
		      Identifier n
		      MatchArm
		        IntegerPattern 0
		        Integer 0
		      MatchArm
		        Wildcard
		        OpCall Plus
		          Identifier n
		          FnCall fib
		            OpCall Minus
		              Identifier n
		              Integer 1
		  TypeDecl main
		    IdentifierType Int
	`)
	assert.Equal(t, want, got)
}

func TestTreePrinter_Positions(t *testing.T) {
	printer := &TreePrinter{Indent: "\t", Positions: true}
	fn := &FnDecl{Name: "f", Body: []Expression{&IdentifierExpr{Name: "x", Pos: Position{Line: 1, Column: 6}}}, Pos: Position{Line: 1, Column: 1}}

	assert.Equal(t, "FnDecl f () @1:1\n\tIdentifier x @1:6\n", printer.Print(fn))
}

func TestEncode(t *testing.T) {
	encoded := Encode(fibProgram())

	data, err := json.Marshal(encoded)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Program", decoded["node"])

	statements := decoded["statements"].([]interface{})
	require.Len(t, statements, 2)

	fn := statements[0].(map[string]interface{})
	assert.Equal(t, "FnDecl", fn["node"])
	assert.Equal(t, "fib", fn["name"])
	assert.Equal(t, []interface{}{"n"}, fn["args"])
	assert.Equal(t, "1:1", fn["pos"])

	match := fn["body"].([]interface{})[0].(map[string]interface{})
	arms := match["arms"].([]interface{})
	require.Len(t, arms, 2)
	firstPattern := arms[0].(map[string]interface{})["pattern"].(map[string]interface{})
	assert.Equal(t, "IntegerPattern", firstPattern["node"])
	assert.Equal(t, "0", firstPattern["value"])
}

func TestEncode_OptionalChildren(t *testing.T) {
	rng := Encode(&RangePattern{Start: &IntegerPattern{Value: big.NewInt(1)}}).(map[string]interface{})
	assert.Nil(t, rng["end"])
	assert.NotNil(t, rng["start"])

	let := Encode(&ValueDeclExpr{Assigns: []*ValueAssignExpr{{Pattern: &WildcardPattern{}, Value: integer(1)}}}).(map[string]interface{})
	assert.NotContains(t, let, "body")
	assert.NotContains(t, let, "pos")

	assert.Nil(t, Encode(nil))
	var missing *IdentifierExpr
	assert.Nil(t, Encode(missing))
}

func TestOpSymbol(t *testing.T) {
	tests := []struct {
		op    OpSymbol
		glyph string
		name  string
	}{
		{Plus, "+", "Plus"},
		{Minus, "-", "Minus"},
		{Star, "*", "Star"},
		{ForwardSlash, "/", "ForwardSlash"},
		{LAngleBracket, "<", "LAngleBracket"},
		{RAngleBracket, ">", "RAngleBracket"},
		{Circumflex, "^", "Circumflex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.glyph, tt.op.String())
			assert.Equal(t, tt.name, tt.op.Name())

			op, ok := OpSymbolFromGlyph(tt.glyph)
			require.True(t, ok)
			assert.Equal(t, tt.op, op)
		})
	}

	op, ok := OpSymbolFromGlyph("**")
	assert.True(t, ok)
	assert.Equal(t, Circumflex, op)

	_, ok = OpSymbolFromGlyph("%")
	assert.False(t, ok)
	assert.False(t, OpSymbol(42).IsValid())
	assert.Equal(t, "OpSymbol(42)", OpSymbol(42).String())
}

type countingVisitor struct {
	BaseVisitor
	idents int
}

func (c *countingVisitor) VisitIdentifier(*IdentifierExpr) interface{} {
	c.idents++
	return nil
}

func TestBaseVisitorEmbedding(t *testing.T) {
	v := &countingVisitor{}
	Inspect(fibProgram(), func(n Node) bool {
		n.Accept(v)
		return true
	})
	assert.Equal(t, 3, v.idents)
}
