// File: encode.go
// Title: Snowflake AST Encoding
// Description: Converts a tree into plain maps and slices that encode cleanly
//              as JSON or YAML. Each node becomes a map with a "node" key.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial encoder

package ast

// Encode returns a JSON/YAML friendly representation of n. Integers are
// encoded as decimal strings so no precision is lost; nil children become nil.
func Encode(n Node) interface{} {
	if isNil(n) {
		return nil
	}

	m := map[string]interface{}{"node": nodeName(n)}
	if n.Position().IsValid() {
		m["pos"] = n.Position().String()
	}

	switch n := n.(type) {
	case *Program:
		m["statements"] = encodeList(n.Statements)
	case *FnDecl:
		args := make([]interface{}, len(n.Args))
		for i, a := range n.Args {
			args[i] = a
		}
		m["name"] = n.Name
		m["args"] = args
		m["body"] = encodeList(n.Body)
	case *TypeDecl:
		m["name"] = n.Name
		m["type"] = Encode(n.Type)
	case *FnSigType:
		m["args"] = encodeList(n.Args)
		m["return"] = Encode(n.Return)
	case *TagType:
		m["tag"] = Encode(n.Tag)
	case *NatType:
		m["value"] = bigString(n.Value)
	case *IdentifierType:
		m["name"] = n.Name
	case *OpCallExpr:
		m["op"] = n.Op.Name()
		m["args"] = encodeList(n.Args)
	case *FnCallExpr:
		m["name"] = n.Name
		m["args"] = encodeList(n.Args)
	case *MatchExpr:
		m["scrutinee"] = Encode(n.Scrutinee)
		m["arms"] = encodeList(n.Arms)
	case *MatchArm:
		m["pattern"] = Encode(n.Pattern)
		m["body"] = encodeList(n.Body)
	case *DestructureExpr:
		m["pattern"] = Encode(n.Pattern)
		m["body"] = encodeList(n.Body)
	case *ValueDeclExpr:
		m["assigns"] = encodeList(n.Assigns)
		if n.Body != nil {
			m["body"] = encodeList(n.Body)
		}
	case *ValueAssignExpr:
		m["pattern"] = Encode(n.Pattern)
		m["value"] = Encode(n.Value)
	case *TagAssignExpr:
		m["target"] = Encode(n.Target)
		m["source"] = Encode(n.Source)
	case *TypeDeclExpr:
		m["expr"] = Encode(n.Expr)
		m["type"] = Encode(n.Type)
	case *IntegerExpr:
		m["value"] = bigString(n.Value)
	case *FloatExpr:
		m["value"] = n.Value
	case *IdentifierExpr:
		m["name"] = n.Name
	case *StringLiteralExpr:
		m["value"] = n.Value
	case *ListExpr:
		m["elements"] = encodeList(n.Elements)
	case *WildcardPattern:
	case *RangePattern:
		m["start"] = Encode(n.Start)
		m["end"] = Encode(n.End)
	case *IntegerPattern:
		m["value"] = bigString(n.Value)
	case *IdentifierPattern:
		m["name"] = n.Name
	case *StringLiteralPattern:
		m["value"] = n.Value
	case *OpCallTag:
		m["op"] = n.Op.Name()
		m["args"] = encodeList(n.Args)
	case *AssignTag:
		m["tags"] = encodeList(n.Tags)
	case *PrimaryIdentifierTag:
		m["name"] = n.Name
	case *IdentifierTag:
		m["name"] = n.Name
	}
	return m
}

func encodeList[T Node](nodes []T) []interface{} {
	out := make([]interface{}, len(nodes))
	for i, n := range nodes {
		out[i] = Encode(n)
	}
	return out
}
