package ast

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	data := []byte(`{
		"kind": "TranslationUnitDecl",
		"inner": [
			{"kind": "RecordDecl", "name": "Foo", "type": {"qualType": "struct Foo"},
			 "loc": {"offset": 10, "file": "foo.h", "line": 2},
			 "inner": [
				{"kind": "FieldDecl", "name": "a", "type": {"qualType": "int"}}
			 ]}
		]
	}`)

	root, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if root.Kind != "TranslationUnitDecl" {
		t.Errorf("expected TranslationUnitDecl root, got %q", root.Kind)
	}
	if len(root.Inner) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Inner))
	}

	record := root.Inner[0]
	if record.Name != "Foo" || record.QualType() != "struct Foo" {
		t.Errorf("unexpected record: name=%q type=%q", record.Name, record.QualType())
	}
	if record.Loc == nil || record.Loc.File != "foo.h" || record.Loc.Line != 2 {
		t.Errorf("unexpected loc: %+v", record.Loc)
	}
	if record.Loc.Offset == nil || *record.Loc.Offset != 10 {
		t.Error("offset not decoded")
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`{"kind": `))
	if err == nil {
		t.Fatal("expected error for truncated payload")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected DecodeError, got %T", err)
	}
}

func TestDecodeMissingKind(t *testing.T) {
	_, err := Decode([]byte(`{}`))
	if err == nil {
		t.Fatal("expected error for root without kind")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected DecodeError, got %T", err)
	}
}

func TestWalkOrder(t *testing.T) {
	root := &Node{Kind: "A", Inner: []*Node{
		{Kind: "B", Inner: []*Node{{Kind: "C"}}},
		{Kind: "D"},
	}}

	var kinds []string
	root.Walk(func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return true
	})

	want := "ABCD"
	got := ""
	for _, k := range kinds {
		got += k
	}
	if got != want {
		t.Errorf("depth-first order: got %q, want %q", got, want)
	}
}

func TestWalkStops(t *testing.T) {
	root := &Node{Kind: "A", Inner: []*Node{{Kind: "B"}, {Kind: "C"}}}

	var visited int
	root.Walk(func(n *Node) bool {
		visited++
		return n.Kind != "B"
	})
	if visited != 2 {
		t.Errorf("traversal should stop after B, visited %d nodes", visited)
	}
}

func TestFindNodesByKind(t *testing.T) {
	root := &Node{Kind: "TranslationUnitDecl", Inner: []*Node{
		{Kind: "RecordDecl", Name: "Foo", Inner: []*Node{
			{Kind: "FieldDecl", Name: "a"},
			{Kind: "FieldDecl", Name: "b"},
		}},
		{Kind: "FieldDecl", Name: "stray"},
	}}

	fields := root.FindNodesByKind("FieldDecl")
	if len(fields) != 3 {
		t.Fatalf("expected 3 FieldDecl nodes, got %d", len(fields))
	}
	if fields[0].Name != "a" || fields[2].Name != "stray" {
		t.Errorf("unexpected order: %q ... %q", fields[0].Name, fields[2].Name)
	}
}

func TestChildrenOfKind(t *testing.T) {
	root := &Node{Kind: "EnumDecl", Inner: []*Node{
		{Kind: "EnumConstantDecl", Name: "A"},
		{Kind: "FullComment"},
		{Kind: "EnumConstantDecl", Name: "B"},
	}}

	children := root.ChildrenOfKind("EnumConstantDecl")
	if len(children) != 2 || children[0].Name != "A" || children[1].Name != "B" {
		t.Errorf("unexpected children: %+v", children)
	}
}

func TestLiteralValueEncodings(t *testing.T) {
	// Frontend versions differ on whether literal values are strings or
	// numbers; both must decode.
	tests := []struct {
		payload string
		want    LiteralValue
	}{
		{`{"kind": "ConstantExpr", "value": "-15"}`, "-15"},
		{`{"kind": "IntegerLiteral", "value": 42}`, "42"},
	}

	for _, tt := range tests {
		node, err := Decode([]byte(tt.payload))
		if err != nil {
			t.Fatalf("Decode(%s) failed: %v", tt.payload, err)
		}
		if node.Value != tt.want {
			t.Errorf("Decode(%s): value %q, want %q", tt.payload, node.Value, tt.want)
		}
	}
}
