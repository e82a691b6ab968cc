// Package ast decodes the JSON AST dump emitted by the external compiler
// frontend into a navigable node tree.
//
// The decoder is intentionally generic: it preserves only the fields the
// extraction pipeline consumes (kind, name, type, location, children) and
// ignores the rest of the dump. No C/C++ parsing happens here; the frontend
// is the sole source of syntactic truth.
package ast

import (
	"encoding/json"
)

// Node is a single node of the frontend's AST dump.
type Node struct {
	// ID is the frontend's node identifier (hex string, informational only).
	ID string `json:"id,omitempty"`
	// Kind is the frontend's node kind, e.g. "RecordDecl" or "FunctionDecl".
	Kind string `json:"kind"`
	// Name is the declared name, when the node has one.
	Name string `json:"name,omitempty"`
	// Type carries the node's type descriptor, when present.
	Type *TypeInfo `json:"type,omitempty"`
	// Loc is the node's location stamp. The dump only stamps file identity
	// at file-transition boundaries; see the extract package's provenance
	// tracking for how that is resolved.
	Loc *Loc `json:"loc,omitempty"`
	// Range is the source range of the node, when present.
	Range *Range `json:"range,omitempty"`
	// Inner is the ordered child list.
	Inner []*Node `json:"inner,omitempty"`

	// Declaration attributes, populated per node kind.
	IsImplicit   bool   `json:"isImplicit,omitempty"`
	StorageClass string `json:"storageClass,omitempty"`
	Inline       bool   `json:"inline,omitempty"`
	Virtual      bool   `json:"virtual,omitempty"`
	Pure         bool   `json:"pure,omitempty"`
	Variadic     bool   `json:"variadic,omitempty"`
	TagUsed      string `json:"tagUsed,omitempty"`
	// CompleteDefinition is true on record/enum nodes that carry a body.
	CompleteDefinition bool `json:"completeDefinition,omitempty"`
	// FixedUnderlyingType is the explicit underlying type of a fixed enum.
	FixedUnderlyingType *TypeInfo `json:"fixedUnderlyingType,omitempty"`
	// Value is the literal value on expression nodes (e.g. IntegerLiteral,
	// ConstantExpr). The frontend serializes it as a string or number.
	Value LiteralValue `json:"value,omitempty"`
}

// LiteralValue is a literal spelled either as a JSON string or a JSON
// number, depending on the frontend version and node kind.
type LiteralValue string

// UnmarshalJSON accepts both encodings.
func (v *LiteralValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = LiteralValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = LiteralValue(n.String())
	return nil
}

// TypeInfo is the frontend's type descriptor attached to typed nodes.
type TypeInfo struct {
	// QualType is the fully qualified type spelling, e.g. "volatile uint32_t".
	QualType string `json:"qualType"`
	// DesugaredQualType is the spelling with sugar (typedefs) resolved.
	DesugaredQualType string `json:"desugaredQualType,omitempty"`
}

// Loc is a location stamp. File is only present when file identity changed
// relative to the previous node in document order; nodes from the same file
// carry only Offset. IncludedFrom marks nodes pulled in via an #include.
type Loc struct {
	Offset       *int64        `json:"offset,omitempty"`
	File         string        `json:"file,omitempty"`
	Line         int           `json:"line,omitempty"`
	Col          int           `json:"col,omitempty"`
	IncludedFrom *IncludedFrom `json:"includedFrom,omitempty"`
}

// IncludedFrom identifies the file whose #include brought a node in.
type IncludedFrom struct {
	File string `json:"file,omitempty"`
}

// Range is a begin/end location pair.
type Range struct {
	Begin *Loc `json:"begin,omitempty"`
	End   *Loc `json:"end,omitempty"`
}

// Decode deserializes an AST dump into its root node.
// Returns a DecodeError if the payload is not a well-formed tree.
func Decode(data []byte) (*Node, error) {
	root := &Node{}
	if err := json.Unmarshal(data, root); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if root.Kind == "" {
		return nil, &DecodeError{Message: "tree root carries no node kind"}
	}
	return root, nil
}

// Walk traverses the tree depth-first, calling the visitor for each node.
// If the visitor returns false, traversal stops.
func (n *Node) Walk(visitor func(*Node) bool) {
	walkNode(n, visitor)
}

func walkNode(node *Node, visitor func(*Node) bool) bool {
	if node == nil {
		return true
	}
	if !visitor(node) {
		return false
	}
	for _, child := range node.Inner {
		if !walkNode(child, visitor) {
			return false
		}
	}
	return true
}

// FindNodes returns all nodes in the subtree matching the predicate.
func (n *Node) FindNodes(predicate func(*Node) bool) []*Node {
	var nodes []*Node
	n.Walk(func(node *Node) bool {
		if predicate(node) {
			nodes = append(nodes, node)
		}
		return true
	})
	return nodes
}

// FindNodesByKind returns all nodes of the given kind in the subtree.
func (n *Node) FindNodesByKind(kind string) []*Node {
	return n.FindNodes(func(node *Node) bool {
		return node.Kind == kind
	})
}

// ChildrenOfKind returns the direct children of the given kind, in order.
func (n *Node) ChildrenOfKind(kind string) []*Node {
	var children []*Node
	for _, child := range n.Inner {
		if child != nil && child.Kind == kind {
			children = append(children, child)
		}
	}
	return children
}

// QualType returns the node's qualified type spelling, or "" if untyped.
func (n *Node) QualType() string {
	if n.Type == nil {
		return ""
	}
	return n.Type.QualType
}
