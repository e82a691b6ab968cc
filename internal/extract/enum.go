package extract

import (
	"strconv"

	"github.com/FidelityFramework/Farscape/internal/ast"
)

// buildEnum builds an enumeration declaration from an EnumDecl node.
// Empty-named nodes with no constants are dropped as structural noise.
func (e *Extractor) buildEnum(node *ast.Node) *Declaration {
	enum := &EnumDecl{}
	if node.FixedUnderlyingType != nil {
		enum.UnderlyingType = node.FixedUnderlyingType.QualType
	}

	// Constants without an initializer continue from the previous value,
	// mirroring the language rule the frontend already applied.
	next := int64(0)
	for _, child := range node.ChildrenOfKind("EnumConstantDecl") {
		value := next
		if v, ok := literalValueOf(child); ok {
			value = v
		}
		enum.Values = append(enum.Values, EnumValue{Name: child.Name, Value: value})
		next = value + 1
	}

	if node.Name == "" && len(enum.Values) == 0 {
		return nil
	}

	return &Declaration{
		Kind: DeclEnum,
		Name: node.Name,
		Enum: enum,
	}
}

// literalValueOf recovers an enum constant's integer value by searching one
// or two levels of nested expression nodes for a literal. The dump wraps
// the value in a constant expression, sometimes behind an implicit cast.
// Signed 64-bit parsing keeps negative values intact.
func literalValueOf(node *ast.Node) (int64, bool) {
	for _, child := range node.Inner {
		if child == nil {
			continue
		}
		if v, ok := parseLiteral(child); ok {
			return v, true
		}
		for _, grandchild := range child.Inner {
			if grandchild == nil {
				continue
			}
			if v, ok := parseLiteral(grandchild); ok {
				return v, true
			}
		}
	}
	return 0, false
}

func parseLiteral(node *ast.Node) (int64, bool) {
	if node.Value == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(string(node.Value), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
