package extract

import (
	"fmt"
	"strings"

	"github.com/FidelityFramework/Farscape/internal/ast"
)

// buildFunction builds a function declaration from a FunctionDecl node.
func (e *Extractor) buildFunction(node *ast.Node) *Declaration {
	if node.Name == "" {
		return nil
	}

	fn := &FunctionDecl{
		ReturnType: returnTypeOf(node.QualType()),
		Params:     paramsOf(node),
		IsStatic:   node.StorageClass == "static",
		IsInline:   node.Inline,
		IsVariadic: node.Variadic,
	}

	return &Declaration{
		Kind:     DeclFunction,
		Name:     node.Name,
		Function: fn,
	}
}

// returnTypeOf derives the return type from a full signature spelling by
// taking the prefix up to the parameter-list opening delimiter.
// "int (int, char *)" yields "int".
func returnTypeOf(signature string) string {
	if idx := strings.Index(signature, "("); idx >= 0 {
		return strings.TrimSpace(signature[:idx])
	}
	return strings.TrimSpace(signature)
}

// paramsOf collects the parameter nodes of a function-kind node, in order.
// Anonymous parameters get a positional placeholder name.
func paramsOf(node *ast.Node) []Param {
	var params []Param
	for _, child := range node.ChildrenOfKind("ParmVarDecl") {
		name := child.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", len(params))
		}
		params = append(params, Param{
			Name: name,
			Type: child.QualType(),
		})
	}
	return params
}
