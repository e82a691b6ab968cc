package extract

import (
	"github.com/FidelityFramework/Farscape/internal/ast"
)

// buildRecord builds a struct or union declaration from a RecordDecl node.
// Empty-named nodes with no fields are structural noise and dropped.
func (e *Extractor) buildRecord(node *ast.Node) *Declaration {
	fields := fieldsOf(node)
	if node.Name == "" && len(fields) == 0 {
		return nil
	}

	return &Declaration{
		Kind: DeclStruct,
		Name: node.Name,
		Struct: &StructDecl{
			Fields:  fields,
			IsUnion: node.TagUsed == "union",
		},
	}
}

// buildCXXRecord dispatches a C++ record node: class-tagged records become
// class declarations, struct/union-tagged ones follow the C record path.
func (e *Extractor) buildCXXRecord(node *ast.Node) *Declaration {
	if node.TagUsed != "class" {
		return e.buildRecord(node)
	}
	return e.buildClass(node)
}

// buildClass builds a class declaration from a class-tagged CXXRecordDecl.
// Anonymous classes are excluded entirely, unlike anonymous structs.
func (e *Extractor) buildClass(node *ast.Node) *Declaration {
	if node.Name == "" {
		return nil
	}

	cls := &ClassDecl{
		Fields: fieldsOf(node),
	}
	for _, child := range node.Inner {
		if child == nil || child.IsImplicit {
			continue
		}
		if child.Kind != "CXXMethodDecl" && child.Kind != "FunctionDecl" {
			continue
		}
		cls.Methods = append(cls.Methods, MethodDecl{
			Name:       child.Name,
			ReturnType: returnTypeOf(child.QualType()),
			Params:     paramsOf(child),
			IsVirtual:  child.Virtual,
			IsStatic:   child.StorageClass == "static",
			IsInline:   child.Inline,
		})
		if child.Pure {
			cls.IsAbstract = true
		}
	}

	return &Declaration{
		Kind:  DeclClass,
		Name:  node.Name,
		Class: cls,
	}
}

// fieldsOf converts the field-kind children of a record node, in order.
func fieldsOf(node *ast.Node) []FieldDecl {
	var fields []FieldDecl
	for _, child := range node.ChildrenOfKind("FieldDecl") {
		if child.IsImplicit {
			continue
		}
		fields = append(fields, fieldFromNode(child))
	}
	return fields
}

// fieldFromNode builds one field from a FieldDecl node, deriving qualifier
// flags and any fixed-size array suffix from the type spelling.
func fieldFromNode(node *ast.Node) FieldDecl {
	field := parseFieldType(node.QualType())
	field.Name = node.Name
	return field
}

// buildTypedef builds a type alias from a TypedefDecl node. The underlying
// type spelling is carried verbatim.
func (e *Extractor) buildTypedef(node *ast.Node) *Declaration {
	if node.Name == "" {
		return nil
	}
	return &Declaration{
		Kind:    DeclTypedef,
		Name:    node.Name,
		Typedef: &TypedefDecl{Underlying: node.QualType()},
	}
}
