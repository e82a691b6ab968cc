package extract

import (
	"path/filepath"
	"strings"

	"github.com/FidelityFramework/Farscape/internal/ast"
)

// Extractor walks a decoded AST tree and collects the declarations that are
// physically defined in the target header.
type Extractor struct {
	// targetPath is the header path as given by the caller.
	targetPath string
	// targetAbs is the canonicalized absolute path, or "" when the path
	// could not be canonicalized.
	targetAbs string
	// targetBase is the header's base file name, used as a suffix-match
	// fallback when canonical comparison is unavailable. Two same-named
	// headers in different search directories can still be conflated by
	// the fallback; callers who need certainty should pass absolute paths.
	targetBase string
}

// NewExtractor creates an extractor for the given target header path.
func NewExtractor(headerPath string) *Extractor {
	e := &Extractor{
		targetPath: headerPath,
		targetBase: filepath.Base(headerPath),
	}
	if abs, err := filepath.Abs(headerPath); err == nil {
		e.targetAbs = abs
	}
	return e
}

// builderFunc builds one declaration from a node already known to be local
// and not compiler-synthesized. A nil return means the node yields nothing.
type builderFunc func(e *Extractor, node *ast.Node) *Declaration

// builders is the closed dispatch table from frontend node kind to builder.
// Namespace nodes are handled directly by the traversal because their
// members need the file accumulator threaded through them.
var builders = map[string]builderFunc{
	"FunctionDecl":  (*Extractor).buildFunction,
	"RecordDecl":    (*Extractor).buildRecord,
	"CXXRecordDecl": (*Extractor).buildCXXRecord,
	"EnumDecl":      (*Extractor).buildEnum,
	"TypedefDecl":   (*Extractor).buildTypedef,
}

// Extract walks the tree rooted at the translation unit and returns the
// declarations local to the target header, in traversal order.
func (e *Extractor) Extract(root *ast.Node) []Declaration {
	if root == nil {
		return nil
	}
	decls, _ := e.visitChildren(root, "")
	return decls
}

// visitChildren visits each child of node in document order, threading the
// current-file accumulator through the traversal. The dump stamps a file
// only when file identity changes relative to the previous node, so the
// accumulator must advance across every node, including ones that produce
// no declaration. Returns the collected declarations and the accumulator
// value after the last descendant.
func (e *Extractor) visitChildren(node *ast.Node, currentFile string) ([]Declaration, string) {
	var decls []Declaration

	for _, child := range node.Inner {
		if child == nil {
			continue
		}
		currentFile = advanceFile(child, currentFile)

		if child.Kind == "NamespaceDecl" {
			var members []Declaration
			members, currentFile = e.visitChildren(child, currentFile)
			if e.isLocal(child, currentFile) && !child.IsImplicit && child.Name != "" {
				decls = append(decls, Declaration{
					Kind:      DeclNamespace,
					Name:      child.Name,
					Namespace: &NamespaceDecl{Members: members},
				})
			} else {
				decls = append(decls, members...)
			}
			// Members were just visited; do not re-descend.
			continue
		}

		if e.isLocal(child, currentFile) && !child.IsImplicit {
			if build, ok := builders[child.Kind]; ok {
				if decl := build(e, child); decl != nil {
					decls = append(decls, *decl)
				}
			}
		}

		var nested []Declaration
		nested, currentFile = e.visitChildren(child, currentFile)
		decls = append(decls, nested...)
	}

	return decls, currentFile
}

// advanceFile returns the file identity in effect at node: the node's own
// stamp when it carries one, otherwise the carried-forward value.
func advanceFile(node *ast.Node, currentFile string) string {
	if node.Loc != nil && node.Loc.File != "" {
		return node.Loc.File
	}
	if node.Range != nil && node.Range.Begin != nil && node.Range.Begin.File != "" {
		return node.Range.Begin.File
	}
	return currentFile
}

// isLocal reports whether a node originates in the target header itself.
// A node reached through an #include carries an included-from marker even
// when its own file field nominally matches.
func (e *Extractor) isLocal(node *ast.Node, currentFile string) bool {
	if node.Loc != nil && node.Loc.IncludedFrom != nil {
		return false
	}
	if node.Range != nil && node.Range.Begin != nil && node.Range.Begin.IncludedFrom != nil {
		return false
	}
	if currentFile == "" {
		return false
	}
	if currentFile == e.targetPath || (e.targetAbs != "" && currentFile == e.targetAbs) {
		return true
	}
	// Fallback when the dump and the caller spell the path differently.
	return currentFile == e.targetBase ||
		strings.HasSuffix(currentFile, "/"+e.targetBase) ||
		strings.HasSuffix(currentFile, string(filepath.Separator)+e.targetBase)
}
