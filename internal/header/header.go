// Package header composes the extraction pipeline: two frontend passes over
// one header file, tree decoding, declaration extraction, and macro
// classification, merged into a single ordered declaration list.
//
// The AST pass is fatal on failure. The macro pass is not: a failed macro
// dump degrades to an empty macro set and a warning, never an abort. An
// empty combined result is always an error.
package header

import (
	"context"
	"fmt"
	"os"

	"github.com/FidelityFramework/Farscape/internal/ast"
	"github.com/FidelityFramework/Farscape/internal/extract"
	"github.com/FidelityFramework/Farscape/internal/frontend"
)

// Frontend is the subset of the invoker the pipeline needs. It exists so
// the aggregation logic can be exercised against captured fixture text
// without launching the external tool.
type Frontend interface {
	DumpAST(ctx context.Context, headerPath string) (string, error)
	DumpMacros(ctx context.Context, headerPath string) (string, error)
}

// Options configures one parse of one header.
type Options struct {
	// HeaderPath is the target header. It must exist.
	HeaderPath string
	// IncludePaths and Defines are passed to both frontend passes.
	IncludePaths []string
	Defines      []string
	// IncludeMacros enables the preprocessor macro pass.
	IncludeMacros bool
	// MacroPrefixes is an optional macro name allowlist. Reserved names
	// are excluded regardless.
	MacroPrefixes []string
	// FrontendBinary overrides the frontend executable.
	FrontendBinary string
	// FrontendArgs are extra arguments passed verbatim to the frontend.
	FrontendArgs []string
	// Verbose surfaces non-fatal diagnostics on stderr.
	Verbose bool
}

// Result is the outcome of one successful parse.
type Result struct {
	// HeaderPath is the parsed header.
	HeaderPath string
	// Declarations holds AST-derived declarations followed by classified
	// macros, each group in encounter order.
	Declarations []extract.Declaration
	// Warnings records non-fatal shortfalls, currently only a failed
	// macro pass.
	Warnings []string
}

// Parse runs the full pipeline against the configured frontend binary.
func Parse(ctx context.Context, opts Options) (*Result, error) {
	if _, err := os.Stat(opts.HeaderPath); err != nil {
		return nil, fmt.Errorf("header file: %w", err)
	}

	inv := frontend.NewInvoker(opts.FrontendBinary)
	inv.IncludePaths = opts.IncludePaths
	inv.Defines = opts.Defines
	inv.ExtraArgs = opts.FrontendArgs

	return parseWith(ctx, inv, opts)
}

// parseWith is the aggregation core, separated from process launching so it
// can run against a fake frontend in tests.
func parseWith(ctx context.Context, fe Frontend, opts Options) (*Result, error) {
	dump, err := fe.DumpAST(ctx, opts.HeaderPath)
	if err != nil {
		return nil, fmt.Errorf("AST pass: %w", err)
	}

	root, err := ast.Decode([]byte(dump))
	if err != nil {
		return nil, err
	}

	ex := extract.NewExtractor(opts.HeaderPath)
	decls := ex.Extract(root)

	result := &Result{HeaderPath: opts.HeaderPath}

	if opts.IncludeMacros {
		macroDump, err := fe.DumpMacros(ctx, opts.HeaderPath)
		if err != nil {
			warning := fmt.Sprintf("macro pass failed, continuing without macros: %v", err)
			result.Warnings = append(result.Warnings, warning)
			if opts.Verbose {
				fmt.Fprintln(os.Stderr, "farscape:", warning)
			}
		} else {
			decls = append(decls, extract.ClassifyMacros(macroDump, opts.MacroPrefixes)...)
		}
	}

	if len(decls) == 0 {
		return nil, &EmptyResultError{HeaderPath: opts.HeaderPath}
	}

	result.Declarations = decls
	return result, nil
}
