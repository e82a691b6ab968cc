package output

import (
	"github.com/FidelityFramework/Farscape/internal/extract"
	"github.com/FidelityFramework/Farscape/internal/header"
)

// ParseOutput is the top-level document rendered for one parsed header.
type ParseOutput struct {
	// Header is the parsed header path.
	Header string `yaml:"header" json:"header"`

	// Count is the number of top-level declarations.
	Count int `yaml:"count" json:"count"`

	// Declarations in encounter order: AST-derived first, then macros.
	Declarations []extract.Declaration `yaml:"declarations" json:"declarations"`

	// Warnings records non-fatal shortfalls such as a failed macro pass.
	Warnings []string `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

// FromResult shapes a pipeline result for rendering.
func FromResult(result *header.Result) *ParseOutput {
	return &ParseOutput{
		Header:       result.HeaderPath,
		Count:        len(result.Declarations),
		Declarations: result.Declarations,
		Warnings:     result.Warnings,
	}
}
