// Package output provides formatters for the declaration list produced by
// the extraction pipeline.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Formatter is the interface for rendering parse results.
type Formatter interface {
	// Format renders the value to a string.
	Format(v interface{}) (string, error)

	// FormatToWriter writes formatted output directly to a writer.
	FormatToWriter(w io.Writer, v interface{}) error
}

// NewFormatter returns the formatter for a format name ("yaml" or "json").
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "yaml", "":
		return &YAMLFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// YAMLFormatter renders results as YAML output.
type YAMLFormatter struct{}

// Format renders the value as YAML.
func (f *YAMLFormatter) Format(v interface{}) (string, error) {
	var buf bytes.Buffer
	if err := f.FormatToWriter(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatToWriter writes YAML output to a writer.
func (f *YAMLFormatter) FormatToWriter(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(v)
}

// JSONFormatter renders results as JSON output.
type JSONFormatter struct{}

// Format renders the value as JSON.
func (f *JSONFormatter) Format(v interface{}) (string, error) {
	var buf bytes.Buffer
	if err := f.FormatToWriter(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatToWriter writes JSON output to a writer.
func (f *JSONFormatter) FormatToWriter(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}
