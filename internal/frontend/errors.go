package frontend

import (
	"fmt"
	"strings"
)

// ToolError is returned when the frontend exits nonzero.
// It carries the captured error-stream text for diagnostics.
type ToolError struct {
	Binary   string
	Args     []string
	ExitCode int
	Stderr   string
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	diag := strings.TrimSpace(e.Stderr)
	if diag == "" {
		return fmt.Sprintf("%s exited with code %d", e.Binary, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Binary, e.ExitCode, diag)
}

// NotFoundError is returned when the frontend binary cannot be launched.
type NotFoundError struct {
	Binary string
	Err    error
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot launch frontend %q: %v", e.Binary, e.Err)
}

// Unwrap returns the underlying error.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}
