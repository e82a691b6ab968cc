// Package ast decodes the frontend's JSON AST dump.
package ast

import "fmt"

// DecodeError is returned when the AST dump payload cannot be decoded.
type DecodeError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding AST dump: %v", e.Err)
	}
	return fmt.Sprintf("decoding AST dump: %s", e.Message)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
