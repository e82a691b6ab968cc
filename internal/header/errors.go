package header

import "fmt"

// EmptyResultError is returned when a well-formed run yields no usable
// declarations at all.
type EmptyResultError struct {
	HeaderPath string
}

// Error implements the error interface.
func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no declarations found in %s", e.HeaderPath)
}
