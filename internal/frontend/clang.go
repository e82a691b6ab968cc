// Package frontend invokes the external compiler frontend and captures its
// output. The frontend is run in two modes: an AST-dump pass that serializes
// the parsed syntax tree as JSON, and a macro-dump pass that emits the
// preprocessor's #define lines. Both passes share include and define flags.
package frontend

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// DefaultBinary is the frontend binary used when none is configured.
const DefaultBinary = "clang"

// Invoker runs the external frontend against a header file.
type Invoker struct {
	// Binary is the frontend executable name or path.
	Binary string
	// IncludePaths are directories passed as -I flags.
	IncludePaths []string
	// Defines are preprocessor definitions passed as -D flags.
	Defines []string
	// ExtraArgs are appended verbatim before the mode-specific flags.
	ExtraArgs []string
}

// NewInvoker creates an invoker for the given binary.
// An empty binary falls back to DefaultBinary.
func NewInvoker(binary string) *Invoker {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Invoker{Binary: binary}
}

// DumpAST runs the frontend in AST-dump mode against the header and returns
// the captured JSON tree text.
func (inv *Invoker) DumpAST(ctx context.Context, headerPath string) (string, error) {
	args := inv.buildArgs([]string{"-fsyntax-only", "-Xclang", "-ast-dump=json"}, headerPath)
	return inv.run(ctx, args)
}

// DumpMacros runs the frontend in preprocess-only mode against the header and
// returns the captured macro-definition lines.
func (inv *Invoker) DumpMacros(ctx context.Context, headerPath string) (string, error) {
	args := inv.buildArgs([]string{"-E", "-dM"}, headerPath)
	return inv.run(ctx, args)
}

// Version runs the frontend with --version and returns its report.
// Used by the doctor command to verify the binary is launchable.
func (inv *Invoker) Version(ctx context.Context) (string, error) {
	return inv.run(ctx, []string{"--version"})
}

// buildArgs assembles the shared include/define flags followed by the
// mode-specific flags and the header path.
func (inv *Invoker) buildArgs(modeFlags []string, headerPath string) []string {
	args := make([]string, 0, 2*len(inv.IncludePaths)+2*len(inv.Defines)+len(inv.ExtraArgs)+len(modeFlags)+1)
	for _, inc := range inv.IncludePaths {
		args = append(args, "-I", inc)
	}
	for _, def := range inv.Defines {
		args = append(args, "-D"+def)
	}
	args = append(args, inv.ExtraArgs...)
	args = append(args, modeFlags...)
	args = append(args, headerPath)
	return args
}

// run executes the frontend and returns its standard output.
// Both output streams are captured into buffers; os/exec copies non-file
// sinks concurrently, so neither stream can back up and deadlock the child
// even on very large dumps.
func (inv *Invoker) run(ctx context.Context, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, inv.Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ToolError{
				Binary:   inv.Binary,
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return "", &NotFoundError{Binary: inv.Binary, Err: err}
	}

	return stdout.String(), nil
}
