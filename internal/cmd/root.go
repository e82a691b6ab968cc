// Package cmd contains all CLI commands for farscape.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Version is the current version of farscape
	Version = "0.1.0"

	// Global flags
	verbose      bool
	configPath   string
	forAgents    bool
	outputFormat string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "farscape",
	Short: "C/C++ header declaration extractor",
	Long: `farscape extracts a normalized declaration model from a C/C++ header.

It does not parse C/C++ itself. An external compiler frontend (clang by
default) is invoked twice, once for a JSON AST dump and once for a
preprocessor macro dump. farscape decodes both, filters out everything pulled in
through #include, and reconstructs the source-ordered list of declarations
physically defined in the target header: structs, unions, enums, typedefs,
functions, classes, namespaces, and classified macros.

Main capabilities:
  - Extract declarations local to one header, in source order
  - Classify #define macros (value, expression, function-like, pointer cast)
  - Filter macros by name prefix; reserved names are always excluded
  - Emit the model as YAML or JSON for downstream binding generators
  - Serve the pipeline to AI agents over MCP

Examples:
  farscape parse device.h                       # Extract declarations
  farscape parse device.h -I include -D DEBUG   # With search paths and defines
  farscape parse device.h --macro-prefix GPIO_  # Only GPIO_* macros
  farscape doctor                               # Verify the frontend binary
  farscape serve --mcp                          # Start MCP server

See 'farscape <command> --help' for command-specific options.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: .farscape/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (yaml|json)")
	rootCmd.Flags().BoolVar(&forAgents, "for-agents", false, "Output machine-readable capability discovery JSON")

	// Set custom help function to intercept --for-agents flag
	originalHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if forAgents {
			outputAgentHelp(cmd)
			return
		}
		originalHelp(cmd, args)
	})
}

// CommandInfo represents a command for agent discovery
type CommandInfo struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Usage       string        `json:"usage"`
	Flags       []FlagInfo    `json:"flags,omitempty"`
	Subcommands []CommandInfo `json:"subcommands,omitempty"`
	Examples    []string      `json:"examples,omitempty"`
}

// FlagInfo represents a command flag for agent discovery
type FlagInfo struct {
	Name        string `json:"name"`
	Shorthand   string `json:"shorthand,omitempty"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Default     string `json:"default,omitempty"`
}

// outputAgentHelp outputs machine-readable JSON describing all commands
func outputAgentHelp(cmd *cobra.Command) {
	root := buildCommandInfo(cmd.Root())

	output := map[string]interface{}{
		"version":      Version,
		"commands":     root.Subcommands,
		"global_flags": root.Flags,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(output)
}

// buildCommandInfo recursively builds command information for agent discovery
func buildCommandInfo(cmd *cobra.Command) CommandInfo {
	info := CommandInfo{
		Name:        cmd.Name(),
		Description: cmd.Short,
		Usage:       cmd.UseLine(),
	}

	// Collect flags
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		info.Flags = append(info.Flags, FlagInfo{
			Name:        f.Name,
			Shorthand:   f.Shorthand,
			Description: f.Usage,
			Type:        f.Value.Type(),
			Default:     f.DefValue,
		})
	})

	// Collect subcommands
	for _, sub := range cmd.Commands() {
		if !sub.Hidden {
			info.Subcommands = append(info.Subcommands, buildCommandInfo(sub))
		}
	}

	// Extract examples from Example field if available
	if cmd.Example != "" {
		// Split by newline and filter empty lines
		lines := strings.Split(cmd.Example, "\n")
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if trimmed != "" {
				info.Examples = append(info.Examples, trimmed)
			}
		}
	}

	return info
}
