package cmd

import (
	"fmt"
	"os"

	"github.com/FidelityFramework/Farscape/internal/config"
	"github.com/FidelityFramework/Farscape/internal/header"
	"github.com/FidelityFramework/Farscape/internal/output"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <header>",
	Short: "Extract the declarations defined in a header file",
	Long: `Parse runs the external compiler frontend against the given header and
prints the declarations physically defined in it.

The pipeline:
  1. Invokes the frontend in AST-dump mode (syntax only, JSON tree)
  2. Invokes it again in preprocess-only mode for the macro dump
  3. Decodes the tree and tracks per-node file provenance
  4. Extracts typed declarations for nodes local to the header
  5. Classifies #define lines and merges them after the AST declarations

Declarations brought in through #include never appear in the output. A failed
macro pass degrades to an empty macro set; a failed AST pass is fatal.

Examples:
  farscape parse device.h                      # Extract declarations as YAML
  farscape parse device.h --format json        # JSON output
  farscape parse device.h -I include -I sys    # Extra include directories
  farscape parse device.h -D STM32F4 -D DEBUG  # Preprocessor defines
  farscape parse device.h --no-macros          # Skip the macro pass
  farscape parse device.h --macro-prefix TIM_  # Keep only TIM_* macros`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

// Command-line flags
var (
	parseIncludes      []string
	parseDefines       []string
	parseNoMacros      bool
	parseMacroPrefixes []string
	parseFrontend      string
)

func init() {
	rootCmd.AddCommand(parseCmd)

	// Parse-specific flags
	parseCmd.Flags().StringArrayVarP(&parseIncludes, "include", "I", nil, "Include search directory (repeatable)")
	parseCmd.Flags().StringArrayVarP(&parseDefines, "define", "D", nil, "Preprocessor define NAME or NAME=VALUE (repeatable)")
	parseCmd.Flags().BoolVar(&parseNoMacros, "no-macros", false, "Skip the preprocessor macro pass")
	parseCmd.Flags().StringArrayVar(&parseMacroPrefixes, "macro-prefix", nil, "Keep only macros with this name prefix (repeatable)")
	parseCmd.Flags().StringVar(&parseFrontend, "frontend", "", "Frontend binary (default from config, then clang)")
}

// runParse implements the parse command logic
func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := header.Options{
		HeaderPath:     args[0],
		IncludePaths:   append(parseIncludes, cfg.Parse.IncludePaths...),
		Defines:        append(parseDefines, cfg.Parse.Defines...),
		IncludeMacros:  cfg.Parse.Macros && !parseNoMacros,
		MacroPrefixes:  append(parseMacroPrefixes, cfg.Parse.MacroPrefixes...),
		FrontendBinary: cfg.Frontend.Binary,
		FrontendArgs:   cfg.Frontend.ExtraArgs,
		Verbose:        verbose,
	}
	if parseFrontend != "" {
		opts.FrontendBinary = parseFrontend
	}

	result, err := header.Parse(cmd.Context(), opts)
	if err != nil {
		return err
	}

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.NewFormatter(format)
	if err != nil {
		return err
	}

	return formatter.FormatToWriter(os.Stdout, output.FromResult(result))
}

// loadConfig resolves configuration from --config or the nearest
// .farscape directory.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromPath(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
