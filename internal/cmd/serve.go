package cmd

import (
	"fmt"

	"github.com/FidelityFramework/Farscape/internal/mcp"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server for AI agent integration",
	Long: `Start an MCP (Model Context Protocol) server for AI agent integration.

This allows AI agents to run the header extraction pipeline through MCP tools
instead of spawning CLI commands. Use this when iterating over many headers
where repeated CLI calls would be wasteful.

Available Tools:
  parse_header     Extract declarations from a header file
  frontend_check   Verify the configured frontend binary

Examples:
  farscape serve --mcp     # Start with stdio transport`,
	RunE: runServe,
}

var serveMCP bool

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveMCP, "mcp", false, "Start MCP server (stdio transport)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if !serveMCP {
		return fmt.Errorf("serve requires --mcp (stdio transport is the only supported mode)")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srv, err := mcp.New(cfg)
	if err != nil {
		return fmt.Errorf("starting MCP server: %w", err)
	}

	return srv.ServeStdio()
}
