// Package mcp provides an MCP (Model Context Protocol) server for farscape.
// This allows AI agents to run the header extraction pipeline through MCP
// tools instead of CLI commands.
package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/FidelityFramework/Farscape/internal/config"
	"github.com/FidelityFramework/Farscape/internal/frontend"
	"github.com/FidelityFramework/Farscape/internal/header"
	"github.com/FidelityFramework/Farscape/internal/output"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server with farscape-specific functionality
type Server struct {
	mcpServer *server.MCPServer
	cfg       *config.Config
}

// New creates a new MCP server using the given configuration.
func New(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	mcpServer := server.NewMCPServer(
		"farscape",
		"0.1.0",
		server.WithToolCapabilities(false),
	)

	s := &Server{
		mcpServer: mcpServer,
		cfg:       cfg,
	}

	s.registerParseTool()
	s.registerDoctorTool()

	return s, nil
}

// ServeStdio starts the server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// registerParseTool registers the parse_header tool
func (s *Server) registerParseTool() {
	tool := mcp.NewTool("parse_header",
		mcp.WithDescription("Extract the declarations (structs, enums, typedefs, functions, classes, macros) defined in a C/C++ header file. Declarations pulled in through #include are excluded."),
		mcp.WithString("header",
			mcp.Required(),
			mcp.Description("Path to the header file"),
		),
		mcp.WithString("include_paths",
			mcp.Description("Comma-separated include directories"),
		),
		mcp.WithString("defines",
			mcp.Description("Comma-separated preprocessor defines (NAME or NAME=VALUE)"),
		),
		mcp.WithBoolean("macros",
			mcp.Description("Include classified #define macros (default: true)"),
		),
		mcp.WithString("macro_prefixes",
			mcp.Description("Comma-separated macro name prefixes to keep (default: all)"),
		),
	)

	s.mcpServer.AddTool(tool, s.handleParse)
}

// registerDoctorTool registers the frontend_check tool
func (s *Server) registerDoctorTool() {
	tool := mcp.NewTool("frontend_check",
		mcp.WithDescription("Verify the configured compiler frontend is launchable and report its version."),
	)

	s.mcpServer.AddTool(tool, s.handleDoctor)
}

// Tool handlers

func (s *Server) handleParse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	headerPath, ok := args["header"].(string)
	if !ok || headerPath == "" {
		return mcp.NewToolResultError("header parameter is required"), nil
	}

	includeMacros := s.cfg.Parse.Macros
	if m, ok := args["macros"].(bool); ok {
		includeMacros = m
	}

	opts := header.Options{
		HeaderPath:     headerPath,
		IncludePaths:   append(splitList(args["include_paths"]), s.cfg.Parse.IncludePaths...),
		Defines:        append(splitList(args["defines"]), s.cfg.Parse.Defines...),
		IncludeMacros:  includeMacros,
		MacroPrefixes:  append(splitList(args["macro_prefixes"]), s.cfg.Parse.MacroPrefixes...),
		FrontendBinary: s.cfg.Frontend.Binary,
		FrontendArgs:   s.cfg.Frontend.ExtraArgs,
	}

	result, err := header.Parse(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.MarshalIndent(output.FromResult(result), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleDoctor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inv := frontend.NewInvoker(s.cfg.Frontend.Binary)
	version, err := inv.Version(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strings.TrimSpace(version)), nil
}

// splitList splits a comma-separated tool argument into its trimmed parts.
func splitList(arg interface{}) []string {
	s, _ := arg.(string)
	if s == "" {
		return nil
	}
	var parts []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
