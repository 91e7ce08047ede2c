// Package mcp hosts the dotfiles tools on a Model Context Protocol (MCP)
// server using the mcp-go library.
//
// The server communicates via stdin/stdout using JSON-RPC 2.0 as specified
// by the MCP standard. Protocol framing, capability negotiation and the
// message loop all belong to mcp-go; this package only adapts tool-call
// requests onto the dispatcher and hands the rendered text back.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dotserve/internal/config"
	"dotserve/internal/dotfiles"
	"dotserve/internal/gitrepo"
	"dotserve/internal/logging"
	"dotserve/internal/tools"
)

const (
	serverName    = "dotfiles-server"
	serverVersion = "1.0.0"
)

// Server represents an MCP server instance using mcp-go
type Server struct {
	config     *config.Config
	logger     *logging.AppLogger
	dispatcher *tools.Dispatcher
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, logger *logging.AppLogger) *Server {
	return &Server{
		config: cfg,
		logger: logger,
	}
}

// Start wires the tool pipeline and serves MCP over stdio. It blocks until
// the client disconnects or the transport fails.
func (s *Server) Start() error {
	s.logger.Info("Initializing MCP server",
		"git_dir", s.config.GitDir,
		"work_tree", s.config.WorkTree,
	)

	// Startup diagnostic: tool responses collapse "missing repo" and
	// "empty repo" into one message, so the distinction lives in the logs.
	info := gitrepo.Inspect(s.config)
	if info.Accessible {
		s.logger.Info("Dotfiles repository found",
			"head", info.Head,
			"branch", info.Branch,
			"detail", info.Detail,
		)
	} else {
		s.logger.Warn("Dotfiles repository not accessible",
			"git_dir", s.config.GitDir,
			"detail", info.Detail,
		)
	}

	s.initialize()

	s.logger.Info("MCP server created, starting stdio communication")

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}

// initialize wires the tool pipeline and registers the catalog with the
// mcp-go server. Split out of Start so tests can exercise the wiring
// without serving stdio.
func (s *Server) initialize() {
	runner := gitrepo.NewExecRunner(s.config, s.logger)
	queries := dotfiles.NewQueries(runner, s.config, s.logger)
	s.dispatcher = tools.NewDispatcher(queries, s.logger)

	s.mcpServer = server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
	)

	for _, desc := range tools.Registry() {
		s.mcpServer.AddTool(buildTool(desc), s.handleToolCall)
	}
}

// Stop gracefully shuts down the MCP server
func (s *Server) Stop() error {
	s.logger.Info("Stopping MCP server")
	// The mcp-go server handles cleanup when the stdio stream closes
	return nil
}

// handleToolCall adapts an incoming MCP tool call onto the dispatcher. The
// dispatcher encodes every failure as text, so the transport always gets a
// well-formed result and never a protocol-level error.
func (s *Server) handleToolCall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := s.dispatcher.Invoke(ctx, request.Params.Name, request.GetArguments())
	if !result.OK() {
		s.logger.Debug("Tool call did not succeed",
			"tool", request.Params.Name,
			"kind", result.Kind.String(),
		)
	}

	return mcp.NewToolResultText(result.Text), nil
}

// buildTool converts a catalog descriptor into the mcp-go tool definition.
func buildTool(desc tools.Descriptor) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(desc.Description)}
	for _, arg := range desc.Args {
		propOpts := []mcp.PropertyOption{mcp.Description(arg.Description)}
		if arg.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		// The catalog only describes string arguments today.
		opts = append(opts, mcp.WithString(arg.Name, propOpts...))
	}
	return mcp.NewTool(desc.Name, opts...)
}
