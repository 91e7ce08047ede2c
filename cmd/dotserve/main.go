// Package main is the entry point for the dotserve MCP server.
//
// Startup sequence:
//
// 1. Initialize logging (stderr; stdout is reserved for the MCP transport)
// 2. Resolve the repository location (conventional ~/.cfg bare repo with
//    the home directory as work tree, optionally overridden by a config file)
// 3. Start the MCP server and serve tool calls over stdio until the client
//    disconnects
package main

import (
	"os"

	"dotserve/internal/config"
	"dotserve/internal/logging"
	"dotserve/internal/mcp"
)

func main() {
	appLogger := logging.NewAppLogger()

	cfg, err := config.Load()
	if err != nil {
		appLogger.Error("Error resolving repository location", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Repository location resolved",
		"git_dir", cfg.GitDir,
		"work_tree", cfg.WorkTree,
	)

	srv := mcp.NewServer(cfg, appLogger)
	if err := srv.Start(); err != nil {
		appLogger.Error("MCP server failed", "error", err)
		os.Exit(1)
	}
}
