package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unowned-ai/epochs/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Epochs MCP server (stdio)",
	Long: `Start a Model Context Protocol (MCP) server that exposes all epoch
conversions as MCP tools via STDIO.

Kinds declared in the --kinds file are registered alongside the builtins.

Example:

  epochs mcp
  epochs mcp --kinds extra-kinds.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := buildRegistry()
		if err != nil {
			return err
		}

		srv := mcp.NewEpochsMCPServer(registry)
		s := srv.MCPRawServer()

		mcp.RegisterPingTool(s)
		mcp.RegisterConvertTool(s, registry)
		mcp.RegisterConvertAllTool(s, registry)
		mcp.RegisterToEpochTool(s, registry)
		mcp.RegisterListKindsTool(s, registry)
		mcp.RegisterUUIDTimeTool(s)

		// Log to stderr so we don't contaminate the JSON-RPC stream on stdout.
		fmt.Fprintf(os.Stderr, "Epochs MCP server started with %d kinds.\n", len(registry.Kinds()))
		fmt.Fprintln(os.Stderr, "Available tools: ping, convert_epoch, convert_all, to_epoch, list_kinds, uuid_time")
		fmt.Fprintln(os.Stderr, "Listening for MCP JSON-RPC on STDIN/STDOUT ... (Ctrl+C to quit)")

		// Run the server (blocks until stdio closes).
		return srv.Start()
	},
}
