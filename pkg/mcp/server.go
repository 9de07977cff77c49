package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/unowned-ai/epochs/pkg/epochs"
)

// EpochsMCPServer bundles the mcp-go server with the kind registry the
// tool handlers consult.
type EpochsMCPServer struct {
	mcpServer *server.MCPServer
	registry  *epochs.Registry
}

// NewEpochsMCPServer creates an MCP server backed by the given registry.
// A nil registry means the builtin kinds only.
func NewEpochsMCPServer(registry *epochs.Registry) *EpochsMCPServer {
	if registry == nil {
		registry = epochs.NewRegistry()
	}

	s := server.NewMCPServer(
		"Epochs MCP Server",
		epochs.Version,
		server.WithLogging(),
		server.WithRecovery(),
	)

	return &EpochsMCPServer{
		mcpServer: s,
		registry:  registry,
	}
}

// Start runs the stdio event loop. Make sure to register tools beforehand.
func (s *EpochsMCPServer) Start() error {
	return server.ServeStdio(s.mcpServer)
}

// Registry returns the kind registry the server was built with.
func (s *EpochsMCPServer) Registry() *epochs.Registry {
	return s.registry
}

// MCPRawServer exposes the raw mcp-go server (useful for additional configuration).
func (s *EpochsMCPServer) MCPRawServer() *server.MCPServer {
	return s.mcpServer
}
