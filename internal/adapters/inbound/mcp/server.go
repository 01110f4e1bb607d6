package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ragicss/sizebudget/internal/domain"
)

// NewSizeBudgetMCPServer creates a new MCP server with the size check tool
// and budget resources registered. cfg fixes the output directory, artifacts
// and ceilings for every call.
func NewSizeBudgetMCPServer(cfg domain.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"sizebudget",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, cfg)
	registerResources(s, cfg)

	return s
}
