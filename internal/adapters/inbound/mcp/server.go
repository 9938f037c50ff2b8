// Package mcp exposes PDF scanning over the Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewPDFScanMCPServer creates an MCP server with the pdfscan tools
// registered. configDir is the directory holding .pdfscan.yaml.
func NewPDFScanMCPServer(configDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"pdfscan",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, configDir)

	return s
}
