package cli

import (
	mcpadapter "github.com/ErfanNahidi/pdf-scanner/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the pdfscan MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the pdfscan MCP server (stdio)",
		Long:  "Start the pdfscan MCP server using stdio transport, exposing PDF scanning and the threat rule table to AI assistants.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewPDFScanMCPServer(configDir)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory containing .pdfscan.yaml")

	return cmd
}
