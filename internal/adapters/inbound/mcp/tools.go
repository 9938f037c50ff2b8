package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ErfanNahidi/pdf-scanner/internal/adapters/outbound/config"
	"github.com/ErfanNahidi/pdf-scanner/internal/adapters/outbound/pdfid"
	"github.com/ErfanNahidi/pdf-scanner/internal/application"
	"github.com/ErfanNahidi/pdf-scanner/internal/domain"
)

// registerTools registers all pdfscan MCP tools on the given server.
func registerTools(s *server.MCPServer, configDir string) {
	// 1. pdfscan_scan
	s.AddTool(
		mcplib.NewTool("pdfscan_scan",
			mcplib.WithDescription("Scan one PDF file for structural threat indicators and return the full result as JSON"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the PDF file to scan"),
			),
			mcplib.WithString("timeout",
				mcplib.Description("Optional timeout override as a duration string (e.g. 45s)"),
			),
		),
		handleScan(configDir),
	)

	// 2. pdfscan_batch
	s.AddTool(
		mcplib.NewTool("pdfscan_batch",
			mcplib.WithDescription("Scan several PDF files concurrently; returns one result per file as JSON"),
			mcplib.WithString("paths",
				mcplib.Required(),
				mcplib.Description("Comma-separated PDF file paths"),
			),
		),
		handleBatch(configDir),
	)

	// 3. pdfscan_threats
	s.AddTool(
		mcplib.NewTool("pdfscan_threats",
			mcplib.WithDescription("Return the active threat rule table (keyword, severity, description) as JSON"),
		),
		handleThreats(configDir),
	)
}

// newService builds the standard service stack from the policy file.
func newService(configDir string) (*application.ScanService, error) {
	policy, err := config.New().Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading policy: %w", err)
	}
	return application.NewScanService(
		policy,
		pdfid.NewLocator(policy.ToolPath),
		pdfid.NewRunner(),
		pdfid.NewParser(),
	), nil
}

func handleScan(configDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var timeout time.Duration
		if raw := request.GetString("timeout", ""); raw != "" {
			timeout, err = time.ParseDuration(raw)
			if err != nil {
				return errorResult(fmt.Sprintf("invalid timeout: %v", err)), nil
			}
		}

		svc, err := newService(configDir)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		res := svc.Scan(ctx, domain.ScanRequest{Path: path, Timeout: timeout})
		return jsonResult(res)
	}
}

func handleBatch(configDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("paths")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		paths := splitAndTrim(raw)
		if len(paths) == 0 {
			return errorResult("paths must name at least one file"), nil
		}

		svc, err := newService(configDir)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		results := application.NewBatchScanner(svc).ScanAll(ctx, paths, nil)
		return jsonResult(results)
	}
}

func handleThreats(configDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		policy, err := config.New().Load(configDir)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(policy.Table())
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
