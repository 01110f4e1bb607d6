package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ragicss/sizebudget/internal/adapters/outbound/locator"
	"github.com/ragicss/sizebudget/internal/adapters/outbound/measurer"
	"github.com/ragicss/sizebudget/internal/adapters/outbound/tui"
	"github.com/ragicss/sizebudget/internal/application"
	"github.com/ragicss/sizebudget/internal/domain"
)

// registerTools registers all sizebudget MCP tools on the given server.
func registerTools(s *server.MCPServer, cfg domain.Config) {
	s.AddTool(
		mcplib.NewTool("sizebudget_check",
			mcplib.WithDescription("Measure the build artifacts and compare them against the size budget. Returns per-artifact sizes, verdicts and headroom in bytes."),
			mcplib.WithString("format", mcplib.Description("Output format: json or text (default: json)")),
		),
		handleCheck(cfg),
	)
}

func newCheckService() *application.CheckService {
	// stdout carries the MCP stdio transport, so the service stays quiet.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return application.NewCheckService(locator.New(), measurer.New(), logger)
}

func handleCheck(cfg domain.Config) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		run, err := newCheckService().Run(cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}

		format, _ := request.GetArguments()["format"].(string)
		switch format {
		case "", "json":
			return jsonResult(run)
		case "text":
			return textResult(tui.RenderRunResult(run)), nil
		default:
			return errorResult(fmt.Sprintf("unknown format %q (valid: json, text)", format)), nil
		}
	}
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

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
