package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ragicss/sizebudget/internal/domain"
)

const budgetURI = "sizebudget://budget"

// registerResources registers all sizebudget MCP resources on the given server.
func registerResources(s *server.MCPServer, cfg domain.Config) {
	s.AddResource(
		mcplib.NewResource(
			budgetURI,
			"Size Budget",
			mcplib.WithResourceDescription("Output directory, expected artifacts and their resolved raw and gzipped ceilings"),
			mcplib.WithMIMEType("application/json"),
		),
		handleBudgetResource(cfg),
	)
}

type artifactBudget struct {
	Name   string        `json:"name"`
	Budget domain.Budget `json:"budget"`
}

type budgetView struct {
	OutputDir string           `json:"output_dir"`
	Artifacts []artifactBudget `json:"artifacts"`
}

func handleBudgetResource(cfg domain.Config) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		view := budgetView{OutputDir: cfg.OutputDir}
		for _, a := range cfg.Artifacts {
			view.Artifacts = append(view.Artifacts, artifactBudget{Name: a.Name, Budget: cfg.BudgetFor(a)})
		}

		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling budget: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      budgetURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
