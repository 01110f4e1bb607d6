package cli

import (
	mcpadapter "github.com/ragicss/sizebudget/internal/adapters/inbound/mcp"
	"github.com/ragicss/sizebudget/internal/domain"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the sizebudget MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start sizebudget MCP server (stdio)",
		Long:  "Start the sizebudget MCP server using stdio transport. This lets coding assistants run the size check and read the budget after changing styles.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := domain.DefaultConfig()
			if dir != "" {
				cfg.OutputDir = dir
			}
			s := mcpadapter.NewSizeBudgetMCPServer(cfg, version)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Output directory (defaults to "+domain.DefaultConfig().OutputDir+")")

	return cmd
}
