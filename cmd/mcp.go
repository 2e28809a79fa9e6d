package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crystaldolphin/aquarium-mcp/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the Aquarium tools over MCP stdio",
	RunE: func(_ *cobra.Command, _ []string) error {
		container, err := newContainer()
		if err != nil {
			return err
		}
		server, err := container.MCPServer()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return mcp.ServeStdio(ctx, server)
	},
}
