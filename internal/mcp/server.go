// Package mcp exposes the Aquarium tool catalog over the Model Context
// Protocol and lets the agent consume a remote catalog the same way.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crystaldolphin/aquarium-mcp/internal/tools"
)

// ServerName is announced to MCP clients during initialization.
const ServerName = "aquarium"

// NewServer registers every catalog tool on a new MCP server.
func NewServer(catalog *tools.Catalog, version string) *sdk.Server {
	server := sdk.NewServer(&sdk.Implementation{Name: ServerName, Version: version}, nil)
	for _, t := range catalog.All() {
		server.AddTool(&sdk.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.InputSchema(),
		}, toolHandler(t))
	}
	return server
}

// toolHandler adapts one catalog tool to the MCP call contract. Results are
// sent as a single text block; failures surface as protocol errors.
func toolHandler(t *tools.AquariumTool) sdk.ToolHandler {
	return func(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
		params := map[string]any{}
		if req.Params != nil && len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
				return nil, fmt.Errorf("decode arguments for %s: %w", t.Name(), err)
			}
		}

		res, err := t.Invoke(ctx, params)
		if err != nil {
			slog.Warn("MCP tool call failed", "tool", t.Name(), "err", err)
			return nil, err
		}
		text, err := tools.Render(res)
		if err != nil {
			return nil, err
		}
		return &sdk.CallToolResult{Content: []sdk.Content{&sdk.TextContent{Text: text}}}, nil
	}
}

// ServeStdio runs server over stdin/stdout until ctx is done or the client
// disconnects.
func ServeStdio(ctx context.Context, server *sdk.Server) error {
	slog.Info("MCP server listening on stdio")
	return server.Run(ctx, &sdk.StdioTransport{})
}

// HTTPHandler serves server over the streamable HTTP transport.
func HTTPHandler(server *sdk.Server) http.Handler {
	return sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server { return server }, nil)
}
