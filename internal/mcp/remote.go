package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crystaldolphin/aquarium-mcp/internal/schema"
)

// Remote is a connection to an MCP server whose tools the agent may call.
type Remote struct {
	url     string
	session *sdk.ClientSession
}

// Dial connects to the streamable HTTP endpoint at url.
func Dial(ctx context.Context, url, version string, timeout time.Duration) (*Remote, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport := &sdk.StreamableClientTransport{
		Endpoint:   strings.TrimRight(url, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
	return connect(ctx, url, version, transport)
}

func connect(ctx context.Context, label, version string, transport sdk.Transport) (*Remote, error) {
	client := sdk.NewClient(&sdk.Implementation{Name: "aquarium-agent", Version: version}, nil)
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("connect MCP server %s: %w", label, err)
	}
	return &Remote{url: label, session: session}, nil
}

// RegisterTools lists the remote tools and adds a wrapper for each to ts.
// It returns the number of tools registered.
func (r *Remote) RegisterTools(ctx context.Context, ts schema.ToolRegistrar) (int, error) {
	n := 0
	for tool, err := range r.session.Tools(ctx, nil) {
		if err != nil {
			return n, fmt.Errorf("list MCP tools from %s: %w", r.url, err)
		}
		if tool == nil || tool.Name == "" {
			continue
		}

		params, err := json.Marshal(tool.InputSchema)
		if err != nil || string(params) == "null" {
			params = []byte(`{"type":"object","properties":{}}`)
		}

		w := &toolWrapper{
			session:     r.session,
			name:        tool.Name,
			description: tool.Description,
			parameters:  params,
		}
		ts.Add(w)
		n++

		slog.Debug("MCP tool registered", "server", r.url, "tool", w.name)
	}
	slog.Info("MCP server connected", "server", r.url, "tools", n)
	return n, nil
}

// Close ends the session.
func (r *Remote) Close() error {
	return r.session.Close()
}
