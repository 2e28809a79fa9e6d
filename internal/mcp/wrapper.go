package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crystaldolphin/aquarium-mcp/internal/schema"
)

// toolWrapper wraps a single tool discovered from an MCP server and implements schema.Tool.
type toolWrapper struct {
	session     *sdk.ClientSession
	name        string
	description string
	parameters  json.RawMessage
}

func (w *toolWrapper) Name() string                { return w.name }
func (w *toolWrapper) Description() string         { return w.description }
func (w *toolWrapper) Parameters() json.RawMessage { return w.parameters }

func (w *toolWrapper) Execute(ctx context.Context, params map[string]any) (string, error) {
	res, err := w.session.CallTool(ctx, &sdk.CallToolParams{Name: w.name, Arguments: params})
	if err != nil {
		return "", err
	}
	out := joinText(res)
	if res.IsError {
		return "", errors.New(out)
	}
	return out, nil
}

// joinText concatenates the text blocks of a tool result.
func joinText(res *sdk.CallToolResult) string {
	var parts []string
	for _, c := range res.Content {
		if t, ok := c.(*sdk.TextContent); ok && t.Text != "" {
			parts = append(parts, t.Text)
		}
	}
	out := strings.Join(parts, "\n")
	if out == "" {
		out = "(no output)"
	}
	return out
}

// Ensure toolWrapper implements schema.Tool at compile time.
var _ schema.Tool = (*toolWrapper)(nil)
