// Package schema holds the contracts shared between the agent, the tool
// catalog and the LLM providers.
package schema

import (
	"context"
	"encoding/json"
)

// Tool is the interface all LLM-callable tools must satisfy.
// Aquarium catalog tools and remote MCP tools both implement it.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema (as raw JSON bytes) for this tool's parameters.
	Parameters() json.RawMessage
	Execute(ctx context.Context, params map[string]any) (string, error)
}

// ToolRegistrar accepts tools discovered at runtime.
type ToolRegistrar interface {
	Add(t Tool) Tool
}
