package tools

import (
	"github.com/crystaldolphin/aquarium-mcp/internal/schema"
)

// Registry holds a set of named tools and exposes them for execution.
type Registry struct {
	tools map[string]schema.Tool
	order []string
}

// GetTool returns the tool with the given name, or nil.
func (r *Registry) GetTool(name string) schema.Tool {
	return r.tools[name]
}

// Names returns the tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// AllTools returns a mutable copy that callers may extend (e.g. with remote
// MCP tools) without touching the registry.
func (r *Registry) AllTools() *ToolList {
	list := NewToolList()
	for _, name := range r.order {
		list.Add(r.tools[name])
	}
	return list
}
