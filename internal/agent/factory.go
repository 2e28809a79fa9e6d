package agent

import (
	"time"

	"github.com/crystaldolphin/aquarium-mcp/internal/schema"
	"github.com/crystaldolphin/aquarium-mcp/internal/tools"
)

// AgentFactory creates Agent instances that share one provider and tool set.
type AgentFactory struct {
	provider    schema.LLMProvider
	settings    schema.AgentSettings
	tools       *tools.ToolList
	instruction string
}

// NewFactory constructs an AgentFactory. tls may be extended with remote MCP
// tools before the first agent is created.
func NewFactory(provider schema.LLMProvider, settings schema.AgentSettings, tls *tools.ToolList, instruction string) *AgentFactory {
	return &AgentFactory{
		provider:    provider,
		settings:    settings,
		tools:       tls,
		instruction: instruction,
	}
}

// Tools returns the live tool list agents are created with.
func (f *AgentFactory) Tools() *tools.ToolList { return f.tools }

// NewAgent creates an Agent with an empty conversation.
func (f *AgentFactory) NewAgent() *Agent {
	return &Agent{
		LoopRunner:  newLoopRunner(f.provider, f.settings),
		tools:       f.tools,
		instruction: f.instruction,
		maxTurns:    defaultMaxTurns,
		now:         time.Now,
	}
}
