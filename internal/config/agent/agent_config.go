package agent

import "time"

// AgentConfig holds the LLM agent settings.
type AgentConfig struct {
	Model       string  `json:"model" yaml:"model"`
	APIKey      string  `json:"apiKey" yaml:"apiKey"`
	APIBase     string  `json:"apiBase,omitempty" yaml:"apiBase,omitempty"`
	MaxTokens   int     `json:"maxTokens" yaml:"maxTokens"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	MaxToolIter int     `json:"maxToolIterations" yaml:"maxToolIterations"`
	// Instruction replaces the default persona when set.
	Instruction string `json:"instruction,omitempty" yaml:"instruction,omitempty"`
	// MCPURL points the agent at a remote MCP server instead of the
	// in-process catalog.
	MCPURL string `json:"mcpUrl,omitempty" yaml:"mcpUrl,omitempty"`
	// MCPTimeoutSeconds bounds each call to the remote MCP server.
	MCPTimeoutSeconds int `json:"mcpTimeoutSeconds,omitempty" yaml:"mcpTimeoutSeconds,omitempty"`
}

func DefaultAgentConfig() AgentConfig {
	return AgentConfig{
		Model:       "gpt-4o-mini",
		MaxTokens:   4096,
		Temperature: 0.2,
		MaxToolIter: 10,
	}
}

// MCPTimeout returns the remote MCP call timeout, defaulting to 60s.
func (c AgentConfig) MCPTimeout() time.Duration {
	if c.MCPTimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.MCPTimeoutSeconds) * time.Second
}
