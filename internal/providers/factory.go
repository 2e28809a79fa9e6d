package providers

import (
	"time"

	"github.com/crystaldolphin/aquarium-mcp/internal/schema"
)

// Params are the raw values needed to construct a schema.LLMProvider.
// Extracted from config.Config by the caller to avoid an import cycle.
type Params struct {
	APIKey       string
	APIBase      string
	ExtraHeaders map[string]string
	DefaultModel string
	Timeout      time.Duration
}

// New creates the LLM provider for the given params.
func New(p Params) schema.LLMProvider {
	return NewOpenAIProvider(p)
}
