package schema

// AgentSettings are the per-run knobs of the LLM tool loop.
type AgentSettings struct {
	Model       string
	MaxIter     int
	Temperature float64
	MaxTokens   int
}

func NewAgentSettings(model string, maxIter int, temperature float64, maxTokens int) AgentSettings {
	return AgentSettings{
		Model:       model,
		MaxIter:     maxIter,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}
