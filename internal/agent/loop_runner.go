package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/crystaldolphin/aquarium-mcp/internal/schema"
	"github.com/crystaldolphin/aquarium-mcp/internal/shared/llmutils"
	"github.com/crystaldolphin/aquarium-mcp/internal/tools"
)

// LoopRunner executes the LLM ↔ tool iteration loop.
type LoopRunner struct {
	provider schema.LLMProvider
	settings schema.AgentSettings
}

func newLoopRunner(provider schema.LLMProvider, settings schema.AgentSettings) LoopRunner {
	return LoopRunner{provider: provider, settings: settings}
}

// run drives the conversation until the model answers without tool calls or
// the iteration budget is spent. conversation grows in place so callers can
// keep it as history.
func (r *LoopRunner) run(ctx context.Context, conversation *schema.Messages, tls *tools.ToolList, onProgress func(string)) (finalContent string, toolsUsed []string) {
	for i := 0; i < r.settings.MaxIter; i++ {
		resp, err := r.provider.Chat(ctx,
			*conversation,
			tls.Definitions(),
			schema.NewChatOptions(r.settings.Model, r.settings.MaxTokens, r.settings.Temperature),
		)

		if err != nil {
			slog.Error("LLM error", "err", err)
			return "Sorry, I encountered an error calling the LLM.", nil
		}

		if len(resp.ToolCalls) == 0 {
			content := ""
			if resp.Content != nil {
				content = llmutils.StripThink(*resp.Content)
			}
			conversation.AddAssistant(&content, nil)
			return content, toolsUsed
		}

		if onProgress != nil {
			if resp.Content != nil {
				if clean := llmutils.StripThink(*resp.Content); clean != "" {
					onProgress(clean)
				}
			}
			onProgress(llmutils.ToolHint(resp.ToolCalls))
		}

		toolCalls := make([]schema.ToolCall, 0, len(resp.ToolCalls))
		for _, tc := range resp.ToolCalls {
			toolCalls = append(toolCalls, schema.ToolCall{ID: tc.Id, Name: tc.Name, Arguments: tc.Arguments})
		}

		conversation.AddAssistant(resp.Content, toolCalls)

		for _, tc := range resp.ToolCalls {
			toolsUsed = append(toolsUsed, tc.Name)
			argsJSON, _ := json.Marshal(tc.Arguments)

			slog.Info("Tool call", "name", tc.Name, "args", llmutils.Truncate(string(argsJSON), 200))

			conversation.AddToolResult(tc.Id, tc.Name, executeTool(ctx, tls, tc))
		}
	}

	return "I've reached the maximum number of tool iterations without a final answer.", toolsUsed
}

// executeTool runs one tool call and reports failures back to the model as text.
func executeTool(ctx context.Context, tls *tools.ToolList, tc schema.ToolCallRequest) string {
	t := tls.Get(tc.Name)
	if t == nil {
		return fmt.Sprintf("Error: Tool '%s' not found", tc.Name)
	}
	result, err := t.Execute(ctx, tc.Arguments)
	if err != nil {
		slog.Warn("Tool call failed", "name", tc.Name, "err", err)
		return "Error: " + err.Error()
	}
	return result
}
