package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/crystaldolphin/aquarium-mcp/internal/schema"
	"github.com/crystaldolphin/aquarium-mcp/internal/shared/cmdutils"
	"github.com/crystaldolphin/aquarium-mcp/internal/tools"
)

const defaultMaxTurns = 20

// Agent answers user messages with the LLM, calling Aquarium tools as needed.
// It keeps the last few turns in memory so follow-up questions have context.
// An Agent is not safe for concurrent use.
type Agent struct {
	LoopRunner

	tools       *tools.ToolList
	instruction string
	turns       []schema.Messages
	maxTurns    int
	now         func() time.Time
}

// Process handles one user message and returns the reply.
// A message of the form "!tool key=value ..." calls the tool directly.
func (a *Agent) Process(ctx context.Context, content string, onProgress func(string)) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "!") {
		return a.callDirect(ctx, strings.TrimPrefix(content, "!"))
	}

	conversation := schema.NewMessages()
	conversation.AddSystem(buildSystemPrompt(a.instruction, a.tools.Names(), a.now()))
	for _, turn := range a.turns {
		conversation.Append(turn)
	}
	start := len(conversation.Messages)
	conversation.AddUser(content)

	reply, used := a.run(ctx, &conversation, a.tools, onProgress)
	a.remember(schema.NewMessages(conversation.Messages[start:]...))

	slog.Debug("Agent turn done", "tools", used)
	return reply
}

// Reset forgets the conversation.
func (a *Agent) Reset() { a.turns = nil }

// History returns the remembered turns as one flat message list.
func (a *Agent) History() schema.Messages {
	out := schema.NewMessages()
	for _, turn := range a.turns {
		out.Append(turn)
	}
	return out
}

// Restore replaces the conversation with msgs, split into turns at each user
// message. Messages before the first user message are dropped.
func (a *Agent) Restore(msgs schema.Messages) {
	a.turns = nil
	var cur *schema.Messages
	for _, m := range msgs.Messages {
		if m.Role == "user" {
			if cur != nil {
				a.remember(*cur)
			}
			next := schema.NewMessages(m)
			cur = &next
			continue
		}
		if cur != nil {
			cur.Add(m)
		}
	}
	if cur != nil {
		a.remember(*cur)
	}
}

func (a *Agent) remember(turn schema.Messages) {
	a.turns = append(a.turns, turn)
	if over := len(a.turns) - a.maxTurns; over > 0 {
		a.turns = a.turns[over:]
	}
}

func (a *Agent) callDirect(ctx context.Context, line string) string {
	fields := cmdutils.SplitArgs(line)
	if len(fields) == 0 {
		return "Usage: !<tool> key=value ..."
	}
	t := a.tools.Get(fields[0])
	if t == nil {
		return fmt.Sprintf("Error: Tool '%s' not found", fields[0])
	}
	params, err := cmdutils.ParseAssignments(fields[1:])
	if err != nil {
		return "Error: " + err.Error()
	}
	out, err := t.Execute(ctx, params)
	if err != nil {
		return "Error: " + err.Error()
	}
	return out
}
