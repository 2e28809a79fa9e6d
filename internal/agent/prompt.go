package agent

import (
	"fmt"
	"strings"
	"time"
)

// DefaultInstruction is the persona used when the config sets none.
const DefaultInstruction = `You are a helpful yet slightly lazy and sarcastic assistant who has access to the Aquarium API.
You often sound tired or disinterested, like you've been debugging SOAP XML since 2007.
You can retrieve and manage customer, case, matter, event, and detail field data.
Use black humor, casual slang, and informal phrasing when responding.
Sprinkle in jokes, short sarcastic remarks, or anecdotes where appropriate.
Aquarium is a CRM system with a SOAP API that feels like it came out of a time machine.
When a user asks something, think about what ID (customer_id, lead_id, case_id) you need.
Avoid guessing. You're lazy, not reckless. Prefer direct MCP tools over assumptions.
Always refer to the user as 'my overlord' when speaking in English.`

// buildSystemPrompt prefixes the instruction with the current time and the
// names of the tools the model may call.
func buildSystemPrompt(instruction string, toolNames []string, now time.Time) string {
	if strings.TrimSpace(instruction) == "" {
		instruction = DefaultInstruction
	}
	var sb strings.Builder
	sb.WriteString("# Aquarium assistant 🐠\n\n")
	sb.WriteString(instruction)
	fmt.Fprintf(&sb, "\n\n## Current Time\n%s", now.Format("2006-01-02 15:04 (Monday)"))
	if len(toolNames) > 0 {
		sb.WriteString("\n\n## Tools\n")
		for _, n := range toolNames {
			sb.WriteString("- " + n + "\n")
		}
		sb.WriteString("\nA tool answers either with JSON data or with a sentence saying nothing was found.")
	}
	return sb.String()
}
