package session

import (
	"sync"
	"time"

	"github.com/crystaldolphin/aquarium-mcp/internal/schema"
)

// Session holds one agent conversation's messages and metadata.
type Session struct {
	Key       string
	Messages  schema.Messages
	CreatedAt time.Time
	UpdatedAt time.Time
	Metadata  map[string]any

	mu sync.Mutex
}

func newSession(key string) *Session {
	now := time.Now()
	return &Session{
		Key:       key,
		Messages:  schema.NewMessages(),
		CreatedAt: now,
		UpdatedAt: now,
		Metadata:  map[string]any{},
	}
}

// Replace swaps in a new message list, e.g. the agent's trimmed history.
func (s *Session) Replace(msgs schema.Messages) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = msgs.Clone()
	s.UpdatedAt = time.Now()
}

// History returns a snapshot of the stored messages.
func (s *Session) History() schema.Messages {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Messages.Clone()
}

// Len returns the number of messages in the session.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Messages.Messages)
}
