// Package session persists agent conversations as JSONL files so a REPL can
// pick up where it left off.
//
// File format:
//
//	Line 1:  {"_type":"metadata","key":"…","created_at":"…","updated_at":"…","metadata":{…}}
//	Line 2+: one JSON message object per line
package session

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/crystaldolphin/aquarium-mcp/internal/schema"
)

// Manager loads and persists sessions as JSONL files.
type Manager struct {
	sessionsDir string
	cache       sync.Map // key → *Session
}

// Info describes one stored session.
type Info struct {
	Key       string
	CreatedAt string
	UpdatedAt string
	Path      string
}

// NewManager creates a Manager storing files under dir, creating it if
// necessary.
func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sessions dir: %w", err)
	}

	return &Manager{sessionsDir: dir}, nil
}

// GetOrCreate returns the cached session for key, loading from disk if needed,
// or creating an empty new one.
func (m *Manager) GetOrCreate(key string) *Session {
	if v, ok := m.cache.Load(key); ok {
		return v.(*Session)
	}

	s := m.load(key)
	if s == nil {
		s = newSession(key)
	}

	actual, _ := m.cache.LoadOrStore(key, s)

	return actual.(*Session)
}

// Save writes the session to disk and updates the cache.
func (m *Manager) Save(s *Session) error {
	path := m.sessionPath(s.Key)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	s.mu.Lock()
	msgs := s.Messages.Clone()
	meta := map[string]any{
		"_type":      "metadata",
		"key":        s.Key,
		"created_at": s.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at": s.UpdatedAt.UTC().Format(time.RFC3339),
		"metadata":   s.Metadata,
	}
	s.mu.Unlock()

	if err := enc.Encode(meta); err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	for _, msg := range msgs.Messages {
		if err := enc.Encode(messageToWire(msg)); err != nil {
			return fmt.Errorf("encode message: %w", err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write session %s: %w", path, err)
	}

	m.cache.Store(s.Key, s)
	return nil
}

// ListSessions returns all stored sessions, newest first.
func (m *Manager) ListSessions() []Info {
	entries, _ := filepath.Glob(filepath.Join(m.sessionsDir, "*.jsonl"))
	var out []Info

	for _, path := range entries {
		data, ok := readMetadata(path)
		if !ok {
			continue
		}
		key, _ := data["key"].(string)
		if key == "" {
			key = strings.Replace(strings.TrimSuffix(filepath.Base(path), ".jsonl"), "_", ":", 1)
		}
		created, _ := data["created_at"].(string)
		updated, _ := data["updated_at"].(string)
		out = append(out, Info{Key: key, CreatedAt: created, UpdatedAt: updated, Path: path})
	}

	// RFC 3339 timestamps sort lexicographically.
	slices.SortFunc(out, func(a, b Info) int { return strings.Compare(b.UpdatedAt, a.UpdatedAt) })
	return out
}

func readMetadata(path string) (map[string]any, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, false
	}
	var data map[string]any
	if json.Unmarshal(scanner.Bytes(), &data) != nil || data["_type"] != "metadata" {
		return nil, false
	}
	return data, true
}

// wireMessage is the on-disk JSON representation of a message.
type wireMessage struct {
	Role       string           `json:"role"`
	Content    any              `json:"content"`
	ToolCalls  []map[string]any `json:"tool_calls,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
	Name       string           `json:"name,omitempty"`
}

func messageToWire(msg schema.Message) wireMessage {
	w := wireMessage{
		Role:       msg.Role,
		ToolCallID: msg.ToolCallID,
		Name:       msg.ToolName,
	}

	switch v := msg.Content.(type) {
	case *string:
		if v != nil {
			w.Content = *v
		}
	default:
		w.Content = v
	}

	for _, tc := range msg.ToolCalls {
		w.ToolCalls = append(w.ToolCalls, tc.ToWireMap())
	}
	return w
}

func wireToMessage(w wireMessage) schema.Message {
	msg := schema.Message{
		Role:       w.Role,
		ToolCallID: w.ToolCallID,
		ToolName:   w.Name,
	}

	text, _ := w.Content.(string)
	if w.Role == "assistant" {
		// Assistant content is nil when the turn only carried tool calls.
		if w.Content != nil {
			msg.Content = &text
		}
	} else {
		msg.Content = text
	}

	for _, tcm := range w.ToolCalls {
		fn, _ := tcm["function"].(map[string]any)
		id, _ := tcm["id"].(string)
		name, _ := fn["name"].(string)
		argsStr, _ := fn["arguments"].(string)
		var args map[string]any
		_ = json.Unmarshal([]byte(argsStr), &args)
		msg.ToolCalls = append(msg.ToolCalls, schema.ToolCall{ID: id, Name: name, Arguments: args})
	}
	return msg
}

// sessionPath converts a session key to its JSONL file path.
func (m *Manager) sessionPath(key string) string {
	name := safeFilename(strings.ReplaceAll(key, ":", "_"))
	return filepath.Join(m.sessionsDir, name+".jsonl")
}

// safeFilename replaces filesystem-unsafe characters with underscores.
func safeFilename(name string) string {
	const unsafe = `<>:"/\|?*`
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(unsafe, r) {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func (m *Manager) load(key string) *Session {
	f, err := os.Open(m.sessionPath(key))
	if err != nil {
		return nil
	}
	defer f.Close()

	s := newSession(key)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1<<20), 1<<20) // 1 MB per line
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var rec struct {
			wireMessage
			Type      string         `json:"_type"`
			CreatedAt string         `json:"created_at"`
			Metadata  map[string]any `json:"metadata"`
		}
		if err := json.Unmarshal(line, &rec); err != nil {
			slog.Warn("Skipping malformed session line", "key", key, "error", err)
			continue
		}

		if rec.Type == "metadata" {
			if t, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
				s.CreatedAt = t
			}
			if rec.Metadata != nil {
				s.Metadata = rec.Metadata
			}
			continue
		}
		s.Messages.Add(wireToMessage(rec.wireMessage))
	}

	if err := scanner.Err(); err != nil {
		slog.Warn("Error reading session file", "key", key, "error", err)
		return nil
	}
	return s
}
