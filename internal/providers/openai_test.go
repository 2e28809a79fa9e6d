package providers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystaldolphin/aquarium-mcp/internal/schema"
)

func newLLMServer(t *testing.T, status int, reply string, seen *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIProvider_Chat(t *testing.T) {
	t.Run("Should send messages and tools and parse tool calls", func(t *testing.T) {
		var body map[string]any
		srv := newLLMServer(t, http.StatusOK, `{
			"choices": [{
				"message": {
					"content": null,
					"tool_calls": [{"id": "call_1", "function": {"name": "get_event_history", "arguments": "{\"case_id\": 11}"}}]
				},
				"finish_reason": "tool_calls"
			}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`, &body)

		p := New(Params{APIKey: "sk-test", APIBase: srv.URL + "/v1/", DefaultModel: "gpt-4o-mini"})
		msgs := schema.NewMessages(schema.NewSystemMessage("sys"), schema.NewUserMessage("history of case 11"))
		tools := []map[string]any{{"type": "function", "function": map[string]any{"name": "get_event_history"}}}

		resp, err := p.Chat(t.Context(), msgs, tools, schema.NewChatOptions("", 0, 0.2))
		require.NoError(t, err)

		assert.Equal(t, "gpt-4o-mini", body["model"])
		assert.Equal(t, float64(4096), body["max_tokens"])
		assert.Equal(t, "auto", body["tool_choice"])
		assert.Len(t, body["messages"], 2)

		assert.Nil(t, resp.Content)
		require.True(t, resp.HasToolCalls())
		assert.Equal(t, "call_1", resp.ToolCalls[0].Id)
		assert.Equal(t, map[string]any{"case_id": float64(11)}, resp.ToolCalls[0].Arguments)
		assert.Equal(t, 15, resp.Usage["total_tokens"])
	})

	t.Run("Should return text content", func(t *testing.T) {
		srv := newLLMServer(t, http.StatusOK,
			`{"choices":[{"message":{"content":"Fine, my overlord."},"finish_reason":"stop"}]}`, nil)

		p := New(Params{APIKey: "sk-test", APIBase: srv.URL + "/v1"})
		resp, err := p.Chat(t.Context(), schema.NewMessages(schema.NewUserMessage("hi")), nil, schema.ChatOptions{Model: "m"})
		require.NoError(t, err)
		require.NotNil(t, resp.Content)
		assert.Equal(t, "Fine, my overlord.", *resp.Content)
		assert.Equal(t, "stop", resp.FinishReason)
	})

	t.Run("Should turn HTTP errors into an error response", func(t *testing.T) {
		srv := newLLMServer(t, http.StatusTooManyRequests, `{"error":"slow down"}`, nil)

		p := New(Params{APIKey: "sk-test", APIBase: srv.URL + "/v1"})
		resp, err := p.Chat(t.Context(), schema.NewMessages(), nil, schema.ChatOptions{})
		require.NoError(t, err)
		assert.Equal(t, "error", resp.FinishReason)
		assert.Equal(t, "HTTP 429: rate limit exceeded", *resp.Content)
	})
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]any
	}{
		{"empty", "", map[string]any{}},
		{"valid", `{"a":1}`, map[string]any{"a": float64(1)}},
		{"missing brace", `{"a":"x"`, map[string]any{"a": "x"}},
		{"trailing garbage", `{"a":"x"} trailing`, map[string]any{"a": "x"}},
	}
	for _, tt := range tests {
		t.Run("Should repair "+tt.name, func(t *testing.T) {
			got, err := repairJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
