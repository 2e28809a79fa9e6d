package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct{ name string }

func (s stubTool) Name() string                { return s.name }
func (s stubTool) Description() string         { return "stub " + s.name }
func (s stubTool) Parameters() json.RawMessage { return json.RawMessage(`{"type":"object"}`) }
func (s stubTool) Execute(context.Context, map[string]any) (string, error) {
	return s.name, nil
}

func TestRegistry(t *testing.T) {
	t.Run("Should keep registration order", func(t *testing.T) {
		r := NewRegistryBuilder().
			WithTool(stubTool{"b"}).
			WithTool(stubTool{"a"}).
			WithTool(stubTool{"b"}).
			Build()

		assert.Equal(t, []string{"b", "a"}, r.Names())
		assert.Equal(t, "a", r.GetTool("a").Name())
		assert.Nil(t, r.GetTool("missing"))
	})

	t.Run("Should hand out independent tool lists", func(t *testing.T) {
		r := NewRegistryBuilder().WithTool(stubTool{"a"}).Build()

		list := r.AllTools()
		list.Add(stubTool{"remote"})

		assert.Equal(t, 2, list.Len())
		assert.Equal(t, 1, r.AllTools().Len())
	})

	t.Run("Should expose the catalog as function definitions", func(t *testing.T) {
		defs := NewCatalog(&fakeCRM{}).Registry().AllTools().Definitions()
		require.Len(t, defs, 14)

		fn := defs[0]["function"].(map[string]any)
		assert.Equal(t, "get_customers_by_email", fn["name"])
		params := fn["parameters"].(map[string]any)
		assert.Equal(t, []any{"email"}, params["required"])
	})
}
