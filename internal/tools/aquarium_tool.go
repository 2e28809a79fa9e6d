package tools

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/crystaldolphin/aquarium-mcp/internal/aquarium"
	"github.com/crystaldolphin/aquarium-mcp/internal/normalize"
	"github.com/crystaldolphin/aquarium-mcp/internal/schema"
)

// ErrUnknownTool is returned when a tool name is not in the catalog.
var ErrUnknownTool = errors.New("unknown tool")

// Cardinality is the shape of a tool's result.
type Cardinality int

const (
	List Cardinality = iota
	Single
	Scalar
)

func (c Cardinality) String() string {
	switch c {
	case List:
		return "list"
	case Single:
		return "single"
	default:
		return "scalar"
	}
}

// outcome is what one CRM call produced. value is nil when nothing matched.
type outcome struct {
	value any
	count int
}

type invoker struct {
	kind Cardinality
	run  func(ctx context.Context, c aquarium.Client, a Args) (outcome, error)
}

func list[T any](fn func(ctx context.Context, c aquarium.Client, a Args) ([]T, error)) invoker {
	return invoker{kind: List, run: func(ctx context.Context, c aquarium.Client, a Args) (outcome, error) {
		items, err := fn(ctx, c, a)
		if err != nil || len(items) == 0 {
			return outcome{}, err
		}
		return outcome{value: normalize.NormalizeAll(items), count: len(items)}, nil
	}}
}

func single[T any](fn func(ctx context.Context, c aquarium.Client, a Args) (*T, error)) invoker {
	return invoker{kind: Single, run: func(ctx context.Context, c aquarium.Client, a Args) (outcome, error) {
		item, err := fn(ctx, c, a)
		if err != nil || item == nil {
			return outcome{}, err
		}
		return outcome{value: normalize.Normalize(item), count: 1}, nil
	}}
}

func scalar(fn func(ctx context.Context, c aquarium.Client, a Args) (string, error)) invoker {
	return invoker{kind: Scalar, run: func(ctx context.Context, c aquarium.Client, a Args) (outcome, error) {
		s, err := fn(ctx, c, a)
		if err != nil || s == "" {
			return outcome{}, err
		}
		return outcome{value: s, count: 1}, nil
	}}
}

// Spec is one row of the catalog.
type Spec struct {
	Name        string
	Description string
	// Path is the REST route relative to the /aquarium prefix.
	Path     string
	Params   []Param
	NotFound func(Args) string

	invoke invoker
}

// Kind reports the cardinality of the tool's result.
func (s Spec) Kind() Cardinality { return s.invoke.kind }

// AquariumTool is one catalog entry bound to a CRM client.
type AquariumTool struct {
	spec   Spec
	client aquarium.Client
	params json.RawMessage
}

var _ schema.Tool = (*AquariumTool)(nil)

func newAquariumTool(spec Spec, client aquarium.Client) *AquariumTool {
	return &AquariumTool{spec: spec, client: client, params: mustJSON(inputSchema(spec.Params))}
}

func (t *AquariumTool) Name() string                { return t.spec.Name }
func (t *AquariumTool) Description() string         { return t.spec.Description }
func (t *AquariumTool) Parameters() json.RawMessage { return t.params }
func (t *AquariumTool) Spec() Spec                  { return t.spec }

// InputSchema returns the parameter schema as a decoded JSON object.
func (t *AquariumTool) InputSchema() map[string]any { return inputSchema(t.spec.Params) }

// Invoke coerces params, calls the CRM and returns []*normalize.Mapping,
// *normalize.Mapping or a string. Client errors are returned unchanged.
func (t *AquariumTool) Invoke(ctx context.Context, params map[string]any) (any, error) {
	args, err := bind(t.spec.Params, params)
	if err != nil {
		return nil, err
	}
	return t.Call(ctx, args)
}

// Call runs the tool with already coerced arguments.
func (t *AquariumTool) Call(ctx context.Context, args Args) (any, error) {
	out, err := t.spec.invoke.run(ctx, t.client, args)
	if err != nil {
		return nil, err
	}
	if out.value == nil {
		slog.Debug("Aquarium lookup empty", "tool", t.spec.Name, "args", map[string]any(args))
		return t.spec.NotFound(args), nil
	}
	if t.spec.invoke.kind == List {
		slog.Debug("Aquarium lookup", "tool", t.spec.Name, "args", map[string]any(args), "count", out.count)
	} else {
		slog.Debug("Aquarium lookup", "tool", t.spec.Name, "args", map[string]any(args))
	}
	return out.value, nil
}

// Execute implements schema.Tool for the agent loop.
func (t *AquariumTool) Execute(ctx context.Context, params map[string]any) (string, error) {
	res, err := t.Invoke(ctx, params)
	if err != nil {
		return "", err
	}
	return Render(res)
}

// Render turns a tool result into text: strings verbatim, anything else as JSON.
func Render(result any) (string, error) {
	if s, ok := result.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
