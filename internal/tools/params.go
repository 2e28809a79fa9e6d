package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ParamType is the JSON Schema type of a tool parameter.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamInt     ParamType = "integer"
	ParamIntList ParamType = "array"
)

// ParamSource says where the REST route reads a parameter from.
type ParamSource int

const (
	InPath ParamSource = iota
	InQuery
)

// Param describes one argument of a tool.
type Param struct {
	Name        string
	Type        ParamType
	Required    bool
	Source      ParamSource
	Description string
}

func pathString(name, desc string) Param {
	return Param{Name: name, Type: ParamString, Required: true, Source: InPath, Description: desc}
}

func pathInt(name, desc string) Param {
	return Param{Name: name, Type: ParamInt, Required: true, Source: InPath, Description: desc}
}

func queryString(name, desc string) Param {
	return Param{Name: name, Type: ParamString, Required: true, Source: InQuery, Description: desc}
}

func queryIntList(name, desc string) Param {
	return Param{Name: name, Type: ParamIntList, Required: true, Source: InQuery, Description: desc}
}

func optionalInt(name, desc string) Param {
	return Param{Name: name, Type: ParamInt, Source: InQuery, Description: desc}
}

// ArgumentError reports a missing or mistyped tool argument.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Reason)
}

// Args holds coerced arguments keyed by parameter name. Values are string,
// int or []int; absent optional parameters have no entry.
type Args map[string]any

func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

func (a Args) Int(name string) int {
	n, _ := a[name].(int)
	return n
}

// OptInt returns nil when the parameter was not supplied.
func (a Args) OptInt(name string) *int {
	n, ok := a[name].(int)
	if !ok {
		return nil
	}
	return &n
}

func (a Args) Ints(name string) []int {
	ids, _ := a[name].([]int)
	return ids
}

// Format renders an argument the way it appears in not-found messages.
func (a Args) Format(name string) string {
	switch v := a[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case []int:
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

// bind coerces raw arguments against params. Unknown keys are ignored.
func bind(params []Param, raw map[string]any) (Args, error) {
	args := make(Args, len(params))
	for _, p := range params {
		v, ok := raw[p.Name]
		if ok && isBlank(p, v) {
			ok = false
		}
		if !ok {
			if p.Required {
				return nil, &ArgumentError{Param: p.Name, Reason: "missing required argument"}
			}
			continue
		}

		coerced, err := coerce(p, v)
		if err != nil {
			return nil, &ArgumentError{Param: p.Name, Reason: err.Error()}
		}
		args[p.Name] = coerced
	}
	return args, nil
}

func isBlank(p Param, v any) bool {
	if v == nil {
		return true
	}
	if p.Type == ParamString {
		return false
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

func coerce(p Param, v any) (any, error) {
	switch p.Type {
	case ParamString:
		var s string
		if err := mapstructure.WeakDecode(v, &s); err != nil {
			return nil, fmt.Errorf("expected a string")
		}
		return s, nil
	case ParamInt:
		var n int
		if err := decodeInts(v, &n); err != nil {
			return nil, fmt.Errorf("expected an integer")
		}
		return n, nil
	case ParamIntList:
		var ids []int
		if err := decodeInts(splitList(v), &ids); err != nil {
			return nil, fmt.Errorf("expected a list of integers")
		}
		if ids == nil {
			ids = []int{}
		}
		return ids, nil
	default:
		return nil, fmt.Errorf("unsupported parameter type %q", p.Type)
	}
}

// decodeInts decodes v into an int or []int target. Strings are read in
// base 10 only and floats must be whole numbers, so the ID sent to the CRM
// is the one the caller wrote.
func decodeInts(v any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(strictInt),
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(v)
}

func strictInt(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	case json.Number:
		return strconv.Atoi(string(v))
	case float64:
		return wholeFloat(v)
	case float32:
		return wholeFloat(float64(v))
	case bool:
		return nil, errors.New("boolean is not an integer")
	}
	return data, nil
}

func wholeFloat(f float64) (int, error) {
	if math.IsInf(f, 0) || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}
	return int(f), nil
}

// splitList accepts "1,2" and []string{"1,2", "3"} in addition to real lists.
func splitList(v any) any {
	var in []string
	switch t := v.(type) {
	case string:
		in = []string{t}
	case []string:
		in = t
	default:
		return v
	}
	out := make([]string, 0, len(in))
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// inputSchema builds the JSON Schema object for params.
func inputSchema(params []Param) map[string]any {
	props := make(map[string]any, len(params))
	required := make([]string, 0, len(params))
	for _, p := range params {
		prop := map[string]any{"type": string(p.Type)}
		if p.Type == ParamIntList {
			prop["items"] = map[string]any{"type": string(ParamInt)}
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		props[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func mustJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
