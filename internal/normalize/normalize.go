// Package normalize turns arbitrary CRM result objects into ordered
// field-name → value mappings.
//
// Objects are probed for capabilities in a fixed order; the first one that
// applies wins and the final step never fails:
//
//  1. Dumper:        current serialization (Dump)
//  2. LegacyMapper:  legacy plain-map conversion (ToMap)
//  3. attribute bag: an existing Mapping, a string-keyed map, or a struct
//  4. {"value": obj}
package normalize

import (
	"reflect"
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mapping is an insertion-ordered string → any map. It encodes to JSON and
// YAML in insertion order.
type Mapping = orderedmap.OrderedMap[string, any]

// FallbackKey is the single key used when an object exposes no structure.
const FallbackKey = "value"

// Dumper is implemented by records that know how to serialize themselves
// into an ordered mapping.
type Dumper interface {
	Dump() *Mapping
}

// LegacyMapper is implemented by records that only offer a plain map view.
type LegacyMapper interface {
	ToMap() map[string]any
}

// New returns an empty Mapping.
func New() *Mapping {
	return orderedmap.New[string, any]()
}

// FromPairs builds a Mapping from alternating key/value arguments.
// A trailing key without a value is ignored.
func FromPairs(kv ...any) *Mapping {
	m := New()
	for i := 0; i+1 < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		m.Set(k, kv[i+1])
	}
	return m
}

// Normalize converts obj into a Mapping. It never returns nil and never panics.
func Normalize(obj any) *Mapping {
	if m := probe(obj); m != nil {
		return m
	}
	return FromPairs(FallbackKey, obj)
}

// NormalizeAll normalizes every element of items, preserving order.
func NormalizeAll[T any](items []T) []*Mapping {
	out := make([]*Mapping, 0, len(items))
	for _, item := range items {
		out = append(out, Normalize(item))
	}
	return out
}

func probe(obj any) (m *Mapping) {
	defer func() {
		if recover() != nil {
			m = nil
		}
	}()

	if d, ok := obj.(Dumper); ok {
		if m := d.Dump(); m != nil {
			return m
		}
	}
	if l, ok := obj.(LegacyMapper); ok {
		if plain := l.ToMap(); plain != nil {
			return fromStringMap(plain)
		}
	}
	return attributes(obj)
}

// attributes returns the attribute bag of obj, or nil when it has none.
func attributes(obj any) *Mapping {
	if m, ok := obj.(*Mapping); ok {
		return m
	}
	if plain, ok := obj.(map[string]any); ok {
		return fromStringMap(plain)
	}

	v := reflect.ValueOf(obj)
	if !v.IsValid() {
		return nil
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return structFields(v)
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil
		}
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		m := New()
		for _, k := range keys {
			m.Set(k, v.MapIndex(reflect.ValueOf(k).Convert(v.Type().Key())).Interface())
		}
		return m
	}
	return nil
}

func fromStringMap(plain map[string]any) *Mapping {
	keys := make([]string, 0, len(plain))
	for k := range plain {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := New()
	for _, k := range keys {
		m.Set(k, plain[k])
	}
	return m
}

// structFields lists exported fields in declaration order. Exported embedded
// structs without a json tag are flattened.
func structFields(v reflect.Value) *Mapping {
	m := New()
	addStructFields(m, v)
	return m
}

func addStructFields(m *Mapping, v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, skip := fieldName(f)
		if skip {
			continue
		}

		fv := v.Field(i)
		if f.Anonymous && f.Tag.Get("json") == "" {
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				addStructFields(m, fv)
				continue
			}
		}
		m.Set(name, fv.Interface())
	}
}

func fieldName(f reflect.StructField) (name string, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name, false
}
