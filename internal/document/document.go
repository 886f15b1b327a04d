// Package document holds the backend-neutral shape every entity is mapped to
// before it reaches a store.
package document

import (
	"encoding/json"
	"math"
	"sort"
)

// Field is one key/value pair of a stored document.
type Field struct {
	Key   string
	Value interface{}
}

// Doc is an ordered document. The primary key is never part of it.
type Doc []Field

// Get returns the raw value stored under key.
func (d Doc) Get(key string) (interface{}, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// String returns the string under key, or "" when absent or of another type.
func (d Doc) String(key string) string {
	v, _ := d.Get(key)
	s, _ := v.(string)
	return s
}

// Float returns the number under key, or nil when absent, null or not numeric.
func (d Doc) Float(key string) *float64 {
	v, _ := d.Get(key)
	f, ok := toFloat(v)
	if !ok {
		return nil
	}
	return &f
}

// Int returns the number under key truncated to int, or nil when absent, null or not numeric.
func (d Doc) Int(key string) *int {
	v, _ := d.Get(key)
	f, ok := toFloat(v)
	if !ok {
		return nil
	}
	i := int(math.Trunc(f))
	return &i
}

// Strings returns the string list under key. Non-string elements are dropped.
func (d Doc) Strings(key string) []string {
	v, _ := d.Get(key)
	switch list := v.(type) {
	case []string:
		if list == nil {
			return nil
		}
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Map flattens the document, e.g. for JSON encoding.
func (d Doc) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(d))
	for _, f := range d {
		m[f.Key] = f.Value
	}
	return m
}

// Clone returns a shallow copy with string lists duplicated.
func (d Doc) Clone() Doc {
	out := make(Doc, len(d))
	for i, f := range d {
		if list, ok := f.Value.([]string); ok && list != nil {
			cp := make([]string, len(list))
			copy(cp, list)
			f.Value = cp
		}
		out[i] = f
	}
	return out
}

// FromMap builds a document with keys in lexical order.
func FromMap(m map[string]interface{}) Doc {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := make(Doc, 0, len(keys))
	for _, k := range keys {
		d = append(d, Field{Key: k, Value: m[k]})
	}
	return d
}

// Float64 and Int are helpers for building documents from optional fields.
func Float64(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func Int(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
