// Package raw holds the semi-structured intermediate form that every source
// adapter returns. The three producers expose heterogeneous, partially
// populated shapes, so all field access goes through get-with-default
// accessors; a missing or mistyped field is never an error here.
package raw

import (
	"encoding/json"
	"io"
	"strconv"
)

// Record is a nested mapping of primitives decoded straight from JSON.
type Record map[string]any

// Decode reads one JSON document into a Record.
func Decode(r io.Reader) (Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Has reports whether the key is present at all, regardless of type.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// String returns the field as a string, or def when absent or mistyped.
func (r Record) String(key, def string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return def
}

// Int returns the field as an int. JSON numbers decode as float64, but
// sources have been seen carrying numeric strings too.
func (r Record) Int(key string, def int) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Float returns the field as a float64, accepting numeric strings such as
// the "6.2" innings-pitched values the scorecard library emits.
func (r Record) Float(key string, def float64) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// FloatPtr returns the field as an optional number, nil when absent.
func (r Record) FloatPtr(key string) *float64 {
	switch v := r[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	}
	return nil
}

// Bool returns the field as a bool, or def when absent or mistyped.
func (r Record) Bool(key string, def bool) bool {
	if b, ok := r[key].(bool); ok {
		return b
	}
	return def
}

// Child returns a nested mapping. A nil Record is returned when the field is
// absent, so accessor chains stay safe on partial data.
func (r Record) Child(key string) Record {
	if m, ok := r[key].(map[string]any); ok {
		return Record(m)
	}
	return nil
}

// List returns the field as a raw slice, or nil.
func (r Record) List(key string) []any {
	if l, ok := r[key].([]any); ok {
		return l
	}
	return nil
}

// Records returns the field as a slice of nested mappings, skipping entries
// that are not mappings.
func (r Record) Records(key string) []Record {
	list := r.List(key)
	if list == nil {
		return nil
	}
	out := make([]Record, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

// Pair returns the field as a two-element numeric pair (pitch locations), or
// nil when the field is absent or not shaped like one.
func (r Record) Pair(key string) []float64 {
	list := r.List(key)
	if len(list) != 2 {
		return nil
	}
	pair := make([]float64, 2)
	for i, item := range list {
		f, ok := item.(float64)
		if !ok {
			return nil
		}
		pair[i] = f
	}
	return pair
}
