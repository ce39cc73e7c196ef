// Package tree provides total accessors over the generic document tree
// (nested map[string]any values produced by the JSON and YAML
// decoders). Every accessor tolerates nil maps, missing keys and wrong
// types by returning a zero value, so callers can chain lookups without
// guarding each step.
package tree

import (
	"sort"
	"strconv"
)

// AsMap returns v as an object, or nil when v is nil or not an object.
func AsMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// AsSlice returns v as a list, or nil when v is nil or not a list.
func AsSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// AsString returns v as a string, or "" when v is not a string.
func AsString(v any) string {
	s, _ := v.(string)
	return s
}

// GetMap looks up key in m and returns it as an object.
func GetMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	return AsMap(m[key])
}

// GetSlice looks up key in m and returns it as a list.
func GetSlice(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	return AsSlice(m[key])
}

// GetString looks up key in m and returns it as a string.
func GetString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	return AsString(m[key])
}

// GetStringOr looks up key in m, falling back to def for missing keys,
// non-strings and empty strings.
func GetStringOr(m map[string]any, key, def string) string {
	if s := GetString(m, key); s != "" {
		return s
	}
	return def
}

// Has reports whether key is present in m, whatever its value.
func Has(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	_, ok := m[key]
	return ok
}

// Int converts the numeric representations the decoders produce (YAML
// ints, JSON float64s) to an int. The second result is false when v is
// not a number.
func Int(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// GetInt looks up key in m and converts it with Int.
func GetInt(m map[string]any, key string) (int, bool) {
	if m == nil {
		return 0, false
	}
	return Int(m[key])
}

// Count returns the number of entries when v is an object or list, and
// zero for anything else.
func Count(v any) int {
	switch c := v.(type) {
	case map[string]any:
		return len(c)
	case []any:
		return len(c)
	default:
		return 0
	}
}

// Keys returns the keys of m in sorted order. Map iteration order is
// randomized in Go, so every walk that feeds rendered output goes
// through Keys.
func Keys(m map[string]any) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Scalar renders a scalar decoder value as display text. JSON numbers
// arrive as float64 even when integral, so whole floats print without
// a fraction. Objects and lists render as "".
func Scalar(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint64:
		return strconv.FormatUint(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32)
	default:
		return ""
	}
}

// Strings coerces a decoder list into its scalar members rendered as
// text, dropping entries that have no scalar form. A bare scalar
// becomes a one-element list, which forgives the common YAML shorthand
// of writing a single value where a list is expected.
func Strings(v any) []string {
	switch list := v.(type) {
	case []any:
		var out []string
		for _, item := range list {
			if s := Scalar(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case nil:
		return nil
	default:
		if s := Scalar(v); s != "" {
			return []string{s}
		}
		return nil
	}
}
