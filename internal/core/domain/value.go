package domain

import (
	"fmt"
	"strconv"
)

// Value tree helpers for documents decoded into generic Go values:
// map[string]any, []any, and scalar leaves.

// AsObject returns v as a mapping with string keys.
func AsObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// AsArray returns v as an ordered sequence.
func AsArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// ScalarString renders a scalar leaf as text. Numbers keep their source
// form when the decoder preserved it. Mappings and sequences are not
// scalars and report false.
func ScalarString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "null", true
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case fmt.Stringer:
		return s.String(), true
	default:
		return "", false
	}
}

// Field returns the scalar text stored under key in obj.
func Field(obj map[string]any, key string) (string, bool) {
	v, ok := obj[key]
	if !ok {
		return "", false
	}
	return ScalarString(v)
}
