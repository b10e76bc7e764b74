package bulk

import (
	"reflect"

	"bulk-manager/core/utils"
)

// Payload is one item of a bulk request body: field name -> decoded value,
// as produced by JSON unmarshalling. It lives for one request only.
type Payload map[string]any

// WithoutField returns a copy of the payload with the given key removed.
// The identifier field is stripped before a payload is applied to a record
// since the identifier only correlates, it is never updated.
func (p Payload) WithoutField(key string) Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		if k != key {
			out[k] = v
		}
	}
	return out
}

// canonicalKey folds an identifier value to a comparable form. JSON decodes
// numbers as float64 while primary keys are typically uint/int, so raw map
// keys would never collide; the string form makes 1, 1.0 and "1" equal.
func canonicalKey(v any) string {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return utils.ToString(int64(f))
	}
	return utils.ToString(v)
}

// usableIdentifier reports whether a value can address a persisted record.
// Nil, empty strings, and composite values (a map or list smuggled where a
// scalar belongs) are rejected.
func usableIdentifier(v any) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok && s == "" {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Func, reflect.Chan:
		return false
	}
	return true
}
