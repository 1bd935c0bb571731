package serializer

import (
	"reflect"
	"strings"
)

// Serializer is the body codec capability used by the client.
type Serializer interface {
	// Serialize renders data as a wire string. Strings pass through unchanged.
	Serialize(data any) (string, error)
	// Deserialize decodes a response body. It never fails: input that cannot
	// be decoded is returned unchanged.
	Deserialize(data string) any
}

const (
	emptyArray  = "[]"
	emptyObject = "{}"
)

// Default returns the default serializer.
func Default() Serializer {
	return NewJSON()
}

// ByName returns the serializer registered under name ("json" or "yaml").
// The second result is false for unknown names.
func ByName(name string) (Serializer, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return NewJSON(), true
	case "yaml", "yml":
		return NewYAML(), true
	default:
		return nil, false
	}
}

// raw reports whether data is already a wire string.
func raw(data any) (string, bool) {
	switch v := data.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

// nilCollection reports whether data is a nil map or slice.
func nilCollection(data any) bool {
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Map, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
