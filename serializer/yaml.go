package serializer

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML encodes bodies as YAML.
type YAML struct{}

// NewYAML returns a YAML serializer.
func NewYAML() YAML {
	return YAML{}
}

// Serialize encodes data as YAML, rendering an empty or nil collection as "{}".
func (YAML) Serialize(data any) (string, error) {
	if s, ok := raw(data); ok {
		return s, nil
	}
	if nilCollection(data) {
		return emptyObject, nil
	}
	encoded, err := yaml.Marshal(data)
	if err != nil {
		return "", err
	}
	out := strings.TrimRight(string(encoded), "\n")
	if out == emptyArray {
		return emptyObject, nil
	}
	return out, nil
}

// Deserialize decodes a YAML document, falling back to the input.
func (YAML) Deserialize(data string) any {
	if strings.TrimSpace(data) == "" {
		return data
	}
	var v any
	if err := yaml.Unmarshal([]byte(data), &v); err != nil || v == nil {
		return data
	}
	return v
}
