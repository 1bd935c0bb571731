package serializer

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// JSON encodes bodies as JSON.
type JSON struct{}

// NewJSON returns a JSON serializer.
func NewJSON() JSON {
	return JSON{}
}

// Serialize encodes data as JSON. An empty or nil collection is rendered as
// the empty object.
func (JSON) Serialize(data any) (string, error) {
	if s, ok := raw(data); ok {
		return s, nil
	}
	if nilCollection(data) {
		return emptyObject, nil
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	if string(encoded) == emptyArray {
		return emptyObject, nil
	}
	return string(encoded), nil
}

// Deserialize decodes a JSON document. Numbers are kept as json.Number.
func (JSON) Deserialize(data string) any {
	if strings.TrimSpace(data) == "" || !gjson.Valid(data) {
		return data
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return data
	}
	return v
}
