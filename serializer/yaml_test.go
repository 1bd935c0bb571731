package serializer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAML_Serialize(t *testing.T) {
	s := NewYAML()

	got, err := s.Serialize("already a string")
	require.NoError(t, err)
	assert.Equal(t, "already a string", got)

	got, err = s.Serialize(map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, "a: b", got)

	got, err = s.Serialize([]string{})
	require.NoError(t, err)
	assert.Equal(t, "{}", got)

	got, err = s.Serialize([]string(nil))
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
}

func TestYAML_Deserialize(t *testing.T) {
	s := NewYAML()

	assert.Equal(t, "", s.Deserialize(""))
	assert.Equal(t, map[string]any{"a": "b", "c": "f"}, s.Deserialize("a: b\nc: f\n"))
	assert.Equal(t, "key: [unclosed", s.Deserialize("key: [unclosed"))
}
