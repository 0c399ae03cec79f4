package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	record := map[string]any{
		"designation":           "433",
		"name":                  "Eros",
		"diameter_km":           16.84,
		"potentially_hazardous": false,
	}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(record)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, c.Unmarshal(data, &got))
			assert.Equal(t, "433", got["designation"])
			assert.Equal(t, 16.84, got["diameter_km"])
		})
	}
}

func TestNilValuesEncodeAsNull(t *testing.T) {
	record := map[string]any{"diameter_km": nil}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		data, err := c.Marshal(record)
		require.NoError(t, err)
		assert.JSONEq(t, `{"diameter_km":null}`, string(data))
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, "go-json", Default.Name())
}
