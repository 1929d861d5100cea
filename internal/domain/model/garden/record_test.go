package garden

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStamp(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

	t.Run("adds created_at", func(t *testing.T) {
		rec, err := Stamp(map[string]interface{}{"plant": "tomato"}, now)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-01T12:30:00Z", rec.CreatedAt())
		assert.Equal(t, "tomato", rec.String("plant"))
	})

	t.Run("caller created_at wins", func(t *testing.T) {
		rec, err := Stamp(map[string]interface{}{FieldCreatedAt: "yesterday"}, now)
		require.NoError(t, err)
		assert.Equal(t, "yesterday", rec.CreatedAt())
	})

	t.Run("deep copies nested values", func(t *testing.T) {
		plants := []string{"tomato"}
		params := map[string]interface{}{"desired_plants": plants}
		rec, err := Stamp(map[string]interface{}{"parameters": params}, now)
		require.NoError(t, err)

		plants[0] = "changed"
		params["extra"] = true

		nested, ok := rec["parameters"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, []interface{}{"tomato"}, nested["desired_plants"])
		assert.NotContains(t, nested, "extra")
	})

	t.Run("numbers normalize to float64", func(t *testing.T) {
		rec, err := Stamp(map[string]interface{}{"count": 3}, now)
		require.NoError(t, err)
		assert.Equal(t, float64(3), rec["count"])
	})

	t.Run("unencodable value", func(t *testing.T) {
		_, err := Stamp(map[string]interface{}{"bad": make(chan int)}, now)
		assert.Error(t, err)
	})
}

func TestNormalize_Nil(t *testing.T) {
	rec, err := Normalize(nil)
	require.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Empty(t, rec)
}

func TestRecordAccessors(t *testing.T) {
	rec := Record{"plant": "basil", "count": 2.0}
	assert.True(t, rec.Has("plant"))
	assert.False(t, rec.Has("date"))
	assert.Equal(t, "", rec.String("count"))
	assert.Equal(t, "", rec.CreatedAt())
}
