package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genproto/googleapis/type/latlng"
)

func TestNormalizeValue(t *testing.T) {
	t.Run("should convert integers to float64", func(t *testing.T) {
		assert.Equal(t, 42.0, normalizeValue(int64(42)))
	})

	t.Run("should format timestamps as RFC3339", func(t *testing.T) {
		ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
		assert.Equal(t, "2024-05-01T12:30:00Z", normalizeValue(ts))
	})

	t.Run("should expand geopoints", func(t *testing.T) {
		got := normalizeValue(&latlng.LatLng{Latitude: 30.27, Longitude: -97.74})
		assert.Equal(t, map[string]any{"latitude": 30.27, "longitude": -97.74}, got)
	})

	t.Run("should recurse into maps and arrays", func(t *testing.T) {
		got := normalizeMap(map[string]any{
			"formData": map[string]any{"maxGuests": int64(80)},
			"images":   []any{"a.jpg", int64(1)},
			"name":     "Acme",
		})
		assert.Equal(t, map[string]any{
			"formData": map[string]any{"maxGuests": 80.0},
			"images":   []any{"a.jpg", 1.0},
			"name":     "Acme",
		}, got)
	})
}
