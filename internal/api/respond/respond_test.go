package respond

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	t.Run("should write the flat error shape", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, http.StatusNotFound, "Provider not found")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"error":"Provider not found"}`, rec.Body.String())
	})
}

func TestWriteJSON(t *testing.T) {
	t.Run("should disable caching for a zero ttl", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteJSON(rec, []byte(`{}`), `W/"abc"`, 0, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `W/"abc"`, rec.Header().Get("ETag"))
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	})

	t.Run("should advertise max-age for cached responses", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteJSON(rec, []byte(`{}`), `W/"abc"`, time.Minute, true)

		assert.Equal(t, "public, max-age=60, stale-while-revalidate=30", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	})
}
