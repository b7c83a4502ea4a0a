package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventini/provider-api/internal/store"
)

var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// rejectingWriter fails every write to one collection.
type rejectingWriter struct {
	mu     sync.Mutex
	reject string
	puts   []string
}

func (w *rejectingWriter) Put(_ context.Context, collection, id string, _ map[string]any) error {
	if collection == w.reject {
		return errors.New("permission denied")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.puts = append(w.puts, collection+"/"+id)
	return nil
}

func TestRun(t *testing.T) {
	fx := store.Fixtures{
		"ActiveProviders":            {"p1": {"businessName": "Tasty Co"}, "p2": {}},
		"Providers/Venues/providers": {"v1": {"venueName": "The Loft"}},
		"Providers/Venues/providers/v1/details": {
			"venue":   {"curfew": "11:00 PM"},
			"pricing": {"hourlyRate": 150.0},
		},
	}

	t.Run("should write every document into the store", func(t *testing.T) {
		mem := store.NewMemory()

		result := Run(context.Background(), mem, fx, 4, logger)
		assert.Equal(t, 3, result.Collections)
		assert.Equal(t, 5, result.Written)
		assert.Empty(t, result.Errors)

		doc, err := mem.Get(context.Background(), "Providers/Venues/providers", "v1")
		require.NoError(t, err)
		assert.Equal(t, "The Loft", doc["venueName"])

		details, err := mem.Details(context.Background(), "Providers/Venues/providers", "v1")
		require.NoError(t, err)
		assert.Len(t, details, 2)
	})

	t.Run("should record failures and keep going", func(t *testing.T) {
		w := &rejectingWriter{reject: "ActiveProviders"}

		result := Run(context.Background(), w, fx, 2, logger)
		assert.Equal(t, 3, result.Written)
		assert.Equal(t, 2, result.Failed)
		require.Len(t, result.Errors, 2)
		assert.True(t, strings.HasPrefix(result.Errors[0], "ActiveProviders/"))
		assert.Contains(t, result.Summary(), "written=3 failed=2 errors=2")
	})

	t.Run("should stop writing once canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		mem := store.NewMemory()

		result := Run(ctx, mem, fx, 1, logger)
		assert.Equal(t, 0, result.Written)
		assert.Equal(t, 5, result.Failed)
	})

	t.Run("should handle empty fixtures", func(t *testing.T) {
		result := Run(context.Background(), store.NewMemory(), nil, 4, logger)
		assert.Equal(t, 0, result.Collections)
	})
}
