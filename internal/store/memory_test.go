package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("should return stored documents", func(t *testing.T) {
		m := NewMemory()
		require.NoError(t, m.Put(ctx, "ActiveProviders", "p1", map[string]any{"businessName": "Acme"}))

		doc, err := m.Get(ctx, "ActiveProviders", "p1")
		require.NoError(t, err)
		assert.Equal(t, "Acme", doc["businessName"])
	})

	t.Run("should return ErrNotFound for missing documents", func(t *testing.T) {
		m := NewMemory()
		_, err := m.Get(ctx, "ActiveProviders", "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should return details keyed by document id", func(t *testing.T) {
		m := NewMemory()
		path := DetailsPath("Providers/Venues/providers", "v1")
		require.NoError(t, m.Put(ctx, path, "venue", map[string]any{"maxCapacity": 200.0}))
		require.NoError(t, m.Put(ctx, path, "pricing", map[string]any{"hourlyRate": 150.0}))

		details, err := m.Details(ctx, "Providers/Venues/providers", "v1")
		require.NoError(t, err)
		assert.Len(t, details, 2)
		assert.Equal(t, 200.0, details["venue"]["maxCapacity"])
	})

	t.Run("should return an empty map when there are no details", func(t *testing.T) {
		m := NewMemory()
		details, err := m.Details(ctx, "ActiveProviders", "p1")
		require.NoError(t, err)
		assert.NotNil(t, details)
		assert.Empty(t, details)
	})

	t.Run("should fail reads of a failing collection", func(t *testing.T) {
		m := NewMemory()
		boom := errors.New("unavailable")
		m.Fail("ActiveProviders", boom)

		_, err := m.Get(ctx, "ActiveProviders", "p1")
		assert.ErrorIs(t, err, boom)

		m.Fail("ActiveProviders", nil)
		_, err = m.Get(ctx, "ActiveProviders", "p1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("should honor canceled contexts", func(t *testing.T) {
		m := NewMemory()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := m.Get(cctx, "ActiveProviders", "p1")
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, m.Ping(cctx), context.Canceled)
	})

	t.Run("should count documents per collection", func(t *testing.T) {
		m := NewMemory()
		m.Load(Fixtures{
			"ActiveProviders":            {"a": {}, "b": {}},
			"Providers/Venues/providers": {"v1": {}},
		})
		counts, err := m.Collections(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"ActiveProviders": 2, "Providers/Venues/providers": 1}, counts)
	})
}
