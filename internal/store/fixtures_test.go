package store

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFixtures(t *testing.T) {
	t.Run("should read collections keyed by id", func(t *testing.T) {
		fx, err := ReadFixtures(strings.NewReader(`{
			"ActiveProviders": {"p1": {"businessName": "Acme", "category": "Vendors"}},
			"Providers/Venues/providers/v1/details": {"venue": {"maxCapacity": 120}}
		}`))
		require.NoError(t, err)
		assert.Equal(t, "Acme", fx["ActiveProviders"]["p1"]["businessName"])
		assert.Equal(t, 120.0, fx["Providers/Venues/providers/v1/details"]["venue"]["maxCapacity"])
		assert.Equal(t, 2, fx.Count())
	})

	t.Run("should read collections given as arrays", func(t *testing.T) {
		fx, err := ReadFixtures(strings.NewReader(`{
			"Providers/Venues/providers": [
				{"id": "v1", "venueName": "The Loft"},
				{"venueName": "Anonymous Hall"}
			]
		}`))
		require.NoError(t, err)

		docs := fx["Providers/Venues/providers"]
		require.Len(t, docs, 2)
		assert.Equal(t, "The Loft", docs["v1"]["venueName"])
		for id := range docs {
			if id == "v1" {
				continue
			}
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		}
	})

	t.Run("should reject malformed collections", func(t *testing.T) {
		_, err := ReadFixtures(strings.NewReader(`{"ActiveProviders": 42}`))
		assert.ErrorContains(t, err, `collection "ActiveProviders"`)
	})

	t.Run("should reject invalid json", func(t *testing.T) {
		_, err := ReadFixtures(strings.NewReader(`{`))
		assert.Error(t, err)
	})
}
