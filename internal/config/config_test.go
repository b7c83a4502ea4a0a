package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventini/provider-api/internal/provider"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "memory")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, BackendMemory, cfg.StoreBackend)
		assert.Equal(t, 8000, cfg.APIPort)
		assert.Equal(t, "development", cfg.Environment)
		assert.True(t, cfg.RateLimitEnabled)
		assert.Equal(t, time.Minute, cfg.RateLimitWindow)
		assert.False(t, cfg.CacheEnabled)
		assert.False(t, cfg.TrustProxy)
		assert.True(t, cfg.MetricsEnabled)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowOrigins)
	})

	t.Run("should read overrides", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "Firestore")
		t.Setenv("GOOGLE_CLOUD_PROJECT", "eventini-prod")
		t.Setenv("PORT", "9090")
		t.Setenv("CORS_ALLOW_ORIGINS", "https://eventini.com, https://www.eventini.com,")
		t.Setenv("CACHE_ENABLED", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, BackendFirestore, cfg.StoreBackend)
		assert.Equal(t, "eventini-prod", cfg.FirestoreProjectID)
		assert.Equal(t, 9090, cfg.APIPort)
		assert.Equal(t, []string{"https://eventini.com", "https://www.eventini.com"}, cfg.CORSAllowOrigins)
		assert.True(t, cfg.CacheEnabled)
	})

	t.Run("should require a project id for firestore", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "firestore")
		t.Setenv("FIRESTORE_PROJECT_ID", "")
		t.Setenv("GOOGLE_CLOUD_PROJECT", "")

		_, err := Load()
		assert.ErrorContains(t, err, "FirestoreProjectID")
	})

	t.Run("should require a database url for postgres", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "postgres")
		t.Setenv("DATABASE_URL", "")

		_, err := Load()
		assert.ErrorContains(t, err, "DatabaseURL")
	})

	t.Run("should reject unknown backends", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "mongodb")

		_, err := Load()
		assert.ErrorContains(t, err, "StoreBackend")
	})

	t.Run("should apply options before validating", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "mongodb")

		cfg, err := Load(WithBackend("Memory"), WithFixtures("providers.json"))
		require.NoError(t, err)
		assert.Equal(t, BackendMemory, cfg.StoreBackend)
		assert.Equal(t, "providers.json", cfg.FixturesFile)
	})
}

func TestCategoryCollection(t *testing.T) {
	assert.Equal(t, "Providers/Venues/providers", CategoryCollection(provider.Venues))
	assert.Equal(t, "Providers/FoodBeverage/providers", CategoryCollection(provider.FoodBeverage))
}
