package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventini/provider-api/internal/config"
	"github.com/eventini/provider-api/internal/metrics"
	"github.com/eventini/provider-api/internal/resolver"
	"github.com/eventini/provider-api/internal/store"
)

func testDeps(cfg *config.Config) Deps {
	mem := store.NewMemory()
	mem.Load(store.Fixtures{
		"ActiveProviders": {"p1": {"businessName": "Tasty Co", "category": "Vendors"}},
	})
	m := metrics.NewRegistry()
	return Deps{
		Providers: resolver.New(mem, nil, m),
		Store:     mem,
		Metrics:   m,
		Config:    cfg,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		StoreBackend:     config.BackendMemory,
		CORSAllowOrigins: []string{"http://localhost:3000"},
	}
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestNewRouter(t *testing.T) {
	t.Run("should serve providers with timing and request id headers", func(t *testing.T) {
		router := NewRouter(testDeps(testConfig()))

		rec := serve(router, http.MethodGet, "/api/providers/p1")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Tasty Co"`)
		assert.Regexp(t, `^\d+\.\d{2}ms$`, rec.Header().Get("X-Process-Time"))
	})

	t.Run("should return the not found body for unknown providers", func(t *testing.T) {
		router := NewRouter(testDeps(testConfig()))

		rec := serve(router, http.MethodGet, "/api/providers/unknown")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Provider not found"}`, rec.Body.String())
	})

	t.Run("should serve health and metrics", func(t *testing.T) {
		router := NewRouter(testDeps(testConfig()))

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/health").Code)
		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/health/store").Code)

		serve(router, http.MethodGet, "/api/providers/p1")
		rec := serve(router, http.MethodGet, "/metrics")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `provider_lookups_total{outcome="found"} 1`)
		assert.Contains(t, rec.Body.String(), `route="/api/providers/{id}"`)
	})

	t.Run("should not mount metrics without a registry", func(t *testing.T) {
		deps := testDeps(testConfig())
		deps.Metrics = nil
		router := NewRouter(deps)

		assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/metrics").Code)
		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/providers/p1").Code)
	})

	t.Run("should rate limit by client ip", func(t *testing.T) {
		cfg := testConfig()
		cfg.RateLimitEnabled = true
		cfg.RateLimitRequests = 2
		cfg.RateLimitWindow = time.Minute
		router := NewRouter(testDeps(cfg))

		assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/health").Code)
		rec := serve(router, http.MethodGet, "/health")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":"Too many requests"}`, rec.Body.String())
	})

	t.Run("should ignore forwarded headers unless the proxy is trusted", func(t *testing.T) {
		cfg := testConfig()
		cfg.RateLimitEnabled = true
		cfg.RateLimitRequests = 2
		cfg.RateLimitWindow = time.Minute
		router := NewRouter(testDeps(cfg))

		limited := 0
		for i := 0; i < 50; i++ {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code == http.StatusTooManyRequests {
				limited++
			}
		}
		assert.Equal(t, 49, limited)
	})

	t.Run("should key on the forwarded address behind a trusted proxy", func(t *testing.T) {
		cfg := testConfig()
		cfg.TrustProxy = true
		cfg.RateLimitEnabled = true
		cfg.RateLimitRequests = 2
		cfg.RateLimitWindow = time.Minute
		router := NewRouter(testDeps(cfg))

		for _, client := range []string{"203.0.113.1", "203.0.113.2"} {
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			req.Header.Set("X-Forwarded-For", client)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code, client)
		}
	})
}
