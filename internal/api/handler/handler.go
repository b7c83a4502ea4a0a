// Package handler provides HTTP handlers for all API endpoints.
// Providers are resolved from the datastore on every request; the response
// cache only applies when explicitly enabled.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/eventini/provider-api/internal/api/respond"
	"github.com/eventini/provider-api/internal/cache"
	"github.com/eventini/provider-api/internal/config"
	"github.com/eventini/provider-api/internal/provider"
)

// ProviderResolver resolves a provider id into its normalized form.
type ProviderResolver interface {
	Resolve(ctx context.Context, id string) (*provider.NormalizedProvider, error)
}

// Pinger reports datastore reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	providers ProviderResolver
	store     Pinger
	cache     *cache.Cache
	cfg       *config.Config
	logger    *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(providers ProviderResolver, store Pinger, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		providers: providers,
		store:     store,
		cache:     c,
		cfg:       cfg,
		logger:    logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and datastore backend.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"name":    "Eventini Provider API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"store":   h.cfg.StoreBackend,
		"cache":   h.cache.Enabled(),
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckStore verifies datastore connectivity.
// @Summary Datastore health check
// @Description Verifies the configured provider datastore is reachable.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/store [get]
func (h *Handler) HealthCheckStore(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Error("Store health check failed", "backend", h.cfg.StoreBackend, "error", err)
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "unhealthy",
			"store":     "disconnected",
			"backend":   h.cfg.StoreBackend,
			"error":     "Datastore connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"store":     "connected",
		"backend":   h.cfg.StoreBackend,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
