package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eventini/provider-api/internal/api/respond"
	"github.com/eventini/provider-api/internal/cache"
	"github.com/eventini/provider-api/internal/provider"
	"github.com/eventini/provider-api/internal/resolver"
)

// ProviderResponse wraps a normalized provider.
type ProviderResponse struct {
	Provider *provider.NormalizedProvider `json:"provider"`
}

// GetProvider returns the normalized provider for an id.
// @Summary Get provider
// @Description Locates a provider across ActiveProviders and the four category collections and returns its normalized form. Every field is always present; missing data is null, false or an empty array.
// @Tags providers
// @Produce json
// @Param id path string true "Provider document id"
// @Param If-None-Match header string false "ETag from a previous response"
// @Success 200 {object} ProviderResponse
// @Success 304 "Not modified"
// @Failure 404 {object} respond.ErrorResponse
// @Failure 500 {object} respond.ErrorResponse
// @Router /api/providers/{id} [get]
func (h *Handler) GetProvider(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cacheKey := cache.ProviderKey(id)

	var ttl time.Duration
	if h.cache.Enabled() {
		ttl = cache.TTLProvider
	}

	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	np, err := h.providers.Resolve(r.Context(), id)
	if errors.Is(err, resolver.ErrNotFound) {
		respond.WriteError(w, http.StatusNotFound, "Provider not found")
		return
	}
	if err != nil {
		h.logger.Error("Failed to fetch provider", "id", id, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "Failed to fetch provider")
		return
	}

	data, err := json.Marshal(ProviderResponse{Provider: np})
	if err != nil {
		h.logger.Error("Failed to encode provider", "id", id, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "Failed to fetch provider")
		return
	}

	etag := h.cache.Set(cacheKey, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}
