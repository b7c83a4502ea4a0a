// Package resolver locates a provider document across the marketplace
// collections and hands it to the normalizer.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/eventini/provider-api/internal/config"
	"github.com/eventini/provider-api/internal/metrics"
	"github.com/eventini/provider-api/internal/provider"
	"github.com/eventini/provider-api/internal/store"
)

// ErrNotFound is returned when no candidate collection holds the id.
var ErrNotFound = errors.New("provider not found")

// Resolver searches the candidate collections in priority order.
type Resolver struct {
	store   store.Store
	logger  *slog.Logger
	metrics *metrics.Registry
}

// New creates a Resolver. logger and m may be nil.
func New(s store.Store, logger *slog.Logger, m *metrics.Registry) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{store: s, logger: logger, metrics: m}
}

type candidate struct {
	collection string
	// category is empty for ActiveProviders, where it comes from the record.
	category provider.Category
}

// candidates lists ActiveProviders, then every category collection in
// search order.
func candidates() []candidate {
	out := []candidate{{collection: config.ActiveProvidersCollection}}
	for _, c := range provider.Categories {
		out = append(out, candidate{collection: config.CategoryCollection(c), category: c})
	}
	return out
}

// Collections returns the collection paths Locate searches, in order.
func Collections() []string {
	cands := candidates()
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.collection
	}
	return out
}

// Locate finds the raw record for id and attaches its details documents.
// Per-collection datastore errors are logged and skipped.
func (r *Resolver) Locate(ctx context.Context, id string) (*provider.Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}

	for _, cand := range candidates() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := r.store.Get(ctx, cand.collection, id)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			r.logger.Warn("Collection lookup failed",
				"collection", cand.collection, "id", id, "error", err)
			r.metrics.ObserveCollectionError(cand.collection)
			continue
		}

		category := cand.category
		if category == "" {
			category = recordCategory(data)
		}
		r.metrics.ObserveHit(cand.collection)

		return &provider.Record{
			ID:       id,
			Category: category,
			Source:   cand.collection,
			Data:     data,
			Details:  r.details(ctx, category, id),
		}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, ErrNotFound
}

// Resolve locates id and normalizes it. A panic during normalization is
// returned as an error.
func (r *Resolver) Resolve(ctx context.Context, id string) (np *provider.NormalizedProvider, err error) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			np, err = nil, fmt.Errorf("normalize provider %q: panic: %v", id, p)
		}
		r.metrics.ObserveLookup(outcome(err), time.Since(start))
	}()

	rec, err := r.Locate(ctx, id)
	if err != nil {
		return nil, err
	}
	return provider.Normalize(rec), nil
}

// details reads the details sub-collection of the category collection.
// Failures count as no details.
func (r *Resolver) details(ctx context.Context, category provider.Category, id string) map[string]map[string]any {
	collection := config.CategoryCollection(category)
	docs, err := r.store.Details(ctx, collection, id)
	if err != nil {
		r.logger.Warn("Details lookup failed",
			"collection", store.DetailsPath(collection, id), "error", err)
		r.metrics.ObserveDetailsError()
		return map[string]map[string]any{}
	}

	out := make(map[string]map[string]any, len(provider.DetailsDocs))
	for _, name := range provider.DetailsDocs {
		if doc, ok := docs[name]; ok && doc != nil {
			out[name] = doc
		}
	}
	return out
}

func recordCategory(data map[string]any) provider.Category {
	for _, v := range []any{data["category"], nested(data, "formData", "category")} {
		if c, ok := provider.ParseCategory(v); ok {
			return c
		}
	}
	return provider.DefaultCategory
}

func nested(data map[string]any, key, field string) any {
	m, _ := data[key].(map[string]any)
	return m[field]
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeFound
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeError
}
