// Package metrics holds the Prometheus collectors for the provider API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Registry owns a private Prometheus registry. A nil *Registry is valid and
// records nothing.
type Registry struct {
	reg *prometheus.Registry

	Lookups          *prometheus.CounterVec
	CollectionHits   *prometheus.CounterVec
	CollectionErrors *prometheus.CounterVec
	DetailsErrors    prometheus.Counter
	ResolveSeconds   prometheus.Histogram
	HTTPDuration     *prometheus.HistogramVec
	StoreUp          prometheus.Gauge
}

// NewRegistry builds the collectors on a private registry.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_lookups_total",
		Help: "Provider lookups by outcome.",
	}, []string{"outcome"})
	hits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_collection_hits_total",
		Help: "Lookups satisfied by each collection.",
	}, []string{"collection"})
	collErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_collection_errors_total",
		Help: "Datastore errors while searching each collection.",
	}, []string{"collection"})
	detailsErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "provider_details_errors_total",
		Help: "Details sub-collection reads that failed and were ignored.",
	})
	resolve := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "provider_resolve_seconds",
		Help:    "Time to locate and normalize a provider.",
		Buckets: prometheus.DefBuckets,
	})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by route and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	storeUp := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "provider_store_up",
		Help: "1 if the last datastore probe succeeded.",
	})

	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		lookups, hits, collErrors, detailsErrors, resolve, httpDuration, storeUp,
	)
	return &Registry{
		reg:              r,
		Lookups:          lookups,
		CollectionHits:   hits,
		CollectionErrors: collErrors,
		DetailsErrors:    detailsErrors,
		ResolveSeconds:   resolve,
		HTTPDuration:     httpDuration,
		StoreUp:          storeUp,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) ObserveLookup(outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.Lookups.WithLabelValues(outcome).Inc()
	r.ResolveSeconds.Observe(elapsed.Seconds())
}

func (r *Registry) ObserveHit(collection string) {
	if r == nil {
		return
	}
	r.CollectionHits.WithLabelValues(collection).Inc()
}

func (r *Registry) ObserveCollectionError(collection string) {
	if r == nil {
		return
	}
	r.CollectionErrors.WithLabelValues(collection).Inc()
}

func (r *Registry) ObserveDetailsError() {
	if r == nil {
		return
	}
	r.DetailsErrors.Inc()
}

func (r *Registry) ObserveStoreUp(up bool) {
	if r == nil {
		return
	}
	if up {
		r.StoreUp.Set(1)
	} else {
		r.StoreUp.Set(0)
	}
}

// Middleware records request latency labelled with the matched chi route
// pattern, so /api/providers/{id} is one series regardless of id.
func (r *Registry) Middleware(next http.Handler) http.Handler {
	if r == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		r.HTTPDuration.WithLabelValues(req.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}
