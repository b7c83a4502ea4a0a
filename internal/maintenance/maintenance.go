// Package maintenance runs periodic background tasks as Go tickers.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/eventini/provider-api/internal/metrics"
)

// Pinger is the datastore probe target.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	StoreProbeInterval time.Duration // Datastore reachability probe
	ProbeTimeout       time.Duration
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		StoreProbeInterval: 30 * time.Second,
		ProbeTimeout:       5 * time.Second,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, st Pinger, reg *metrics.Registry, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started", "store_probe", cfg.StoreProbeInterval)

	tickers := make([]*time.Ticker, 0, 1)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	// Store probe: keep provider_store_up current and log transitions
	if cfg.StoreProbeInterval > 0 {
		p := &prober{store: st, metrics: reg, timeout: cfg.ProbeTimeout, logger: logger, up: true}
		p.probe(ctx)
		t := time.NewTicker(cfg.StoreProbeInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { p.probe(ctx) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

type prober struct {
	store   Pinger
	metrics *metrics.Registry
	timeout time.Duration
	logger  *slog.Logger
	up      bool
}

// probe pings the store and logs only when reachability changes.
func (p *prober) probe(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.store.Ping(pctx)
	up := err == nil
	p.metrics.ObserveStoreUp(up)

	switch {
	case !up && p.up:
		p.logger.Warn("Store probe: datastore unreachable", "error", err)
	case up && !p.up:
		p.logger.Info("Store probe: datastore reachable again")
	}
	p.up = up
}
