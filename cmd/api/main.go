// Command api is the Eventini provider API server.
//
// Usage:
//
//	provider-api
//	STORE_BACKEND=memory FIXTURES_FILE=testdata/providers.json provider-api

// @title Eventini Provider API
// @version 1.0.0
// @description Resolves marketplace providers across the Eventini collections and serves them in one normalized shape.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name Eventini
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/eventini/provider-api/internal/api"
	"github.com/eventini/provider-api/internal/cache"
	"github.com/eventini/provider-api/internal/config"
	"github.com/eventini/provider-api/internal/listener"
	"github.com/eventini/provider-api/internal/maintenance"
	"github.com/eventini/provider-api/internal/metrics"
	"github.com/eventini/provider-api/internal/resolver"
	"github.com/eventini/provider-api/internal/store"

	_ "github.com/eventini/provider-api/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	level := slog.LevelInfo
	if os.Getenv("DEBUG") == "true" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Connect to the datastore
	logger.Info("Opening provider store...", "backend", cfg.StoreBackend)
	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open provider store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	defer appCache.Close()
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	var reg *metrics.Registry
	if cfg.MetricsEnabled {
		reg = metrics.NewRegistry()
	}

	// Evict cached responses when Postgres documents change
	if cfg.CacheEnabled && cfg.StoreBackend == config.BackendPostgres {
		go listener.Start(ctx, cfg.DatabaseURL, func(id string) {
			appCache.Delete(cache.ProviderKey(id))
		}, logger)
	}

	// Start maintenance tickers (store probe)
	mcfg := maintenance.DefaultConfig()
	mcfg.StoreProbeInterval = cfg.StoreProbeInterval
	go maintenance.Start(ctx, st, reg, mcfg, logger)

	// Create router
	router := api.NewRouter(api.Deps{
		Providers: resolver.New(st, logger, reg),
		Store:     st,
		Cache:     appCache,
		Metrics:   reg,
		Config:    cfg,
		Logger:    logger,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Eventini Provider API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
