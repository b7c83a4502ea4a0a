package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eventini/provider-api/internal/config"
	"github.com/eventini/provider-api/internal/db"
)

// Open connects the backend selected by cfg.StoreBackend.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	switch cfg.StoreBackend {
	case config.BackendFirestore:
		fs, err := NewFirestore(ctx, cfg.FirestoreProjectID, cfg.FirestoreDatabaseID)
		if err != nil {
			return nil, err
		}
		logger.Info("Firestore store ready", "project", cfg.FirestoreProjectID, "database", cfg.FirestoreDatabaseID)
		return fs, nil

	case config.BackendPostgres:
		pool, err := db.New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("database: %w", err)
		}
		logger.Info("Postgres store ready",
			"min_conns", cfg.DBPoolMinConns, "max_conns", cfg.DBPoolMaxConns)
		return NewPostgres(pool), nil

	case config.BackendMemory:
		mem := NewMemory()
		if cfg.FixturesFile != "" {
			fx, err := LoadFixturesFile(cfg.FixturesFile)
			if err != nil {
				return nil, fmt.Errorf("fixtures: %w", err)
			}
			mem.Load(fx)
			logger.Info("Memory store seeded", "file", cfg.FixturesFile, "documents", fx.Count())
		} else {
			logger.Warn("Memory store started empty, set FIXTURES_FILE to seed it")
		}
		return mem, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
