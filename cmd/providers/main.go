// Command providers is the Eventini provider operator CLI.
//
// Usage:
//
//	providers get 8f3kQ2
//	providers get 8f3kQ2 --backend memory --fixtures testdata/providers.json
//	providers migrate
//	providers seed --file testdata/providers.json
//	providers collections
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eventini/provider-api/internal/config"
	"github.com/eventini/provider-api/internal/db"
	"github.com/eventini/provider-api/internal/resolver"
	"github.com/eventini/provider-api/internal/seed"
	"github.com/eventini/provider-api/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "providers",
		Short: "Eventini provider operator CLI",
	}

	root.AddCommand(getCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())
	root.AddCommand(collectionsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// get command
// --------------------------------------------------------------------------

func getCmd() *cobra.Command {
	var (
		backend  string
		fixtures string
		raw      bool
	)
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Resolve and print a normalized provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(storeOptions(backend, fixtures), func(ctx context.Context, cfg *config.Config, st store.Store) error {
				res := resolver.New(st, logger, nil)
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				if raw {
					rec, err := res.Locate(ctx, args[0])
					if err != nil {
						return lookupError(args[0], err)
					}
					return enc.Encode(map[string]any{
						"id":       rec.ID,
						"category": rec.Category,
						"source":   rec.Source,
						"data":     rec.Data,
						"details":  rec.Details,
					})
				}

				start := time.Now()
				np, err := res.Resolve(ctx, args[0])
				if err != nil {
					return lookupError(args[0], err)
				}
				logger.Info("Provider resolved",
					"id", np.ID, "category", np.Category, "source", np.Source,
					"duration", time.Since(start).Round(time.Millisecond))
				return enc.Encode(map[string]any{"provider": np})
			})
		},
	}
	cmd.Flags().StringVar(&backend, "backend", "", "Store backend (firestore, postgres, memory); defaults to STORE_BACKEND")
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "Fixtures file for the memory backend")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the located record instead of the normalized provider")
	return cmd
}

func lookupError(id string, err error) error {
	if errors.Is(err, resolver.ErrNotFound) {
		return fmt.Errorf("provider %q not found in any collection", id)
	}
	return fmt.Errorf("resolve %q: %w", id, err)
}

// --------------------------------------------------------------------------
// migrate command
// --------------------------------------------------------------------------

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the provider_documents table in Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := config.Load(config.WithBackend(config.BackendPostgres))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("Schema applied")
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	var (
		file    string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a fixtures file into the Postgres document store",
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := store.LoadFixturesFile(file)
			if err != nil {
				return fmt.Errorf("read fixtures: %w", err)
			}
			opts := []config.Option{config.WithBackend(config.BackendPostgres)}
			return runStore(opts, func(ctx context.Context, cfg *config.Config, st store.Store) error {
				w, ok := st.(store.Writer)
				if !ok {
					return fmt.Errorf("backend %s cannot be seeded", cfg.StoreBackend)
				}
				result := seed.Run(ctx, w, fx, workers, logger)
				for _, e := range result.Errors {
					logger.Error("seed error", "error", e)
				}
				if result.Failed > 0 {
					return fmt.Errorf("%d of %d documents failed", result.Failed, fx.Count())
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Fixtures JSON file")
	cmd.Flags().IntVar(&workers, "workers", 4, "Collections written concurrently")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// --------------------------------------------------------------------------
// collections command
// --------------------------------------------------------------------------

func collectionsCmd() *cobra.Command {
	var (
		backend  string
		fixtures string
	)
	cmd := &cobra.Command{
		Use:   "collections",
		Short: "List the collections searched, in order, with document counts where available",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(storeOptions(backend, fixtures), func(ctx context.Context, cfg *config.Config, st store.Store) error {
				out := cmd.OutOrStdout()

				counter, ok := st.(store.Counter)
				if !ok {
					for i, c := range resolver.Collections() {
						fmt.Fprintf(out, "%d. %s\n", i+1, c)
					}
					return nil
				}

				counts, err := counter.Collections(ctx)
				if err != nil {
					return err
				}
				for i, c := range resolver.Collections() {
					fmt.Fprintf(out, "%d. %s (%d documents)\n", i+1, c, counts[c])
				}

				// Everything else is details sub-collections or unrelated data.
				var other []string
				searched := make(map[string]bool)
				for _, c := range resolver.Collections() {
					searched[c] = true
				}
				for c := range counts {
					if !searched[c] {
						other = append(other, c)
					}
				}
				sort.Strings(other)
				for _, c := range other {
					fmt.Fprintf(out, "   %s (%d documents)\n", c, counts[c])
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&backend, "backend", "", "Store backend (firestore, postgres, memory); defaults to STORE_BACKEND")
	cmd.Flags().StringVar(&fixtures, "fixtures", "", "Fixtures file for the memory backend")
	return cmd
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func storeOptions(backend, fixtures string) []config.Option {
	var opts []config.Option
	if backend != "" {
		opts = append(opts, config.WithBackend(backend))
	}
	if fixtures != "" {
		opts = append(opts, config.WithFixtures(fixtures))
	}
	return opts
}

func runStore(opts []config.Option, fn func(ctx context.Context, cfg *config.Config, st store.Store) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load(opts...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	st, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return fn(ctx, cfg, st)
}
