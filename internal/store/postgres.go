package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eventini/provider-api/internal/db"
)

// Postgres reads provider documents from the provider_documents table.
type Postgres struct {
	pool *db.Pool
}

// NewPostgres wraps an open pool.
func NewPostgres(pool *db.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	var data map[string]any
	err := p.pool.QueryRow(ctx, "provider_document", collection, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query %s/%s: %w", collection, id, err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

func (p *Postgres) Details(ctx context.Context, collection, id string) (map[string]map[string]any, error) {
	path := DetailsPath(collection, id)
	rows, err := p.pool.Query(ctx, "provider_details", path)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", path, err)
	}
	defer rows.Close()

	out := make(map[string]map[string]any)
	for rows.Next() {
		var (
			docID string
			data  map[string]any
		)
		if err := rows.Scan(&docID, &data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", path, err)
		}
		out[docID] = data
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", path, err)
	}
	return out, nil
}

// Put upserts a document.
func (p *Postgres) Put(ctx context.Context, collection, id string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	if _, err := p.pool.Exec(ctx, "upsert_provider_document", collection, id, data); err != nil {
		return fmt.Errorf("upsert %s/%s: %w", collection, id, err)
	}
	return nil
}

// Collections returns the number of documents per collection path.
func (p *Postgres) Collections(ctx context.Context) (map[string]int, error) {
	rows, err := p.pool.Query(ctx, "collection_counts")
	if err != nil {
		return nil, fmt.Errorf("query collection counts: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			collection string
			n          int
		)
		if err := rows.Scan(&collection, &n); err != nil {
			return nil, err
		}
		out[collection] = n
	}
	return out, rows.Err()
}

func (p *Postgres) Ping(ctx context.Context) error { return p.pool.HealthCheck(ctx) }

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
