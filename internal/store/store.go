// Package store reads raw provider documents from the marketplace datastore.
//
// Three backends implement Store: Firestore (production), Postgres (a JSONB
// mirror of the same collections) and an in-memory map used by tests and
// local development. All of them return documents as plain JSON-like maps;
// backend-specific value types are converted before they leave the package.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the document does not exist.
var ErrNotFound = errors.New("document not found")

// Store is the read side of the provider datastore.
type Store interface {
	// Get fetches a single document by collection path and id.
	Get(ctx context.Context, collection, id string) (map[string]any, error)
	// Details fetches every document of the details sub-collection under
	// collection/id, keyed by document id. A missing sub-collection is an
	// empty map, not an error.
	Details(ctx context.Context, collection, id string) (map[string]map[string]any, error)
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}

// Writer is implemented by the backends that can be seeded.
type Writer interface {
	Put(ctx context.Context, collection, id string, data map[string]any) error
}

// Counter is implemented by the backends that can summarize their contents.
type Counter interface {
	Collections(ctx context.Context) (map[string]int, error)
}

// DetailsPath is the collection path of the details sub-collection of
// collection/id.
func DetailsPath(collection, id string) string {
	return collection + "/" + id + "/details"
}
