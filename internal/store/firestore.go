package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/genproto/googleapis/type/latlng"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore reads provider documents from Cloud Firestore.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore opens a client for projectID. An empty databaseID selects the
// default database.
func NewFirestore(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	var (
		client *firestore.Client
		err    error
	)
	if databaseID == "" || databaseID == firestore.DefaultDatabaseID {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	}
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return &Firestore{client: client}, nil
}

func (f *Firestore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	ref, err := f.doc(collection, id)
	if err != nil {
		return nil, err
	}
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", ref.Path, err)
	}
	if !snap.Exists() {
		return nil, ErrNotFound
	}
	return normalizeMap(snap.Data()), nil
}

func (f *Firestore) Details(ctx context.Context, collection, id string) (map[string]map[string]any, error) {
	ref, err := f.doc(collection, id)
	if err != nil {
		return nil, err
	}

	out := make(map[string]map[string]any)
	iter := ref.Collection("details").Documents(ctx)
	defer iter.Stop()
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s/details: %w", ref.Path, err)
		}
		out[snap.Ref.ID] = normalizeMap(snap.Data())
	}
	return out, nil
}

// Ping lists a single root collection.
func (f *Firestore) Ping(ctx context.Context) error {
	_, err := f.client.Collections(ctx).Next()
	if err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("firestore ping: %w", err)
	}
	return nil
}

func (f *Firestore) Close() error { return f.client.Close() }

// doc resolves collection/id. Ids containing a slash would address a
// different document, so they never match.
func (f *Firestore) doc(collection, id string) (*firestore.DocumentRef, error) {
	if id == "" || strings.Contains(id, "/") {
		return nil, ErrNotFound
	}
	ref := f.client.Doc(collection + "/" + id)
	if ref == nil {
		return nil, fmt.Errorf("invalid document path %q", collection+"/"+id)
	}
	return ref, nil
}

// normalizeMap converts Firestore value types into the JSON-like values the
// other backends return.
func normalizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case int64:
		return float64(val)
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case *latlng.LatLng:
		if val == nil {
			return nil
		}
		return map[string]any{"latitude": val.GetLatitude(), "longitude": val.GetLongitude()}
	case *firestore.DocumentRef:
		if val == nil {
			return nil
		}
		return val.Path
	case map[string]any:
		return normalizeMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	}
	return v
}
