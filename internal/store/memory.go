package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store keyed by collection path and document id.
type Memory struct {
	mu       sync.RWMutex
	docs     map[string]map[string]map[string]any
	failures map[string]error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		docs:     make(map[string]map[string]map[string]any),
		failures: make(map[string]error),
	}
}

// Put stores data at collection/id, replacing any existing document.
func (m *Memory) Put(_ context.Context, collection, id string, data map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.docs[collection] == nil {
		m.docs[collection] = make(map[string]map[string]any)
	}
	m.docs[collection][id] = data
	return nil
}

// Load stores every document of fx.
func (m *Memory) Load(fx Fixtures) {
	for collection, docs := range fx {
		for id, data := range docs {
			_ = m.Put(context.Background(), collection, id, data)
		}
	}
}

// Fail makes every read of collection return err. A nil err clears it.
func (m *Memory) Fail(collection string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, collection)
		return
	}
	m.failures[collection] = err
}

func (m *Memory) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failures[collection]; err != nil {
		return nil, err
	}
	doc, ok := m.docs[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}

func (m *Memory) Details(ctx context.Context, collection, id string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := DetailsPath(collection, id)
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.failures[path]; err != nil {
		return nil, err
	}
	out := make(map[string]map[string]any, len(m.docs[path]))
	for docID, doc := range m.docs[path] {
		out[docID] = doc
	}
	return out, nil
}

// Collections returns the number of documents per collection path.
func (m *Memory) Collections(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]int, len(m.docs))
	for c, docs := range m.docs {
		out[c] = len(docs)
	}
	return out, nil
}

func (m *Memory) Ping(ctx context.Context) error { return ctx.Err() }

func (m *Memory) Close() error { return nil }
