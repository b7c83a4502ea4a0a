package seed

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/eventini/provider-api/internal/store"
)

// Run writes every fixture document through w. Collections are spread over
// a pool of workers; documents within a collection are written in id order.
// A failed write is recorded and does not stop the run.
func Run(ctx context.Context, w store.Writer, fx store.Fixtures, workers int, logger *slog.Logger) Result {
	start := time.Now()
	var result Result

	collections := make([]string, 0, len(fx))
	for c := range fx {
		collections = append(collections, c)
	}
	sort.Strings(collections)

	if len(collections) == 0 {
		logger.Info("No fixture documents to seed")
		return result
	}

	// Worker pool: one channel of collections, N workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(collections) {
		workers = len(collections)
	}

	ch := make(chan string, len(collections))
	for _, c := range collections {
		ch <- c
	}
	close(ch)

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for collection := range ch {
				r := seedCollection(ctx, w, collection, fx[collection])

				mu.Lock()
				result.Add(r)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	result.Duration = time.Since(start)

	logger.Info("Seed run complete", "summary", result.Summary())
	return result
}

func seedCollection(ctx context.Context, w store.Writer, collection string, docs map[string]map[string]any) Result {
	r := Result{Collections: 1}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			r.Failed += len(ids) - r.Written - r.Failed
			r.AddErrorf("%s: %v", collection, err)
			return r
		}
		if err := w.Put(ctx, collection, id, docs[id]); err != nil {
			r.Failed++
			r.AddErrorf("%s/%s: %v", collection, id, err)
			continue
		}
		r.Written++
	}
	return r
}
