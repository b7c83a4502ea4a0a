// Package listener provides a Postgres LISTEN/NOTIFY consumer that keeps the
// response cache coherent with the Postgres document store. It holds a
// dedicated pgx connection (not from the pool) listening on the
// `provider_documents_changed` channel.
//
// The provider_documents trigger fires pg_notify on every insert, update and
// delete; this consumer maps the changed document to the provider it belongs
// to and evicts that provider's cached response.
package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	Channel          = "provider_documents_changed"
	reconnectBackoff = 5 * time.Second
	maxReconnect     = 30 * time.Second
)

// ChangeEvent is the JSON payload from pg_notify('provider_documents_changed', ...).
type ChangeEvent struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Op         string `json:"op"`
}

// ProviderID returns the id of the provider the changed document belongs
// to. For a details document that is the parent document's id.
func (e ChangeEvent) ProviderID() string {
	if parent, ok := strings.CutSuffix(e.Collection, "/details"); ok {
		if i := strings.LastIndex(parent, "/"); i >= 0 {
			return parent[i+1:]
		}
	}
	return e.ID
}

// Start opens a dedicated connection and listens for document changes,
// calling invalidate with the affected provider id. It reconnects
// automatically on connection loss. Blocks until ctx is cancelled. Intended
// to be called with `go`.
func Start(ctx context.Context, dbURL string, invalidate func(providerID string), logger *slog.Logger) {
	backoff := reconnectBackoff

	for {
		connected, err := listenLoop(ctx, dbURL, invalidate, logger)
		if ctx.Err() != nil {
			logger.Info("Change listener stopped (context cancelled)")
			return
		}

		wait := retryDelay(backoff, connected)
		logger.Error("Change listener disconnected, reconnecting...",
			"error", err, "backoff", wait)

		select {
		case <-time.After(wait):
			backoff = min(wait*2, maxReconnect)
		case <-ctx.Done():
			return
		}
	}
}

// retryDelay is the wait before the next reconnect. A session that got as
// far as LISTEN starts the backoff over.
func retryDelay(backoff time.Duration, connected bool) time.Duration {
	if connected {
		return reconnectBackoff
	}
	return backoff
}

// listenLoop runs a single listen session. Returns when the connection drops
// or the context is cancelled; connected reports whether LISTEN succeeded.
func listenLoop(ctx context.Context, dbURL string, invalidate func(string), logger *slog.Logger) (bool, error) {
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		return false, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	_, err = conn.Exec(ctx, "LISTEN "+Channel)
	if err != nil {
		return false, fmt.Errorf("LISTEN %s: %w", Channel, err)
	}
	logger.Info("Change listener connected", "channel", Channel)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return true, fmt.Errorf("wait for notification: %w", err)
		}
		handlePayload(notification.Payload, invalidate, logger)
	}
}

func handlePayload(payload string, invalidate func(string), logger *slog.Logger) {
	var event ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		logger.Warn("Failed to parse change event", "payload", payload, "error", err)
		return
	}

	id := event.ProviderID()
	if id == "" {
		return
	}
	logger.Debug("Provider document changed",
		"collection", event.Collection, "id", event.ID, "op", event.Op, "provider", id)
	invalidate(id)
}
