// Package meili implements db.Store on top of the Meilisearch HTTP API.
package meili

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/meilisearch/meilisearch-go"

	"github.com/kailas-cloud/docsgate/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a Meilisearch store.
type Config struct {
	URL    string
	APIKey string
	// Timeout bounds each HTTP request; 0 leaves requests bounded by the caller's context only.
	Timeout time.Duration
}

// Store implements db.Store via meilisearch-go.
type Store struct {
	client meilisearch.ServiceManager
}

// NewStore creates a Meilisearch store. Client-side retries are disabled:
// a failing backend surfaces immediately.
func NewStore(cfg Config) (*Store, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("url is required")
	}

	opts := []meilisearch.Option{meilisearch.DisableRetries()}
	if cfg.APIKey != "" {
		opts = append(opts, meilisearch.WithAPIKey(cfg.APIKey))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, meilisearch.WithCustomClient(&http.Client{Timeout: cfg.Timeout}))
	}

	return &Store{client: meilisearch.New(cfg.URL, opts...)}, nil
}

// Ping checks that the engine reports itself available.
func (s *Store) Ping(ctx context.Context) error {
	h, err := s.client.HealthWithContext(ctx)
	if err != nil {
		return classify(db.OpHealth, err)
	}
	if h == nil || h.Status != "available" {
		status := ""
		if h != nil {
			status = h.Status
		}
		return &db.Error{Op: db.OpHealth, Err: fmt.Errorf("%w: status %q", db.ErrUnavailable, status)}
	}
	return nil
}

// WaitForReady polls Ping until the engine responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.Ping(ctx); err == nil {
		return nil
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for search backend: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// classify maps a client error onto the db sentinels, keeping the original message.
func classify(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &db.Error{Op: op, Err: fmt.Errorf("%w: %w", db.ErrUnavailable, err)}
	}

	var me *meilisearch.Error
	if !errors.As(err, &me) {
		return &db.Error{Op: op, Err: fmt.Errorf("%w: %w", db.ErrUnavailable, err)}
	}

	switch {
	case me.StatusCode == 0:
		// No HTTP response: connection refused, DNS, timeout.
		return &db.Error{Op: op, Err: fmt.Errorf("%w: %w", db.ErrUnavailable, err)}
	case me.StatusCode == http.StatusNotFound && me.MeilisearchApiError.Code == "index_not_found":
		return &db.Error{Op: op, Err: fmt.Errorf("%w: %s", db.ErrIndexNotFound, me.MeilisearchApiError.Message)}
	case me.StatusCode == http.StatusNotFound && op == db.OpGetDocument:
		return &db.Error{Op: op, Err: db.ErrDocumentNotFound}
	case me.StatusCode == http.StatusBadGateway,
		me.StatusCode == http.StatusServiceUnavailable,
		me.StatusCode == http.StatusGatewayTimeout:
		return &db.Error{Op: op, Err: fmt.Errorf("%w: status %d", db.ErrUnavailable, me.StatusCode)}
	default:
		return &db.Error{Op: op, Err: fmt.Errorf("%w: %w", db.ErrBadResponse, err)}
	}
}
