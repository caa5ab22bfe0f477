package db

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docsgate/internal/metrics"
)

// InstrumentedStore wraps a Store with request metrics and debug logging.
type InstrumentedStore struct {
	inner  Store
	logger *zap.Logger
}

// NewInstrumentedStore wraps a store with observability.
func NewInstrumentedStore(inner Store, logger *zap.Logger) *InstrumentedStore {
	return &InstrumentedStore{inner: inner, logger: logger}
}

// Ping delegates to the inner store.
func (s *InstrumentedStore) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.inner.Ping(ctx)
	s.observe(OpHealth, start, err)
	return err
}

// Search delegates to the inner store.
func (s *InstrumentedStore) Search(ctx context.Context, q *SearchQuery) (*SearchResponse, error) {
	start := time.Now()
	resp, err := s.inner.Search(ctx, q)
	s.observe(OpSearch, start, err,
		zap.String("index", q.Index),
		zap.Int("limit", q.Limit),
		zap.Bool("filtered", q.Filter != ""),
	)
	return resp, err
}

// GetDocument delegates to the inner store.
func (s *InstrumentedStore) GetDocument(ctx context.Context, index, id string) (json.RawMessage, error) {
	start := time.Now()
	doc, err := s.inner.GetDocument(ctx, index, id)
	s.observe(OpGetDocument, start, err, zap.String("index", index))
	return doc, err
}

// IndexStats delegates to the inner store.
func (s *InstrumentedStore) IndexStats(ctx context.Context, index string) (IndexStats, error) {
	start := time.Now()
	st, err := s.inner.IndexStats(ctx, index)
	s.observe(OpStats, start, err, zap.String("index", index))
	return st, err
}

// WaitForReady delegates to the inner store without recording metrics.
func (s *InstrumentedStore) WaitForReady(ctx context.Context, timeout time.Duration) error {
	return s.inner.WaitForReady(ctx, timeout)
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error, fields ...zap.Field) {
	duration := time.Since(start)
	status := statusOf(err)

	metrics.BackendRequestDuration.WithLabelValues(op).Observe(duration.Seconds())
	metrics.BackendRequestsTotal.WithLabelValues(op, status).Inc()

	fields = append(fields,
		zap.String("op", op),
		zap.String("status", status),
		zap.Duration("duration", duration),
	)
	if err != nil && status != "not_found" {
		s.logger.Warn("Backend request failed", append(fields, zap.Error(err))...)
		return
	}
	s.logger.Debug("Backend request completed", fields...)
}

// statusOf maps an error to a low-cardinality metric label.
func statusOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrDocumentNotFound):
		return "not_found"
	case errors.Is(err, ErrIndexNotFound):
		return "index_not_found"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
