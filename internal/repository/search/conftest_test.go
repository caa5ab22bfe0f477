package search

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/kailas-cloud/docsgate/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	searchFn      func(ctx context.Context, q *db.SearchQuery) (*db.SearchResponse, error)
	getDocumentFn func(ctx context.Context, index, id string) (json.RawMessage, error)
	indexStatsFn  func(ctx context.Context, index string) (db.IndexStats, error)
}

func (m *mockStore) Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResponse, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResponse{}, nil
}

func (m *mockStore) GetDocument(ctx context.Context, index, id string) (json.RawMessage, error) {
	if m.getDocumentFn != nil {
		return m.getDocumentFn(ctx, index, id)
	}
	return nil, &db.Error{Op: db.OpGetDocument, Err: db.ErrDocumentNotFound}
}

func (m *mockStore) IndexStats(ctx context.Context, index string) (db.IndexStats, error) {
	if m.indexStatsFn != nil {
		return m.indexStatsFn(ctx, index)
	}
	return db.IndexStats{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	repo := New(ms, "documents", "documents_chunks")
	return repo, ms
}

func rawHits(t *testing.T, hits ...map[string]any) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, len(hits))
	for i, h := range hits {
		b, err := json.Marshal(h)
		if err != nil {
			t.Fatalf("marshal hit: %v", err)
		}
		out[i] = b
	}
	return out
}
