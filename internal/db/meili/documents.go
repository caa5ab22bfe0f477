package meili

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meilisearch/meilisearch-go"

	"github.com/kailas-cloud/docsgate/internal/db"
)

// GetDocument fetches a document by primary key.
func (s *Store) GetDocument(ctx context.Context, index, id string) (json.RawMessage, error) {
	if index == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	// Ids outside the key alphabet cannot exist, and the client splices id
	// into the URL path unescaped.
	if !validDocumentID(id) {
		return nil, &db.Error{Op: db.OpGetDocument, Err: db.ErrDocumentNotFound}
	}

	var doc map[string]any
	err := s.client.Index(index).GetDocumentWithContext(ctx, id, &meilisearch.DocumentQuery{}, &doc)
	if err != nil {
		return nil, classify(db.OpGetDocument, err)
	}
	if doc == nil {
		return nil, &db.Error{Op: db.OpGetDocument, Err: db.ErrDocumentNotFound}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, &db.Error{Op: db.OpGetDocument, Err: fmt.Errorf("%w: %w", db.ErrBadResponse, err)}
	}
	return raw, nil
}

// IndexStats reads document count and indexing state for an index.
func (s *Store) IndexStats(ctx context.Context, index string) (db.IndexStats, error) {
	if index == "" {
		return db.IndexStats{}, fmt.Errorf("index name is required")
	}

	st, err := s.client.Index(index).GetStatsWithContext(ctx)
	if err != nil {
		return db.IndexStats{}, classify(db.OpStats, err)
	}
	if st == nil {
		return db.IndexStats{}, &db.Error{Op: db.OpStats, Err: fmt.Errorf("%w: empty stats", db.ErrBadResponse)}
	}

	return db.IndexStats{
		NumberOfDocuments: st.NumberOfDocuments,
		IsIndexing:        st.IsIndexing,
	}, nil
}

// maxDocumentIDBytes is the engine's limit on primary key length.
const maxDocumentIDBytes = 511

// validDocumentID reports whether id fits the engine's primary key format:
// ASCII letters, digits, '-' and '_'.
func validDocumentID(id string) bool {
	if len(id) > maxDocumentIDBytes {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
