package db

import (
	"context"
	"encoding/json"
	"time"
)

// Store is the search backend facade combining all sub-interfaces.
type Store interface {
	Pinger
	Searcher
	DocumentGetter
	StatsReader
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Searcher runs search queries against an index.
type Searcher interface {
	Search(ctx context.Context, q *SearchQuery) (*SearchResponse, error)
}

// DocumentGetter fetches one stored document by primary key.
// A missing document yields ErrDocumentNotFound.
type DocumentGetter interface {
	GetDocument(ctx context.Context, index, id string) (json.RawMessage, error)
}

// StatsReader reads per-index statistics.
type StatsReader interface {
	IndexStats(ctx context.Context, index string) (IndexStats, error)
}

// IndexStats is the backend view of one index.
type IndexStats struct {
	NumberOfDocuments int64
	IsIndexing        bool
}
