package health

import (
	"context"

	"github.com/kailas-cloud/docsgate/internal/domain/search/result"
)

// BackendPinger checks search engine availability.
type BackendPinger interface {
	Ping(ctx context.Context) error
}

// IndexChecker reads index statistics; a failure means an index is missing or unreadable.
type IndexChecker interface {
	Stats(ctx context.Context) (result.IndexStats, error)
}
