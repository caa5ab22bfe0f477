package search

import (
	"context"

	"github.com/kailas-cloud/docsgate/internal/domain/search/request"
	"github.com/kailas-cloud/docsgate/internal/domain/search/result"
)

// Repository defines the backend contract for search operations.
type Repository interface {
	SearchDocuments(ctx context.Context, req request.DocumentSearch) (result.SearchResult[result.Hit], error)
	SearchChunks(ctx context.Context, req request.ChunkSearch) (result.SearchResult[result.ChunkHit], error)
	// GetDocument returns domain.ErrDocumentNotFound when the id is unknown.
	GetDocument(ctx context.Context, id string) (result.Document, error)
	// FindByPath returns domain.ErrDocumentNotFound when no document has the path.
	FindByPath(ctx context.Context, path string) (result.Document, error)
	TagCounts(ctx context.Context) ([]result.TagCount, error)
	Stats(ctx context.Context) (result.IndexStats, error)
}
