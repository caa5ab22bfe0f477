package dispatch

import (
	"context"

	"github.com/kailas-cloud/docsgate/internal/domain/search/request"
	"github.com/kailas-cloud/docsgate/internal/domain/search/result"
)

// SearchService serves the search, retrieval and listing tools.
type SearchService interface {
	SearchDocuments(ctx context.Context, req request.DocumentSearch) (result.SearchResult[result.Hit], error)
	SearchChunks(ctx context.Context, req request.ChunkSearch) (result.SearchResult[result.ChunkHit], error)
	GetDocument(ctx context.Context, req request.DocumentLookup) (result.Document, error)
	ListTags(ctx context.Context) ([]result.TagCount, error)
	Stats(ctx context.Context) (result.IndexStats, error)
}

// DecisionService serves the decision lookup tool.
type DecisionService interface {
	Lookup(ctx context.Context, req request.DecisionLookup) (result.Decision, error)
}
