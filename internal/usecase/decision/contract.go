package decision

import (
	"context"

	"github.com/kailas-cloud/docsgate/internal/domain/search/request"
	"github.com/kailas-cloud/docsgate/internal/domain/search/result"
)

// DocumentSearcher runs the document search that gathers evidence.
type DocumentSearcher interface {
	SearchDocuments(ctx context.Context, req request.DocumentSearch) (result.SearchResult[result.Hit], error)
}
