package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/docsgate/internal/db"
	"github.com/kailas-cloud/docsgate/internal/domain"
	"github.com/kailas-cloud/docsgate/internal/domain/search/request"
	"github.com/kailas-cloud/docsgate/internal/domain/search/result"
)

// store is the consumer interface for search operations (ISP).
type store interface {
	db.Searcher
	db.DocumentGetter
	db.StatsReader
}

// Repo implements usecase/search.Repository on top of the document and chunk indexes.
type Repo struct {
	store     store
	documents string
	chunks    string
}

// New creates a search repository over the given index names.
func New(s store, documentsIndex, chunksIndex string) *Repo {
	return &Repo{store: s, documents: documentsIndex, chunks: chunksIndex}
}

// SearchDocuments runs a full-document search.
func (r *Repo) SearchDocuments(
	ctx context.Context, req request.DocumentSearch,
) (result.SearchResult[result.Hit], error) {
	q := DocumentQuery(r.documents, req)
	sr, err := r.store.Search(ctx, &q)
	if err != nil {
		return result.SearchResult[result.Hit]{}, mapError("search documents", err)
	}
	return normalizeDocuments(sr, q.Limit)
}

// SearchChunks runs a passage search.
func (r *Repo) SearchChunks(
	ctx context.Context, req request.ChunkSearch,
) (result.SearchResult[result.ChunkHit], error) {
	q := ChunkQuery(r.chunks, req)
	sr, err := r.store.Search(ctx, &q)
	if err != nil {
		return result.SearchResult[result.ChunkHit]{}, mapError("search chunks", err)
	}
	return normalizeChunks(sr, q.Limit)
}

// GetDocument fetches a document by primary key.
// A missing document yields domain.ErrDocumentNotFound.
func (r *Repo) GetDocument(ctx context.Context, id string) (result.Document, error) {
	raw, err := r.store.GetDocument(ctx, r.documents, id)
	if err != nil {
		return result.Document{}, mapError("get document", err)
	}
	return decodeDocument(raw)
}

// FindByPath returns the first document whose path equals path exactly.
func (r *Repo) FindByPath(ctx context.Context, path string) (result.Document, error) {
	q, err := PathQuery(r.documents, path)
	if err != nil {
		return result.Document{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	sr, err := r.store.Search(ctx, &q)
	if err != nil {
		return result.Document{}, mapError("find by path", err)
	}
	if sr == nil {
		return result.Document{}, fmt.Errorf("%w: empty search response", domain.ErrBackendError)
	}
	hits, err := decodeHits(sr.Hits, q.Limit)
	if err != nil {
		return result.Document{}, err
	}
	if len(hits) == 0 {
		return result.Document{}, domain.ErrDocumentNotFound
	}
	return toDocument(&hits[0]), nil
}

// TagCounts returns the number of documents per tag, most used first.
func (r *Repo) TagCounts(ctx context.Context) ([]result.TagCount, error) {
	q := TagFacetQuery(r.documents)
	sr, err := r.store.Search(ctx, &q)
	if err != nil {
		return nil, mapError("list tags", err)
	}
	return normalizeTagCounts(sr, request.FieldTags)
}

// Stats reads the document and chunk index statistics.
func (r *Repo) Stats(ctx context.Context) (result.IndexStats, error) {
	docs, err := r.store.IndexStats(ctx, r.documents)
	if err != nil {
		return result.IndexStats{}, mapError("documents stats", err)
	}
	chunks, err := r.store.IndexStats(ctx, r.chunks)
	if err != nil {
		return result.IndexStats{}, mapError("chunks stats", err)
	}
	return result.IndexStats{
		Documents: result.IndexCount{Count: docs.NumberOfDocuments, Indexing: docs.IsIndexing},
		Chunks:    result.IndexCount{Count: chunks.NumberOfDocuments, Indexing: chunks.IsIndexing},
	}, nil
}

// mapError translates backend errors into domain errors.
func mapError(op string, err error) error {
	switch {
	case errors.Is(err, db.ErrDocumentNotFound):
		return fmt.Errorf("%s: %w", op, domain.ErrDocumentNotFound)
	case errors.Is(err, db.ErrUnavailable):
		return fmt.Errorf("%s: %w: %w", op, domain.ErrBackendUnavailable, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrBackendError, err)
	}
}
