package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/docsgate/internal/domain"
	"github.com/kailas-cloud/docsgate/internal/domain/search/request"
	"github.com/kailas-cloud/docsgate/internal/domain/search/result"
)

// Service handles document, passage and tag queries against the search backend.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// SearchDocuments runs a full-document search.
func (s *Service) SearchDocuments(
	ctx context.Context, req request.DocumentSearch,
) (result.SearchResult[result.Hit], error) {
	return s.repo.SearchDocuments(ctx, req)
}

// SearchChunks runs a passage search, optionally scoped to one document.
func (s *Service) SearchChunks(
	ctx context.Context, req request.ChunkSearch,
) (result.SearchResult[result.ChunkHit], error) {
	return s.repo.SearchChunks(ctx, req)
}

// GetDocument resolves an identifier as a document id first, then as a path.
// Only a not-found lookup falls back to the path search; backend failures
// propagate unchanged.
func (s *Service) GetDocument(ctx context.Context, req request.DocumentLookup) (result.Document, error) {
	id := req.ID()

	doc, err := s.repo.GetDocument(ctx, id)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		return result.Document{}, fmt.Errorf("get document %s: %w", id, err)
	}

	doc, err = s.repo.FindByPath(ctx, id)
	if err == nil {
		return doc, nil
	}
	if errors.Is(err, domain.ErrDocumentNotFound) {
		return result.Document{}, &domain.DocumentNotFoundError{ID: id}
	}
	return result.Document{}, fmt.Errorf("find document by path %s: %w", id, err)
}

// ListTags returns every tag with its document count, most used first.
func (s *Service) ListTags(ctx context.Context) ([]result.TagCount, error) {
	return s.repo.TagCounts(ctx)
}

// Stats returns document and chunk index statistics.
func (s *Service) Stats(ctx context.Context) (result.IndexStats, error) {
	return s.repo.Stats(ctx)
}
