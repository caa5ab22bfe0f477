package decision

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/docsgate/internal/domain/search/request"
	"github.com/kailas-cloud/docsgate/internal/domain/search/result"
)

// Fixed texts returned with a decision lookup.
const (
	NotFoundMessage    = "No documents found that relate to this question."
	NotFoundSuggestion = "Try rephrasing the question with different keywords, or use search_docs for a broader search."
	SynthesisNote      = "Use the relevant documents above to answer the question. " +
		"If they do not clearly answer it, say that the decision is not documented."
)

// Service answers decision questions with supporting documents.
// It gathers evidence only; composing the answer is left to the caller.
type Service struct {
	search DocumentSearcher
}

// New creates a decision lookup service.
func New(search DocumentSearcher) *Service {
	return &Service{search: search}
}

// Lookup runs a single document search for the question and reshapes the
// hits into evidence in ranking order.
func (s *Service) Lookup(ctx context.Context, req request.DecisionLookup) (result.Decision, error) {
	res, err := s.search.SearchDocuments(ctx, req.Search())
	if err != nil {
		return result.Decision{}, fmt.Errorf("lookup decision: %w", err)
	}
	if len(res.Hits) == 0 {
		return result.NewNotFound(req.Question(), NotFoundMessage, NotFoundSuggestion), nil
	}
	hits := res.Hits
	if len(hits) > request.DecisionLimit {
		hits = hits[:request.DecisionLimit]
	}
	return result.NewFound(req.Question(), hits, SynthesisNote), nil
}
