package meili

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meilisearch/meilisearch-go"

	"github.com/kailas-cloud/docsgate/internal/db"
)

// Search runs a search request against q.Index.
func (s *Store) Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResponse, error) {
	if q.Index == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if q.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative")
	}

	req := &meilisearch.SearchRequest{
		Limit:                int64(q.Limit),
		Facets:               q.Facets,
		AttributesToRetrieve: q.Attributes,
	}
	if q.Filter != "" {
		req.Filter = q.Filter
	}
	if q.Highlight != nil {
		req.AttributesToHighlight = q.Highlight.Fields
		req.HighlightPreTag = q.Highlight.PreTag
		req.HighlightPostTag = q.Highlight.PostTag
	}

	raw, err := s.client.Index(q.Index).SearchRawWithContext(ctx, q.Text, req)
	if err != nil {
		return nil, classify(db.OpSearch, err)
	}

	return toSearchResponse(raw)
}

// rawSearchResponse keeps hits and facets as the engine sent them. The facet
// object must not pass through a Go map: its key order is the engine's.
type rawSearchResponse struct {
	Hits               []json.RawMessage `json:"hits"`
	EstimatedTotalHits int64             `json:"estimatedTotalHits"`
	FacetDistribution  json.RawMessage   `json:"facetDistribution"`
}

func toSearchResponse(raw *json.RawMessage) (*db.SearchResponse, error) {
	if raw == nil || len(*raw) == 0 {
		return nil, &db.Error{Op: db.OpSearch, Err: fmt.Errorf("%w: empty response", db.ErrBadResponse)}
	}

	var resp rawSearchResponse
	if err := json.Unmarshal(*raw, &resp); err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: fmt.Errorf("%w: decode response: %w", db.ErrBadResponse, err)}
	}

	out := &db.SearchResponse{
		EstimatedTotal: int(resp.EstimatedTotalHits),
		Hits:           resp.Hits,
	}
	if len(resp.FacetDistribution) > 0 && string(resp.FacetDistribution) != "null" {
		out.FacetDistribution = resp.FacetDistribution
	}

	return out, nil
}
