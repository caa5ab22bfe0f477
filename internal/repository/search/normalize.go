package search

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kailas-cloud/docsgate/internal/db"
	"github.com/kailas-cloud/docsgate/internal/domain"
	"github.com/kailas-cloud/docsgate/internal/domain/search/result"
)

// decodeHits decodes at most limit raw hits in ranking order.
func decodeHits(raw []json.RawMessage, limit int) ([]rawHit, error) {
	if len(raw) > limit {
		raw = raw[:limit]
	}
	hits := make([]rawHit, 0, len(raw))
	for i, r := range raw {
		var h rawHit
		if err := json.Unmarshal(r, &h); err != nil {
			return nil, fmt.Errorf("%w: decode hit %d: %w", domain.ErrBackendError, i, err)
		}
		hits = append(hits, h)
	}
	return hits, nil
}

// normalizeDocuments maps a document index response to ranked hits.
func normalizeDocuments(sr *db.SearchResponse, limit int) (result.SearchResult[result.Hit], error) {
	if sr == nil {
		return result.SearchResult[result.Hit]{}, fmt.Errorf("%w: empty search response", domain.ErrBackendError)
	}
	raw, err := decodeHits(sr.Hits, limit)
	if err != nil {
		return result.SearchResult[result.Hit]{}, err
	}
	hits := make([]result.Hit, len(raw))
	for i := range raw {
		hits[i] = toHit(&raw[i])
	}
	return result.SearchResult[result.Hit]{EstimatedTotal: sr.EstimatedTotal, Hits: hits}, nil
}

// normalizeChunks maps a chunk index response to ranked chunk hits.
func normalizeChunks(sr *db.SearchResponse, limit int) (result.SearchResult[result.ChunkHit], error) {
	if sr == nil {
		return result.SearchResult[result.ChunkHit]{}, fmt.Errorf("%w: empty search response", domain.ErrBackendError)
	}
	raw, err := decodeHits(sr.Hits, limit)
	if err != nil {
		return result.SearchResult[result.ChunkHit]{}, err
	}
	hits := make([]result.ChunkHit, len(raw))
	for i := range raw {
		hits[i] = toChunkHit(&raw[i])
	}
	return result.SearchResult[result.ChunkHit]{EstimatedTotal: sr.EstimatedTotal, Hits: hits}, nil
}

func toHit(h *rawHit) result.Hit {
	return result.Hit{
		ID:          string(h.ID),
		Title:       string(h.Title),
		Path:        string(h.Path),
		Description: string(h.Description),
		Tags:        h.tags(),
		SourceURL:   string(h.SourceURL),
		UpdatedAt:   string(h.UpdatedAt),
		Snippet:     result.Snippet(h.formattedDescription(), h.formattedContent()),
	}
}

func toChunkHit(h *rawHit) result.ChunkHit {
	content := h.formattedContent()
	if content == "" {
		content = string(h.Content)
	}
	return result.ChunkHit{
		ID:          string(h.ID),
		DocumentID:  string(h.DocumentID),
		Title:       string(h.Title),
		Path:        string(h.Path),
		Tags:        h.tags(),
		SourceURL:   string(h.SourceURL),
		ChunkIndex:  int(h.ChunkIndex),
		TotalChunks: int(h.TotalChunks),
		Content:     content,
	}
}

func toDocument(h *rawHit) result.Document {
	return result.Document{
		ID:                 string(h.ID),
		Title:              string(h.Title),
		Path:               string(h.Path),
		Description:        string(h.Description),
		Content:            string(h.Content),
		Tags:               h.tags(),
		Author:             string(h.Author),
		SourceURL:          string(h.SourceURL),
		UpdatedAt:          string(h.UpdatedAt),
		WordCount:          int(h.WordCount),
		ReadingTimeMinutes: int(h.ReadingTimeMinutes),
	}
}

// decodeDocument decodes a stored document.
func decodeDocument(raw json.RawMessage) (result.Document, error) {
	var h rawHit
	if err := json.Unmarshal(raw, &h); err != nil {
		return result.Document{}, fmt.Errorf("%w: decode document: %w", domain.ErrBackendError, err)
	}
	return toDocument(&h), nil
}

// normalizeTagCounts extracts the counts of field from a facet distribution,
// sorted by count descending. Values with equal counts keep the engine's order.
func normalizeTagCounts(sr *db.SearchResponse, field string) ([]result.TagCount, error) {
	if sr == nil {
		return nil, fmt.Errorf("%w: empty search response", domain.ErrBackendError)
	}
	counts := []result.TagCount{}
	if len(sr.FacetDistribution) == 0 {
		return counts, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(sr.FacetDistribution, &fields); err != nil {
		return nil, fmt.Errorf("%w: decode facets: %w", domain.ErrBackendError, err)
	}
	raw, ok := fields[field]
	if !ok {
		return counts, nil
	}

	counts, err := orderedCounts(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s facet: %w", domain.ErrBackendError, field, err)
	}
	result.SortTagCounts(counts)
	return counts, nil
}

// orderedCounts reads a {"value": count} object preserving key order.
func orderedCounts(raw json.RawMessage) ([]result.TagCount, error) {
	counts := []result.TagCount{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return counts, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected key, got %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return nil, fmt.Errorf("count for %q is not a number", key)
		}
		n, err := num.Int64()
		if err != nil {
			return nil, fmt.Errorf("count for %q: %w", key, err)
		}
		counts = append(counts, result.TagCount{Tag: key, Count: int(n)})
	}

	if _, err := dec.Token(); err != nil && err != io.EOF {
		return nil, err
	}
	return counts, nil
}
