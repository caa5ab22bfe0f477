package search

import (
	"github.com/kailas-cloud/docsgate/internal/db"
	"github.com/kailas-cloud/docsgate/internal/domain/search/filter"
	"github.com/kailas-cloud/docsgate/internal/domain/search/request"
)

// HighlightMarker wraps matched terms in highlighted fields (markdown bold).
const HighlightMarker = "**"

var (
	documentHighlightFields = []string{"title", "description", "content"}
	chunkHighlightFields    = []string{"content"}
	tagFacets               = []string{request.FieldTags}
	// Facet-only queries still return hit ids when the client substitutes its default limit.
	facetAttributes = []string{"id"}
)

func highlight(fields []string) *db.Highlight {
	return &db.Highlight{
		Fields:  append([]string(nil), fields...),
		PreTag:  HighlightMarker,
		PostTag: HighlightMarker,
	}
}

// DocumentQuery builds the primary index query for a document search.
func DocumentQuery(index string, req request.DocumentSearch) db.SearchQuery {
	return db.SearchQuery{
		Index:     index,
		Text:      req.Query(),
		Limit:     req.Limit(),
		Filter:    req.Filters().String(),
		Highlight: highlight(documentHighlightFields),
	}
}

// ChunkQuery builds the chunk index query for a passage search.
func ChunkQuery(index string, req request.ChunkSearch) db.SearchQuery {
	return db.SearchQuery{
		Index:     index,
		Text:      req.Query(),
		Limit:     req.Limit(),
		Filter:    req.Filters().String(),
		Highlight: highlight(chunkHighlightFields),
	}
}

// PathQuery builds the fallback lookup of a document by exact path.
func PathQuery(index, path string) (db.SearchQuery, error) {
	c, err := filter.NewMatch(request.FieldPath, path)
	if err != nil {
		return db.SearchQuery{}, err
	}
	expr, err := filter.NewExpression([]filter.Condition{c})
	if err != nil {
		return db.SearchQuery{}, err
	}
	return db.SearchQuery{
		Index:  index,
		Limit:  1,
		Filter: expr.String(),
	}, nil
}

// TagFacetQuery builds a match-all query that returns only tag counts.
func TagFacetQuery(index string) db.SearchQuery {
	return db.SearchQuery{
		Index:      index,
		Limit:      0,
		Facets:     append([]string(nil), tagFacets...),
		Attributes: append([]string(nil), facetAttributes...),
	}
}
