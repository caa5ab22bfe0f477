package db

import "encoding/json"

// Highlight requests highlighted copies of fields wrapped in the given tags.
type Highlight struct {
	Fields  []string
	PreTag  string
	PostTag string
}

// SearchQuery is the input for a full-text search.
type SearchQuery struct {
	Index string
	// Text is the query string; "" matches all documents.
	Text  string
	Limit int
	// Filter is a rendered filter expression; "" means no filter.
	Filter    string
	Highlight *Highlight
	// Facets lists fields whose value counts should be returned.
	Facets []string
	// Attributes restricts the returned fields; nil returns all displayed fields.
	Attributes []string
}

// SearchResponse is the raw output of a search.
type SearchResponse struct {
	EstimatedTotal int
	// Hits are raw hit objects in ranking order.
	Hits []json.RawMessage
	// FacetDistribution is the raw facet object (field -> value -> count), nil when absent.
	FacetDistribution json.RawMessage
}
