package request

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/docsgate/internal/domain/search/filter"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 4096
	DefaultLimit   = 10
	MaxLimit       = 50
	// DecisionLimit is the number of documents gathered as decision evidence.
	DecisionLimit = 5
)

// Indexed field names shared by the document and chunk indexes.
const (
	FieldTags       = "tags"
	FieldPath       = "path"
	FieldDocumentID = "document_id"
)

// ClampLimit applies the default to a missing limit and clamps it to [0, MaxLimit].
func ClampLimit(limit *int) int {
	if limit == nil {
		return DefaultLimit
	}
	l := *limit
	if l < 0 {
		return 0
	}
	if l > MaxLimit {
		return MaxLimit
	}
	return l
}

func checkQuery(query string) error {
	if len(query) > MaxQueryLength {
		return fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	return nil
}

// DocumentSearch is a validated full-document search.
type DocumentSearch struct {
	query   string
	limit   int
	tags    []string
	filters filter.Expression
}

// NewDocumentSearch validates and normalizes document search parameters.
// An empty query matches all documents. Tags, when non-empty, are OR-joined.
func NewDocumentSearch(query string, limit *int, tags []string) (DocumentSearch, error) {
	if err := checkQuery(query); err != nil {
		return DocumentSearch{}, err
	}
	group, err := filter.AnyOf(FieldTags, tags)
	if err != nil {
		return DocumentSearch{}, fmt.Errorf("tags: %w", err)
	}
	expr, err := filter.NewExpression(group)
	if err != nil {
		return DocumentSearch{}, fmt.Errorf("tags: %w", err)
	}
	kept := make([]string, len(group))
	for i, c := range group {
		kept[i] = c.Value()
	}
	return DocumentSearch{
		query:   query,
		limit:   ClampLimit(limit),
		tags:    kept,
		filters: expr,
	}, nil
}

// Query returns the search text ("" means match all).
func (r *DocumentSearch) Query() string { return r.query }

// Limit returns the clamped result limit.
func (r *DocumentSearch) Limit() int { return r.limit }

// Tags returns the distinct requested tags.
func (r *DocumentSearch) Tags() []string { return r.tags }

// Filters returns the tag filter expression (empty when no tags were requested).
func (r *DocumentSearch) Filters() filter.Expression { return r.filters }

// ChunkSearch is a validated passage-level search.
type ChunkSearch struct {
	query      string
	limit      int
	documentID string
	filters    filter.Expression
}

// NewChunkSearch validates chunk search parameters. documentID, when set,
// restricts results to chunks of that exact document.
func NewChunkSearch(query string, limit *int, documentID string) (ChunkSearch, error) {
	if err := checkQuery(query); err != nil {
		return ChunkSearch{}, err
	}
	var group []filter.Condition
	if documentID != "" {
		c, err := filter.NewMatch(FieldDocumentID, documentID)
		if err != nil {
			return ChunkSearch{}, fmt.Errorf("document_id: %w", err)
		}
		group = []filter.Condition{c}
	}
	expr, err := filter.NewExpression(group)
	if err != nil {
		return ChunkSearch{}, err
	}
	return ChunkSearch{
		query:      query,
		limit:      ClampLimit(limit),
		documentID: documentID,
		filters:    expr,
	}, nil
}

// Query returns the search text.
func (r *ChunkSearch) Query() string { return r.query }

// Limit returns the clamped result limit.
func (r *ChunkSearch) Limit() int { return r.limit }

// DocumentID returns the parent document restriction ("" for none).
func (r *ChunkSearch) DocumentID() string { return r.documentID }

// Filters returns the document-id filter expression.
func (r *ChunkSearch) Filters() filter.Expression { return r.filters }

// DocumentLookup identifies a document by id or by path.
type DocumentLookup struct {
	id string
}

// NewDocumentLookup validates a document identifier.
func NewDocumentLookup(id string) (DocumentLookup, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DocumentLookup{}, fmt.Errorf("id is required")
	}
	return DocumentLookup{id: id}, nil
}

// ID returns the identifier (document id, or a path for the fallback lookup).
func (r *DocumentLookup) ID() string { return r.id }

// DecisionLookup is a validated decision question.
type DecisionLookup struct {
	question string
}

// NewDecisionLookup validates a decision question.
func NewDecisionLookup(question string) (DecisionLookup, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return DecisionLookup{}, fmt.Errorf("question is required")
	}
	if err := checkQuery(question); err != nil {
		return DecisionLookup{}, err
	}
	return DecisionLookup{question: question}, nil
}

// Question returns the question text.
func (r *DecisionLookup) Question() string { return r.question }

// Search returns the document search the decision lookup runs.
func (r *DecisionLookup) Search() DocumentSearch {
	limit := DecisionLimit
	// Question length is already checked and no tags are given, so this cannot fail.
	s, _ := NewDocumentSearch(r.question, &limit, nil)
	return s
}
