package dispatch

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/docsgate/internal/domain"
	"github.com/kailas-cloud/docsgate/internal/domain/search/request"
	"github.com/kailas-cloud/docsgate/internal/domain/tool"
)

// Tool names.
const (
	ToolSearchDocs     = "search_docs"
	ToolSearchChunks   = "search_chunks"
	ToolGetDocument    = "get_document"
	ToolListTags       = "list_tags"
	ToolLookupDecision = "lookup_decision"
	ToolIndexStats     = "index_stats"
)

var (
	searchDocsTool = tool.MustDescriptor(ToolSearchDocs,
		"Search the documentation corpus by keywords. Returns matching documents "+
			"with highlighted snippets, most relevant first.",
		tool.Param{Name: "query", Type: tool.String, Default: "",
			Description: "Search terms. Empty matches all documents."},
		tool.Param{Name: "limit", Type: tool.Integer, Default: request.DefaultLimit,
			Description: fmt.Sprintf("Maximum number of results (max %d).", request.MaxLimit)},
		tool.Param{Name: "tags", Type: tool.StringArray,
			Description: "Only return documents carrying at least one of these tags."},
	)

	searchChunksTool = tool.MustDescriptor(ToolSearchChunks,
		"Search individual passages of documents. Use it to find the exact section "+
			"that answers a question.",
		tool.Param{Name: "query", Type: tool.String, Default: "",
			Description: "Search terms."},
		tool.Param{Name: "limit", Type: tool.Integer, Default: request.DefaultLimit,
			Description: fmt.Sprintf("Maximum number of passages (max %d).", request.MaxLimit)},
		tool.Param{Name: "document_id", Type: tool.String,
			Description: "Only return passages of this document."},
	)

	getDocumentTool = tool.MustDescriptor(ToolGetDocument,
		"Fetch a full document by its id or by its path.",
		tool.Param{Name: "id", Type: tool.String, Required: true,
			Description: "Document id, or the document path."},
	)

	listTagsTool = tool.MustDescriptor(ToolListTags,
		"List every tag used in the corpus with the number of documents carrying it, "+
			"most used first.",
	)

	lookupDecisionTool = tool.MustDescriptor(ToolLookupDecision,
		"Find the documents that record why a decision was made. Returns the "+
			"supporting documents for you to answer from.",
		tool.Param{Name: "question", Type: tool.String, Required: true,
			Description: "The decision question, e.g. \"Why did we choose Postgres?\"."},
	)

	indexStatsTool = tool.MustDescriptor(ToolIndexStats,
		"Report how many documents and passages are indexed and whether indexing is in progress.",
	)
)

type searchDocsArgs struct {
	Query string   `json:"query"`
	Limit limitArg `json:"limit"`
	Tags  []string `json:"tags"`
}

type searchChunksArgs struct {
	Query      string   `json:"query"`
	Limit      limitArg `json:"limit"`
	DocumentID string   `json:"document_id"`
}

type getDocumentArgs struct {
	ID string `json:"id"`
}

type lookupDecisionArgs struct {
	Question string `json:"question"`
}

type noArgs struct{}

// NewToolRegistry builds the registry of all tools in their listing order.
func NewToolRegistry(search SearchService, decisions DecisionService) *Registry {
	h := &handlers{search: search, decisions: decisions}
	r := NewRegistry()
	mustRegister(r, searchDocsTool, bind(ToolSearchDocs, h.searchDocs))
	mustRegister(r, searchChunksTool, bind(ToolSearchChunks, h.searchChunks))
	mustRegister(r, getDocumentTool, bind(ToolGetDocument, h.getDocument))
	mustRegister(r, listTagsTool, bind(ToolListTags, h.listTags))
	mustRegister(r, lookupDecisionTool, bind(ToolLookupDecision, h.lookupDecision))
	mustRegister(r, indexStatsTool, bind(ToolIndexStats, h.indexStats))
	return r
}

func mustRegister(r *Registry, d tool.Descriptor, h Handler) {
	if err := r.Register(d, h); err != nil {
		panic(err)
	}
}

type handlers struct {
	search    SearchService
	decisions DecisionService
}

func (h *handlers) searchDocs(ctx context.Context, args searchDocsArgs) (any, error) {
	req, err := request.NewDocumentSearch(args.Query, args.Limit.Ptr(), args.Tags)
	if err != nil {
		return nil, domain.NewValidationError(ToolSearchDocs, err.Error())
	}
	res, err := h.search.SearchDocuments(ctx, req)
	if err != nil {
		return nil, err
	}
	return toSearchDocsOutput(req.Query(), res), nil
}

func (h *handlers) searchChunks(ctx context.Context, args searchChunksArgs) (any, error) {
	req, err := request.NewChunkSearch(args.Query, args.Limit.Ptr(), args.DocumentID)
	if err != nil {
		return nil, domain.NewValidationError(ToolSearchChunks, err.Error())
	}
	res, err := h.search.SearchChunks(ctx, req)
	if err != nil {
		return nil, err
	}
	return toSearchChunksOutput(req.Query(), res), nil
}

func (h *handlers) getDocument(ctx context.Context, args getDocumentArgs) (any, error) {
	req, err := request.NewDocumentLookup(args.ID)
	if err != nil {
		return nil, domain.NewValidationError(ToolGetDocument, err.Error())
	}
	doc, err := h.search.GetDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	return toDocumentDTO(doc), nil
}

func (h *handlers) listTags(ctx context.Context, _ noArgs) (any, error) {
	counts, err := h.search.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	return toListTagsOutput(counts), nil
}

func (h *handlers) lookupDecision(ctx context.Context, args lookupDecisionArgs) (any, error) {
	req, err := request.NewDecisionLookup(args.Question)
	if err != nil {
		return nil, domain.NewValidationError(ToolLookupDecision, err.Error())
	}
	d, err := h.decisions.Lookup(ctx, req)
	if err != nil {
		return nil, err
	}
	return toDecisionOutput(d), nil
}

func (h *handlers) indexStats(ctx context.Context, _ noArgs) (any, error) {
	st, err := h.search.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return toIndexStatsOutput(st), nil
}
