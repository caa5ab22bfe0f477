package dispatch

import "github.com/kailas-cloud/docsgate/internal/domain/search/result"

// Output shapes serialized into tool responses. Slices are never nil so
// absent values render as [] rather than null.

type hitDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Path        string   `json:"path"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	SourceURL   string   `json:"source_url"`
	UpdatedAt   string   `json:"updated_at"`
	Snippet     string   `json:"snippet"`
}

type searchDocsOutput struct {
	Query   string   `json:"query"`
	Total   int      `json:"total"`
	Results []hitDTO `json:"results"`
}

type chunkDTO struct {
	ID          string   `json:"id"`
	DocumentID  string   `json:"document_id"`
	Title       string   `json:"title"`
	Path        string   `json:"path"`
	Tags        []string `json:"tags"`
	SourceURL   string   `json:"source_url"`
	ChunkIndex  int      `json:"chunk_index"`
	TotalChunks int      `json:"total_chunks"`
	Content     string   `json:"content"`
}

type searchChunksOutput struct {
	Query   string     `json:"query"`
	Total   int        `json:"total"`
	Results []chunkDTO `json:"results"`
}

type documentDTO struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Path               string   `json:"path"`
	Description        string   `json:"description"`
	Content            string   `json:"content"`
	Tags               []string `json:"tags"`
	Author             string   `json:"author"`
	SourceURL          string   `json:"source_url"`
	UpdatedAt          string   `json:"updated_at"`
	WordCount          int      `json:"word_count"`
	ReadingTimeMinutes int      `json:"reading_time_minutes"`
}

type tagCountDTO struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type listTagsOutput struct {
	Tags  []tagCountDTO `json:"tags"`
	Total int           `json:"total"`
}

type evidenceDTO struct {
	Title       string   `json:"title"`
	Path        string   `json:"path"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	SourceURL   string   `json:"source_url"`
	Snippet     string   `json:"snippet"`
}

type decisionNotFoundOutput struct {
	Found      bool   `json:"found"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

type decisionFoundOutput struct {
	Found             bool          `json:"found"`
	Question          string        `json:"question"`
	RelevantDocuments []evidenceDTO `json:"relevant_documents"`
	Note              string        `json:"note"`
}

type indexCountDTO struct {
	Count    int64 `json:"count"`
	Indexing bool  `json:"indexing"`
}

type indexStatsOutput struct {
	Documents indexCountDTO `json:"documents"`
	Chunks    indexCountDTO `json:"chunks"`
}

func strs(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toSearchDocsOutput(query string, res result.SearchResult[result.Hit]) searchDocsOutput {
	out := searchDocsOutput{Query: query, Total: res.EstimatedTotal, Results: make([]hitDTO, len(res.Hits))}
	for i, h := range res.Hits {
		out.Results[i] = hitDTO{
			ID:          h.ID,
			Title:       h.Title,
			Path:        h.Path,
			Description: h.Description,
			Tags:        strs(h.Tags),
			SourceURL:   h.SourceURL,
			UpdatedAt:   h.UpdatedAt,
			Snippet:     h.Snippet,
		}
	}
	return out
}

func toSearchChunksOutput(query string, res result.SearchResult[result.ChunkHit]) searchChunksOutput {
	out := searchChunksOutput{Query: query, Total: res.EstimatedTotal, Results: make([]chunkDTO, len(res.Hits))}
	for i, h := range res.Hits {
		out.Results[i] = chunkDTO{
			ID:          h.ID,
			DocumentID:  h.DocumentID,
			Title:       h.Title,
			Path:        h.Path,
			Tags:        strs(h.Tags),
			SourceURL:   h.SourceURL,
			ChunkIndex:  h.ChunkIndex,
			TotalChunks: h.TotalChunks,
			Content:     h.Content,
		}
	}
	return out
}

func toDocumentDTO(d result.Document) documentDTO {
	return documentDTO{
		ID:                 d.ID,
		Title:              d.Title,
		Path:               d.Path,
		Description:        d.Description,
		Content:            d.Content,
		Tags:               strs(d.Tags),
		Author:             d.Author,
		SourceURL:          d.SourceURL,
		UpdatedAt:          d.UpdatedAt,
		WordCount:          d.WordCount,
		ReadingTimeMinutes: d.ReadingTimeMinutes,
	}
}

func toListTagsOutput(counts []result.TagCount) listTagsOutput {
	out := listTagsOutput{Tags: make([]tagCountDTO, len(counts)), Total: len(counts)}
	for i, c := range counts {
		out.Tags[i] = tagCountDTO{Tag: c.Tag, Count: c.Count}
	}
	return out
}

func toDecisionOutput(d result.Decision) any {
	if !d.Found {
		return decisionNotFoundOutput{Found: false, Message: d.Message, Suggestion: d.Suggestion}
	}
	out := decisionFoundOutput{
		Found:             true,
		Question:          d.Question,
		RelevantDocuments: make([]evidenceDTO, len(d.Evidence)),
		Note:              d.Note,
	}
	for i, e := range d.Evidence {
		out.RelevantDocuments[i] = evidenceDTO{
			Title:       e.Title,
			Path:        e.Path,
			Description: e.Description,
			Tags:        strs(e.Tags),
			SourceURL:   e.SourceURL,
			Snippet:     e.Snippet,
		}
	}
	return out
}

func toIndexStatsOutput(s result.IndexStats) indexStatsOutput {
	return indexStatsOutput{
		Documents: indexCountDTO{Count: s.Documents.Count, Indexing: s.Documents.Indexing},
		Chunks:    indexCountDTO{Count: s.Chunks.Count, Indexing: s.Chunks.Indexing},
	}
}
