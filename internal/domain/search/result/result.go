package result

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// SnippetMaxChars caps a content-derived snippet, in characters.
const SnippetMaxChars = 300

// Hit is a single document search hit.
type Hit struct {
	ID          string
	Title       string
	Path        string
	Description string
	Tags        []string
	SourceURL   string
	UpdatedAt   string
	Snippet     string
}

// ChunkHit is a single passage hit. DocumentID refers to the parent document.
type ChunkHit struct {
	ID          string
	DocumentID  string
	Title       string
	Path        string
	Tags        []string
	SourceURL   string
	ChunkIndex  int
	TotalChunks int
	Content     string
}

// SearchResult is an ordered page of hits in backend ranking order.
type SearchResult[H any] struct {
	// EstimatedTotal may be approximate.
	EstimatedTotal int
	Hits           []H
}

// Document is a full stored document.
type Document struct {
	ID                 string
	Title              string
	Path               string
	Description        string
	Content            string
	Tags               []string
	Author             string
	SourceURL          string
	UpdatedAt          string
	WordCount          int
	ReadingTimeMinutes int
}

// TagCount is the number of documents carrying a tag.
type TagCount struct {
	Tag   string
	Count int
}

// SortTagCounts orders counts by Count descending. Ties keep their input order.
func SortTagCounts(counts []TagCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
}

// IndexCount describes one index.
type IndexCount struct {
	Count    int64
	Indexing bool
}

// IndexStats describes the document and chunk indexes.
type IndexStats struct {
	Documents IndexCount
	Chunks    IndexCount
}

// Snippet picks the preview text for a hit: the highlighted description when
// present, else the first SnippetMaxChars characters of the highlighted
// content, else "".
func Snippet(formattedDescription, formattedContent string) string {
	if strings.TrimSpace(formattedDescription) != "" {
		return formattedDescription
	}
	if formattedContent == "" {
		return ""
	}
	return truncateRunes(formattedContent, SnippetMaxChars)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
