package search

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// rawHit is a stored record as the engine returns it, for both indexes.
// Fields missing from one index simply stay empty.
type rawHit struct {
	ID                 text       `json:"id"`
	DocumentID         text       `json:"document_id"`
	Title              text       `json:"title"`
	Path               text       `json:"path"`
	Description        text       `json:"description"`
	Content            text       `json:"content"`
	Tags               []text     `json:"tags"`
	Author             text       `json:"author"`
	SourceURL          text       `json:"source_url"`
	UpdatedAt          text       `json:"updated_at"`
	ChunkIndex         number     `json:"chunk_index"`
	TotalChunks        number     `json:"total_chunks"`
	WordCount          number     `json:"word_count"`
	ReadingTimeMinutes number     `json:"reading_time_minutes"`
	Formatted          *formatted `json:"_formatted"`
}

// formatted holds the highlighted copies of the requested fields.
type formatted struct {
	Title       text `json:"title"`
	Description text `json:"description"`
	Content     text `json:"content"`
}

func (h *rawHit) formattedDescription() string {
	if h.Formatted == nil {
		return ""
	}
	return string(h.Formatted.Description)
}

func (h *rawHit) formattedContent() string {
	if h.Formatted == nil {
		return ""
	}
	return string(h.Formatted.Content)
}

func (h *rawHit) tags() []string {
	out := make([]string, 0, len(h.Tags))
	for _, t := range h.Tags {
		if t != "" {
			out = append(out, string(t))
		}
	}
	return out
}

// text accepts a JSON string, number or null. Null decodes to "".
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
	case b[0] == '-' || (b[0] >= '0' && b[0] <= '9'):
		*t = text(b)
	default:
		return fmt.Errorf("expected string, got %s", b)
	}
	return nil
}

// number accepts a JSON number, a numeric string or null. Null decodes to 0.
type number int

func (n *number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*n = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("expected number, got %s", b)
	}
	*n = number(int(f))
	return nil
}
