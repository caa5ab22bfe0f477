package result

// Evidence is one document offered to the caller as decision context.
type Evidence struct {
	Title       string
	Path        string
	Description string
	Tags        []string
	SourceURL   string
	Snippet     string
}

// EvidenceFromHit reshapes a document hit into evidence.
func EvidenceFromHit(h Hit) Evidence {
	return Evidence{
		Title:       h.Title,
		Path:        h.Path,
		Description: h.Description,
		Tags:        h.Tags,
		SourceURL:   h.SourceURL,
		Snippet:     h.Snippet,
	}
}

// Decision is the outcome of a decision lookup: either not found (Message,
// Suggestion) or found (Question, Evidence, Note).
type Decision struct {
	Found      bool
	Question   string
	Message    string
	Suggestion string
	Evidence   []Evidence
	Note       string
}

// NewNotFound creates a not-found decision outcome.
func NewNotFound(question, message, suggestion string) Decision {
	return Decision{Question: question, Message: message, Suggestion: suggestion}
}

// NewFound creates a found decision outcome from hits, keeping their order.
func NewFound(question string, hits []Hit, note string) Decision {
	ev := make([]Evidence, len(hits))
	for i, h := range hits {
		ev[i] = EvidenceFromHit(h)
	}
	return Decision{Found: true, Question: question, Evidence: ev, Note: note}
}
