package tool

import "encoding/json"

// Invocation is one request to run a named tool. Arguments are untyped until validated.
type Invocation struct {
	Name      string
	Arguments map[string]any
}

// ContentTypeText is the only content type produced.
const ContentTypeText = "text"

// Content is one block of a tool response.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Response is the transport-neutral result of an invocation.
type Response struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Success wraps v, serialized as JSON, in a success envelope.
// A value that cannot be serialized yields an error envelope instead.
func Success(v any) Response {
	b, err := json.Marshal(v)
	if err != nil {
		return Failure("encode result: " + err.Error())
	}
	return Response{Content: []Content{{Type: ContentTypeText, Text: string(b)}}}
}

// Failure creates an error envelope whose text is {"error": message}.
func Failure(message string) Response {
	// A struct with a single string field always marshals.
	b, _ := json.Marshal(errorBody{Error: message})
	return Response{
		Content: []Content{{Type: ContentTypeText, Text: string(b)}},
		IsError: true,
	}
}

// Text returns the concatenated text of all content blocks.
func (r Response) Text() string {
	if len(r.Content) == 1 {
		return r.Content[0].Text
	}
	var s string
	for _, c := range r.Content {
		s += c.Text
	}
	return s
}
