package mcp

import (
	"context"
	"sync"

	"github.com/kailas-cloud/docsgate/internal/domain/tool"
)

// mockDispatcher records invocations and replies with a fixed response.
type mockDispatcher struct {
	mu       sync.Mutex
	tools    []tool.Descriptor
	response tool.Response
	calls    []tool.Invocation
}

func newMockDispatcher() *mockDispatcher {
	return &mockDispatcher{
		tools: []tool.Descriptor{
			tool.MustDescriptor("search_docs", "Search documents",
				tool.Param{Name: "query", Type: tool.String, Default: ""},
				tool.Param{Name: "limit", Type: tool.Integer, Default: 10},
			),
			tool.MustDescriptor("get_document", "Get a document",
				tool.Param{Name: "id", Type: tool.String, Required: true},
			),
			tool.MustDescriptor("list_tags", "List tags"),
		},
		response: tool.Success(map[string]any{"ok": true}),
	}
}

func (m *mockDispatcher) Tools() tool.Listing {
	return tool.Listing{Tools: m.tools}
}

func (m *mockDispatcher) Dispatch(_ context.Context, inv tool.Invocation) tool.Response {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, inv)
	for _, d := range m.tools {
		if d.Name() == inv.Name {
			return m.response
		}
	}
	return tool.Failure(`unknown tool: "` + inv.Name + `"`)
}

func (m *mockDispatcher) lastCall() tool.Invocation {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return tool.Invocation{}
	}
	return m.calls[len(m.calls)-1]
}
