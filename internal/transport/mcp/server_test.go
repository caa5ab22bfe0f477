package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docsgate/internal/domain/tool"
)

// connect starts the server on in-memory transports and returns a client session.
func connect(t *testing.T, d Dispatcher) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	srv, err := NewServer(d, "test", zap.NewNop())
	require.NoError(t, err)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	ss, err := srv.Connect(ctx, serverTransport)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })

	return cs
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestNewServer(t *testing.T) {
	t.Run("nil dispatcher returns error", func(t *testing.T) {
		server, err := NewServer(nil, "test", zap.NewNop())
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingDispatcher)
	})

	t.Run("valid dispatcher creates server", func(t *testing.T) {
		server, err := NewServer(newMockDispatcher(), "test", zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.NotNil(t, server.Handler())
	})
}

func TestServer_ListTools(t *testing.T) {
	cs := connect(t, newMockDispatcher())

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, len(res.Tools))
	for i, tl := range res.Tools {
		names[i] = tl.Name
	}
	assert.ElementsMatch(t, []string{"search_docs", "get_document", "list_tags"}, names)

	for _, tl := range res.Tools {
		if tl.Name != "get_document" {
			continue
		}
		schema, err := json.Marshal(tl.InputSchema)
		require.NoError(t, err)
		assert.Contains(t, string(schema), `"required":["id"]`)
	}
}

func TestServer_CallTool(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards name and arguments", func(t *testing.T) {
		d := newMockDispatcher()
		cs := connect(t, d)

		res, err := cs.CallTool(ctx, &mcp.CallToolParams{
			Name:      "search_docs",
			Arguments: map[string]any{"query": "redis", "limit": 2},
		})
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.JSONEq(t, `{"ok":true}`, resultText(t, res))

		inv := d.lastCall()
		assert.Equal(t, "search_docs", inv.Name)
		assert.Equal(t, "redis", inv.Arguments["query"])
		assert.Equal(t, float64(2), inv.Arguments["limit"])
	})

	t.Run("error envelope is preserved", func(t *testing.T) {
		d := newMockDispatcher()
		d.response = tool.Failure("document not found: x")
		cs := connect(t, d)

		res, err := cs.CallTool(ctx, &mcp.CallToolParams{
			Name:      "get_document",
			Arguments: map[string]any{"id": "x"},
		})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.JSONEq(t, `{"error":"document not found: x"}`, resultText(t, res))
	})

	t.Run("unknown tool yields error result", func(t *testing.T) {
		d := newMockDispatcher()
		cs := connect(t, d)

		res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: "nope"})
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.JSONEq(t, `{"error":"unknown tool: \"nope\""}`, resultText(t, res))
		assert.Equal(t, "nope", d.lastCall().Name)
	})

	t.Run("session survives failures", func(t *testing.T) {
		d := newMockDispatcher()
		cs := connect(t, d)

		_, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: "nope"})
		require.NoError(t, err)

		res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: "list_tags"})
		require.NoError(t, err)
		assert.False(t, res.IsError)
	})
}

func TestDecodeArguments(t *testing.T) {
	args, err := decodeArguments(nil)
	require.NoError(t, err)
	assert.Nil(t, args)

	args, err = decodeArguments(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Nil(t, args)

	args, err = decodeArguments(json.RawMessage(`{"id":"a"}`))
	require.NoError(t, err)
	assert.Equal(t, "a", args["id"])

	_, err = decodeArguments(json.RawMessage(`[1,2]`))
	assert.Error(t, err)
}

func TestToResult(t *testing.T) {
	res := toResult(tool.Failure("boom"))
	assert.True(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.JSONEq(t, `{"error":"boom"}`, text.Text)
}
