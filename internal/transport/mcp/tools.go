package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docsgate/internal/domain"
	"github.com/kailas-cloud/docsgate/internal/domain/tool"
)

const methodCallTool = "tools/call"

// registerTools advertises every dispatcher tool. Argument validation is the
// dispatcher's job, so tools are added with their raw schemas.
func (s *Server) registerTools() {
	for _, d := range s.dispatcher.Tools().Tools {
		s.server.AddTool(&mcp.Tool{
			Name:        d.Name(),
			Description: d.Description(),
			InputSchema: d.InputSchema(),
		}, s.handleCallTool)
	}
}

// handleCallTool translates an MCP tool call into an invocation.
func (s *Server) handleCallTool(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.call(ctx, req.Params.Name, req.Params.Arguments), nil
}

func (s *Server) call(ctx context.Context, name string, rawArgs json.RawMessage) *mcp.CallToolResult {
	args, err := decodeArguments(rawArgs)
	if err != nil {
		s.logger.Warn("Malformed tool arguments", zap.String("tool", name), zap.Error(err))
		return toResult(tool.Failure(domain.NewValidationError(name, err.Error()).Error()))
	}
	return toResult(s.dispatcher.Dispatch(ctx, tool.Invocation{Name: name, Arguments: args}))
}

// unknownToolMiddleware answers calls to unregistered tools with an error
// result instead of a protocol error, so clients see the same envelope as
// for any other failure.
func (s *Server) unknownToolMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	known := make(map[string]struct{})
	for _, d := range s.dispatcher.Tools().Tools {
		known[d.Name()] = struct{}{}
	}
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		if method != methodCallTool {
			return next(ctx, method, req)
		}
		ctr, ok := req.(*mcp.CallToolRequest)
		if !ok || ctr.Params == nil {
			return next(ctx, method, req)
		}
		if _, ok := known[ctr.Params.Name]; ok {
			return next(ctx, method, req)
		}
		return s.call(ctx, ctr.Params.Name, ctr.Params.Arguments), nil
	}
}

// decodeArguments parses the raw argument object. Absent arguments decode to nil.
func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	return args, nil
}

// toResult converts a dispatcher response into an MCP tool result.
func toResult(r tool.Response) *mcp.CallToolResult {
	content := make([]mcp.Content, len(r.Content))
	for i, c := range r.Content {
		content[i] = &mcp.TextContent{Text: c.Text}
	}
	return &mcp.CallToolResult{
		Content: content,
		IsError: r.IsError,
	}
}
