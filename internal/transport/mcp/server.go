package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docsgate/internal/domain/tool"
)

// ServerName is the implementation name announced during initialization.
const ServerName = "docsgate"

// Dispatcher runs tool invocations. Implemented by usecase/dispatch.
type Dispatcher interface {
	Tools() tool.Listing
	Dispatch(ctx context.Context, inv tool.Invocation) tool.Response
}

// Server exposes one shared dispatcher through MCP. Both the stdio and the
// HTTP binding serve the same server instance.
type Server struct {
	dispatcher Dispatcher
	server     *mcp.Server
	logger     *zap.Logger
}

// NewServer creates an MCP server that advertises every dispatcher tool.
func NewServer(d Dispatcher, version string, logger *zap.Logger) (*Server, error) {
	if d == nil {
		return nil, ErrMissingDispatcher
	}

	impl := &mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}

	s := &Server{
		dispatcher: d,
		server:     mcp.NewServer(impl, nil),
		logger:     logger,
	}

	s.registerTools()
	s.server.AddReceivingMiddleware(s.unknownToolMiddleware)

	return s, nil
}

// RunStdio serves a single client over stdin/stdout.
// It blocks until the context is cancelled or the client disconnects.
func (s *Server) RunStdio(ctx context.Context) error {
	err := s.server.Run(ctx, &mcp.StdioTransport{})
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("run stdio: %w", err)
}

// Handler returns the streamable HTTP handler. Each connection gets its own
// session with a streaming response channel.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// Connect attaches the server to an arbitrary transport (in-memory in tests).
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	ss, err := s.server.Connect(ctx, t, nil)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return ss, nil
}
