// Package chi is the HTTP binding: probes, metrics and the MCP streamable
// HTTP endpoint behind one chi router.
package chi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docsgate/internal/metrics"
	healthuc "github.com/kailas-cloud/docsgate/internal/usecase/health"
)

const mcpSessionHeader = "Mcp-Session-Id"

// ReadinessChecker reports backend readiness. Implemented by usecase/health.
type ReadinessChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// RouterConfig wires the router dependencies.
type RouterConfig struct {
	MCP            http.Handler
	Readiness      ReadinessChecker
	APIKeys        []string
	AllowedOrigins []string
	Logger         *zap.Logger
}

// NewRouter builds the HTTP binding router.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	r.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{mcpSessionHeader},
	}).Handler)
	r.Use(BearerAuthMiddleware(cfg.APIKeys))

	h := &handlers{readiness: cfg.Readiness}
	r.Get("/health", h.health)
	r.Get("/ready", h.ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
	}

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, CodeNotFound, "not found")
}
