package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docsgate/internal/config"
	"github.com/kailas-cloud/docsgate/internal/db"
	"github.com/kailas-cloud/docsgate/internal/db/meili"
	logpkg "github.com/kailas-cloud/docsgate/internal/logger"
	"github.com/kailas-cloud/docsgate/internal/metrics"
	searchrepo "github.com/kailas-cloud/docsgate/internal/repository/search"
	mcptransport "github.com/kailas-cloud/docsgate/internal/transport/mcp"
	"github.com/kailas-cloud/docsgate/internal/usecase/decision"
	"github.com/kailas-cloud/docsgate/internal/usecase/dispatch"
	healthuc "github.com/kailas-cloud/docsgate/internal/usecase/health"
	searchuc "github.com/kailas-cloud/docsgate/internal/usecase/search"
	"github.com/kailas-cloud/docsgate/internal/version"
)

// app is the composition root shared by both bindings.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	mcp    *mcptransport.Server
	health *healthuc.Service
}

func newApp(ctx context.Context, env string) (*app, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	logger.Info("Starting docsgate",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("search_url", cfg.Search.URL),
		zap.Bool("api_key_set", cfg.Search.APIKey != ""),
		zap.String("documents_index", cfg.Search.DocumentsIndex),
		zap.String("chunks_index", cfg.Search.ChunksIndex),
	)

	base, err := meili.NewStore(meili.Config{
		URL:     cfg.Search.URL,
		APIKey:  cfg.Search.APIKey,
		Timeout: time.Duration(cfg.Search.RequestTimeoutSec) * time.Second,
	})
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to create search store: %w", err)
	}

	metrics.RegisterToolMetrics()
	store := db.NewInstrumentedStore(base, logger)

	readiness := time.Duration(cfg.Search.ReadinessTimeoutSec) * time.Second
	if err := store.WaitForReady(ctx, readiness); err != nil {
		logger.Error("Search backend not ready", zap.Duration("timeout", readiness), zap.Error(err))
		_ = logger.Sync()
		return nil, fmt.Errorf("search backend not ready: %w", err)
	}
	logger.Info("Connected to search backend")

	repo := searchrepo.New(store, cfg.Search.DocumentsIndex, cfg.Search.ChunksIndex)
	searchSvc := searchuc.New(repo)
	decisionSvc := decision.New(searchSvc)

	registry := dispatch.NewToolRegistry(searchSvc, decisionSvc)
	dispatcher := dispatch.NewDispatcher(registry, logger)

	server, err := mcptransport.NewServer(dispatcher, version.Version, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to create MCP server: %w", err)
	}

	logger.Info("Tools registered", zap.Int("count", registry.Len()))

	return &app{
		cfg:    cfg,
		logger: logger,
		mcp:    server,
		health: healthuc.New(store, repo),
	}, nil
}
