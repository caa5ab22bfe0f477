package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	chiTransport "github.com/kailas-cloud/docsgate/internal/transport/chi"
)

var stdioCmd = &cobra.Command{
	Use:   "stdio",
	Short: "Serve MCP over stdin/stdout",
	Long: `Serve a single MCP client over stdin/stdout. Logs go to stderr.

Client configuration example:
  {
    "mcpServers": {
      "docs": {
        "command": "/path/to/docsgate",
        "args": ["stdio"]
      }
    }
  }`,
	RunE: runStdio,
}

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Serve MCP over streamable HTTP with health and metrics endpoints",
	RunE:  runHTTP,
}

func init() {
	httpCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use PORT from config)")
}

func runStdio(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context(), envName)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	a.logger.Info("Serving MCP over stdio")
	if err := a.mcp.RunStdio(cmd.Context()); err != nil {
		a.logger.Error("stdio session failed", zap.Error(err))
		return err
	}
	a.logger.Info("stdio session closed")
	return nil
}

func runHTTP(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context(), envName)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	port := a.cfg.HTTP.Port
	if p, _ := cmd.Flags().GetInt("port"); p > 0 {
		port = p
	}

	router := chiTransport.NewRouter(chiTransport.RouterConfig{
		MCP:            a.mcp.Handler(),
		Readiness:      a.health,
		APIKeys:        a.cfg.Auth.APIKeys,
		AllowedOrigins: a.cfg.HTTP.AllowedOrigins,
		Logger:         a.logger,
	})

	addr := fmt.Sprintf(":%d", port)
	// No write timeout: MCP responses may stream for the life of a session.
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: time.Duration(a.cfg.HTTP.ReadTimeoutSec) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server",
			zap.String("addr", addr),
			zap.Bool("auth_enabled", len(a.cfg.Auth.APIKeys) > 0),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			a.logger.Error("HTTP server error", zap.Error(err))
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-cmd.Context().Done():
		a.logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Error during shutdown", zap.Error(err))
	}

	a.logger.Info("Server stopped gracefully")
	return nil
}
