// Package main is the entry point for the mcskb knowledge-base server.
//
// The server exposes a small curated knowledge base (best practices, code
// snippets, troubleshooting guides, tips, governance-zone rules) over two
// parallel interfaces: a versioned REST API and an MCP streamable HTTP
// endpoint. The startup sequence:
//
// 1. Initialize logging
// 2. Load configuration (environment, optional config file)
// 3. Load the five JSON collections into the in-memory store
// 4. Build the MCP server and mount it on the REST mux
// 5. Serve HTTP until SIGINT/SIGTERM, then shut down gracefully
//
// The collections are read once at startup and never mutated, so every
// request handler reads the same immutable snapshot.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mcskb/internal/api"
	"mcskb/internal/config"
	"mcskb/internal/kb"
	"mcskb/internal/logging"
	mcpserver "mcskb/internal/mcp"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "mcskb",
	Short: "Curated Copilot Studio knowledge base (REST API + MCP server)",
	Long: `mcskb serves a curated set of Copilot Studio best practices, code
snippets, troubleshooting guides, tips, and governance zone rules.

The same read-only data is exposed twice: as a JSON REST API under
/api/v1, and as an MCP streamable HTTP endpoint at /mcp with tools and
resources for AI assistants. All endpoints except /health require an
API key from the configured allow-list.`,
	Version: version,
	RunE:    runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := logging.NewAppLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Error loading config", "error", err)
		return err
	}
	logger.SetLevel(cfg.LogLevel)

	if len(cfg.APIKeys) == 0 {
		logger.Warn("No API keys configured; only /health and the MCP probe will be reachable")
	}

	store, err := kb.Load(cfg.DataDir, logger)
	if err != nil {
		logger.Error("Error loading knowledge base", "error", err)
		return err
	}

	mcpSrv := mcpserver.NewServer(cfg, logger, store)
	restSrv := api.NewServer(cfg, logger, store, mcpSrv.Handler())

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: restSrv.Handler(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", "error", err)
			return err
		}
	}
	return nil
}
