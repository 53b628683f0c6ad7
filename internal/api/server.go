// Package api implements the REST surface of the knowledge base and the
// middleware shared with the MCP endpoint: API-key authorization, CORS, and
// the Accept-header normalization some protocol clients need.
package api

import (
	"encoding/json"
	"net/http"

	"mcskb/internal/config"
	"mcskb/internal/kb"
	"mcskb/internal/logging"
)

// Server holds the REST handlers and the mounted MCP protocol handler.
type Server struct {
	config     *config.Config
	logger     *logging.AppLogger
	store      *kb.Store
	mcpHandler http.Handler
}

// NewServer creates the HTTP front-end. mcpHandler is mounted at /mcp and
// goes through the same middleware chain as the REST routes.
func NewServer(cfg *config.Config, logger *logging.AppLogger, store *kb.Store, mcpHandler http.Handler) *Server {
	return &Server{
		config:     cfg,
		logger:     logger,
		store:      store,
		mcpHandler: mcpHandler,
	}
}

// Handler builds the full request pipeline:
// CORS -> auth -> MCP Accept normalization -> routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("GET /api/v1/best-practices", s.listBestPractices)
	mux.HandleFunc("GET /api/v1/best-practices/{id}", s.getBestPractice)
	mux.HandleFunc("GET /api/v1/snippets", s.listSnippets)
	mux.HandleFunc("GET /api/v1/snippets/{id}", s.getSnippet)
	mux.HandleFunc("GET /api/v1/troubleshooting", s.listTroubleshooting)
	mux.HandleFunc("GET /api/v1/troubleshooting/{id}", s.getTroubleshooting)
	mux.HandleFunc("GET /api/v1/tips", s.listTips)
	mux.HandleFunc("GET /api/v1/governance/{feature}", s.getGovernance)

	mux.Handle("/mcp", s.mcpHandler)
	mux.Handle("/mcp/", s.mcpHandler)

	var h http.Handler = mux
	h = s.injectMCPAccept(h)
	h = s.requireAPIKey(h)
	h = allowCORS(h)
	return h
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"data_loaded": s.store.Loaded(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeNotFound(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": detail})
}
