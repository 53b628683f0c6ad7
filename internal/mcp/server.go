package mcp

import (
	"net/http"

	"mcskb/internal/config"
	"mcskb/internal/kb"
	"mcskb/internal/logging"

	"github.com/mark3labs/mcp-go/server"
)

// ServerName and ServerVersion identify this MCP server to clients during
// the initialize handshake.
const (
	ServerName    = "MCS Best Practices"
	ServerVersion = "1.0.0"
)

const serverInstructions = "Curated Copilot Studio best practices, code snippets, " +
	"troubleshooting guides, tips, and governance zone information."

// Server wraps an mcp-go server exposing the knowledge base as tools and
// resources over the stateless streamable HTTP transport.
type Server struct {
	config     *config.Config
	logger     *logging.AppLogger
	store      *kb.Store
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
}

// NewServer creates an MCP server instance bound to the given store.
func NewServer(cfg *config.Config, logger *logging.AppLogger, store *kb.Store) *Server {
	s := &Server{
		config: cfg,
		logger: logger,
		store:  store,
	}

	s.mcpServer = server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithInstructions(serverInstructions),
		server.WithRecovery(),
	)

	s.registerTools()
	s.registerResources()

	// Every call is stateless and idempotent against the read-only store,
	// so no session state is kept between requests.
	s.httpServer = server.NewStreamableHTTPServer(s.mcpServer, server.WithStateLess(true))

	s.logger.Info("MCP server initialized", "name", ServerName, "transport", "streamable-http")
	return s
}

// Handler returns the streamable HTTP handler to mount on the REST mux.
func (s *Server) Handler() http.Handler {
	return s.httpServer
}
