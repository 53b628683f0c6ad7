// Package mcp provides the Model Context Protocol (MCP) server for mcskb using mcp-go.
//
// This package exposes the curated knowledge base to AI assistants through a
// standardized protocol: five callable tools that search the collections and
// return formatted text summaries, and five resource templates that serve the
// full-detail rendering of a single record.
//
// # Implementation
//
// The package uses the mcp-go library (github.com/mark3labs/mcp-go). The
// server runs stateless over the streamable HTTP transport and is mounted on
// the REST mux at /mcp; authentication and the Accept-header workaround for
// clients that strip protocol negotiation headers live in the HTTP layer,
// not here.
//
// # Tools
//
//   - search_best_practices: scored search with category/difficulty filters
//   - get_code_snippet: scored search with a language filter
//   - troubleshoot_issue: best-matching guide plus related-guide locators
//   - get_tips_for_feature: substring match on category, title and tags
//   - check_governance_zone: fuzzy feature lookup with zone availability
//
// Each tool result appends resource locators (for example bestpractice://id)
// so a client can fetch full detail through resources/read.
//
// # Resources
//
// Templates bestpractice://{id}, snippet://{id}, troubleshooting://{id},
// tip://{id} and governance://{feature} return the full-detail markdown for
// one record, or a plain "not found" sentence. Absence is never surfaced as
// a protocol-level error.
//
// # Architecture
//
// The Server struct contains:
//   - config: Application configuration
//   - logger: Application logger for debugging and audit
//   - store: The read-only in-memory knowledge base
//   - mcpServer: The underlying mcp-go server instance
//   - httpServer: The streamable HTTP transport wrapping mcpServer
//
// # References
//
// - MCP Specification: https://modelcontextprotocol.io/specification
// - mcp-go Library: https://github.com/mark3labs/mcp-go
package mcp
