package mcp

import (
	"context"
	"fmt"
	"strings"

	"mcskb/internal/kb"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	bestPractice := mcp.NewResourceTemplate("bestpractice://{id}", "Best Practice",
		mcp.WithTemplateDescription("Full best practice detail including description, rationale, examples, difficulty, and tags."),
		mcp.WithTemplateMIMEType("text/markdown"),
	)
	s.mcpServer.AddResourceTemplate(bestPractice, s.readBestPractice)

	snippet := mcp.NewResourceTemplate("snippet://{id}", "Code Snippet",
		mcp.WithTemplateDescription("Full code snippet with code block, explanation, and use case."),
		mcp.WithTemplateMIMEType("text/markdown"),
	)
	s.mcpServer.AddResourceTemplate(snippet, s.readSnippet)

	guide := mcp.NewResourceTemplate("troubleshooting://{id}", "Troubleshooting Guide",
		mcp.WithTemplateDescription("Full troubleshooting guide with symptoms, causes, and step-by-step resolution."),
		mcp.WithTemplateMIMEType("text/markdown"),
	)
	s.mcpServer.AddResourceTemplate(guide, s.readGuide)

	tip := mcp.NewResourceTemplate("tip://{id}", "Tip",
		mcp.WithTemplateDescription("Full tip with explanation and why it matters."),
		mcp.WithTemplateMIMEType("text/markdown"),
	)
	s.mcpServer.AddResourceTemplate(tip, s.readTip)

	governance := mcp.NewResourceTemplate("governance://{feature}", "Governance Zone Info",
		mcp.WithTemplateDescription("Full governance zone information including availability per zone and justification template."),
		mcp.WithTemplateMIMEType("text/markdown"),
	)
	s.mcpServer.AddResourceTemplate(governance, s.readGovernance)
}

// textResource wraps formatted markdown in the single-content response shape
// shared by every resource read handler. Absence is reported as readable
// text, not a protocol error, so clients always get something to display.
func textResource(uri, text string) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     text,
		},
	}, nil
}

func resourceID(uri, scheme string) string {
	return strings.TrimPrefix(uri, scheme+"://")
}

func (s *Server) readBestPractice(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := resourceID(request.Params.URI, "bestpractice")
	item, ok := kb.FindByID(s.store.BestPractices, id)
	if !ok {
		return textResource(request.Params.URI, fmt.Sprintf("Best practice '%s' not found.", id))
	}
	return textResource(request.Params.URI, kb.FormatBestPractice(item))
}

func (s *Server) readSnippet(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := resourceID(request.Params.URI, "snippet")
	item, ok := kb.FindByID(s.store.Snippets, id)
	if !ok {
		return textResource(request.Params.URI, fmt.Sprintf("Snippet '%s' not found.", id))
	}
	return textResource(request.Params.URI, kb.FormatSnippet(item))
}

func (s *Server) readGuide(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := resourceID(request.Params.URI, "troubleshooting")
	item, ok := kb.FindByID(s.store.Troubleshooting, id)
	if !ok {
		return textResource(request.Params.URI, fmt.Sprintf("Troubleshooting guide '%s' not found.", id))
	}
	return textResource(request.Params.URI, kb.FormatGuide(item))
}

func (s *Server) readTip(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	id := resourceID(request.Params.URI, "tip")
	item, ok := kb.FindByID(s.store.Tips, id)
	if !ok {
		return textResource(request.Params.URI, fmt.Sprintf("Tip '%s' not found.", id))
	}
	return textResource(request.Params.URI, kb.FormatTip(item))
}

// readGovernance resolves by exact normalized feature slug only; the fuzzy
// matching of check_governance_zone does not apply to direct resource reads.
func (s *Server) readGovernance(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	name := resourceID(request.Params.URI, "governance")
	needle := kb.NormalizeFeature(name)
	for _, item := range s.store.Governance {
		if item.Feature == needle {
			return textResource(request.Params.URI, kb.FormatGovernance(item))
		}
	}
	return textResource(request.Params.URI, fmt.Sprintf("Governance info for '%s' not found.", name))
}
