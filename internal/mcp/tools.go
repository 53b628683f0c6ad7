package mcp

import (
	"context"
	"fmt"
	"strings"

	"mcskb/internal/kb"

	"github.com/mark3labs/mcp-go/mcp"
)

// Display caps for tool output. Tools return fewer records than the REST
// layer because results are rendered inline into the conversation; clients
// follow the resource locators for full detail.
const (
	maxToolBestPractices = 5
	maxToolSnippets      = 3
	maxToolTips          = 5
	maxRelatedGuides     = 2
)

func (s *Server) registerTools() {
	searchBestPractices := mcp.NewTool("search_best_practices",
		mcp.WithDescription("Search curated Copilot Studio best practices. Returns matching practices with title and rationale."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search over titles, descriptions, tags and rationale"),
		),
		mcp.WithString("category",
			mcp.Description("Exact category filter, e.g. topics or authoring"),
		),
		mcp.WithString("difficulty",
			mcp.Description("Exact difficulty filter, e.g. beginner or advanced"),
		),
	)
	s.mcpServer.AddTool(searchBestPractices, s.handleSearchBestPractices)

	getCodeSnippet := mcp.NewTool("get_code_snippet",
		mcp.WithDescription("Get copy-paste ready code snippets for Copilot Studio. Supports power-fx, yaml, json, or any language."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Free-text search over titles, descriptions, use cases and tags"),
		),
		mcp.WithString("language",
			mcp.Description("Exact language filter; 'any' disables filtering"),
		),
	)
	s.mcpServer.AddTool(getCodeSnippet, s.handleGetCodeSnippet)

	troubleshootIssue := mcp.NewTool("troubleshoot_issue",
		mcp.WithDescription("Get step-by-step troubleshooting for Copilot Studio issues. Describe the problem or error message."),
		mcp.WithString("issue",
			mcp.Required(),
			mcp.Description("The problem or error message to diagnose"),
		),
	)
	s.mcpServer.AddTool(troubleshootIssue, s.handleTroubleshootIssue)

	getTipsForFeature := mcp.NewTool("get_tips_for_feature",
		mcp.WithDescription("Get tips and tricks for a specific Copilot Studio feature like topics, testing, authoring, etc."),
		mcp.WithString("feature",
			mcp.Required(),
			mcp.Description("Feature area to get tips for"),
		),
	)
	s.mcpServer.AddTool(getTipsForFeature, s.handleGetTipsForFeature)

	checkGovernanceZone := mcp.NewTool("check_governance_zone",
		mcp.WithDescription("Check what governance zone is required for a Copilot Studio feature like http-connector, mcp-servers, etc."),
		mcp.WithString("feature",
			mcp.Required(),
			mcp.Description("Feature name or slug to look up"),
		),
	)
	s.mcpServer.AddTool(checkGovernanceZone, s.handleCheckGovernanceZone)
}

var (
	bestPracticeSearchFields = []string{"title", "description", "tags", "rationale"}
	snippetSearchFields      = []string{"title", "description", "use_case", "tags"}
	guideSearchFields        = []string{"title", "symptoms", "causes", "tags"}
)

func (s *Server) handleSearchBestPractices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	category := request.GetString("category", "")
	difficulty := request.GetString("difficulty", "")

	items := s.store.BestPractices
	if category != "" {
		items = kb.Filter(items, func(p kb.BestPractice) bool { return p.Category == category })
	}
	if difficulty != "" {
		items = kb.Filter(items, func(p kb.BestPractice) bool { return p.Difficulty == difficulty })
	}

	results := kb.Search(items, query, bestPracticeSearchFields)
	if len(results) == 0 {
		return mcp.NewToolResultText("No best practices found matching your query."), nil
	}
	if len(results) > maxToolBestPractices {
		results = results[:maxToolBestPractices]
	}

	var lines []string
	for i, item := range results {
		lines = append(lines,
			fmt.Sprintf("\n## %d. %s", i+1, item.Title),
			fmt.Sprintf("**Description**: %s", item.Description),
			fmt.Sprintf("**Rationale**: %s", item.Rationale),
			fmt.Sprintf("*Difficulty: %s*", orNA(item.Difficulty)),
			fmt.Sprintf("Resource URI: bestpractice://%s", item.ID),
		)
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) handleGetCodeSnippet(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	language := request.GetString("language", "")

	items := kb.FilterLanguage(s.store.Snippets, language)
	results := kb.Search(items, query, snippetSearchFields)
	if len(results) == 0 {
		return mcp.NewToolResultText("No code snippets found matching your query."), nil
	}
	if len(results) > maxToolSnippets {
		results = results[:maxToolSnippets]
	}

	var lines []string
	for _, item := range results {
		lang := item.Language
		if lang == "" {
			lang = "unknown"
		}
		lines = append(lines,
			fmt.Sprintf("\n## %s", item.Title),
			fmt.Sprintf("**Language**: %s", lang),
			fmt.Sprintf("**Use case**: %s", item.UseCase),
			fmt.Sprintf("\n```%s\n%s\n```", item.Language, item.Code),
			fmt.Sprintf("\n**Explanation**: %s", item.Explanation),
			fmt.Sprintf("Resource URI: snippet://%s", item.ID),
		)
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) handleTroubleshootIssue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	issue, err := request.RequireString("issue")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := kb.Search(s.store.Troubleshooting, issue, guideSearchFields)
	if len(results) == 0 {
		return mcp.NewToolResultText("No troubleshooting guides found for this issue."), nil
	}

	primary := results[0]
	text := kb.FormatGuide(primary)
	lines := []string{text, fmt.Sprintf("\nResource URI: troubleshooting://%s", primary.ID)}

	if len(results) > 1 {
		related := results[1:]
		if len(related) > maxRelatedGuides {
			related = related[:maxRelatedGuides]
		}
		lines = append(lines, "\n**Other related guides**:")
		for _, other := range related {
			lines = append(lines, fmt.Sprintf("- %s (troubleshooting://%s)", other.Title, other.ID))
		}
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) handleGetTipsForFeature(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feature, err := request.RequireString("feature")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	needle := strings.ToLower(feature)
	results := kb.Filter(s.store.Tips, func(t kb.Tip) bool {
		return strings.Contains(strings.ToLower(t.Category), needle) ||
			strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(strings.Join(t.Tags, " ")), needle)
	})
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No tips found for '%s'.", feature)), nil
	}
	if len(results) > maxToolTips {
		results = results[:maxToolTips]
	}

	var lines []string
	for _, item := range results {
		lines = append(lines,
			fmt.Sprintf("\n## %s", item.Title),
			item.Tip,
		)
		if item.WhyItMatters != "" {
			lines = append(lines, fmt.Sprintf("\n*Why it matters*: %s", item.WhyItMatters))
		}
		lines = append(lines, fmt.Sprintf("Resource URI: tip://%s", item.ID))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) handleCheckGovernanceZone(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	feature, err := request.RequireString("feature")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	item, ok := kb.MatchFeature(s.store.Governance, feature)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("No governance information found for '%s'.", feature)), nil
	}

	text := kb.FormatGovernance(item) + fmt.Sprintf("\n\nResource URI: governance://%s", item.Feature)
	return mcp.NewToolResultText(text), nil
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
