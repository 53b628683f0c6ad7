package api

import (
	"fmt"
	"net/http"

	"mcskb/internal/kb"
)

// listResponse is the JSON envelope for every list endpoint. Total is the
// record count after filtering but before the result cap.
type listResponse[T any] struct {
	Results []T `json:"results"`
	Total   int `json:"total"`
}

var (
	bestPracticeSearchFields = []string{"title", "description", "tags", "rationale"}
	snippetSearchFields      = []string{"title", "description", "tags", "use_case"}
	guideSearchFields        = []string{"title", "symptoms", "causes", "tags"}
)

// capResults truncates to the fixed REST cap and normalizes nil to an empty
// slice so the envelope always serializes results as a JSON array.
func capResults[T any](items []T) []T {
	if len(items) > kb.MaxResults {
		items = items[:kb.MaxResults]
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func (s *Server) listBestPractices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := s.store.BestPractices
	if category := q.Get("category"); category != "" {
		items = kb.Filter(items, func(p kb.BestPractice) bool { return p.Category == category })
	}
	if difficulty := q.Get("difficulty"); difficulty != "" {
		items = kb.Filter(items, func(p kb.BestPractice) bool { return p.Difficulty == difficulty })
	}
	if query := q.Get("q"); query != "" {
		items = kb.SearchAll(items, query, bestPracticeSearchFields)
	}
	writeJSON(w, http.StatusOK, listResponse[kb.BestPractice]{
		Results: capResults(items),
		Total:   len(items),
	})
}

func (s *Server) getBestPractice(w http.ResponseWriter, r *http.Request) {
	item, ok := kb.FindByID(s.store.BestPractices, r.PathValue("id"))
	if !ok {
		writeNotFound(w, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) listSnippets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := kb.FilterLanguage(s.store.Snippets, q.Get("language"))
	if query := q.Get("q"); query != "" {
		items = kb.SearchAll(items, query, snippetSearchFields)
	}
	writeJSON(w, http.StatusOK, listResponse[kb.Snippet]{
		Results: capResults(items),
		Total:   len(items),
	})
}

func (s *Server) getSnippet(w http.ResponseWriter, r *http.Request) {
	item, ok := kb.FindByID(s.store.Snippets, r.PathValue("id"))
	if !ok {
		writeNotFound(w, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) listTroubleshooting(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := s.store.Troubleshooting
	if category := q.Get("category"); category != "" {
		items = kb.Filter(items, func(g kb.Guide) bool { return g.Category == category })
	}
	if query := q.Get("q"); query != "" {
		items = kb.SearchAll(items, query, guideSearchFields)
	}
	writeJSON(w, http.StatusOK, listResponse[kb.Guide]{
		Results: capResults(items),
		Total:   len(items),
	})
}

func (s *Server) getTroubleshooting(w http.ResponseWriter, r *http.Request) {
	item, ok := kb.FindByID(s.store.Troubleshooting, r.PathValue("id"))
	if !ok {
		writeNotFound(w, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// listTips has no search and no result cap; total always equals the number
// of results returned.
func (s *Server) listTips(w http.ResponseWriter, r *http.Request) {
	items := s.store.Tips
	if category := r.URL.Query().Get("category"); category != "" {
		items = kb.Filter(items, func(t kb.Tip) bool { return t.Category == category })
	}
	if items == nil {
		items = []kb.Tip{}
	}
	writeJSON(w, http.StatusOK, listResponse[kb.Tip]{
		Results: items,
		Total:   len(items),
	})
}

func (s *Server) getGovernance(w http.ResponseWriter, r *http.Request) {
	feature := r.PathValue("feature")
	item, ok := kb.MatchFeature(s.store.Governance, feature)
	if !ok {
		writeNotFound(w, fmt.Sprintf("No governance info for: %s", feature))
		return
	}
	writeJSON(w, http.StatusOK, item)
}
