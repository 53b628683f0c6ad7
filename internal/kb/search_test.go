package kb

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var practiceFields = []string{"title", "description", "tags", "rationale"}

func makePractices(n int) []BestPractice {
	items := make([]BestPractice, n)
	for i := range items {
		items[i] = BestPractice{
			ID:    fmt.Sprintf("bp-%d", i),
			Title: fmt.Sprintf("Practice %d", i),
		}
	}
	return items
}

func TestSearch_EmptyQueryReturnsFirstTenInOrder(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"fewer than cap", 3, 3},
		{"exactly cap", 10, 10},
		{"more than cap", 25, 10},
		{"empty collection", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := makePractices(tt.size)
			results := Search(items, "", practiceFields)

			require.Len(t, results, tt.want)
			for i, r := range results {
				assert.Equal(t, items[i].ID, r.ID, "stored order must be preserved")
			}
		})
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	items := []BestPractice{
		{ID: "bp-1", Title: "Http Connector setup"},
	}

	for _, query := range []string{"HTTP", "http", "Http"} {
		t.Run(query, func(t *testing.T) {
			results := Search(items, query, practiceFields)
			require.Len(t, results, 1)
			assert.Equal(t, "bp-1", results[0].ID)
		})
	}
}

func TestSearch_MultiFieldMatchRanksHigher(t *testing.T) {
	items := []BestPractice{
		{ID: "one-field", Title: "Something else", Description: "error handling basics"},
		{ID: "two-fields", Title: "Error handling", Description: "Handle errors gracefully"},
	}

	results := Search(items, "error", practiceFields)

	require.Len(t, results, 2)
	assert.Equal(t, "two-fields", results[0].ID, "record matching two fields must rank first")
	assert.Equal(t, "one-field", results[1].ID)
}

func TestSearch_ListFieldElementsScoreIndividually(t *testing.T) {
	items := []BestPractice{
		{ID: "one-tag", Tags: []string{"errors"}},
		{ID: "two-tags", Tags: []string{"error-handling", "errors"}},
	}

	results := Search(items, "error", practiceFields)

	require.Len(t, results, 2)
	assert.Equal(t, "two-tags", results[0].ID, "each matching list element adds a point")
}

func TestSearch_DropsZeroScores(t *testing.T) {
	items := []BestPractice{
		{ID: "match", Title: "Topic design"},
		{ID: "no-match", Title: "Variable naming"},
	}

	results := Search(items, "topic", practiceFields)

	require.Len(t, results, 1)
	assert.Equal(t, "match", results[0].ID)
}

func TestSearch_NeverExceedsCap(t *testing.T) {
	items := make([]BestPractice, 30)
	for i := range items {
		items[i] = BestPractice{ID: fmt.Sprintf("bp-%d", i), Title: "error handling"}
	}

	results := Search(items, "error", practiceFields)

	assert.Len(t, results, MaxResults)
}

func TestSearch_StableOrderAmongTies(t *testing.T) {
	// All records score 1; the sort must keep stored order.
	items := []BestPractice{
		{ID: "a", Title: "error one"},
		{ID: "b", Title: "error two"},
		{ID: "c", Title: "error three"},
	}

	results := Search(items, "error", practiceFields)

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, "b", results[1].ID)
	assert.Equal(t, "c", results[2].ID)
}

func TestSearchAll_Uncapped(t *testing.T) {
	items := make([]BestPractice, 15)
	for i := range items {
		items[i] = BestPractice{ID: fmt.Sprintf("bp-%d", i), Title: "error"}
	}

	assert.Len(t, SearchAll(items, "error", practiceFields), 15)
	assert.Len(t, Search(items, "error", practiceFields), MaxResults)
}

func TestFindByID(t *testing.T) {
	items := []BestPractice{
		{ID: "bp-1", Title: "first"},
		{ID: "bp-2", Title: "second"},
		{ID: "bp-1", Title: "duplicate"},
	}

	t.Run("returns first match", func(t *testing.T) {
		item, ok := FindByID(items, "bp-1")
		require.True(t, ok)
		assert.Equal(t, "first", item.Title)
	})

	t.Run("absent id", func(t *testing.T) {
		_, ok := FindByID(items, "bp-999")
		assert.False(t, ok)
	})

	t.Run("empty collection", func(t *testing.T) {
		_, ok := FindByID([]BestPractice{}, "bp-1")
		assert.False(t, ok)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, ok := FindByID(items, "BP-1")
		assert.False(t, ok)
	})
}

func TestFilter_ExactMatchExcludesMissingFields(t *testing.T) {
	items := []BestPractice{
		{ID: "match", Category: "topics"},
		{ID: "other", Category: "testing"},
		{ID: "missing"}, // no category at all
	}

	results := Filter(items, func(p BestPractice) bool { return p.Category == "topics" })

	require.Len(t, results, 1)
	assert.Equal(t, "match", results[0].ID)
}

func TestFilterLanguage(t *testing.T) {
	items := []Snippet{
		{ID: "sn-1", Language: "power-fx"},
		{ID: "sn-2", Language: "yaml"},
		{ID: "sn-3", Language: "any"}, // literal value, must not be special
	}

	t.Run("exact match", func(t *testing.T) {
		results := FilterLanguage(items, "yaml")
		require.Len(t, results, 1)
		assert.Equal(t, "sn-2", results[0].ID)
	})

	t.Run("any sentinel skips filtering", func(t *testing.T) {
		assert.Len(t, FilterLanguage(items, AnyLanguage), 3)
	})

	t.Run("empty skips filtering", func(t *testing.T) {
		assert.Len(t, FilterLanguage(items, ""), 3)
	})
}

func TestNormalizeFeature(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"HTTP Connector", "http-connector"},
		{"mcp_servers", "mcp-servers"},
		{"Already-Hyphenated", "already-hyphenated"},
		{"Mixed Case_And Space", "mixed-case-and-space"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeFeature(tt.input))
		})
	}
}

func TestMatchFeature_PriorityOrder(t *testing.T) {
	items := []GovernanceFeature{
		{Feature: "http-connector-legacy", DisplayName: "Legacy HTTP Connector"},
		{Feature: "http-connector", DisplayName: "HTTP Connector"},
		{Feature: "adaptive-cards", DisplayName: "Adaptive Card Widgets"},
	}

	t.Run("exact beats earlier substring", func(t *testing.T) {
		// "http-connector" is a substring of the first record's slug, but the
		// exact match on the second record must win.
		item, ok := MatchFeature(items, "HTTP Connector")
		require.True(t, ok)
		assert.Equal(t, "http-connector", item.Feature)
	})

	t.Run("substring in feature slug", func(t *testing.T) {
		item, ok := MatchFeature(items, "connector-legacy")
		require.True(t, ok)
		assert.Equal(t, "http-connector-legacy", item.Feature)
	})

	t.Run("substring in display name", func(t *testing.T) {
		item, ok := MatchFeature(items, "widgets")
		require.True(t, ok)
		assert.Equal(t, "adaptive-cards", item.Feature)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := MatchFeature(items, "dataverse")
		assert.False(t, ok)
	})

	t.Run("empty collection", func(t *testing.T) {
		_, ok := MatchFeature(nil, "http-connector")
		assert.False(t, ok)
	})
}
