package kb

import (
	"sort"
	"strings"
)

// MaxResults is the fixed cap applied by Search. It is deliberately not
// configurable per call.
const MaxResults = 10

// FindByID returns the first record whose identifier equals id, using
// exact case-sensitive comparison. The second return value reports whether
// a record was found.
func FindByID[T Record](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.Identifier() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Search scores items against query over the named fields and returns at
// most MaxResults records, best first. An empty query returns the first
// MaxResults records in their stored order, unranked.
func Search[T Record](items []T, query string, fields []string) []T {
	if query == "" {
		if len(items) > MaxResults {
			items = items[:MaxResults]
		}
		return items
	}
	results := SearchAll(items, query, fields)
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// SearchAll is Search without the result cap. The REST layer uses it to
// report the pre-cap match count.
//
// Scoring: +1 for every field whose value contains the lowercased query as
// a substring, and +1 for every element of a list field that does. Records
// scoring zero are dropped. The sort is stable, so records with equal
// scores keep their stored relative order.
func SearchAll[T Record](items []T, query string, fields []string) []T {
	if query == "" {
		return items
	}
	needle := strings.ToLower(query)

	type scored struct {
		item  T
		score int
	}
	var matches []scored
	for _, item := range items {
		score := 0
		for _, field := range fields {
			for _, value := range item.FieldStrings(field) {
				if strings.Contains(strings.ToLower(value), needle) {
					score++
				}
			}
		}
		if score > 0 {
			matches = append(matches, scored{item, score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	results := make([]T, len(matches))
	for i, m := range matches {
		results[i] = m.item
	}
	return results
}

// Filter returns the items for which keep is true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	var out []T
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// AnyLanguage is the snippet language filter sentinel meaning "no filter".
const AnyLanguage = "any"

// FilterLanguage narrows snippets to an exact language match. The sentinel
// value AnyLanguage (or an empty string) skips filtering entirely rather
// than matching the literal value.
func FilterLanguage(items []Snippet, language string) []Snippet {
	if language == "" || language == AnyLanguage {
		return items
	}
	return Filter(items, func(s Snippet) bool { return s.Language == language })
}

// NormalizeFeature canonicalizes a requested governance feature name:
// lowercase with spaces and underscores converted to hyphens.
func NormalizeFeature(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	return strings.ReplaceAll(name, "_", "-")
}

// MatchFeature resolves a governance feature by name. The requested name is
// normalized, then matched in strict priority order: exact feature slug,
// substring of a feature slug, substring of a lowercased display name.
// An exact match always wins over a substring match, even one stored
// earlier in the collection.
func MatchFeature(items []GovernanceFeature, name string) (GovernanceFeature, bool) {
	needle := NormalizeFeature(name)
	for _, item := range items {
		if item.Feature == needle {
			return item, true
		}
	}
	for _, item := range items {
		if strings.Contains(item.Feature, needle) {
			return item, true
		}
	}
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.DisplayName), needle) {
			return item, true
		}
	}
	return GovernanceFeature{}, false
}
