package kb

import (
	"fmt"
	"sort"
	"strings"
)

// Formatters render a single record as a full-detail markdown block for the
// MCP resource layer. Missing category/difficulty/language fields render as
// "N/A" or "unknown", missing descriptive text renders empty, and only the
// sections documented as conditional are omitted outright.

// FormatBestPractice renders one best practice in full detail.
func FormatBestPractice(p BestPractice) string {
	lines := []string{
		fmt.Sprintf("# %s", p.Title),
		fmt.Sprintf("\n**Category**: %s", valueOr(p.Category, "N/A")),
		fmt.Sprintf("**Difficulty**: %s", valueOr(p.Difficulty, "N/A")),
		fmt.Sprintf("\n**Description**: %s", p.Description),
		fmt.Sprintf("\n**Rationale**: %s", p.Rationale),
		fmt.Sprintf("\n**Good example**: %s", p.ExampleGood),
		fmt.Sprintf("**Bad example**: %s", p.ExampleBad),
		fmt.Sprintf("\n**Tags**: %s", strings.Join(p.Tags, ", ")),
	}
	return strings.Join(lines, "\n")
}

// FormatSnippet renders one code snippet with a fenced code block tagged by
// its language.
func FormatSnippet(s Snippet) string {
	lines := []string{
		fmt.Sprintf("# %s", s.Title),
		fmt.Sprintf("\n**Language**: %s", valueOr(s.Language, "unknown")),
		fmt.Sprintf("**Use case**: %s", s.UseCase),
		fmt.Sprintf("\n```%s\n%s\n```", s.Language, s.Code),
		fmt.Sprintf("\n**Explanation**: %s", s.Explanation),
		fmt.Sprintf("\n**Tags**: %s", strings.Join(s.Tags, ", ")),
	}
	return strings.Join(lines, "\n")
}

// FormatGuide renders one troubleshooting guide. Sections absent from the
// source data are omitted entirely rather than rendered empty.
func FormatGuide(g Guide) string {
	lines := []string{fmt.Sprintf("# %s", g.Title)}
	if len(g.Symptoms) > 0 {
		lines = append(lines, "\n**Symptoms**:")
		for _, s := range g.Symptoms {
			lines = append(lines, fmt.Sprintf("- %s", s))
		}
	}
	if len(g.Causes) > 0 {
		lines = append(lines, "\n**Possible causes**:")
		for _, c := range g.Causes {
			lines = append(lines, fmt.Sprintf("- %s", c))
		}
	}
	if len(g.Steps) > 0 {
		lines = append(lines, "\n**Resolution steps**:")
		for _, step := range g.Steps {
			lines = append(lines, fmt.Sprintf("\n**Step %d**: %s", step.Step, step.Action))
			lines = append(lines, fmt.Sprintf("  %s", step.Details))
		}
	}
	return strings.Join(lines, "\n")
}

// FormatTip renders one tip; the "why it matters" note only appears when
// the record carries one.
func FormatTip(t Tip) string {
	lines := []string{
		fmt.Sprintf("# %s", t.Title),
		fmt.Sprintf("\n%s", t.Tip),
	}
	if t.WhyItMatters != "" {
		lines = append(lines, fmt.Sprintf("\n*Why it matters*: %s", t.WhyItMatters))
	}
	lines = append(lines, fmt.Sprintf("\n**Tags**: %s", strings.Join(t.Tags, ", ")))
	return strings.Join(lines, "\n")
}

// FormatGovernance renders one governance feature with per-zone
// availability. Zones are listed in sorted name order so output is
// deterministic.
func FormatGovernance(f GovernanceFeature) string {
	lines := []string{
		fmt.Sprintf("# %s", valueOr(f.DisplayName, f.Feature)),
		fmt.Sprintf("\n**Minimum zone required**: %s", valueOr(f.MinimumZone, "unknown")),
		"\n**Availability by zone**:",
	}
	zones := make([]string, 0, len(f.Zones))
	for zone := range f.Zones {
		zones = append(zones, zone)
	}
	sort.Strings(zones)
	for _, zone := range zones {
		info := f.Zones[zone]
		status := "Not available"
		if info.Available {
			status = "Available"
		}
		lines = append(lines, fmt.Sprintf("\n**%s**: %s", strings.ToUpper(zone), status))
		if info.Reason != "" {
			lines = append(lines, fmt.Sprintf("  Reason: %s", info.Reason))
		}
		if len(info.Requirements) > 0 {
			lines = append(lines, fmt.Sprintf("  Requirements: %s", strings.Join(info.Requirements, ", ")))
		}
	}
	if f.JustificationTemplate != "" {
		lines = append(lines, fmt.Sprintf("\n**Justification template**:\n> %s", f.JustificationTemplate))
	}
	return strings.Join(lines, "\n")
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
