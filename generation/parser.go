package generation

import "strings"

// Section header keyword sets. A line containing any of these words
// (case-insensitive) switches the active section.
var (
	summaryHeaders        = []string{"summary", "overview"}
	recommendationHeaders = []string{"recommendation", "suggest"}
	priorityHeaders       = []string{"priority", "urgent", "critical"}
	nextStepHeaders       = []string{"next step", "action"}
)

const maxDegradedSummary = 500

// parseAnalysis extracts structured fields from free-form model output.
//
// This is best-effort line-oriented extraction, not a guaranteed parse of
// arbitrary prose: a response that doesn't match the expected section
// structure yields sparse output, and anything unparseable degrades to a
// truncated-summary structure rather than an error.
func parseAnalysis(content, analysisType string) *Analysis {
	parsed := &Analysis{
		Recommendations: []string{},
		PriorityFixes:   []string{},
		NextSteps:       []string{},
		Scores:          map[string]float64{},
	}

	var summaryParts []string
	section := ""
	extracted := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if next := classifyHeader(line); next != "" {
			section = next
			continue
		}
		if section == "" {
			// Lines before the first recognized header are discarded.
			continue
		}

		line = stripBullet(line)
		if line == "" {
			continue
		}
		extracted = true

		switch section {
		case "summary":
			summaryParts = append(summaryParts, line)
		case "recommendations":
			parsed.Recommendations = append(parsed.Recommendations, line)
		case "priority_fixes":
			parsed.PriorityFixes = append(parsed.PriorityFixes, line)
		case "next_steps":
			parsed.NextSteps = append(parsed.NextSteps, line)
		}
	}

	if !extracted {
		parsed = degradedAnalysis(content)
	} else {
		parsed.Summary = strings.Join(summaryParts, " ")
	}

	applyExtensionDefaults(parsed, analysisType)
	return parsed
}

func classifyHeader(line string) string {
	lower := strings.ToLower(line)
	switch {
	case containsAny(lower, summaryHeaders):
		return "summary"
	case containsAny(lower, recommendationHeaders):
		return "recommendations"
	case containsAny(lower, priorityHeaders):
		return "priority_fixes"
	case containsAny(lower, nextStepHeaders):
		return "next_steps"
	}
	return ""
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func stripBullet(line string) string {
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") {
		return strings.TrimSpace(strings.TrimLeft(line, "-•*"))
	}
	return line
}

// degradedAnalysis is the minimal structure returned when nothing could
// be extracted from the response.
func degradedAnalysis(content string) *Analysis {
	summary := content
	// Truncation counts characters, not bytes, so multibyte text is
	// neither over-cut nor split mid-rune.
	if runes := []rune(content); len(runes) > maxDegradedSummary {
		summary = string(runes[:maxDegradedSummary]) + "..."
	}
	return &Analysis{
		Summary:         summary,
		Recommendations: []string{"Analysis parsing failed - see raw content"},
		PriorityFixes:   []string{},
		NextSteps:       []string{},
		Scores:          map[string]float64{},
	}
}

// applyExtensionDefaults appends the analysis-type-specific fields.
// These are placeholder defaults, not values derived from the response
// text; callers treat them as the documented result shape only.
func applyExtensionDefaults(parsed *Analysis, analysisType string) {
	switch analysisType {
	case "keyword_opportunity_analysis":
		parsed.Extensions = map[string]any{
			"relevance_scores":          map[string]any{},
			"intent_classification":     map[string]any{},
			"content_recommendations":   map[string]any{},
			"title_suggestions":         map[string]any{},
			"related_topics":            map[string]any{},
			"conversion_potential":      map[string]any{},
			"strategic_recommendations": map[string]any{},
			"market_analysis":           map[string]any{},
			"competitive_analysis":      map[string]any{},
			"target_audience_analysis":  map[string]any{},
		}
	case "seo_content_analysis":
		parsed.Extensions = map[string]any{
			"keyword_analysis":       map[string]any{"optimization_score": float64(75)},
			"readability":            float64(80),
			"structure_analysis":     map[string]any{"score": float64(85)},
			"meta_analysis":          map[string]any{},
			"internal_linking":       map[string]any{},
			"technical_seo":          map[string]any{"score": float64(78)},
			"optimization_potential": float64(85),
		}
	}
}
