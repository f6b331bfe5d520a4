package generation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysisSections(t *testing.T) {
	content := `Summary:
The site has solid fundamentals but weak internal linking.
Crawlability is good overall.

Recommendations:
- Add descriptive anchor text
• Consolidate thin category pages
* Compress hero images

Priority fixes:
- Fix the broken sitemap reference

Next steps:
- Re-crawl after the sitemap fix
`

	parsed := parseAnalysis(content, "comprehensive_seo_audit")

	assert.Equal(t, "The site has solid fundamentals but weak internal linking. Crawlability is good overall.", parsed.Summary)
	assert.Equal(t, []string{
		"Add descriptive anchor text",
		"Consolidate thin category pages",
		"Compress hero images",
	}, parsed.Recommendations)
	assert.Equal(t, []string{"Fix the broken sitemap reference"}, parsed.PriorityFixes)
	assert.Equal(t, []string{"Re-crawl after the sitemap fix"}, parsed.NextSteps)
}

func TestParseAnalysisDiscardsPreHeaderLines(t *testing.T) {
	content := "Here is my analysis of the page.\n\nRecommendations:\n- Use shorter titles\n"

	parsed := parseAnalysis(content, "comprehensive_seo_audit")

	assert.Empty(t, parsed.Summary)
	assert.Equal(t, []string{"Use shorter titles"}, parsed.Recommendations)
}

func TestParseAnalysisDegradesWhenNothingExtracted(t *testing.T) {
	content := "A response with no recognizable structure at all."

	parsed := parseAnalysis(content, "comprehensive_seo_audit")

	assert.Equal(t, content, parsed.Summary)
	assert.Equal(t, []string{"Analysis parsing failed - see raw content"}, parsed.Recommendations)
	assert.Empty(t, parsed.PriorityFixes)
	assert.Empty(t, parsed.NextSteps)
}

func TestParseAnalysisDegradedSummaryTruncated(t *testing.T) {
	content := strings.Repeat("x", 900)

	parsed := parseAnalysis(content, "comprehensive_seo_audit")

	require.Len(t, parsed.Summary, maxDegradedSummary+3)
	assert.True(t, strings.HasSuffix(parsed.Summary, "..."))
}

func TestParseAnalysisDegradedSummaryCountsRunes(t *testing.T) {
	// 400 characters but 800 bytes: under the limit, kept whole.
	short := strings.Repeat("é", 400)
	parsed := parseAnalysis(short, "comprehensive_seo_audit")
	assert.Equal(t, short, parsed.Summary)

	long := strings.Repeat("é", 600)
	parsed = parseAnalysis(long, "comprehensive_seo_audit")
	runes := []rune(parsed.Summary)
	require.Len(t, runes, maxDegradedSummary+3)
	assert.Equal(t, strings.Repeat("é", maxDegradedSummary), string(runes[:maxDegradedSummary]))
	assert.True(t, strings.HasSuffix(parsed.Summary, "..."))
	assert.True(t, utf8.ValidString(parsed.Summary))
}

func TestParseAnalysisEmptyInputDegrades(t *testing.T) {
	parsed := parseAnalysis("", "comprehensive_seo_audit")

	assert.Empty(t, parsed.Summary)
	assert.Equal(t, []string{"Analysis parsing failed - see raw content"}, parsed.Recommendations)
}

func TestParseAnalysisContentExtensionDefaults(t *testing.T) {
	parsed := parseAnalysis("Summary:\nFine.\n", "seo_content_analysis")

	require.NotNil(t, parsed.Extensions)
	assert.Equal(t, float64(80), parsed.Extensions["readability"])
	assert.Equal(t, float64(85), parsed.Extensions["optimization_potential"])
	keyword, ok := parsed.Extensions["keyword_analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(75), keyword["optimization_score"])
}

func TestParseAnalysisKeywordExtensionDefaults(t *testing.T) {
	parsed := parseAnalysis("Summary:\nFine.\n", "keyword_opportunity_analysis")

	require.NotNil(t, parsed.Extensions)
	for _, key := range []string{
		"relevance_scores",
		"intent_classification",
		"strategic_recommendations",
		"market_analysis",
		"competitive_analysis",
		"target_audience_analysis",
	} {
		_, ok := parsed.Extensions[key].(map[string]any)
		assert.True(t, ok, "expected map extension %q", key)
	}
}

func TestStripBullet(t *testing.T) {
	assert.Equal(t, "item", stripBullet("- item"))
	assert.Equal(t, "item", stripBullet("• item"))
	assert.Equal(t, "item", stripBullet("* item"))
	assert.Equal(t, "plain line", stripBullet("plain line"))
}
