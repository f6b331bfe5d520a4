// Package seo holds the pure scoring and ranking heuristics applied to
// keyword data and content analyses.
package seo

import "math"

// DefaultRelevance is assumed for keywords the analysis step supplied no
// relevance score for.
const DefaultRelevance = 0.5

// KeywordRecord is one keyword as returned by the keyword-data provider.
type KeywordRecord struct {
	Keyword           string `json:"keyword"`
	SearchVolume      int    `json:"search_volume"`
	Difficulty        int    `json:"difficulty"`
	Competition       string `json:"competition"`
	SeasonalTrends    any    `json:"seasonal_trends,omitempty"`
	CompetitorGap     bool   `json:"competitor_gap"`
	RankingDifficulty string `json:"ranking_difficulty"`
}

// OpportunityScore is a 0-100 heuristic ranking of a keyword's
// attractiveness. Difficulty 0 uses divisor 1.
func OpportunityScore(rec KeywordRecord, relevance float64) float64 {
	difficulty := rec.Difficulty
	if difficulty == 0 {
		difficulty = 1
	}

	score := (float64(rec.SearchVolume) / float64(difficulty)) * relevance * 100
	return math.Min(100, math.Max(0, score))
}

// TrafficProjection estimates monthly organic visits: search volume
// times a three-bucket CTR step function over difficulty.
func TrafficProjection(rec KeywordRecord) int {
	var ctr float64
	switch {
	case rec.Difficulty <= 30:
		ctr = 0.15
	case rec.Difficulty <= 60:
		ctr = 0.08
	default:
		ctr = 0.03
	}
	return int(float64(rec.SearchVolume) * ctr)
}

// SEOScore aggregates content-analysis sub-scores with fixed weights
// (keyword 0.3, structure 0.2, readability 0.2, technical 0.3).
// Absent sub-scores are passed as 0 by the caller.
func SEOScore(keywordOpt, structure, readability, technical float64) float64 {
	return keywordOpt*0.3 + structure*0.2 + readability*0.2 + technical*0.3
}
