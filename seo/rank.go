package seo

import "sort"

// MaxOpportunities caps the ranked list returned to callers.
const MaxOpportunities = 50

// AIAnnotations are per-keyword insights taken from the AI analysis step.
type AIAnnotations struct {
	RecommendedContentType string   `json:"recommended_content_type,omitempty"`
	TitleIdeas             []string `json:"title_ideas"`
	RelatedTopics          []string `json:"related_topics"`
	SeasonalData           any      `json:"seasonal_data,omitempty"`
	ConversionLikelihood   string   `json:"conversion_likelihood"`
}

// GapAnalysis reports competitor-gap signals for a keyword.
type GapAnalysis struct {
	GapOpportunity    bool   `json:"gap_opportunity"`
	RankingDifficulty string `json:"ranking_difficulty"`
}

// Traffic carries the monthly estimate for a keyword.
type Traffic struct {
	MonthlyEstimate int `json:"monthly_estimate"`
}

// Opportunity is a keyword record enriched with scores and annotations,
// ordered by descending OpportunityScore in ranked output.
type Opportunity struct {
	Keyword            string        `json:"keyword"`
	SearchVolume       int           `json:"search_volume"`
	Difficulty         int           `json:"difficulty"`
	CompetitionLevel   string        `json:"competition_level"`
	SearchIntent       string        `json:"search_intent"`
	OpportunityScore   float64       `json:"opportunity_score"`
	AIAnalysis         AIAnnotations `json:"ai_analysis"`
	CompetitorAnalysis GapAnalysis   `json:"competitor_analysis"`
	TrafficProjection  Traffic       `json:"traffic_projection"`
}

// RankParams filter the candidate records before scoring.
type RankParams struct {
	VolumeMin     int
	DifficultyMax int
	// Relevance maps keyword to the analysis-derived relevance score;
	// missing keywords use DefaultRelevance.
	Relevance map[string]float64
	// Intent maps keyword to its classified search intent; missing
	// keywords default to "informational".
	Intent map[string]string
}

// RankOpportunities filters, scores, sorts, and truncates keyword
// records into the top opportunities.
func RankOpportunities(records []KeywordRecord, params RankParams) []Opportunity {
	opportunities := make([]Opportunity, 0, len(records))
	for _, rec := range records {
		if rec.SearchVolume < params.VolumeMin || rec.Difficulty > params.DifficultyMax {
			continue
		}

		relevance, ok := params.Relevance[rec.Keyword]
		if !ok {
			relevance = DefaultRelevance
		}
		intent, ok := params.Intent[rec.Keyword]
		if !ok {
			intent = "informational"
		}

		competition := rec.Competition
		if competition == "" {
			competition = "unknown"
		}
		rankingDifficulty := rec.RankingDifficulty
		if rankingDifficulty == "" {
			rankingDifficulty = "medium"
		}

		opportunities = append(opportunities, Opportunity{
			Keyword:          rec.Keyword,
			SearchVolume:     rec.SearchVolume,
			Difficulty:       rec.Difficulty,
			CompetitionLevel: competition,
			SearchIntent:     intent,
			OpportunityScore: OpportunityScore(rec, relevance),
			AIAnalysis: AIAnnotations{
				TitleIdeas:           []string{},
				RelatedTopics:        []string{},
				SeasonalData:         rec.SeasonalTrends,
				ConversionLikelihood: "medium",
			},
			CompetitorAnalysis: GapAnalysis{
				GapOpportunity:    rec.CompetitorGap,
				RankingDifficulty: rankingDifficulty,
			},
			TrafficProjection: Traffic{MonthlyEstimate: TrafficProjection(rec)},
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].OpportunityScore > opportunities[j].OpportunityScore
	})

	if len(opportunities) > MaxOpportunities {
		opportunities = opportunities[:MaxOpportunities]
	}
	return opportunities
}
