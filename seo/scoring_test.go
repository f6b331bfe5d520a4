package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpportunityScoreZeroDifficulty(t *testing.T) {
	rec := KeywordRecord{Keyword: "go hosting", SearchVolume: 10, Difficulty: 0}
	// Divisor falls back to 1, result clamps at 100.
	assert.Equal(t, 100.0, OpportunityScore(rec, 0.5))
}

func TestOpportunityScoreClampedToRange(t *testing.T) {
	high := KeywordRecord{SearchVolume: 100000, Difficulty: 5}
	assert.Equal(t, 100.0, OpportunityScore(high, 1.0))

	zero := KeywordRecord{SearchVolume: 0, Difficulty: 50}
	assert.Equal(t, 0.0, OpportunityScore(zero, 0.8))
}

func TestOpportunityScoreMidRange(t *testing.T) {
	rec := KeywordRecord{SearchVolume: 10, Difficulty: 50}
	// (10/50) * 0.3 * 100 = 6
	assert.InDelta(t, 6.0, OpportunityScore(rec, 0.3), 1e-9)
}

func TestTrafficProjectionBuckets(t *testing.T) {
	cases := []struct {
		name       string
		volume     int
		difficulty int
		want       int
	}{
		{"easy keyword", 1000, 20, 150},
		{"boundary of easy bucket", 1000, 30, 150},
		{"medium keyword", 1000, 45, 80},
		{"boundary of medium bucket", 1000, 60, 80},
		{"hard keyword", 1000, 90, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := KeywordRecord{SearchVolume: tc.volume, Difficulty: tc.difficulty}
			assert.Equal(t, tc.want, TrafficProjection(rec))
		})
	}
}

func TestSEOScoreWeights(t *testing.T) {
	assert.Equal(t, 100.0, SEOScore(100, 100, 100, 100))
	assert.Equal(t, 0.0, SEOScore(0, 0, 0, 0))
	// 80*0.3 + 60*0.2 + 70*0.2 + 90*0.3 = 77
	assert.InDelta(t, 77.0, SEOScore(80, 60, 70, 90), 1e-9)
}
