package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/howaiconnects/seogate/generation"
	"github.com/howaiconnects/seogate/internal/logger"
	"github.com/howaiconnects/seogate/prompts"
)

// CompetitorAnalysisRequest is the competitor-analysis input.
type CompetitorAnalysisRequest struct {
	CompetitorDomains []string `json:"competitor_domains"`
	AnalysisType      string   `json:"analysis_type,omitempty"`
	Timeframe         string   `json:"timeframe,omitempty"`
}

func (s *Server) handleCompetitorAnalysis(w http.ResponseWriter, r *http.Request) {
	const stage = "Competitor analysis"

	var req CompetitorAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, validationErr(stage, "invalid request body: %v", err))
		return
	}

	domains := make([]string, 0, len(req.CompetitorDomains))
	for _, d := range req.CompetitorDomains {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			domains = append(domains, d)
		}
	}
	if len(domains) == 0 {
		writeError(w, validationErr(stage, "at least one competitor domain is required"))
		return
	}
	if req.AnalysisType == "" {
		req.AnalysisType = "comprehensive"
	}
	if req.Timeframe == "" {
		req.Timeframe = "30d"
	}

	ctx := r.Context()
	competitorData := s.collectCompetitorData(ctx, domains, req.AnalysisType, req.Timeframe)

	prompt := s.resolver.Resolve(ctx, "competitor_analysis_ai", prompts.Variables{
		"competitor_domains": domains,
		"analysis_type":      req.AnalysisType,
	}, "")

	dataJSON, err := json.Marshal(competitorData)
	if err != nil {
		writeError(w, internalErr(stage, err))
		return
	}
	insights, err := s.generator.AnalyzeWith(ctx, generation.TierHigh, prompt, string(dataJSON), "competitive_intelligence")
	if err != nil {
		writeError(w, upstreamErr(stage, err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":                   true,
		"competitor_analysis":       competitorData,
		"ai_insights":               insights,
		"content_gaps":              insights.PriorityFixes,
		"keyword_opportunities":     []string{},
		"technical_advantages":      []string{},
		"strategic_recommendations": insights.Recommendations,
	})
}

// collectCompetitorData gathers per-domain context: provider metrics when the
// keyword-data provider is configured, scraped page metadata otherwise.
// Per-domain failures are recorded in place so one bad domain does not abort
// the analysis.
func (s *Server) collectCompetitorData(ctx context.Context, domains []string, analysisType, timeframe string) map[string]any {
	data := make(map[string]any, len(domains))
	for _, domain := range domains {
		if s.semrush.Configured() {
			overview, err := s.semrush.DomainAnalysis(ctx, domain, analysisType, timeframe)
			if err != nil {
				logger.Log.WithField("domain", domain).Warnf("domain analysis failed: %v", err)
				data[domain] = map[string]any{"error": err.Error()}
				continue
			}
			data[domain] = overview
			continue
		}
		meta, err := s.scraper.FetchMetadata(ctx, domain)
		if err != nil {
			logger.Log.WithField("domain", domain).Warnf("metadata fetch failed: %v", err)
			data[domain] = map[string]any{"error": err.Error()}
			continue
		}
		data[domain] = meta
	}
	return data
}
