package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/howaiconnects/seogate/generation"
	"github.com/howaiconnects/seogate/internal/logger"
	"github.com/howaiconnects/seogate/prompts"
)

// WebsiteAnalysisRequest is the initial-setup analysis input.
type WebsiteAnalysisRequest struct {
	Domain          string   `json:"domain"`
	Industry        string   `json:"industry"`
	TargetAudience  string   `json:"target_audience"`
	ExistingContent string   `json:"existing_content,omitempty"`
	CompetitorDoms  []string `json:"competitor_domains,omitempty"`
	AnalysisGoals   []string `json:"analysis_goals,omitempty"`
}

func (s *Server) handleAnalyzeWebsite(w http.ResponseWriter, r *http.Request) {
	const stage = "Analysis"

	var req WebsiteAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, validationErr(stage, "invalid request body: %v", err))
		return
	}
	req.Domain = strings.ToLower(strings.TrimSpace(req.Domain))
	if req.Domain == "" {
		writeError(w, validationErr(stage, "domain cannot be empty"))
		return
	}

	ctx := r.Context()
	logger.Log.WithField("domain", req.Domain).Info("starting website analysis")

	prompt := s.resolver.Resolve(ctx, "website_analysis_comprehensive", prompts.Variables{
		"domain":          req.Domain,
		"industry":        req.Industry,
		"target_audience": req.TargetAudience,
	}, "")

	analysis, err := s.generator.AnalyzeWith(ctx, generation.TierHigh, prompt, req.ExistingContent, "comprehensive_seo_audit")
	if err != nil {
		writeError(w, upstreamErr(stage, err))
		return
	}

	recordID, err := s.records.Create(ctx, "websiteAnalysis", map[string]any{
		"Domain":           req.Domain,
		"Analysis Date":    time.Now().UTC().Format(time.RFC3339),
		"Analysis Results": analysis,
		"Status":           "Completed",
		"Phase":            "Initial Setup",
	})
	if err != nil {
		writeError(w, upstreamErr(stage, err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"analysis_id":     recordID,
		"summary":         analysis.Summary,
		"recommendations": analysis.Recommendations,
		"next_steps":      analysis.NextSteps,
	})
}

// ContentStrategyRequest is the content-strategy generation input.
type ContentStrategyRequest struct {
	BusinessType       string         `json:"business_type"`
	TargetKeywords     []string       `json:"target_keywords"`
	CompetitorAnalysis map[string]any `json:"competitor_analysis,omitempty"`
	ContentGoals       []string       `json:"content_goals,omitempty"`
}

func (s *Server) handleGenerateContentStrategy(w http.ResponseWriter, r *http.Request) {
	const stage = "Strategy generation"

	var req ContentStrategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, validationErr(stage, "invalid request body: %v", err))
		return
	}
	if req.BusinessType == "" {
		writeError(w, validationErr(stage, "business_type cannot be empty"))
		return
	}
	if len(req.TargetKeywords) == 0 {
		writeError(w, validationErr(stage, "at least one target keyword is required"))
		return
	}

	ctx := r.Context()
	prompt := s.resolver.Resolve(ctx, "content_strategy_generation", prompts.Variables{
		"business_type":       req.BusinessType,
		"target_keywords":     req.TargetKeywords,
		"competitor_analysis": req.CompetitorAnalysis,
	}, "")

	result, err := s.generator.Generate(ctx, generation.TierStandard, generation.GenerateOptions{
		Prompt:      prompt,
		MaxTokens:   4000,
		Temperature: 0.7,
	})
	if err != nil {
		writeError(w, upstreamErr(stage, err))
		return
	}

	recordID, err := s.records.Create(ctx, "contentStrategy", map[string]any{
		"Business Type": req.BusinessType,
		"Strategy":      result.Content,
		"Keywords":      req.TargetKeywords,
		"Created Date":  time.Now().UTC().Format(time.RFC3339),
		"Status":        "Active",
	})
	if err != nil {
		writeError(w, upstreamErr(stage, err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"strategy_id":      recordID,
		"content_strategy": result.Content,
		"model_used":       result.Model,
		"generation_time":  result.GenerationTime,
	})
}
