package generation

import (
	"context"

	"github.com/howaiconnects/seogate/internal/logger"
)

// System prompts for high-tier analysis, keyed by analysis type.
// Unrecognized types fall back to the comprehensive audit prompt.
var analysisSystemPrompts = map[string]string{
	"comprehensive_seo_audit": `You are an expert SEO analyst with deep knowledge of search engine optimization, content strategy, and digital marketing. Analyze the provided content and website data to provide comprehensive SEO recommendations. Focus on:

1. Technical SEO opportunities
2. Content optimization strategies
3. Keyword targeting improvements
4. User experience enhancements
5. Competitive positioning
6. Implementation priorities

Provide actionable, specific recommendations with expected impact and implementation difficulty.`,

	"keyword_opportunity_analysis": `You are a keyword research specialist with expertise in search intent analysis, competitive research, and content strategy. Analyze the provided keyword data to identify high-value opportunities. Focus on:

1. Search intent classification
2. Content type recommendations
3. Competitive gap analysis
4. Traffic potential assessment
5. Content cluster opportunities
6. Long-tail keyword expansion

Provide strategic insights for content planning and SEO optimization.`,

	"competitive_intelligence": `You are a competitive intelligence analyst specializing in digital marketing and SEO strategy. Analyze competitor data to identify strategic opportunities. Focus on:

1. Content gap analysis
2. Keyword opportunity identification
3. Technical advantage assessment
4. Market positioning insights
5. Strategic recommendations
6. Implementation priorities

Provide actionable competitive intelligence for strategic planning.`,
}

// standardAnalysisSystemPrompt is the fixed system prompt for standard
// tier analysis calls.
const standardAnalysisSystemPrompt = `You are an SEO content analyst. Analyze the provided content for SEO optimization opportunities. Focus on keyword usage, content structure, readability, and technical SEO elements. Provide specific, actionable recommendations.`

// Analysis-call sampling parameters per tier.
const (
	highAnalysisMaxTokens       = 6000
	highAnalysisTemperature     = 0.2
	standardAnalysisMaxTokens   = 4000
	standardAnalysisTemperature = 0.3
)

// AnalyzeWith runs an analysis call at the given tier: it combines the
// caller instruction with the content under analysis, invokes the model
// with a type-specific system prompt and low temperature, and parses the
// response into a structured Analysis.
func (s *Service) AnalyzeWith(ctx context.Context, tier Tier, prompt, content, analysisType string) (*Analysis, error) {
	opts := GenerateOptions{
		Prompt:      prompt + "\n\nContent to analyze:\n" + content,
		MaxTokens:   standardAnalysisMaxTokens,
		Temperature: standardAnalysisTemperature,
		System:      standardAnalysisSystemPrompt,
	}
	if tier == TierHigh {
		system, ok := analysisSystemPrompts[analysisType]
		if !ok {
			system = analysisSystemPrompts["comprehensive_seo_audit"]
		}
		opts.System = system
		opts.MaxTokens = highAnalysisMaxTokens
		opts.Temperature = highAnalysisTemperature
	}

	result, err := s.Generate(ctx, tier, opts)
	if err != nil {
		return nil, err
	}

	parsed := parseAnalysis(result.Content, analysisType)
	parsed.RawAnalysis = result.Content
	parsed.ModelUsed = result.Model
	parsed.GenerationTime = result.GenerationTime
	return parsed, nil
}

// BatchAnalyze runs independent analysis requests concurrently. The
// returned slice mirrors the input ordering; a failing request is
// reported in place without aborting the rest of the batch.
func (s *Service) BatchAnalyze(ctx context.Context, tier Tier, requests []BatchRequest) []BatchResult {
	type taskResult struct {
		index    int
		analysis *Analysis
		err      error
	}

	// Buffered channel prevents goroutine leaks
	results := make(chan taskResult, len(requests))

	for i, req := range requests {
		go func(idx int, req BatchRequest) {
			if ctx.Err() != nil {
				results <- taskResult{index: idx, err: ctx.Err()}
				return
			}
			analysis, err := s.AnalyzeWith(ctx, tier, req.Prompt, req.Content, req.AnalysisType)
			results <- taskResult{index: idx, analysis: analysis, err: err}
		}(i, req)
	}

	out := make([]BatchResult, len(requests))
	for range requests {
		r := <-results
		if r.err != nil {
			logger.Log.Errorf("batch analysis failed for request %d: %v", r.index, r.err)
			out[r.index] = BatchResult{Success: false, Error: r.err.Error(), RequestIndex: r.index}
		} else {
			out[r.index] = BatchResult{Success: true, Result: r.analysis, RequestIndex: r.index}
		}
	}
	return out
}
