package generation

import (
	"context"
	"strings"
	"time"

	"github.com/howaiconnects/seogate/config"
	"github.com/howaiconnects/seogate/internal/logger"
	"github.com/howaiconnects/seogate/llm"
)

// Service runs generation calls against two provider instances, one per
// quality tier.
type Service struct {
	high     llm.Provider
	standard llm.Provider
}

// NewService builds a Service from the configured provider and tier models.
func NewService(cfg config.LLMConfig) (*Service, error) {
	pt, err := llm.ParseProviderType(cfg.Provider)
	if err != nil {
		return nil, err
	}

	high, err := llm.New(pt, cfg.APIKey, cfg.HighTierModel)
	if err != nil {
		return nil, err
	}
	standard, err := llm.New(pt, cfg.APIKey, cfg.StandardTierModel)
	if err != nil {
		return nil, err
	}

	return &Service{high: high, standard: standard}, nil
}

// NewServiceWithProviders builds a Service from explicit providers.
// Used by tests to inject fakes.
func NewServiceWithProviders(high, standard llm.Provider) *Service {
	return &Service{high: high, standard: standard}
}

func (s *Service) provider(tier Tier) llm.Provider {
	if tier == TierHigh {
		return s.high
	}
	return s.standard
}

// Generate runs one generation call at the given tier, recording the
// wall-clock duration of the remote call. Provider failures are wrapped
// in GenerationError.
func (s *Service) Generate(ctx context.Context, tier Tier, opts GenerateOptions) (*GenerationResult, error) {
	p := s.provider(tier)
	start := time.Now()

	resp, err := p.Complete(ctx, llm.Request{
		System:      opts.System,
		Prompt:      opts.Prompt,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})
	if err != nil {
		logger.Log.WithField("model", p.Model()).Errorf("generation error: %v", err)
		return nil, &GenerationError{Model: p.Model(), Err: err}
	}

	return &GenerationResult{
		Content:        resp.Content,
		Model:          p.Model(),
		GenerationTime: time.Since(start).Seconds(),
		Usage:          resp.Usage,
		StopReason:     resp.StopReason,
	}, nil
}

// HealthCheck performs a minimal generation call at the standard tier and
// reports availability. Failures are logged, never propagated.
func (s *Service) HealthCheck(ctx context.Context) bool {
	result, err := s.Generate(ctx, TierStandard, GenerateOptions{
		Prompt:      "Say 'healthy' if you can respond",
		MaxTokens:   10,
		Temperature: 0,
	})
	if err != nil {
		logger.Log.Errorf("generation health check failed: %v", err)
		return false
	}
	return strings.Contains(strings.ToLower(result.Content), "healthy")
}

// ModelInfo describes one available tier.
type ModelInfo struct {
	Model    string   `json:"model_id"`
	Provider string   `json:"provider"`
	UseCases []string `json:"use_cases"`
}

// ModelInfos returns the configured models per tier.
func (s *Service) ModelInfos() map[Tier]ModelInfo {
	return map[Tier]ModelInfo{
		TierHigh: {
			Model:    s.high.Model(),
			Provider: s.high.Name(),
			UseCases: []string{"Complex analysis", "High-quality content generation", "Strategic planning"},
		},
		TierStandard: {
			Model:    s.standard.Model(),
			Provider: s.standard.Name(),
			UseCases: []string{"Content analysis", "Keyword research", "General SEO tasks"},
		},
	}
}
