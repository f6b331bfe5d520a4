package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/howaiconnects/seogate/config"
	"github.com/howaiconnects/seogate/llm"
)

func TestNewServiceUnknownProvider(t *testing.T) {
	_, err := NewService(config.LLMConfig{Provider: "mystery", APIKey: "k"})
	assert.Error(t, err)
}

func TestNewServiceMissingAPIKey(t *testing.T) {
	_, err := NewService(config.LLMConfig{
		Provider:          "anthropic",
		HighTierModel:     "claude-3-opus-20240229",
		StandardTierModel: "claude-3-sonnet-20240229",
	})
	assert.Error(t, err)
}

func TestGenerateRoutesByTier(t *testing.T) {
	high := staticProvider("fake", "model-high", "high output")
	standard := staticProvider("fake", "model-standard", "standard output")
	svc := NewServiceWithProviders(high, standard)

	ctx := context.Background()

	result, err := svc.Generate(ctx, TierHigh, GenerateOptions{Prompt: "p", MaxTokens: 100, Temperature: 0.2})
	require.NoError(t, err)
	assert.Equal(t, "high output", result.Content)
	assert.Equal(t, "model-high", result.Model)

	result, err = svc.Generate(ctx, TierStandard, GenerateOptions{Prompt: "p", MaxTokens: 100, Temperature: 0.2})
	require.NoError(t, err)
	assert.Equal(t, "standard output", result.Content)
	assert.Equal(t, "model-standard", result.Model)
}

func TestGeneratePassesSamplingParameters(t *testing.T) {
	p := staticProvider("fake", "m", "ok")
	svc := NewServiceWithProviders(p, p)

	_, err := svc.Generate(context.Background(), TierHigh, GenerateOptions{
		System:      "be terse",
		Prompt:      "hello",
		MaxTokens:   123,
		Temperature: 0.7,
	})
	require.NoError(t, err)

	reqs := p.recorded()
	require.Len(t, reqs, 1)
	assert.Equal(t, "be terse", reqs[0].System)
	assert.Equal(t, "hello", reqs[0].Prompt)
	assert.Equal(t, 123, reqs[0].MaxTokens)
	assert.Equal(t, 0.7, reqs[0].Temperature)
}

func TestGenerateWrapsProviderError(t *testing.T) {
	boom := errors.New("connection reset")
	p := &fakeProvider{
		name:  "fake",
		model: "model-x",
		respond: func(llm.Request) (llm.Response, error) {
			return llm.Response{}, boom
		},
	}
	svc := NewServiceWithProviders(p, p)

	_, err := svc.Generate(context.Background(), TierHigh, GenerateOptions{Prompt: "p"})
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "model-x", genErr.Model)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "model-x generation failed")
}

func TestHealthCheck(t *testing.T) {
	svc := NewServiceWithProviders(
		staticProvider("fake", "h", "unused"),
		staticProvider("fake", "s", "Healthy and ready"),
	)
	assert.True(t, svc.HealthCheck(context.Background()))

	svc = NewServiceWithProviders(
		staticProvider("fake", "h", "unused"),
		staticProvider("fake", "s", "cannot comply"),
	)
	assert.False(t, svc.HealthCheck(context.Background()))

	failing := &fakeProvider{
		name:  "fake",
		model: "s",
		respond: func(llm.Request) (llm.Response, error) {
			return llm.Response{}, errors.New("down")
		},
	}
	svc = NewServiceWithProviders(staticProvider("fake", "h", "unused"), failing)
	assert.False(t, svc.HealthCheck(context.Background()))
}

func TestModelInfos(t *testing.T) {
	svc := NewServiceWithProviders(
		staticProvider("anthropic", "model-high", ""),
		staticProvider("anthropic", "model-standard", ""),
	)

	infos := svc.ModelInfos()
	require.Len(t, infos, 2)
	assert.Equal(t, "model-high", infos[TierHigh].Model)
	assert.Equal(t, "model-standard", infos[TierStandard].Model)
	assert.Equal(t, "anthropic", infos[TierHigh].Provider)
	assert.NotEmpty(t, infos[TierHigh].UseCases)
}
