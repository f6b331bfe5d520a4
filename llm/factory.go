// Provider factory - creates a provider instance for a vendor and model.
//
// The gateway holds two provider instances on the same vendor, one per
// quality tier, so construction takes an explicit model id.

package llm

import (
	"fmt"
	"strings"
)

// ProviderType represents supported generation providers.
type ProviderType int

const (
	// ProviderAnthropic is the Anthropic provider (Claude models).
	ProviderAnthropic ProviderType = iota
	// ProviderOpenAI is the OpenAI provider (GPT models).
	ProviderOpenAI
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini
)

// String returns the string representation of the provider type.
func (p ProviderType) String() string {
	switch p {
	case ProviderAnthropic:
		return "anthropic"
	case ProviderOpenAI:
		return "openai"
	case ProviderGemini:
		return "gemini"
	default:
		return "unknown"
	}
}

// ParseProviderType parses a provider from string (case-insensitive).
func ParseProviderType(s string) (ProviderType, error) {
	switch strings.ToLower(s) {
	case "anthropic", "claude":
		return ProviderAnthropic, nil
	case "openai", "gpt":
		return ProviderOpenAI, nil
	case "gemini", "google":
		return ProviderGemini, nil
	default:
		return 0, fmt.Errorf("unknown provider: %s", s)
	}
}

// New creates a provider of the given type targeting the given model.
func New(pt ProviderType, apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s: API key not configured", pt)
	}
	switch pt {
	case ProviderAnthropic:
		return NewAnthropicProvider(apiKey, model), nil
	case ProviderOpenAI:
		return NewOpenAIProvider(apiKey, model), nil
	case ProviderGemini:
		return NewGeminiProvider(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unknown provider type: %d", pt)
	}
}
