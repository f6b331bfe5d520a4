// Package generation invokes tiered generative models and turns their
// free-form output into structured SEO analyses.
package generation

import (
	"encoding/json"
	"fmt"

	"github.com/howaiconnects/seogate/llm"
)

// Tier selects between the two configured model qualities.
type Tier string

const (
	// TierHigh is the higher-quality, more expensive model.
	TierHigh Tier = "high"
	// TierStandard is the faster, cheaper model.
	TierStandard Tier = "standard"
)

// Sampling defaults per tier, carried from the upstream service contract.
const (
	HighMaxTokens       = 4000
	HighTemperature     = 0.3
	StandardMaxTokens   = 3000
	StandardTemperature = 0.5
)

// GenerateOptions are the parameters of a single generation call.
type GenerateOptions struct {
	Prompt      string
	System      string
	MaxTokens   int
	Temperature float64
}

// GenerationResult is the outcome of one generation call.
type GenerationResult struct {
	Content        string          `json:"content"`
	Model          string          `json:"model"`
	GenerationTime float64         `json:"generation_time"`
	Usage          *llm.TokenUsage `json:"usage,omitempty"`
	StopReason     string          `json:"stop_reason,omitempty"`
}

// GenerationError wraps a provider-level failure, keeping the provider's
// error detail in the message.
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Model, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Analysis is the structured result of an analysis call. Extensions
// holds analysis-type-specific fields and is flattened into the JSON
// encoding alongside the fixed fields.
type Analysis struct {
	Summary         string             `json:"summary"`
	Recommendations []string           `json:"recommendations"`
	PriorityFixes   []string           `json:"priority_fixes"`
	NextSteps       []string           `json:"next_steps"`
	Scores          map[string]float64 `json:"scores"`

	Extensions map[string]any `json:"-"`

	RawAnalysis    string  `json:"raw_analysis"`
	ModelUsed      string  `json:"model_used"`
	GenerationTime float64 `json:"generation_time"`
}

// MarshalJSON flattens Extensions into the top-level object.
func (a Analysis) MarshalJSON() ([]byte, error) {
	type base Analysis
	raw, err := json.Marshal(base(a))
	if err != nil {
		return nil, err
	}

	if len(a.Extensions) == 0 {
		return raw, nil
	}

	var merged map[string]any
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, err
	}
	for key, value := range a.Extensions {
		merged[key] = value
	}
	return json.Marshal(merged)
}

// Ext returns the named extension field, or nil.
func (a *Analysis) Ext(key string) any {
	if a.Extensions == nil {
		return nil
	}
	return a.Extensions[key]
}

// ExtFloat returns a numeric extension field, or 0 if absent.
func (a *Analysis) ExtFloat(key string) float64 {
	return toFloat(a.Ext(key))
}

// SubScore returns a numeric field nested one level inside an extension
// section, or 0 if either level is absent.
func (a *Analysis) SubScore(section, field string) float64 {
	m, ok := a.Ext(section).(map[string]any)
	if !ok {
		return 0
	}
	return toFloat(m[field])
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

// BatchRequest is one independent analysis request in a batch.
type BatchRequest struct {
	Prompt       string `json:"prompt"`
	Content      string `json:"content"`
	AnalysisType string `json:"analysis_type"`
}

// BatchResult is the outcome of one batch entry. RequestIndex mirrors
// the input position, not completion order.
type BatchResult struct {
	Success      bool      `json:"success"`
	Result       *Analysis `json:"result,omitempty"`
	Error        string    `json:"error,omitempty"`
	RequestIndex int       `json:"request_index"`
}
