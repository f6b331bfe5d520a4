// Package llm provides shared data models for generation providers.
package llm

// Request is a single completion request. Sampling parameters are set
// per call because the gateway varies them by operation (low temperature
// for analysis, higher for creative generation).
type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Response is a completion response from a provider.
type Response struct {
	Content    string
	Usage      *TokenUsage
	StopReason string
}

// TokenUsage contains token usage statistics.
type TokenUsage struct {
	PromptTokens     uint32 `json:"prompt_tokens"`
	CompletionTokens uint32 `json:"completion_tokens"`
	TotalTokens      uint32 `json:"total_tokens"`
}
