// Google Gemini Provider implementation using official google.golang.org/genai SDK.
//
// Information Hiding:
// - API authentication and client creation
// - Request/response format for Gemini API
// - System instruction handling via config

package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiProvider implements the Provider interface for Google Gemini.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	initErr error // Stores client initialization error for deferred reporting
}

// NewGeminiProvider creates a new Gemini provider for the given model.
// If client initialization fails, the error is stored and returned on first use.
func NewGeminiProvider(apiKey, model string) *GeminiProvider {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return &GeminiProvider{
			model:   model,
			initErr: fmt.Errorf("failed to initialize Gemini client: %w", err),
		}
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Model returns the current model.
func (p *GeminiProvider) Model() string {
	return p.model
}

// Complete sends a completion request.
func (p *GeminiProvider) Complete(ctx context.Context, req Request) (Response, error) {
	if p.initErr != nil {
		return Response{}, p.initErr
	}
	if p.client == nil {
		return Response{}, fmt.Errorf("gemini client not initialized")
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	response, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		return Response{}, fmt.Errorf("completion failed: %w", err)
	}

	content := response.Text()
	if content == "" {
		return Response{}, fmt.Errorf("empty response from Gemini")
	}

	var usage *TokenUsage
	if response.UsageMetadata != nil {
		usage = &TokenUsage{
			PromptTokens:     uint32(response.UsageMetadata.PromptTokenCount),
			CompletionTokens: uint32(response.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      uint32(response.UsageMetadata.TotalTokenCount),
		}
	}

	stopReason := ""
	if len(response.Candidates) > 0 {
		stopReason = string(response.Candidates[0].FinishReason)
	}

	return Response{Content: content, Usage: usage, StopReason: stopReason}, nil
}

// Verify GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)
