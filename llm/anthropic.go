// Anthropic Provider implementation using official anthropic-sdk-go.
//
// Information Hiding:
// - API endpoint and authentication
// - Request/response format for Anthropic Messages API

package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicProvider implements the Provider interface for Anthropic Claude.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

// NewAnthropicProvider creates a new Anthropic provider for the given model.
func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &AnthropicProvider{
		client: client,
		model:  model,
	}
}

// Name returns the provider name.
func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

// Model returns the current model.
func (p *AnthropicProvider) Model() string {
	return p.model
}

// Complete sends a completion request.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (Response, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		Temperature: anthropic.Float(req.Temperature),
	}

	if req.System != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: req.System},
		}
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return Response{}, fmt.Errorf("completion failed: %w", err)
	}

	content := ""
	for _, block := range message.Content {
		switch variant := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += variant.Text
		}
	}

	var usage *TokenUsage
	if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
		usage = &TokenUsage{
			PromptTokens:     uint32(message.Usage.InputTokens),
			CompletionTokens: uint32(message.Usage.OutputTokens),
			TotalTokens:      uint32(message.Usage.InputTokens + message.Usage.OutputTokens),
		}
	}

	return Response{
		Content:    content,
		Usage:      usage,
		StopReason: string(message.StopReason),
	}, nil
}

// Verify AnthropicProvider implements Provider
var _ Provider = (*AnthropicProvider)(nil)
