// OpenAI Provider implementation using go-openai library.
//
// Information Hiding:
// - API endpoint and authentication
// - Request/response format for OpenAI Chat Completions API

package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements the Provider interface for OpenAI.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider for the given model.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// Model returns the current model.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Complete sends a completion request.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (Response, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return Response{}, fmt.Errorf("completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return Response{}, fmt.Errorf("empty response from OpenAI")
	}
	choice := resp.Choices[0]

	var usage *TokenUsage
	if resp.Usage.TotalTokens > 0 {
		usage = &TokenUsage{
			PromptTokens:     uint32(resp.Usage.PromptTokens),
			CompletionTokens: uint32(resp.Usage.CompletionTokens),
			TotalTokens:      uint32(resp.Usage.TotalTokens),
		}
	}

	return Response{
		Content:    choice.Message.Content,
		Usage:      usage,
		StopReason: string(choice.FinishReason),
	}, nil
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
