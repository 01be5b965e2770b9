package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"multilingual-chatbot/pkg/openaicompat"
)

// OpenAICompatAdapter adapts pkg/openaicompat to llmprovider.Provider interface
type OpenAICompatAdapter struct {
	client openaicompat.IClient
	name   string
}

// NewOpenAICompatAdapter creates a new adapter. An empty name defaults to "openai".
func NewOpenAICompatAdapter(client openaicompat.IClient, name string) *OpenAICompatAdapter {
	if name == "" {
		name = ProviderOpenAI
	}
	return &OpenAICompatAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Prompt == "" {
		return nil, ErrInvalidRequest
	}

	resp, err := a.client.Complete(ctx, &openaicompat.Request{
		Prompt:      req.Prompt,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		Stop:        req.Stop,
	})
	if err != nil {
		if errors.Is(err, openaicompat.ErrRateLimited) {
			err = fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
		}
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}
