// Package provider wraps the language model used to answer RAG queries.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider runs single-turn chat completions against OpenAI.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a provider. An empty baseURL keeps the SDK default.
// Retries are disabled: every call is one request.
func NewOpenAIProvider(apiKey, model, baseURL string, opts ...option.RequestOption) *OpenAIProvider {
	if model == "" {
		model = openai.ChatModelGPT4o
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}

	if baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(baseURL))
	}

	return &OpenAIProvider{
		client: openai.NewClient(append(clientOpts, opts...)...),
		model:  model,
	}
}

// Complete sends a system and a user message and returns the reply text.
// An empty model falls back to the provider default.
func (provider *OpenAIProvider) Complete(ctx context.Context, model, system, user string) (string, error) {
	if model == "" {
		model = provider.model
	}

	chat, err := provider.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		}),
		Model: openai.F(model),
	})
	if err != nil {
		return "", fmt.Errorf("openai completion error: %w", err)
	}

	if len(chat.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	return chat.Choices[0].Message.Content, nil
}
