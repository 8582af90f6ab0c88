package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenAIProvider builds a provider on the OpenAI chat completions
// API. With a base URL override the same code path serves any
// OpenAI-compatible gateway, OpenRouter included.
func NewOpenAIProvider(name, model, apiKey, baseURL string, retryDelay time.Duration, logger *slog.Logger) Provider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)

	return &provider{
		name:       name,
		retryDelay: retryDelay,
		logger:     logger,
		chat: func(ctx context.Context, system, user string) (string, error) {
			resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
				Model: model,
				Messages: []openai.ChatCompletionMessageParamUnion{
					openai.SystemMessage(system),
					openai.UserMessage(user),
				},
			})
			if err != nil {
				return "", fmt.Errorf("chat completion: %w", err)
			}
			if len(resp.Choices) == 0 {
				return "", errors.New("no choices in response")
			}
			return resp.Choices[0].Message.Content, nil
		},
	}
}

// NewOpenRouterProvider is NewOpenAIProvider pointed at OpenRouter.
func NewOpenRouterProvider(name, model, apiKey, baseURL string, retryDelay time.Duration, logger *slog.Logger) Provider {
	if baseURL == "" {
		baseURL = openRouterBaseURL
	}
	return NewOpenAIProvider(name, model, apiKey, baseURL, retryDelay, logger)
}
