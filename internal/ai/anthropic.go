package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// NewAnthropicProvider builds a provider on the Anthropic messages API.
func NewAnthropicProvider(name, model, apiKey string, retryDelay time.Duration, logger *slog.Logger) Provider {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &provider{
		name:       name,
		retryDelay: retryDelay,
		logger:     logger,
		chat: func(ctx context.Context, system, user string) (string, error) {
			resp, err := client.Messages.New(ctx, anthropic.MessageNewParams{
				Model:     anthropic.Model(model),
				MaxTokens: 2048,
				System: []anthropic.TextBlockParam{
					{Text: system},
				},
				Messages: []anthropic.MessageParam{
					anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
				},
			})
			if err != nil {
				return "", fmt.Errorf("create message: %w", err)
			}
			if len(resp.Content) == 0 {
				return "", errors.New("no content in response")
			}
			return resp.Content[0].Text, nil
		},
	}
}
