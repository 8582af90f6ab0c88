package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"curator/internal/config"
	"curator/internal/domain"
)

// Service runs analysis requests against an ordered provider chain.
// Each provider is tried in turn; only when every one of them fails
// does the caller see an error.
type Service struct {
	providers []Provider
	logger    *slog.Logger
}

func NewService(providers []Provider, logger *slog.Logger) *Service {
	return &Service{
		providers: providers,
		logger:    logger.With("component", "ai"),
	}
}

// NewProvidersFromConfig builds the provider chain in config order.
func NewProvidersFromConfig(cfg config.AIConfig, logger *slog.Logger) ([]Provider, error) {
	if len(cfg.Providers) == 0 {
		return nil, errors.New("no ai providers configured")
	}

	providers := make([]Provider, 0, len(cfg.Providers))
	for _, pc := range cfg.Providers {
		name := pc.Kind + "/" + pc.Model
		switch pc.Kind {
		case "openrouter":
			providers = append(providers, NewOpenRouterProvider(name, pc.Model, pc.APIKey, pc.BaseURL, cfg.RetryDelay, logger))
		case "openai":
			providers = append(providers, NewOpenAIProvider(name, pc.Model, pc.APIKey, pc.BaseURL, cfg.RetryDelay, logger))
		case "anthropic":
			providers = append(providers, NewAnthropicProvider(name, pc.Model, pc.APIKey, cfg.RetryDelay, logger))
		default:
			return nil, fmt.Errorf("unknown ai provider kind %q", pc.Kind)
		}
	}
	return providers, nil
}

// AnalyzeForInbox scores the resource for inbox triage, failing over
// across providers.
func (s *Service) AnalyzeForInbox(ctx context.Context, res *domain.Resource, prefs *domain.UserPreference, extraContent string) (*InboxResult, error) {
	var errs []error
	for _, p := range s.providers {
		result, err := p.AnalyzeForInbox(ctx, res, prefs, extraContent)
		if err == nil {
			s.logger.Info("inbox analysis complete",
				"resource_id", res.ID,
				"provider", p.Name(),
				"score", result.Score,
			)
			return result, nil
		}

		errs = append(errs, err)
		s.logger.Warn("provider failed, trying next",
			"resource_id", res.ID,
			"provider", p.Name(),
			"error", err,
		)
	}
	return nil, fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}

// AnalyzeForVault produces the archival summary for the resource,
// failing over across providers.
func (s *Service) AnalyzeForVault(ctx context.Context, res *domain.Resource, prefs *domain.UserPreference, existingCategories []string, extraContent string) (*VaultResult, error) {
	var errs []error
	for _, p := range s.providers {
		result, err := p.AnalyzeForVault(ctx, res, prefs, existingCategories, extraContent)
		if err == nil {
			s.logger.Info("vault analysis complete",
				"resource_id", res.ID,
				"provider", p.Name(),
				"category", result.SuggestedCategoryName,
			)
			return result, nil
		}

		errs = append(errs, err)
		s.logger.Warn("provider failed, trying next",
			"resource_id", res.ID,
			"provider", p.Name(),
			"error", err,
		)
	}
	return nil, fmt.Errorf("all providers failed: %w", errors.Join(errs...))
}
