package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"curator/internal/domain"
)

// InboxResult is the structured analysis for the inbox triage branch.
// The JSON keys are the compatibility-sensitive contract shared with
// every provider's prompt.
type InboxResult struct {
	CorrectedTitle string   `json:"correctedTitle"`
	Score          int      `json:"score"`
	Verdict        string   `json:"verdict"`
	Summary        string   `json:"summary"`
	SuggestedTags  []string `json:"suggestedTags"`
}

// VaultResult is the structured analysis for the vault archival branch.
type VaultResult struct {
	CorrectedTitle        string   `json:"correctedTitle"`
	Summary               string   `json:"summary"`
	SuggestedTags         []string `json:"suggestedTags"`
	SuggestedCategoryName string   `json:"suggestedCategoryName"`
}

// Provider wraps one underlying LLM backend.
type Provider interface {
	Name() string
	AnalyzeForInbox(ctx context.Context, res *domain.Resource, prefs *domain.UserPreference, extraContent string) (*InboxResult, error)
	AnalyzeForVault(ctx context.Context, res *domain.Resource, prefs *domain.UserPreference, existingCategories []string, extraContent string) (*VaultResult, error)
}

// chatFunc performs a single system+user chat completion.
type chatFunc func(ctx context.Context, system, user string) (string, error)

// provider implements Provider on top of a chatFunc. The raw call is
// retried once with a fixed delay before the error surfaces to the
// failover service.
type provider struct {
	name       string
	retryDelay time.Duration
	logger     *slog.Logger
	chat       chatFunc
}

func (p *provider) Name() string { return p.name }

func (p *provider) AnalyzeForInbox(ctx context.Context, res *domain.Resource, prefs *domain.UserPreference, extraContent string) (*InboxResult, error) {
	system, user := buildInboxPrompts(res, prefs, extraContent)

	content, err := p.callWithRetry(ctx, system, user)
	if err != nil {
		return nil, err
	}

	var payload struct {
		CorrectedTitle *string  `json:"correctedTitle"`
		Score          *int     `json:"score"`
		Verdict        *string  `json:"verdict"`
		Summary        *string  `json:"summary"`
		SuggestedTags  []string `json:"suggestedTags"`
	}
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &payload); err != nil {
		return nil, fmt.Errorf("parse inbox analysis: %w", err)
	}

	result := &InboxResult{
		CorrectedTitle: res.Title,
		Verdict:        "No verdict.",
		Summary:        "No summary.",
		SuggestedTags:  []string{},
	}
	if payload.CorrectedTitle != nil {
		result.CorrectedTitle = *payload.CorrectedTitle
	}
	if payload.Score != nil {
		result.Score = *payload.Score
	}
	if payload.Verdict != nil {
		result.Verdict = *payload.Verdict
	}
	if payload.Summary != nil {
		result.Summary = *payload.Summary
	}
	if payload.SuggestedTags != nil {
		result.SuggestedTags = payload.SuggestedTags
	}
	return result, nil
}

func (p *provider) AnalyzeForVault(ctx context.Context, res *domain.Resource, prefs *domain.UserPreference, existingCategories []string, extraContent string) (*VaultResult, error) {
	system, user := buildVaultPrompts(res, prefs, existingCategories, extraContent)

	content, err := p.callWithRetry(ctx, system, user)
	if err != nil {
		return nil, err
	}

	var payload struct {
		CorrectedTitle        *string  `json:"correctedTitle"`
		Summary               *string  `json:"summary"`
		SuggestedTags         []string `json:"suggestedTags"`
		SuggestedCategoryName *string  `json:"suggestedCategoryName"`
	}
	if err := json.Unmarshal([]byte(cleanJSONResponse(content)), &payload); err != nil {
		return nil, fmt.Errorf("parse vault analysis: %w", err)
	}

	result := &VaultResult{
		CorrectedTitle:        res.Title,
		Summary:               "No summary.",
		SuggestedTags:         []string{},
		SuggestedCategoryName: "General",
	}
	if payload.CorrectedTitle != nil {
		result.CorrectedTitle = *payload.CorrectedTitle
	}
	if payload.Summary != nil {
		result.Summary = *payload.Summary
	}
	if payload.SuggestedTags != nil {
		result.SuggestedTags = payload.SuggestedTags
	}
	if payload.SuggestedCategoryName != nil {
		result.SuggestedCategoryName = *payload.SuggestedCategoryName
	}
	return result, nil
}

func (p *provider) callWithRetry(ctx context.Context, system, user string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= 2; attempt++ {
		text, err := p.chat(ctx, system, user)
		if err == nil && strings.TrimSpace(text) == "" {
			err = errors.New("empty response")
		}
		if err == nil {
			return text, nil
		}

		lastErr = err
		p.logger.Warn("ai call failed",
			"provider", p.name,
			"attempt", attempt,
			"error", err,
		)
		if attempt == 2 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(p.retryDelay):
		}
	}
	return "", fmt.Errorf("provider %s: %w", p.name, lastErr)
}

// cleanJSONResponse strips markdown fences and surrounding prose that
// some models wrap around their JSON output.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
