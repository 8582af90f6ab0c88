package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"curator/internal/domain"
	"curator/internal/storage/postgres"
)

// AnalysisJob is the second pipeline stage: it gathers full-text
// context, runs the AI analysis for the resource's target collection
// and finalizes status, tags and metadata.
type AnalysisJob struct {
	resources   ResourceStore
	metadata    MetadataStore
	tags        TagStore
	categories  CategoryStore
	preferences PreferenceStore
	fetchers    []ContentFetcher
	analyzer    Analyzer
	tx          TransactionManager
	logger      *slog.Logger
}

func NewAnalysisJob(
	resources ResourceStore,
	metadata MetadataStore,
	tags TagStore,
	categories CategoryStore,
	preferences PreferenceStore,
	fetchers []ContentFetcher,
	analyzer Analyzer,
	tx TransactionManager,
	logger *slog.Logger,
) *AnalysisJob {
	return &AnalysisJob{
		resources:   resources,
		metadata:    metadata,
		tags:        tags,
		categories:  categories,
		preferences: preferences,
		fetchers:    fetchers,
		analyzer:    analyzer,
		tx:          tx,
		logger:      logger.With("component", "analysis_job"),
	}
}

// Process runs the analysis stage for one resource. A missing resource
// is a silent no-op; any other failure flips the resource to the error
// status and propagates for runner retry accounting.
func (j *AnalysisJob) Process(ctx context.Context, resourceID uuid.UUID) error {
	res, err := j.resources.GetByID(ctx, resourceID)
	if errors.Is(err, postgres.ErrNotFound) {
		j.logger.Info("resource gone, skipping analysis", "resource_id", resourceID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load resource: %w", err)
	}

	if err := j.resources.UpdateStatus(ctx, res.ID, domain.StatusAiAnalysing); err != nil {
		return fmt.Errorf("mark analysing: %w", err)
	}

	if err := j.analyze(ctx, res); err != nil {
		j.logger.Error("analysis failed",
			"resource_id", res.ID,
			"vault_target", res.IsVaultTarget,
			"error", err,
		)
		// Best effort; the original error is the one that matters.
		_ = j.resources.UpdateStatus(ctx, res.ID, domain.StatusError)
		return err
	}

	j.logger.Info("analysis complete",
		"resource_id", res.ID,
		"status", res.Status,
	)
	return nil
}

func (j *AnalysisJob) analyze(ctx context.Context, res *domain.Resource) error {
	prefs, err := j.preferences.GetByUserID(ctx, res.UserID)
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}

	extraContent := j.fetchExtraContent(ctx, res)

	if res.IsVaultTarget {
		return j.analyzeForVault(ctx, res, prefs, extraContent)
	}
	return j.analyzeForInbox(ctx, res, prefs, extraContent)
}

// fetchExtraContent is best-effort enrichment; analysis proceeds on
// metadata alone when no fetcher claims the resource or the fetch
// comes back empty.
func (j *AnalysisJob) fetchExtraContent(ctx context.Context, res *domain.Resource) string {
	for _, f := range j.fetchers {
		if !f.CanHandle(res.URL) {
			continue
		}
		content, err := f.FetchContent(ctx, res)
		if err != nil {
			j.logger.Warn("content fetch failed", "resource_id", res.ID, "error", err)
			return ""
		}
		return content
	}
	return ""
}

func (j *AnalysisJob) analyzeForInbox(ctx context.Context, res *domain.Resource, prefs *domain.UserPreference, extraContent string) error {
	result, err := j.analyzer.AnalyzeForInbox(ctx, res, prefs, extraContent)
	if err != nil {
		return err
	}

	return j.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := j.metadata.UpsertInbox(ctx, &domain.InboxMetadata{
			ResourceID: res.ID,
			AiScore:    result.Score,
			AiVerdict:  result.Verdict,
			AiSummary:  result.Summary,
		}); err != nil {
			return fmt.Errorf("upsert inbox metadata: %w", err)
		}

		if err := j.resolveTags(ctx, res, result.SuggestedTags); err != nil {
			return err
		}

		corrected := domain.TruncateTitle(result.CorrectedTitle)
		res.CorrectedTitle = &corrected
		res.Status = domain.StatusInbox
		if err := j.resources.Update(ctx, res); err != nil {
			return fmt.Errorf("persist resource: %w", err)
		}
		return nil
	})
}

func (j *AnalysisJob) analyzeForVault(ctx context.Context, res *domain.Resource, prefs *domain.UserPreference, extraContent string) error {
	categories, err := j.categories.NamesForUser(ctx, res.UserID)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}

	result, err := j.analyzer.AnalyzeForVault(ctx, res, prefs, categories, extraContent)
	if err != nil {
		return err
	}

	return j.tx.WithTransaction(ctx, func(ctx context.Context) error {
		meta := res.VaultMeta
		if meta == nil {
			meta = &domain.VaultMetadata{ResourceID: res.ID}
		}
		meta.AiSummary = result.Summary
		if meta.PromotedToVaultAt == nil {
			now := time.Now().UTC()
			meta.PromotedToVaultAt = &now
		}

		// A category assigned at creation time wins over the AI
		// suggestion.
		if meta.CategoryID == nil {
			if err := j.resolveCategory(ctx, res.UserID, meta, result.SuggestedCategoryName); err != nil {
				return err
			}
		}

		if err := j.metadata.UpsertVault(ctx, meta); err != nil {
			return fmt.Errorf("upsert vault metadata: %w", err)
		}
		// The resource leaves the inbox track for good.
		if err := j.metadata.DeleteInbox(ctx, res.ID); err != nil {
			return fmt.Errorf("delete inbox metadata: %w", err)
		}

		if err := j.resolveTags(ctx, res, result.SuggestedTags); err != nil {
			return err
		}

		corrected := domain.TruncateTitle(result.CorrectedTitle)
		res.CorrectedTitle = &corrected
		res.Status = domain.StatusVault
		if err := j.resources.Update(ctx, res); err != nil {
			return fmt.Errorf("persist resource: %w", err)
		}
		return nil
	})
}

// resolveCategory matches the suggested name against the user's
// categories. A resolved id clears the suggestion; no match stores the
// suggestion for the user to decide later.
func (j *AnalysisJob) resolveCategory(ctx context.Context, userID string, meta *domain.VaultMetadata, suggested string) error {
	suggested = strings.TrimSpace(suggested)
	if suggested == "" {
		return nil
	}

	id, err := j.categories.IDByName(ctx, userID, suggested)
	if errors.Is(err, postgres.ErrNotFound) {
		meta.SuggestedCategoryName = &suggested
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolve category: %w", err)
	}

	meta.CategoryID = &id
	meta.SuggestedCategoryName = nil
	return nil
}

// resolveTags replaces the resource's tag set with the suggestions,
// normalized to lowercase-trimmed names and deduplicated through the
// per-user unique index.
func (j *AnalysisJob) resolveTags(ctx context.Context, res *domain.Resource, suggested []string) error {
	if err := j.tags.ClearResourceTags(ctx, res.ID); err != nil {
		return fmt.Errorf("clear tags: %w", err)
	}

	for _, name := range suggested {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		tag, err := j.tags.FindByName(ctx, res.UserID, name)
		if errors.Is(err, postgres.ErrNotFound) {
			tag = &domain.Tag{ID: uuid.New(), UserID: res.UserID, Name: name}
			if err := j.tags.Create(ctx, tag); err != nil {
				return fmt.Errorf("create tag %q: %w", name, err)
			}
		} else if err != nil {
			return fmt.Errorf("find tag %q: %w", name, err)
		}

		if err := j.tags.Attach(ctx, res.ID, tag.ID); err != nil {
			return fmt.Errorf("attach tag %q: %w", name, err)
		}
	}
	return nil
}
