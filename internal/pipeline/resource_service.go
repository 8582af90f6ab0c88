package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"curator/internal/domain"
	"curator/internal/storage/postgres"
	"curator/internal/youtube"
)

// ErrInvalidStatus rejects status values outside the state machine.
var ErrInvalidStatus = errors.New("invalid status")

// ResourceService is the user-facing entry point into the pipeline:
// submission, manual moves and the retry/delete actions. Every method
// here runs in request context and enforces per-user ownership.
type ResourceService struct {
	resources  ResourceStore
	metadata   MetadataStore
	categories CategoryStore
	queue      Publisher
	tx         TransactionManager
	logger     *slog.Logger
}

func NewResourceService(
	resources ResourceStore,
	metadata MetadataStore,
	categories CategoryStore,
	queue Publisher,
	tx TransactionManager,
	logger *slog.Logger,
) *ResourceService {
	return &ResourceService{
		resources:  resources,
		metadata:   metadata,
		categories: categories,
		queue:      queue,
		tx:         tx,
		logger:     logger.With("component", "resource_service"),
	}
}

// Create registers a submitted URL and kicks off processing. The
// returned id is usable immediately; ingestion happens asynchronously.
func (s *ResourceService) Create(ctx context.Context, userID, rawURL string, addToVault bool, categoryID *uuid.UUID) (uuid.UUID, error) {
	kind := domain.KindArticle
	if youtube.IsVideoURL(rawURL) {
		kind = domain.KindVideo
	}

	res := &domain.Resource{
		ID:            uuid.New(),
		UserID:        userID,
		Kind:          kind,
		URL:           rawURL,
		Title:         rawURL, // placeholder until ingestion fetches the real one
		Status:        domain.StatusNew,
		IsVaultTarget: addToVault,
		CreatedAt:     time.Now().UTC(),
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.resources.Create(ctx, res); err != nil {
			return fmt.Errorf("create resource: %w", err)
		}

		if addToVault {
			if categoryID != nil {
				ok, err := s.categories.ExistsForUser(ctx, *categoryID, userID)
				if err != nil {
					return fmt.Errorf("check category: %w", err)
				}
				if !ok {
					return postgres.ErrNotFound
				}
			}
			// Vault targets carry their promotion time from the moment
			// of submission, not from when analysis finishes.
			now := time.Now().UTC()
			if err := s.metadata.UpsertVault(ctx, &domain.VaultMetadata{
				ResourceID:        res.ID,
				CategoryID:        categoryID,
				PromotedToVaultAt: &now,
			}); err != nil {
				return fmt.Errorf("create vault metadata: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.queue.EnqueueIngestion(ctx, res.ID); err != nil {
		return uuid.Nil, fmt.Errorf("enqueue ingestion: %w", err)
	}

	s.logger.Info("resource created",
		"resource_id", res.ID,
		"user_id", userID,
		"kind", kind,
		"vault_target", addToVault,
	)
	return res.ID, nil
}

// Retry restarts processing for a resource the user owns. Any stale
// inbox analysis is discarded so the rerun starts clean.
func (s *ResourceService) Retry(ctx context.Context, resourceID uuid.UUID, userID string) error {
	res, err := s.resources.GetByIDForUser(ctx, resourceID, userID)
	if err != nil {
		return err
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.resources.UpdateStatus(ctx, res.ID, domain.StatusProcessing); err != nil {
			return fmt.Errorf("mark processing: %w", err)
		}
		if err := s.metadata.DeleteInbox(ctx, res.ID); err != nil {
			return fmt.Errorf("clear inbox metadata: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.queue.EnqueueIngestion(ctx, res.ID); err != nil {
		return fmt.Errorf("enqueue ingestion: %w", err)
	}

	s.logger.Info("resource retry requested", "resource_id", res.ID, "user_id", userID)
	return nil
}

// UpdateStatus performs a manual move between collections. Moving a
// resource into the vault without prior vault analysis stamps the
// promotion time now.
func (s *ResourceService) UpdateStatus(ctx context.Context, resourceID uuid.UUID, userID string, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	res, err := s.resources.GetByIDForUser(ctx, resourceID, userID)
	if err != nil {
		return err
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if status == domain.StatusVault {
			if res.VaultMeta == nil {
				now := time.Now().UTC()
				if err := s.metadata.UpsertVault(ctx, &domain.VaultMetadata{
					ResourceID:        res.ID,
					PromotedToVaultAt: &now,
				}); err != nil {
					return fmt.Errorf("create vault metadata: %w", err)
				}
			} else if res.VaultMeta.PromotedToVaultAt == nil {
				// Metadata created by a category pre-assignment has no
				// promotion time yet; the manual move supplies it.
				now := time.Now().UTC()
				res.VaultMeta.PromotedToVaultAt = &now
				if err := s.metadata.UpsertVault(ctx, res.VaultMeta); err != nil {
					return fmt.Errorf("backfill vault metadata: %w", err)
				}
			}
		}
		if err := s.resources.UpdateStatus(ctx, res.ID, status); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		return nil
	})
}

// AssignCategory sets or clears the vault category explicitly. An
// explicit assignment supersedes any pending AI suggestion.
func (s *ResourceService) AssignCategory(ctx context.Context, resourceID uuid.UUID, userID string, categoryID *uuid.UUID) error {
	res, err := s.resources.GetByIDForUser(ctx, resourceID, userID)
	if err != nil {
		return err
	}

	if categoryID != nil {
		ok, err := s.categories.ExistsForUser(ctx, *categoryID, userID)
		if err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		if !ok {
			return postgres.ErrNotFound
		}
	}

	meta := res.VaultMeta
	if meta == nil {
		meta = &domain.VaultMetadata{ResourceID: res.ID}
	}
	meta.CategoryID = categoryID
	meta.SuggestedCategoryName = nil

	if err := s.metadata.UpsertVault(ctx, meta); err != nil {
		return fmt.Errorf("assign category: %w", err)
	}
	return nil
}

// Delete is a two-step removal: the first call moves the resource to
// trash, a second call on a trashed resource removes it permanently.
func (s *ResourceService) Delete(ctx context.Context, resourceID uuid.UUID, userID string) error {
	res, err := s.resources.GetByIDForUser(ctx, resourceID, userID)
	if err != nil {
		return err
	}

	if res.Status != domain.StatusTrash {
		if err := s.resources.UpdateStatus(ctx, res.ID, domain.StatusTrash); err != nil {
			return fmt.Errorf("move to trash: %w", err)
		}
		return nil
	}

	if err := s.resources.Delete(ctx, res.ID); err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	s.logger.Info("resource permanently deleted", "resource_id", res.ID, "user_id", userID)
	return nil
}
