package pipeline

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"curator/internal/ai"
	"curator/internal/domain"
	"curator/internal/youtube"
)

// ResourceStore is the persistence surface the pipeline mutates.
type ResourceStore interface {
	Create(ctx context.Context, res *domain.Resource) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Resource, error)
	GetByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*domain.Resource, error)
	Update(ctx context.Context, res *domain.Resource) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
	ListIDsByStatus(ctx context.Context, status domain.Status) ([]uuid.UUID, error)
	UpdateStatusBatch(ctx context.Context, ids []uuid.UUID, status domain.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MetadataStore interface {
	UpsertInbox(ctx context.Context, meta *domain.InboxMetadata) error
	DeleteInbox(ctx context.Context, resourceID uuid.UUID) error
	UpsertVault(ctx context.Context, meta *domain.VaultMetadata) error
}

type TagStore interface {
	FindByName(ctx context.Context, userID, name string) (*domain.Tag, error)
	Create(ctx context.Context, tag *domain.Tag) error
	ClearResourceTags(ctx context.Context, resourceID uuid.UUID) error
	Attach(ctx context.Context, resourceID, tagID uuid.UUID) error
}

type CategoryStore interface {
	NamesForUser(ctx context.Context, userID string) ([]string, error)
	IDByName(ctx context.Context, userID, name string) (uuid.UUID, error)
	ExistsForUser(ctx context.Context, id uuid.UUID, userID string) (bool, error)
}

type PreferenceStore interface {
	GetByUserID(ctx context.Context, userID string) (*domain.UserPreference, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher enqueues pipeline jobs on the durable queue.
type Publisher interface {
	EnqueueIngestion(ctx context.Context, resourceID uuid.UUID) error
	EnqueueAnalysis(ctx context.Context, resourceID uuid.UUID) error
}

// ContentFetcher pulls optional full-text context for analysis.
type ContentFetcher interface {
	CanHandle(url string) bool
	FetchContent(ctx context.Context, res *domain.Resource) (string, error)
}

// Analyzer produces structured AI analyses with provider failover.
type Analyzer interface {
	AnalyzeForInbox(ctx context.Context, res *domain.Resource, prefs *domain.UserPreference, extraContent string) (*ai.InboxResult, error)
	AnalyzeForVault(ctx context.Context, res *domain.Resource, prefs *domain.UserPreference, existingCategories []string, extraContent string) (*ai.VaultResult, error)
}

// VideoMetadataClient resolves remote metadata for a video id.
type VideoMetadataClient interface {
	VideoMetadata(ctx context.Context, videoID string) (*youtube.Metadata, error)
}
