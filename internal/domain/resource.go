package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResourceKind discriminates the concrete shape of a resource.
type ResourceKind string

const (
	KindVideo   ResourceKind = "video"
	KindArticle ResourceKind = "article"
)

// Status drives visibility in inbox/vault views and the pipeline stage.
type Status string

const (
	StatusNew         Status = "new"
	StatusProcessing  Status = "processing"
	StatusAiAnalysing Status = "ai_analysing"
	StatusInbox       Status = "inbox"
	StatusVault       Status = "vault"
	StatusArchived    Status = "archived"
	StatusTrash       Status = "trash"
	StatusError       Status = "error"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusProcessing, StatusAiAnalysing, StatusInbox,
		StatusVault, StatusArchived, StatusTrash, StatusError:
		return true
	}
	return false
}

const (
	MaxTitleLen       = 500
	MaxDescriptionLen = 2000
)

// Resource is a user-submitted piece of content tracked through the
// pipeline. Kind-specific fields live in the Video/Article payloads;
// exactly one of them is set, matching Kind.
type Resource struct {
	ID             uuid.UUID
	UserID         string
	Kind           ResourceKind
	URL            string
	Title          string
	CorrectedTitle *string
	Description    *string
	ImageURL       *string
	Status         Status
	IsVaultTarget  bool
	CreatedAt      time.Time

	Video   *VideoInfo
	Article *ArticleInfo

	Tags      []Tag
	InboxMeta *InboxMetadata
	VaultMeta *VaultMetadata
}

type VideoInfo struct {
	ChannelName string
	Duration    *time.Duration
	ViewCount   int64
}

type ArticleInfo struct {
	Author             string
	SiteName           string
	ReadingTimeMinutes int
}

// InboxMetadata exists only for resources that went through the
// inbox analysis branch.
type InboxMetadata struct {
	ResourceID uuid.UUID
	AiScore    int
	AiVerdict  string
	AiSummary  string
}

// VaultMetadata exists only for vault-branch resources. A vault
// promotion removes any InboxMetadata on the same resource.
type VaultMetadata struct {
	ResourceID            uuid.UUID
	AiSummary             string
	SuggestedCategoryName *string
	CategoryID            *uuid.UUID
	UserNote              *string
	PromotedToVaultAt     *time.Time
}

// Tag names are lowercase-trimmed and unique per user.
type Tag struct {
	ID     uuid.UUID `db:"id"`
	UserID string    `db:"user_id"`
	Name   string    `db:"name"`
}

type Category struct {
	ID     uuid.UUID `db:"id"`
	UserID string    `db:"user_id"`
	Name   string    `db:"name"`
}

// UserPreference is the per-user context embedded into AI prompts.
// All fields are optional; analysis proceeds with generic defaults.
type UserPreference struct {
	UserID              string  `db:"user_id"`
	ProfessionalContext *string `db:"professional_context"`
	LearningGoals       *string `db:"learning_goals"`
	Hobbies             *string `db:"hobbies"`
	TopicsToAvoid       *string `db:"topics_to_avoid"`
}

// TruncateTitle caps s at MaxTitleLen, marking the cut with an ellipsis.
func TruncateTitle(s string) string {
	return truncate(s, MaxTitleLen)
}

// TruncateDescription caps s at MaxDescriptionLen, marking the cut
// with an ellipsis.
func TruncateDescription(s string) string {
	return truncate(s, MaxDescriptionLen)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
