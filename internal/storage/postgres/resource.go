package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"curator/internal/domain"
)

// ErrNotFound is returned when a row does not exist or is not owned
// by the requesting user.
var ErrNotFound = errors.New("not found")

type ResourceStore struct {
	db *sqlx.DB
}

func NewResourceStore(db *sqlx.DB) *ResourceStore {
	return &ResourceStore{db: db}
}

type resourceRow struct {
	ID             uuid.UUID      `db:"id"`
	UserID         string         `db:"user_id"`
	Kind           string         `db:"kind"`
	URL            string         `db:"url"`
	Title          string         `db:"title"`
	CorrectedTitle sql.NullString `db:"corrected_title"`
	Description    sql.NullString `db:"description"`
	ImageURL       sql.NullString `db:"image_url"`
	Status         string         `db:"status"`
	IsVaultTarget  bool           `db:"is_vault_target"`
	CreatedAt      time.Time      `db:"created_at"`

	ChannelName     sql.NullString `db:"channel_name"`
	DurationSeconds sql.NullInt64  `db:"duration_seconds"`
	ViewCount       sql.NullInt64  `db:"view_count"`

	Author             sql.NullString `db:"author"`
	SiteName           sql.NullString `db:"site_name"`
	ReadingTimeMinutes sql.NullInt64  `db:"reading_time_minutes"`
}

const resourceColumns = `
	id, user_id, kind, url, title, corrected_title, description, image_url,
	status, is_vault_target, created_at,
	channel_name, duration_seconds, view_count,
	author, site_name, reading_time_minutes`

func (r resourceRow) toDomain() *domain.Resource {
	res := &domain.Resource{
		ID:            r.ID,
		UserID:        r.UserID,
		Kind:          domain.ResourceKind(r.Kind),
		URL:           r.URL,
		Title:         r.Title,
		Status:        domain.Status(r.Status),
		IsVaultTarget: r.IsVaultTarget,
		CreatedAt:     r.CreatedAt,
	}
	if r.CorrectedTitle.Valid {
		res.CorrectedTitle = &r.CorrectedTitle.String
	}
	if r.Description.Valid {
		res.Description = &r.Description.String
	}
	if r.ImageURL.Valid {
		res.ImageURL = &r.ImageURL.String
	}

	switch res.Kind {
	case domain.KindVideo:
		info := &domain.VideoInfo{
			ChannelName: r.ChannelName.String,
			ViewCount:   r.ViewCount.Int64,
		}
		if r.DurationSeconds.Valid {
			d := time.Duration(r.DurationSeconds.Int64) * time.Second
			info.Duration = &d
		}
		res.Video = info
	case domain.KindArticle:
		res.Article = &domain.ArticleInfo{
			Author:             r.Author.String,
			SiteName:           r.SiteName.String,
			ReadingTimeMinutes: int(r.ReadingTimeMinutes.Int64),
		}
	}

	return res
}

func (s *ResourceStore) Create(ctx context.Context, res *domain.Resource) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, `
		INSERT INTO resources (id, user_id, kind, url, title, status, is_vault_target, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		res.ID, res.UserID, res.Kind, res.URL, res.Title, res.Status, res.IsVaultTarget, res.CreatedAt,
	)
	return err
}

// GetByID loads a resource in system context, without per-user
// filtering. Tags and both metadata relations are included.
func (s *ResourceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	return s.get(ctx, `WHERE id = $1`, id)
}

// GetByIDForUser loads a resource only if it belongs to userID.
func (s *ResourceStore) GetByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*domain.Resource, error) {
	return s.get(ctx, `WHERE id = $1 AND user_id = $2`, id, userID)
}

func (s *ResourceStore) get(ctx context.Context, where string, args ...any) (*domain.Resource, error) {
	exec := GetExecutor(ctx, s.db)

	var row resourceRow
	err := sqlx.GetContext(ctx, exec, &row, `SELECT `+resourceColumns+` FROM resources `+where, args...)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	res := row.toDomain()

	if err := sqlx.SelectContext(ctx, exec, &res.Tags, `
		SELECT t.id, t.user_id, t.name
		FROM tags t
		INNER JOIN resource_tags rt ON rt.tag_id = t.id
		WHERE rt.resource_id = $1
		ORDER BY t.name`, res.ID,
	); err != nil {
		return nil, err
	}

	inbox, err := getInboxMeta(ctx, exec, res.ID)
	if err != nil {
		return nil, err
	}
	res.InboxMeta = inbox

	vault, err := getVaultMeta(ctx, exec, res.ID)
	if err != nil {
		return nil, err
	}
	res.VaultMeta = vault

	return res, nil
}

// Update persists the mutable core and kind-specific fields.
func (s *ResourceStore) Update(ctx context.Context, res *domain.Resource) error {
	exec := GetExecutor(ctx, s.db)

	var (
		channelName     *string
		durationSeconds *int64
		viewCount       *int64
		author          *string
		siteName        *string
		readingTime     *int64
	)
	if res.Video != nil {
		channelName = &res.Video.ChannelName
		viewCount = &res.Video.ViewCount
		if res.Video.Duration != nil {
			secs := int64(res.Video.Duration.Seconds())
			durationSeconds = &secs
		}
	}
	if res.Article != nil {
		author = &res.Article.Author
		siteName = &res.Article.SiteName
		minutes := int64(res.Article.ReadingTimeMinutes)
		readingTime = &minutes
	}

	_, err := exec.ExecContext(ctx, `
		UPDATE resources SET
			title = $2,
			corrected_title = $3,
			description = $4,
			image_url = $5,
			status = $6,
			channel_name = $7,
			duration_seconds = $8,
			view_count = $9,
			author = $10,
			site_name = $11,
			reading_time_minutes = $12
		WHERE id = $1`,
		res.ID, res.Title, res.CorrectedTitle, res.Description, res.ImageURL, res.Status,
		channelName, durationSeconds, viewCount, author, siteName, readingTime,
	)
	return err
}

func (s *ResourceStore) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, `UPDATE resources SET status = $2 WHERE id = $1`, id, status)
	return err
}

// ListIDsByStatus returns ids of all resources in the given status,
// system-wide. Used by the recovery sweep.
func (s *ResourceStore) ListIDsByStatus(ctx context.Context, status domain.Status) ([]uuid.UUID, error) {
	exec := GetExecutor(ctx, s.db)
	var ids []uuid.UUID
	err := sqlx.SelectContext(ctx, exec, &ids,
		`SELECT id FROM resources WHERE status = $1 ORDER BY created_at`, status)
	return ids, err
}

// UpdateStatusBatch flips every listed resource to status in a single
// statement.
func (s *ResourceStore) UpdateStatusBatch(ctx context.Context, ids []uuid.UUID, status domain.Status) error {
	if len(ids) == 0 {
		return nil
	}
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx,
		`UPDATE resources SET status = $1 WHERE id = ANY($2)`, status, pq.Array(ids))
	return err
}

func (s *ResourceStore) Delete(ctx context.Context, id uuid.UUID) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id)
	return err
}
