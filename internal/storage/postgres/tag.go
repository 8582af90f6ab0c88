package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"curator/internal/domain"
)

type TagStore struct {
	db *sqlx.DB
}

func NewTagStore(db *sqlx.DB) *TagStore {
	return &TagStore{db: db}
}

// FindByName looks up a tag by its normalized name, bypassing
// per-user visibility filtering (system context).
func (s *TagStore) FindByName(ctx context.Context, userID, name string) (*domain.Tag, error) {
	exec := GetExecutor(ctx, s.db)
	var tag domain.Tag
	err := sqlx.GetContext(ctx, exec, &tag,
		`SELECT id, user_id, name FROM tags WHERE user_id = $1 AND name = $2`, userID, name)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Create inserts a tag. The unique (user_id, name) index is the final
// guard against concurrent creation; on conflict the existing row's id
// is returned instead.
func (s *TagStore) Create(ctx context.Context, tag *domain.Tag) error {
	exec := GetExecutor(ctx, s.db)
	return sqlx.GetContext(ctx, exec, &tag.ID, `
		INSERT INTO tags (id, user_id, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		tag.ID, tag.UserID, tag.Name,
	)
}

// ClearResourceTags removes all tag associations for a resource.
func (s *TagStore) ClearResourceTags(ctx context.Context, resourceID uuid.UUID) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, `DELETE FROM resource_tags WHERE resource_id = $1`, resourceID)
	return err
}

// Attach links a tag to a resource, idempotently.
func (s *TagStore) Attach(ctx context.Context, resourceID, tagID uuid.UUID) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, `
		INSERT INTO resource_tags (resource_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		resourceID, tagID,
	)
	return err
}

func (s *TagStore) GetByResourceID(ctx context.Context, resourceID uuid.UUID) ([]domain.Tag, error) {
	exec := GetExecutor(ctx, s.db)
	var tags []domain.Tag
	err := sqlx.SelectContext(ctx, exec, &tags, `
		SELECT t.id, t.user_id, t.name
		FROM tags t
		INNER JOIN resource_tags rt ON rt.tag_id = t.id
		WHERE rt.resource_id = $1
		ORDER BY t.name`, resourceID)
	return tags, err
}
