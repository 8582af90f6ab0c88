package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CategoryStore struct {
	db *sqlx.DB
}

func NewCategoryStore(db *sqlx.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// NamesForUser returns all category names owned by userID, in system
// context.
func (s *CategoryStore) NamesForUser(ctx context.Context, userID string) ([]string, error) {
	exec := GetExecutor(ctx, s.db)
	var names []string
	err := sqlx.SelectContext(ctx, exec, &names,
		`SELECT name FROM categories WHERE user_id = $1 ORDER BY name`, userID)
	return names, err
}

// IDByName resolves a category name to its id with a case-insensitive
// exact match. ErrNotFound is a valid outcome, not a failure.
func (s *CategoryStore) IDByName(ctx context.Context, userID, name string) (uuid.UUID, error) {
	exec := GetExecutor(ctx, s.db)
	var id uuid.UUID
	err := sqlx.GetContext(ctx, exec, &id,
		`SELECT id FROM categories WHERE user_id = $1 AND LOWER(name) = LOWER($2)`, userID, name)
	if err == sql.ErrNoRows {
		return uuid.Nil, ErrNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ExistsForUser reports whether the category belongs to userID.
func (s *CategoryStore) ExistsForUser(ctx context.Context, id uuid.UUID, userID string) (bool, error) {
	exec := GetExecutor(ctx, s.db)
	var exists bool
	err := sqlx.GetContext(ctx, exec, &exists,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)`, id, userID)
	return exists, err
}
