package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"curator/internal/domain"
)

type PreferenceStore struct {
	db *sqlx.DB
}

func NewPreferenceStore(db *sqlx.DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// GetByUserID returns the user's AI prompt preferences, or nil when
// none are stored. Absent preferences are not an error; analysis
// falls back to generic defaults.
func (s *PreferenceStore) GetByUserID(ctx context.Context, userID string) (*domain.UserPreference, error) {
	exec := GetExecutor(ctx, s.db)
	var prefs domain.UserPreference
	err := sqlx.GetContext(ctx, exec, &prefs, `
		SELECT user_id, professional_context, learning_goals, hobbies, topics_to_avoid
		FROM user_preferences WHERE user_id = $1`, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}
