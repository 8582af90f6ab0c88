package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"curator/internal/domain"
)

// MetadataStore manages the 1:1 inbox/vault metadata child rows.
type MetadataStore struct {
	db *sqlx.DB
}

func NewMetadataStore(db *sqlx.DB) *MetadataStore {
	return &MetadataStore{db: db}
}

func (s *MetadataStore) UpsertInbox(ctx context.Context, meta *domain.InboxMetadata) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, `
		INSERT INTO inbox_metadata (resource_id, ai_score, ai_verdict, ai_summary)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (resource_id) DO UPDATE SET
			ai_score = EXCLUDED.ai_score,
			ai_verdict = EXCLUDED.ai_verdict,
			ai_summary = EXCLUDED.ai_summary`,
		meta.ResourceID, meta.AiScore, meta.AiVerdict, meta.AiSummary,
	)
	return err
}

func (s *MetadataStore) DeleteInbox(ctx context.Context, resourceID uuid.UUID) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, `DELETE FROM inbox_metadata WHERE resource_id = $1`, resourceID)
	return err
}

// UpsertVault creates or updates the vault metadata row. The promotion
// timestamp is set once and never overwritten by later analyses.
func (s *MetadataStore) UpsertVault(ctx context.Context, meta *domain.VaultMetadata) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, `
		INSERT INTO vault_metadata (resource_id, ai_summary, suggested_category_name, category_id, user_note, promoted_to_vault_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (resource_id) DO UPDATE SET
			ai_summary = EXCLUDED.ai_summary,
			suggested_category_name = EXCLUDED.suggested_category_name,
			category_id = EXCLUDED.category_id,
			user_note = EXCLUDED.user_note,
			promoted_to_vault_at = COALESCE(vault_metadata.promoted_to_vault_at, EXCLUDED.promoted_to_vault_at)`,
		meta.ResourceID, meta.AiSummary, meta.SuggestedCategoryName, meta.CategoryID, meta.UserNote, meta.PromotedToVaultAt,
	)
	return err
}

type inboxMetaRow struct {
	ResourceID uuid.UUID `db:"resource_id"`
	AiScore    int       `db:"ai_score"`
	AiVerdict  string    `db:"ai_verdict"`
	AiSummary  string    `db:"ai_summary"`
}

type vaultMetaRow struct {
	ResourceID            uuid.UUID      `db:"resource_id"`
	AiSummary             string         `db:"ai_summary"`
	SuggestedCategoryName sql.NullString `db:"suggested_category_name"`
	CategoryID            uuid.NullUUID  `db:"category_id"`
	UserNote              sql.NullString `db:"user_note"`
	PromotedToVaultAt     sql.NullTime   `db:"promoted_to_vault_at"`
}

func getInboxMeta(ctx context.Context, exec sqlx.ExtContext, resourceID uuid.UUID) (*domain.InboxMetadata, error) {
	var row inboxMetaRow
	err := sqlx.GetContext(ctx, exec, &row, `
		SELECT resource_id, ai_score, ai_verdict, ai_summary
		FROM inbox_metadata WHERE resource_id = $1`, resourceID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.InboxMetadata{
		ResourceID: row.ResourceID,
		AiScore:    row.AiScore,
		AiVerdict:  row.AiVerdict,
		AiSummary:  row.AiSummary,
	}, nil
}

func getVaultMeta(ctx context.Context, exec sqlx.ExtContext, resourceID uuid.UUID) (*domain.VaultMetadata, error) {
	var row vaultMetaRow
	err := sqlx.GetContext(ctx, exec, &row, `
		SELECT resource_id, ai_summary, suggested_category_name, category_id, user_note, promoted_to_vault_at
		FROM vault_metadata WHERE resource_id = $1`, resourceID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	meta := &domain.VaultMetadata{
		ResourceID: row.ResourceID,
		AiSummary:  row.AiSummary,
	}
	if row.SuggestedCategoryName.Valid {
		meta.SuggestedCategoryName = &row.SuggestedCategoryName.String
	}
	if row.CategoryID.Valid {
		id := row.CategoryID.UUID
		meta.CategoryID = &id
	}
	if row.UserNote.Valid {
		meta.UserNote = &row.UserNote.String
	}
	if row.PromotedToVaultAt.Valid {
		t := row.PromotedToVaultAt.Time.UTC()
		meta.PromotedToVaultAt = &t
	}
	return meta, nil
}
