package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/campman/internal/model"
)

// PostgresMessageRepo はPostgreSQLを使用したセキュアメッセージリポジトリ。
type PostgresMessageRepo struct {
	db *sql.DB
}

// NewPostgresMessageRepo はPostgresMessageRepoを生成する。
func NewPostgresMessageRepo(db *sql.DB) *PostgresMessageRepo {
	return &PostgresMessageRepo{db: db}
}

// ListByCampaignID は指定キャンペーンのメッセージ一覧を挿入順で返す。
func (r *PostgresMessageRepo) ListByCampaignID(ctx context.Context, campaignID string) ([]*model.SecureMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, campaign_id, sender, content, created_at FROM secure_messages WHERE campaign_id = $1 ORDER BY seq`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*model.SecureMessage
	for rows.Next() {
		m := &model.SecureMessage{}
		if err := rows.Scan(&m.ID, &m.CampaignID, &m.Sender, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate message rows: %w", err)
	}
	return messages, nil
}

// Insert はメッセージを挿入する。
func (r *PostgresMessageRepo) Insert(ctx context.Context, message *model.SecureMessage) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO secure_messages (id, campaign_id, sender, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		message.ID, message.CampaignID, message.Sender, message.Content, message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// compile-time interface check
var _ MessageRepository = (*PostgresMessageRepo)(nil)
