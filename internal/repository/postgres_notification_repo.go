package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/campman/internal/model"
)

// PostgresNotificationRepo はPostgreSQLを使用した通知リポジトリ。追記専用。
type PostgresNotificationRepo struct {
	db *sql.DB
}

// NewPostgresNotificationRepo はPostgresNotificationRepoを生成する。
func NewPostgresNotificationRepo(db *sql.DB) *PostgresNotificationRepo {
	return &PostgresNotificationRepo{db: db}
}

// ListByCampaignID は指定キャンペーンの通知一覧を生成順で返す。
func (r *PostgresNotificationRepo) ListByCampaignID(ctx context.Context, campaignID string) ([]*model.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, campaign_id, message, created_at FROM notifications WHERE campaign_id = $1 ORDER BY seq`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*model.Notification
	for rows.Next() {
		n := &model.Notification{}
		if err := rows.Scan(&n.ID, &n.CampaignID, &n.Message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notification rows: %w", err)
	}
	return notifications, nil
}

// Insert は通知を挿入する。
func (r *PostgresNotificationRepo) Insert(ctx context.Context, notification *model.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (id, campaign_id, message, created_at)
		 VALUES ($1, $2, $3, $4)`,
		notification.ID, notification.CampaignID, notification.Message, notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// NewPostgresStores は全エンティティのPostgreSQLリポジトリ一式を生成する。
func NewPostgresStores(db *sql.DB) *Stores {
	return &Stores{
		Users:         NewPostgresUserRepo(db),
		Campaigns:     NewPostgresCampaignRepo(db),
		Donations:     NewPostgresDonationRepo(db),
		Expenses:      NewPostgresExpenseRepo(db),
		Outreach:      NewPostgresOutreachRepo(db),
		Messages:      NewPostgresMessageRepo(db),
		Notifications: NewPostgresNotificationRepo(db),
	}
}

// compile-time interface check
var _ NotificationRepository = (*PostgresNotificationRepo)(nil)
