package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/campman/internal/model"
)

// PostgresOutreachRepo はPostgreSQLを使用した有権者働きかけ活動リポジトリ。
type PostgresOutreachRepo struct {
	db *sql.DB
}

// NewPostgresOutreachRepo はPostgresOutreachRepoを生成する。
func NewPostgresOutreachRepo(db *sql.DB) *PostgresOutreachRepo {
	return &PostgresOutreachRepo{db: db}
}

// ListByCampaignID は指定キャンペーンの活動一覧を挿入順で返す。
func (r *PostgresOutreachRepo) ListByCampaignID(ctx context.Context, campaignID string) ([]*model.VoterOutreach, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, campaign_id, activity, activity_date, status, created_at FROM voter_outreach WHERE campaign_id = $1 ORDER BY seq`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list voter outreach: %w", err)
	}
	defer rows.Close()

	var items []*model.VoterOutreach
	for rows.Next() {
		o := &model.VoterOutreach{}
		if err := rows.Scan(&o.ID, &o.CampaignID, &o.Activity, &o.Date, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan voter outreach row: %w", err)
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate voter outreach rows: %w", err)
	}
	return items, nil
}

// Insert は活動を挿入する。
func (r *PostgresOutreachRepo) Insert(ctx context.Context, outreach *model.VoterOutreach) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO voter_outreach (id, campaign_id, activity, activity_date, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		outreach.ID, outreach.CampaignID, outreach.Activity, outreach.Date, outreach.Status, outreach.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert voter outreach: %w", err)
	}
	return nil
}

// compile-time interface check
var _ OutreachRepository = (*PostgresOutreachRepo)(nil)
