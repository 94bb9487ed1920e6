package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/campman/internal/model"
)

// PostgresDonationRepo はPostgreSQLを使用した寄付リポジトリ。
type PostgresDonationRepo struct {
	db *sql.DB
}

// NewPostgresDonationRepo はPostgresDonationRepoを生成する。
func NewPostgresDonationRepo(db *sql.DB) *PostgresDonationRepo {
	return &PostgresDonationRepo{db: db}
}

// FindByID は指定IDの寄付を取得する。見つからない場合はnilを返す。
func (r *PostgresDonationRepo) FindByID(ctx context.Context, id string) (*model.Donation, error) {
	d := &model.Donation{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, campaign_id, donor_name, amount, created_at FROM donations WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.CampaignID, &d.DonorName, &d.Amount, &d.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find donation by ID: %w", err)
	}

	return d, nil
}

// ListByCampaignID は指定キャンペーンの寄付一覧を挿入順で返す。
func (r *PostgresDonationRepo) ListByCampaignID(ctx context.Context, campaignID string) ([]*model.Donation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, campaign_id, donor_name, amount, created_at FROM donations WHERE campaign_id = $1 ORDER BY seq`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	defer rows.Close()

	var donations []*model.Donation
	for rows.Next() {
		d := &model.Donation{}
		if err := rows.Scan(&d.ID, &d.CampaignID, &d.DonorName, &d.Amount, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan donation row: %w", err)
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate donation rows: %w", err)
	}
	return donations, nil
}

// Insert は寄付を挿入する。
func (r *PostgresDonationRepo) Insert(ctx context.Context, donation *model.Donation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO donations (id, campaign_id, donor_name, amount, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		donation.ID, donation.CampaignID, donation.DonorName, donation.Amount, donation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert donation: %w", err)
	}
	return nil
}

// PostgresExpenseRepo はPostgreSQLを使用した経費リポジトリ。
type PostgresExpenseRepo struct {
	db *sql.DB
}

// NewPostgresExpenseRepo はPostgresExpenseRepoを生成する。
func NewPostgresExpenseRepo(db *sql.DB) *PostgresExpenseRepo {
	return &PostgresExpenseRepo{db: db}
}

// ListByCampaignID は指定キャンペーンの経費一覧を挿入順で返す。
func (r *PostgresExpenseRepo) ListByCampaignID(ctx context.Context, campaignID string) ([]*model.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, campaign_id, description, amount, created_at FROM expenses WHERE campaign_id = $1 ORDER BY seq`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*model.Expense
	for rows.Next() {
		e := &model.Expense{}
		if err := rows.Scan(&e.ID, &e.CampaignID, &e.Description, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense rows: %w", err)
	}
	return expenses, nil
}

// Insert は経費を挿入する。
func (r *PostgresExpenseRepo) Insert(ctx context.Context, expense *model.Expense) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, campaign_id, description, amount, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		expense.ID, expense.CampaignID, expense.Description, expense.Amount, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// --- compile-time interface checks ---

var _ DonationRepository = (*PostgresDonationRepo)(nil)
var _ ExpenseRepository = (*PostgresExpenseRepo)(nil)
