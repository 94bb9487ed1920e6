package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/campman/internal/model"
)

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, owner_identity, username, role, points, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.OwnerIdentity, &user.Username, &user.Role, &user.Points, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}

	return user, nil
}

// FindByUsername はユーザー名でユーザーを検索する。見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, owner_identity, username, role, points, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.OwnerIdentity, &user.Username, &user.Role, &user.Points, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}

	return user, nil
}

// ListByRole は指定ロールのユーザー一覧を挿入順で返す。
func (r *PostgresUserRepo) ListByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_identity, username, role, points, created_at FROM users WHERE role = $1 ORDER BY seq`,
		string(role),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// List は全ユーザーを挿入順で返す。
func (r *PostgresUserRepo) List(ctx context.Context) ([]*model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_identity, username, role, points, created_at FROM users ORDER BY seq`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// Insert はユーザーを挿入する。同一IDが存在する場合は置換する。
func (r *PostgresUserRepo) Insert(ctx context.Context, user *model.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, owner_identity, username, role, points, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE
		 SET owner_identity = EXCLUDED.owner_identity,
		     username = EXCLUDED.username,
		     role = EXCLUDED.role,
		     points = EXCLUDED.points`,
		user.ID, user.OwnerIdentity, user.Username, string(user.Role), user.Points, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// scanUsers は結果セットからユーザーのスライスを構築する。
func scanUsers(rows *sql.Rows) ([]*model.User, error) {
	var users []*model.User
	for rows.Next() {
		user := &model.User{}
		if err := rows.Scan(&user.ID, &user.OwnerIdentity, &user.Username, &user.Role, &user.Points, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return users, nil
}

// compile-time interface check
var _ UserRepository = (*PostgresUserRepo)(nil)
