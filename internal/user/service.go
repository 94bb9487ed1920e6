// Package user はユーザー管理のドメインロジックを提供する。
package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/campman/internal/model"
	"github.com/hitoshi/campman/internal/repository"
)

// CreatePayload はユーザー作成の入力。
// OwnerIdentityは呼び出し元の外部アイデンティティで、サービスがそのまま記録する。
type CreatePayload struct {
	Username      string
	Role          string
	OwnerIdentity string
}

// Service はユーザー管理のサービス層。
type Service struct {
	userRepo repository.UserRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(userRepo repository.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// Create はユーザーを作成する。
// ロールは既知のタグでなければならない。ユーザー名は全ユーザーを走査して
// 一意性を確認し、重複する場合はValidationErrorを返す。
// ユーザー名の非空チェックは行わない（既存挙動の維持）。
// ポイントは0で初期化される。
func (s *Service) Create(ctx context.Context, payload CreatePayload) (*model.User, error) {
	role, ok := model.ParseRole(payload.Role)
	if !ok {
		return nil, model.NewInvalidRoleError(payload.Role)
	}

	existing, err := s.userRepo.FindByUsername(ctx, payload.Username)
	if err != nil {
		return nil, fmt.Errorf("ユーザー名の重複確認に失敗しました: %w", err)
	}
	if existing != nil {
		return nil, model.NewDuplicateUsernameError(payload.Username)
	}

	user := &model.User{
		ID:            uuid.NewString(),
		OwnerIdentity: payload.OwnerIdentity,
		Username:      payload.Username,
		Role:          role,
		Points:        0,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("ユーザーの保存に失敗しました: %w", err)
	}

	slog.Info("user created",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

// List は全ユーザーを挿入順で返す。結果が0件の場合はNotFoundエラーを返す。
func (s *Service) List(ctx context.Context) ([]*model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("ユーザー一覧の取得に失敗しました: %w", err)
	}
	if len(users) == 0 {
		return nil, model.NewEmptyResultError("users")
	}
	return users, nil
}

// GetByUsername はユーザー名でユーザーを検索する。見つからない場合はNotFoundエラーを返す。
func (s *Service) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの検索に失敗しました: %w", err)
	}
	if user == nil {
		return nil, model.NewUserNotFoundError(username)
	}
	return user, nil
}

// GetByRole は指定ロールのユーザー一覧を返す。
// フィルタが比較するのはAdminとCampaignManagerのタグのみで、Donorは
// どのユーザーにも一致しない（既存挙動の維持）。
// 結果が0件の場合はNotFoundエラーを返す。
func (s *Service) GetByRole(ctx context.Context, role string) ([]*model.User, error) {
	parsed, ok := model.ParseRole(role)
	if !ok || (parsed != model.RoleAdmin && parsed != model.RoleCampaignManager) {
		return nil, model.NewEmptyResultError("users with role " + role)
	}

	users, err := s.userRepo.ListByRole(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("ロール別ユーザー一覧の取得に失敗しました: %w", err)
	}
	if len(users) == 0 {
		return nil, model.NewEmptyResultError("users with role " + role)
	}
	return users, nil
}
