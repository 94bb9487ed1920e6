// Package access は操作ごとの権限チェックを提供する。
//
// エンティティ種別ごとの権限ルールは意図的に不均一である:
// キャンペーンの作成・更新はAdminまたはCampaignManager、寄付の記録はDonorのみ、
// 経費の記録はAdminのみ、活動とメッセージの作成は既存ユーザーであれば誰でも可能。
// このルールを均一化せず、各サービスが必要とするチェックをそのまま提供する。
package access

import (
	"context"
	"fmt"

	"github.com/hitoshi/campman/internal/model"
	"github.com/hitoshi/campman/internal/repository"
)

// Checker は呼び出し元の身元解決とロールチェックを行う。
type Checker struct {
	userRepo repository.UserRepository
}

// NewChecker はCheckerの新しいインスタンスを生成する。
func NewChecker(userRepo repository.UserRepository) *Checker {
	return &Checker{userRepo: userRepo}
}

// ResolveCaller はユーザー名から呼び出し元ユーザーを解決する。
// 解決できない場合はUnauthorizedエラーを返す。
func (c *Checker) ResolveCaller(ctx context.Context, username string) (*model.User, error) {
	user, err := c.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("呼び出し元ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil {
		return nil, model.NewCallerNotFoundError()
	}
	return user, nil
}

// ResolveCallerWithRole はユーザー名から呼び出し元を解決し、指定ロールであることを確認する。
// ロールが一致しない場合はUnauthorizedエラーを返す。
func (c *Checker) ResolveCallerWithRole(ctx context.Context, username string, role model.Role) (*model.User, error) {
	user, err := c.ResolveCaller(ctx, username)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, model.NewRoleForbiddenError(string(role))
	}
	return user, nil
}

// ResolveManager はユーザーIDからキャンペーン管理権限を持つユーザーを解決する。
// キャンペーンの作成・更新時にcreated_byの検証として使用する。
// ユーザーが存在しない、またはAdmin/CampaignManagerのいずれでもない場合は
// Unauthorizedエラーを返す。
func (c *Checker) ResolveManager(ctx context.Context, userID string) (*model.User, error) {
	user, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("作成者ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil {
		return nil, model.NewCallerNotFoundError()
	}
	if user.Role != model.RoleAdmin && user.Role != model.RoleCampaignManager {
		return nil, model.NewRoleForbiddenError(string(model.RoleAdmin) + " or " + string(model.RoleCampaignManager))
	}
	return user, nil
}
