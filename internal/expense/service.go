// Package expense は経費記録のドメインロジックを提供する。
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/campman/internal/access"
	"github.com/hitoshi/campman/internal/model"
	"github.com/hitoshi/campman/internal/repository"
)

const notifyRecorded = "New expense recorded."

// Emitter は通知発行のインターフェース。
type Emitter interface {
	Emit(ctx context.Context, campaignID, message string)
}

// CreatePayload は経費記録の入力。
type CreatePayload struct {
	CampaignID  string
	Description string
	Amount      int64
}

// Service は経費記録のサービス層。
type Service struct {
	expenseRepo  repository.ExpenseRepository
	campaignRepo repository.CampaignRepository
	checker      *access.Checker
	emitter      Emitter
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	expenseRepo repository.ExpenseRepository,
	campaignRepo repository.CampaignRepository,
	checker *access.Checker,
	emitter Emitter,
) *Service {
	return &Service{
		expenseRepo:  expenseRepo,
		campaignRepo: campaignRepo,
		checker:      checker,
		emitter:      emitter,
	}
}

// Create は経費を記録する。
// 呼び出し元はAdminロールの既存ユーザーに解決できなければならない。
// 説明は非空、金額は正でなければならない。
// 参照先キャンペーンが存在しない場合はNotFoundエラーを返す。
func (s *Service) Create(ctx context.Context, payload CreatePayload, callerUsername string) (*model.Expense, error) {
	if _, err := s.checker.ResolveCallerWithRole(ctx, callerUsername, model.RoleAdmin); err != nil {
		return nil, err
	}

	if payload.Description == "" {
		return nil, model.NewInvalidPayloadError("description is required")
	}
	if payload.Amount <= 0 {
		return nil, model.NewInvalidPayloadError("amount must be positive")
	}

	campaign, err := s.campaignRepo.FindByID(ctx, payload.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("キャンペーンの取得に失敗しました: %w", err)
	}
	if campaign == nil {
		return nil, model.NewCampaignNotFoundError(payload.CampaignID)
	}

	expense := &model.Expense{
		ID:          uuid.NewString(),
		CampaignID:  payload.CampaignID,
		Description: payload.Description,
		Amount:      payload.Amount,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.expenseRepo.Insert(ctx, expense); err != nil {
		return nil, fmt.Errorf("経費の保存に失敗しました: %w", err)
	}

	s.emitter.Emit(ctx, expense.CampaignID, notifyRecorded)

	slog.Info("expense recorded",
		slog.String("expense_id", expense.ID),
		slog.String("campaign_id", expense.CampaignID),
		slog.Int64("amount", expense.Amount),
	)

	return expense, nil
}

// ListByCampaign は指定キャンペーンの経費一覧を挿入順で返す。
// 結果が0件の場合はNotFoundエラーを返す。
func (s *Service) ListByCampaign(ctx context.Context, campaignID string) ([]*model.Expense, error) {
	expenses, err := s.expenseRepo.ListByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("経費一覧の取得に失敗しました: %w", err)
	}
	if len(expenses) == 0 {
		return nil, model.NewEmptyResultError("expenses")
	}
	return expenses, nil
}
