// Package donation は寄付記録のドメインロジックを提供する。
package donation

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

const notifyReceived = "New donation received."

// Emitter は通知発行のインターフェース。
type Emitter interface {
	Emit(ctx context.Context, campaignID, message string)
}

// CreatePayload は寄付記録の入力。
type CreatePayload struct {
	CampaignID string
	DonorName  string
	Amount     int64
}

// Service は寄付記録のサービス層。
type Service struct {
	donationRepo repository.DonationRepository
	campaignRepo repository.CampaignRepository
	checker      *access.Checker
	emitter      Emitter
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	donationRepo repository.DonationRepository,
	campaignRepo repository.CampaignRepository,
	checker *access.Checker,
	emitter Emitter,
) *Service {
	return &Service{
		donationRepo: donationRepo,
		campaignRepo: campaignRepo,
		checker:      checker,
		emitter:      emitter,
	}
}

// Create は寄付を記録する。
// 呼び出し元はDonorロールの既存ユーザーに解決できなければならない。
// 寄付者名は非空、金額は正でなければならない。
// 参照先キャンペーンが存在しない場合はNotFoundエラーを返す。
func (s *Service) Create(ctx context.Context, payload CreatePayload, callerUsername string) (*model.Donation, error) {
	if _, err := s.checker.ResolveCallerWithRole(ctx, callerUsername, model.RoleDonor); err != nil {
		return nil, err
	}

	if payload.DonorName == "" {
		return nil, model.NewInvalidPayloadError("donor_name is required")
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

	donation := &model.Donation{
		ID:         uuid.NewString(),
		CampaignID: payload.CampaignID,
		DonorName:  payload.DonorName,
		Amount:     payload.Amount,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.donationRepo.Insert(ctx, donation); err != nil {
		return nil, fmt.Errorf("寄付の保存に失敗しました: %w", err)
	}

	s.emitter.Emit(ctx, donation.CampaignID, notifyReceived)

	slog.Info("donation recorded",
		slog.String("donation_id", donation.ID),
		slog.String("campaign_id", donation.CampaignID),
		slog.Int64("amount", donation.Amount),
	)

	return donation, nil
}

// GetByID は指定IDの寄付を取得する。
// 寄付が存在し、かつ参照先キャンペーンが現存する場合のみ返す（2段階チェック）。
// いずれかが欠けている場合はNotFoundエラーを返す。
func (s *Service) GetByID(ctx context.Context, id string) (*model.Donation, error) {
	donation, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("寄付の取得に失敗しました: %w", err)
	}
	if donation == nil {
		return nil, model.NewDonationNotFoundError(id)
	}

	campaign, err := s.campaignRepo.FindByID(ctx, donation.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("キャンペーンの取得に失敗しました: %w", err)
	}
	if campaign == nil {
		return nil, model.NewCampaignNotFoundError(donation.CampaignID)
	}

	return donation, nil
}

// ListByCampaign は指定キャンペーンの寄付一覧を挿入順で返す。
// 結果が0件の場合はNotFoundエラーを返す。
func (s *Service) ListByCampaign(ctx context.Context, campaignID string) ([]*model.Donation, error) {
	donations, err := s.donationRepo.ListByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("寄付一覧の取得に失敗しました: %w", err)
	}
	if len(donations) == 0 {
		return nil, model.NewEmptyResultError("donations")
	}
	return donations, nil
}
