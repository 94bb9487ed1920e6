// Package outreach は有権者働きかけ活動のドメインロジックを提供する。
package outreach

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

const notifyRecorded = "New voter outreach recorded."

// Emitter は通知発行のインターフェース。
type Emitter interface {
	Emit(ctx context.Context, campaignID, message string)
}

// CreatePayload は活動記録の入力。
// DateとStatusは自由形式の文字列で、非空のみを要求する。
type CreatePayload struct {
	CampaignID string
	Activity   string
	Date       string
	Status     string
}

// Service は有権者働きかけ活動のサービス層。
type Service struct {
	outreachRepo repository.OutreachRepository
	campaignRepo repository.CampaignRepository
	checker      *access.Checker
	emitter      Emitter
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	outreachRepo repository.OutreachRepository,
	campaignRepo repository.CampaignRepository,
	checker *access.Checker,
	emitter Emitter,
) *Service {
	return &Service{
		outreachRepo: outreachRepo,
		campaignRepo: campaignRepo,
		checker:      checker,
		emitter:      emitter,
	}
}

// Create は活動を記録する。
// 呼び出し元は既存ユーザーに解決できればよく、ロールの制約はない。
// 活動内容、日付、状態は非空でなければならない。
// 参照先キャンペーンが存在しない場合はNotFoundエラーを返す。
func (s *Service) Create(ctx context.Context, payload CreatePayload, callerUsername string) (*model.VoterOutreach, error) {
	if _, err := s.checker.ResolveCaller(ctx, callerUsername); err != nil {
		return nil, err
	}

	if payload.Activity == "" {
		return nil, model.NewInvalidPayloadError("activity is required")
	}
	if payload.Date == "" {
		return nil, model.NewInvalidPayloadError("date is required")
	}
	if payload.Status == "" {
		return nil, model.NewInvalidPayloadError("status is required")
	}

	campaign, err := s.campaignRepo.FindByID(ctx, payload.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("キャンペーンの取得に失敗しました: %w", err)
	}
	if campaign == nil {
		return nil, model.NewCampaignNotFoundError(payload.CampaignID)
	}

	record := &model.VoterOutreach{
		ID:         uuid.NewString(),
		CampaignID: payload.CampaignID,
		Activity:   payload.Activity,
		Date:       payload.Date,
		Status:     payload.Status,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.outreachRepo.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("活動の保存に失敗しました: %w", err)
	}

	s.emitter.Emit(ctx, record.CampaignID, notifyRecorded)

	slog.Info("voter outreach recorded",
		slog.String("outreach_id", record.ID),
		slog.String("campaign_id", record.CampaignID),
	)

	return record, nil
}

// ListByCampaign は指定キャンペーンの活動一覧を挿入順で返す。
// 結果が0件の場合はNotFoundエラーを返す。
func (s *Service) ListByCampaign(ctx context.Context, campaignID string) ([]*model.VoterOutreach, error) {
	records, err := s.outreachRepo.ListByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("活動一覧の取得に失敗しました: %w", err)
	}
	if len(records) == 0 {
		return nil, model.NewEmptyResultError("voter outreach records")
	}
	return records, nil
}
