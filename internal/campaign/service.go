// Package campaign はキャンペーンのライフサイクル管理のドメインロジックを提供する。
package campaign

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/campman/internal/access"
	"github.com/hitoshi/campman/internal/model"
	"github.com/hitoshi/campman/internal/repository"
	"github.com/hitoshi/campman/internal/security"
)

// 通知メッセージ
const (
	notifyCreated = "New campaign created."
	notifyUpdated = "Campaign updated."
)

// Emitter は通知発行のインターフェース。
type Emitter interface {
	Emit(ctx context.Context, campaignID, message string)
}

// Payload はキャンペーン作成・更新の入力。
type Payload struct {
	Name        string
	Description string
	CreatedBy   string // User ID
}

// Service はキャンペーン管理のサービス層。
// 入力検証、権限チェック、保存、通知発行をこの順で調停する。
type Service struct {
	campaignRepo repository.CampaignRepository
	checker      *access.Checker
	emitter      Emitter
	sanitizer    security.ContentSanitizerService
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	campaignRepo repository.CampaignRepository,
	checker *access.Checker,
	emitter Emitter,
	sanitizer security.ContentSanitizerService,
) *Service {
	return &Service{
		campaignRepo: campaignRepo,
		checker:      checker,
		emitter:      emitter,
		sanitizer:    sanitizer,
	}
}

// validatePayload は名前と説明の非空を検証する。
func validatePayload(payload Payload) error {
	if payload.Name == "" {
		return model.NewInvalidPayloadError("name is required")
	}
	if payload.Description == "" {
		return model.NewInvalidPayloadError("description is required")
	}
	return nil
}

// Create はキャンペーンを作成する。
// created_byがAdminまたはCampaignManagerのユーザーに解決できない場合は
// Unauthorizedエラーを返す。作成時はcreated_atとupdated_atが同一値になる。
func (s *Service) Create(ctx context.Context, payload Payload) (*model.Campaign, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	if _, err := s.checker.ResolveManager(ctx, payload.CreatedBy); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	campaign := &model.Campaign{
		ID:          uuid.NewString(),
		Name:        payload.Name,
		Description: s.sanitizer.Sanitize(payload.Description),
		CreatedBy:   payload.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.campaignRepo.Insert(ctx, campaign); err != nil {
		return nil, fmt.Errorf("キャンペーンの保存に失敗しました: %w", err)
	}

	s.emitter.Emit(ctx, campaign.ID, notifyCreated)

	slog.Info("campaign created",
		slog.String("campaign_id", campaign.ID),
		slog.String("created_by", campaign.CreatedBy),
	)

	return campaign, nil
}

// Update は既存キャンペーンの名前、説明、作成者を全置換する。
// IDとcreated_atは維持され、updated_atが更新される。
// 対象が存在しない場合はNotFoundエラーを返す。
func (s *Service) Update(ctx context.Context, id string, payload Payload) (*model.Campaign, error) {
	existing, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("キャンペーンの取得に失敗しました: %w", err)
	}
	if existing == nil {
		return nil, model.NewCampaignNotFoundError(id)
	}

	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	if _, err := s.checker.ResolveManager(ctx, payload.CreatedBy); err != nil {
		return nil, err
	}

	updated := &model.Campaign{
		ID:          existing.ID,
		Name:        payload.Name,
		Description: s.sanitizer.Sanitize(payload.Description),
		CreatedBy:   payload.CreatedBy,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.campaignRepo.Insert(ctx, updated); err != nil {
		return nil, fmt.Errorf("キャンペーンの更新に失敗しました: %w", err)
	}

	s.emitter.Emit(ctx, updated.ID, notifyUpdated)

	slog.Info("campaign updated",
		slog.String("campaign_id", updated.ID),
	)

	return updated, nil
}

// List は全キャンペーンを挿入順で返す。結果が0件の場合はNotFoundエラーを返す。
func (s *Service) List(ctx context.Context) ([]*model.Campaign, error) {
	campaigns, err := s.campaignRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("キャンペーン一覧の取得に失敗しました: %w", err)
	}
	if len(campaigns) == 0 {
		return nil, model.NewEmptyResultError("campaigns")
	}
	return campaigns, nil
}

// GetByID は指定IDのキャンペーンを取得する。見つからない場合はNotFoundエラーを返す。
func (s *Service) GetByID(ctx context.Context, id string) (*model.Campaign, error) {
	campaign, err := s.campaignRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("キャンペーンの取得に失敗しました: %w", err)
	}
	if campaign == nil {
		return nil, model.NewCampaignNotFoundError(id)
	}
	return campaign, nil
}
