// Package message はセキュアメッセージのドメインロジックを提供する。
package message

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

const notifySent = "New message sent."

// Emitter は通知発行のインターフェース。
type Emitter interface {
	Emit(ctx context.Context, campaignID, message string)
}

// CreatePayload はメッセージ送信の入力。SenderはユーザーID。
type CreatePayload struct {
	CampaignID string
	Sender     string
	Content    string
}

// Service はセキュアメッセージのサービス層。
type Service struct {
	messageRepo  repository.MessageRepository
	campaignRepo repository.CampaignRepository
	userRepo     repository.UserRepository
	checker      *access.Checker
	emitter      Emitter
	sanitizer    security.ContentSanitizerService
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	messageRepo repository.MessageRepository,
	campaignRepo repository.CampaignRepository,
	userRepo repository.UserRepository,
	checker *access.Checker,
	emitter Emitter,
	sanitizer security.ContentSanitizerService,
) *Service {
	return &Service{
		messageRepo:  messageRepo,
		campaignRepo: campaignRepo,
		userRepo:     userRepo,
		checker:      checker,
		emitter:      emitter,
		sanitizer:    sanitizer,
	}
}

// Create はメッセージを送信する。
// 呼び出し元は既存ユーザーに解決できればよく、ロールの制約はない。
// 送信者IDと本文は非空でなければならない。送信者IDが既存ユーザーに
// 解決できない場合、および参照先キャンペーンが存在しない場合はNotFoundエラーを返す。
// 本文は保存前にサニタイズされる。
func (s *Service) Create(ctx context.Context, payload CreatePayload, callerUsername string) (*model.SecureMessage, error) {
	if _, err := s.checker.ResolveCaller(ctx, callerUsername); err != nil {
		return nil, err
	}

	if payload.Sender == "" {
		return nil, model.NewInvalidPayloadError("sender is required")
	}
	if payload.Content == "" {
		return nil, model.NewInvalidPayloadError("content is required")
	}

	sender, err := s.userRepo.FindByID(ctx, payload.Sender)
	if err != nil {
		return nil, fmt.Errorf("送信者ユーザーの取得に失敗しました: %w", err)
	}
	if sender == nil {
		return nil, model.NewSenderNotFoundError(payload.Sender)
	}

	campaign, err := s.campaignRepo.FindByID(ctx, payload.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("キャンペーンの取得に失敗しました: %w", err)
	}
	if campaign == nil {
		return nil, model.NewCampaignNotFoundError(payload.CampaignID)
	}

	msg := &model.SecureMessage{
		ID:         uuid.NewString(),
		CampaignID: payload.CampaignID,
		Sender:     payload.Sender,
		Content:    s.sanitizer.Sanitize(payload.Content),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.messageRepo.Insert(ctx, msg); err != nil {
		return nil, fmt.Errorf("メッセージの保存に失敗しました: %w", err)
	}

	s.emitter.Emit(ctx, msg.CampaignID, notifySent)

	slog.Info("secure message sent",
		slog.String("message_id", msg.ID),
		slog.String("campaign_id", msg.CampaignID),
		slog.String("sender", msg.Sender),
	)

	return msg, nil
}

// ListByCampaign は指定キャンペーンのメッセージ一覧を挿入順で返す。
// 結果が0件の場合はNotFoundエラーを返す。
func (s *Service) ListByCampaign(ctx context.Context, campaignID string) ([]*model.SecureMessage, error) {
	messages, err := s.messageRepo.ListByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("メッセージ一覧の取得に失敗しました: %w", err)
	}
	if len(messages) == 0 {
		return nil, model.NewEmptyResultError("messages")
	}
	return messages, nil
}
