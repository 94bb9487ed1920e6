// Package notification は状態変更操作の副作用としての通知生成と、
// キャンペーンごとの通知一覧取得を提供する。
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/campman/internal/model"
	"github.com/hitoshi/campman/internal/repository"
)

// EmitRecorder は通知生成のメトリクス記録インターフェース。
type EmitRecorder interface {
	RecordNotificationEmitted()
}

// Emitter は通知の発行を担う。
// 各サービスが主たる書き込みを完了した後に同期的に呼び出す。
// 発行は打ちっぱなし（fire-and-forget）であり、失敗しても呼び出し元の
// 操作を失敗させない。エラーチャネルは存在せずログにのみ記録される。
type Emitter struct {
	repo     repository.NotificationRepository
	recorder EmitRecorder
}

// NewEmitter はEmitterの新しいインスタンスを生成する。
// recorderはnilでもよい。
func NewEmitter(repo repository.NotificationRepository, recorder EmitRecorder) *Emitter {
	return &Emitter{repo: repo, recorder: recorder}
}

// Emit は指定キャンペーンに対する通知を無条件に書き込む。
// エラーを返さない。書き込みに失敗した場合は警告ログのみ出力する。
func (e *Emitter) Emit(ctx context.Context, campaignID, message string) {
	n := &model.Notification{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}

	if err := e.repo.Insert(ctx, n); err != nil {
		slog.Warn("notification emit failed",
			slog.String("campaign_id", campaignID),
			slog.String("message", message),
			slog.String("error", err.Error()),
		)
		return
	}

	if e.recorder != nil {
		e.recorder.RecordNotificationEmitted()
	}
}

// Service は通知の読み取り操作を提供するサービス層。
type Service struct {
	repo repository.NotificationRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.NotificationRepository) *Service {
	return &Service{repo: repo}
}

// ListByCampaign は指定キャンペーンの通知一覧を生成順で返す。
// 結果が0件の場合はNotFoundエラーを返す。
func (s *Service) ListByCampaign(ctx context.Context, campaignID string) ([]*model.Notification, error) {
	notifications, err := s.repo.ListByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("通知一覧の取得に失敗しました: %w", err)
	}
	if len(notifications) == 0 {
		return nil, model.NewEmptyResultError("notifications")
	}
	return notifications, nil
}
