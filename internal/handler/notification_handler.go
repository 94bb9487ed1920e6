package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/campman/internal/model"
)

// NotificationServiceInterface は通知ハンドラーが必要とするサービスインターフェース。
type NotificationServiceInterface interface {
	// ListByCampaign は指定キャンペーンの通知一覧を生成順で返す。
	ListByCampaign(ctx context.Context, campaignID string) ([]*model.Notification, error)
}

// NotificationHandler は通知のHTTPハンドラー。読み取り専用。
type NotificationHandler struct {
	service NotificationServiceInterface
}

// NewNotificationHandler はNotificationHandlerを生成する。
func NewNotificationHandler(service NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// notificationResponse は通知情報のAPIレスポンス。
type notificationResponse struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListByCampaign は指定キャンペーンの通知一覧を返す。
// GET /api/campaigns/{id}/notifications
func (h *NotificationHandler) ListByCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")

	notifications, err := h.service.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]notificationResponse, len(notifications))
	for i, n := range notifications {
		results[i] = notificationResponse{
			ID:         n.ID,
			CampaignID: n.CampaignID,
			Message:    n.Message,
			CreatedAt:  n.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, results)
}
