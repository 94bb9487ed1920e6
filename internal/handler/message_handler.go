package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/campman/internal/message"
	"github.com/hitoshi/campman/internal/model"
)

// MessageServiceInterface はメッセージハンドラーが必要とするサービスインターフェース。
type MessageServiceInterface interface {
	// Create はメッセージを送信する。
	Create(ctx context.Context, payload message.CreatePayload, callerUsername string) (*model.SecureMessage, error)
	// ListByCampaign は指定キャンペーンのメッセージ一覧を返す。
	ListByCampaign(ctx context.Context, campaignID string) ([]*model.SecureMessage, error)
}

// MessageHandler はセキュアメッセージのHTTPハンドラー。
type MessageHandler struct {
	service MessageServiceInterface
}

// NewMessageHandler はMessageHandlerを生成する。
func NewMessageHandler(service MessageServiceInterface) *MessageHandler {
	return &MessageHandler{service: service}
}

// createMessageRequest はメッセージ送信リクエストのボディ。
type createMessageRequest struct {
	CampaignID string `json:"campaign_id"`
	Sender     string `json:"sender"`
	Content    string `json:"content"`
}

// messageResponse はメッセージ情報のAPIレスポンス。
type messageResponse struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	Sender     string    `json:"sender"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// toMessageResponse はドメインのSecureMessageをレスポンス型に変換する。
func toMessageResponse(m *model.SecureMessage) messageResponse {
	return messageResponse{
		ID:         m.ID,
		CampaignID: m.CampaignID,
		Sender:     m.Sender,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}

// Create はメッセージ送信を処理する。
// POST /api/messages
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidPayloadError("request body must be valid JSON"))
		return
	}

	m, err := h.service.Create(r.Context(), message.CreatePayload{
		CampaignID: req.CampaignID,
		Sender:     req.Sender,
		Content:    req.Content,
	}, caller)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(m))
}

// ListByCampaign は指定キャンペーンのメッセージ一覧を返す。
// GET /api/campaigns/{id}/messages
func (h *MessageHandler) ListByCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")

	messages, err := h.service.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]messageResponse, len(messages))
	for i, m := range messages {
		results[i] = toMessageResponse(m)
	}
	writeJSON(w, http.StatusOK, results)
}
