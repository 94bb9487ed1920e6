package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/campman/internal/model"
	"github.com/hitoshi/campman/internal/outreach"
)

// OutreachServiceInterface は活動ハンドラーが必要とするサービスインターフェース。
type OutreachServiceInterface interface {
	// Create は活動を記録する。
	Create(ctx context.Context, payload outreach.CreatePayload, callerUsername string) (*model.VoterOutreach, error)
	// ListByCampaign は指定キャンペーンの活動一覧を返す。
	ListByCampaign(ctx context.Context, campaignID string) ([]*model.VoterOutreach, error)
}

// OutreachHandler は有権者働きかけ活動のHTTPハンドラー。
type OutreachHandler struct {
	service OutreachServiceInterface
}

// NewOutreachHandler はOutreachHandlerを生成する。
func NewOutreachHandler(service OutreachServiceInterface) *OutreachHandler {
	return &OutreachHandler{service: service}
}

// createOutreachRequest は活動記録リクエストのボディ。
type createOutreachRequest struct {
	CampaignID string `json:"campaign_id"`
	Activity   string `json:"activity"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// outreachResponse は活動情報のAPIレスポンス。
type outreachResponse struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	Activity   string    `json:"activity"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// toOutreachResponse はドメインのVoterOutreachをレスポンス型に変換する。
func toOutreachResponse(o *model.VoterOutreach) outreachResponse {
	return outreachResponse{
		ID:         o.ID,
		CampaignID: o.CampaignID,
		Activity:   o.Activity,
		Date:       o.Date,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
	}
}

// Create は活動記録を処理する。
// POST /api/outreach
func (h *OutreachHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req createOutreachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidPayloadError("request body must be valid JSON"))
		return
	}

	o, err := h.service.Create(r.Context(), outreach.CreatePayload{
		CampaignID: req.CampaignID,
		Activity:   req.Activity,
		Date:       req.Date,
		Status:     req.Status,
	}, caller)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOutreachResponse(o))
}

// ListByCampaign は指定キャンペーンの活動一覧を返す。
// GET /api/campaigns/{id}/outreach
func (h *OutreachHandler) ListByCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")

	records, err := h.service.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]outreachResponse, len(records))
	for i, o := range records {
		results[i] = toOutreachResponse(o)
	}
	writeJSON(w, http.StatusOK, results)
}
