package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/campman/internal/donation"
	"github.com/hitoshi/campman/internal/model"
)

// DonationServiceInterface は寄付ハンドラーが必要とするサービスインターフェース。
type DonationServiceInterface interface {
	// Create は寄付を記録する。
	Create(ctx context.Context, payload donation.CreatePayload, callerUsername string) (*model.Donation, error)
	// GetByID は指定IDの寄付を返す。
	GetByID(ctx context.Context, id string) (*model.Donation, error)
	// ListByCampaign は指定キャンペーンの寄付一覧を返す。
	ListByCampaign(ctx context.Context, campaignID string) ([]*model.Donation, error)
}

// DonationHandler は寄付記録のHTTPハンドラー。
type DonationHandler struct {
	service DonationServiceInterface
}

// NewDonationHandler はDonationHandlerを生成する。
func NewDonationHandler(service DonationServiceInterface) *DonationHandler {
	return &DonationHandler{service: service}
}

// createDonationRequest は寄付記録リクエストのボディ。
type createDonationRequest struct {
	CampaignID string `json:"campaign_id"`
	DonorName  string `json:"donor_name"`
	Amount     int64  `json:"amount"`
}

// donationResponse は寄付情報のAPIレスポンス。
type donationResponse struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	DonorName  string    `json:"donor_name"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// toDonationResponse はドメインのDonationをレスポンス型に変換する。
func toDonationResponse(d *model.Donation) donationResponse {
	return donationResponse{
		ID:         d.ID,
		CampaignID: d.CampaignID,
		DonorName:  d.DonorName,
		Amount:     d.Amount,
		CreatedAt:  d.CreatedAt,
	}
}

// Create は寄付記録を処理する。
// POST /api/donations
func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req createDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidPayloadError("request body must be valid JSON"))
		return
	}

	d, err := h.service.Create(r.Context(), donation.CreatePayload{
		CampaignID: req.CampaignID,
		DonorName:  req.DonorName,
		Amount:     req.Amount,
	}, caller)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDonationResponse(d))
}

// GetByID は寄付詳細を返す。
// GET /api/donations/{id}
func (h *DonationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	d, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDonationResponse(d))
}

// ListByCampaign は指定キャンペーンの寄付一覧を返す。
// GET /api/campaigns/{id}/donations
func (h *DonationHandler) ListByCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")

	donations, err := h.service.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]donationResponse, len(donations))
	for i, d := range donations {
		results[i] = toDonationResponse(d)
	}
	writeJSON(w, http.StatusOK, results)
}
