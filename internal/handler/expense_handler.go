package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/campman/internal/expense"
	"github.com/hitoshi/campman/internal/model"
)

// ExpenseServiceInterface は経費ハンドラーが必要とするサービスインターフェース。
type ExpenseServiceInterface interface {
	// Create は経費を記録する。
	Create(ctx context.Context, payload expense.CreatePayload, callerUsername string) (*model.Expense, error)
	// ListByCampaign は指定キャンペーンの経費一覧を返す。
	ListByCampaign(ctx context.Context, campaignID string) ([]*model.Expense, error)
}

// ExpenseHandler は経費記録のHTTPハンドラー。
type ExpenseHandler struct {
	service ExpenseServiceInterface
}

// NewExpenseHandler はExpenseHandlerを生成する。
func NewExpenseHandler(service ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// createExpenseRequest は経費記録リクエストのボディ。
type createExpenseRequest struct {
	CampaignID  string `json:"campaign_id"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

// expenseResponse は経費情報のAPIレスポンス。
type expenseResponse struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// toExpenseResponse はドメインのExpenseをレスポンス型に変換する。
func toExpenseResponse(e *model.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		CampaignID:  e.CampaignID,
		Description: e.Description,
		Amount:      e.Amount,
		CreatedAt:   e.CreatedAt,
	}
}

// Create は経費記録を処理する。
// POST /api/expenses
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromRequest(w, r)
	if !ok {
		return
	}

	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidPayloadError("request body must be valid JSON"))
		return
	}

	e, err := h.service.Create(r.Context(), expense.CreatePayload{
		CampaignID:  req.CampaignID,
		Description: req.Description,
		Amount:      req.Amount,
	}, caller)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toExpenseResponse(e))
}

// ListByCampaign は指定キャンペーンの経費一覧を返す。
// GET /api/campaigns/{id}/expenses
func (h *ExpenseHandler) ListByCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "id")

	expenses, err := h.service.ListByCampaign(r.Context(), campaignID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		results[i] = toExpenseResponse(e)
	}
	writeJSON(w, http.StatusOK, results)
}
