// Package handler はHTTP APIのハンドラー層を提供する。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/campman/internal/campaign"
	"github.com/hitoshi/campman/internal/middleware"
	"github.com/hitoshi/campman/internal/model"
)

// CampaignServiceInterface はキャンペーンハンドラーが必要とするサービスインターフェース。
type CampaignServiceInterface interface {
	// Create はキャンペーンを作成する。
	Create(ctx context.Context, payload campaign.Payload) (*model.Campaign, error)
	// Update は既存キャンペーンを全置換更新する。
	Update(ctx context.Context, id string, payload campaign.Payload) (*model.Campaign, error)
	// List は全キャンペーンを返す。
	List(ctx context.Context) ([]*model.Campaign, error)
	// GetByID は指定IDのキャンペーンを返す。
	GetByID(ctx context.Context, id string) (*model.Campaign, error)
}

// CampaignHandler はキャンペーン管理のHTTPハンドラー。
type CampaignHandler struct {
	service CampaignServiceInterface
}

// NewCampaignHandler はCampaignHandlerを生成する。
func NewCampaignHandler(service CampaignServiceInterface) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// campaignRequest はキャンペーン作成・更新リクエストのボディ。
type campaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
}

// campaignResponse はキャンペーン情報のAPIレスポンス。
type campaignResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// toCampaignResponse はドメインのCampaignをレスポンス型に変換する。
func toCampaignResponse(c *model.Campaign) campaignResponse {
	return campaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// Create はキャンペーン作成を処理する。
// POST /api/campaigns
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidPayloadError("request body must be valid JSON"))
		return
	}

	c, err := h.service.Create(r.Context(), campaign.Payload{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

// Update はキャンペーン更新を処理する。
// PUT /api/campaigns/{id}
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidPayloadError("request body must be valid JSON"))
		return
	}

	c, err := h.service.Update(r.Context(), id, campaign.Payload{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// List はキャンペーン一覧を返す。
// GET /api/campaigns
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]campaignResponse, len(campaigns))
	for i, c := range campaigns {
		results[i] = toCampaignResponse(c)
	}
	writeJSON(w, http.StatusOK, results)
}

// GetByID はキャンペーン詳細を返す。
// GET /api/campaigns/{id}
func (h *CampaignHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

// writeJSON はJSONレスポンスを書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// writeAPIErrorResponse は統一エラーフォーマットでエラーレスポンスを書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	middleware.WriteErrorResponse(w, statusCode, apiErr)
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeAPIErrorResponse(w, mapErrorKindToHTTPStatus(apiErr.Kind), apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	middleware.WriteInternalServerError(w)
}

// mapErrorKindToHTTPStatus はエラー分類タグからHTTPステータスコードにマッピングする。
func mapErrorKindToHTTPStatus(kind model.ErrorKind) int {
	switch kind {
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindInvalidPayload:
		return http.StatusBadRequest
	case model.KindUnauthorized:
		return http.StatusUnauthorized
	case model.KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// callerFromRequest は書き込み操作の呼び出し元ユーザー名をコンテキストから取り出す。
// 未宣言の場合はUnauthorizedレスポンスを書き込みfalseを返す。
func callerFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller, err := middleware.CallerFromContext(r.Context())
	if err != nil {
		writeAPIErrorResponse(w, http.StatusUnauthorized, model.NewCallerNotFoundError())
		return "", false
	}
	return caller, true
}
