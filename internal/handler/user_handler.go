package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hitoshi/campman/internal/middleware"
	"github.com/hitoshi/campman/internal/model"
	"github.com/hitoshi/campman/internal/user"
)

// UserServiceInterface はユーザーハンドラーが必要とするサービスインターフェース。
type UserServiceInterface interface {
	// Create はユーザーを作成する。
	Create(ctx context.Context, payload user.CreatePayload) (*model.User, error)
	// List は全ユーザーを返す。
	List(ctx context.Context) ([]*model.User, error)
	// GetByUsername はユーザー名でユーザーを検索する。
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// GetByRole は指定ロールのユーザー一覧を返す。
	GetByRole(ctx context.Context, role string) ([]*model.User, error)
}

// UserHandler はユーザー管理のHTTPハンドラー。
type UserHandler struct {
	service UserServiceInterface
}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// createUserRequest はユーザー作成リクエストのボディ。
type createUserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// userResponse はユーザー情報のAPIレスポンス。
type userResponse struct {
	ID            string    `json:"id"`
	OwnerIdentity string    `json:"owner_identity"`
	Username      string    `json:"username"`
	Role          string    `json:"role"`
	Points        int       `json:"points"`
	CreatedAt     time.Time `json:"created_at"`
}

// toUserResponse はドメインのUserをレスポンス型に変換する。
func toUserResponse(u *model.User) userResponse {
	return userResponse{
		ID:            u.ID,
		OwnerIdentity: u.OwnerIdentity,
		Username:      u.Username,
		Role:          string(u.Role),
		Points:        u.Points,
		CreatedAt:     u.CreatedAt,
	}
}

// Create はユーザー作成を処理する。
// POST /api/users
// owning-identityには呼び出し元ヘッダーの値をそのまま記録する。
// 最初のユーザー作成時点ではストアにユーザーが存在しないため、
// ここでは身元の解決を行わない。
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidPayloadError("request body must be valid JSON"))
		return
	}

	ownerIdentity, _ := middleware.CallerFromContext(r.Context())

	u, err := h.service.Create(r.Context(), user.CreatePayload{
		Username:      req.Username,
		Role:          req.Role,
		OwnerIdentity: ownerIdentity,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// List はユーザー一覧を返す。
// GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]userResponse, len(users))
	for i, u := range users {
		results[i] = toUserResponse(u)
	}
	writeJSON(w, http.StatusOK, results)
}

// GetByUsername はユーザー名でユーザーを検索する。
// GET /api/users/by-username/{username}
func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	u, err := h.service.GetByUsername(r.Context(), username)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// GetByRole は指定ロールのユーザー一覧を返す。
// GET /api/users/by-role/{role}
func (h *UserHandler) GetByRole(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")

	users, err := h.service.GetByRole(r.Context(), role)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	results := make([]userResponse, len(users))
	for i, u := range users {
		results[i] = toUserResponse(u)
	}
	writeJSON(w, http.StatusOK, results)
}
