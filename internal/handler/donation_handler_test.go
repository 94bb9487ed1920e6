package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hitoshi/campman/internal/donation"
	"github.com/hitoshi/campman/internal/model"
)

// --- モック定義 ---

// mockDonationService はDonationServiceInterfaceのモック実装。
type mockDonationService struct {
	createFn         func(ctx context.Context, payload donation.CreatePayload, callerUsername string) (*model.Donation, error)
	getByIDFn        func(ctx context.Context, id string) (*model.Donation, error)
	listByCampaignFn func(ctx context.Context, campaignID string) ([]*model.Donation, error)
}

func (m *mockDonationService) Create(ctx context.Context, payload donation.CreatePayload, callerUsername string) (*model.Donation, error) {
	if m.createFn != nil {
		return m.createFn(ctx, payload, callerUsername)
	}
	return nil, nil
}
func (m *mockDonationService) GetByID(ctx context.Context, id string) (*model.Donation, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}
func (m *mockDonationService) ListByCampaign(ctx context.Context, campaignID string) ([]*model.Donation, error) {
	if m.listByCampaignFn != nil {
		return m.listByCampaignFn(ctx, campaignID)
	}
	return nil, nil
}

// --- POST /api/donations テスト ---

func TestDonationHandler_Create_Success(t *testing.T) {
	svc := &mockDonationService{
		createFn: func(ctx context.Context, payload donation.CreatePayload, callerUsername string) (*model.Donation, error) {
			if callerUsername != "donor1" {
				t.Errorf("callerUsername = %q, want donor1", callerUsername)
			}
			if payload.Amount != 5000 {
				t.Errorf("Amount = %d, want 5000", payload.Amount)
			}
			return &model.Donation{
				ID:         "d-1",
				CampaignID: payload.CampaignID,
				DonorName:  payload.DonorName,
				Amount:     payload.Amount,
			}, nil
		},
	}
	h := NewDonationHandler(svc)

	body := `{"campaign_id":"c-1","donor_name":"Jane Smith","amount":5000}`
	req := httptest.NewRequest(http.MethodPost, "/api/donations", strings.NewReader(body))
	req = withCaller(req, "donor1")
	w := httptest.NewRecorder()

	h.Create(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", w.Code, http.StatusCreated)
	}

	var resp donationResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "d-1" || resp.Amount != 5000 {
		t.Errorf("response = %+v, want d-1/5000", resp)
	}
}

func TestDonationHandler_Create_NoCaller_ReturnsUnauthorized(t *testing.T) {
	h := NewDonationHandler(&mockDonationService{})

	body := `{"campaign_id":"c-1","donor_name":"Jane Smith","amount":5000}`
	// 呼び出し元ヘッダーを注入しない
	req := httptest.NewRequest(http.MethodPost, "/api/donations", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	result := parseAPIErrorResponse(t, w)
	if result["message"] != "User not found" {
		t.Errorf("message = %q, want %q", result["message"], "User not found")
	}
}

func TestDonationHandler_Create_WrongRole(t *testing.T) {
	svc := &mockDonationService{
		createFn: func(ctx context.Context, payload donation.CreatePayload, callerUsername string) (*model.Donation, error) {
			return nil, model.NewRoleForbiddenError("donor")
		},
	}
	h := NewDonationHandler(svc)

	body := `{"campaign_id":"c-1","donor_name":"Jane Smith","amount":5000}`
	req := httptest.NewRequest(http.MethodPost, "/api/donations", strings.NewReader(body))
	req = withCaller(req, "admin1")
	w := httptest.NewRecorder()

	h.Create(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

// --- GET /api/donations/{id} テスト ---

func TestDonationHandler_GetByID_NotFound(t *testing.T) {
	svc := &mockDonationService{
		getByIDFn: func(ctx context.Context, id string) (*model.Donation, error) {
			return nil, model.NewDonationNotFoundError(id)
		},
	}
	h := NewDonationHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/donations/d-ghost", nil)
	req = withChiURLParam(req, "id", "d-ghost")
	w := httptest.NewRecorder()

	h.GetByID(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

// --- GET /api/campaigns/{id}/donations テスト ---

func TestDonationHandler_ListByCampaign_Success(t *testing.T) {
	svc := &mockDonationService{
		listByCampaignFn: func(ctx context.Context, campaignID string) ([]*model.Donation, error) {
			if campaignID != "c-1" {
				t.Errorf("campaignID = %q, want c-1", campaignID)
			}
			return []*model.Donation{
				{ID: "d-1", CampaignID: campaignID, Amount: 100},
				{ID: "d-2", CampaignID: campaignID, Amount: 200},
			}, nil
		},
	}
	h := NewDonationHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/campaigns/c-1/donations", nil)
	req = withChiURLParam(req, "id", "c-1")
	w := httptest.NewRecorder()

	h.ListByCampaign(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp []donationResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != "d-1" || resp[1].ID != "d-2" {
		t.Errorf("response = %+v, want [d-1, d-2]", resp)
	}
}
