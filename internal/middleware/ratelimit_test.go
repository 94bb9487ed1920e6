package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func testRateLimiterConfig(burst int) RateLimiterConfig {
	return RateLimiterConfig{
		GeneralRate:     rate.Limit(0.001), // 補充をほぼ止めてバーストのみで検証する
		GeneralBurst:    burst,
		WriteRate:       rate.Limit(0.001),
		WriteBurst:      burst,
		CleanupInterval: time.Hour,
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// TestRateLimiter_GeneralMiddleware はバースト超過後のリクエストが
// 429とRetry-Afterヘッダーを返すことを検証する。
func TestRateLimiter_GeneralMiddleware(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig(3))
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithCaller(req.Context(), "alice"))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want %d", i, w.Code, http.StatusOK)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithCaller(req.Context(), "alice"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

// TestRateLimiter_KeysAreIndependent は呼び出し元ごとに独立した
// リミッターが使われることを検証する。
func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig(1))
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(okHandler())

	send := func(caller string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithCaller(req.Context(), caller))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	if code := send("alice"); code != http.StatusOK {
		t.Errorf("alice first request: status = %d, want 200", code)
	}
	if code := send("alice"); code != http.StatusTooManyRequests {
		t.Errorf("alice second request: status = %d, want 429", code)
	}
	// aliceが制限されてもbobは通る
	if code := send("bob"); code != http.StatusOK {
		t.Errorf("bob first request: status = %d, want 200", code)
	}

	if count := rl.GeneralLimiterCount(); count != 2 {
		t.Errorf("GeneralLimiterCount = %d, want 2", count)
	}
}

// TestRateLimiter_WriteIndependentFromGeneral は書き込みリミッターが
// API全般リミッターと独立にカウントされることを検証する。
func TestRateLimiter_WriteIndependentFromGeneral(t *testing.T) {
	rl := NewRateLimiter(testRateLimiterConfig(1))
	defer rl.Stop()

	general := rl.GeneralMiddleware()(okHandler())
	write := rl.WriteMiddleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithCaller(req.Context(), "alice"))

	w := httptest.NewRecorder()
	general.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("general: status = %d, want 200", w.Code)
	}

	// API全般のバーストを使い切っても書き込み側は未消費
	w = httptest.NewRecorder()
	write.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("write: status = %d, want 200", w.Code)
	}
}
