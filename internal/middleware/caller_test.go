package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestCallerFromContext は格納と取り出しの往復を検証する。
func TestCallerFromContext(t *testing.T) {
	ctx := WithCaller(context.Background(), "alice")

	caller, err := CallerFromContext(ctx)
	if err != nil {
		t.Fatalf("CallerFromContext returned error: %v", err)
	}
	if caller != "alice" {
		t.Errorf("caller = %q, want alice", caller)
	}
}

// TestCallerFromContext_Missing は未設定のコンテキストがErrNoCallerを返すことを検証する。
func TestCallerFromContext_Missing(t *testing.T) {
	_, err := CallerFromContext(context.Background())
	if err != ErrNoCaller {
		t.Errorf("err = %v, want ErrNoCaller", err)
	}
}

// TestNewCallerMiddleware はヘッダーの値がコンテキストに取り込まれることを検証する。
func TestNewCallerMiddleware(t *testing.T) {
	var gotCaller string
	var gotErr error
	handler := NewCallerMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCaller, gotErr = CallerFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CallerHeader, "alice")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotErr != nil {
		t.Fatalf("CallerFromContext returned error: %v", gotErr)
	}
	if gotCaller != "alice" {
		t.Errorf("caller = %q, want alice", gotCaller)
	}
}

// TestNewCallerMiddleware_NoHeader はヘッダー無しでもリクエストが通過することを検証する。
func TestNewCallerMiddleware_NoHeader(t *testing.T) {
	called := false
	handler := NewCallerMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, err := CallerFromContext(r.Context()); err != ErrNoCaller {
			t.Errorf("err = %v, want ErrNoCaller", err)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("expected handler to be called")
	}
}

// TestRateLimitKey は呼び出し元ユーザー名、無ければリモートホストが
// キーになることを検証する。
func TestRateLimitKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithCaller(req.Context(), "alice"))
	if key := RateLimitKey(req); key != "alice" {
		t.Errorf("key = %q, want alice", key)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	if key := RateLimitKey(req); key != "192.0.2.1" {
		t.Errorf("key = %q, want 192.0.2.1", key)
	}
}
