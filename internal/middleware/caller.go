// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// callerContextKey はコンテキストに呼び出し元ユーザー名を格納するためのキー型。
type callerContextKey struct{}

// CallerHeader は呼び出し元ユーザー名を運ぶHTTPヘッダー名。
// 書き込み操作の権限チェックに使用される。認証基盤は外部提供とみなし、
// このシステムはヘッダーで宣言された身元をユーザーストアに対して解決するだけ。
const CallerHeader = "X-Caller-Username"

// ErrNoCaller はコンテキストに呼び出し元が存在しないことを表す。
var ErrNoCaller = errors.New("no caller in context")

// WithCaller は呼び出し元ユーザー名をコンテキストに格納する。
func WithCaller(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, callerContextKey{}, username)
}

// CallerFromContext はコンテキストから呼び出し元ユーザー名を取り出す。
// 未設定の場合はErrNoCallerを返す。
func CallerFromContext(ctx context.Context) (string, error) {
	username, ok := ctx.Value(callerContextKey{}).(string)
	if !ok || username == "" {
		return "", ErrNoCaller
	}
	return username, nil
}

// NewCallerMiddleware はCallerHeaderヘッダーの値をコンテキストに取り込む
// ミドルウェアを返す。ヘッダーが無い場合もリクエストは通過させる。
// 身元の解決と権限チェックはサービス層で行う。
func NewCallerMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if username := r.Header.Get(CallerHeader); username != "" {
				r = r.WithContext(WithCaller(r.Context(), username))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitKey はレート制限のキーを返す。
// 呼び出し元ユーザー名があればそれを、無ければリモートアドレスのホスト部を使う。
func RateLimitKey(r *http.Request) string {
	if username, err := CallerFromContext(r.Context()); err == nil {
		return username
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
