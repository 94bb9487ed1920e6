// Package model はドメインモデルを定義する。
package model

import "fmt"

// ErrorKind はAPIエラーの分類を表す閉じたタグ型。
// 全ての操作はこの4種類のいずれかのエラーまたは成功を返す。
type ErrorKind string

const (
	// KindNotFound は対象エンティティの未検出、または空の検索結果を表す。
	KindNotFound ErrorKind = "not_found"
	// KindInvalidPayload は必須フィールドの欠落や不正な値を表す。
	KindInvalidPayload ErrorKind = "invalid_payload"
	// KindUnauthorized は権限不足、または呼び出し元の身元が解決できないことを表す。
	KindUnauthorized ErrorKind = "unauthorized"
	// KindValidation は一意性制約違反（ユーザー名の重複）を表す。
	KindValidation ErrorKind = "validation"
)

// APIError は統一エラーフォーマットを表す。
// Kindによる分類と、人間可読なメッセージを含む。
type APIError struct {
	Kind    ErrorKind // エラー分類
	Code    string    // エラーコード
	Message string    // エラーメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidPayload    = "INVALID_PAYLOAD"
	ErrCodeInvalidRole       = "INVALID_ROLE"
	ErrCodeDuplicateUsername = "DUPLICATE_USERNAME"
	ErrCodeCallerNotFound    = "CALLER_NOT_FOUND"
	ErrCodeRoleForbidden     = "ROLE_FORBIDDEN"
	ErrCodeCampaignNotFound  = "CAMPAIGN_NOT_FOUND"
	ErrCodeDonationNotFound  = "DONATION_NOT_FOUND"
	ErrCodeUserNotFound      = "USER_NOT_FOUND"
	ErrCodeSenderNotFound    = "SENDER_NOT_FOUND"
	ErrCodeEmptyResult       = "EMPTY_RESULT"
)

// NewInvalidPayloadError はペイロード検証エラーを生成する。
func NewInvalidPayloadError(reason string) *APIError {
	return &APIError{
		Kind:    KindInvalidPayload,
		Code:    ErrCodeInvalidPayload,
		Message: fmt.Sprintf("invalid payload: %s", reason),
	}
}

// NewInvalidRoleError は未知のロール指定エラーを生成する。
func NewInvalidRoleError(role string) *APIError {
	return &APIError{
		Kind:    KindInvalidPayload,
		Code:    ErrCodeInvalidRole,
		Message: fmt.Sprintf("invalid role: %q", role),
	}
}

// NewDuplicateUsernameError はユーザー名重複エラーを生成する。
func NewDuplicateUsernameError(username string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Code:    ErrCodeDuplicateUsername,
		Message: fmt.Sprintf("username already taken: %s", username),
	}
}

// NewCallerNotFoundError は呼び出し元ユーザーが解決できない場合のエラーを生成する。
// 権限チェックの一部であるためUnauthorizedに分類される。
func NewCallerNotFoundError() *APIError {
	return &APIError{
		Kind:    KindUnauthorized,
		Code:    ErrCodeCallerNotFound,
		Message: "User not found",
	}
}

// NewRoleForbiddenError はロール不一致による権限エラーを生成する。
func NewRoleForbiddenError(required string) *APIError {
	return &APIError{
		Kind:    KindUnauthorized,
		Code:    ErrCodeRoleForbidden,
		Message: fmt.Sprintf("operation requires role: %s", required),
	}
}

// NewCampaignNotFoundError はキャンペーン未検出エラーを生成する。
func NewCampaignNotFoundError(campaignID string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Code:    ErrCodeCampaignNotFound,
		Message: fmt.Sprintf("campaign not found: %s", campaignID),
	}
}

// NewDonationNotFoundError は寄付未検出エラーを生成する。
func NewDonationNotFoundError(donationID string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Code:    ErrCodeDonationNotFound,
		Message: fmt.Sprintf("donation not found: %s", donationID),
	}
}

// NewUserNotFoundError はユーザー未検出エラーを生成する。
// 読み取り系のユーザー検索で使用する。呼び出し元の解決失敗にはNewCallerNotFoundErrorを使う。
func NewUserNotFoundError(username string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Code:    ErrCodeUserNotFound,
		Message: fmt.Sprintf("user not found: %s", username),
	}
}

// NewSenderNotFoundError はメッセージ送信者が既存ユーザーに解決できない場合のエラーを生成する。
func NewSenderNotFoundError(senderID string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Code:    ErrCodeSenderNotFound,
		Message: fmt.Sprintf("sender not found: %s", senderID),
	}
}

// NewEmptyResultError は空の検索結果エラーを生成する。
// 一覧系の読み取り操作は結果が0件の場合にこのエラーを返す。
func NewEmptyResultError(what string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Code:    ErrCodeEmptyResult,
		Message: fmt.Sprintf("no %s found", what),
	}
}
