// Package security はアプリケーションのセキュリティ機能を提供する。
//
// ContentSanitizerService はユーザーが入力するテキスト（セキュアメッセージの本文、
// キャンペーンの説明文）をサニタイズし、XSS攻撃などのセキュリティリスクから
// 閲覧者を保護する。bluemondayライブラリの厳格ポリシーを使用し、
// HTMLタグを一切通過させない。
package security

import "github.com/microcosm-cc/bluemonday"

// ContentSanitizerService はテキストコンテンツのサニタイズ機能のインターフェースを定義する。
// エンティティの保存前に使用される。
type ContentSanitizerService interface {
	// Sanitize は入力テキストからHTMLタグを全て除去して返す。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(raw string) string
}

// contentSanitizer はContentSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type contentSanitizer struct {
	policy *bluemonday.Policy
}

// NewContentSanitizer はContentSanitizerServiceの新しいインスタンスを生成する。
// 記録システムのテキストフィールドにHTMLが混入する正当な理由はないため、
// StrictPolicy（全タグ除去）を使用する。
func NewContentSanitizer() *contentSanitizer {
	return &contentSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize は入力テキストからHTMLタグを全て除去して返す。
func (s *contentSanitizer) Sanitize(raw string) string {
	return s.policy.Sanitize(raw)
}
