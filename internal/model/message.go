// Package model はドメインモデルを定義する。
package model

import "time"

// SecureMessage はキャンペーン内のセキュアメッセージを表す。
// Senderは既存ユーザーのIDを参照しなければならない。
// Contentは保存前にサニタイズされる。
type SecureMessage struct {
	ID         string
	CampaignID string
	Sender     string // User ID
	Content    string
	CreatedAt  time.Time
}
