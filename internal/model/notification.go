// Package model はドメインモデルを定義する。
package model

import "time"

// Notification はキャンペーンに紐づく通知を表す。
// 状態変更操作の副作用としてのみ生成され、呼び出し側が直接作成することはない。
// 追記専用で削除されない。
type Notification struct {
	ID         string
	CampaignID string
	Message    string
	CreatedAt  time.Time
}
