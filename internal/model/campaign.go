// Package model はドメインモデルを定義する。
package model

import "time"

// Campaign は選挙キャンペーンを表す。
// 作成後の更新ではName、Description、CreatedBy、UpdatedAtのみ置き換えられ、
// IDとCreatedAtは不変。キャンペーンは削除されない。
type Campaign struct {
	ID          string
	Name        string
	Description string
	CreatedBy   string // User ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
