// Package model はドメインモデルを定義する。
package model

import "time"

// Donation はキャンペーンへの寄付を表す。
// Amountは正の整数のみ許可される。
type Donation struct {
	ID         string
	CampaignID string
	DonorName  string
	Amount     int64
	CreatedAt  time.Time
}

// Expense はキャンペーンの経費を表す。
// Amountは正の整数のみ許可される。
type Expense struct {
	ID          string
	CampaignID  string
	Description string
	Amount      int64
	CreatedAt   time.Time
}
