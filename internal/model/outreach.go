// Package model はドメインモデルを定義する。
package model

import "time"

// VoterOutreach は有権者への働きかけ活動を表す。
// DateとStatusは非空であること以外の制約を持たない自由形式の文字列。
type VoterOutreach struct {
	ID         string
	CampaignID string
	Activity   string
	Date       string
	Status     string
	CreatedAt  time.Time
}
