// Package model はドメインモデルを定義する。
package model

import "time"

// Role はユーザーの役割を表す閉じたタグ型。
type Role string

const (
	// RoleAdmin は管理者。キャンペーン管理と経費記録の権限を持つ。
	RoleAdmin Role = "admin"
	// RoleCampaignManager はキャンペーンマネージャー。キャンペーンの作成・更新が可能。
	RoleCampaignManager Role = "campaign_manager"
	// RoleDonor は寄付者。寄付の記録のみ可能。
	RoleDonor Role = "donor"
)

// ParseRole は文字列をRoleに変換する。未知の値の場合はfalseを返す。
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleCampaignManager, RoleDonor:
		return Role(s), true
	default:
		return "", false
	}
}

// User はサービス利用ユーザーを表す。
// Usernameは作成時に全ユーザーを走査して一意性が保証される。
type User struct {
	ID            string
	OwnerIdentity string
	Username      string
	Role          Role
	Points        int
	CreatedAt     time.Time
}
