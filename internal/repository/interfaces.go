// Package repository はデータ永続化のインターフェースを定義する。
//
// 各エンティティ種別ごとに独立した順序付きストアを持ち、IDによる取得、
// 挿入順を保った一覧取得、挿入（同一キーは置換）を提供する。
// 本システムにエンティティの削除は存在しないため、削除操作は公開しない。
// ユーザー名検索やロールフィルタは線形走査だが、インデックス化への差し替えが
// サービス層に影響しないようここに隔離する。
package repository

import (
	"context"

	"github.com/hitoshi/campman/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByUsername はユーザー名でユーザーを検索する。見つからない場合はnilを返す。
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// ListByRole は指定ロールのユーザー一覧を挿入順で返す。
	ListByRole(ctx context.Context, role model.Role) ([]*model.User, error)

	// List は全ユーザーを挿入順で返す。
	List(ctx context.Context) ([]*model.User, error)

	// Insert はユーザーを挿入する。同一IDが存在する場合は置換する。
	Insert(ctx context.Context, user *model.User) error
}

// CampaignRepository はキャンペーンデータの永続化インターフェース。
type CampaignRepository interface {
	// FindByID は指定IDのキャンペーンを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Campaign, error)

	// List は全キャンペーンを挿入順で返す。
	List(ctx context.Context) ([]*model.Campaign, error)

	// Insert はキャンペーンを挿入する。同一IDが存在する場合は置換する。
	Insert(ctx context.Context, campaign *model.Campaign) error
}

// DonationRepository は寄付データの永続化インターフェース。
type DonationRepository interface {
	// FindByID は指定IDの寄付を取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.Donation, error)

	// ListByCampaignID は指定キャンペーンの寄付一覧を挿入順で返す。
	ListByCampaignID(ctx context.Context, campaignID string) ([]*model.Donation, error)

	// Insert は寄付を挿入する。
	Insert(ctx context.Context, donation *model.Donation) error
}

// ExpenseRepository は経費データの永続化インターフェース。
type ExpenseRepository interface {
	// ListByCampaignID は指定キャンペーンの経費一覧を挿入順で返す。
	ListByCampaignID(ctx context.Context, campaignID string) ([]*model.Expense, error)

	// Insert は経費を挿入する。
	Insert(ctx context.Context, expense *model.Expense) error
}

// OutreachRepository は有権者働きかけ活動データの永続化インターフェース。
type OutreachRepository interface {
	// ListByCampaignID は指定キャンペーンの活動一覧を挿入順で返す。
	ListByCampaignID(ctx context.Context, campaignID string) ([]*model.VoterOutreach, error)

	// Insert は活動を挿入する。
	Insert(ctx context.Context, outreach *model.VoterOutreach) error
}

// MessageRepository はセキュアメッセージデータの永続化インターフェース。
type MessageRepository interface {
	// ListByCampaignID は指定キャンペーンのメッセージ一覧を挿入順で返す。
	ListByCampaignID(ctx context.Context, campaignID string) ([]*model.SecureMessage, error)

	// Insert はメッセージを挿入する。
	Insert(ctx context.Context, message *model.SecureMessage) error
}

// NotificationRepository は通知データの永続化インターフェース。追記専用。
type NotificationRepository interface {
	// ListByCampaignID は指定キャンペーンの通知一覧を生成順で返す。
	ListByCampaignID(ctx context.Context, campaignID string) ([]*model.Notification, error)

	// Insert は通知を挿入する。
	Insert(ctx context.Context, notification *model.Notification) error
}

// Stores は全エンティティ種別のリポジトリをまとめた構造体。
// プロセス起動時に一度だけ構築し、各サービスのコンストラクタに渡す。
// グローバル変数を避けることでテストごとに独立したストアを使える。
type Stores struct {
	Users         UserRepository
	Campaigns     CampaignRepository
	Donations     DonationRepository
	Expenses      ExpenseRepository
	Outreach      OutreachRepository
	Messages      MessageRepository
	Notifications NotificationRepository
}
