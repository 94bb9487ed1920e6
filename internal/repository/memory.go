package repository

import (
	"context"
	"sync"

	"github.com/hitoshi/campman/internal/model"
)

// orderedStore はIDをキーとする挿入順保持のインメモリストア。
// 各操作は単一のマップ操作でありミューテックスで直列化されるため、
// ストアに対する操作はアトミックに完結する。
type orderedStore[T any] struct {
	mu    sync.RWMutex
	ids   []string
	items map[string]T
}

func newOrderedStore[T any]() *orderedStore[T] {
	return &orderedStore[T]{items: make(map[string]T)}
}

// get は指定IDの値を返す。存在しない場合はfalseを返す。
func (s *orderedStore[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	return v, ok
}

// insert は値を挿入する。既存IDの場合は置換し、挿入順の位置は維持される。
func (s *orderedStore[T]) insert(id string, v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		s.ids = append(s.ids, id)
	}
	s.items[id] = v
}

// list は全ての値を挿入順で返す。
func (s *orderedStore[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.items[id])
	}
	return out
}

// MemoryUserRepo はインメモリのユーザーリポジトリ。
type MemoryUserRepo struct {
	store *orderedStore[*model.User]
}

// NewMemoryUserRepo はMemoryUserRepoを生成する。
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{store: newOrderedStore[*model.User]()}
}

// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
func (r *MemoryUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := r.store.get(id)
	if !ok {
		return nil, nil
	}
	return u, nil
}

// FindByUsername はユーザー名でユーザーを線形走査で検索する。見つからない場合はnilを返す。
func (r *MemoryUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range r.store.list() {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// ListByRole は指定ロールのユーザー一覧を挿入順で返す。
func (r *MemoryUserRepo) ListByRole(ctx context.Context, role model.Role) ([]*model.User, error) {
	var out []*model.User
	for _, u := range r.store.list() {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

// List は全ユーザーを挿入順で返す。
func (r *MemoryUserRepo) List(ctx context.Context) ([]*model.User, error) {
	return r.store.list(), nil
}

// Insert はユーザーを挿入する。同一IDが存在する場合は置換する。
func (r *MemoryUserRepo) Insert(ctx context.Context, user *model.User) error {
	r.store.insert(user.ID, user)
	return nil
}

// MemoryCampaignRepo はインメモリのキャンペーンリポジトリ。
type MemoryCampaignRepo struct {
	store *orderedStore[*model.Campaign]
}

// NewMemoryCampaignRepo はMemoryCampaignRepoを生成する。
func NewMemoryCampaignRepo() *MemoryCampaignRepo {
	return &MemoryCampaignRepo{store: newOrderedStore[*model.Campaign]()}
}

// FindByID は指定IDのキャンペーンを取得する。見つからない場合はnilを返す。
func (r *MemoryCampaignRepo) FindByID(ctx context.Context, id string) (*model.Campaign, error) {
	c, ok := r.store.get(id)
	if !ok {
		return nil, nil
	}
	return c, nil
}

// List は全キャンペーンを挿入順で返す。
func (r *MemoryCampaignRepo) List(ctx context.Context) ([]*model.Campaign, error) {
	return r.store.list(), nil
}

// Insert はキャンペーンを挿入する。同一IDが存在する場合は置換する。
func (r *MemoryCampaignRepo) Insert(ctx context.Context, campaign *model.Campaign) error {
	r.store.insert(campaign.ID, campaign)
	return nil
}

// MemoryDonationRepo はインメモリの寄付リポジトリ。
type MemoryDonationRepo struct {
	store *orderedStore[*model.Donation]
}

// NewMemoryDonationRepo はMemoryDonationRepoを生成する。
func NewMemoryDonationRepo() *MemoryDonationRepo {
	return &MemoryDonationRepo{store: newOrderedStore[*model.Donation]()}
}

// FindByID は指定IDの寄付を取得する。見つからない場合はnilを返す。
func (r *MemoryDonationRepo) FindByID(ctx context.Context, id string) (*model.Donation, error) {
	d, ok := r.store.get(id)
	if !ok {
		return nil, nil
	}
	return d, nil
}

// ListByCampaignID は指定キャンペーンの寄付一覧を挿入順で返す。
func (r *MemoryDonationRepo) ListByCampaignID(ctx context.Context, campaignID string) ([]*model.Donation, error) {
	var out []*model.Donation
	for _, d := range r.store.list() {
		if d.CampaignID == campaignID {
			out = append(out, d)
		}
	}
	return out, nil
}

// Insert は寄付を挿入する。
func (r *MemoryDonationRepo) Insert(ctx context.Context, donation *model.Donation) error {
	r.store.insert(donation.ID, donation)
	return nil
}

// MemoryExpenseRepo はインメモリの経費リポジトリ。
type MemoryExpenseRepo struct {
	store *orderedStore[*model.Expense]
}

// NewMemoryExpenseRepo はMemoryExpenseRepoを生成する。
func NewMemoryExpenseRepo() *MemoryExpenseRepo {
	return &MemoryExpenseRepo{store: newOrderedStore[*model.Expense]()}
}

// ListByCampaignID は指定キャンペーンの経費一覧を挿入順で返す。
func (r *MemoryExpenseRepo) ListByCampaignID(ctx context.Context, campaignID string) ([]*model.Expense, error) {
	var out []*model.Expense
	for _, e := range r.store.list() {
		if e.CampaignID == campaignID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Insert は経費を挿入する。
func (r *MemoryExpenseRepo) Insert(ctx context.Context, expense *model.Expense) error {
	r.store.insert(expense.ID, expense)
	return nil
}

// MemoryOutreachRepo はインメモリの有権者働きかけ活動リポジトリ。
type MemoryOutreachRepo struct {
	store *orderedStore[*model.VoterOutreach]
}

// NewMemoryOutreachRepo はMemoryOutreachRepoを生成する。
func NewMemoryOutreachRepo() *MemoryOutreachRepo {
	return &MemoryOutreachRepo{store: newOrderedStore[*model.VoterOutreach]()}
}

// ListByCampaignID は指定キャンペーンの活動一覧を挿入順で返す。
func (r *MemoryOutreachRepo) ListByCampaignID(ctx context.Context, campaignID string) ([]*model.VoterOutreach, error) {
	var out []*model.VoterOutreach
	for _, o := range r.store.list() {
		if o.CampaignID == campaignID {
			out = append(out, o)
		}
	}
	return out, nil
}

// Insert は活動を挿入する。
func (r *MemoryOutreachRepo) Insert(ctx context.Context, outreach *model.VoterOutreach) error {
	r.store.insert(outreach.ID, outreach)
	return nil
}

// MemoryMessageRepo はインメモリのセキュアメッセージリポジトリ。
type MemoryMessageRepo struct {
	store *orderedStore[*model.SecureMessage]
}

// NewMemoryMessageRepo はMemoryMessageRepoを生成する。
func NewMemoryMessageRepo() *MemoryMessageRepo {
	return &MemoryMessageRepo{store: newOrderedStore[*model.SecureMessage]()}
}

// ListByCampaignID は指定キャンペーンのメッセージ一覧を挿入順で返す。
func (r *MemoryMessageRepo) ListByCampaignID(ctx context.Context, campaignID string) ([]*model.SecureMessage, error) {
	var out []*model.SecureMessage
	for _, m := range r.store.list() {
		if m.CampaignID == campaignID {
			out = append(out, m)
		}
	}
	return out, nil
}

// Insert はメッセージを挿入する。
func (r *MemoryMessageRepo) Insert(ctx context.Context, message *model.SecureMessage) error {
	r.store.insert(message.ID, message)
	return nil
}

// MemoryNotificationRepo はインメモリの通知リポジトリ。
type MemoryNotificationRepo struct {
	store *orderedStore[*model.Notification]
}

// NewMemoryNotificationRepo はMemoryNotificationRepoを生成する。
func NewMemoryNotificationRepo() *MemoryNotificationRepo {
	return &MemoryNotificationRepo{store: newOrderedStore[*model.Notification]()}
}

// ListByCampaignID は指定キャンペーンの通知一覧を生成順で返す。
func (r *MemoryNotificationRepo) ListByCampaignID(ctx context.Context, campaignID string) ([]*model.Notification, error) {
	var out []*model.Notification
	for _, n := range r.store.list() {
		if n.CampaignID == campaignID {
			out = append(out, n)
		}
	}
	return out, nil
}

// Insert は通知を挿入する。
func (r *MemoryNotificationRepo) Insert(ctx context.Context, notification *model.Notification) error {
	r.store.insert(notification.ID, notification)
	return nil
}

// NewMemoryStores は全エンティティのインメモリリポジトリ一式を生成する。
func NewMemoryStores() *Stores {
	return &Stores{
		Users:         NewMemoryUserRepo(),
		Campaigns:     NewMemoryCampaignRepo(),
		Donations:     NewMemoryDonationRepo(),
		Expenses:      NewMemoryExpenseRepo(),
		Outreach:      NewMemoryOutreachRepo(),
		Messages:      NewMemoryMessageRepo(),
		Notifications: NewMemoryNotificationRepo(),
	}
}

// --- compile-time interface checks ---

var _ UserRepository = (*MemoryUserRepo)(nil)
var _ CampaignRepository = (*MemoryCampaignRepo)(nil)
var _ DonationRepository = (*MemoryDonationRepo)(nil)
var _ ExpenseRepository = (*MemoryExpenseRepo)(nil)
var _ OutreachRepository = (*MemoryOutreachRepo)(nil)
var _ MessageRepository = (*MemoryMessageRepo)(nil)
var _ NotificationRepository = (*MemoryNotificationRepo)(nil)
