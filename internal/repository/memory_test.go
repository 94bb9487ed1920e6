package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/hitoshi/campman/internal/model"
)

// --- テスト ---

// TestMemoryUserRepo_InsertAndFind は挿入したユーザーがIDとユーザー名で検索できることを検証する。
func TestMemoryUserRepo_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepo()

	u := &model.User{ID: "u-1", Username: "alice", Role: model.RoleAdmin}
	if err := repo.Insert(ctx, u); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	got, err := repo.FindByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if got == nil || got.Username != "alice" {
		t.Errorf("FindByID returned %+v, want alice", got)
	}

	got, err = repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}
	if got == nil || got.ID != "u-1" {
		t.Errorf("FindByUsername returned %+v, want u-1", got)
	}
}

// TestMemoryUserRepo_FindMissing は存在しないユーザーの検索がエラーなしでnilを返すことを検証する。
func TestMemoryUserRepo_FindMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepo()

	got, err := repo.FindByID(ctx, "nope")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if got != nil {
		t.Errorf("FindByID returned %+v, want nil", got)
	}

	got, err = repo.FindByUsername(ctx, "nope")
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}
	if got != nil {
		t.Errorf("FindByUsername returned %+v, want nil", got)
	}
}

// TestMemoryUserRepo_ListOrder は一覧が挿入順を保持することを検証する。
func TestMemoryUserRepo_ListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepo()

	for i := 0; i < 5; i++ {
		u := &model.User{ID: fmt.Sprintf("u-%d", i), Username: fmt.Sprintf("user%d", i), Role: model.RoleDonor}
		if err := repo.Insert(ctx, u); err != nil {
			t.Fatalf("Insert returned error: %v", err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 5 {
		t.Fatalf("List returned %d users, want 5", len(users))
	}
	for i, u := range users {
		want := fmt.Sprintf("u-%d", i)
		if u.ID != want {
			t.Errorf("users[%d].ID = %s, want %s", i, u.ID, want)
		}
	}
}

// TestMemoryUserRepo_ListByRole はロールフィルタが正確な一致のみを返すことを検証する。
func TestMemoryUserRepo_ListByRole(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepo()

	repo.Insert(ctx, &model.User{ID: "u-1", Username: "alice", Role: model.RoleAdmin})
	repo.Insert(ctx, &model.User{ID: "u-2", Username: "bob", Role: model.RoleDonor})
	repo.Insert(ctx, &model.User{ID: "u-3", Username: "carol", Role: model.RoleAdmin})

	admins, err := repo.ListByRole(ctx, model.RoleAdmin)
	if err != nil {
		t.Fatalf("ListByRole returned error: %v", err)
	}
	if len(admins) != 2 {
		t.Fatalf("ListByRole returned %d users, want 2", len(admins))
	}
	if admins[0].ID != "u-1" || admins[1].ID != "u-3" {
		t.Errorf("ListByRole order = [%s, %s], want [u-1, u-3]", admins[0].ID, admins[1].ID)
	}

	donors, err := repo.ListByRole(ctx, model.RoleDonor)
	if err != nil {
		t.Fatalf("ListByRole returned error: %v", err)
	}
	if len(donors) != 1 || donors[0].ID != "u-2" {
		t.Errorf("ListByRole(donor) = %+v, want [u-2]", donors)
	}
}

// TestMemoryCampaignRepo_ReplaceKeepsPosition は同一IDの再挿入が
// 内容を置換しつつ挿入順の位置を維持することを検証する。
func TestMemoryCampaignRepo_ReplaceKeepsPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCampaignRepo()

	repo.Insert(ctx, &model.Campaign{ID: "c-1", Name: "first"})
	repo.Insert(ctx, &model.Campaign{ID: "c-2", Name: "second"})
	repo.Insert(ctx, &model.Campaign{ID: "c-1", Name: "first-updated"})

	campaigns, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(campaigns) != 2 {
		t.Fatalf("List returned %d campaigns, want 2", len(campaigns))
	}
	if campaigns[0].ID != "c-1" || campaigns[0].Name != "first-updated" {
		t.Errorf("campaigns[0] = %+v, want c-1/first-updated", campaigns[0])
	}
	if campaigns[1].ID != "c-2" {
		t.Errorf("campaigns[1].ID = %s, want c-2", campaigns[1].ID)
	}
}

// TestMemoryDonationRepo_ListByCampaignID はキャンペーンIDでの絞り込みが
// 他キャンペーンの寄付を含まないことを検証する。
func TestMemoryDonationRepo_ListByCampaignID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryDonationRepo()

	repo.Insert(ctx, &model.Donation{ID: "d-1", CampaignID: "c-1", Amount: 100})
	repo.Insert(ctx, &model.Donation{ID: "d-2", CampaignID: "c-2", Amount: 200})
	repo.Insert(ctx, &model.Donation{ID: "d-3", CampaignID: "c-1", Amount: 300})

	donations, err := repo.ListByCampaignID(ctx, "c-1")
	if err != nil {
		t.Fatalf("ListByCampaignID returned error: %v", err)
	}
	if len(donations) != 2 {
		t.Fatalf("ListByCampaignID returned %d donations, want 2", len(donations))
	}
	if donations[0].ID != "d-1" || donations[1].ID != "d-3" {
		t.Errorf("order = [%s, %s], want [d-1, d-3]", donations[0].ID, donations[1].ID)
	}

	empty, err := repo.ListByCampaignID(ctx, "c-none")
	if err != nil {
		t.Fatalf("ListByCampaignID returned error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("ListByCampaignID(c-none) returned %d donations, want 0", len(empty))
	}
}

// TestMemoryNotificationRepo_AppendOrder は通知が生成順で返されることを検証する。
func TestMemoryNotificationRepo_AppendOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryNotificationRepo()

	messages := []string{"New campaign created.", "Campaign updated.", "New donation received."}
	for i, msg := range messages {
		repo.Insert(ctx, &model.Notification{ID: fmt.Sprintf("n-%d", i), CampaignID: "c-1", Message: msg})
	}

	notifications, err := repo.ListByCampaignID(ctx, "c-1")
	if err != nil {
		t.Fatalf("ListByCampaignID returned error: %v", err)
	}
	if len(notifications) != 3 {
		t.Fatalf("ListByCampaignID returned %d notifications, want 3", len(notifications))
	}
	for i, n := range notifications {
		if n.Message != messages[i] {
			t.Errorf("notifications[%d].Message = %q, want %q", i, n.Message, messages[i])
		}
	}
}

// TestOrderedStore_ConcurrentInsert は並行挿入後に全件が読み取れることを検証する。
func TestOrderedStore_ConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryExpenseRepo()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo.Insert(ctx, &model.Expense{
				ID:         fmt.Sprintf("e-%d", i),
				CampaignID: "c-1",
				Amount:     int64(i + 1),
			})
		}(i)
	}
	wg.Wait()

	expenses, err := repo.ListByCampaignID(ctx, "c-1")
	if err != nil {
		t.Fatalf("ListByCampaignID returned error: %v", err)
	}
	if len(expenses) != n {
		t.Errorf("ListByCampaignID returned %d expenses, want %d", len(expenses), n)
	}
}

// TestNewMemoryStores は全リポジトリが初期化されることを検証する。
func TestNewMemoryStores(t *testing.T) {
	stores := NewMemoryStores()

	if stores.Users == nil || stores.Campaigns == nil || stores.Donations == nil ||
		stores.Expenses == nil || stores.Outreach == nil || stores.Messages == nil ||
		stores.Notifications == nil {
		t.Error("NewMemoryStores returned stores with nil repository")
	}
}
