package access

import (
	"context"
	"errors"
	"testing"

	"github.com/hitoshi/campman/internal/model"
	"github.com/hitoshi/campman/internal/repository"
)

func seedUsers(t *testing.T) repository.UserRepository {
	t.Helper()
	repo := repository.NewMemoryUserRepo()
	ctx := context.Background()

	users := []*model.User{
		{ID: "u-admin", Username: "admin1", Role: model.RoleAdmin},
		{ID: "u-manager", Username: "manager1", Role: model.RoleCampaignManager},
		{ID: "u-donor", Username: "donor1", Role: model.RoleDonor},
	}
	for _, u := range users {
		if err := repo.Insert(ctx, u); err != nil {
			t.Fatalf("Insert returned error: %v", err)
		}
	}
	return repo
}

// TestChecker_ResolveCaller は既存ユーザー名が呼び出し元に解決できることを検証する。
func TestChecker_ResolveCaller(t *testing.T) {
	checker := NewChecker(seedUsers(t))

	user, err := checker.ResolveCaller(context.Background(), "donor1")
	if err != nil {
		t.Fatalf("ResolveCaller returned error: %v", err)
	}
	if user.ID != "u-donor" {
		t.Errorf("ResolveCaller returned %s, want u-donor", user.ID)
	}
}

// TestChecker_ResolveCaller_Unknown は未知のユーザー名がUnauthorizedエラーになることを検証する。
func TestChecker_ResolveCaller_Unknown(t *testing.T) {
	checker := NewChecker(seedUsers(t))

	_, err := checker.ResolveCaller(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Kind != model.KindUnauthorized {
		t.Errorf("Kind = %s, want %s", apiErr.Kind, model.KindUnauthorized)
	}
	if apiErr.Message != "User not found" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "User not found")
	}
}

// TestChecker_ResolveCallerWithRole はロール一致・不一致の両ケースを検証する。
func TestChecker_ResolveCallerWithRole(t *testing.T) {
	checker := NewChecker(seedUsers(t))
	ctx := context.Background()

	user, err := checker.ResolveCallerWithRole(ctx, "donor1", model.RoleDonor)
	if err != nil {
		t.Fatalf("ResolveCallerWithRole returned error: %v", err)
	}
	if user.ID != "u-donor" {
		t.Errorf("ResolveCallerWithRole returned %s, want u-donor", user.ID)
	}

	_, err = checker.ResolveCallerWithRole(ctx, "admin1", model.RoleDonor)
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Kind != model.KindUnauthorized {
		t.Errorf("Kind = %s, want %s", apiErr.Kind, model.KindUnauthorized)
	}
}

// TestChecker_ResolveManager はAdminとCampaignManagerのみが管理権限を持つことを検証する。
func TestChecker_ResolveManager(t *testing.T) {
	checker := NewChecker(seedUsers(t))
	ctx := context.Background()

	tests := []struct {
		name    string
		userID  string
		wantErr bool
	}{
		{name: "admin", userID: "u-admin", wantErr: false},
		{name: "campaign manager", userID: "u-manager", wantErr: false},
		{name: "donor", userID: "u-donor", wantErr: true},
		{name: "unknown user", userID: "u-ghost", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := checker.ResolveManager(ctx, tt.userID)
			if tt.wantErr {
				var apiErr *model.APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected APIError, got %v", err)
				}
				if apiErr.Kind != model.KindUnauthorized {
					t.Errorf("Kind = %s, want %s", apiErr.Kind, model.KindUnauthorized)
				}
				return
			}
			if err != nil {
				t.Errorf("ResolveManager returned error: %v", err)
			}
		})
	}
}
