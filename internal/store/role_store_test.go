package store

import (
	"testing"

	"github.com/cardbook/cardbook-backend/internal/domain"
	"github.com/cardbook/cardbook-backend/internal/testutil"
)

func TestNewRoleStore_DefaultsToAdmin(t *testing.T) {
	repo := testutil.NewMockSnapshotRepository()
	store := NewRoleStore(repo)

	if store.Role() != domain.RoleAdmin {
		t.Errorf("Expected admin default, got %s", store.Role())
	}
	if !store.IsAdmin() {
		t.Error("Expected IsAdmin to be true")
	}
}

func TestToggleRole_FlipsAndPersists(t *testing.T) {
	repo := testutil.NewMockSnapshotRepository()
	store := NewRoleStore(repo)

	if got := store.ToggleRole(); got != domain.RoleUser {
		t.Errorf("Expected user after first toggle, got %s", got)
	}
	if store.IsAdmin() {
		t.Error("Expected IsAdmin to be false as user")
	}
	if got := store.ToggleRole(); got != domain.RoleAdmin {
		t.Errorf("Expected admin after second toggle, got %s", got)
	}

	if _, ok := repo.Saved(AuthStorageKey); !ok {
		t.Error("Expected role to be persisted under its own key")
	}
}

func TestNewRoleStore_LoadsPersistedRole(t *testing.T) {
	repo := testutil.NewMockSnapshotRepository()
	first := NewRoleStore(repo)
	first.ToggleRole()

	second := NewRoleStore(repo)
	if second.Role() != domain.RoleUser {
		t.Errorf("Expected persisted user role, got %s", second.Role())
	}
}

func TestNewRoleStore_InvalidRoleFallsBack(t *testing.T) {
	repo := testutil.NewMockSnapshotRepository()
	repo.Data[AuthStorageKey] = []byte(`{"role":"superuser"}`)

	store := NewRoleStore(repo)
	if store.Role() != domain.RoleAdmin {
		t.Errorf("Expected fallback to admin on invalid role, got %s", store.Role())
	}
}

func TestRoleStoreKeysAreIndependent(t *testing.T) {
	repo := testutil.NewMockSnapshotRepository()
	expense := NewExpenseStore(repo)
	roles := NewRoleStore(repo)

	expense.InitializeData()
	roles.ToggleRole()

	if _, ok := repo.Saved(StorageKey); !ok {
		t.Error("Expected expense snapshot")
	}
	if _, ok := repo.Saved(AuthStorageKey); !ok {
		t.Error("Expected auth snapshot")
	}
}
