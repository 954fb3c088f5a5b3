package sqlite

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/cardbook/cardbook-backend/internal/domain"
)

func openTestRepo(t *testing.T) *SnapshotRepository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("Failed to open repo: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestLoad_MissingKey(t *testing.T) {
	repo := openTestRepo(t)

	if _, err := repo.Load("expense-tracker-storage"); err != domain.ErrSnapshotNotFound {
		t.Errorf("Expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	repo := openTestRepo(t)

	blob := []byte(`{"budget":"10000000"}`)
	if err := repo.Save("expense-tracker-storage", blob); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	loaded, err := repo.Load("expense-tracker-storage")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if !bytes.Equal(loaded, blob) {
		t.Errorf("Expected %s, got %s", blob, loaded)
	}
}

func TestSave_ReplacesExisting(t *testing.T) {
	repo := openTestRepo(t)

	if err := repo.Save("key", []byte("v1")); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if err := repo.Save("key", []byte("v2")); err != nil {
		t.Fatalf("Failed to overwrite: %v", err)
	}

	loaded, err := repo.Load("key")
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if string(loaded) != "v2" {
		t.Errorf("Expected v2, got %s", loaded)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	repo := openTestRepo(t)

	if err := repo.Save("expense-tracker-storage", []byte("state")); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if err := repo.Save("expense-auth-storage", []byte("auth")); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	state, err := repo.Load("expense-tracker-storage")
	if err != nil || string(state) != "state" {
		t.Errorf("Expected state blob, got %s (%v)", state, err)
	}
	auth, err := repo.Load("expense-auth-storage")
	if err != nil || string(auth) != "auth" {
		t.Errorf("Expected auth blob, got %s (%v)", auth, err)
	}
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "snapshots.db")
	repo, err := Open(path)
	if err != nil {
		t.Fatalf("Expected nested dirs to be created, got %v", err)
	}
	repo.Close()
}
