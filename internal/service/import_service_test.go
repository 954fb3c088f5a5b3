package service

import (
	"testing"

	"github.com/cardbook/cardbook-backend/internal/domain"
	"github.com/cardbook/cardbook-backend/internal/store"
	"github.com/cardbook/cardbook-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func newImportFixture() (*ImportService, *store.ExpenseStore) {
	expenseStore := store.NewExpenseStore(testutil.NewMockSnapshotRepository())
	return NewImportService(expenseStore), expenseStore
}

func TestProviders_Catalog(t *testing.T) {
	importer, _ := newImportFixture()

	providers := importer.Providers()
	if len(providers) != 4 {
		t.Fatalf("Expected 4 providers, got %d", len(providers))
	}

	byID := make(map[string]domain.ImportProvider)
	for _, p := range providers {
		byID[p.ID] = p
	}

	internal, ok := byID[ProviderInternal]
	if !ok {
		t.Fatal("Expected internal provider")
	}
	if !internal.Available {
		t.Error("Expected internal provider to be available")
	}

	for _, id := range []string{ProviderSamsung, ProviderCSV, ProviderBank} {
		p, ok := byID[id]
		if !ok {
			t.Fatalf("Expected provider %s", id)
		}
		if p.Available {
			t.Errorf("Expected provider %s to be unavailable", id)
		}
		if len(p.Requirements) == 0 {
			t.Errorf("Expected provider %s to list requirements", id)
		}
	}
}

func TestFetchCandidates_Internal(t *testing.T) {
	importer, _ := newImportFixture()

	candidates, err := importer.FetchCandidates(ProviderInternal)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(candidates) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(candidates))
	}

	for _, c := range candidates {
		if c.ID == "" {
			t.Error("Expected assigned candidate id")
		}
		if !c.Selected {
			t.Errorf("Expected internal candidate %s to be pre-selected", c.Merchant)
		}
	}
}

func TestFetchCandidates_MockedProviders(t *testing.T) {
	importer, _ := newImportFixture()

	candidates, err := importer.FetchCandidates(ProviderCSV)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(candidates) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(candidates))
	}
	if candidates[0].Category == "" {
		t.Error("Expected categorized candidates")
	}
	if candidates[0].Selected {
		t.Error("Expected mocked provider candidates to start unselected")
	}
}

func TestFetchCandidates_UnknownProvider(t *testing.T) {
	importer, _ := newImportFixture()

	if _, err := importer.FetchCandidates("paypal"); err != domain.ErrUnknownProvider {
		t.Errorf("Expected ErrUnknownProvider, got %v", err)
	}
}

func TestCommit_SkipsUnselectedAndUnassigned(t *testing.T) {
	importer, expenseStore := newImportFixture()

	entries := []domain.ImportTransaction{
		{Date: "2026-01-13", Merchant: "스타벅스", Amount: decimal.NewFromInt(25000), Card: "**** 4242",
			Selected: true, Person: "김철수", Type: domain.TransactionTypeCommon},
		{Date: "2026-01-12", Merchant: "GS25", Amount: decimal.NewFromInt(8500), Card: "**** 5555",
			Selected: false, Person: "김철수", Type: domain.TransactionTypeCommon},
		{Date: "2026-01-11", Merchant: "쿠팡", Amount: decimal.NewFromInt(145000), Card: "**** 4242",
			Selected: true, Person: "", Type: domain.TransactionTypeCommon},
		{Date: "2026-01-10", Merchant: "이마트", Amount: decimal.NewFromInt(125990), Card: "**** 4242",
			Selected: true, Person: "이영희"},
	}

	imported := importer.Commit(entries)
	if len(imported) != 1 {
		t.Fatalf("Expected 1 imported transaction, got %d", len(imported))
	}
	if imported[0].Merchant != "스타벅스" {
		t.Errorf("Expected 스타벅스 imported, got %s", imported[0].Merchant)
	}
	if len(expenseStore.Transactions()) != 1 {
		t.Errorf("Expected 1 stored transaction, got %d", len(expenseStore.Transactions()))
	}
}

func TestCommit_NoteFromCategory(t *testing.T) {
	importer, _ := newImportFixture()

	imported := importer.Commit([]domain.ImportTransaction{
		{Date: "2026-01-10", Merchant: "이마트", Amount: decimal.NewFromInt(125990), Category: "쇼핑",
			Selected: true, Person: "이영희", Type: domain.TransactionTypeCommon},
		{Date: "2026-01-13", Merchant: "스타벅스", Amount: decimal.NewFromInt(25000),
			Selected: true, Person: "김철수", Type: domain.TransactionTypePersonal},
	})
	if len(imported) != 2 {
		t.Fatalf("Expected 2 imported transactions, got %d", len(imported))
	}

	if imported[0].Note != "쇼핑에서 가져옴" {
		t.Errorf("Expected category note, got %s", imported[0].Note)
	}
	if imported[1].Note != "가져온 내역" {
		t.Errorf("Expected fallback note, got %s", imported[1].Note)
	}
}

func TestCommit_EmptyEntries(t *testing.T) {
	importer, expenseStore := newImportFixture()

	imported := importer.Commit(nil)
	if len(imported) != 0 {
		t.Errorf("Expected no imports, got %d", len(imported))
	}
	if len(expenseStore.Transactions()) != 0 {
		t.Errorf("Expected empty store, got %d", len(expenseStore.Transactions()))
	}
}
