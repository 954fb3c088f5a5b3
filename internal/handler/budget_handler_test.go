package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cardbook/cardbook-backend/internal/store"
	"github.com/cardbook/cardbook-backend/internal/testutil"
	"github.com/cardbook/cardbook-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newBudgetFixture() (*BudgetHandler, *store.ExpenseStore) {
	expenseStore := store.NewExpenseStore(testutil.NewMockSnapshotRepository())
	return NewBudgetHandler(expenseStore, &websocket.NoOpPublisher{}), expenseStore
}

func TestGetBudget_Default(t *testing.T) {
	e := echo.New()
	handler, _ := newBudgetFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/budget", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response BudgetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !response.Budget.Equal(decimal.NewFromInt(10000000)) {
		t.Errorf("Expected default budget 10000000, got %s", response.Budget.String())
	}
	if response.Display != "₩10,000,000" {
		t.Errorf("Expected display ₩10,000,000, got %s", response.Display)
	}
}

func TestUpdateBudget_Success(t *testing.T) {
	e := echo.New()
	handler, expenseStore := newBudgetFixture()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/budget", strings.NewReader(`{"budget": 5000000}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.UpdateBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	if !expenseStore.Budget().Equal(decimal.NewFromInt(5000000)) {
		t.Errorf("Expected budget 5000000, got %s", expenseStore.Budget().String())
	}
}

func TestUpdateBudget_RejectsNegative(t *testing.T) {
	e := echo.New()
	handler, expenseStore := newBudgetFixture()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/budget", strings.NewReader(`{"budget": -1}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.UpdateBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
	if !expenseStore.Budget().Equal(decimal.NewFromInt(10000000)) {
		t.Error("Expected budget unchanged")
	}
}

func TestUpdateBudget_AcceptsZero(t *testing.T) {
	e := echo.New()
	handler, expenseStore := newBudgetFixture()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/budget", strings.NewReader(`{"budget": 0}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.UpdateBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if !expenseStore.Budget().IsZero() {
		t.Errorf("Expected zero budget, got %s", expenseStore.Budget().String())
	}
}
