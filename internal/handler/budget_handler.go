package handler

import (
	"net/http"

	"github.com/cardbook/cardbook-backend/internal/store"
	"github.com/cardbook/cardbook-backend/internal/util"
	"github.com/cardbook/cardbook-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles the shared monthly budget HTTP requests
type BudgetHandler struct {
	store     *store.ExpenseStore
	publisher websocket.EventPublisher
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(store *store.ExpenseStore, publisher websocket.EventPublisher) *BudgetHandler {
	return &BudgetHandler{store: store, publisher: publisher}
}

// BudgetResponse carries the raw amount plus its display rendering
type BudgetResponse struct {
	Budget  decimal.Decimal `json:"budget"`
	Display string          `json:"display"`
}

// UpdateBudgetRequest represents the budget replace request body
type UpdateBudgetRequest struct {
	Budget decimal.Decimal `json:"budget"`
}

// GetBudget handles GET /api/v1/budget
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	budget := h.store.Budget()
	return c.JSON(http.StatusOK, BudgetResponse{
		Budget:  budget,
		Display: util.FormatKRW(budget),
	})
}

// UpdateBudget handles PUT /api/v1/budget
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	var req UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.Budget.IsNegative() {
		return NewValidationError(c, "Invalid budget", []ValidationError{
			{Field: "budget", Message: "Must be zero or positive"},
		})
	}

	h.store.UpdateBudget(req.Budget)

	log.Info().Str("budget", req.Budget.String()).Msg("Budget updated")
	h.publisher.Publish(websocket.BudgetChanged(map[string]string{"budget": req.Budget.String()}))

	return c.JSON(http.StatusOK, BudgetResponse{
		Budget:  req.Budget,
		Display: util.FormatKRW(req.Budget),
	})
}
