package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/cardbook/cardbook-backend/internal/domain"
	"github.com/cardbook/cardbook-backend/internal/store"
	"github.com/cardbook/cardbook-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction and view-filter HTTP requests.
// All validation happens here; the store accepts whatever it is given.
type TransactionHandler struct {
	store     *store.ExpenseStore
	publisher websocket.EventPublisher
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(store *store.ExpenseStore, publisher websocket.EventPublisher) *TransactionHandler {
	return &TransactionHandler{store: store, publisher: publisher}
}

// CreateTransactionRequest represents the create request body
type CreateTransactionRequest struct {
	Date     string          `json:"date"`
	Merchant string          `json:"merchant"`
	Person   string          `json:"person"`
	Type     string          `json:"type"`
	Card     string          `json:"card"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
}

// UpdateTransactionRequest represents the partial update request body
type UpdateTransactionRequest struct {
	Date     *string          `json:"date"`
	Merchant *string          `json:"merchant"`
	Person   *string          `json:"person"`
	Type     *string          `json:"type"`
	Card     *string          `json:"card"`
	Amount   *decimal.Decimal `json:"amount"`
	Note     *string          `json:"note"`
}

// TransactionListResponse is the list response with the applied filters
type TransactionListResponse struct {
	Data    []*domain.Transaction `json:"data"`
	Filters domain.Filters        `json:"filters"`
	Total   int                   `json:"total"`
}

// UpdateFiltersRequest represents the filters merge request body
type UpdateFiltersRequest struct {
	Type   *string `json:"type"`
	Person *string `json:"person"`
	Card   *string `json:"card"`
}

// GetTransactions handles GET /api/v1/transactions. Query params narrow the
// list; dimensions left unset fall back to the persisted view filters.
// Filters never affect KPI aggregation, only this listing.
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	filters := h.store.Filters()
	if v := c.QueryParam("type"); v != "" {
		filters.Type = v
	}
	if v := c.QueryParam("person"); v != "" {
		filters.Person = v
	}
	if v := c.QueryParam("card"); v != "" {
		filters.Card = v
	}
	query := strings.ToLower(c.QueryParam("q"))

	all := h.store.Transactions()
	matched := make([]*domain.Transaction, 0, len(all))
	for _, t := range all {
		if !filters.Match(t) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Merchant), query) &&
			!strings.Contains(strings.ToLower(t.Person), query) {
			continue
		}
		matched = append(matched, t)
	}

	return c.JSON(http.StatusOK, TransactionListResponse{
		Data:    matched,
		Filters: filters,
		Total:   len(matched),
	})
}

// CreateTransaction handles POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if errs := validateTransactionFields(req.Date, req.Merchant, req.Person, req.Type, req.Card, &req.Amount); len(errs) > 0 {
		return NewValidationError(c, "Invalid transaction", errs)
	}

	created := h.store.AddTransaction(domain.Transaction{
		Date:     req.Date,
		Merchant: strings.TrimSpace(req.Merchant),
		Person:   req.Person,
		Type:     domain.TransactionType(req.Type),
		Card:     req.Card,
		Amount:   req.Amount,
		Note:     req.Note,
	})

	log.Info().Str("transaction_id", created.ID).Str("merchant", created.Merchant).Str("amount", created.Amount.String()).Msg("Transaction created")
	h.publisher.Publish(websocket.TransactionCreated(created))

	return c.JSON(http.StatusCreated, created)
}

// UpdateTransaction handles PUT /api/v1/transactions/:id. An unknown id is a
// silent no-op (204), matching the store contract.
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id := c.Param("id")

	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var errs []ValidationError
	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			errs = append(errs, ValidationError{Field: "date", Message: "Must be a YYYY-MM-DD date"})
		}
	}
	if req.Merchant != nil && strings.TrimSpace(*req.Merchant) == "" {
		errs = append(errs, ValidationError{Field: "merchant", Message: "Must not be empty"})
	}
	if req.Type != nil && *req.Type != string(domain.TransactionTypeCommon) && *req.Type != string(domain.TransactionTypePersonal) {
		errs = append(errs, ValidationError{Field: "type", Message: "Must be 'common' or 'personal'"})
	}
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid transaction", errs)
	}

	patch := domain.TransactionPatch{
		Date:     req.Date,
		Merchant: req.Merchant,
		Person:   req.Person,
		Card:     req.Card,
		Amount:   req.Amount,
		Note:     req.Note,
	}
	if req.Type != nil {
		t := domain.TransactionType(*req.Type)
		patch.Type = &t
	}

	updated := h.store.UpdateTransaction(id, patch)
	if updated == nil {
		return c.NoContent(http.StatusNoContent)
	}

	h.publisher.Publish(websocket.TransactionUpdated(updated))
	return c.JSON(http.StatusOK, updated)
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id := c.Param("id")
	h.store.DeleteTransaction(id)

	log.Info().Str("transaction_id", id).Msg("Transaction deleted")
	h.publisher.Publish(websocket.TransactionDeleted(map[string]string{"id": id}))

	return c.NoContent(http.StatusNoContent)
}

// GetFilters handles GET /api/v1/filters
func (h *TransactionHandler) GetFilters(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Filters())
}

// UpdateFilters handles PATCH /api/v1/filters. View state only, so this is
// not admin-gated.
func (h *TransactionHandler) UpdateFilters(c echo.Context) error {
	var req UpdateFiltersRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	filters := h.store.UpdateFilters(domain.FiltersPatch{
		Type:   req.Type,
		Person: req.Person,
		Card:   req.Card,
	})

	h.publisher.Publish(websocket.FiltersChanged(filters))
	return c.JSON(http.StatusOK, filters)
}

// validateTransactionFields checks the full field set used on create.
func validateTransactionFields(date, merchant, person, typ, card string, amount *decimal.Decimal) []ValidationError {
	var errs []ValidationError
	if _, err := time.Parse("2006-01-02", date); err != nil {
		errs = append(errs, ValidationError{Field: "date", Message: "Must be a YYYY-MM-DD date"})
	}
	if strings.TrimSpace(merchant) == "" {
		errs = append(errs, ValidationError{Field: "merchant", Message: "Must not be empty"})
	}
	if person == "" {
		errs = append(errs, ValidationError{Field: "person", Message: "Must not be empty"})
	}
	if typ != string(domain.TransactionTypeCommon) && typ != string(domain.TransactionTypePersonal) {
		errs = append(errs, ValidationError{Field: "type", Message: "Must be 'common' or 'personal'"})
	}
	if card == "" {
		errs = append(errs, ValidationError{Field: "card", Message: "Must not be empty"})
	}
	if amount.IsNegative() {
		errs = append(errs, ValidationError{Field: "amount", Message: "Must be zero or positive"})
	}
	return errs
}
