package handler

import (
	"net/http"
	"strings"

	"github.com/cardbook/cardbook-backend/internal/domain"
	"github.com/cardbook/cardbook-backend/internal/store"
	"github.com/cardbook/cardbook-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// PersonHandler handles people HTTP requests
type PersonHandler struct {
	store     *store.ExpenseStore
	publisher websocket.EventPublisher
}

// NewPersonHandler creates a new PersonHandler
func NewPersonHandler(store *store.ExpenseStore, publisher websocket.EventPublisher) *PersonHandler {
	return &PersonHandler{store: store, publisher: publisher}
}

// CreatePersonRequest represents the create request body
type CreatePersonRequest struct {
	Name          string           `json:"name"`
	Team          string           `json:"team"`
	Active        *bool            `json:"active"`
	DefaultCard   string           `json:"defaultCard"`
	MonthlyBudget *decimal.Decimal `json:"monthlyBudget"`
	Notes         string           `json:"notes"`
}

// UpdatePersonRequest represents the partial update request body.
// ClearMonthlyBudget resets the personal budget to "unset", which is
// distinct from sending a zero budget.
type UpdatePersonRequest struct {
	Name               *string          `json:"name"`
	Team               *string          `json:"team"`
	Active             *bool            `json:"active"`
	DefaultCard        *string          `json:"defaultCard"`
	MonthlyBudget      *decimal.Decimal `json:"monthlyBudget"`
	ClearMonthlyBudget bool             `json:"clearMonthlyBudget"`
	Notes              *string          `json:"notes"`
}

// GetPeople handles GET /api/v1/people. The activeOnly query param narrows
// the list to people eligible for new transactions.
func (h *PersonHandler) GetPeople(c echo.Context) error {
	people := h.store.People()
	if c.QueryParam("activeOnly") == "true" {
		active := make([]*domain.Person, 0, len(people))
		for _, p := range people {
			if p.Active {
				active = append(active, p)
			}
		}
		people = active
	}
	return c.JSON(http.StatusOK, people)
}

// CreatePerson handles POST /api/v1/people
func (h *PersonHandler) CreatePerson(c echo.Context) error {
	var req CreatePersonRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if strings.TrimSpace(req.Name) == "" {
		return NewValidationError(c, "Invalid person", []ValidationError{
			{Field: "name", Message: "Must not be empty"},
		})
	}
	if req.MonthlyBudget != nil && req.MonthlyBudget.IsNegative() {
		return NewValidationError(c, "Invalid person", []ValidationError{
			{Field: "monthlyBudget", Message: "Must be zero or positive"},
		})
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created := h.store.AddPerson(domain.Person{
		Name:          strings.TrimSpace(req.Name),
		Team:          req.Team,
		Active:        active,
		DefaultCard:   req.DefaultCard,
		MonthlyBudget: req.MonthlyBudget,
		Notes:         req.Notes,
	})

	log.Info().Str("person_id", created.ID).Str("name", created.Name).Msg("Person created")
	h.publisher.Publish(websocket.PersonCreated(created))

	return c.JSON(http.StatusCreated, created)
}

// UpdatePerson handles PUT /api/v1/people/:id. An unknown id is a silent
// no-op (204). Renaming never cascades into existing transactions.
func (h *PersonHandler) UpdatePerson(c echo.Context) error {
	id := c.Param("id")

	var req UpdatePersonRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return NewValidationError(c, "Invalid person", []ValidationError{
			{Field: "name", Message: "Must not be empty"},
		})
	}
	if req.MonthlyBudget != nil && req.MonthlyBudget.IsNegative() {
		return NewValidationError(c, "Invalid person", []ValidationError{
			{Field: "monthlyBudget", Message: "Must be zero or positive"},
		})
	}

	updated := h.store.UpdatePerson(id, domain.PersonPatch{
		Name:               req.Name,
		Team:               req.Team,
		Active:             req.Active,
		DefaultCard:        req.DefaultCard,
		MonthlyBudget:      req.MonthlyBudget,
		ClearMonthlyBudget: req.ClearMonthlyBudget,
		Notes:              req.Notes,
	})
	if updated == nil {
		return c.NoContent(http.StatusNoContent)
	}

	h.publisher.Publish(websocket.PersonUpdated(updated))
	return c.JSON(http.StatusOK, updated)
}

// DeletePerson handles DELETE /api/v1/people/:id. Existing transactions
// referencing the person's name stay untouched.
func (h *PersonHandler) DeletePerson(c echo.Context) error {
	id := c.Param("id")
	h.store.DeletePerson(id)

	log.Info().Str("person_id", id).Msg("Person deleted")
	h.publisher.Publish(websocket.PersonDeleted(map[string]string{"id": id}))

	return c.NoContent(http.StatusNoContent)
}
