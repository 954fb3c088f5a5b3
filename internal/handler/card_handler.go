package handler

import (
	"net/http"
	"strings"

	"github.com/cardbook/cardbook-backend/internal/domain"
	"github.com/cardbook/cardbook-backend/internal/store"
	"github.com/cardbook/cardbook-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// CardHandler handles corporate card HTTP requests
type CardHandler struct {
	store     *store.ExpenseStore
	publisher websocket.EventPublisher
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(store *store.ExpenseStore, publisher websocket.EventPublisher) *CardHandler {
	return &CardHandler{store: store, publisher: publisher}
}

// CreateCardRequest represents the create request body
type CreateCardRequest struct {
	Name           string `json:"name"`
	LastFourDigits string `json:"lastFourDigits"`
	Active         *bool  `json:"active"`
	IsDefault      bool   `json:"isDefault"`
}

// UpdateCardRequest represents the partial update request body
type UpdateCardRequest struct {
	Name           *string `json:"name"`
	LastFourDigits *string `json:"lastFourDigits"`
	Active         *bool   `json:"active"`
	IsDefault      *bool   `json:"isDefault"`
}

// GetCards handles GET /api/v1/cards
func (h *CardHandler) GetCards(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Cards())
}

// GetDefaultCard handles GET /api/v1/cards/default
func (h *CardHandler) GetDefaultCard(c echo.Context) error {
	card, ok := h.store.DefaultCard()
	if !ok {
		return NewNotFoundError(c, "No default card is set")
	}
	return c.JSON(http.StatusOK, card)
}

// CreateCard handles POST /api/v1/cards
func (h *CardHandler) CreateCard(c echo.Context) error {
	var req CreateCardRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var errs []ValidationError
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "Must not be empty"})
	}
	if !validCardDigits(req.LastFourDigits) {
		errs = append(errs, ValidationError{Field: "lastFourDigits", Message: "Must be exactly 4 digits"})
	}
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid card", errs)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created := h.store.AddCard(domain.Card{
		Name:           strings.TrimSpace(req.Name),
		LastFourDigits: req.LastFourDigits,
		Active:         active,
		IsDefault:      req.IsDefault,
	})

	log.Info().Str("card_id", created.ID).Str("label", created.Label()).Msg("Card created")
	h.publisher.Publish(websocket.CardCreated(created))

	return c.JSON(http.StatusCreated, created)
}

// UpdateCard handles PUT /api/v1/cards/:id. An unknown id is a silent
// no-op (204).
func (h *CardHandler) UpdateCard(c echo.Context) error {
	id := c.Param("id")

	var req UpdateCardRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var errs []ValidationError
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "Must not be empty"})
	}
	if req.LastFourDigits != nil && !validCardDigits(*req.LastFourDigits) {
		errs = append(errs, ValidationError{Field: "lastFourDigits", Message: "Must be exactly 4 digits"})
	}
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid card", errs)
	}

	updated := h.store.UpdateCard(id, domain.CardPatch{
		Name:           req.Name,
		LastFourDigits: req.LastFourDigits,
		Active:         req.Active,
		IsDefault:      req.IsDefault,
	})
	if updated == nil {
		return c.NoContent(http.StatusNoContent)
	}

	h.publisher.Publish(websocket.CardUpdated(updated))
	return c.JSON(http.StatusOK, updated)
}

// DeleteCard handles DELETE /api/v1/cards/:id. Deleting the current default
// card is rejected; callers must promote another card first.
func (h *CardHandler) DeleteCard(c echo.Context) error {
	id := c.Param("id")

	if def, ok := h.store.DefaultCard(); ok && def.ID == id {
		return NewConflictError(c, "Cannot delete the default card")
	}

	h.store.DeleteCard(id)

	log.Info().Str("card_id", id).Msg("Card deleted")
	h.publisher.Publish(websocket.CardDeleted(map[string]string{"id": id}))

	return c.NoContent(http.StatusNoContent)
}

// SetDefaultCard handles PUT /api/v1/cards/default/:id. The store rewrites
// every card's flag, so the single-default invariant holds afterwards.
func (h *CardHandler) SetDefaultCard(c echo.Context) error {
	id := c.Param("id")
	h.store.SetDefaultCard(id)

	card, ok := h.store.DefaultCard()
	if !ok {
		return NewNotFoundError(c, "Card not found: "+id)
	}

	log.Info().Str("card_id", card.ID).Msg("Default card changed")
	h.publisher.Publish(websocket.CardUpdated(card))

	return c.JSON(http.StatusOK, card)
}

// validCardDigits reports whether s is exactly four ASCII digits.
func validCardDigits(s string) bool {
	if len(s) != domain.CardDigitsLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
