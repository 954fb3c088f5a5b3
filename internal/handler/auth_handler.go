package handler

import (
	"net/http"

	"github.com/cardbook/cardbook-backend/internal/domain"
	"github.com/cardbook/cardbook-backend/internal/store"
	"github.com/cardbook/cardbook-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles the demo role toggle HTTP requests
type AuthHandler struct {
	roles     *store.RoleStore
	publisher websocket.EventPublisher
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(roles *store.RoleStore, publisher websocket.EventPublisher) *AuthHandler {
	return &AuthHandler{roles: roles, publisher: publisher}
}

// RoleResponse represents the current role
type RoleResponse struct {
	Role    domain.Role `json:"role"`
	IsAdmin bool        `json:"isAdmin"`
}

// GetRole handles GET /api/v1/auth/role
func (h *AuthHandler) GetRole(c echo.Context) error {
	role := h.roles.Role()
	return c.JSON(http.StatusOK, RoleResponse{
		Role:    role,
		IsAdmin: role == domain.RoleAdmin,
	})
}

// ToggleRole handles POST /api/v1/auth/role/toggle. Anyone can flip the role;
// this stands in for a real login, not for access control.
func (h *AuthHandler) ToggleRole(c echo.Context) error {
	role := h.roles.ToggleRole()

	log.Info().Str("role", string(role)).Msg("Role toggled")
	h.publisher.Publish(websocket.RoleChanged(map[string]string{"role": string(role)}))

	return c.JSON(http.StatusOK, RoleResponse{
		Role:    role,
		IsAdmin: role == domain.RoleAdmin,
	})
}
