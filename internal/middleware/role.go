package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AdminChecker reports whether the current role permits mutations.
type AdminChecker interface {
	IsAdmin() bool
}

// RequireAdmin rejects mutating requests while the role gate is set to user.
// The gate itself never blocks store calls; this middleware is the call-site
// check the store contract expects from its caller.
func RequireAdmin(auth AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !auth.IsAdmin() {
				log.Warn().
					Str("method", c.Request().Method).
					Str("path", c.Request().URL.Path).
					Msg("Mutation rejected for non-admin role")

				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"type":   "https://cardbook.app/errors/forbidden",
					"title":  "Forbidden",
					"status": http.StatusForbidden,
					"detail": "Administrator role required for this action",
				})
			}
			return next(c)
		}
	}
}
