package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/accessflow/accessflow/internal/core/domain"
)

// AdminOnly restricts a route to sessions carrying the admin claim.
// Non-admin callers get domain.ErrForbidden: the session stays valid, only
// the attempted operation is denied (distinct from ErrUnauthenticated).
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin, _ := c.Get("admin").(bool)
			if !admin {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
