package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/accessflow/accessflow/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a zero user id means
// the middleware did not run or the token carried no identity.
func ctxClaims(c echo.Context) (userID int64, admin bool, err error) {
	userID, _ = c.Get("user_id").(int64)
	if userID == 0 {
		return 0, false, domain.ErrUnauthenticated
	}
	admin, _ = c.Get("admin").(bool)
	return userID, admin, nil
}
