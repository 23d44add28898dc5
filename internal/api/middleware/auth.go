package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/accessflow/accessflow/internal/core/domain"
	"github.com/accessflow/accessflow/internal/core/ports"
)

// Auth validates the bearer JWT, rejects revoked tokens, and injects claims
// into context. Failures surface as domain.ErrUnauthenticated so the error
// handler emits the UNAUTHENTICATED code the client pipeline routes on.
func Auth(jwtSecret string, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrUnauthenticated
			}
			raw := parts[1]

			if denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), raw)
				if err != nil {
					return err
				}
				if revoked {
					return domain.ErrUnauthenticated
				}
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return domain.ErrUnauthenticated
			}

			if sub, ok := claims["sub"].(float64); ok {
				c.Set("user_id", int64(sub))
			}
			c.Set("email", claims["email"])
			admin, _ := claims["admin"].(bool)
			c.Set("admin", admin)
			c.Set("token", raw)

			return next(c)
		}
	}
}
