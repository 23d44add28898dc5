package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/accessflow/accessflow/internal/core/domain"
)

const testSecret = "test-secret"

type stubDenylist struct {
	revoked map[string]bool
}

func (d *stubDenylist) Revoke(_ context.Context, token string) error {
	if d.revoked == nil {
		d.revoked = make(map[string]bool)
	}
	d.revoked[token] = true
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	return d.revoked[token], nil
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func runAuth(t *testing.T, header string, denylist *stubDenylist) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return nil }
	err := Auth(testSecret, denylist)(next)(c)
	return c, err
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   float64(7),
		"email": "ana@example.com",
		"admin": true,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	c, err := runAuth(t, "Bearer "+token, &stubDenylist{})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got, _ := c.Get("user_id").(int64); got != 7 {
		t.Fatalf("expected user_id 7, got %v", c.Get("user_id"))
	}
	if admin, _ := c.Get("admin").(bool); !admin {
		t.Fatalf("expected admin claim to propagate")
	}
	if c.Get("token") != token {
		t.Fatalf("expected raw token in context")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	if _, err := runAuth(t, "", &stubDenylist{}); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	if _, err := runAuth(t, "Token abc", &stubDenylist{}); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuth_BadSignature(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	if _, err := runAuth(t, "Bearer "+token, &stubDenylist{}); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	if _, err := runAuth(t, "Bearer "+token, &stubDenylist{}); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": float64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	denylist := &stubDenylist{}
	_ = denylist.Revoke(context.Background(), token)

	if _, err := runAuth(t, "Bearer "+token, denylist); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for revoked token, got %v", err)
	}
}

func TestAdminOnly(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return nil }

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users", nil), httptest.NewRecorder())
	c.Set("admin", true)
	if err := AdminOnly()(next)(c); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users", nil), httptest.NewRecorder())
	c.Set("admin", false)
	if err := AdminOnly()(next)(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// No claim at all behaves like a non-admin session.
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users", nil), httptest.NewRecorder())
	if err := AdminOnly()(next)(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden without claim, got %v", err)
	}
}
