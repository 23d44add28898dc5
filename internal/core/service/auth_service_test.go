package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/accessflow/accessflow/internal/core/domain"
)

func newAuthFixture() (*AuthService, *stubUserRepo, *stubDenylist) {
	users := newStubUserRepo()
	profiles := newStubProfileRepo(
		domain.Profile{ID: 1, Name: domain.AdminProfileName, Description: "Acesso administrativo completo"},
		domain.Profile{ID: 2, Name: "comum", Description: "Acesso padrão"},
	)
	denylist := newStubDenylist()
	return NewAuthService(users, profiles, denylist, "secret", time.Hour), users, denylist
}

func TestAuthService_SignUp_Success(t *testing.T) {
	svc, _, _ := newAuthFixture()

	user, err := svc.SignUp(context.Background(), "Alice", "alice@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if user.PasswordHash == "s3cret1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if !user.Active {
		t.Fatalf("expected new account to be active")
	}
	if len(user.Profiles) != 1 || user.Profiles[0].Name != "comum" {
		t.Fatalf("expected default non-admin profile, got %+v", user.Profiles)
	}
}

func TestAuthService_SignUp_Duplicate(t *testing.T) {
	svc, _, _ := newAuthFixture()

	if _, err := svc.SignUp(context.Background(), "Bob", "bob@example.com", "pass123"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.SignUp(context.Background(), "Bobby", "bob@example.com", "pass456"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	svc, _, _ := newAuthFixture()

	if _, err := svc.SignUp(context.Background(), "", "x@example.com", "pass123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _ := newAuthFixture()

	if _, err := svc.SignUp(context.Background(), "Carol", "carol@example.com", "s3cret1"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "carol@example.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
	if claims["admin"] != false {
		t.Fatalf("expected admin=false for default profile, got %v", claims["admin"])
	}
}

func TestAuthService_Login_AdminClaim(t *testing.T) {
	svc, users, _ := newAuthFixture()

	hash, _ := bcrypt.GenerateFromPassword([]byte("rootpass"), bcrypt.DefaultCost)
	_, err := users.Create(context.Background(), &domain.User{
		Name:         "Root",
		Email:        "root@example.com",
		PasswordHash: string(hash),
		Active:       true,
		Profiles:     []domain.Profile{{ID: 1, Name: domain.AdminProfileName}},
	})
	if err != nil {
		t.Fatalf("seed admin failed: %v", err)
	}

	token, _, err := svc.Login(context.Background(), "root@example.com", "rootpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["admin"] != true {
		t.Fatalf("expected admin claim, got %v", claims["admin"])
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, _ = svc.SignUp(context.Background(), "Dave", "dave@example.com", "goodpass")
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	svc, users, _ := newAuthFixture()

	hash, _ := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	_, _ = users.Create(context.Background(), &domain.User{
		Name:         "Eve",
		Email:        "eve@example.com",
		PasswordHash: string(hash),
		Active:       false,
		Profiles:     []domain.Profile{{ID: 2, Name: "comum"}},
	})

	if _, _, err := svc.Login(context.Background(), "eve@example.com", "pass123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for inactive account, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _, denylist := newAuthFixture()

	if err := svc.Logout(context.Background(), "some-token"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	revoked, _ := denylist.IsRevoked(context.Background(), "some-token")
	if !revoked {
		t.Fatalf("expected token to be revoked")
	}

	if err := svc.Logout(context.Background(), ""); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated for empty token, got %v", err)
	}
}
