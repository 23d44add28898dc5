package ports

import (
	"context"

	"github.com/accessflow/accessflow/internal/core/domain"
)

type AuthService interface {
	// Login verifies credentials and returns a signed bearer token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// SignUp self-registers a new active account with the default profile.
	SignUp(ctx context.Context, name, email, password string) (*domain.User, error)
	// Logout revokes an issued token so it can no longer authenticate.
	Logout(ctx context.Context, token string) error
}
