package ports

import (
	"context"

	"github.com/accessflow/accessflow/internal/core/domain"
)

// UserInput carries the mutable fields of a user for create/update operations.
// Password is optional on update; an empty value keeps the current hash.
type UserInput struct {
	Name       string
	Email      string
	Password   string
	Active     bool
	ProfileIDs []int64
}

type UserService interface {
	GetAll(ctx context.Context) ([]*domain.User, error)
	// GetByParams resolves a filter to a single user (domain.ErrNoMatch when none).
	GetByParams(ctx context.Context, filter domain.UserFilter) (*domain.User, error)
	Create(ctx context.Context, input UserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
