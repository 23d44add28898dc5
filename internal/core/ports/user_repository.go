package ports

import (
	"context"

	"github.com/accessflow/accessflow/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByParams returns the first user matching the filter.
	// Returns domain.ErrNoMatch when nothing matches.
	FindByParams(ctx context.Context, filter domain.UserFilter) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (total int64, active int64, err error)
	// CountWithProfile reports how many users carry the given profile.
	CountWithProfile(ctx context.Context, profileID int64) (int64, error)
}
