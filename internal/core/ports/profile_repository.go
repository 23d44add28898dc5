package ports

import (
	"context"

	"github.com/accessflow/accessflow/internal/core/domain"
)

// ProfileRepository defines persistence operations for access profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	// FindByParams returns the first profile matching the filter.
	// Returns domain.ErrNoMatch when nothing matches.
	FindByParams(ctx context.Context, filter domain.ProfileFilter) (*domain.Profile, error)
	FindByID(ctx context.Context, id int64) (*domain.Profile, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Profile, error)
	FindAll(ctx context.Context) ([]domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
