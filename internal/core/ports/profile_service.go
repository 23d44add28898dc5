package ports

import (
	"context"

	"github.com/accessflow/accessflow/internal/core/domain"
)

// ProfileInput carries the mutable fields of a profile.
type ProfileInput struct {
	Name        string
	Description string
}

type ProfileService interface {
	GetAll(ctx context.Context) ([]domain.Profile, error)
	// GetByParams resolves a filter to a single profile (domain.ErrNoMatch when none).
	GetByParams(ctx context.Context, filter domain.ProfileFilter) (*domain.Profile, error)
	Create(ctx context.Context, input ProfileInput) (*domain.Profile, error)
	Update(ctx context.Context, id int64, input ProfileInput) (*domain.Profile, error)
	Delete(ctx context.Context, id int64) error
}
