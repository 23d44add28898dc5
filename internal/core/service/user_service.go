package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/accessflow/accessflow/internal/core/domain"
	"github.com/accessflow/accessflow/internal/core/ports"
)

// UserService implements user administration.
type UserService struct {
	repo     ports.UserRepository
	profiles ports.ProfileRepository
	logger   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, profiles ports.ProfileRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, profiles: profiles, logger: logger}
}

func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

// GetByParams resolves a filter to a single user. The lookup contract is
// first-match: callers display exactly one result even when the filter could
// match more.
func (s *UserService) GetByParams(ctx context.Context, filter domain.UserFilter) (*domain.User, error) {
	if filter.IsEmpty() {
		return nil, domain.ErrNoMatch
	}
	return s.repo.FindByParams(ctx, filter)
}

func (s *UserService) Create(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	attached, err := s.resolveProfiles(ctx, input.ProfileIDs)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Active:       input.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
		Profiles:     attached,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id int64, input ports.UserInput) (*domain.User, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attached, err := s.resolveProfiles(ctx, input.ProfileIDs)
	if err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Email = input.Email
	current.Active = input.Active
	current.Profiles = attached
	current.UpdatedAt = time.Now().UTC()

	// An empty password keeps the stored hash.
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		current.PasswordHash = string(hash)
	}

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to update user")
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("user_id", id).Msg("failed to delete user")
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

// resolveProfiles validates that every referenced profile exists and returns
// the full records. Users must carry at least one profile.
func (s *UserService) resolveProfiles(ctx context.Context, ids []int64) ([]domain.Profile, error) {
	if len(ids) == 0 {
		return nil, domain.ErrProfileNotFound
	}
	attached, err := s.profiles.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(attached) != len(ids) {
		return nil, domain.ErrProfileNotFound
	}
	return attached, nil
}
