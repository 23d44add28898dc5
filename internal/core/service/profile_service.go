package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/accessflow/accessflow/internal/core/domain"
	"github.com/accessflow/accessflow/internal/core/ports"
)

// ProfileService implements access-profile administration.
type ProfileService struct {
	repo   ports.ProfileRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewProfileService(repo ports.ProfileRepository, users ports.UserRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, users: users, logger: logger}
}

func (s *ProfileService) GetAll(ctx context.Context) ([]domain.Profile, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProfileService) GetByParams(ctx context.Context, filter domain.ProfileFilter) (*domain.Profile, error) {
	if filter.IsEmpty() {
		return nil, domain.ErrNoMatch
	}
	return s.repo.FindByParams(ctx, filter)
}

func (s *ProfileService) Create(ctx context.Context, input ports.ProfileInput) (*domain.Profile, error) {
	created, err := s.repo.Create(ctx, &domain.Profile{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create profile")
		return nil, err
	}

	s.logger.Info().Int64("profile_id", created.ID).Str("name", created.Name).Msg("profile created")
	return created, nil
}

func (s *ProfileService) Update(ctx context.Context, id int64, input ports.ProfileInput) (*domain.Profile, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Description = input.Description

	updated, err := s.repo.Update(ctx, current)
	if err != nil {
		s.logger.Error().Err(err).Int64("profile_id", id).Msg("failed to update profile")
		return nil, err
	}

	s.logger.Info().Int64("profile_id", id).Msg("profile updated")
	return updated, nil
}

// Delete removes a profile unless it is still attached to users.
func (s *ProfileService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	attached, err := s.users.CountWithProfile(ctx, id)
	if err != nil {
		return err
	}
	if attached > 0 {
		return domain.ErrProfileInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("profile_id", id).Msg("failed to delete profile")
		return err
	}

	s.logger.Info().Int64("profile_id", id).Msg("profile deleted")
	return nil
}
