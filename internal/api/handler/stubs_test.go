package handler

import (
	"context"

	"github.com/accessflow/accessflow/internal/core/domain"
	"github.com/accessflow/accessflow/internal/core/ports"
)

type stubAuthService struct {
	loginToken string
	loginUser  *domain.User
	loginErr   error

	signUpUser *domain.User
	signUpErr  error

	loggedOut []string
	logoutErr error
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.loginToken, s.loginUser, nil
}

func (s *stubAuthService) SignUp(_ context.Context, name, email, password string) (*domain.User, error) {
	if s.signUpErr != nil {
		return nil, s.signUpErr
	}
	return s.signUpUser, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	if s.logoutErr != nil {
		return s.logoutErr
	}
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

type stubUserService struct {
	users []*domain.User
	err   error

	lastFilter domain.UserFilter
	lastInput  ports.UserInput
	lastID     int64
}

func (s *stubUserService) GetAll(context.Context) ([]*domain.User, error) {
	return s.users, s.err
}

func (s *stubUserService) GetByParams(_ context.Context, filter domain.UserFilter) (*domain.User, error) {
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	if len(s.users) == 0 {
		return nil, domain.ErrNoMatch
	}
	return s.users[0], nil
}

func (s *stubUserService) Create(_ context.Context, input ports.UserInput) (*domain.User, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: 1, Name: input.Name, Email: input.Email, Active: input.Active}, nil
}

func (s *stubUserService) Update(_ context.Context, id int64, input ports.UserInput) (*domain.User, error) {
	s.lastID = id
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{ID: id, Name: input.Name, Email: input.Email, Active: input.Active}, nil
}

func (s *stubUserService) Delete(_ context.Context, id int64) error {
	s.lastID = id
	return s.err
}

type stubProfileService struct {
	profiles []domain.Profile
	err      error

	lastInput ports.ProfileInput
	lastID    int64
}

func (s *stubProfileService) GetAll(context.Context) ([]domain.Profile, error) {
	return s.profiles, s.err
}

func (s *stubProfileService) GetByParams(_ context.Context, filter domain.ProfileFilter) (*domain.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.profiles) == 0 {
		return nil, domain.ErrNoMatch
	}
	return &s.profiles[0], nil
}

func (s *stubProfileService) Create(_ context.Context, input ports.ProfileInput) (*domain.Profile, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Profile{ID: 1, Name: input.Name, Description: input.Description}, nil
}

func (s *stubProfileService) Update(_ context.Context, id int64, input ports.ProfileInput) (*domain.Profile, error) {
	s.lastID = id
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Profile{ID: id, Name: input.Name, Description: input.Description}, nil
}

func (s *stubProfileService) Delete(_ context.Context, id int64) error {
	s.lastID = id
	return s.err
}

type stubMetricsService struct {
	snap *ports.MetricsSnapshot
	err  error
}

func (s *stubMetricsService) Snapshot(context.Context) (*ports.MetricsSnapshot, error) {
	return s.snap, s.err
}
