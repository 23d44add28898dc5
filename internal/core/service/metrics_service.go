package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/accessflow/accessflow/internal/api/metrics"
	"github.com/accessflow/accessflow/internal/core/ports"
)

// MetricsService computes the dashboard snapshot, consulting the stats cache
// before falling back to live counts.
type MetricsService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	cache    ports.StatsCache
	logger   zerolog.Logger
}

func NewMetricsService(users ports.UserRepository, profiles ports.ProfileRepository, cache ports.StatsCache, logger zerolog.Logger) *MetricsService {
	return &MetricsService{users: users, profiles: profiles, cache: cache, logger: logger}
}

func (s *MetricsService) Snapshot(ctx context.Context) (*ports.MetricsSnapshot, error) {
	if s.cache != nil {
		if snap, err := s.cache.Get(ctx); err == nil && snap != nil {
			metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
			return snap, nil
		}
		metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
	}

	total, active, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	profileCount, err := s.profiles.Count(ctx)
	if err != nil {
		return nil, err
	}

	snap := &ports.MetricsSnapshot{
		TotalUsers:    total,
		TotalProfiles: profileCount,
		ActiveUsers:   active,
		InactiveUsers: total - active,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, snap); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache metrics snapshot")
		}
	}

	return snap, nil
}
