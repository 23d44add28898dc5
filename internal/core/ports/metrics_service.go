package ports

import "context"

// MetricsSnapshot aggregates the dashboard counters.
type MetricsSnapshot struct {
	TotalUsers    int64 `json:"total_users"`
	TotalProfiles int64 `json:"total_profiles"`
	ActiveUsers   int64 `json:"active_users"`
	InactiveUsers int64 `json:"inactive_users"`
}

type MetricsService interface {
	Snapshot(ctx context.Context) (*MetricsSnapshot, error)
}

// StatsCache caches a MetricsSnapshot between dashboard loads.
type StatsCache interface {
	Get(ctx context.Context) (*MetricsSnapshot, error)
	Set(ctx context.Context, snap *MetricsSnapshot) error
}

// TokenDenylist records revoked bearer tokens until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
