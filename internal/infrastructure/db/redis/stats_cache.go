package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/accessflow/accessflow/internal/core/ports"
)

const (
	statsKey        = "accessflow:stats"
	defaultStatsTTL = time.Minute
)

// StatsCache stores the dashboard metrics snapshot in Redis so repeated
// dashboard loads do not re-count collections.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a StatsCache. A non-positive ttl falls back to the default.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get returns the cached snapshot, or (nil, nil) on a cache miss.
func (c *StatsCache) Get(ctx context.Context) (*ports.MetricsSnapshot, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var snap ports.MetricsSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &snap, nil
}

func (c *StatsCache) Set(ctx context.Context, snap *ports.MetricsSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, c.ttl).Err()
}
