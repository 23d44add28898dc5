package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked bearer tokens in Redis so a logged-out token
// stops authenticating before its natural expiry.
// Key format: revoked:<sha256(token)>
type TokenDenylist struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenDenylist creates a TokenDenylist. Entries live for ttl, which should
// be at least the token TTL so revocation outlasts every issued token.
func NewTokenDenylist(client *redis.Client, ttl time.Duration) *TokenDenylist {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenDenylist{client: client, ttl: ttl}
}

func (d *TokenDenylist) Revoke(ctx context.Context, token string) error {
	return d.client.Set(ctx, d.key(token), "1", d.ttl).Err()
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

func (d *TokenDenylist) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}
