package leavedays

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"points-rewards/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of go-redis the cache needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// CachedProvider keeps answers from the wrapped provider in redis. Redis
// failures degrade to calling the wrapped provider directly.
type CachedProvider struct {
	next   commands.LeaveDaysProvider
	client RedisClient
	ttl    time.Duration
}

func NewCachedProvider(next commands.LeaveDaysProvider, client RedisClient, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &CachedProvider{next: next, client: client, ttl: ttl}
}

func cacheKey(userID int64) string {
	return fmt.Sprintf("points:leave_days:%d", userID)
}

func (p *CachedProvider) AccumulatedLeaveDays(ctx context.Context, userID int64) (int, error) {
	key := cacheKey(userID)

	raw, err := p.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if days, convErr := strconv.Atoi(raw); convErr == nil {
			return days, nil
		}
		slog.Warn("Discarding malformed leave days cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		slog.Warn("Leave days cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	days, err := p.next.AccumulatedLeaveDays(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := p.client.Set(ctx, key, days, p.ttl).Err(); err != nil {
		slog.Warn("Leave days cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return days, nil
}
