package bootstrap

import (
	"context"
	"log/slog"

	"points-rewards/internal/infra/leavedays"
	"points-rewards/internal/pkg/config"
	"points-rewards/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewLeaveDaysProvider,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is empty.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// An unreachable redis only disables caching.
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis ping failed", slog.String("addr", cfg.Redis.Addr), slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

// NewLeaveDaysProvider picks the HR service when configured, otherwise the
// static default, and puts redis in front of it when available.
func NewLeaveDaysProvider(cfg config.Config, client *redis.Client) commands.LeaveDaysProvider {
	var provider commands.LeaveDaysProvider
	if cfg.Redemption.LeaveDaysURL != "" {
		provider = leavedays.NewHTTPProvider(cfg.Redemption.LeaveDaysURL, cfg.Gateways.Timeout)
	} else {
		slog.Warn("LEAVE_DAYS_URL not set, using static leave days",
			slog.Int("days", cfg.Redemption.DefaultLeaveDays))
		return leavedays.NewStaticProvider(cfg.Redemption.DefaultLeaveDays)
	}

	if client == nil {
		return provider
	}
	return leavedays.NewCachedProvider(provider, client, cfg.Redis.LeaveDaysTTL)
}
