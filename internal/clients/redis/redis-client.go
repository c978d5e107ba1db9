package redis_client

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/init-pkg/sheet-export/internal/config"
)

// New returns nil when no address is configured.
func New(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) *redis.Client {
	if cfg.Infrastructure.Redis.Addr == "" {
		log.Info("redis not configured, inference cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Infrastructure.Redis.Addr,
		Password: cfg.Infrastructure.Redis.Password,
		DB:       cfg.Infrastructure.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				log.Warn("redis ping failed", slog.String("error", err.Error()))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client
}
