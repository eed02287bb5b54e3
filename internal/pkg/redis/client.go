package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"logistics/internal/pkg/config"
	"logistics/pkg/logger"
	retrierconfig "logistics/pkg/retrier"
	"logistics/pkg/retrier/backoff_adapter"
)

const (
	dialTimeout = 5 * time.Second

	initialInterval = time.Second
	maxInterval     = 10 * time.Second
	maxElapsedTime  = 30 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

func NewClient(ctx context.Context, log logger.Logger, cfg *config.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	redisLog := log.With(
		logger.NewField("addr", cfg.Addr),
		logger.NewField("db", cfg.DB),
	)

	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		redisLog.With(logger.NewField("attempt", attempt)).Info("attempting Redis connection")
		return client.Ping(ctx).Err()
	})
	if err != nil {
		redisLog.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Redis connection failed after retries")
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	redisLog.With(logger.NewField("attempts", attempt)).Info("Redis connection established")
	return client, nil
}
