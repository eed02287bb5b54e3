package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"logistics/internal/pkg/config"
	"logistics/pkg/logger"
	retrierconfig "logistics/pkg/retrier"
	"logistics/pkg/retrier/backoff_adapter"
)

const (
	maxPoolSize    = 20
	connectTimeout = 10 * time.Second

	initialInterval = 2 * time.Second
	maxInterval     = 15 * time.Second
	maxElapsedTime  = time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewCollection подключается к mongo и возвращает коллекцию бронирований.
// Клиент закрывается через возвращаемую функцию.
func NewCollection(ctx context.Context, log logger.Logger, cfg *config.Mongo) (*mongo.Collection, func(), error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(maxPoolSize).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Error("mongo disconnect", logger.NewField("error", err))
		}
	}

	mongoLog := log.With(
		logger.NewField("database", cfg.Database),
		logger.NewField("collection", cfg.Collection),
	)

	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	})

	var attempt uint64
	err = retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		mongoLog.With(logger.NewField("attempt", attempt)).Info("attempting Mongo connection")
		return client.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		mongoLog.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Mongo connection failed after retries")
		closeFn()
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	mongoLog.With(logger.NewField("attempts", attempt)).Info("Mongo connection established")

	return client.Database(cfg.Database).Collection(cfg.Collection), closeFn, nil
}
