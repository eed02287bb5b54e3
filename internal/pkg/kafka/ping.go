package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"logistics/pkg/logger"
	retrierconfig "logistics/pkg/retrier"
	"logistics/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// pingKafka ждет брокеров. Отсутствие топика не ошибка, только предупреждение в логе.
func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config, topic string) error {
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
		log.With(logger.NewField("attempt", attempt)).Info("attempting Kafka connection")

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close Kafka probe client", logger.NewField("error", err))
			}
		}()

		topics, err := client.Topics()
		if err != nil {
			return err
		}
		if topic != "" && !containsTopic(topics, topic) {
			log.With(logger.NewField("topic", topic)).Warn("topic not found yet, relying on broker auto-create")
		}
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Kafka connection failed after retries")
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.With(logger.NewField("attempts", attempt)).Info("Kafka connection established")
	return nil
}

func containsTopic(topics []string, topic string) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}
