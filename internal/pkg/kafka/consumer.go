package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"logistics/internal/pkg/config"
	"logistics/pkg/logger"
)

// Consumer consumer group над одним топиком событий бронирований.
type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewConsumerSaramaConfig(versionStr string, autoCommit bool) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// история статусов должна увидеть все события, поэтому новая группа читает с начала
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	cfg.Consumer.Return.Errors = true

	return cfg, nil
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string, groupID string, topics []string, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	saramaConfig, err := NewConsumerSaramaConfig(cfg.Sarama.Version, cfg.Sarama.ConsumerOffsetsAutocommit)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", groupID),
		logger.NewField("topics", topics),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig, cfg.Topic); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, groupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start блокирует до отмены ctx. Consume возвращается на каждом ребалансе, поэтому цикл.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	go c.logErrors()

	for {
		if err := c.client.Consume(ctx, c.topics, c.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return err
			}
			c.log.With(logger.NewField("error", err)).Error("Error from consumer")
			return fmt.Errorf("consumer error: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Info("Context cancelled, stopping consumer")
			return ctx.Err()
		}
		c.log.Debug("consumer group rebalanced")
	}
}

// logErrors ошибки отдельных партиций не останавливают группу.
func (c *Consumer) logErrors() {
	for err := range c.client.Errors() {
		c.log.With(logger.NewField("error", err)).Warn("consumer group error")
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}
