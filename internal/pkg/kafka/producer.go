package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"logistics/internal/pkg/config"
	"logistics/pkg/logger"
)

const producerMaxRetries = 5

// Producer синхронный продьюсер: Send возвращается после подтверждения всех реплик.
type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducerSaramaConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = producerMaxRetries
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	return cfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig, err := NewProducerSaramaConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	if err := pingKafka(ctx, kafkaLog, brokers, saramaConfig, cfg.Topic); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return NewProducerFromClient(kafkaLog, producer, cfg.Topic), nil
}

func NewProducerFromClient(log logger.Logger, producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

// Send пишет сообщение с ключом, сообщения одного ключа попадают в одну партицию.
func (p *Producer) Send(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send to %s: %w", p.topic, err)
	}

	p.log.With(
		logger.NewField("key", key),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Debug("kafka message sent")
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
