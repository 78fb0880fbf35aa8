package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
)

var (
	ErrNoBrokers     = errors.New("kafka: at least one broker is required")
	ErrTopicRequired = errors.New("kafka: topic is required")
	ErrClosed        = errors.New("kafka: producer is closed")
)

// IProducer publishes keyed messages to a single topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(ctx context.Context, msg Message) (Delivery, error)
	// HealthCheck refreshes the topic metadata from the cluster.
	HealthCheck() error
	Close() error
}

// NewProducer connects to cfg.Brokers and returns a synchronous producer.
func NewProducer(cfg Config) (IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if cfg.Topic == "" {
		return nil, ErrTopicRequired
	}

	client, err := sarama.NewClient(cfg.Brokers, cfg.saramaConfig())
	if err != nil {
		return nil, fmt.Errorf("kafka: connect to %v: %w", cfg.Brokers, err)
	}
	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("kafka: create producer: %w", err)
	}
	return &producerImpl{client: client, producer: producer, topic: cfg.Topic}, nil
}
