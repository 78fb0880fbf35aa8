package kafka

import (
	"fmt"
	"sync"

	"report-srv/config"
	"report-srv/pkg/kafka"
)

var (
	mu       sync.Mutex
	instance kafka.IProducer
)

// ConnectProducer returns the shared report event producer, creating it on first use.
// A failed attempt leaves nothing cached so the next call retries.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	p, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	instance = p
	return instance, nil
}

// DisconnectProducer closes the shared producer.
func DisconnectProducer() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
