package rabbitmq

import (
	"fmt"
	"sync"

	"report-srv/config"
	"report-srv/pkg/log"
	"report-srv/pkg/rabbitmq"
)

var (
	mu       sync.Mutex
	instance rabbitmq.IRabbitMQ
)

// Connect returns the shared RabbitMQ connection for generation jobs.
func Connect(cfg config.RabbitMQConfig, l log.Logger) (rabbitmq.IRabbitMQ, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("rabbitmq.url is required")
	}

	conn, err := rabbitmq.NewRabbitMQ(cfg.URL, l)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	instance = conn
	return instance, nil
}

// Disconnect closes the shared connection.
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		instance.Close()
		instance = nil
	}
}
