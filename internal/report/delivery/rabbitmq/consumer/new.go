package consumer

import (
	"context"
	"fmt"

	"report-srv/internal/report"
	rabbitDelivery "report-srv/internal/report/delivery/rabbitmq"
	"report-srv/pkg/log"
	pkgRabbitMQ "report-srv/pkg/rabbitmq"
)

const defaultPrefetch = 1

// Config holds the configuration for the generation job consumer.
type Config struct {
	Logger   log.Logger
	Conn     pkgRabbitMQ.IRabbitMQ
	Topology rabbitDelivery.Topology
	UseCase  report.UseCase
	Prefetch int
}

// Consumer runs queued report generation jobs.
type Consumer interface {
	ConsumeGenerateJobs(ctx context.Context) error
	Close() error
}

type consumer struct {
	l        log.Logger
	conn     pkgRabbitMQ.IRabbitMQ
	topology rabbitDelivery.Topology
	uc       report.UseCase
	prefetch int

	ch pkgRabbitMQ.IChannel
}

// New creates a new generation job consumer.
func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	prefetch := cfg.Prefetch
	if prefetch <= 0 {
		prefetch = defaultPrefetch
	}

	return &consumer{
		l:        cfg.Logger,
		conn:     cfg.Conn,
		topology: cfg.Topology,
		uc:       cfg.UseCase,
		prefetch: prefetch,
	}, nil
}

// Close closes the consumer channel.
func (c *consumer) Close() error {
	if c.ch == nil {
		return nil
	}
	return c.ch.Close()
}
