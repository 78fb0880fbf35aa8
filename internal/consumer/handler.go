package consumer

import (
	"context"
	"fmt"

	"report-srv/internal/app"
	rabbitDelivery "report-srv/internal/report/delivery/rabbitmq"
	reportConsumer "report-srv/internal/report/delivery/rabbitmq/consumer"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	reportConsumer reportConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	reportUC, err := app.NewReportUseCase(app.ReportDeps{
		Logger:        srv.l,
		PostgresDB:    srv.postgresDB,
		Redis:         srv.redisClient,
		MinIO:         srv.minioClient,
		KafkaProducer: srv.kafkaProducer,
		Config:        srv.config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up report domain: %w", err)
	}

	cons, err := reportConsumer.New(reportConsumer.Config{
		Logger: srv.l,
		Conn:   srv.rabbitConn,
		Topology: rabbitDelivery.Topology{
			Exchange:        srv.config.RabbitMQ.Exchange,
			Queue:           srv.config.RabbitMQ.Queue,
			RoutingKey:      srv.config.RabbitMQ.RoutingKey,
			DeadLetterQueue: srv.config.RabbitMQ.DeadLetterQueue,
		},
		UseCase: reportUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report consumer: %w", err)
	}

	srv.l.Infof(ctx, "Report domain initialized")

	return &domainConsumers{
		reportConsumer: cons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.reportConsumer.ConsumeGenerateJobs(ctx); err != nil {
		return fmt.Errorf("failed to start report consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.reportConsumer != nil {
		if err := consumers.reportConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing report consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
