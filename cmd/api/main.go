package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"report-srv/config"
	configKafka "report-srv/config/kafka"
	configMinIO "report-srv/config/minio"
	configPostgre "report-srv/config/postgre"
	configRabbitMQ "report-srv/config/rabbitmq"
	configRedis "report-srv/config/redis"
	"report-srv/internal/httpserver"
	"report-srv/internal/report"
	rabbitDelivery "report-srv/internal/report/delivery/rabbitmq"
	reportJobProducer "report-srv/internal/report/delivery/rabbitmq/producer"
	"report-srv/pkg/clock"
	"report-srv/pkg/email"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"
	"report-srv/pkg/minio"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "report-srv api:", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration from YAML and environment variables
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect PostgreSQL: %w", err)
	}
	defer configPostgre.Disconnect()
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect Redis: %w", err)
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize MinIO (optional, export is unavailable without it)
	var minioClient minio.MinIO
	if client, err := configMinIO.Connect(ctx, cfg.MinIO); err != nil {
		logger.Warnf(ctx, "MinIO not available (optional): %v", err)
	} else {
		minioClient = client
		defer configMinIO.Disconnect()
		logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)
	}

	// 7. Initialize Kafka producer (optional, lifecycle events are skipped without it)
	var kafkaProducer pkgKafka.IProducer
	if producer, err := configKafka.ConnectProducer(cfg.Kafka); err != nil {
		logger.Warnf(ctx, "Kafka producer not available (optional): %v", err)
	} else {
		kafkaProducer = producer
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// 8. Initialize RabbitMQ job queue (optional, queued generation is refused without it)
	var jobQueue report.JobQueue
	if conn, err := configRabbitMQ.Connect(cfg.RabbitMQ, logger); err != nil {
		logger.Warnf(ctx, "RabbitMQ not available (optional): %v", err)
	} else {
		defer configRabbitMQ.Disconnect()
		producer, err := reportJobProducer.New(logger, conn, rabbitDelivery.Topology{
			Exchange:        cfg.RabbitMQ.Exchange,
			Queue:           cfg.RabbitMQ.Queue,
			RoutingKey:      cfg.RabbitMQ.RoutingKey,
			DeadLetterQueue: cfg.RabbitMQ.DeadLetterQueue,
		}, clock.New())
		if err != nil {
			logger.Warnf(ctx, "Failed to declare report job topology: %v", err)
		} else {
			defer producer.Close()
			jobQueue = producer
			logger.Infof(ctx, "Report jobs will be queued on %s", cfg.RabbitMQ.Queue)
		}
	}

	// 9. Initialize mail transport (optional, sends fail without it)
	var mailer email.Sender
	if sender, err := email.NewSendGrid(email.SendGridConfig{
		APIKey:    cfg.SendGrid.APIKey,
		FromName:  cfg.SendGrid.FromName,
		FromEmail: cfg.SendGrid.FromEmail,
	}); err != nil {
		logger.Warnf(ctx, "SendGrid not configured (optional): %v", err)
	} else {
		mailer = sender
		logger.Info(ctx, "SendGrid mail transport initialized")
	}

	// 10. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		Config:        cfg,
		PostgresDB:    postgresDB,
		RedisClient:   redisClient,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
		JobQueue:      jobQueue,
		Mailer:        mailer,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	if err := httpServer.Run(ctx); err != nil {
		return fmt.Errorf("run HTTP server: %w", err)
	}
	logger.Info(ctx, "HTTP server stopped gracefully")
	return nil
}
