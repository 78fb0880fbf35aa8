package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"report-srv/config"
	"report-srv/config/kafka"
	"report-srv/config/minio"
	"report-srv/config/postgre"
	"report-srv/config/rabbitmq"
	"report-srv/config/redis"
	"report-srv/internal/consumer"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"
	pkgMinIO "report-srv/pkg/minio"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "report-srv consumer:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting report generation consumer")

	// Jobs cannot be received without RabbitMQ; Redis and PostgreSQL back every job.
	rabbitConn, err := rabbitmq.Connect(cfg.RabbitMQ, logger)
	if err != nil {
		return fmt.Errorf("connect RabbitMQ: %w", err)
	}
	defer rabbitmq.Disconnect()

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect Redis: %w", err)
	}
	defer redis.Disconnect()

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect PostgreSQL: %w", err)
	}
	defer postgre.Disconnect()

	logger.Infof(ctx, "Connected to RabbitMQ, Redis %s:%d and PostgreSQL %s:%d/%s",
		cfg.Redis.Host, cfg.Redis.Port, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	var minioClient pkgMinIO.MinIO
	if client, err := minio.Connect(ctx, cfg.MinIO); err != nil {
		logger.Warnf(ctx, "MinIO not available, exports disabled: %v", err)
	} else {
		minioClient = client
		defer minio.Disconnect()
	}

	var kafkaProducer pkgKafka.IProducer
	if producer, err := kafka.ConnectProducer(cfg.Kafka); err != nil {
		logger.Warnf(ctx, "Kafka not available, lifecycle events disabled: %v", err)
	} else {
		kafkaProducer = producer
		defer kafka.DisconnectProducer()
	}

	srv, err := consumer.New(consumer.Config{
		Logger:        logger,
		Config:        cfg,
		RabbitConn:    rabbitConn,
		RedisClient:   redisClient,
		PostgresDB:    postgresDB,
		MinIOClient:   minioClient,
		KafkaProducer: kafkaProducer,
	})
	if err != nil {
		return fmt.Errorf("create consumer server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("run consumer server: %w", err)
	}
	return nil
}
