package consumer

import (
	"context"
	"database/sql"

	"report-srv/config"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"
	"report-srv/pkg/minio"
	pkgRabbitMQ "report-srv/pkg/rabbitmq"
	"report-srv/pkg/redis"
)

// ConsumerServer runs the queued report generation consumers.
type ConsumerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	rabbitConn    pkgRabbitMQ.IRabbitMQ
	redisClient   redis.IRedis
	postgresDB    *sql.DB
	minioClient   minio.MinIO
	kafkaProducer pkgKafka.IProducer
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	RabbitConn    pkgRabbitMQ.IRabbitMQ
	RedisClient   redis.IRedis
	PostgresDB    *sql.DB
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer
}

// Run starts the consumer server and blocks until ctx is cancelled.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		srv.stopConsumers(ctx, consumers)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(context.Background(), "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(context.Background(), consumers)

	srv.l.Info(context.Background(), "Consumer Server stopped gracefully")
	return nil
}
