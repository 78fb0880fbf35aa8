package consumer

import (
	"errors"
	"fmt"
)

// New creates a consumer server. MinIO and Kafka may be nil.
func New(cfg Config) (*ConsumerServer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &ConsumerServer{
		l:             cfg.Logger,
		config:        cfg.Config,
		rabbitConn:    cfg.RabbitConn,
		redisClient:   cfg.RedisClient,
		postgresDB:    cfg.PostgresDB,
		minioClient:   cfg.MinIOClient,
		kafkaProducer: cfg.KafkaProducer,
	}, nil
}

// validate reports every missing dependency, not just the first.
func (cfg Config) validate() error {
	required := []struct {
		name    string
		missing bool
	}{
		{"logger", cfg.Logger == nil},
		{"config", cfg.Config == nil},
		{"rabbitmq connection", cfg.RabbitConn == nil},
		{"redis client", cfg.RedisClient == nil},
		{"postgres db", cfg.PostgresDB == nil},
	}

	var errs []error
	for _, dep := range required {
		if dep.missing {
			errs = append(errs, fmt.Errorf("%s is required", dep.name))
		}
	}
	return errors.Join(errs...)
}
