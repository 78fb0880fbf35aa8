package cli

import (
	"context"
	"fmt"

	"report-srv/config"
	configKafka "report-srv/config/kafka"
	configPostgre "report-srv/config/postgre"
	configRabbitMQ "report-srv/config/rabbitmq"
	configRedis "report-srv/config/redis"
	activityPostgre "report-srv/internal/activity/repository/postgre"
	activityUsecase "report-srv/internal/activity/usecase"
	"report-srv/internal/app"
	rabbitDelivery "report-srv/internal/report/delivery/rabbitmq"
	reportJobProducer "report-srv/internal/report/delivery/rabbitmq/producer"
	"report-srv/pkg/clock"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"
)

// openFromConfig connects to the backends named in the service config.
func openFromConfig(ctx context.Context, withQueue bool) (*Env, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, func() { _ = configPostgre.Disconnect() })

	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		closeAll()
		return nil, nil, err
	}
	closers = append(closers, func() { _ = configRedis.Disconnect() })

	var kafkaProducer pkgKafka.IProducer
	if producer, err := configKafka.ConnectProducer(cfg.Kafka); err != nil {
		l.Warnf(ctx, "cli.openFromConfig: kafka producer not available: %v", err)
	} else {
		kafkaProducer = producer
		closers = append(closers, func() { _ = configKafka.DisconnectProducer() })
	}

	uc, err := app.NewReportUseCase(app.ReportDeps{
		Logger:        l,
		PostgresDB:    db,
		Redis:         redisClient,
		KafkaProducer: kafkaProducer,
		Config:        cfg,
	})
	if err != nil {
		closeAll()
		return nil, nil, err
	}

	activityUC := activityUsecase.New(activityPostgre.New(db, l), l)
	env := &Env{
		UseCase: uc,
		LookupUser: func(ctx context.Context, userID string) error {
			_, err := activityUC.GetUser(ctx, userID)
			return err
		},
	}

	if withQueue {
		conn, err := configRabbitMQ.Connect(cfg.RabbitMQ, l)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, configRabbitMQ.Disconnect)

		producer, err := reportJobProducer.New(l, conn, rabbitDelivery.Topology{
			Exchange:        cfg.RabbitMQ.Exchange,
			Queue:           cfg.RabbitMQ.Queue,
			RoutingKey:      cfg.RabbitMQ.RoutingKey,
			DeadLetterQueue: cfg.RabbitMQ.DeadLetterQueue,
		}, clock.New())
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = producer.Close() })
		env.Queue = producer
	}

	return env, closeAll, nil
}
