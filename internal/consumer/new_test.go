package consumer

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"report-srv/config"
	"report-srv/pkg/log"
)

func TestNewReportsEveryMissingDependency(t *testing.T) {
	_, err := New(Config{Logger: log.NewNop()})
	require.Error(t, err)
	for _, name := range []string{"config", "rabbitmq connection", "redis client", "postgres db"} {
		assert.Contains(t, err.Error(), name+" is required")
	}
	assert.NotContains(t, err.Error(), "logger")
}

func TestNewAcceptsOptionalClients(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	srv, err := New(Config{
		Logger:      log.NewNop(),
		Config:      &config.Config{},
		RabbitConn:  stubConn{},
		RedisClient: stubRedis{},
		PostgresDB:  db,
	})
	require.NoError(t, err)
	assert.Nil(t, srv.minioClient)
	assert.Nil(t, srv.kafkaProducer)
}
