package httpserver

import (
	"database/sql"
	"errors"
	"fmt"

	"report-srv/config"
	"report-srv/internal/report"
	"report-srv/pkg/email"
	pkgKafka "report-srv/pkg/kafka"
	"report-srv/pkg/log"
	"report-srv/pkg/minio"
	pkgRedis "report-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Config is everything the API server needs. MinIOClient, KafkaProducer,
// JobQueue and Mailer may be nil; the features behind them then answer with an error.
type Config struct {
	Host        string
	Port        int
	Mode        string
	Environment string

	Config        *config.Config
	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	MinIOClient   minio.MinIO
	KafkaProducer pkgKafka.IProducer
	JobQueue      report.JobQueue
	Mailer        email.Sender
}

type HTTPServer struct {
	gin *gin.Engine
	l   log.Logger
	cfg Config
}

// New validates cfg and builds the server. Routes are mapped by Run.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Mode)
	return &HTTPServer{gin: gin.New(), l: logger, cfg: cfg}, nil
}

func (cfg Config) validate() error {
	required := []struct {
		name    string
		missing bool
	}{
		{"mode", cfg.Mode == ""},
		{"port", cfg.Port == 0},
		{"config", cfg.Config == nil},
		{"postgresDB", cfg.PostgresDB == nil},
		{"redisClient", cfg.RedisClient == nil},
	}

	var errs []error
	for _, dep := range required {
		if dep.missing {
			errs = append(errs, fmt.Errorf("%s is required", dep.name))
		}
	}
	return errors.Join(errs...)
}

func (srv HTTPServer) addr() string {
	return fmt.Sprintf("%s:%d", srv.cfg.Host, srv.cfg.Port)
}
