package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
	ErrEmptyToken   = errors.New("redis: lock token is empty")
)

// IRedis is the slice of Redis the service needs: owner-tokened keys with a TTL.
// Implementations are safe for concurrent use.
type IRedis interface {
	// SetNX stores value under key only if key is absent.
	SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	// CompareAndDelete removes key only while it still holds value.
	CompareAndDelete(ctx context.Context, key string, value string) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}

// Options configures the client.
type Options struct {
	Host     string
	Port     int
	Password string
	DB       int

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

// NewRedis builds a client for opts. The connection is opened lazily; call Ping to verify it.
func NewRedis(opts Options) (IRedis, error) {
	if opts.Host == "" {
		return nil, ErrHostRequired
	}
	if opts.Port <= 0 || opts.Port > 65535 {
		return nil, ErrInvalidPort
	}

	return &redisImpl{client: goredis.NewClient(&goredis.Options{
		Addr:         fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
	})}, nil
}
