package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"
	"time"

	"report-srv/config"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	pingAttempts = 5
	pingBackoff  = 500 * time.Millisecond
	pingTimeout  = 5 * time.Second

	maxOpenConns    = 50
	maxIdleConns    = 10
	connMaxLifetime = 30 * time.Minute
	connMaxIdleTime = 5 * time.Minute
)

var (
	mu       sync.Mutex
	instance *sql.DB
)

// Connect opens the shared pool, retrying the first ping with a doubling backoff.
// Later calls return the same pool until Disconnect.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	db, err := sql.Open("postgres", dsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open PostgreSQL connection: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	if err := ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	instance = db
	return instance, nil
}

func ping(ctx context.Context, db *sql.DB) error {
	backoff := pingBackoff
	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		if attempt == pingAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("PostgreSQL not reachable: %w", ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("PostgreSQL not reachable after %d attempts: %w", pingAttempts, err)
}

// dsn builds a lib/pq URL. Reports and the CRM tables share one schema.
func dsn(cfg config.PostgresConfig) string {
	q := url.Values{}
	q.Set("sslmode", valueOr(cfg.SSLMode, "disable"))
	q.Set("search_path", valueOr(cfg.Schema, "public"))

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/" + cfg.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// Disconnect closes the pool so Connect can be called again.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	if err != nil {
		return fmt.Errorf("failed to close PostgreSQL connection: %w", err)
	}
	return nil
}
