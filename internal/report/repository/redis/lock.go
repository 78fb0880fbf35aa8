package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"report-srv/internal/report/repository"
)

const (
	sendLockPrefix     = "report:lock:send:"
	generateLockPrefix = "report:lock:generate:"
)

func sendLockKey(reportID string) string {
	return sendLockPrefix + reportID
}

func generateLockKey(opts repository.GenerateLockOptions) string {
	return fmt.Sprintf("%s%s:%s:%s:%s", generateLockPrefix, opts.UserID, opts.Kind,
		opts.StartDate.Format(time.DateOnly), opts.EndDate.Format(time.DateOnly))
}

func (r *implLockRepository) AcquireSend(ctx context.Context, reportID string, ttl time.Duration) (string, bool, error) {
	return r.acquire(ctx, sendLockKey(reportID), ttl)
}

func (r *implLockRepository) ReleaseSend(ctx context.Context, reportID, token string) error {
	return r.release(ctx, sendLockKey(reportID), token)
}

func (r *implLockRepository) AcquireGenerate(ctx context.Context, opts repository.GenerateLockOptions, ttl time.Duration) (string, bool, error) {
	return r.acquire(ctx, generateLockKey(opts), ttl)
}

func (r *implLockRepository) ReleaseGenerate(ctx context.Context, opts repository.GenerateLockOptions, token string) error {
	return r.release(ctx, generateLockKey(opts), token)
}

func (r *implLockRepository) acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := r.redis.SetNX(ctx, key, token, ttl)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.redis.acquire: SetNX %s failed: %v", key, err)
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// release drops the lock only if this holder still owns it. An expired lock is not an error.
func (r *implLockRepository) release(ctx context.Context, key, token string) error {
	deleted, err := r.redis.CompareAndDelete(ctx, key, token)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.redis.release: CompareAndDelete %s failed: %v", key, err)
		return err
	}
	if !deleted {
		r.l.Warnf(ctx, "report.repository.redis.release: Lock %s expired before release", key)
	}
	return nil
}
