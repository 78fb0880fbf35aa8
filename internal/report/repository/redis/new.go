package redis

import (
	"report-srv/internal/report/repository"
	"report-srv/pkg/log"
	pkgRedis "report-srv/pkg/redis"
)

type implLockRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.LockRepository {
	return &implLockRepository{
		redis: redis,
		l:     l,
	}
}
