package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var compareAndDelete = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisImpl struct {
	client *goredis.Client
}

func (c *redisImpl) SetNX(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if value == "" {
		return false, ErrEmptyToken
	}
	return c.client.SetNX(ctx, key, value, ttl).Result()
}

func (c *redisImpl) CompareAndDelete(ctx context.Context, key string, value string) (bool, error) {
	if value == "" {
		return false, ErrEmptyToken
	}
	n, err := compareAndDelete.Run(ctx, c.client, []string{key}, value).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (c *redisImpl) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisImpl) Close() error {
	return c.client.Close()
}
