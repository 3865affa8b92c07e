package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"kostera/internal/shared/biztime"
)

type RedisAPICallLimiter struct {
	client *redis.Client
}

func NewRedisAPICallLimiter(client *redis.Client) APICallLimiter {
	return &RedisAPICallLimiter{client: client}
}

func (l *RedisAPICallLimiter) Allow(ctx context.Context, tenantID uint, limit int) (bool, error) {
	if limit <= 0 {
		return false, nil
	}

	key := l.key(tenantID)

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	// Counter windows are calendar months; the expiry only reaps keys of
	// past months, it does not define the window.
	pipe.Expire(ctx, key, 32*24*time.Hour)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return incr.Val() <= int64(limit), nil
}

func (l *RedisAPICallLimiter) Used(ctx context.Context, tenantID uint) (int64, error) {
	val, err := l.client.Get(ctx, l.key(tenantID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read api call counter: %w", err)
	}
	return val, nil
}

func (l *RedisAPICallLimiter) key(tenantID uint) string {
	return fmt.Sprintf("apicalls:%d:%s", tenantID, biztime.NowUTC().Format("2006-01"))
}
