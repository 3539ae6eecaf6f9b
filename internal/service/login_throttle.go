package service

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const throttleKeyPrefix = "login_failures:"

// failureCounter is the storage seam for the login throttle. Production uses
// the Redis-backed counter; tests substitute in-memory fakes.
type failureCounter interface {
	Count(ctx context.Context, key string) (int, error)
	Increment(ctx context.Context, key string, window time.Duration) error
	Clear(ctx context.Context, key string) error
}

type redisCounter struct {
	client *redis.Client
}

func (c redisCounter) Count(ctx context.Context, key string) (int, error) {
	count, err := c.client.Get(ctx, key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return count, err
}

func (c redisCounter) Increment(ctx context.Context, key string, window time.Duration) error {
	pipe := c.client.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	_, err := pipe.Exec(ctx)
	return err
}

func (c redisCounter) Clear(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// LoginThrottle counts failed login attempts per credential key and blocks
// further attempts once the limit is exceeded within the window. The counter
// store being unreachable never blocks a login: the throttle degrades open
// and logs at warn.
type LoginThrottle struct {
	counter failureCounter
	limit   int
	window  time.Duration
	logger  *zap.Logger
}

// NewLoginThrottle builds a Redis-backed throttle. A nil client disables
// throttling.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration, logger *zap.Logger) *LoginThrottle {
	var counter failureCounter
	if client != nil {
		counter = redisCounter{client: client}
	}
	return newLoginThrottle(counter, limit, window, logger)
}

func newLoginThrottle(counter failureCounter, limit int, window time.Duration, logger *zap.Logger) *LoginThrottle {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginThrottle{counter: counter, limit: limit, window: window, logger: logger}
}

// Blocked reports whether the key has exceeded its failure budget.
func (t *LoginThrottle) Blocked(ctx context.Context, key string) bool {
	if t == nil || t.counter == nil {
		return false
	}
	count, err := t.counter.Count(ctx, throttleKeyPrefix+key)
	if err != nil {
		t.logger.Warn("login throttle read failed", zap.Error(err))
		return false
	}
	return count >= t.limit
}

// RecordFailure increments the failure counter and refreshes its TTL.
func (t *LoginThrottle) RecordFailure(ctx context.Context, key string) {
	if t == nil || t.counter == nil {
		return
	}
	if err := t.counter.Increment(ctx, throttleKeyPrefix+key, t.window); err != nil {
		t.logger.Warn("login throttle update failed", zap.Error(err))
	}
}

// Reset clears the failure counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, key string) {
	if t == nil || t.counter == nil {
		return
	}
	if err := t.counter.Clear(ctx, throttleKeyPrefix+key); err != nil {
		t.logger.Warn("login throttle reset failed", zap.Error(err))
	}
}
