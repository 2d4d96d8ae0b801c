package lock

import (
	"context"
	"errors"
	"time"

	"room-reservation-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "room-lock:"
	retryInterval  = 25 * time.Millisecond
)

// releaseScript deletes the key only while it still carries our token.
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// RedisLocker is a lease-based lock shared by every engine instance using the same Redis.
// A holder that outlives ttl loses the lease; the database layers still guard exclusivity.
type RedisLocker struct {
	client redis.UniversalClient
	ttl    time.Duration
	wait   time.Duration
}

func NewRedisLocker(client redis.UniversalClient, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl, wait: wait}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(context.Context) error, error) {
	redisKey := redisKeyPrefix + key
	token := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, errs.Wrap(err, "redis lock "+key)
		}
		if ok {
			break
		}
		if !time.Now().Before(deadline) {
			return nil, errs.Wrap(errs.ErrRoomLockUnavailable, key)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	return func(ctx context.Context) error {
		n, err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			return errs.Wrap(err, "redis unlock "+key)
		}
		if n == 0 {
			return errs.Wrap(errs.ErrRoomLockLost, key)
		}
		return nil
	}, nil
}
