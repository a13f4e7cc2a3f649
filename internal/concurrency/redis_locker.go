package concurrency

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/osse101/BrandishEconomy/internal/domain"
)

// releaseScript deletes the key only while it still holds our token, so a
// lock that expired and was taken by another process is left alone.
var releaseScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// RedisLocker is a Locker shared by every process using the same Redis.
// Each key is a SET NX PX entry holding a random token.
type RedisLocker struct {
	client  redis.UniversalClient
	ttl     time.Duration
	wait    time.Duration
	backoff time.Duration
}

// RedisLockerOption tunes a RedisLocker
type RedisLockerOption func(*RedisLocker)

// WithLockTTL sets how long a lock survives a crashed holder
func WithLockTTL(ttl time.Duration) RedisLockerOption {
	return func(l *RedisLocker) { l.ttl = ttl }
}

// WithLockWait sets how long Lock retries before giving up
func WithLockWait(wait time.Duration) RedisLockerOption {
	return func(l *RedisLocker) { l.wait = wait }
}

// NewRedisLocker creates a RedisLocker on an existing client
func NewRedisLocker(client redis.UniversalClient, opts ...RedisLockerOption) *RedisLocker {
	l := &RedisLocker{
		client:  client,
		ttl:     DefaultLockTTL,
		wait:    DefaultLockWait,
		backoff: DefaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewRedisClient connects to addr and verifies the connection
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

// Lock acquires keys in sorted order, retrying each until the wait budget
// is spent. On failure every key already taken is released.
func (l *RedisLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	ordered := sortedUnique(keys)
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	acquired := make([]string, 0, len(ordered))
	for _, key := range ordered {
		if err := l.acquire(waitCtx, RedisKeyPrefix+key, token); err != nil {
			l.release(acquired, token)
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrLockNotAcquired, key, err)
		}
		acquired = append(acquired, RedisKeyPrefix+key)
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(acquired, token) })
	}, nil
}

func (l *RedisLocker) acquire(ctx context.Context, key, token string) error {
	ticker := time.NewTicker(l.backoff)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// release runs detached from the caller's context so a cancelled request
// still frees its locks.
func (l *RedisLocker) release(keys []string, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	for i := len(keys) - 1; i >= 0; i-- {
		if err := releaseScript.Run(ctx, l.client, []string{keys[i]}, token).Err(); err != nil {
			slog.Default().Warn(LogMsgReleaseFailed, "key", keys[i], "error", err)
		}
	}
}

var _ Locker = (*RedisLocker)(nil)
