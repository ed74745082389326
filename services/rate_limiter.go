package services

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts failures per key inside a fixed window
type RateLimiter interface {
	// Blocked reports whether key has used up its attempts
	Blocked(ctx context.Context, key string) (bool, error)
	// Fail records one failed attempt for key
	Fail(ctx context.Context, key string) error
	// Reset forgets key, e.g. after a successful login
	Reset(ctx context.Context, key string) error
}

// NewRateLimiter uses Redis when a client is given, otherwise an in-process TTL map
func NewRateLimiter(rdb *redis.Client, prefix string, max int, window time.Duration) RateLimiter {
	if rdb != nil {
		return &RedisRateLimiter{rdb: rdb, prefix: prefix, max: max, window: window}
	}
	return NewMemoryRateLimiter(max, window)
}

type RedisRateLimiter struct {
	rdb    *redis.Client
	prefix string
	max    int
	window time.Duration
}

func (l *RedisRateLimiter) key(k string) string {
	return l.prefix + k
}

func (l *RedisRateLimiter) Blocked(ctx context.Context, key string) (bool, error) {
	n, err := l.rdb.Get(ctx, l.key(key)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n >= l.max, nil
}

func (l *RedisRateLimiter) Fail(ctx context.Context, key string) error {
	pipe := l.rdb.TxPipeline()
	pipe.Incr(ctx, l.key(key))
	// NX keeps the window anchored at the first failure
	pipe.ExpireNX(ctx, l.key(key), l.window)
	_, err := pipe.Exec(ctx)
	return err
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	return l.rdb.Del(ctx, l.key(key)).Err()
}

type attemptEntry struct {
	count     int
	expiresAt time.Time
}

const defaultLimiterEntries = 10000

// MemoryRateLimiter is a bounded TTL map. Sweep evicts expired entries; a full map
// is swept and, if still full, reset.
type MemoryRateLimiter struct {
	mu         sync.Mutex
	max        int
	window     time.Duration
	maxEntries int
	entries    map[string]attemptEntry
	now        func() time.Time
}

func NewMemoryRateLimiter(max int, window time.Duration) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		max:        max,
		window:     window,
		maxEntries: defaultLimiterEntries,
		entries:    make(map[string]attemptEntry),
		now:        time.Now,
	}
}

func (l *MemoryRateLimiter) Blocked(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	if !ok || !l.now().Before(e.expiresAt) {
		return false, nil
	}
	return e.count >= l.max, nil
}

func (l *MemoryRateLimiter) Fail(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	e, ok := l.entries[key]
	if !ok && len(l.entries) >= l.maxEntries {
		l.sweepLocked(now)
		if len(l.entries) >= l.maxEntries {
			l.entries = make(map[string]attemptEntry)
		}
	}
	if !ok || !now.Before(e.expiresAt) {
		e = attemptEntry{expiresAt: now.Add(l.window)}
	}
	e.count++
	l.entries[key] = e
	return nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.entries, key)
	l.mu.Unlock()
	return nil
}

// Sweep drops expired entries and returns how many were removed
func (l *MemoryRateLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sweepLocked(l.now())
}

func (l *MemoryRateLimiter) sweepLocked(now time.Time) int {
	removed := 0
	for k, e := range l.entries {
		if !now.Before(e.expiresAt) {
			delete(l.entries, k)
			removed++
		}
	}
	return removed
}

func (l *MemoryRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
