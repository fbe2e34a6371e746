package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-deposit-ledger/internal/logger"
)

// compareAndDeleteScript deletes KEYS[1] only while it still holds ARGV[1].
var compareAndDeleteScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// compareAndExpireScript resets the TTL of KEYS[1] to ARGV[2] milliseconds only while it holds ARGV[1].
var compareAndExpireScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

// LockRepository is the key-value store behind distributed locks, backed by Redis.
type LockRepository struct {
	client *redis.Client
}

// NewLockRepository creates a new repository instance
func NewLockRepository(client *redis.Client) *LockRepository {
	return &LockRepository{client: client}
}

// SetIfAbsent stores value at key with the given TTL unless the key already exists (SET NX PX).
func (r *LockRepository) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, value, ttl).Result()

	logger.Log.Debugw("redis command",
		"key", key,
		"op", "SETNX",
		"ttl", ttl,
		"result", ok,
		"error", err,
	)

	return ok, err
}

// Get returns the value stored at key. found is false when the key does not exist.
func (r *LockRepository) Get(ctx context.Context, key string) (value string, found bool, err error) {
	value, err = r.client.Get(ctx, key).Result()

	logger.Log.Debugw("redis command",
		"key", key,
		"op", "GET",
		"result", value,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Delete removes key unconditionally and reports whether it existed.
func (r *LockRepository) Delete(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Del(ctx, key).Result()

	logger.Log.Debugw("redis command",
		"key", key,
		"op", "DEL",
		"result", n,
		"error", err,
	)

	return n > 0, err
}

// CompareAndDelete deletes key only if it currently holds value, as one server-side script.
func (r *LockRepository) CompareAndDelete(ctx context.Context, key, value string) (bool, error) {
	n, err := compareAndDeleteScript.Run(ctx, r.client, []string{key}, value).Int64()

	logger.Log.Debugw("redis command",
		"key", key,
		"op", "CAS-DEL",
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// CompareAndExpire resets the TTL of key only if it currently holds value, as one server-side script.
func (r *LockRepository) CompareAndExpire(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	n, err := compareAndExpireScript.Run(ctx, r.client, []string{key}, value, ttl.Milliseconds()).Int64()

	logger.Log.Debugw("redis command",
		"key", key,
		"op", "CAS-PEXPIRE",
		"ttl", ttl,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n == 1, nil
}
