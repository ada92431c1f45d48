package locks

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore is the low-level key-value contract the seat lock manager runs
// on. Acquire must be a single atomic set-if-absent-with-expiry at the store
// level; a read-then-write sequence would reintroduce the race this store
// exists to close. The store is injected so tests can substitute an
// in-memory implementation.
type LockStore interface {
	// Acquire sets key=holder with the given TTL only if key is absent.
	// Returns true iff this call created the entry.
	Acquire(ctx context.Context, key, holder string, ttl time.Duration) (bool, error)

	// Release deletes key only while its value still equals holder. A lock
	// that expired and was re-acquired by someone else is left alone.
	Release(ctx context.Context, key, holder string) error

	// Peek reads the current holder for diagnostics. It must never be used
	// to decide mutual exclusion.
	Peek(ctx context.Context, key string) (holder string, ok bool, err error)
}

// Lua script for compare-and-delete release. DEL alone would drop a lock
// that expired and was re-acquired by another holder in the meantime.
const luaReleaseIfHolder = `
local current = redis.call("GET", KEYS[1])
if current == false then
    return 0
end
if current == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`

// RedisLockStore implements LockStore on a shared Redis instance. SET NX EX
// is the atomic acquire primitive; release goes through a Lua script so the
// holder check and the delete execute as one operation.
type RedisLockStore struct {
	redis *redis.Client
}

// NewRedisLockStore creates a lock store bound to the provided client
func NewRedisLockStore(redisClient *redis.Client) *RedisLockStore {
	return &RedisLockStore{
		redis: redisClient,
	}
}

func (s *RedisLockStore) Acquire(ctx context.Context, key, holder string, ttl time.Duration) (bool, error) {
	if s.redis == nil {
		return false, fmt.Errorf("redis client not available")
	}

	created, err := s.redis.SetNX(ctx, key, holder, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}

	return created, nil
}

func (s *RedisLockStore) Release(ctx context.Context, key, holder string) error {
	if s.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	_, err := s.redis.EvalSha(ctx, luaReleaseIfHolder, []string{key}, holder).Result()
	if err != nil {
		// If script is not loaded, try to load and execute
		_, err = s.redis.Eval(ctx, luaReleaseIfHolder, []string{key}, holder).Result()
		if err != nil {
			return fmt.Errorf("failed to release lock %s: %w", key, err)
		}
	}

	return nil
}

func (s *RedisLockStore) Peek(ctx context.Context, key string) (string, bool, error) {
	if s.redis == nil {
		return "", false, fmt.Errorf("redis client not available")
	}

	holder, err := s.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to peek lock %s: %w", key, err)
	}

	return holder, true, nil
}

// PreloadScripts loads the release script into Redis for better performance
func (s *RedisLockStore) PreloadScripts(ctx context.Context) error {
	if s.redis == nil {
		return fmt.Errorf("redis client not available")
	}

	if _, err := s.redis.ScriptLoad(ctx, luaReleaseIfHolder).Result(); err != nil {
		return fmt.Errorf("failed to load lock release script: %w", err)
	}

	return nil
}
