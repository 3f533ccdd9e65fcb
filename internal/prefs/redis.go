package prefs

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps preferences in Redis so they outlive a single process, the
// closest server-side analogue of the browser's persistent local storage.
// Values carry no TTL; a preference lasts until it is overwritten.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisStore creates a Redis-backed preference store. keyPrefix namespaces
// the keys, e.g. "prefs".
func NewRedisStore(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "prefs"
	}
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisStore) redisKey(session, key string) string {
	return fmt.Sprintf("%s:%s:%s", s.keyPrefix, session, key)
}

// Get returns the stored value for a session key, or ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, session, key string) (string, error) {
	value, err := s.client.Get(ctx, s.redisKey(session, key)).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return value, nil
}

// Set stores a value for a session key.
func (s *RedisStore) Set(ctx context.Context, session, key, value string) error {
	if err := s.client.Set(ctx, s.redisKey(session, key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write preference %q: %w", key, err)
	}
	return nil
}
