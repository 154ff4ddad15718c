package cart

import (
	"context"
	"time"
)

type redisKV interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CartKey(key string) string
}

// RedisStore keeps carts in Redis with a sliding TTL refreshed on every write.
type RedisStore struct {
	client redisKV
	ttl    time.Duration
}

func NewRedisStore(client redisKV, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.client.Lookup(ctx, s.client.CartKey(key))
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.client.CartKey(key), value, s.ttl)
}
