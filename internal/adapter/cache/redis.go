package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MikeRez0/orderingest/internal/adapter/config"
	"github.com/redis/go-redis/v9"
)

const serviceName = "orderingest"

// RedisCache keeps report payloads with a TTL. A miss is not an error.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg *config.Redis) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr}),
	}
}

func (r *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

func (r *RedisCache) GenerateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", serviceName, operation, key)
}
