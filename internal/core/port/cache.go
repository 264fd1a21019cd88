package port

import (
	"context"
	"time"
)

//go:generate mockgen -source=cache.go -destination=mock/cache.go -package=mock

type Cache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}
