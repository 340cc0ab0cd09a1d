package repository

import (
	"context"
	"time"
)

// CacheRepository - кеш с TTL для сгенерированных сводок
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
