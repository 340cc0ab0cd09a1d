package cache

import (
	"context"
	"time"

	"github.com/accessibility-map/internal/domain/repository"
	"github.com/accessibility-map/internal/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	redis  *Redis
	logger *zap.Logger
}

func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{
		redis:  r,
		logger: r.logger,
	}
}

func (c *cacheRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.redis.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		c.logger.Error("Cache get failed", zap.String("key", key), zap.Error(err))
		return "", false, errors.ErrCacheError
	}
	return value, true, nil
}

func (c *cacheRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.redis.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Error("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.ErrCacheError
	}
	return nil
}

func (c *cacheRepository) Delete(ctx context.Context, key string) error {
	if err := c.redis.client.Del(ctx, key).Err(); err != nil {
		c.logger.Error("Cache delete failed", zap.String("key", key), zap.Error(err))
		return errors.ErrCacheError
	}
	return nil
}
