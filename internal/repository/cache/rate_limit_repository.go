package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/midway/midway-backend/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type rateLimitRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRateLimitRepository(redis *Redis) repository.RateLimitRepository {
	return &rateLimitRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

// Allow implements a fixed-window counter: INCR the key and set its expiry
// on the first hit of the window.
func (r *rateLimitRepository) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := r.client.Incr(ctx, redisKey).Result()
	if err != nil {
		r.logger.Error("Failed to increment rate limit counter", zap.String("key", redisKey), zap.Error(err))
		return false, fmt.Errorf("rate limit incr: %w", err)
	}

	if count == 1 {
		if err := r.client.Expire(ctx, redisKey, window).Err(); err != nil {
			r.logger.Error("Failed to set rate limit expiry", zap.String("key", redisKey), zap.Error(err))
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	return count <= int64(limit), nil
}
