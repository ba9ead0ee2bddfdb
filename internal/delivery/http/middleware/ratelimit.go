package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/midway/midway-backend/internal/config"
	"github.com/midway/midway-backend/internal/domain/repository"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"github.com/midway/midway-backend/internal/pkg/utils"
	"go.uber.org/zap"
)

// RateLimit - fixed-window per-IP rate limiting backed by Redis. Fails
// open: a Redis outage must not take the API down with it.
func RateLimit(cfg *config.RateLimitConfig, repo repository.RateLimitRepository, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Enabled {
			return c.Next()
		}

		allowed, err := repo.Allow(c.Context(), c.IP(), cfg.Requests, cfg.Window)
		if err != nil {
			log.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
			return c.Next()
		}

		if !allowed {
			return utils.SendError(c, errors.ErrRateLimited)
		}

		return c.Next()
	}
}
