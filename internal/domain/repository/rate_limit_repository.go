package repository

import (
	"context"
	"time"
)

// RateLimitRepository - fixed-window request counting backed by Redis
type RateLimitRepository interface {
	// Allow increments the counter for key and reports whether the count
	// is still within limit for the current window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
