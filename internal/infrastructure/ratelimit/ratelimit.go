// Package ratelimit implements fixed-window request limiting keyed by client.
//
// Two stores are available: an in-process map for a single node and a Redis
// counter for when REDIS_ADDR is configured.
package ratelimit

import (
	"context"
	"time"
)

// Limiter reports whether another request for key fits in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}
