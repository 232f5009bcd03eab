package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type bucket struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (b *bucket) allow(now time.Time, max int, window time.Duration) (bool, time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !now.Before(b.resetAt) {
		b.count = 0
		b.resetAt = now.Add(window)
	}
	b.count++
	if b.count <= max {
		return true, 0
	}
	return false, b.resetAt.Sub(now)
}

type MemoryLimiter struct {
	max    int
	window time.Duration
	clock  clockwork.Clock

	mu      sync.Mutex
	buckets map[string]*bucket
}

var _ Limiter = (*MemoryLimiter)(nil)

func NewMemoryLimiter(max int, window time.Duration, clock clockwork.Clock) *MemoryLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &MemoryLimiter{max: max, window: window, clock: clock, buckets: map[string]*bucket{}}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	now := l.clock.Now()
	ok, retry := l.get(key, now).allow(now, l.max, l.window)
	return ok, retry, nil
}

func (l *MemoryLimiter) get(key string, now time.Time) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}
	b := &bucket{resetAt: now.Add(l.window)}
	l.buckets[key] = b
	return b
}

// Sweep drops buckets whose window has expired.
func (l *MemoryLimiter) Sweep() int {
	now := l.clock.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		b.mu.Lock()
		expired := !now.Before(b.resetAt)
		b.mu.Unlock()
		if expired {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// RunSweeper evicts expired buckets every window until ctx is done.
func (l *MemoryLimiter) RunSweeper(ctx context.Context) {
	ticker := l.clock.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			l.Sweep()
		}
	}
}
