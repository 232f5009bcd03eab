package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_BlocksAfterMax(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewMemoryLimiter(3, time.Minute, clock)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, _, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}
	ok, retry, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retry)

	ok, _, _ = l.Allow(ctx, "5.6.7.8")
	assert.True(t, ok, "other keys have their own window")

	clock.Advance(time.Minute)
	ok, _, _ = l.Allow(ctx, "1.2.3.4")
	assert.True(t, ok, "window resets")
}

func TestMemoryLimiter_Sweep(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := NewMemoryLimiter(1, time.Minute, clock)
	_, _, _ = l.Allow(context.Background(), "a")
	_, _, _ = l.Allow(context.Background(), "b")

	assert.Equal(t, 0, l.Sweep())
	clock.Advance(time.Minute)
	assert.Equal(t, 2, l.Sweep())
}

func TestRedisLimiter_ReportsUnreachableStore(t *testing.T) {
	rdb := NewRedisClient("127.0.0.1:1", "")
	defer rdb.Close()
	l := NewRedisLimiter(rdb, 1, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, _, err := l.Allow(ctx, "1.2.3.4")
	assert.Error(t, err)
}
