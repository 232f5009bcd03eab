package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsAfterDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := New(clock, time.Second)

	var ran atomic.Int32
	id := s.Schedule("confirm", 3*time.Second, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})
	require.NotEmpty(t, id)
	assert.Equal(t, 1, s.Pending())

	clock.Advance(2 * time.Second)
	assert.Equal(t, int32(0), ran.Load())

	clock.Advance(time.Second)
	s.Wait()
	assert.Equal(t, int32(1), ran.Load())
	assert.Equal(t, 0, s.Pending())
	assert.Empty(t, s.FailedJobs())
}

func TestScheduler_CancelPreventsExecution(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := New(clock, time.Second)

	var ran atomic.Bool
	id := s.Schedule("confirm", time.Second, func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	require.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id), "second cancel must be a no-op")

	clock.Advance(time.Minute)
	s.Wait()
	assert.False(t, ran.Load())
}

func TestScheduler_RecordsFailuresAndPanics(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := New(clock, time.Second)

	s.Schedule("boom", time.Second, func(ctx context.Context) error { return errors.New("boom") })
	s.Schedule("panic", time.Second, func(ctx context.Context) error { panic("kaboom") })

	clock.Advance(time.Second)
	s.Wait()

	failed := s.FailedJobs()
	require.Len(t, failed, 2)
	var sawPanic bool
	for _, f := range failed {
		if errors.Is(f.Err, ErrPanicked) {
			sawPanic = true
		}
	}
	assert.True(t, sawPanic)
}

func TestScheduler_JobGetsDeadline(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := New(clock, time.Second)

	var hasDeadline atomic.Bool
	s.Schedule("deadline", 0, func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		hasDeadline.Store(ok)
		return nil
	})
	clock.Advance(time.Millisecond)
	s.Wait()
	assert.True(t, hasDeadline.Load())
}

func TestScheduler_ShutdownCancelsPendingAndRejectsNew(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := New(clock, time.Second)

	var ran atomic.Bool
	s.Schedule("later", time.Hour, func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	assert.Empty(t, s.Schedule("after", time.Second, func(ctx context.Context) error { return nil }))
	clock.Advance(2 * time.Hour)
	assert.False(t, ran.Load())
}

func TestScheduler_RealClock(t *testing.T) {
	s := New(clockwork.NewRealClock(), time.Second)
	done := make(chan struct{})
	s.Schedule("real", 10*time.Millisecond, func(ctx context.Context) error {
		close(done)
		return nil
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
	s.Wait()
}
