// Package scheduler runs one-shot delayed jobs in process.
//
// Jobs are armed on a clockwork.Clock so tests can drive them with a fake clock:
//
//	clock := clockwork.NewFakeClock()
//	s := scheduler.New(clock, time.Minute)
//	s.Schedule("payment_confirmation", 3*time.Second, job)
//	clock.Advance(3 * time.Second)
//	s.Wait()
//
// Nothing is persisted: pending jobs are lost on restart.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"meshguard_api/internal/infrastructure/metrics"
	"meshguard_api/internal/usecase/interfaces"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const DefaultJobTimeout = 30 * time.Second

const (
	statePending int32 = iota
	stateRunning
	stateCancelled
)

var ErrPanicked = errors.New("job panicked")

// FailedJob records a job that returned an error or panicked.
type FailedJob struct {
	ID       string
	Name     string
	Err      error
	FailedAt time.Time
}

type entry struct {
	id    string
	name  string
	job   func(ctx context.Context) error
	state atomic.Int32

	mu    sync.Mutex
	timer clockwork.Timer
}

type Scheduler struct {
	clock   clockwork.Clock
	timeout time.Duration

	baseCtx context.Context
	stop    context.CancelFunc

	jobs   sync.Map
	wg     sync.WaitGroup
	closed atomic.Bool

	mu     sync.Mutex
	failed []FailedJob
}

var _ interfaces.IScheduler = (*Scheduler)(nil)

func New(clock clockwork.Clock, timeout time.Duration) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Scheduler{clock: clock, timeout: timeout, baseCtx: ctx, stop: stop}
}

// Schedule arms job to run once after delay and returns its id. After Shutdown
// it refuses new work and returns "".
func (s *Scheduler) Schedule(name string, delay time.Duration, job func(ctx context.Context) error) string {
	if s.closed.Load() {
		log.Printf("[scheduler] rejected job after shutdown name=%s", name)
		return ""
	}
	if delay < 0 {
		delay = 0
	}

	e := &entry{id: uuid.NewString(), name: name, job: job}
	s.wg.Add(1)
	metrics.JobsPending.Inc()

	e.mu.Lock()
	s.jobs.Store(e.id, e)
	// Fake clocks may fire the callback synchronously from Advance.
	e.timer = s.clock.AfterFunc(delay, func() { go s.run(e) })
	e.mu.Unlock()

	log.Printf("[scheduler] job scheduled id=%s name=%s delay=%s", e.id, name, delay)
	return e.id
}

// Cancel stops a job that has not started yet.
func (s *Scheduler) Cancel(jobID string) bool {
	v, ok := s.jobs.Load(jobID)
	if !ok {
		return false
	}
	e := v.(*entry)
	if !e.state.CompareAndSwap(statePending, stateCancelled) {
		return false
	}

	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
	}
	e.mu.Unlock()

	s.jobs.Delete(jobID)
	metrics.JobsPending.Dec()
	metrics.RecordJob(e.name, "cancelled", time.Time{})
	s.wg.Done()
	log.Printf("[scheduler] job cancelled id=%s name=%s", e.id, e.name)
	return true
}

func (s *Scheduler) run(e *entry) {
	if !e.state.CompareAndSwap(statePending, stateRunning) {
		return
	}
	metrics.JobsPending.Dec()
	defer s.wg.Done()
	defer s.jobs.Delete(e.id)

	start := time.Now()
	ctx, cancel := context.WithTimeout(s.baseCtx, s.timeout)
	defer cancel()

	err := safeRun(ctx, e.job)
	if err != nil {
		log.Printf("[scheduler] job failed id=%s name=%s err=%v", e.id, e.name, err)
		s.mu.Lock()
		s.failed = append(s.failed, FailedJob{ID: e.id, Name: e.name, Err: err, FailedAt: time.Now().UTC()})
		s.mu.Unlock()
		metrics.RecordJob(e.name, "failed", start)
		return
	}
	log.Printf("[scheduler] job done id=%s name=%s took=%s", e.id, e.name, time.Since(start))
	metrics.RecordJob(e.name, "success", start)
}

func safeRun(ctx context.Context, job func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}
	}()
	return job(ctx)
}

// Pending returns the number of jobs whose timer has not fired.
func (s *Scheduler) Pending() int {
	n := 0
	s.jobs.Range(func(_, v any) bool {
		if v.(*entry).state.Load() == statePending {
			n++
		}
		return true
	})
	return n
}

// FailedJobs returns a copy of the failed job log.
func (s *Scheduler) FailedJobs() []FailedJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]FailedJob, len(s.failed))
	copy(out, s.failed)
	return out
}

// Wait blocks until every scheduled job has run or been cancelled.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// Shutdown cancels pending jobs and waits for running ones until ctx is done.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.closed.Store(true)
	cancelled := 0
	s.jobs.Range(func(k, _ any) bool {
		if s.Cancel(k.(string)) {
			cancelled++
		}
		return true
	})
	log.Printf("[scheduler] shutdown cancelled=%d", cancelled)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	defer s.stop()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
