package interfaces

import (
	"context"
	"time"
)

// IScheduler runs a job once after a delay without blocking the caller.
type IScheduler interface {
	Schedule(name string, delay time.Duration, job func(ctx context.Context) error) (jobID string)
	Cancel(jobID string) bool
}
