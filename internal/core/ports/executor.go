package ports

import (
	"context"

	"go.trai.ch/ripple/internal/core/domain"
)

// JobFinishedFunc is invoked by the executor once per completed job.
// The executor must not invoke it concurrently for the same scheduler.
type JobFinishedFunc func(job *domain.CompileJob, result domain.JobResult)

// JobSource is a closeable FIFO stream of jobs the executor drains until
// it observes the stream both closed and empty.
type JobSource interface {
	// Next blocks for the next job. ok is false once the source is closed
	// and drained.
	Next() (job *domain.CompileJob, ok bool)
}

// Executor runs compile jobs.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes every job delivered by source with the configured
	// parallelism, invoking onFinished serially after each job completes.
	// It returns the joined errors of all failed jobs.
	Run(ctx context.Context, source JobSource, onFinished JobFinishedFunc) error
}
