package incremental

import (
	"sync"

	"go.trai.ch/ripple/internal/core/domain"
)

// JobQueue is a single-producer, multi-consumer FIFO stream of compile
// jobs. Appends and the close operation happen-before any consumer
// observation; consumers seeing the queue closed and empty exit.
type JobQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	jobs   []*domain.CompileJob
	closed bool
}

// NewJobQueue creates an open, empty job queue.
func NewJobQueue() *JobQueue {
	q := &JobQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Append adds jobs to the tail of the queue. Appending to a closed queue
// is a programming error and panics; post-compile jobs arriving after
// closure go through appendClosed instead.
func (q *JobQueue) Append(jobs ...*domain.CompileJob) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		panic("incremental: append to closed job queue")
	}
	q.jobs = append(q.jobs, jobs...)
	q.cond.Broadcast()
}

// appendClosed adds a job to the queue regardless of the closed flag.
// It exists solely for post-compile jobs that arrive after the scheduler
// has concluded with an empty pending set.
func (q *JobQueue) appendClosed(job *domain.CompileJob) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.jobs = append(q.jobs, job)
	q.cond.Broadcast()
}

// Close marks the queue terminal. No further compile jobs will arrive.
func (q *JobQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.cond.Broadcast()
}

// IsOpen reports whether the queue still accepts compile jobs.
func (q *JobQueue) IsOpen() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return !q.closed
}

// Next blocks for the next job in FIFO order. ok is false once the queue
// is closed and fully drained.
func (q *JobQueue) Next() (job *domain.CompileJob, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.jobs) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.jobs) == 0 {
		return nil, false
	}
	job = q.jobs[0]
	q.jobs = q.jobs[1:]
	return job, true
}
