// Package shell runs compile jobs as compiler subprocesses.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"sync"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor over os/exec. Workers drain the job
// source concurrently; completion callbacks are serialized so the
// scheduler's single-threaded contract holds.
type Executor struct {
	logger      ports.Logger
	tracer      ports.Tracer
	compiler    string
	parallelism int
}

// NewExecutor creates an Executor invoking the given compiler binary with
// the given worker count.
func NewExecutor(logger ports.Logger, tracer ports.Tracer, compiler string, parallelism int) *Executor {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Executor{
		logger:      logger,
		tracer:      tracer,
		compiler:    compiler,
		parallelism: parallelism,
	}
}

// Run drains the source until it closes, invoking onFinished serially
// after each job. It returns the joined errors of all failed jobs.
func (e *Executor) Run(ctx context.Context, source ports.JobSource, onFinished ports.JobFinishedFunc) error {
	var mu sync.Mutex
	var errs error

	g := new(errgroup.Group)
	for range e.parallelism {
		g.Go(func() error {
			for {
				job, ok := source.Next()
				if !ok {
					return nil
				}

				err := e.execute(ctx, job)

				mu.Lock()
				if err != nil {
					errs = errors.Join(errs, err)
				}
				onFinished(job, domain.JobResult{Err: err})
				mu.Unlock()
			}
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Join(errs, err)
	}
	return errs
}

// execute runs one job's compiler subprocess inside a span.
func (e *Executor) execute(ctx context.Context, job *domain.CompileJob) error {
	ctx, span := e.tracer.Start(ctx, jobName(job))
	defer span.End()

	args := jobArgs(job)

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, e.compiler, args...) //nolint:gosec // Compiler path is driver configuration
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		_, _ = span.Write(out.Bytes())
		span.RecordError(err)

		kindErr := domain.ErrCompileFailed
		if job.Kind != domain.JobKindCompile {
			kindErr = domain.ErrLinkFailed
		}
		wrapped := zerr.With(zerr.Wrap(err, kindErr.Error()), "job", jobName(job))
		if out.Len() > 0 {
			wrapped = zerr.With(wrapped, "output", out.String())
		}
		return wrapped
	}

	_, _ = span.Write(out.Bytes())
	return nil
}

// jobName labels a job for spans and errors.
func jobName(job *domain.CompileJob) string {
	if len(job.Primaries) > 0 {
		return job.Kind.String() + " " + job.Primaries[0].String()
	}
	return job.Kind.String()
}

// jobArgs builds the compiler invocation for a job.
func jobArgs(job *domain.CompileJob) []string {
	switch job.Kind {
	case domain.JobKindCompile:
		args := []string{"compile"}
		for _, in := range job.Primaries {
			args = append(args, in.String())
		}
		if job.Object != "" {
			args = append(args, "-o", job.Object)
		}
		if job.SummaryPath != "" {
			args = append(args, "-emit-summary", job.SummaryPath)
		}
		return args
	case domain.JobKindLink:
		args := []string{"link"}
		if job.Object != "" {
			args = append(args, "-o", job.Object)
		}
		return args
	case domain.JobKindGenerateModule:
		args := []string{"emit-module"}
		if job.Object != "" {
			args = append(args, "-o", job.Object)
		}
		return args
	}
	return nil
}
