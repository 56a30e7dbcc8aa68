// Package taskpool fans hashing pipelines for multiple sources out over a
// bounded set of workers. Submission is non-blocking and returns a handle;
// waiting on handles in submission order yields results in submission order
// no matter when each task actually finishes.
package taskpool

import (
	"context"
	"runtime"
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/docker/go-units"

	"github.com/jrobinso/s3etag/etag"
	"github.com/jrobinso/s3etag/source"
)

// Runner executes the hashing pipeline for one source: open the stream,
// drain it through the dual-hash accumulator, return the digests.
type Runner func(ctx context.Context, src source.Source) (etag.Sum, error)

// Result is the immutable outcome of one task. Either Sum is populated or
// Err is non-nil, never both.
type Result struct {
	Source source.Source
	Sum    etag.Sum
	Err    error
}

// Task is the handle returned by Submit. Wait blocks until the worker
// finishes; the result is sticky, so Wait may be called any number of times.
type Task struct {
	src  source.Source
	done chan struct{}
	res  Result
}

// Source returns the source this task was submitted for.
func (t *Task) Source() source.Source {
	return t.src
}

// Wait blocks until the task reaches a terminal state and returns its
// result.
func (t *Task) Wait() Result {
	<-t.done
	return t.res
}

// Pool schedules tasks onto at most a fixed number of concurrently running
// workers. Each task owns its stream and hash state exclusively; the worker
// slots are the only resource shared between tasks.
type Pool struct {
	run    Runner
	sem    chan struct{}
	logger log.Logger
}

// New creates a Pool executing run on up to workers goroutines. A
// non-positive workers count falls back to the number of CPUs.
func New(workers int, run Runner, logger log.Logger) *Pool {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	return &Pool{
		run:    run,
		sem:    make(chan struct{}, workers),
		logger: logger,
	}
}

// Workers returns the concurrency limit of the pool.
func (p *Pool) Workers() int {
	return cap(p.sem)
}

// Submit schedules src for hashing and returns immediately. Errors inside
// the pipeline are captured in the task's result and never affect other
// tasks. Once submitted a task always runs to completion; there is no
// cancellation of a running pipeline.
func (p *Pool) Submit(ctx context.Context, src source.Source) *Task {
	t := &Task{
		src:  src,
		done: make(chan struct{}),
	}

	go func() {
		p.sem <- struct{}{}
		defer func() { <-p.sem }()

		start := time.Now()
		sum, err := p.run(ctx, src)
		if err != nil {
			p.logger.Debugf("%s: failed after %s: %s",
				src.ID, time.Since(start).Round(time.Millisecond), err)
			t.res = Result{Source: src, Err: err}
		} else {
			p.logger.Debugf("%s: hashed %s in %d parts in %s",
				src.ID,
				units.HumanSizeWithPrecision(float64(sum.Size), 3),
				sum.Count,
				time.Since(start).Round(time.Millisecond))
			t.res = Result{Source: src, Sum: sum}
		}

		close(t.done)
	}()

	return t
}
