package epool

import (
	"context"
)

// TaskFunc is the closure executed by a worker. It is invoked exactly once
// per attempt; a non-nil error triggers the retry policy. Nothing is ever
// returned to the submitter.
type TaskFunc func() error

// Task represents a single unit of work submitted to the pool.
//
// Fn is required. Ctx, when set, scopes the task's logging and aborts the
// retry backoff wait (not the running attempt) when canceled. CleanupFunc,
// if set, runs after the task finishes, including after a panic. Retry
// overrides the pool's default retry policy for this task only.
//
// A Task is owned by the queue from Submit until a worker pops it, then by
// that worker until execution completes.
type Task struct {
	Fn          TaskFunc
	Ctx         context.Context
	CleanupFunc func()
	Retry       *RetryPolicy
}
