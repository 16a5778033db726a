// Package epool implements an elastic worker pool: a bounded, auto-scaling
// set of workers consuming fire-and-forget tasks from a shared FIFO queue.
//
// Design goals
//
// The package is designed around the following principles:
//
//   - Grow capacity only when demand requires it
//   - Shrink automatically after sustained idleness
//   - Never exceed the configured worker cap, even under
//     concurrent submission storms
//   - Shut down deterministically without abandoning accepted work
//
// Rather than keeping a fixed set of always-running workers, epool starts
// with zero workers and spawns them on demand, up to MaxWorkers. A worker
// that finds no work within the idle timeout retires on its own, so a pool
// that goes quiet converges back toward zero workers with no external
// control loop.
//
// Architecture overview
//
// The pool is composed of three layers:
//
//   1. Storage (List)
//      A doubly-linked list providing O(1) push and pop at both ends,
//      bidirectional iteration, and a mutable cursor. The list carries no
//      synchronization of its own; it is the raw deque the queue is built on.
//
//   2. Coordination (taskQueue + counters)
//      The list paired with a mutex and a wake signal. All list mutation
//      happens under the lock; cross-worker bookkeeping (worker counts,
//      task counts, the quit flag) lives in lock-free atomics that are
//      never gated on the queue lock.
//
//   3. Control (Pool / workers)
//      Submit enqueues, signals one waiter, and (only when no worker is
//      idle) attempts elastic growth through a compare-and-swap
//      reservation loop that makes overshooting the cap impossible.
//      Each worker runs the dequeue-execute cycle until it retires.
//
// Elastic growth
//
// Capacity is reserved before a worker is created. A submitter observing
// spare capacity CASes the current-worker counter from n to n+1; only the
// winner spawns, losers re-read and retry. Two concurrent submitters can
// therefore never both spawn for the same free slot.
//
// Task lifecycle
//
// A task is a single-invocation closure. It is owned by the queue from
// Submit until a worker pops it, then by that worker until execution
// finishes. Errors returned by a task are retried with exponential backoff
// according to its RetryPolicy and reported through the configured
// handler; nothing propagates back to the submitter. Panics inside tasks
// are recovered so a misbehaving task cannot take its worker down.
//
// Shutdown
//
// Shutdown sets the one-way quit flag, wakes every blocked worker, joins
// every registered worker, executes whatever the retiring workers left in
// the queue, and finally waits for in-flight tasks to finish. It is safe
// to call more than once; later calls are no-ops that still wait.
//
// Intended use cases
//
// epool fits workloads with bursty, fire-and-forget jobs where keeping a
// full-time worker fleet is wasteful, such as background maintenance or
// periodic batch spikes. It is not a general-purpose goroutine
// replacement and provides no result channel, no priorities, and no
// mid-task cancellation.
package epool
