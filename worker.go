package epool

import (
	"context"
	"fmt"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
)

// workerHandle is the registry entry for one worker: the channel Shutdown
// joins on, plus the slot for a fatal error written before the channel is
// closed.
type workerHandle struct {
	done chan struct{}
	err  error
}

// worker runs the dequeue-execute cycle:
//
//	Idle -> Draining -> Running -> Idle
//
// with exits to Retiring on idle timeout or on quit with an empty queue.
// A retiring worker never re-enters the loop.
type worker struct {
	id     uint64
	pool   *Pool
	handle *workerHandle
}

func (w *worker) run() {
	defer w.finish()
	for {
		task, ok := w.waitForTask()
		if !ok {
			return
		}
		w.pool.runTask(task)
	}
}

// waitForTask blocks until a task is available, the pool quits with an
// empty queue, or the idle wait times out. The idle counter covers the
// whole wait, timeouts included, and is decremented under the queue lock
// on every exit: Submit pushes under the same lock before reading the
// idle count, so a retiring worker can never be observed as still idle
// (which would suppress the growth hint and strand the task).
//
// A timeout does not retire the worker outright: the queue is re-checked
// under the lock first, so a task that raced the timer is drained rather
// than stranded.
func (w *worker) waitForTask() (Task, bool) {
	p := w.pool
	q := p.queue

	timer := time.NewTimer(p.opts.IdleTimeout)
	defer timer.Stop()

	p.stats.idleWorkers.Add(1)

	timedOut := false
	for {
		q.mu.Lock()
		if q.list.Len() > 0 {
			p.stats.idleWorkers.Add(-1)
			task, ok := q.list.PopFront()
			if !ok {
				q.mu.Unlock()
				w.fatal(fmt.Errorf("epool: worker %d: queue empty after non-empty check", w.id))
				return Task{}, false
			}
			if q.list.Len() > 0 {
				q.notify()
			}
			q.mu.Unlock()
			return task, true
		}
		if p.quit.Load() || timedOut {
			p.stats.idleWorkers.Add(-1)
			q.mu.Unlock()
			return Task{}, false
		}
		q.mu.Unlock()

		select {
		case <-q.wake:
		case <-p.quitCh:
		case <-timer.C:
			timedOut = true
		}
	}
}

// finish is the Retiring state: release the capacity reservation, remove
// the registry entry on a best-effort basis, and signal the join channel.
// An entry left behind when the registry lock is contended is harmless;
// Shutdown still joins it.
func (w *worker) finish() {
	p := w.pool
	p.stats.currentWorkers.Add(-1)
	if w.handle.err == nil && p.workersMu.TryLock() {
		delete(p.workers, w.id)
		p.workersMu.Unlock()
	}
	close(w.handle.done)
	lg.FromContext(context.Background()).Info("worker retired",
		lg.Any("worker", w.id),
		lg.Any("current_workers", p.stats.currentWorkers.Load()),
	)
}

// fatal records a synchronization invariant violation. The worker keeps its
// registry entry so Shutdown propagates the error instead of discarding it.
func (w *worker) fatal(err error) {
	w.handle.err = err
	w.pool.reportInternalError(err)
	lg.FromContext(context.Background()).Error("worker fatal error",
		lg.Any("worker", w.id),
		lg.Any("error", err),
	)
}

// runTask is the Running state: execute one task to completion with panic
// containment and retry. The active/completed counters stay consistent on
// every path out, panics included.
func (p *Pool) runTask(t Task) {
	p.stats.activeTasks.Add(1)
	defer func() {
		p.stats.activeTasks.Add(-1)
		p.stats.completedTasks.Add(1)
	}()

	if t.Ctx == nil {
		t.Ctx = context.Background()
	}

	defer func() {
		if r := recover(); r != nil {
			lg.FromContext(t.Ctx).Error("task panicked", lg.Any("panic", r))
			p.reportTaskError(fmt.Errorf("epool: task panic: %v", r))
		}
		if t.CleanupFunc != nil {
			t.CleanupFunc()
		}
	}()

	p.runAttempts(t)
}

// runAttempts executes the task's function under the merged retry policy,
// sleeping with exponential backoff between failed attempts. The backoff
// wait is abandoned when the task's context is canceled or the pool quits;
// the attempt itself is never interrupted.
func (p *Pool) runAttempts(t Task) {
	logger := lg.FromContext(t.Ctx)
	pol := p.opts.Retry.merge(t.Retry)
	bo := boff.New(pol.Initial, pol.Max, time.Now().UnixNano())

	for attempt := 1; attempt <= pol.Attempts; attempt++ {
		err := t.Fn()
		if err == nil {
			return
		}
		if attempt == pol.Attempts {
			logger.Error("task failed", lg.Int("attempt", attempt), lg.Any("error", err))
			p.reportTaskError(err)
			return
		}

		delay := bo.Next()
		logger.Warn("task attempt failed; backing off",
			lg.Int("attempt", attempt),
			lg.String("sleep", delay.String()),
			lg.Any("error", err),
		)
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-t.Ctx.Done():
			if !timer.Stop() {
				<-timer.C // drain if timer already fired
			}
			logger.Info("task retries abandoned", lg.Any("reason", t.Ctx.Err()))
			p.reportTaskError(err)
			return
		case <-p.quitCh:
			if !timer.Stop() {
				<-timer.C
			}
			p.reportTaskError(err)
			return
		}
	}
}
