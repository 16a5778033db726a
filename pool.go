package epool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	lg "github.com/Andrej220/go-utils/zlog"
	"go.uber.org/multierr"
)

// Pool is an elastic worker pool.
//
// The pool starts with zero workers. Submit grows it on demand up to
// Options.MaxWorkers through a CAS reservation, and workers retire on their
// own after Options.IdleTimeout without work. The pool's lifetime strictly
// contains every worker's lifetime: Shutdown joins whatever is left.
type Pool struct {
	opts  Options
	queue *taskQueue
	stats poolStats

	workersMu sync.Mutex
	workers   map[uint64]*workerHandle

	// nextWorkerID hands out registry keys; ids are never reused.
	nextWorkerID atomic.Uint64

	// quit is one-way. The flag is for lock-held checks, the channel is
	// the notify-all broadcast.
	quit     atomic.Bool
	quitCh   chan struct{}
	stopOnce sync.Once

	// OnTaskError receives final task errors and recovered panics.
	OnTaskError func(error)

	// OnInternalError receives non-task failures such as invariant
	// violations. Both handlers must be set before the first Submit.
	OnInternalError func(error)
}

// New creates a pool with the given options. No worker is started until
// the first Submit. A non-positive MaxWorkers is a configuration error,
// never silently clamped.
func New(opts Options) (*Pool, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.fillDefaults()

	return &Pool{
		opts:    opts,
		queue:   newTaskQueue(),
		workers: make(map[uint64]*workerHandle),
		quitCh:  make(chan struct{}),
	}, nil
}

// NewDefault creates a pool capped at the host's available parallelism.
func NewDefault() *Pool {
	p, err := New(DefaultOptions())
	if err != nil {
		// DefaultOptions always validates; reaching this is a bug.
		panic(err)
	}
	return p
}

// Submit enqueues a task for execution and returns immediately. The only
// observable result is acceptance; task errors are retried and reported
// through OnTaskError, never to the caller.
//
// Growth is a hint, not a guarantee: a new worker is reserved and spawned
// only when no worker is currently idle, so briefly busy workers do not
// trigger spawn storms.
func (p *Pool) Submit(t Task) error {
	if t.Fn == nil {
		return ErrNilTask
	}
	if p.quit.Load() {
		return ErrPoolClosed
	}

	p.queue.push(t)
	p.stats.submittedTasks.Add(1)
	p.queue.notify()

	ctx := t.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	lg.FromContext(ctx).Info("task submitted", lg.Int("queue_len", p.queue.len()))

	if p.stats.idleWorkers.Load() == 0 {
		p.trySpawn()
	}
	return nil
}

// SubmitFunc enqueues a bare closure with no context, cleanup, or retries.
func (p *Pool) SubmitFunc(fn func()) error {
	if fn == nil {
		return ErrNilTask
	}
	return p.Submit(Task{
		Fn: func() error {
			fn()
			return nil
		},
	})
}

// trySpawn reserves one unit of worker capacity and creates a worker for
// it. The reserve-then-create order is what keeps concurrent submitters
// from overshooting the cap: losing the CAS means someone else took the
// slot, so the count is re-read and the check repeated.
func (p *Pool) trySpawn() bool {
	max := int64(p.opts.MaxWorkers)
	for {
		current := p.stats.currentWorkers.Load()
		if current >= max {
			return false
		}
		if p.stats.currentWorkers.CompareAndSwap(current, current+1) {
			p.spawnWorker()
			return true
		}
	}
}

// spawnWorker creates and registers a worker for an already-reserved slot.
// The registry entry is inserted before the goroutine starts so Shutdown
// can never miss a worker it has to join.
func (p *Pool) spawnWorker() {
	id := p.nextWorkerID.Add(1) - 1
	h := &workerHandle{done: make(chan struct{})}
	w := &worker{id: id, pool: p, handle: h}

	p.workersMu.Lock()
	p.workers[id] = h
	p.workersMu.Unlock()

	go w.run()

	lg.FromContext(context.Background()).Info("worker spawned",
		lg.Any("worker", id),
		lg.Any("current_workers", p.stats.currentWorkers.Load()),
		lg.Int("max_workers", p.opts.MaxWorkers),
	)
}

// WorkerCount returns the number of live workers, reserved slots included.
func (p *Pool) WorkerCount() int {
	return int(p.stats.currentWorkers.Load())
}

// IdleWorkers returns the number of workers currently blocked waiting.
func (p *Pool) IdleWorkers() int {
	return int(p.stats.idleWorkers.Load())
}

// MaxWorkers returns the configured worker cap.
func (p *Pool) MaxWorkers() int {
	return p.opts.MaxWorkers
}

// QueueLen returns the number of tasks waiting to be dequeued.
func (p *Pool) QueueLen() int {
	return p.queue.len()
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	return p.stats.snapshot(p.queue.len())
}

// WaitForCompletion blocks until every task submitted before the call has
// finished executing. Tasks submitted afterwards are not waited for.
func (p *Pool) WaitForCompletion() {
	target := p.stats.submittedTasks.Load()
	for p.stats.completedTasks.Load() < target {
		runtime.Gosched()
	}
}

// Shutdown stops the pool: it sets the quit flag, wakes every blocked
// worker, joins every registered worker, executes any tasks the retiring
// workers left behind, and waits for in-flight work to drain. Worker fatal
// errors are aggregated into the returned error instead of being dropped.
//
// Shutdown is safe to call repeatedly; only the first call signals, and
// every call waits. On context expiry the pool is left quitting but
// not fully joined; a later call finishes the job.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() {
		p.quit.Store(true)
		close(p.quitCh)
	})

	var errs error

	// Workers self-deregister best-effort, so the registry is drained in
	// rounds until no entry is left: a late spawn racing the quit flag
	// still gets joined. An entry is removed only once its join succeeds,
	// so a context expiry mid-round leaves the unjoined handles in place
	// for a later call to finish.
	for {
		p.workersMu.Lock()
		ids := make([]uint64, 0, len(p.workers))
		handles := make([]*workerHandle, 0, len(p.workers))
		for id, h := range p.workers {
			ids = append(ids, id)
			handles = append(handles, h)
		}
		p.workersMu.Unlock()

		if len(handles) == 0 {
			break
		}
		for i, h := range handles {
			select {
			case <-h.done:
				errs = multierr.Append(errs, h.err)
				p.workersMu.Lock()
				delete(p.workers, ids[i])
				p.workersMu.Unlock()
			case <-ctx.Done():
				return multierr.Append(errs, ctx.Err())
			}
		}
	}

	// Accepted work is never abandoned: anything still queued after the
	// workers are gone runs here, on the caller's goroutine.
	for {
		t, ok := p.queue.tryPop()
		if !ok {
			break
		}
		p.runTask(t)
	}

	for p.stats.activeTasks.Load() > 0 {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		runtime.Gosched()
	}
	return errs
}

// Stop is Shutdown without a deadline.
func (p *Pool) Stop() {
	_ = p.Shutdown(context.Background())
}
