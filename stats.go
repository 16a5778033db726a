package epool

import (
	"sync/atomic"
)

// poolStats is the pool's shared counter block.
//
// All counters are lock-free; no update is ever gated on holding the queue
// lock. Sequentially consistent atomics (Go's only flavor) keep the
// bookkeeping easy to reason about. Invariants: currentWorkers never exceeds
// the configured cap, idleWorkers never exceeds currentWorkers, and
// completedTasks never exceeds submittedTasks; the task counters are
// monotonically non-decreasing.
type poolStats struct {
	// currentWorkers counts live workers, reserved slots included.
	currentWorkers atomic.Int64

	_ [56]byte // padding to avoid false sharing

	// idleWorkers counts workers blocked waiting for work.
	idleWorkers atomic.Int64

	_ [56]byte

	// activeTasks counts tasks currently executing.
	activeTasks atomic.Int64

	_ [56]byte

	// submittedTasks counts tasks accepted by Submit.
	submittedTasks atomic.Int64

	_ [56]byte

	// completedTasks counts tasks whose execution has finished.
	completedTasks atomic.Int64
}

// Stats is a point-in-time snapshot of the pool's counters.
//
// The fields are read individually, so a snapshot taken while the pool is
// running is internally consistent only up to counter ordering.
type Stats struct {
	CurrentWorkers int
	IdleWorkers    int
	ActiveTasks    int
	SubmittedTasks uint64
	CompletedTasks uint64
	QueueLen       int
}

func (s *poolStats) snapshot(queueLen int) Stats {
	return Stats{
		CurrentWorkers: int(s.currentWorkers.Load()),
		IdleWorkers:    int(s.idleWorkers.Load()),
		ActiveTasks:    int(s.activeTasks.Load()),
		SubmittedTasks: uint64(s.submittedTasks.Load()),
		CompletedTasks: uint64(s.completedTasks.Load()),
		QueueLen:       queueLen,
	}
}
