package epool

import (
	"sync"
)

// taskQueue is the unit of cross-worker coordination: the linked-list
// storage paired with a mutex and a wake signal.
//
// Every mutation of the underlying list happens with mu held. The wake
// channel plays the role of a condition variable's notify-one: Submit posts
// a single token, at most one blocked worker consumes it and re-checks the
// list. The notify-all used on shutdown is the pool's closed quit channel,
// which every waiter also selects on.
//
// A capacity-1 channel coalesces notifications, so a worker that pops a
// task while the list is still non-empty must re-signal (chained wakeup);
// otherwise back-to-back submissions could leave a queued task waiting for
// a full idle timeout.
type taskQueue struct {
	mu   sync.Mutex
	list *List[Task]
	wake chan struct{}
}

func newTaskQueue() *taskQueue {
	return &taskQueue{
		list: NewList[Task](),
		wake: make(chan struct{}, 1),
	}
}

// notify wakes at most one blocked waiter. Never blocks.
func (q *taskQueue) notify() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// push appends a task under the lock.
func (q *taskQueue) push(t Task) {
	q.mu.Lock()
	q.list.PushBack(t)
	q.mu.Unlock()
}

// tryPop removes the head task under the lock. When the list is left
// non-empty it chains the wakeup to the next waiter.
func (q *taskQueue) tryPop() (Task, bool) {
	q.mu.Lock()
	t, ok := q.list.PopFront()
	if ok && q.list.Len() > 0 {
		q.notify()
	}
	q.mu.Unlock()
	return t, ok
}

// len reports the queued-task count under the lock.
func (q *taskQueue) len() int {
	q.mu.Lock()
	n := q.list.Len()
	q.mu.Unlock()
	return n
}
