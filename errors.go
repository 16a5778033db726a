package epool

import (
	"errors"
)

var (
	// ErrPoolClosed is returned by Submit after Shutdown has started.
	ErrPoolClosed = errors.New("epool: pool closed")

	// ErrNilTask is returned when a submitted Task has a nil Fn.
	ErrNilTask = errors.New("epool: task func is nil")

	// ErrInvalidMaxWorkers is returned by New when Options.MaxWorkers
	// is zero or negative. The cap is never silently clamped.
	ErrInvalidMaxWorkers = errors.New("epool: MaxWorkers must be positive")
)

// reportInternalError reports a non-task failure such as a synchronization
// invariant violation. If no handler is registered, the error is still
// recorded on the worker handle and surfaced by Shutdown.
func (p *Pool) reportInternalError(err error) {
	if p.OnInternalError != nil {
		p.OnInternalError(err)
	}
}

// reportTaskError reports an error returned by a task after its final
// attempt, or produced by panic recovery.
//
// Task errors do not stop pool execution and never reach the submitter.
func (p *Pool) reportTaskError(err error) {
	if p.OnTaskError != nil {
		p.OnTaskError(err)
	}
}
