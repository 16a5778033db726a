package epool

import (
	"runtime"
	"time"
)

// DefaultIdleTimeout is how long an idle worker waits for work before
// retiring when Options.IdleTimeout is unset.
const DefaultIdleTimeout = 10 * time.Second

// Options configure a Pool.
//
// MaxWorkers must be positive; use DefaultOptions for host-parallelism
// defaults. Other zero values are replaced in New.
type Options struct {
	// MaxWorkers is the upper bound on concurrently running workers.
	MaxWorkers int

	// IdleTimeout is how long an idle worker waits before retiring.
	IdleTimeout time.Duration

	// Retry is the default retry policy for tasks that carry none.
	Retry RetryPolicy
}

// DefaultOptions returns Options sized to the host's available parallelism.
func DefaultOptions() Options {
	return Options{
		MaxWorkers:  runtime.GOMAXPROCS(0),
		IdleTimeout: DefaultIdleTimeout,
		Retry:       DefaultRetryPolicy(),
	}
}

// validate rejects configurations the pool refuses to run with, before any
// worker exists.
func (o *Options) validate() error {
	if o.MaxWorkers <= 0 {
		return ErrInvalidMaxWorkers
	}
	return nil
}

func (o *Options) fillDefaults() {
	if o.IdleTimeout <= 0 {
		o.IdleTimeout = DefaultIdleTimeout
	}
	o.Retry.fillDefaults()
}
