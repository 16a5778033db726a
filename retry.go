package epool

import (
	"time"
)

const (
	defaultAttempts     = 3
	defaultInitialRetry = 200 * time.Millisecond
	defaultMaxRetry     = 5 * time.Second
)

// RetryPolicy describes how many times and how often a failed task is
// retried. Zero values are treated as "use pool defaults".
type RetryPolicy struct {
	// Attempts is the maximum number of tries for a task.
	Attempts int

	// Initial is the first backoff duration.
	Initial time.Duration

	// Max is the cap for backoff duration.
	Max time.Duration
}

// DefaultRetryPolicy returns the retry policy applied to tasks that do not
// carry one of their own.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Attempts: defaultAttempts,
		Initial:  defaultInitialRetry,
		Max:      defaultMaxRetry,
	}
}

// merge overlays the non-zero fields of override onto p.
func (p RetryPolicy) merge(override *RetryPolicy) RetryPolicy {
	if override == nil {
		return p
	}
	if override.Attempts > 0 {
		p.Attempts = override.Attempts
	}
	if override.Initial > 0 {
		p.Initial = override.Initial
	}
	if override.Max > 0 {
		p.Max = override.Max
	}
	return p
}

func (p *RetryPolicy) fillDefaults() {
	if p.Attempts <= 0 {
		p.Attempts = defaultAttempts
	}
	if p.Initial <= 0 {
		p.Initial = defaultInitialRetry
	}
	if p.Max <= 0 {
		p.Max = defaultMaxRetry
	}
}
