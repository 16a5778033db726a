package epool_test

import (
	"runtime"
	"testing"
	"time"

	ep "github.com/Andrej220/go-utils/epool"
)

func newTestPool(t *testing.T, maxWorkers int, idleTimeout time.Duration) *ep.Pool {
	t.Helper()

	opts := ep.DefaultOptions()
	opts.MaxWorkers = maxWorkers
	opts.IdleTimeout = idleTimeout
	// Keep retry out of the way unless a test opts in.
	opts.Retry = ep.RetryPolicy{Attempts: 1, Initial: time.Millisecond, Max: time.Millisecond}

	p, err := ep.New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return p
}

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		runtime.Gosched()
	}
	t.Fatal("condition not satisfied before timeout")
}
