// epool-demo exercises the elastic pool with a staggered task burst: tasks
// arrive every interval and sleep for a while, so the pool grows toward its
// cap, then shrinks back once the burst is done. A monitor task reports the
// worker count while the burst runs.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	lg "github.com/Andrej220/go-utils/zlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Andrej220/go-utils/epool"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML pool config (optional)")
		tasks       = flag.Int("tasks", 100, "number of tasks to submit")
		interval    = flag.Duration("interval", 200*time.Millisecond, "delay between submissions")
		workDur     = flag.Duration("work", 2*time.Second, "simulated duration of each task")
		metricsAddr = flag.String("metrics", "", "address for Prometheus metrics (optional, e.g. :9090)")
	)
	flag.Parse()

	log := lg.FromContext(context.Background())

	opts := epool.DefaultOptions()
	if *configPath != "" {
		var err error
		if opts, err = epool.LoadOptions(*configPath); err != nil {
			log.Error("config load failed", lg.Any("error", err))
			return
		}
	}

	pool, err := epool.New(opts)
	if err != nil {
		log.Error("pool creation failed", lg.Any("error", err))
		return
	}
	log.Info("pool created", lg.Int("max_workers", pool.MaxWorkers()))

	if *metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(epool.NewCollector(pool))
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Error("metrics server stopped", lg.Any("error", err))
			}
		}()
		log.Info("metrics server started", lg.String("addr", *metricsAddr))
	}

	// Monitor the pool size for the expected duration of the burst.
	monitorFor := time.Duration(*tasks)*(*interval) + *workDur
	_ = pool.SubmitFunc(func() {
		deadline := time.Now().Add(monitorFor)
		for time.Now().Before(deadline) {
			log.Info("pool size",
				lg.Int("workers", pool.WorkerCount()),
				lg.Int("idle", pool.IdleWorkers()),
				lg.Int("queued", pool.QueueLen()),
			)
			time.Sleep(100 * time.Millisecond)
		}
	})

	for i := 0; i < *tasks; i++ {
		time.Sleep(*interval)
		id := i
		if err := pool.SubmitFunc(func() {
			log.Info("task begin", lg.Int("task", id))
			time.Sleep(*workDur)
			log.Info("task end", lg.Int("task", id))
		}); err != nil {
			log.Error("submit failed", lg.Int("task", id), lg.Any("error", err))
		}
		if (i+1)%10 == 0 {
			log.Info("submitted", lg.String("progress", fmt.Sprintf("%d/%d", i+1, *tasks)))
		}
	}

	start := time.Now()
	pool.WaitForCompletion()
	log.Info("all tasks completed",
		lg.String("elapsed", time.Since(start).String()),
		lg.Int("final_workers", pool.WorkerCount()),
	)

	pool.Stop()
}
