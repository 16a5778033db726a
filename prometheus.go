package epool

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes a pool's counters as Prometheus metrics. It reads the
// pool's atomic snapshot on every scrape; nothing on the submit or execute
// hot paths changes when a collector is registered.
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(epool.NewCollector(pool))
type Collector struct {
	pool *Pool

	workersCurrent *prometheus.Desc
	workersIdle    *prometheus.Desc
	workersMax     *prometheus.Desc
	tasksActive    *prometheus.Desc
	tasksSubmitted *prometheus.Desc
	tasksCompleted *prometheus.Desc
	queueLength    *prometheus.Desc
}

// NewCollector creates a Prometheus collector for the pool.
func NewCollector(p *Pool) *Collector {
	return &Collector{
		pool: p,
		workersCurrent: prometheus.NewDesc(
			"epool_workers_current",
			"Number of live workers, reserved slots included.",
			nil, nil,
		),
		workersIdle: prometheus.NewDesc(
			"epool_workers_idle",
			"Number of workers blocked waiting for work.",
			nil, nil,
		),
		workersMax: prometheus.NewDesc(
			"epool_workers_max",
			"Configured worker cap.",
			nil, nil,
		),
		tasksActive: prometheus.NewDesc(
			"epool_tasks_active",
			"Number of tasks currently executing.",
			nil, nil,
		),
		tasksSubmitted: prometheus.NewDesc(
			"epool_tasks_submitted_total",
			"Total number of tasks accepted by Submit.",
			nil, nil,
		),
		tasksCompleted: prometheus.NewDesc(
			"epool_tasks_completed_total",
			"Total number of tasks whose execution finished.",
			nil, nil,
		),
		queueLength: prometheus.NewDesc(
			"epool_queue_length",
			"Number of tasks waiting to be dequeued.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.workersCurrent
	ch <- c.workersIdle
	ch <- c.workersMax
	ch <- c.tasksActive
	ch <- c.tasksSubmitted
	ch <- c.tasksCompleted
	ch <- c.queueLength
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.pool.Stats()

	ch <- prometheus.MustNewConstMetric(c.workersCurrent, prometheus.GaugeValue, float64(s.CurrentWorkers))
	ch <- prometheus.MustNewConstMetric(c.workersIdle, prometheus.GaugeValue, float64(s.IdleWorkers))
	ch <- prometheus.MustNewConstMetric(c.workersMax, prometheus.GaugeValue, float64(c.pool.MaxWorkers()))
	ch <- prometheus.MustNewConstMetric(c.tasksActive, prometheus.GaugeValue, float64(s.ActiveTasks))
	ch <- prometheus.MustNewConstMetric(c.tasksSubmitted, prometheus.CounterValue, float64(s.SubmittedTasks))
	ch <- prometheus.MustNewConstMetric(c.tasksCompleted, prometheus.CounterValue, float64(s.CompletedTasks))
	ch <- prometheus.MustNewConstMetric(c.queueLength, prometheus.GaugeValue, float64(s.QueueLen))
}
