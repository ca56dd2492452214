package scheduler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const NAMESPACE = "daysched"
const SUBSYSTEM = "scheduler"

// Metrics records per-cycle scheduling outcomes for prometheus.
type Metrics struct {
	// Cycle time per scheduling round.
	cycleTime prometheus.Histogram
	// Number of scheduling cycles completed.
	cycles prometheus.Counter
	// Number of jobs admitted for execution.
	executedJobs prometheus.Counter
	// Total compute executed.
	executedCompute prometheus.Counter
	// Number of jobs discarded because their deadline passed.
	expiredJobs prometheus.Counter
	// Backlog size at the end of the most recent cycle.
	backlogSize prometheus.Gauge
	// Day of the most recent cycle.
	currentDay prometheus.Gauge
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		cycleTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: NAMESPACE,
				Subsystem: SUBSYSTEM,
				Name:      "schedule_cycle_times",
				Help:      "Cycle time of each scheduling round.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		cycles: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: NAMESPACE,
				Subsystem: SUBSYSTEM,
				Name:      "cycles_total",
				Help:      "Number of scheduling cycles completed.",
			},
		),
		executedJobs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: NAMESPACE,
				Subsystem: SUBSYSTEM,
				Name:      "executed_jobs_total",
				Help:      "Number of jobs admitted for execution.",
			},
		),
		executedCompute: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: NAMESPACE,
				Subsystem: SUBSYSTEM,
				Name:      "executed_compute_total",
				Help:      "Total compute units executed.",
			},
		),
		expiredJobs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: NAMESPACE,
				Subsystem: SUBSYSTEM,
				Name:      "expired_jobs_total",
				Help:      "Number of jobs discarded because their deadline passed.",
			},
		),
		backlogSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: NAMESPACE,
				Subsystem: SUBSYSTEM,
				Name:      "backlog_size",
				Help:      "Backlog size at the end of the most recent cycle.",
			},
		),
		currentDay: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: NAMESPACE,
				Subsystem: SUBSYSTEM,
				Name:      "current_day",
				Help:      "Day of the most recent scheduling cycle.",
			},
		),
	}
	registerer.MustRegister(
		metrics.cycleTime,
		metrics.cycles,
		metrics.executedJobs,
		metrics.executedCompute,
		metrics.expiredJobs,
		metrics.backlogSize,
		metrics.currentDay,
	)
	return metrics
}

func (m *Metrics) ReportCycle(report *CycleReport, taken time.Duration) {
	m.cycleTime.Observe(taken.Seconds())
	m.cycles.Inc()
	m.executedJobs.Add(float64(report.ExecutedCount()))
	m.executedCompute.Add(float64(report.TotalComputeExecuted))
	m.expiredJobs.Add(float64(report.ExpiredCount))
	m.backlogSize.Set(float64(report.RemainingBacklogSize()))
	m.currentDay.Set(float64(report.Day))
}
