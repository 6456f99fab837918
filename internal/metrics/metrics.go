// Package metrics exposes Prometheus instrumentation for run execution.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector tracks run lifecycle metrics. A nil Collector is a no-op so
// callers never have to branch on whether metrics are enabled.
type Collector struct {
	runsStarted     *prometheus.CounterVec
	runsCompleted   *prometheus.CounterVec
	runDuration     prometheus.Histogram
	terminalRetries prometheus.Counter
}

// NewCollector registers the run metrics on the default registry.
func NewCollector() *Collector {
	return &Collector{
		runsStarted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "orchestrator_runs_started_total",
			Help: "Runs accepted for execution, by agent.",
		}, []string{"agent_id"}),
		runsCompleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "orchestrator_runs_completed_total",
			Help: "Runs reaching a terminal status.",
		}, []string{"status"}),
		runDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "orchestrator_run_duration_seconds",
			Help:    "Wall time from execution start to terminal status.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		terminalRetries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orchestrator_terminal_write_retries_total",
			Help: "Retries of terminal status writes against the store.",
		}),
	}
}

// RunStarted counts a run entering execution.
func (c *Collector) RunStarted(agentID string) {
	if c == nil {
		return
	}
	c.runsStarted.WithLabelValues(agentID).Inc()
}

// RunCompleted counts a run reaching a terminal status.
func (c *Collector) RunCompleted(status string, duration time.Duration) {
	if c == nil {
		return
	}
	c.runsCompleted.WithLabelValues(status).Inc()
	if duration > 0 {
		c.runDuration.Observe(duration.Seconds())
	}
}

// TerminalWriteRetried counts one retried terminal status write.
func (c *Collector) TerminalWriteRetried() {
	if c == nil {
		return
	}
	c.terminalRetries.Inc()
}
