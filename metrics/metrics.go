// SPDX-License-Identifier: MIT

package metrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/radar/radar"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeConverged = "converged"
	OutcomeExhausted = "exhausted"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Collector records solver runs. It is safe for concurrent use.
type Collector struct {
	runs       *prometheus.CounterVec
	inFlight   prometheus.Gauge
	iterations *prometheus.HistogramVec
	steps      prometheus.Counter
	duration   *prometheus.HistogramVec
	objective  *prometheus.GaugeVec
}

var _ radar.Observer = (*Collector)(nil)

// New registers the radar metrics on reg and returns their Collector.
// It panics if the metrics are already registered on reg, like promauto does.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		runs: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "radar_solve_runs_total",
				Help: "Total number of solver runs, by backend and outcome",
			},
			[]string{"backend", "outcome"},
		),
		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "radar_solve_in_flight",
			Help: "Number of solver runs currently executing",
		}),
		iterations: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "radar_solve_iterations",
				Help:    "Completed iterations per solver run",
				Buckets: []float64{1, 2, 3, 5, 10, 20, 50, 100, 200},
			},
			[]string{"backend"},
		),
		steps: f.NewCounter(prometheus.CounterOpts{
			Name: "radar_solve_iterations_total",
			Help: "Total number of completed solver iterations",
		}),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "radar_solve_duration_seconds",
				Help: "Wall time of solver runs in seconds",
				// from a handful of nodes (microseconds) to thousands (minutes)
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30, 120, 600},
			},
			[]string{"backend"},
		),
		objective: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "radar_solve_objective",
				Help: "Final objective value of the last successful run",
			},
			[]string{"backend"},
		),
	}
}

func (c *Collector) OnSolveStart(context.Context, radar.SolveInfo) {
	c.inFlight.Inc()
}

func (c *Collector) OnIteration(context.Context, int, float64) {
	c.steps.Inc()
}

func (c *Collector) OnSolveComplete(_ context.Context, stats radar.SolveStats, err error) {
	c.inFlight.Dec()
	c.runs.WithLabelValues(stats.Backend, outcome(stats, err)).Inc()
	c.duration.WithLabelValues(stats.Backend).Observe(stats.Duration.Seconds())
	if err != nil {
		return
	}
	c.iterations.WithLabelValues(stats.Backend).Observe(float64(stats.Iterations))
	c.objective.WithLabelValues(stats.Backend).Set(stats.Objective)
}

func outcome(stats radar.SolveStats, err error) string {
	switch {
	case err == nil && stats.Converged:
		return OutcomeConverged
	case err == nil:
		return OutcomeExhausted
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}

// WriteTextfile writes everything g gathers to path in the Prometheus text
// format. The file is replaced atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
