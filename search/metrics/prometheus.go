// Package metrics provides Prometheus instrumentation for search runs.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics exposes search execution counters under the
// "searchtoy_" namespace:
//
//  1. nodes_explored_total (counter): nodes popped from the frontier.
//     Labels: strategy.
//  2. solutions_yielded_total (counter): goal nodes returned to the caller.
//     Labels: strategy.
//  3. frontier_depth (gauge): current number of nodes held by the frontier.
//  4. solutions_duration_ms (histogram): wall-clock duration of a single
//     Solutions/Solve/Optimize call, in milliseconds. Labels: strategy.
//  5. bound_tightenings_total (counter): times the upper bound was lowered
//     after a solution was yielded. Labels: strategy.
type PrometheusMetrics struct {
	nodesExplored    *prometheus.CounterVec
	solutionsYielded *prometheus.CounterVec
	frontierDepth    prometheus.Gauge
	solutionsLatency *prometheus.HistogramVec
	boundTightenings *prometheus.CounterVec

	mu      sync.RWMutex
	enabled bool
}

// NewPrometheusMetrics registers and returns the search metric collectors
// against registry (prometheus.DefaultRegisterer if nil).
func NewPrometheusMetrics(registry prometheus.Registerer) *PrometheusMetrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	pm := &PrometheusMetrics{enabled: true}

	pm.nodesExplored = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "searchtoy",
		Name:      "nodes_explored_total",
		Help:      "Nodes popped from the frontier for expansion or goal testing",
	}, []string{"strategy"})

	pm.solutionsYielded = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "searchtoy",
		Name:      "solutions_yielded_total",
		Help:      "Goal nodes returned to the caller",
	}, []string{"strategy"})

	pm.frontierDepth = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: "searchtoy",
		Name:      "frontier_depth",
		Help:      "Current number of nodes held by the frontier",
	})

	pm.solutionsLatency = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "searchtoy",
		Name:      "solutions_duration_ms",
		Help:      "Wall-clock duration of a Solutions/Solve/Optimize call, in milliseconds",
		Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000, 60000},
	}, []string{"strategy"})

	pm.boundTightenings = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "searchtoy",
		Name:      "bound_tightenings_total",
		Help:      "Times the upper bound was lowered after a solution was yielded",
	}, []string{"strategy"})

	return pm
}

// IncNodesExplored increments nodes_explored_total for strategy.
func (pm *PrometheusMetrics) IncNodesExplored(strategy string) {
	if !pm.isEnabled() {
		return
	}
	pm.nodesExplored.WithLabelValues(strategy).Inc()
}

// IncSolutionsYielded increments solutions_yielded_total for strategy.
func (pm *PrometheusMetrics) IncSolutionsYielded(strategy string) {
	if !pm.isEnabled() {
		return
	}
	pm.solutionsYielded.WithLabelValues(strategy).Inc()
}

// SetFrontierDepth sets the frontier_depth gauge.
func (pm *PrometheusMetrics) SetFrontierDepth(depth int) {
	if !pm.isEnabled() {
		return
	}
	pm.frontierDepth.Set(float64(depth))
}

// ObserveSolutionsDuration records the duration of one Solutions call.
func (pm *PrometheusMetrics) ObserveSolutionsDuration(strategy string, d time.Duration) {
	if !pm.isEnabled() {
		return
	}
	pm.solutionsLatency.WithLabelValues(strategy).Observe(float64(d.Milliseconds()))
}

// IncBoundTightenings increments bound_tightenings_total for strategy.
func (pm *PrometheusMetrics) IncBoundTightenings(strategy string) {
	if !pm.isEnabled() {
		return
	}
	pm.boundTightenings.WithLabelValues(strategy).Inc()
}

func (pm *PrometheusMetrics) isEnabled() bool {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.enabled
}

// Disable stops metric recording (useful for tests sharing a registry).
func (pm *PrometheusMetrics) Disable() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.enabled = false
}

// Enable resumes metric recording after Disable.
func (pm *PrometheusMetrics) Enable() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.enabled = true
}
