/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package rebalance

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	attemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rebalance_attempts_total",
			Help: "Total number of table rebalance attempts",
		},
		[]string{"table", "result"},
	)

	durationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rebalance_duration_seconds",
			Help:    "Duration of a table rebalance call in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		},
		[]string{"table"},
	)

	casConflictsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rebalance_cas_conflicts_total",
			Help: "Total number of IdealState CAS version conflicts encountered",
		},
		[]string{"table"},
	)

	evWaitSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rebalance_ev_wait_seconds",
			Help:    "Time spent waiting for external view convergence",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
		[]string{"table"},
	)

	stepIterations = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rebalance_step_iterations",
			Help:    "Number of no-downtime loop iterations taken to converge a table",
			Buckets: prometheus.LinearBuckets(1, 1, 20),
		},
		[]string{"table"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		attemptsTotal,
		durationSeconds,
		casConflictsTotal,
		evWaitSeconds,
		stepIterations,
	)
}

// RecordAttempt records the terminal result of one rebalance call.
func RecordAttempt(table, result string) {
	attemptsTotal.WithLabelValues(table, result).Inc()
}

// RecordDuration records how long a rebalance call took.
func RecordDuration(table string, seconds float64) {
	durationSeconds.WithLabelValues(table).Observe(seconds)
}

// RecordCASConflict records a single IdealState CAS version conflict.
func RecordCASConflict(table string) {
	casConflictsTotal.WithLabelValues(table).Inc()
}

// RecordEVWait records the time spent in one convergence wait call.
func RecordEVWait(table string, seconds float64) {
	evWaitSeconds.WithLabelValues(table).Observe(seconds)
}

// RecordStepIterations records how many no-downtime loop iterations a
// rebalance took to converge.
func RecordStepIterations(table string, iterations int) {
	stepIterations.WithLabelValues(table).Observe(float64(iterations))
}
