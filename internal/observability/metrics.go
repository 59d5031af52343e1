// Package observability holds the Prometheus metrics recorded by the
// GreenPath client and an optional HTTP listener that exposes them.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "greenpath"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the counters and histograms for the client.
//
// A nil *Metrics is valid; every recording method is a no-op on nil so
// components can be built without metrics in tests.
type Metrics struct {
	StoreOperations *prometheus.CounterVec // labels: op={load,save,register,find,activate,clear}, outcome
	StoreCorruption prometheus.Counter

	// Advisor metrics.
	AdvisorRequests *prometheus.CounterVec   // labels: method={report,recommendations}, outcome
	AdvisorDuration *prometheus.HistogramVec // labels: method

	PacedOperations prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		StoreOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Profile store operations by operation and outcome.",
		}, []string{"op", "outcome"}),
		StoreCorruption: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_corrupt_reads_total",
			Help:      "Persisted values that could not be decoded.",
		}),
		AdvisorRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advisor_requests_total",
			Help:      "Advisor generation requests by method and outcome.",
		}, []string{"method", "outcome"}),
		AdvisorDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "advisor_request_duration_seconds",
			Help:      "Advisor request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"method"}),
		PacedOperations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paced_operations_total",
			Help:      "Operations executed by the deferred executor.",
		}),
	}
}

// NewMetrics creates all client metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.StoreOperations,
		m.StoreCorruption,
		m.AdvisorRequests,
		m.AdvisorDuration,
		m.PacedOperations,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as
// many as they like without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// ObserveStore counts one store operation; a non-nil err counts as an error.
func (m *Metrics) ObserveStore(op string, err error) {
	if m == nil {
		return
	}
	m.StoreOperations.WithLabelValues(op, outcome(err)).Inc()
}

func (m *Metrics) ObserveCorruption() {
	if m == nil {
		return
	}
	m.StoreCorruption.Inc()
}

// ObserveAdvisor records one advisor request and its duration.
func (m *Metrics) ObserveAdvisor(method string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.AdvisorRequests.WithLabelValues(method, outcome(err)).Inc()
	m.AdvisorDuration.WithLabelValues(method).Observe(d.Seconds())
}

func (m *Metrics) ObservePaced() {
	if m == nil {
		return
	}
	m.PacedOperations.Inc()
}

func outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	return OutcomeError
}
