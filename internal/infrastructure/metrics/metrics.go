package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sentiment"

// Outcome labels for the analyses counter
const (
	OutcomeEmpty    = "empty"
	OutcomeSuccess  = "success"
	OutcomeDegraded = "degraded"
)

// Metrics holds the Prometheus collectors of the service
type Metrics struct {
	Analyses       *prometheus.CounterVec
	Sentiments     *prometheus.CounterVec
	BackendLatency *prometheus.HistogramVec
	CacheLookups   *prometheus.CounterVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer
// to expose them on /metrics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Number of analyses by outcome.",
		}, []string{"outcome"}),
		Sentiments: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_total",
			Help:      "Number of results by sentiment label.",
		}, []string{"sentiment"}),
		BackendLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_duration_seconds",
			Help:      "Duration of backend classification calls.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"model", "status"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Prediction cache lookups by result.",
		}, []string{"result"}),
	}
}

// ObserveAnalysis counts one analysis and its sentiment
func (m *Metrics) ObserveAnalysis(outcome, sentiment string) {
	if m == nil {
		return
	}
	m.Analyses.WithLabelValues(outcome).Inc()
	m.Sentiments.WithLabelValues(sentiment).Inc()
}

// ObserveBackend records the duration of one backend call
func (m *Metrics) ObserveBackend(model string, d time.Duration, failed bool) {
	if m == nil {
		return
	}
	status := "ok"
	if failed {
		status = "error"
	}
	m.BackendLatency.WithLabelValues(model, status).Observe(d.Seconds())
}

// ObserveCache counts a cache hit, miss or error
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
