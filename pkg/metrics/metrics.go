package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records catalog and cart activity.
type StorefrontMetrics struct {
	projectionDuration *prometheus.HistogramVec
	projectionResults  prometheus.Histogram
	cartMutations      *prometheus.CounterVec
}

// NewStorefrontMetrics registers the storefront metrics on the provided
// registerer. A nil registerer yields a no-op recorder.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	projectionDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_projection_duration_seconds",
		Help:    "Duration of catalog filter/sort projections.",
		Buckets: prometheus.DefBuckets,
	}, []string{"sort"})
	projectionResults := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_projection_results",
		Help:    "Number of products surviving a projection.",
		Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	})
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations by operation and outcome.",
	}, []string{"op", "outcome"})
	reg.MustRegister(projectionDuration, projectionResults, cartMutations)
	return &StorefrontMetrics{
		projectionDuration: projectionDuration,
		projectionResults:  projectionResults,
		cartMutations:      cartMutations,
	}
}

// ObserveProjection records one pipeline run.
func (m *StorefrontMetrics) ObserveProjection(sort string, duration time.Duration, results int) {
	if m == nil || m.projectionDuration == nil {
		return
	}
	m.projectionDuration.WithLabelValues(normalizeLabel(sort)).Observe(duration.Seconds())
	m.projectionResults.Observe(float64(results))
}

// IncCartMutation counts a cart mutation attempt.
func (m *StorefrontMetrics) IncCartMutation(op, outcome string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op), normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
