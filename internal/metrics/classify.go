package metrics

import "github.com/prometheus/client_golang/prometheus"

// Classification Prometheus metrics.
var (
	ClassificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "statroute",
			Name:      "classifications_total",
			Help:      "Total number of classified queries",
		},
		[]string{"query_type", "style"},
	)

	ClassificationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "statroute",
			Name:      "classification_duration_seconds",
			Help:      "Heuristic classification duration in seconds",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	PrefilterHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "statroute",
			Name:      "prefilter_hits_total",
			Help:      "Pre-filter short-circuits by filter name",
		},
		[]string{"filter"},
	)

	FallbackRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "statroute",
			Name:      "fallback_requests_total",
			Help:      "Generative fallback classification requests",
		},
		[]string{"model", "status"},
	)
)

var classifyMetricsRegistered bool

// RegisterClassifyMetrics registers Prometheus classification metrics. Must be called once from main.
func RegisterClassifyMetrics() {
	if classifyMetricsRegistered {
		return
	}
	prometheus.MustRegister(ClassificationsTotal)
	prometheus.MustRegister(ClassificationDuration)
	prometheus.MustRegister(PrefilterHitsTotal)
	prometheus.MustRegister(FallbackRequestsTotal)
	classifyMetricsRegistered = true
}
