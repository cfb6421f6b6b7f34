package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Store Metrics
var (
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameStoreOperationDuration,
			Help:      HelpTextStoreOperationDuration,
			Buckets:   StoreLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameStoreOperationErrors,
			Help:      HelpTextStoreOperationErrors,
		},
		[]string{LabelOperation},
	)
)

// Business Metrics
var (
	RecordsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRecordsCreated,
			Help:      HelpTextRecordsCreated,
		},
	)

	RecordsUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameRecordsUpdated,
			Help:      HelpTextRecordsUpdated,
		},
	)

	DuplicateRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDuplicateRejections,
			Help:      HelpTextDuplicateRejections,
		},
		[]string{LabelGuard},
	)

	ValidationRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameValidationRejections,
			Help:      HelpTextValidationRejections,
		},
	)

	SearchesPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameSearchesPerformed,
			Help:      HelpTextSearchesPerformed,
		},
		[]string{LabelMode},
	)

	SearchCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameSearchCacheHits,
			Help:      HelpTextSearchCacheHits,
		},
	)
)

// ObserveStoreOperation records the latency of a store call started at start.
// Unexpected failures are counted separately; pass nil for expected domain outcomes.
func ObserveStoreOperation(operation string, start time.Time, unexpected error) {
	StoreOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if unexpected != nil {
		StoreOperationErrors.WithLabelValues(operation).Inc()
	}
}
