package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by the service
const Namespace = "inventory"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Store metric names
const (
	MetricNameStoreOperationDuration = "store_operation_duration_seconds"
	MetricNameStoreOperationErrors   = "store_operation_errors_total"
)

// Business metric names
const (
	MetricNameRecordsCreated       = "records_created_total"
	MetricNameRecordsUpdated       = "records_updated_total"
	MetricNameDuplicateRejections  = "duplicate_rejections_total"
	MetricNameValidationRejections = "validation_rejections_total"
	MetricNameSearchesPerformed    = "searches_performed_total"
	MetricNameSearchCacheHits      = "search_cache_hits_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Store metric help text
const (
	HelpTextStoreOperationDuration = "Record store call latency in seconds"
	HelpTextStoreOperationErrors   = "Total number of record store calls that failed unexpectedly"
)

// Business metric help text
const (
	HelpTextRecordsCreated       = "Total number of inventory records created"
	HelpTextRecordsUpdated       = "Total number of inventory records updated"
	HelpTextDuplicateRejections  = "Total number of writes rejected for a duplicate serial number and type"
	HelpTextValidationRejections = "Total number of writes rejected by payload validation"
	HelpTextSearchesPerformed    = "Total number of searches performed"
	HelpTextSearchCacheHits      = "Total number of searches served from the result cache"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelGuard     = "guard"
	LabelMode      = "mode"
)

// Duplicate guard label values
const (
	GuardPrecheck = "precheck"
	GuardIndex    = "index"
)

// Search mode label values
const (
	SearchModeAll   = "all"
	SearchModeQuery = "query"
)

// PathUnmatched labels requests that hit no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// StoreLatencyBuckets covers store calls from 0.5ms to 5s.
var StoreLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 5}
