package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNamePurchasesCompleted   = "purchases_completed_total"
	MetricNameGemsSpent            = "gems_spent_total"
	MetricNameGemsGranted          = "gems_granted_total"
	MetricNameEffectsApplied       = "effects_applied_total"
	MetricNameFulfillmentsResolved = "fulfillments_resolved_total"
	MetricNameFulfillmentsRetried  = "fulfillments_retried_total"
	MetricNameItemsEquipped        = "items_equipped_total"
	MetricNameProfilesActivated    = "profiles_activated_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextPurchasesCompleted   = "Total number of completed purchases"
	HelpTextGemsSpent            = "Total gems debited by purchases"
	HelpTextGemsGranted          = "Total gems credited by gem grant effects"
	HelpTextEffectsApplied       = "Total number of functional effects applied"
	HelpTextFulfillmentsResolved = "Total number of fulfillments resolved by the delivery worker"
	HelpTextFulfillmentsRetried  = "Total number of failed fulfillments re-queued"
	HelpTextItemsEquipped        = "Total number of items equipped"
	HelpTextProfilesActivated    = "Total number of profile activations"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelEffect = "effect"
	LabelSlot   = "slot"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnhandledPayload = "Event payload type not tracked"
	LogMsgMetricsRecorded  = "Metrics recorded for event"
)
