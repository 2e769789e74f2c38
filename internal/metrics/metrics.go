package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	PurchasesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesCompleted,
			Help: HelpTextPurchasesCompleted,
		},
	)

	GemsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGemsSpent,
			Help: HelpTextGemsSpent,
		},
	)

	GemsGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGemsGranted,
			Help: HelpTextGemsGranted,
		},
	)

	EffectsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEffectsApplied,
			Help: HelpTextEffectsApplied,
		},
		[]string{LabelEffect},
	)

	FulfillmentsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFulfillmentsResolved,
			Help: HelpTextFulfillmentsResolved,
		},
		[]string{LabelStatus},
	)

	FulfillmentsRetried = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFulfillmentsRetried,
			Help: HelpTextFulfillmentsRetried,
		},
	)

	ItemsEquipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsEquipped,
			Help: HelpTextItemsEquipped,
		},
		[]string{LabelSlot},
	)

	ProfilesActivated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfilesActivated,
			Help: HelpTextProfilesActivated,
		},
	)
)
