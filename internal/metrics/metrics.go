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
	ItemsCrafted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCrafted,
			Help: HelpTextItemsCrafted,
		},
		[]string{LabelRecipe, LabelItem},
	)

	CraftFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftFailures,
			Help: HelpTextCraftFailures,
		},
		[]string{LabelRecipe},
	)

	CraftJobsQueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftJobsQueued,
			Help: HelpTextCraftJobsQueued,
		},
		[]string{LabelRecipe},
	)

	LootRolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootRolls,
			Help: HelpTextLootRolls,
		},
		[]string{LabelTable},
	)

	LootItemsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootItemsDropped,
			Help: HelpTextLootItemsDropped,
		},
		[]string{LabelTable, LabelItem},
	)

	InventoryOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryOps,
			Help: HelpTextInventoryOps,
		},
		[]string{LabelOperation},
	)

	DatabaseReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDatabaseReloads,
			Help: HelpTextDatabaseReloads,
		},
		[]string{LabelResult},
	)

	DatabaseItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDatabaseItems,
			Help: HelpTextDatabaseItems,
		},
	)
)
