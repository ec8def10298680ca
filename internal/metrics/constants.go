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
	MetricNameItemsCrafted      = "items_crafted_total"
	MetricNameCraftFailures     = "craft_failures_total"
	MetricNameCraftJobsQueued   = "craft_jobs_queued_total"
	MetricNameLootRolls         = "loot_rolls_total"
	MetricNameLootItemsDropped  = "loot_items_dropped_total"
	MetricNameInventoryOps      = "inventory_operations_total"
	MetricNameDatabaseReloads   = "database_reloads_total"
	MetricNameDatabaseItems     = "database_items_loaded"
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
	HelpTextEventsPublished    = "Total number of events published on the bus"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextItemsCrafted     = "Total number of items produced by crafting"
	HelpTextCraftFailures    = "Total number of failed craft attempts"
	HelpTextCraftJobsQueued  = "Total number of craft jobs enqueued"
	HelpTextLootRolls        = "Total number of loot table rolls"
	HelpTextLootItemsDropped = "Total number of items produced by loot rolls"
	HelpTextInventoryOps     = "Total number of inventory mutations"
	HelpTextDatabaseReloads  = "Total number of item database reloads"
	HelpTextDatabaseItems    = "Number of items in the loaded database"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelItem      = "item"
	LabelRecipe    = "recipe"
	LabelTable     = "table"
	LabelOperation = "operation"
	LabelResult    = "result"
)

// Inventory operation label values
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpMove   = "move"
	OpSort   = "sort"
)

// Reload result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// HTTPLatencyBuckets covers fast in-memory handlers up to slow reloads.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
