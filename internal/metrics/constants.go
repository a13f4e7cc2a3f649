package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric this service exports
const Namespace = "economy"

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
	MetricNameItemsSold        = "items_sold_total"
	MetricNameItemsBought      = "items_bought_total"
	MetricNameItemsUsed        = "items_used_total"
	MetricNameMoneyEarned      = "money_earned_total"
	MetricNameMoneySpent       = "money_spent_total"
	MetricNameAuctionsCreated  = "auctions_created_total"
	MetricNameBidsPlaced       = "auction_bids_placed_total"
	MetricNameAuctionsSettled  = "auctions_settled_total"
	MetricNameAuctionVolume    = "auction_volume_total"
	MetricNameReaperRuns       = "auction_reaper_runs_total"
	MetricNameReaperDuration   = "auction_reaper_duration_seconds"
	MetricNameReaperLastSettle = "auction_reaper_last_settled"
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
	HelpTextItemsSold        = "Total number of items sold to the shop"
	HelpTextItemsBought      = "Total number of items bought from the shop"
	HelpTextItemsUsed        = "Total number of items used"
	HelpTextMoneyEarned      = "Total money earned from selling items"
	HelpTextMoneySpent       = "Total money spent buying items"
	HelpTextAuctionsCreated  = "Total number of auctions created"
	HelpTextBidsPlaced       = "Total number of accepted bids"
	HelpTextAuctionsSettled  = "Total number of auctions closed, by final status"
	HelpTextAuctionVolume    = "Total coins paid to sellers by completed auctions"
	HelpTextReaperRuns       = "Total number of auction reaper runs, by outcome"
	HelpTextReaperDuration   = "Auction reaper run time in seconds"
	HelpTextReaperLastSettle = "Auctions settled by the most recent reaper run"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelItem    = "item"
	LabelOutcome = "outcome"
)

// Reaper outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
