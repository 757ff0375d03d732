package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a counter of HTTP requests rejected by the rate limiter.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewDBRetriesTotal returns a counter of retried database operations.
func NewDBRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "db_retries_total",
		Help: "Total number of retry attempts of database operations",
	})
}

// NewLoadTransitionsTotal returns a counter of attempted load status changes
// labelled by source and target status and by result.
func NewLoadTransitionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "load_transitions_total",
		Help: "Total number of load status transitions by result",
	}, []string{"from", "to", "result"})
}

// NewCallReviewsTotal returns a counter of call quality reviews by recommended action.
func NewCallReviewsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "call_reviews_total",
		Help: "Total number of call quality reviews by recommended action",
	}, []string{"action"})
}

// Transition results used as the "result" label.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultConflict = "conflict"
	ResultError    = "error"
)
