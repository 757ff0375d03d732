package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"loadvoice-synqall/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter     `name:"rate_limit_exceeded_total"`
	DBRetriesTotal         prometheus.Counter     `name:"db_retries_total"`
	LoadTransitionsTotal   *prometheus.CounterVec `name:"load_transitions_total"`
	CallReviewsTotal       *prometheus.CounterVec `name:"call_reviews_total"`
}

// provideMetrics registers the service collectors with the default registerer.
// Collectors that are already registered are reused.
func provideMetrics() (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceededTotal, err = register("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.DBRetriesTotal, err = register("db_retries_total", metrics.NewDBRetriesTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.LoadTransitionsTotal, err = register("load_transitions_total", metrics.NewLoadTransitionsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.CallReviewsTotal, err = register("call_reviews_total", metrics.NewCallReviewsTotal()); err != nil {
		return metricsOut{}, err
	}
	return out, nil
}

func register[T prometheus.Collector](name string, c T) (T, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
