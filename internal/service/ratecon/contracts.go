//go:generate mockgen -source=contracts.go -destination=mocks_test.go -package=ratecon

package ratecon

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/ports/loadtx"
)

type loadRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Load, error)
	loadtx.Runner
}

type labeledCounter interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}
