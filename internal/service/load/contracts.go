//go:generate mockgen -source=contracts.go -destination=mocks_test.go -package=load

package load

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/ports/loadtx"
)

// loadRepository defines storage operations required by the load service.
type loadRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Load, error)
	History(ctx context.Context, id uuid.UUID) ([]domain.HistoryEntry, error)
	loadtx.Runner
}

type labeledCounter interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}
