//go:generate mockgen -source=contracts.go -destination=mocks_test.go -package=review

package review

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/quality"
)

type callRepository interface {
	GetExtraction(ctx context.Context, callID uuid.UUID) (*domain.CallExtraction, error)
	SaveExtraction(ctx context.Context, e domain.CallExtraction) error
	SaveReview(ctx context.Context, rv domain.CallReview) (bool, error)
	GetReview(ctx context.Context, callID uuid.UUID) (*domain.CallReview, error)
}

type preferencesRepository interface {
	QualityOverrides(ctx context.Context, userID uuid.UUID) (quality.Overrides, error)
	PutQualityOverrides(ctx context.Context, userID uuid.UUID, o quality.Overrides) error
}

type labeledCounter interface {
	WithLabelValues(lvs ...string) prometheus.Counter
}
