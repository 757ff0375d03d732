package handlers

import (
	"context"

	"github.com/google/uuid"

	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/quality"
	"loadvoice-synqall/internal/rateconf"
	"loadvoice-synqall/internal/service/load"
	"loadvoice-synqall/internal/service/ratecon"
	"loadvoice-synqall/internal/service/review"
)

type loadUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Load, error)
	Workflow(ctx context.Context, id uuid.UUID) (*load.Workflow, error)
	History(ctx context.Context, id uuid.UUID) ([]domain.HistoryEntry, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, target domain.LoadStatus, actor string) (*domain.Load, error)
	Reverse(ctx context.Context, id uuid.UUID, actor string) (*domain.Load, error)
}

// NewLoadUsecase wires a load Service into a loadUsecase.
func NewLoadUsecase(svc *load.Service) loadUsecase {
	return svc
}

type rateConUsecase interface {
	HandleEvent(ctx context.Context, loadID uuid.UUID, event domain.RateConEvent, details string) (*ratecon.Result, error)
	Eligibility(ctx context.Context, loadID uuid.UUID) (rateconf.Eligibility, error)
}

// NewRateConUsecase wires a rate confirmation Service into a rateConUsecase.
func NewRateConUsecase(svc *ratecon.Service) rateConUsecase {
	return svc
}

type reviewUsecase interface {
	Evaluate(ctx context.Context, callID uuid.UUID) (*review.Report, error)
	StoredReview(ctx context.Context, callID uuid.UUID) (*domain.CallReview, error)
	Ingest(ctx context.Context, e domain.CallExtraction) (*review.Report, error)
	Preferences(ctx context.Context, userID uuid.UUID) (quality.Overrides, error)
	SetPreferences(ctx context.Context, userID uuid.UUID, o quality.Overrides) error
}

// NewReviewUsecase wires a review Service into a reviewUsecase.
func NewReviewUsecase(svc *review.Service) reviewUsecase {
	return svc
}
