package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/quality"
	"loadvoice-synqall/internal/rateconf"
	"loadvoice-synqall/internal/service/load"
	"loadvoice-synqall/internal/service/ratecon"
	"loadvoice-synqall/internal/service/review"
)

func withURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type stubLoadUsecase struct {
	getFn      func(ctx context.Context, id uuid.UUID) (*domain.Load, error)
	workflowFn func(ctx context.Context, id uuid.UUID) (*load.Workflow, error)
	historyFn  func(ctx context.Context, id uuid.UUID) ([]domain.HistoryEntry, error)
	changeFn   func(ctx context.Context, id uuid.UUID, target domain.LoadStatus, actor string) (*domain.Load, error)
	reverseFn  func(ctx context.Context, id uuid.UUID, actor string) (*domain.Load, error)
}

func (s *stubLoadUsecase) Get(ctx context.Context, id uuid.UUID) (*domain.Load, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, id)
}

func (s *stubLoadUsecase) Workflow(ctx context.Context, id uuid.UUID) (*load.Workflow, error) {
	if s.workflowFn == nil {
		panic("Workflow not expected in this test")
	}
	return s.workflowFn(ctx, id)
}

func (s *stubLoadUsecase) History(ctx context.Context, id uuid.UUID) ([]domain.HistoryEntry, error) {
	if s.historyFn == nil {
		panic("History not expected in this test")
	}
	return s.historyFn(ctx, id)
}

func (s *stubLoadUsecase) ChangeStatus(ctx context.Context, id uuid.UUID, target domain.LoadStatus, actor string) (*domain.Load, error) {
	if s.changeFn == nil {
		panic("ChangeStatus not expected in this test")
	}
	return s.changeFn(ctx, id, target, actor)
}

func (s *stubLoadUsecase) Reverse(ctx context.Context, id uuid.UUID, actor string) (*domain.Load, error) {
	if s.reverseFn == nil {
		panic("Reverse not expected in this test")
	}
	return s.reverseFn(ctx, id, actor)
}

type stubRateConUsecase struct {
	eventFn       func(ctx context.Context, loadID uuid.UUID, event domain.RateConEvent, details string) (*ratecon.Result, error)
	eligibilityFn func(ctx context.Context, loadID uuid.UUID) (rateconf.Eligibility, error)
}

func (s *stubRateConUsecase) HandleEvent(ctx context.Context, loadID uuid.UUID, event domain.RateConEvent, details string) (*ratecon.Result, error) {
	if s.eventFn == nil {
		panic("HandleEvent not expected in this test")
	}
	return s.eventFn(ctx, loadID, event, details)
}

func (s *stubRateConUsecase) Eligibility(ctx context.Context, loadID uuid.UUID) (rateconf.Eligibility, error) {
	if s.eligibilityFn == nil {
		panic("Eligibility not expected in this test")
	}
	return s.eligibilityFn(ctx, loadID)
}

type stubReviewUsecase struct {
	evaluateFn func(ctx context.Context, callID uuid.UUID) (*review.Report, error)
	storedFn   func(ctx context.Context, callID uuid.UUID) (*domain.CallReview, error)
	ingestFn   func(ctx context.Context, e domain.CallExtraction) (*review.Report, error)
	prefsFn    func(ctx context.Context, userID uuid.UUID) (quality.Overrides, error)
	setPrefsFn func(ctx context.Context, userID uuid.UUID, o quality.Overrides) error
}

func (s *stubReviewUsecase) Evaluate(ctx context.Context, callID uuid.UUID) (*review.Report, error) {
	if s.evaluateFn == nil {
		panic("Evaluate not expected in this test")
	}
	return s.evaluateFn(ctx, callID)
}

func (s *stubReviewUsecase) StoredReview(ctx context.Context, callID uuid.UUID) (*domain.CallReview, error) {
	if s.storedFn == nil {
		panic("StoredReview not expected in this test")
	}
	return s.storedFn(ctx, callID)
}

func (s *stubReviewUsecase) Ingest(ctx context.Context, e domain.CallExtraction) (*review.Report, error) {
	if s.ingestFn == nil {
		panic("Ingest not expected in this test")
	}
	return s.ingestFn(ctx, e)
}

func (s *stubReviewUsecase) Preferences(ctx context.Context, userID uuid.UUID) (quality.Overrides, error) {
	if s.prefsFn == nil {
		panic("Preferences not expected in this test")
	}
	return s.prefsFn(ctx, userID)
}

func (s *stubReviewUsecase) SetPreferences(ctx context.Context, userID uuid.UUID, o quality.Overrides) error {
	if s.setPrefsFn == nil {
		panic("SetPreferences not expected in this test")
	}
	return s.setPrefsFn(ctx, userID, o)
}
