package ratecon

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"loadvoice-synqall/internal/apperr"
	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/logx"
	"loadvoice-synqall/internal/metrics"
	"loadvoice-synqall/internal/observability"
	"loadvoice-synqall/internal/ports/loadtx"
	"loadvoice-synqall/internal/rateconf"
)

// Service applies rate confirmation document events to loads.
type Service struct {
	repo             loadRepository
	operationTimeout time.Duration
	logger           logx.Logger
	transitions      labeledCounter
	now              func() time.Time
}

// NewService creates a rate confirmation Service. transitions may be nil.
func NewService(r loadRepository, timeout time.Duration, logger logx.Logger, transitions labeledCounter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		operationTimeout: timeout,
		logger:           logger,
		transitions:      transitions,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Result is the load after an event together with what the event did.
type Result struct {
	Load    *domain.Load
	Outcome rateconf.Outcome
}

// HandleEvent applies event to the load in one transaction: the guarded
// status write and its history entry commit together or not at all.
func (s *Service) HandleEvent(ctx context.Context, loadID uuid.UUID, event domain.RateConEvent, details string) (*Result, error) {
	if !event.Valid() {
		return nil, fmt.Errorf("rate confirmation event %q: %w", event, apperr.ErrInvalid)
	}

	ctx, span := observability.StartSpan(ctx, "ratecon.handle_event",
		attribute.String("load.id", loadID.String()),
		attribute.String("ratecon.event", string(event)),
	)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var res *Result
	err := s.repo.WithTx(ctx, func(tx loadtx.Repository) error {
		cur, err := tx.GetForUpdate(ctx, loadID)
		if err != nil {
			return err
		}
		if cur == nil || cur.Deleted {
			return apperr.ErrNotFound
		}

		out, err := rateconf.Apply(cur.Status, event)
		if err != nil {
			return err
		}

		now := s.now()
		u := domain.StatusUpdate{
			ID:               loadID,
			ExpectedStatus:   cur.Status,
			Status:           out.LoadStatus,
			RateConStatus:    &out.RateConStatus,
			CarrierConfirmed: out.CarrierConfirmed,
			UpdatedAt:        now,
		}
		if out.StampConfirmation {
			u.CarrierConfirmedAt = &now
		}
		ok, err := tx.UpdateStatus(ctx, u)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("load %s changed concurrently: %w", loadID, apperr.ErrConflict)
		}

		if err := tx.AppendHistory(ctx, &domain.HistoryEntry{
			LoadID:        loadID,
			Source:        domain.SourceRateCon,
			Event:         string(event),
			FromStatus:    cur.Status,
			ToStatus:      out.LoadStatus,
			RateConStatus: out.RateConStatus,
			Details:       details,
		}); err != nil {
			return err
		}

		cur.Status = out.LoadStatus
		cur.RateConStatus = out.RateConStatus
		if out.CarrierConfirmed != nil {
			cur.CarrierConfirmed = *out.CarrierConfirmed
			cur.CarrierConfirmedAt = u.CarrierConfirmedAt
		}
		cur.UpdatedAt = now
		res = &Result{Load: cur, Outcome: out}
		return nil
	})
	observability.EndSpan(span, err)

	if err != nil {
		s.logger.Warn("rate confirmation event failed",
			logx.String("load_id", loadID.String()),
			logx.String("event", string(event)),
			logx.Err(err),
		)
		return nil, err
	}

	if s.transitions != nil && res.Outcome.LoadChanged() {
		s.transitions.WithLabelValues(string(res.Outcome.From), string(res.Outcome.LoadStatus), metrics.ResultOK).Inc()
	}
	logx.FromContext(ctx, s.logger).Info("rate_confirmation_applied",
		logx.String("load_id", loadID.String()),
		logx.String("event", string(event)),
		logx.String("from", string(res.Outcome.From)),
		logx.String("to", string(res.Outcome.LoadStatus)),
		logx.String("rate_con_status", string(res.Outcome.RateConStatus)),
		logx.Bool("load_changed", res.Outcome.LoadChanged()),
	)
	return res, nil
}

// Eligibility reports whether a rate confirmation can be generated for the load.
func (s *Service) Eligibility(ctx context.Context, loadID uuid.UUID) (rateconf.Eligibility, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	l, err := s.repo.Get(ctx, loadID)
	if err != nil {
		return rateconf.Eligibility{}, err
	}
	if l == nil || l.Deleted {
		return rateconf.Eligibility{}, apperr.ErrNotFound
	}
	return rateconf.CanGenerate(*l), nil
}
