package load

import (
	"context"
	"errors"
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
	"loadvoice-synqall/internal/workflow"
)

// Service runs manual status changes of loads and answers workflow queries.
type Service struct {
	repo             loadRepository
	operationTimeout time.Duration
	logger           logx.Logger
	transitions      labeledCounter
	now              func() time.Time
}

// NewService creates a load Service. transitions may be nil.
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

// Get returns a load by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Load, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil || l.Deleted {
		return nil, apperr.ErrNotFound
	}
	return l, nil
}

// ChangeStatus moves a load to target if the lifecycle and the load's data
// allow it, and records the change in the history.
func (s *Service) ChangeStatus(ctx context.Context, id uuid.UUID, target domain.LoadStatus, actor string) (*domain.Load, error) {
	ctx, span := observability.StartSpan(ctx, "load.change_status",
		attribute.String("load.id", id.String()),
		attribute.String("load.target", string(target)),
	)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	l, err := s.apply(ctx, id, domain.SourceManual, actor, func(cur *domain.Load) (domain.LoadStatus, error) {
		return workflow.Transition(cur.Status, target, workflow.DataOf(*cur))
	})
	observability.EndSpan(span, err)
	return l, err
}

// Reverse moves a load one step back along the lifecycle.
func (s *Service) Reverse(ctx context.Context, id uuid.UUID, actor string) (*domain.Load, error) {
	ctx, span := observability.StartSpan(ctx, "load.reverse", attribute.String("load.id", id.String()))
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	l, err := s.apply(ctx, id, domain.SourceReverse, actor, func(cur *domain.Load) (domain.LoadStatus, error) {
		return workflow.Reverse(cur.Status)
	})
	observability.EndSpan(span, err)
	return l, err
}

func (s *Service) apply(
	ctx context.Context,
	id uuid.UUID,
	source domain.HistorySource,
	actor string,
	decide func(cur *domain.Load) (domain.LoadStatus, error),
) (*domain.Load, error) {
	var (
		result *domain.Load
		from   domain.LoadStatus
		to     domain.LoadStatus
	)
	err := s.repo.WithTx(ctx, func(tx loadtx.Repository) error {
		cur, err := tx.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cur == nil || cur.Deleted {
			return apperr.ErrNotFound
		}
		from = cur.Status

		next, err := decide(cur)
		if err != nil {
			return err
		}
		to = next
		if next == cur.Status {
			result = cur
			return nil
		}

		now := s.now()
		ok, err := tx.UpdateStatus(ctx, domain.StatusUpdate{
			ID:             id,
			ExpectedStatus: cur.Status,
			Status:         next,
			UpdatedAt:      now,
		})
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("load %s changed concurrently: %w", id, apperr.ErrConflict)
		}

		if err := tx.AppendHistory(ctx, &domain.HistoryEntry{
			LoadID:        id,
			Source:        source,
			FromStatus:    cur.Status,
			ToStatus:      next,
			RateConStatus: cur.RateConStatus,
			Actor:         actor,
		}); err != nil {
			return err
		}

		cur.Status = next
		cur.UpdatedAt = now
		result = cur
		return nil
	})

	s.count(from, to, err)
	if err != nil {
		s.logger.Warn("load status change failed",
			logx.String("load_id", id.String()),
			logx.String("source", string(source)),
			logx.String("from", string(from)),
			logx.Err(err),
		)
		return nil, err
	}

	logx.FromContext(ctx, s.logger).Info("load_status_changed",
		logx.String("load_id", id.String()),
		logx.String("source", string(source)),
		logx.String("from", string(from)),
		logx.String("to", string(result.Status)),
		logx.String("actor", actor),
	)
	return result, nil
}

func (s *Service) count(from, to domain.LoadStatus, err error) {
	if s.transitions == nil || from == "" {
		return
	}
	result := metrics.ResultOK
	var te *workflow.TransitionError
	switch {
	case err == nil:
	case errors.As(err, &te):
		result = metrics.ResultRejected
		to = te.To
	case errors.Is(err, apperr.ErrConflict):
		result = metrics.ResultConflict
	default:
		result = metrics.ResultError
	}
	s.transitions.WithLabelValues(statusLabel(from), statusLabel(to), result).Inc()
}

// unknownStatusLabel replaces statuses outside the enum so client input
// cannot add series to load_transitions_total.
const unknownStatusLabel = "unknown"

func statusLabel(s domain.LoadStatus) string {
	if s == "" || s.Valid() {
		return string(s)
	}
	return unknownStatusLabel
}

// Workflow is the lifecycle view of a load for the dispatcher UI.
type Workflow struct {
	Load                     *domain.Load
	AvailableTransitions     []domain.LoadStatus
	PreviousStatus           domain.LoadStatus
	CanReverse               bool
	Progress                 int
	OnScale                  bool
	Terminal                 bool
	RequiresRateConfirmation bool
	NextRateConAction        rateconf.Action
}

// Workflow returns the lifecycle view of a load.
func (s *Service) Workflow(ctx context.Context, id uuid.UUID) (*Workflow, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ViewOf(l), nil
}

// ViewOf computes the lifecycle view of l.
func ViewOf(l *domain.Load) *Workflow {
	w := &Workflow{
		Load:                     l,
		AvailableTransitions:     workflow.AvailableTransitions(l.Status),
		Terminal:                 workflow.IsTerminal(l.Status),
		RequiresRateConfirmation: rateconf.RequiresRateConfirmation(l.Status),
	}
	w.PreviousStatus, w.CanReverse = workflow.PreviousStatus(l.Status)
	w.Progress, w.OnScale = workflow.Progress(l.Status)
	w.NextRateConAction, _ = rateconf.NextAction(l.Status, l.RateConStatus)
	return w
}

// History returns the status history of a load, oldest first.
func (s *Service) History(ctx context.Context, id uuid.UUID) ([]domain.HistoryEntry, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.History(ctx, id)
}
