package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"loadvoice-synqall/internal/apperr"
	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/logx"
	"loadvoice-synqall/internal/observability"
	"loadvoice-synqall/internal/quality"
)

// Service runs the extraction quality gate for calls and stores the verdict.
type Service struct {
	calls            callRepository
	prefs            preferencesRepository
	base             quality.Config
	operationTimeout time.Duration
	logger           logx.Logger
	reviews          labeledCounter
	now              func() time.Time
}

// NewService creates a review Service. reviews may be nil.
func NewService(
	calls callRepository,
	prefs preferencesRepository,
	timeout time.Duration,
	logger logx.Logger,
	reviews labeledCounter,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		calls:            calls,
		prefs:            prefs,
		base:             quality.DefaultConfig(),
		operationTimeout: timeout,
		logger:           logger,
		reviews:          reviews,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Report is the full outcome of one review.
type Report struct {
	Review        domain.CallReview
	Result        quality.Result
	Summary       quality.Summary
	TriggerReason string
	Catastrophic  bool
}

// Evaluate runs the gate for a stored call using its owner's preferences.
func (s *Service) Evaluate(ctx context.Context, callID uuid.UUID) (*Report, error) {
	ctx, span := observability.StartSpan(ctx, "review.evaluate", attribute.String("call.id", callID.String()))
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rep, err := s.evaluate(ctx, callID)
	observability.EndSpan(span, err)
	if err != nil {
		s.logger.Warn("call review failed", logx.String("call_id", callID.String()), logx.Err(err))
		return nil, err
	}
	return rep, nil
}

func (s *Service) evaluate(ctx context.Context, callID uuid.UUID) (*Report, error) {
	e, err := s.calls.GetExtraction(ctx, callID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.ErrNotFound
	}

	ov, err := s.prefs.QualityOverrides(ctx, e.OwnerID)
	if err != nil {
		return nil, err
	}

	rep := s.assess(*e, ov)
	ok, err := s.calls.SaveReview(ctx, rep.Review)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}

	if s.reviews != nil {
		s.reviews.WithLabelValues(rep.Review.Action).Inc()
	}
	logx.FromContext(ctx, s.logger).Info("call_reviewed",
		logx.String("call_id", callID.String()),
		logx.Bool("needs_review", rep.Review.NeedsReview),
		logx.String("action", rep.Review.Action),
		logx.Int("priority", rep.Review.Priority),
		logx.Int("quality_score", rep.Review.QualityScore),
		logx.String("trigger", rep.TriggerReason),
		logx.Bool("catastrophic", rep.Catastrophic),
	)
	return rep, nil
}

func (s *Service) assess(e domain.CallExtraction, ov quality.Overrides) *Report {
	res := quality.EnforceCatastrophic(quality.Check(quality.InputOf(e), s.base.With(ov)))
	catastrophic := quality.IsCatastrophicFailure(e.TranscriptionConfidence)
	trigger := quality.FormatTriggerReason(res.Reasons)

	return &Report{
		Review: domain.CallReview{
			CallID:        e.CallID,
			NeedsReview:   res.RequiresReview,
			Action:        string(res.Action),
			Priority:      quality.Priority(res),
			QualityScore:  quality.Score(res),
			TriggerLabel:  trigger,
			BlockAutoSave: catastrophic,
			ReviewedAt:    s.now(),
		},
		Result:        res,
		Summary:       quality.Summarize(res),
		TriggerReason: trigger,
		Catastrophic:  catastrophic,
	}
}

// StoredReview returns the last persisted verdict for a call. A call that
// exists but was never reviewed is reported as not found.
func (s *Service) StoredReview(ctx context.Context, callID uuid.UUID) (*domain.CallReview, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rv, err := s.calls.GetReview(ctx, callID)
	if err != nil {
		return nil, err
	}
	if rv == nil || rv.ReviewedAt.IsZero() {
		return nil, apperr.ErrNotFound
	}
	return rv, nil
}

// Ingest stores a freshly extracted call and reviews it.
func (s *Service) Ingest(ctx context.Context, e domain.CallExtraction) (*Report, error) {
	if err := validateExtraction(e); err != nil {
		return nil, err
	}

	saveCtx, cancel := s.withTimeout(ctx)
	err := s.calls.SaveExtraction(saveCtx, e)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("save extraction: %w", err)
	}
	return s.Evaluate(ctx, e.CallID)
}

func validateExtraction(e domain.CallExtraction) error {
	if e.CallID == uuid.Nil || e.OwnerID == uuid.Nil {
		return fmt.Errorf("call and owner ids are required: %w", apperr.ErrInvalid)
	}
	if e.TranscriptionConfidence < 0 || e.TranscriptionConfidence > 1 {
		return fmt.Errorf("transcription confidence %v out of range: %w", e.TranscriptionConfidence, apperr.ErrInvalid)
	}
	for _, f := range e.Fields {
		if f.Name == "" {
			return fmt.Errorf("extracted field without a name: %w", apperr.ErrInvalid)
		}
		if f.Confidence < 0 || f.Confidence > 1 {
			return fmt.Errorf("field %q confidence %v out of range: %w", f.Name, f.Confidence, apperr.ErrInvalid)
		}
	}
	return nil
}

// Preferences returns a user's gate overrides.
func (s *Service) Preferences(ctx context.Context, userID uuid.UUID) (quality.Overrides, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.prefs.QualityOverrides(ctx, userID)
}

// SetPreferences validates and stores a user's gate overrides.
func (s *Service) SetPreferences(ctx context.Context, userID uuid.UUID, o quality.Overrides) error {
	if userID == uuid.Nil {
		return fmt.Errorf("user id is required: %w", apperr.ErrInvalid)
	}
	if err := validateOverrides(o); err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.prefs.PutQualityOverrides(ctx, userID, o)
}

func validateOverrides(o quality.Overrides) error {
	if err := o.Validate(); err != nil {
		return fmt.Errorf("%w: %w", err, apperr.ErrInvalid)
	}
	return nil
}
