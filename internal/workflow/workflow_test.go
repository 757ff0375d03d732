package workflow_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"loadvoice-synqall/internal/apperr"
	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/workflow"
)

var happyPath = []domain.LoadStatus{
	domain.LoadQuoted,
	domain.LoadNeedsCarrier,
	domain.LoadDispatched,
	domain.LoadInTransit,
	domain.LoadDelivered,
	domain.LoadCompleted,
}

func rate(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestIsValidTransition_LinearOrder(t *testing.T) {
	t.Parallel()

	for i, from := range happyPath {
		for j, to := range happyPath {
			want := j == i+1
			require.Equalf(t, want, workflow.IsValidTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestIsValidTransition_Cancelled(t *testing.T) {
	t.Parallel()

	all := append([]domain.LoadStatus{domain.LoadConfirmed, domain.LoadCancelled}, happyPath...)
	for _, s := range all {
		require.Equalf(t, s != domain.LoadCompleted, workflow.IsValidTransition(s, domain.LoadCancelled), "%s -> cancelled", s)
	}
}

func TestIsValidTransition_UnknownCurrent(t *testing.T) {
	t.Parallel()

	require.False(t, workflow.IsValidTransition("lost", domain.LoadCancelled))
	require.False(t, workflow.IsValidTransition("lost", domain.LoadQuoted))
}

func TestIsValidTransition_ConfirmedMovesToInTransit(t *testing.T) {
	t.Parallel()

	require.True(t, workflow.IsValidTransition(domain.LoadConfirmed, domain.LoadInTransit))
	require.False(t, workflow.IsValidTransition(domain.LoadDispatched, domain.LoadConfirmed))
}

func TestAvailableTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current domain.LoadStatus
		want    []domain.LoadStatus
	}{
		{domain.LoadQuoted, []domain.LoadStatus{domain.LoadNeedsCarrier, domain.LoadCancelled}},
		{domain.LoadDispatched, []domain.LoadStatus{domain.LoadInTransit, domain.LoadCancelled}},
		{domain.LoadConfirmed, []domain.LoadStatus{domain.LoadInTransit, domain.LoadCancelled}},
		{domain.LoadDelivered, []domain.LoadStatus{domain.LoadCompleted, domain.LoadCancelled}},
		{domain.LoadCompleted, nil},
		{domain.LoadCancelled, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			require.Equal(t, tt.want, workflow.AvailableTransitions(tt.current))
		})
	}
}

func TestTransition_DispatchedRequiresCarrierAndRate(t *testing.T) {
	t.Parallel()

	_, err := workflow.Transition(domain.LoadNeedsCarrier, domain.LoadDispatched, workflow.LoadData{})
	require.Error(t, err)
	require.ErrorIs(t, err, apperr.ErrInvalid)

	var te *workflow.TransitionError
	require.True(t, errors.As(err, &te))
	require.Equal(t, workflow.KindMissingFields, te.Kind)
	require.Equal(t, []string{"carrier_id", "rate_to_carrier"}, te.MissingFields)

	carrier := uuid.New()
	got, err := workflow.Transition(domain.LoadNeedsCarrier, domain.LoadDispatched, workflow.LoadData{
		CarrierID:     &carrier,
		RateToCarrier: rate(100),
	})
	require.NoError(t, err)
	require.Equal(t, domain.LoadDispatched, got)
}

func TestTransition_CompletedRequiresBothRates(t *testing.T) {
	t.Parallel()

	_, err := workflow.Transition(domain.LoadDelivered, domain.LoadCompleted, workflow.LoadData{RateToCarrier: rate(100)})
	var te *workflow.TransitionError
	require.ErrorAs(t, err, &te)
	require.Equal(t, []string{"rate_to_shipper"}, te.MissingFields)
	require.Contains(t, te.Error(), "rate_to_shipper")

	got, err := workflow.Transition(domain.LoadDelivered, domain.LoadCompleted, workflow.LoadData{
		RateToCarrier: rate(100),
		RateToShipper: rate(150),
	})
	require.NoError(t, err)
	require.Equal(t, domain.LoadCompleted, got)
}

func TestTransition_NonAdjacentFails(t *testing.T) {
	t.Parallel()

	_, err := workflow.Transition(domain.LoadDispatched, domain.LoadCompleted, workflow.LoadData{RateToCarrier: rate(100)})
	var te *workflow.TransitionError
	require.ErrorAs(t, err, &te)
	require.Equal(t, workflow.KindInvalidTransition, te.Kind)
	require.Empty(t, te.MissingFields)
}

func TestTransition_UnknownTarget(t *testing.T) {
	t.Parallel()

	_, err := workflow.Transition(domain.LoadQuoted, "archived", workflow.LoadData{})
	var te *workflow.TransitionError
	require.ErrorAs(t, err, &te)
	require.Equal(t, workflow.KindUnknownStatus, te.Kind)
}

func TestTransition_CancelNeedsNoData(t *testing.T) {
	t.Parallel()

	got, err := workflow.Transition(domain.LoadInTransit, domain.LoadCancelled, workflow.LoadData{})
	require.NoError(t, err)
	require.Equal(t, domain.LoadCancelled, got)
}

func TestPreviousStatus(t *testing.T) {
	t.Parallel()

	_, ok := workflow.PreviousStatus(domain.LoadQuoted)
	require.False(t, ok)

	prev, ok := workflow.PreviousStatus(domain.LoadDispatched)
	require.True(t, ok)
	require.Equal(t, domain.LoadNeedsCarrier, prev)

	prev, ok = workflow.PreviousStatus(domain.LoadConfirmed)
	require.True(t, ok)
	require.Equal(t, domain.LoadNeedsCarrier, prev)

	_, ok = workflow.PreviousStatus(domain.LoadCancelled)
	require.False(t, ok)

	require.False(t, workflow.CanReverse(domain.LoadQuoted))
	require.False(t, workflow.CanReverse(domain.LoadCancelled))
	require.True(t, workflow.CanReverse(domain.LoadCompleted))
}

func TestProgress(t *testing.T) {
	t.Parallel()

	want := map[domain.LoadStatus]int{
		domain.LoadQuoted:       17,
		domain.LoadNeedsCarrier: 33,
		domain.LoadDispatched:   50,
		domain.LoadConfirmed:    50,
		domain.LoadInTransit:    67,
		domain.LoadDelivered:    83,
		domain.LoadCompleted:    100,
	}
	for s, pct := range want {
		got, ok := workflow.Progress(s)
		require.True(t, ok, s)
		require.Equal(t, pct, got, s)
	}

	got, ok := workflow.Progress(domain.LoadCancelled)
	require.False(t, ok)
	require.Zero(t, got)
}

func TestReverse(t *testing.T) {
	t.Parallel()

	prev, err := workflow.Reverse(domain.LoadInTransit)
	require.NoError(t, err)
	require.Equal(t, domain.LoadDispatched, prev)

	prev, err = workflow.Reverse(domain.LoadConfirmed)
	require.NoError(t, err)
	require.Equal(t, domain.LoadNeedsCarrier, prev)

	for _, s := range []domain.LoadStatus{domain.LoadQuoted, domain.LoadCancelled, "lost"} {
		_, err := workflow.Reverse(s)
		var te *workflow.TransitionError
		require.ErrorAs(t, err, &te, s)
		require.ErrorIs(t, err, apperr.ErrInvalid)
	}
}
