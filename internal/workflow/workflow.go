// Package workflow implements the load status lifecycle: the linear
// quoted → completed progression, cancellation, reversal and the data
// preconditions a load must satisfy before entering a status.
package workflow

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"loadvoice-synqall/internal/domain"
)

// linear is the happy-path order. Confirmed and cancelled are not on it.
var linear = [...]domain.LoadStatus{
	domain.LoadQuoted,
	domain.LoadNeedsCarrier,
	domain.LoadDispatched,
	domain.LoadInTransit,
	domain.LoadDelivered,
	domain.LoadCompleted,
}

// Field names reported in TransitionError.MissingFields.
const (
	FieldCarrierID     = "carrier_id"
	FieldRateToCarrier = "rate_to_carrier"
	FieldRateToShipper = "rate_to_shipper"
)

// LoadData is the subset of a load checked by status preconditions.
type LoadData struct {
	CarrierID     *uuid.UUID
	RateToCarrier *decimal.Decimal
	RateToShipper *decimal.Decimal
}

// DataOf extracts precondition data from a load.
func DataOf(l domain.Load) LoadData {
	return LoadData{
		CarrierID:     l.CarrierID,
		RateToCarrier: l.RateToCarrier,
		RateToShipper: l.RateToShipper,
	}
}

// position returns the index of s on the linear order.
// Confirmed sits on the dispatched slot: it is dispatched with a signed rate confirmation.
func position(s domain.LoadStatus) (int, bool) {
	switch s {
	case domain.LoadQuoted:
		return 0, true
	case domain.LoadNeedsCarrier:
		return 1, true
	case domain.LoadDispatched, domain.LoadConfirmed:
		return 2, true
	case domain.LoadInTransit:
		return 3, true
	case domain.LoadDelivered:
		return 4, true
	case domain.LoadCompleted:
		return 5, true
	case domain.LoadCancelled:
		return 0, false
	default:
		return 0, false
	}
}

func successor(s domain.LoadStatus) (domain.LoadStatus, bool) {
	i, ok := position(s)
	if !ok || i == len(linear)-1 {
		return "", false
	}
	return linear[i+1], true
}

// IsTerminal reports whether no further transition is possible from s.
func IsTerminal(s domain.LoadStatus) bool {
	return s == domain.LoadCompleted || s == domain.LoadCancelled
}

// IsValidTransition reports whether target is the immediate successor of
// current, or a cancellation of a load that is not completed.
// Cancelling an already cancelled load is accepted as a no-op.
func IsValidTransition(current, target domain.LoadStatus) bool {
	if !current.Valid() {
		return false
	}
	if target == domain.LoadCancelled {
		return current != domain.LoadCompleted
	}
	next, ok := successor(current)
	return ok && next == target
}

// AvailableTransitions returns the statuses current may move to, successor first.
func AvailableTransitions(current domain.LoadStatus) []domain.LoadStatus {
	if !current.Valid() || IsTerminal(current) {
		return nil
	}
	out := make([]domain.LoadStatus, 0, 2)
	if next, ok := successor(current); ok {
		out = append(out, next)
	}
	return append(out, domain.LoadCancelled)
}

// Transition validates a move from current to target against the lifecycle
// order and the data preconditions of target. It returns target on success
// and a *TransitionError otherwise.
func Transition(current, target domain.LoadStatus, data LoadData) (domain.LoadStatus, error) {
	if !target.Valid() {
		return "", &TransitionError{
			Kind:    KindUnknownStatus,
			From:    current,
			To:      target,
			Message: "unknown status " + string(target),
		}
	}
	if !IsValidTransition(current, target) {
		return "", &TransitionError{
			Kind:    KindInvalidTransition,
			From:    current,
			To:      target,
			Message: "cannot change status from " + string(current) + " to " + string(target),
		}
	}
	if missing := missingFor(target, data); len(missing) > 0 {
		return "", &TransitionError{
			Kind:          KindMissingFields,
			From:          current,
			To:            target,
			Message:       "missing required fields for " + string(target),
			MissingFields: missing,
		}
	}
	return target, nil
}

func missingFor(target domain.LoadStatus, data LoadData) []string {
	var missing []string
	switch target {
	case domain.LoadDispatched:
		if data.CarrierID == nil || *data.CarrierID == uuid.Nil {
			missing = append(missing, FieldCarrierID)
		}
		if data.RateToCarrier == nil {
			missing = append(missing, FieldRateToCarrier)
		}
	case domain.LoadCompleted:
		if data.RateToCarrier == nil {
			missing = append(missing, FieldRateToCarrier)
		}
		if data.RateToShipper == nil {
			missing = append(missing, FieldRateToShipper)
		}
	}
	return missing
}

// PreviousStatus returns the immediate predecessor of current. Quoted has none,
// and cancelled has none because the status it was cancelled from is not tracked.
func PreviousStatus(current domain.LoadStatus) (domain.LoadStatus, bool) {
	i, ok := position(current)
	if !ok || i == 0 {
		return "", false
	}
	return linear[i-1], true
}

// CanReverse reports whether current has a previous status to return to.
func CanReverse(current domain.LoadStatus) bool {
	_, ok := PreviousStatus(current)
	return ok
}

// Reverse returns the status current steps back to. The target's
// preconditions are not re-checked.
func Reverse(current domain.LoadStatus) (domain.LoadStatus, error) {
	if !current.Valid() {
		return "", &TransitionError{
			Kind:    KindUnknownStatus,
			From:    current,
			Message: "unknown status " + string(current),
		}
	}
	prev, ok := PreviousStatus(current)
	if !ok {
		return "", &TransitionError{
			Kind:    KindIrreversible,
			From:    current,
			Message: string(current) + " has no previous status",
		}
	}
	return prev, nil
}

// Progress returns the position of current on the linear order as a rounded
// percentage. Cancelled and unknown statuses are off the scale and report false.
func Progress(current domain.LoadStatus) (int, bool) {
	i, ok := position(current)
	if !ok {
		return 0, false
	}
	n := len(linear)
	return ((i+1)*100 + n/2) / n, true
}
