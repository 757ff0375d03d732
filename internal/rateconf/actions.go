package rateconf

import (
	"strings"

	"loadvoice-synqall/internal/domain"
)

// Action is the recommended next step for a load's rate confirmation.
type Action string

// List of next actions
const (
	ActionGenerate            Action = "generate_rate_confirmation"
	ActionSendToCarrier       Action = "send_to_carrier"
	ActionWaitForAcceptance   Action = "wait_for_acceptance"
	ActionFollowUp            Action = "follow_up_with_carrier"
	ActionProceedWithDispatch Action = "proceed_with_dispatch"
	ActionRenegotiate         Action = "renegotiate_or_find_new_carrier"
	ActionResend              Action = "resend_or_find_new_carrier"
)

// RequiresRateConfirmation reports whether a load in status s needs a
// rate confirmation document.
func RequiresRateConfirmation(s domain.LoadStatus) bool {
	switch s {
	case domain.LoadQuoted, domain.LoadDispatched, domain.LoadConfirmed,
		domain.LoadInTransit, domain.LoadDelivered:
		return true
	default:
		return false
	}
}

// NextAction returns the single recommended action for the rate confirmation,
// or false when the load does not need one.
func NextAction(load domain.LoadStatus, rc domain.RateConStatus) (Action, bool) {
	if !RequiresRateConfirmation(load) {
		return "", false
	}
	switch rc {
	case domain.RateConNone, "":
		return ActionGenerate, true
	case domain.RateConGenerated:
		return ActionSendToCarrier, true
	case domain.RateConSent:
		return ActionWaitForAcceptance, true
	case domain.RateConViewed:
		return ActionFollowUp, true
	case domain.RateConAccepted:
		return ActionProceedWithDispatch, true
	case domain.RateConRejected:
		return ActionRenegotiate, true
	case domain.RateConExpired:
		return ActionResend, true
	default:
		return "", false
	}
}

// Eligibility is the checklist for generating a rate confirmation.
type Eligibility struct {
	CanGenerate   bool
	MissingFields []string
	Errors        []string
}

// CanGenerate checks every field a rate confirmation document needs and
// reports all violations at once.
func CanGenerate(l domain.Load) Eligibility {
	var e Eligibility
	miss := func(field, msg string) {
		e.MissingFields = append(e.MissingFields, field)
		e.Errors = append(e.Errors, msg)
	}

	if l.CarrierID == nil {
		miss("carrier_id", "a carrier must be assigned")
	}
	if strings.TrimSpace(l.CarrierMCNumber) == "" && strings.TrimSpace(l.CarrierDOTNumber) == "" {
		miss("carrier_mc_or_dot", "carrier needs an MC or DOT number")
	}
	switch {
	case l.RateToCarrier == nil:
		miss("rate_to_carrier", "carrier rate is required")
	case !l.RateToCarrier.IsPositive():
		e.Errors = append(e.Errors, "carrier rate must be greater than zero")
	}
	if strings.TrimSpace(l.OriginCity) == "" {
		miss("origin_city", "origin city is required")
	}
	if strings.TrimSpace(l.OriginState) == "" {
		miss("origin_state", "origin state is required")
	}
	if strings.TrimSpace(l.DestinationCity) == "" {
		miss("destination_city", "destination city is required")
	}
	if strings.TrimSpace(l.DestinationState) == "" {
		miss("destination_state", "destination state is required")
	}
	if l.PickupDate == nil {
		miss("pickup_date", "pickup date is required")
	}
	if l.DeliveryDate == nil {
		miss("delivery_date", "delivery date is required")
	}
	if l.PickupDate != nil && l.DeliveryDate != nil && l.DeliveryDate.Before(*l.PickupDate) {
		e.Errors = append(e.Errors, "delivery date is before pickup date")
	}

	e.CanGenerate = len(e.Errors) == 0
	return e
}
