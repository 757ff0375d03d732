// Package rateconf maps rate confirmation document events onto load status
// changes and answers what a dispatcher should do next with the document.
package rateconf

import (
	"fmt"

	"loadvoice-synqall/internal/apperr"
	"loadvoice-synqall/internal/domain"
)

// confirmEffect describes what an event does to carrier_confirmed.
type confirmEffect int

const (
	confirmKeep confirmEffect = iota
	confirmSet
	confirmClear
)

// rule is one row of the event table. When the current load status is in
// when (or when is empty), the load moves to to; an empty to leaves it alone.
// The rate confirmation status is always set to rateCon.
type rule struct {
	when    []domain.LoadStatus
	to      domain.LoadStatus
	rateCon domain.RateConStatus
	confirm confirmEffect
}

var table = map[domain.RateConEvent]rule{
	domain.EventGenerated: {
		rateCon: domain.RateConGenerated,
	},
	domain.EventSent: {
		when:    []domain.LoadStatus{domain.LoadQuoted, domain.LoadNeedsCarrier},
		to:      domain.LoadDispatched,
		rateCon: domain.RateConSent,
	},
	domain.EventViewed: {
		rateCon: domain.RateConViewed,
	},
	domain.EventSigned: {
		when:    []domain.LoadStatus{domain.LoadDispatched},
		to:      domain.LoadConfirmed,
		rateCon: domain.RateConAccepted,
		confirm: confirmSet,
	},
	domain.EventAccepted: {
		when:    []domain.LoadStatus{domain.LoadDispatched},
		to:      domain.LoadConfirmed,
		rateCon: domain.RateConAccepted,
		confirm: confirmSet,
	},
	domain.EventRejected: {
		to:      domain.LoadNeedsCarrier,
		rateCon: domain.RateConRejected,
		confirm: confirmClear,
	},
	domain.EventExpired: {
		when:    []domain.LoadStatus{domain.LoadDispatched},
		to:      domain.LoadNeedsCarrier,
		rateCon: domain.RateConExpired,
	},
}

// Outcome is the computed effect of one event on one load.
type Outcome struct {
	Event         domain.RateConEvent
	From          domain.LoadStatus
	LoadStatus    domain.LoadStatus
	RateConStatus domain.RateConStatus
	// CarrierConfirmed is nil when the event leaves the flag unchanged.
	CarrierConfirmed *bool
	// StampConfirmation asks the writer to record carrier_confirmed_at.
	StampConfirmation bool
}

// LoadChanged reports whether the event moves the load to another status.
func (o Outcome) LoadChanged() bool { return o.LoadStatus != o.From }

func (r rule) matches(current domain.LoadStatus) bool {
	if len(r.when) == 0 {
		return true
	}
	for _, s := range r.when {
		if s == current {
			return true
		}
	}
	return false
}

// Apply computes the effect of event on a load currently in status current.
// It has no side effects; persisting the outcome and its history entry is the
// caller's job.
func Apply(current domain.LoadStatus, event domain.RateConEvent) (Outcome, error) {
	if !current.Valid() {
		return Outcome{}, fmt.Errorf("load status %q: %w", current, apperr.ErrInvalid)
	}
	r, ok := table[event]
	if !ok {
		return Outcome{}, fmt.Errorf("rate confirmation event %q: %w", event, apperr.ErrInvalid)
	}

	out := Outcome{
		Event:         event,
		From:          current,
		LoadStatus:    current,
		RateConStatus: r.rateCon,
	}
	if !r.matches(current) {
		return out, nil
	}
	if r.to != "" {
		out.LoadStatus = r.to
	}
	switch r.confirm {
	case confirmSet:
		v := true
		out.CarrierConfirmed = &v
		out.StampConfirmation = true
	case confirmClear:
		v := false
		out.CarrierConfirmed = &v
	}
	return out, nil
}
