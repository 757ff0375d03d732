package domain

type (
	// LoadStatus is the operational status of a load.
	LoadStatus string
	// RateConStatus is the status of the carrier-facing rate confirmation document.
	RateConStatus string
	// RateConEvent is an event fired by the rate confirmation document lifecycle.
	RateConEvent string
)

// List of load statuses
const (
	LoadQuoted       LoadStatus = "quoted"
	LoadNeedsCarrier LoadStatus = "needs_carrier"
	LoadDispatched   LoadStatus = "dispatched"
	LoadConfirmed    LoadStatus = "confirmed"
	LoadInTransit    LoadStatus = "in_transit"
	LoadDelivered    LoadStatus = "delivered"
	LoadCompleted    LoadStatus = "completed"
	LoadCancelled    LoadStatus = "cancelled"
)

// List of rate confirmation statuses
const (
	RateConNone      RateConStatus = "none"
	RateConGenerated RateConStatus = "generated"
	RateConSent      RateConStatus = "sent"
	RateConViewed    RateConStatus = "viewed"
	RateConAccepted  RateConStatus = "accepted"
	RateConRejected  RateConStatus = "rejected"
	RateConExpired   RateConStatus = "expired"
)

// List of rate confirmation events
const (
	EventGenerated RateConEvent = "generated"
	EventSent      RateConEvent = "sent"
	EventViewed    RateConEvent = "viewed"
	EventSigned    RateConEvent = "signed"
	EventAccepted  RateConEvent = "accepted"
	EventRejected  RateConEvent = "rejected"
	EventExpired   RateConEvent = "expired"
)

var allowedLoadStatuses = [...]LoadStatus{
	LoadQuoted, LoadNeedsCarrier, LoadDispatched, LoadConfirmed,
	LoadInTransit, LoadDelivered, LoadCompleted, LoadCancelled,
}

var allowedRateConStatuses = [...]RateConStatus{
	RateConNone, RateConGenerated, RateConSent, RateConViewed,
	RateConAccepted, RateConRejected, RateConExpired,
}

var allowedRateConEvents = [...]RateConEvent{
	EventGenerated, EventSent, EventViewed, EventSigned,
	EventAccepted, EventRejected, EventExpired,
}

// Valid checks if the LoadStatus is known.
func (s LoadStatus) Valid() bool {
	for _, v := range allowedLoadStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the RateConStatus is known.
func (s RateConStatus) Valid() bool {
	for _, v := range allowedRateConStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the RateConEvent is known.
func (e RateConEvent) Valid() bool {
	for _, v := range allowedRateConEvents {
		if e == v {
			return true
		}
	}
	return false
}
