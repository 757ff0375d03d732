package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Load represents a shipment record.
type Load struct {
	ID                 uuid.UUID
	Status             LoadStatus
	CarrierID          *uuid.UUID
	CarrierMCNumber    string
	CarrierDOTNumber   string
	ShipperID          *uuid.UUID
	RateToCarrier      *decimal.Decimal
	RateToShipper      *decimal.Decimal
	OriginCity         string
	OriginState        string
	DestinationCity    string
	DestinationState   string
	PickupDate         *time.Time
	DeliveryDate       *time.Time
	RateConStatus      RateConStatus
	CarrierConfirmed   bool
	CarrierConfirmedAt *time.Time
	Deleted            bool
	UpdatedAt          time.Time
}

// StatusUpdate carries a guarded status write for a single load.
// The write applies only while the stored status still equals ExpectedStatus.
// A nil pointer field means "do not change" that attribute.
type StatusUpdate struct {
	ID                 uuid.UUID
	ExpectedStatus     LoadStatus
	Status             LoadStatus
	RateConStatus      *RateConStatus
	CarrierConfirmed   *bool
	CarrierConfirmedAt *time.Time
	UpdatedAt          time.Time
}

// HistorySource tells what produced a status history entry.
type HistorySource string

// List of history sources
const (
	SourceManual  HistorySource = "manual"
	SourceReverse HistorySource = "reverse"
	SourceRateCon HistorySource = "rate_confirmation"
)

// HistoryEntry is an append-only audit record of a load status change.
type HistoryEntry struct {
	ID            int64
	LoadID        uuid.UUID
	Source        HistorySource
	Event         string
	FromStatus    LoadStatus
	ToStatus      LoadStatus
	RateConStatus RateConStatus
	Actor         string
	Details       string
	CreatedAt     time.Time
}
