package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/quality"
	"loadvoice-synqall/internal/rateconf"
)

type loadDTO struct {
	ID                 uuid.UUID            `json:"id"`
	Status             domain.LoadStatus    `json:"status"`
	CarrierID          *uuid.UUID           `json:"carrier_id,omitempty"`
	CarrierMCNumber    string               `json:"carrier_mc_number,omitempty"`
	CarrierDOTNumber   string               `json:"carrier_dot_number,omitempty"`
	ShipperID          *uuid.UUID           `json:"shipper_id,omitempty"`
	RateToCarrier      *decimal.Decimal     `json:"rate_to_carrier,omitempty"`
	RateToShipper      *decimal.Decimal     `json:"rate_to_shipper,omitempty"`
	OriginCity         string               `json:"origin_city,omitempty"`
	OriginState        string               `json:"origin_state,omitempty"`
	DestinationCity    string               `json:"destination_city,omitempty"`
	DestinationState   string               `json:"destination_state,omitempty"`
	PickupDate         *time.Time           `json:"pickup_date,omitempty"`
	DeliveryDate       *time.Time           `json:"delivery_date,omitempty"`
	RateConStatus      domain.RateConStatus `json:"rate_con_status"`
	CarrierConfirmed   bool                 `json:"carrier_confirmed"`
	CarrierConfirmedAt *time.Time           `json:"carrier_confirmed_at,omitempty"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

type workflowDTO struct {
	Load                     loadDTO             `json:"load"`
	AvailableTransitions     []domain.LoadStatus `json:"available_transitions"`
	PreviousStatus           *domain.LoadStatus  `json:"previous_status"`
	CanReverse               bool                `json:"can_reverse"`
	Progress                 *int                `json:"progress"`
	IsTerminal               bool                `json:"is_terminal"`
	RequiresRateConfirmation bool                `json:"requires_rate_confirmation"`
	NextRateConAction        rateconf.Action     `json:"next_rate_con_action,omitempty"`
}

type historyEntryDTO struct {
	ID            int64                `json:"id"`
	Source        domain.HistorySource `json:"source"`
	Event         string               `json:"event,omitempty"`
	FromStatus    domain.LoadStatus    `json:"from_status"`
	ToStatus      domain.LoadStatus    `json:"to_status"`
	RateConStatus domain.RateConStatus `json:"rate_con_status,omitempty"`
	Actor         string               `json:"actor,omitempty"`
	Details       string               `json:"details,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

type changeStatusRequest struct {
	Status domain.LoadStatus `json:"status"`
	Actor  string            `json:"actor,omitempty"`
}

type reverseRequest struct {
	Actor string `json:"actor,omitempty"`
}

type rateConEventRequest struct {
	Event   domain.RateConEvent `json:"event"`
	Details string              `json:"details,omitempty"`
}

type rateConEventResponse struct {
	Load             loadDTO              `json:"load"`
	Event            domain.RateConEvent  `json:"event"`
	FromStatus       domain.LoadStatus    `json:"from_status"`
	LoadStatus       domain.LoadStatus    `json:"load_status"`
	RateConStatus    domain.RateConStatus `json:"rate_con_status"`
	LoadChanged      bool                 `json:"load_changed"`
	CarrierConfirmed *bool                `json:"carrier_confirmed,omitempty"`
}

type eligibilityDTO struct {
	CanGenerate   bool     `json:"can_generate"`
	MissingFields []string `json:"missing_fields"`
	Errors        []string `json:"errors"`
}

type extractedFieldDTO struct {
	Name       string  `json:"name"`
	Value      any     `json:"value"`
	Confidence float64 `json:"confidence"`
}

type extractionRequest struct {
	CallID                  uuid.UUID           `json:"call_id"`
	OwnerID                 uuid.UUID           `json:"owner_id"`
	TranscriptionConfidence float64             `json:"transcription_confidence"`
	Sentiment               string              `json:"sentiment,omitempty"`
	Fields                  []extractedFieldDTO `json:"fields"`
	Qualified               bool                `json:"qualified,omitempty"`
	FollowUpNeeded          bool                `json:"follow_up_needed,omitempty"`
	NotInterested           bool                `json:"not_interested,omitempty"`
	QualificationScore      *float64            `json:"qualification_score,omitempty"`
	Budget                  string              `json:"budget,omitempty"`
	RequiredFields          []string            `json:"required_fields,omitempty"`
}

type storedReviewDTO struct {
	CallID        uuid.UUID `json:"call_id"`
	NeedsReview   bool      `json:"needs_review"`
	Action        string    `json:"action"`
	Priority      int       `json:"priority"`
	QualityScore  int       `json:"quality_score"`
	TriggerReason string    `json:"trigger_reason,omitempty"`
	BlockAutoSave bool      `json:"block_auto_save"`
	ReviewedAt    time.Time `json:"reviewed_at"`
}

type reviewDTO struct {
	CallID                  uuid.UUID        `json:"call_id"`
	NeedsReview             bool             `json:"needs_review"`
	Action                  string           `json:"action"`
	Priority                int              `json:"priority"`
	QualityScore            int              `json:"quality_score"`
	TriggerReason           string           `json:"trigger_reason,omitempty"`
	Reasons                 []quality.Reason `json:"reasons"`
	LowConfidenceFields     []string         `json:"low_confidence_fields"`
	MissingRequiredFields   []string         `json:"missing_required_fields"`
	TranscriptionConfidence float64          `json:"transcription_confidence"`
	BlockAutoSave           bool             `json:"block_auto_save"`
	Tier                    quality.Tier     `json:"tier"`
	Message                 string           `json:"message"`
	ShouldNotifyUser        bool             `json:"should_notify_user"`
	Suggestions             []string         `json:"suggestions"`
	ReviewedAt              time.Time        `json:"reviewed_at"`
}
