package kafka

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"loadvoice-synqall/internal/domain"
)

// RateConEventDTO is the e-sign provider callback for a rate confirmation document.
type RateConEventDTO struct {
	LoadID     string    `json:"load_id"`
	Event      string    `json:"event"`
	Details    string    `json:"details,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RateConEvent is a decoded rate confirmation callback.
type RateConEvent struct {
	LoadID     uuid.UUID
	Event      domain.RateConEvent
	Details    string
	OccurredAt time.Time
}

// ToDomain converts the callback into a RateConEvent.
func (dto RateConEventDTO) ToDomain() (RateConEvent, error) {
	id, err := uuid.Parse(strings.TrimSpace(dto.LoadID))
	if err != nil || id == uuid.Nil {
		return RateConEvent{}, fmt.Errorf("load_id %q is not a uuid", dto.LoadID)
	}
	ev := domain.RateConEvent(strings.ToLower(strings.TrimSpace(dto.Event)))
	if ev == "" {
		return RateConEvent{}, errors.New("empty event")
	}
	return RateConEvent{
		LoadID:     id,
		Event:      ev,
		Details:    strings.TrimSpace(dto.Details),
		OccurredAt: dto.OccurredAt,
	}, nil
}

// ExtractedFieldDTO is one field of a call extraction message.
type ExtractedFieldDTO struct {
	Name       string  `json:"name"`
	Value      any     `json:"value"`
	Confidence float64 `json:"confidence"`
}

// CallExtractionDTO is published when transcription and extraction of a call finish.
type CallExtractionDTO struct {
	CallID                  string              `json:"call_id"`
	OwnerID                 string              `json:"owner_id"`
	TranscriptionConfidence float64             `json:"transcription_confidence"`
	Sentiment               string              `json:"sentiment,omitempty"`
	Fields                  []ExtractedFieldDTO `json:"fields"`
	Qualified               bool                `json:"qualified,omitempty"`
	FollowUpNeeded          bool                `json:"follow_up_needed,omitempty"`
	NotInterested           bool                `json:"not_interested,omitempty"`
	QualificationScore      *float64            `json:"qualification_score,omitempty"`
	Budget                  string              `json:"budget,omitempty"`
	RequiredFields          []string            `json:"required_fields,omitempty"`
}

// ToDomain converts the message into a CallExtraction.
func (dto CallExtractionDTO) ToDomain() (domain.CallExtraction, error) {
	callID, err := uuid.Parse(strings.TrimSpace(dto.CallID))
	if err != nil {
		return domain.CallExtraction{}, fmt.Errorf("call_id %q is not a uuid", dto.CallID)
	}
	ownerID, err := uuid.Parse(strings.TrimSpace(dto.OwnerID))
	if err != nil {
		return domain.CallExtraction{}, fmt.Errorf("owner_id %q is not a uuid", dto.OwnerID)
	}

	e := domain.CallExtraction{
		CallID:                  callID,
		OwnerID:                 ownerID,
		TranscriptionConfidence: dto.TranscriptionConfidence,
		Sentiment:               strings.TrimSpace(dto.Sentiment),
		Outcome: domain.CallOutcome{
			Qualified:      dto.Qualified,
			FollowUpNeeded: dto.FollowUpNeeded,
			NotInterested:  dto.NotInterested,
		},
		QualificationScore: dto.QualificationScore,
		Budget:             dto.Budget,
		RequiredFields:     dto.RequiredFields,
	}
	for _, f := range dto.Fields {
		e.Fields = append(e.Fields, domain.ExtractedField{
			Name:       strings.TrimSpace(f.Name),
			Value:      f.Value,
			Confidence: f.Confidence,
		})
	}
	return e, nil
}
