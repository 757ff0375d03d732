package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sentiment values reported by the transcription provider.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// ExtractedField is a single field mined from a call transcript.
// A nil Value means the extractor found nothing for the field.
type ExtractedField struct {
	Name       string
	Value      any
	Confidence float64
}

// CallOutcome is the dispatcher-facing outcome of a call.
type CallOutcome struct {
	Qualified      bool
	FollowUpNeeded bool
	NotInterested  bool
}

// CallExtraction is the transcription and extraction result for one call.
type CallExtraction struct {
	CallID                  uuid.UUID
	OwnerID                 uuid.UUID
	TranscriptionConfidence float64
	Sentiment               string
	Fields                  []ExtractedField
	Outcome                 CallOutcome
	QualificationScore      *float64
	Budget                  string
	RequiredFields          []string
}

// CallReview is the persisted review decision for a call.
type CallReview struct {
	CallID        uuid.UUID
	NeedsReview   bool
	Action        string
	Priority      int
	QualityScore  int
	TriggerLabel  string
	BlockAutoSave bool
	ReviewedAt    time.Time
}
