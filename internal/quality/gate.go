// Package quality decides whether an automatically extracted call record can
// be trusted as is or has to go through human review, and how urgently.
//
// Everything here is advisory except IsCatastrophicFailure: the pipeline stays
// frictionless by default and only a transcript the provider could barely
// hear blocks automatic acceptance.
package quality

import (
	"strings"

	"github.com/shopspring/decimal"

	"loadvoice-synqall/internal/domain"
)

// CatastrophicThreshold is the transcription confidence below which an
// extraction must never be accepted automatically.
const CatastrophicThreshold = 0.6

// Action is the recommended handling of an extraction.
type Action string

// List of recommended actions
const (
	ActionAutoApprove  Action = "auto_approve"
	ActionManualReview Action = "manual_review"
	ActionFlagUrgent   Action = "flag_urgent"
)

// Input is everything the gate looks at for one call.
type Input struct {
	TranscriptionConfidence float64
	Sentiment               string
	Fields                  []domain.ExtractedField
	Outcome                 domain.CallOutcome
	QualificationScore      *float64
	Budget                  string
	RequiredFields          []string
}

// InputOf builds gate input from a stored call extraction.
func InputOf(e domain.CallExtraction) Input {
	return Input{
		TranscriptionConfidence: e.TranscriptionConfidence,
		Sentiment:               e.Sentiment,
		Fields:                  e.Fields,
		Outcome:                 e.Outcome,
		QualificationScore:      e.QualificationScore,
		Budget:                  e.Budget,
		RequiredFields:          e.RequiredFields,
	}
}

// Result is the gate verdict. It is computed fresh per extraction and never mutated.
type Result struct {
	Reasons        []Reason
	RequiresReview bool
	Action         Action

	TranscriptionConfidence    float64
	LowConfidenceTranscription bool
	LowConfidenceFields        []string
	MissingRequiredFields      []string
	IsHighValueDeal            bool
	IsQualifiedLead            bool
	FollowUpNeeded             bool
	NegativeSentiment          bool
	Budget                     *decimal.Decimal
	HighBudget                 bool
}

// IsCatastrophicFailure reports whether a transcript is too unreliable to be
// accepted without a human, whatever the configuration says.
func IsCatastrophicFailure(confidence float64) bool {
	return confidence < CatastrophicThreshold
}

// EnforceCatastrophic returns r with review forced when the transcript is a
// catastrophic failure. The transcript is marked low confidence even when the
// configured threshold sits below the catastrophic cutoff, so score and
// priority agree with the block. Other results are returned unchanged.
func EnforceCatastrophic(r Result) Result {
	if !IsCatastrophicFailure(r.TranscriptionConfidence) {
		return r
	}
	r.LowConfidenceTranscription = true
	reasons := reasonSet{list: append([]Reason(nil), r.Reasons...)}
	reasons.add(ReasonLowTranscription)
	r.Reasons = reasons.list
	r.RequiresReview = true
	r.Action = recommend(r)
	return r
}

type reasonSet struct{ list []Reason }

func (s *reasonSet) add(r Reason) {
	for _, have := range s.list {
		if have == r {
			return
		}
	}
	s.list = append(s.list, r)
}

// Check runs the gate over in with cfg.
func Check(in Input, cfg Config) Result {
	var reasons reasonSet
	res := Result{TranscriptionConfidence: in.TranscriptionConfidence}

	if in.TranscriptionConfidence < cfg.TranscriptionThreshold {
		res.LowConfidenceTranscription = true
	}

	present := make(map[string]bool, len(in.Fields))
	for _, f := range in.Fields {
		if !hasValue(f.Value) {
			continue
		}
		present[f.Name] = true
		if f.Confidence < cfg.FieldThreshold {
			res.LowConfidenceFields = append(res.LowConfidenceFields, f.Name)
		}
	}
	if len(res.LowConfidenceFields) > cfg.MaxLowConfidenceFields {
		reasons.add(ReasonLowConfidenceFields)
	}

	if in.QualificationScore != nil && *in.QualificationScore > cfg.QualificationThreshold {
		res.IsHighValueDeal = true
		if cfg.ReviewQualifiedLeads {
			reasons.add(ReasonHighValueDeal)
		}
	}

	if b, ok := ParseBudget(in.Budget); ok {
		res.Budget = &b
		if cfg.BudgetThreshold != nil && b.GreaterThanOrEqual(*cfg.BudgetThreshold) {
			res.HighBudget = true
			reasons.add(ReasonHighBudget)
		}
	}

	res.IsQualifiedLead = in.Outcome.Qualified
	res.FollowUpNeeded = in.Outcome.FollowUpNeeded
	if in.Outcome.Qualified && cfg.ReviewQualifiedLeads {
		reasons.add(ReasonQualifiedLead)
	}
	if in.Outcome.FollowUpNeeded && cfg.ReviewFollowUps {
		reasons.add(ReasonFollowUpNeeded)
	}
	if in.Outcome.NotInterested && cfg.ReviewNegativeSentiment {
		reasons.add(ReasonNegativeSentiment)
	}

	for _, name := range in.RequiredFields {
		if !present[name] {
			res.MissingRequiredFields = append(res.MissingRequiredFields, name)
		}
	}
	if len(res.MissingRequiredFields) > 0 {
		reasons.add(ReasonMissingRequiredFields)
	}

	res.NegativeSentiment = strings.EqualFold(strings.TrimSpace(in.Sentiment), domain.SentimentNegative)
	if res.NegativeSentiment && cfg.ReviewNegativeSentiment {
		reasons.add(ReasonNegativeSentiment)
	}

	if cfg.AlwaysRequireReview {
		reasons.add(ReasonUserPreference)
	}

	res.Reasons = reasons.list
	res.RequiresReview = len(res.Reasons) > 0
	res.Action = recommend(res)
	return res
}

func recommend(r Result) Action {
	if !r.RequiresReview {
		return ActionAutoApprove
	}
	valuable := r.IsHighValueDeal || r.IsQualifiedLead
	shaky := r.LowConfidenceTranscription || len(r.LowConfidenceFields) > 2
	if valuable && shaky {
		return ActionFlagUrgent
	}
	return ActionManualReview
}

// hasValue reports whether an extracted value counts as present.
// Blank strings are treated like nil.
func hasValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case *string:
		return t != nil && strings.TrimSpace(*t) != ""
	default:
		return true
	}
}
