package quality

import "fmt"

// Score derives a 0..100 quality score from a gate result.
func Score(r Result) int {
	if r.TranscriptionConfidence > 0.9 && len(r.LowConfidenceFields) == 0 && len(r.MissingRequiredFields) == 0 {
		return 100
	}

	score := 100
	if r.LowConfidenceTranscription {
		score -= 20
	}
	score -= min(5*len(r.LowConfidenceFields), 30)
	score -= min(10*len(r.MissingRequiredFields), 30)
	if r.NegativeSentiment {
		score -= 5
	}
	return max(0, min(score, 100))
}

// Priority ranks a result for the review queue, 5 being the most urgent.
func Priority(r Result) int {
	switch {
	case r.Action == ActionFlagUrgent:
		return 5
	case r.IsHighValueDeal || r.IsQualifiedLead:
		return 4
	case r.FollowUpNeeded || r.LowConfidenceTranscription || len(r.LowConfidenceFields) > 5:
		return 3
	case len(r.MissingRequiredFields) > 0:
		return 2
	default:
		return 1
	}
}

// Tier is a coarse quality bucket.
type Tier string

// List of quality tiers
const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierFair      Tier = "fair"
	TierPoor      Tier = "poor"
)

// Summary is the user-facing verdict for an extraction.
type Summary struct {
	Tier             Tier
	Score            int
	Message          string
	ShouldNotifyUser bool
	Suggestions      []string
}

// Summarize turns a gate result into a tiered summary with suggestions.
func Summarize(r Result) Summary {
	s := Summary{Score: Score(r)}
	switch {
	case s.Score >= 90:
		s.Tier = TierExcellent
		s.Message = "Call data extracted with high confidence."
	case s.Score >= 75:
		s.Tier = TierGood
		s.Message = "Call data looks good. A quick check of flagged fields is enough."
	case s.Score >= 60:
		s.Tier = TierFair
		s.Message = "Some call data may be inaccurate. Please review before using it."
		s.ShouldNotifyUser = true
	default:
		s.Tier = TierPoor
		s.Message = "Call data quality is poor. Manual review is strongly recommended."
		s.ShouldNotifyUser = true
	}

	for _, f := range r.LowConfidenceFields {
		s.Suggestions = append(s.Suggestions, fmt.Sprintf("Verify %s against the recording", f))
	}
	for _, f := range r.MissingRequiredFields {
		s.Suggestions = append(s.Suggestions, fmt.Sprintf("Fill in missing %s", f))
	}
	if s.Tier == TierPoor {
		s.Suggestions = append(s.Suggestions,
			"Check the recording for background noise or dropped audio",
			"Upload a higher quality recording if one is available",
			"Enter the key load details manually",
		)
	}
	return s
}
