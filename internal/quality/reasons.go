package quality

import "strconv"

// Reason is why an extraction was sent to review.
type Reason string

// List of trigger reasons, highest priority first.
const (
	ReasonHighValueDeal         Reason = "high_value_deal"
	ReasonQualifiedLead         Reason = "qualified_lead"
	ReasonLowTranscription      Reason = "low_transcription_confidence"
	ReasonLowConfidenceFields   Reason = "low_confidence_fields"
	ReasonMissingRequiredFields Reason = "missing_required_fields"
	ReasonFollowUpNeeded        Reason = "follow_up_needed"
	ReasonHighBudget            Reason = "high_budget"
	ReasonNegativeSentiment     Reason = "negative_sentiment"
	ReasonUserPreference        Reason = "user_preference"
	ReasonManualFlag            Reason = "manual_flag"
)

var reasonOrder = [...]Reason{
	ReasonHighValueDeal,
	ReasonQualifiedLead,
	ReasonLowTranscription,
	ReasonLowConfidenceFields,
	ReasonMissingRequiredFields,
	ReasonFollowUpNeeded,
	ReasonHighBudget,
	ReasonNegativeSentiment,
	ReasonUserPreference,
	ReasonManualFlag,
}

// Phrase returns the human-readable label of r.
func (r Reason) Phrase() string {
	switch r {
	case ReasonHighValueDeal:
		return "High-value deal"
	case ReasonQualifiedLead:
		return "Qualified lead"
	case ReasonLowTranscription:
		return "Low transcription confidence"
	case ReasonLowConfidenceFields:
		return "Low confidence fields"
	case ReasonMissingRequiredFields:
		return "Missing required fields"
	case ReasonFollowUpNeeded:
		return "Follow-up needed"
	case ReasonHighBudget:
		return "High budget"
	case ReasonNegativeSentiment:
		return "Negative sentiment"
	case ReasonUserPreference:
		return "Review required by preference"
	case ReasonManualFlag:
		return "Manually flagged"
	default:
		return string(r)
	}
}

func rank(r Reason) int {
	for i, v := range reasonOrder {
		if v == r {
			return i
		}
	}
	return len(reasonOrder)
}

// FormatTriggerReason renders reasons as a single label: the most important
// reason, followed by "+N more" when there are others.
func FormatTriggerReason(reasons []Reason) string {
	if len(reasons) == 0 {
		return ""
	}
	top := reasons[0]
	for _, r := range reasons[1:] {
		if rank(r) < rank(top) {
			top = r
		}
	}
	if len(reasons) == 1 {
		return top.Phrase()
	}
	return top.Phrase() + " +" + strconv.Itoa(len(reasons)-1) + " more"
}
