package quality

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loadvoice-synqall/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func field(name string, value any, conf float64) domain.ExtractedField {
	return domain.ExtractedField{Name: name, Value: value, Confidence: conf}
}

func TestCheck_LowTranscriptionIsAdvisoryByDefault(t *testing.T) {
	t.Parallel()

	res := Check(Input{TranscriptionConfidence: 0.5}, DefaultConfig())

	assert.True(t, res.LowConfidenceTranscription)
	assert.False(t, res.RequiresReview)
	assert.Empty(t, res.Reasons)
	assert.Equal(t, ActionAutoApprove, res.Action)
	assert.True(t, IsCatastrophicFailure(res.TranscriptionConfidence))
}

func TestCheck_MissingRequiredFieldsAlwaysTriggers(t *testing.T) {
	t.Parallel()

	in := Input{
		TranscriptionConfidence: 0.5,
		Fields: []domain.ExtractedField{
			field("origin_city", "Dallas", 0.9),
			field("rate", nil, 0.1),
			field("contact", "   ", 0.9),
		},
		RequiredFields: []string{"origin_city", "rate", "contact"},
	}
	res := Check(in, DefaultConfig())

	require.True(t, res.RequiresReview)
	assert.Equal(t, []string{"rate", "contact"}, res.MissingRequiredFields)
	assert.Equal(t, []Reason{ReasonMissingRequiredFields}, res.Reasons)
	assert.Equal(t, ActionManualReview, res.Action)
}

func TestCheck_AlwaysRequireReview(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig().With(Overrides{AlwaysRequireReview: ptr(true)})
	res := Check(Input{TranscriptionConfidence: 0.99}, cfg)

	assert.True(t, res.RequiresReview)
	assert.Equal(t, []Reason{ReasonUserPreference}, res.Reasons)
}

func TestCheck_LowConfidenceFields(t *testing.T) {
	t.Parallel()

	in := Input{
		TranscriptionConfidence: 0.95,
		Fields: []domain.ExtractedField{
			field("a", "x", 0.2),
			field("b", "y", 0.3),
			field("c", nil, 0.1),
			field("d", "z", 0.8),
		},
	}

	res := Check(in, DefaultConfig())
	assert.Equal(t, []string{"a", "b"}, res.LowConfidenceFields)
	assert.False(t, res.RequiresReview)

	res = Check(in, DefaultConfig().With(Overrides{MaxLowConfidenceFields: ptr(1)}))
	assert.Equal(t, []Reason{ReasonLowConfidenceFields}, res.Reasons)
}

func TestCheck_FeatureFlags(t *testing.T) {
	t.Parallel()

	in := Input{
		TranscriptionConfidence: 0.95,
		Sentiment:               "Negative",
		Outcome:                 domain.CallOutcome{Qualified: true, FollowUpNeeded: true, NotInterested: true},
		QualificationScore:      ptr(85.0),
	}

	off := Check(in, DefaultConfig())
	assert.True(t, off.IsHighValueDeal)
	assert.True(t, off.IsQualifiedLead)
	assert.True(t, off.FollowUpNeeded)
	assert.True(t, off.NegativeSentiment)
	assert.False(t, off.RequiresReview)

	on := Check(in, DefaultConfig().With(Overrides{
		ReviewQualifiedLeads:    ptr(true),
		ReviewFollowUps:         ptr(true),
		ReviewNegativeSentiment: ptr(true),
	}))
	assert.Equal(t, []Reason{
		ReasonHighValueDeal,
		ReasonQualifiedLead,
		ReasonFollowUpNeeded,
		ReasonNegativeSentiment,
	}, on.Reasons)
	assert.Equal(t, ActionManualReview, on.Action)
}

func TestCheck_HighBudget(t *testing.T) {
	t.Parallel()

	in := Input{TranscriptionConfidence: 0.95, Budget: "$75k"}

	res := Check(in, DefaultConfig())
	require.NotNil(t, res.Budget)
	assert.True(t, decimal.NewFromInt(75000).Equal(*res.Budget))
	assert.False(t, res.HighBudget)

	res = Check(in, DefaultConfig().With(Overrides{BudgetThreshold: ptr(decimal.NewFromInt(50000))}))
	assert.True(t, res.HighBudget)
	assert.Equal(t, []Reason{ReasonHighBudget}, res.Reasons)
}

func TestCheck_FlagUrgent(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig().With(Overrides{ReviewQualifiedLeads: ptr(true)})

	tests := []struct {
		name string
		in   Input
		want Action
	}{
		{
			name: "qualified with low transcription",
			in:   Input{TranscriptionConfidence: 0.4, Outcome: domain.CallOutcome{Qualified: true}},
			want: ActionFlagUrgent,
		},
		{
			name: "qualified with many shaky fields",
			in: Input{
				TranscriptionConfidence: 0.95,
				Outcome:                 domain.CallOutcome{Qualified: true},
				Fields: []domain.ExtractedField{
					field("a", 1, 0.1), field("b", 1, 0.1), field("c", 1, 0.1),
				},
			},
			want: ActionFlagUrgent,
		},
		{
			name: "qualified and clean",
			in:   Input{TranscriptionConfidence: 0.95, Outcome: domain.CallOutcome{Qualified: true}},
			want: ActionManualReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Check(tt.in, cfg)
			assert.Equal(t, tt.want, res.Action)
		})
	}
}

func TestPriority_FlagUrgentIsAlwaysFive(t *testing.T) {
	t.Parallel()

	confidences := []float64{0.1, 0.55, 0.7, 0.95}
	bools := []bool{false, true}
	for _, conf := range confidences {
		for _, qualified := range bools {
			for _, shaky := range bools {
				for _, flags := range bools {
					in := Input{
						TranscriptionConfidence: conf,
						Outcome:                 domain.CallOutcome{Qualified: qualified, FollowUpNeeded: true},
						RequiredFields:          []string{"rate"},
					}
					if shaky {
						in.Fields = []domain.ExtractedField{
							field("a", 1, 0.1), field("b", 1, 0.1), field("c", 1, 0.1),
						}
					}
					cfg := DefaultConfig()
					if flags {
						cfg = cfg.With(Overrides{ReviewQualifiedLeads: ptr(true), ReviewFollowUps: ptr(true)})
					}
					res := Check(in, cfg)
					if res.Action == ActionFlagUrgent {
						assert.Equal(t, 5, Priority(res))
					} else {
						assert.Less(t, Priority(res), 5)
					}
				}
			}
		}
	}
}

func TestIsCatastrophicFailure(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCatastrophicFailure(0.59))
	assert.False(t, IsCatastrophicFailure(0.6))
	assert.False(t, IsCatastrophicFailure(0.9))
}

func TestEnforceCatastrophic(t *testing.T) {
	t.Parallel()

	clean := Check(Input{TranscriptionConfidence: 0.8}, DefaultConfig())
	require.Equal(t, clean, EnforceCatastrophic(clean))

	bad := Check(Input{TranscriptionConfidence: 0.3}, DefaultConfig())
	require.False(t, bad.RequiresReview)

	forced := EnforceCatastrophic(bad)
	assert.True(t, forced.RequiresReview)
	assert.Equal(t, []Reason{ReasonLowTranscription}, forced.Reasons)
	assert.Equal(t, ActionManualReview, forced.Action)
	assert.Empty(t, bad.Reasons)

	lead := Check(Input{TranscriptionConfidence: 0.3, Outcome: domain.CallOutcome{Qualified: true}}, DefaultConfig())
	forced = EnforceCatastrophic(lead)
	assert.Equal(t, ActionFlagUrgent, forced.Action)
	assert.Equal(t, 5, Priority(forced))
}

func TestEnforceCatastrophic_ThresholdBelowCutoff(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig().With(Overrides{TranscriptionThreshold: ptr(0.3)})
	in := Input{TranscriptionConfidence: 0.4, Outcome: domain.CallOutcome{Qualified: true}}

	res := Check(in, cfg)
	require.False(t, res.LowConfidenceTranscription)

	forced := EnforceCatastrophic(res)
	assert.True(t, forced.LowConfidenceTranscription)
	assert.Equal(t, []Reason{ReasonLowTranscription}, forced.Reasons)
	assert.Equal(t, ActionFlagUrgent, forced.Action)
	assert.Equal(t, 5, Priority(forced))
	assert.Equal(t, 80, Score(forced))

	sum := Summarize(forced)
	assert.Equal(t, TierGood, sum.Tier)

	dflt := EnforceCatastrophic(Check(in, DefaultConfig()))
	assert.Equal(t, dflt.Action, forced.Action)
	assert.Equal(t, Score(dflt), Score(forced))
}

func TestOverrides_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Overrides{}.Validate())
	require.NoError(t, Overrides{
		TranscriptionThreshold: ptr(0.3),
		MaxLowConfidenceFields: ptr(0),
		QualificationThreshold: ptr(100.0),
		BudgetThreshold:        ptr(decimal.NewFromInt(25000)),
	}.Validate())

	bad := map[string]Overrides{
		"transcription_threshold":   {TranscriptionThreshold: ptr(1.2)},
		"field_threshold":           {FieldThreshold: ptr(-0.1)},
		"max_low_confidence_fields": {MaxLowConfidenceFields: ptr(-1)},
		"qualification_threshold":   {QualificationThreshold: ptr(101.0)},
		"budget_threshold":          {BudgetThreshold: ptr(decimal.NewFromInt(-5))},
	}
	for name, o := range bad {
		err := o.Validate()
		require.Error(t, err, name)
		require.Contains(t, err.Error(), name)
	}
}
