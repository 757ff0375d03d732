package quality

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// UnlimitedLowConfidenceFields disables the low-confidence field count trigger.
const UnlimitedLowConfidenceFields = math.MaxInt32

// Config holds the gate thresholds and feature flags. It is a plain value:
// build it once per request and pass it to Check.
type Config struct {
	// TranscriptionThreshold marks a transcript below it as low confidence.
	TranscriptionThreshold float64
	// FieldThreshold marks an extracted field below it as low confidence.
	FieldThreshold float64
	// MaxLowConfidenceFields is the number of low-confidence fields tolerated
	// before review is triggered.
	MaxLowConfidenceFields int
	// QualificationThreshold is the qualification score above which a call is a high-value deal.
	QualificationThreshold float64
	// BudgetThreshold triggers review for budgets at or above it. Nil disables.
	BudgetThreshold *decimal.Decimal

	ReviewQualifiedLeads    bool
	ReviewFollowUps         bool
	ReviewNegativeSentiment bool
	AlwaysRequireReview     bool
}

var defaultConfig = Config{
	TranscriptionThreshold: CatastrophicThreshold,
	FieldThreshold:         0.5,
	MaxLowConfidenceFields: UnlimitedLowConfidenceFields,
	QualificationThreshold: 70,
}

// DefaultConfig returns the default gate configuration: every review-on flag
// off, so only missing required fields force review.
func DefaultConfig() Config {
	return defaultConfig
}

// Overrides are user-tunable settings; nil fields keep the base value.
type Overrides struct {
	TranscriptionThreshold  *float64         `json:"transcription_threshold,omitempty" mapstructure:"transcription_threshold"`
	FieldThreshold          *float64         `json:"field_threshold,omitempty" mapstructure:"field_threshold"`
	MaxLowConfidenceFields  *int             `json:"max_low_confidence_fields,omitempty" mapstructure:"max_low_confidence_fields"`
	QualificationThreshold  *float64         `json:"qualification_threshold,omitempty" mapstructure:"qualification_threshold"`
	BudgetThreshold         *decimal.Decimal `json:"budget_threshold,omitempty" mapstructure:"budget_threshold"`
	ReviewQualifiedLeads    *bool            `json:"review_qualified_leads,omitempty" mapstructure:"review_qualified_leads"`
	ReviewFollowUps         *bool            `json:"review_follow_ups,omitempty" mapstructure:"review_follow_ups"`
	ReviewNegativeSentiment *bool            `json:"review_negative_sentiment,omitempty" mapstructure:"review_negative_sentiment"`
	AlwaysRequireReview     *bool            `json:"always_require_review,omitempty" mapstructure:"always_require_review"`
}

// With returns a copy of c with o applied on top.
func (c Config) With(o Overrides) Config {
	if o.TranscriptionThreshold != nil {
		c.TranscriptionThreshold = *o.TranscriptionThreshold
	}
	if o.FieldThreshold != nil {
		c.FieldThreshold = *o.FieldThreshold
	}
	if o.MaxLowConfidenceFields != nil {
		c.MaxLowConfidenceFields = *o.MaxLowConfidenceFields
	}
	if o.QualificationThreshold != nil {
		c.QualificationThreshold = *o.QualificationThreshold
	}
	if o.BudgetThreshold != nil {
		b := *o.BudgetThreshold
		c.BudgetThreshold = &b
	}
	if o.ReviewQualifiedLeads != nil {
		c.ReviewQualifiedLeads = *o.ReviewQualifiedLeads
	}
	if o.ReviewFollowUps != nil {
		c.ReviewFollowUps = *o.ReviewFollowUps
	}
	if o.ReviewNegativeSentiment != nil {
		c.ReviewNegativeSentiment = *o.ReviewNegativeSentiment
	}
	if o.AlwaysRequireReview != nil {
		c.AlwaysRequireReview = *o.AlwaysRequireReview
	}
	return c
}

// Validate reports the first override outside its allowed range. Thresholds
// on confidences lie in [0, 1], the qualification threshold in [0, 100];
// counts and budgets must not be negative.
func (o Overrides) Validate() error {
	unit := func(name string, v *float64) error {
		if v != nil && (*v < 0 || *v > 1) {
			return fmt.Errorf("%s must be within [0, 1]", name)
		}
		return nil
	}
	if err := unit("transcription_threshold", o.TranscriptionThreshold); err != nil {
		return err
	}
	if err := unit("field_threshold", o.FieldThreshold); err != nil {
		return err
	}
	if o.MaxLowConfidenceFields != nil && *o.MaxLowConfidenceFields < 0 {
		return errors.New("max_low_confidence_fields must not be negative")
	}
	if o.QualificationThreshold != nil && (*o.QualificationThreshold < 0 || *o.QualificationThreshold > 100) {
		return errors.New("qualification_threshold must be within [0, 100]")
	}
	if o.BudgetThreshold != nil && o.BudgetThreshold.IsNegative() {
		return errors.New("budget_threshold must not be negative")
	}
	return nil
}
