package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"loadvoice-synqall/internal/quality"
	"loadvoice-synqall/internal/transport/kafka"
)

type qualityReport struct {
	RequiresReview        bool     `json:"requires_review"`
	Action                string   `json:"action"`
	Reasons               []string `json:"reasons"`
	TriggerLabel          string   `json:"trigger_label"`
	Priority              int      `json:"priority"`
	Score                 int      `json:"score"`
	Tier                  string   `json:"tier"`
	Message               string   `json:"message"`
	Suggestions           []string `json:"suggestions"`
	LowConfidenceFields   []string `json:"low_confidence_fields"`
	MissingRequiredFields []string `json:"missing_required_fields"`
}

func qualityCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "quality <input.json>",
		Short: "Run the quality gate against a call extraction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			var dto kafka.CallExtractionDTO
			if err := json.Unmarshal(raw, &dto); err != nil {
				return fmt.Errorf("decode input: %w", err)
			}
			e, err := dto.ToDomain()
			if err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			cfg, err := gateConfig(v)
			if err != nil {
				return err
			}
			res := quality.EnforceCatastrophic(quality.Check(quality.InputOf(e), cfg))
			sum := quality.Summarize(res)

			rep := qualityReport{
				RequiresReview:        res.RequiresReview,
				Action:                string(res.Action),
				Reasons:               make([]string, 0, len(res.Reasons)),
				TriggerLabel:          quality.FormatTriggerReason(res.Reasons),
				Priority:              quality.Priority(res),
				Score:                 sum.Score,
				Tier:                  string(sum.Tier),
				Message:               sum.Message,
				Suggestions:           nonNil(sum.Suggestions),
				LowConfidenceFields:   nonNil(res.LowConfidenceFields),
				MissingRequiredFields: nonNil(res.MissingRequiredFields),
			}
			for _, r := range res.Reasons {
				rep.Reasons = append(rep.Reasons, string(r))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		},
	}
}

// gateConfig layers config file and SYNQALL_* env values over the defaults.
func gateConfig(v *viper.Viper) (quality.Config, error) {
	var o quality.Overrides
	if v.IsSet("transcription_threshold") {
		f := v.GetFloat64("transcription_threshold")
		o.TranscriptionThreshold = &f
	}
	if v.IsSet("field_threshold") {
		f := v.GetFloat64("field_threshold")
		o.FieldThreshold = &f
	}
	if v.IsSet("max_low_confidence_fields") {
		n := v.GetInt("max_low_confidence_fields")
		o.MaxLowConfidenceFields = &n
	}
	if v.IsSet("qualification_threshold") {
		f := v.GetFloat64("qualification_threshold")
		o.QualificationThreshold = &f
	}
	if v.IsSet("budget_threshold") {
		d, err := decimal.NewFromString(v.GetString("budget_threshold"))
		if err != nil {
			return quality.Config{}, fmt.Errorf("budget_threshold: %w", err)
		}
		o.BudgetThreshold = &d
	}
	for key, dst := range map[string]**bool{
		"review_qualified_leads":    &o.ReviewQualifiedLeads,
		"review_follow_ups":         &o.ReviewFollowUps,
		"review_negative_sentiment": &o.ReviewNegativeSentiment,
		"always_require_review":     &o.AlwaysRequireReview,
	} {
		if v.IsSet(key) {
			b := v.GetBool(key)
			*dst = &b
		}
	}
	if err := o.Validate(); err != nil {
		return quality.Config{}, fmt.Errorf("gate config: %w", err)
	}
	return quality.DefaultConfig().With(o), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
