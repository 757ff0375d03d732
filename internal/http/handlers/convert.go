package handlers

import (
	"loadvoice-synqall/internal/domain"
	"loadvoice-synqall/internal/quality"
	"loadvoice-synqall/internal/rateconf"
	"loadvoice-synqall/internal/service/load"
	"loadvoice-synqall/internal/service/ratecon"
	"loadvoice-synqall/internal/service/review"
)

func loadToResponse(l *domain.Load) loadDTO {
	return loadDTO{
		ID:                 l.ID,
		Status:             l.Status,
		CarrierID:          l.CarrierID,
		CarrierMCNumber:    l.CarrierMCNumber,
		CarrierDOTNumber:   l.CarrierDOTNumber,
		ShipperID:          l.ShipperID,
		RateToCarrier:      l.RateToCarrier,
		RateToShipper:      l.RateToShipper,
		OriginCity:         l.OriginCity,
		OriginState:        l.OriginState,
		DestinationCity:    l.DestinationCity,
		DestinationState:   l.DestinationState,
		PickupDate:         l.PickupDate,
		DeliveryDate:       l.DeliveryDate,
		RateConStatus:      l.RateConStatus,
		CarrierConfirmed:   l.CarrierConfirmed,
		CarrierConfirmedAt: l.CarrierConfirmedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

func workflowToResponse(w *load.Workflow) workflowDTO {
	out := workflowDTO{
		Load:                     loadToResponse(w.Load),
		AvailableTransitions:     w.AvailableTransitions,
		CanReverse:               w.CanReverse,
		IsTerminal:               w.Terminal,
		RequiresRateConfirmation: w.RequiresRateConfirmation,
		NextRateConAction:        w.NextRateConAction,
	}
	if out.AvailableTransitions == nil {
		out.AvailableTransitions = []domain.LoadStatus{}
	}
	if w.CanReverse {
		prev := w.PreviousStatus
		out.PreviousStatus = &prev
	}
	if w.OnScale {
		p := w.Progress
		out.Progress = &p
	}
	return out
}

func historyToResponse(list []domain.HistoryEntry) []historyEntryDTO {
	out := make([]historyEntryDTO, 0, len(list))
	for _, h := range list {
		out = append(out, historyEntryDTO{
			ID:            h.ID,
			Source:        h.Source,
			Event:         h.Event,
			FromStatus:    h.FromStatus,
			ToStatus:      h.ToStatus,
			RateConStatus: h.RateConStatus,
			Actor:         h.Actor,
			Details:       h.Details,
			CreatedAt:     h.CreatedAt,
		})
	}
	return out
}

func rateConResultToResponse(res *ratecon.Result) rateConEventResponse {
	return rateConEventResponse{
		Load:             loadToResponse(res.Load),
		Event:            res.Outcome.Event,
		FromStatus:       res.Outcome.From,
		LoadStatus:       res.Outcome.LoadStatus,
		RateConStatus:    res.Outcome.RateConStatus,
		LoadChanged:      res.Outcome.LoadChanged(),
		CarrierConfirmed: res.Outcome.CarrierConfirmed,
	}
}

func eligibilityToResponse(e rateconf.Eligibility) eligibilityDTO {
	out := eligibilityDTO{CanGenerate: e.CanGenerate, MissingFields: e.MissingFields, Errors: e.Errors}
	if out.MissingFields == nil {
		out.MissingFields = []string{}
	}
	if out.Errors == nil {
		out.Errors = []string{}
	}
	return out
}

func (r extractionRequest) toModel() domain.CallExtraction {
	e := domain.CallExtraction{
		CallID:                  r.CallID,
		OwnerID:                 r.OwnerID,
		TranscriptionConfidence: r.TranscriptionConfidence,
		Sentiment:               r.Sentiment,
		Outcome: domain.CallOutcome{
			Qualified:      r.Qualified,
			FollowUpNeeded: r.FollowUpNeeded,
			NotInterested:  r.NotInterested,
		},
		QualificationScore: r.QualificationScore,
		Budget:             r.Budget,
		RequiredFields:     r.RequiredFields,
	}
	for _, f := range r.Fields {
		e.Fields = append(e.Fields, domain.ExtractedField{Name: f.Name, Value: f.Value, Confidence: f.Confidence})
	}
	return e
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func storedReviewToResponse(rv *domain.CallReview) storedReviewDTO {
	return storedReviewDTO{
		CallID:        rv.CallID,
		NeedsReview:   rv.NeedsReview,
		Action:        rv.Action,
		Priority:      rv.Priority,
		QualityScore:  rv.QualityScore,
		TriggerReason: rv.TriggerLabel,
		BlockAutoSave: rv.BlockAutoSave,
		ReviewedAt:    rv.ReviewedAt,
	}
}

func reportToResponse(rep *review.Report) reviewDTO {
	out := reviewDTO{
		CallID:                  rep.Review.CallID,
		NeedsReview:             rep.Review.NeedsReview,
		Action:                  rep.Review.Action,
		Priority:                rep.Review.Priority,
		QualityScore:            rep.Review.QualityScore,
		TriggerReason:           rep.TriggerReason,
		Reasons:                 rep.Result.Reasons,
		LowConfidenceFields:     nonNil(rep.Result.LowConfidenceFields),
		MissingRequiredFields:   nonNil(rep.Result.MissingRequiredFields),
		TranscriptionConfidence: rep.Result.TranscriptionConfidence,
		BlockAutoSave:           rep.Review.BlockAutoSave,
		Tier:                    rep.Summary.Tier,
		Message:                 rep.Summary.Message,
		ShouldNotifyUser:        rep.Summary.ShouldNotifyUser,
		Suggestions:             nonNil(rep.Summary.Suggestions),
		ReviewedAt:              rep.Review.ReviewedAt,
	}
	if out.Reasons == nil {
		out.Reasons = []quality.Reason{}
	}
	return out
}
