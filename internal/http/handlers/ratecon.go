package handlers

import (
	"net/http"

	"loadvoice-synqall/internal/logx"
)

// RateConHandler serves rate confirmation endpoints of a load.
type RateConHandler struct {
	usecase rateConUsecase
	logger  logx.Logger
}

// NewRateConHandler creates a new RateConHandler.
func NewRateConHandler(logger logx.Logger, uc rateConUsecase) *RateConHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &RateConHandler{usecase: uc, logger: logger}
}

// Event handles POST /loads/{id}/rate-confirmation/events.
func (h *RateConHandler) Event(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req rateConEventRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Event == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "event is required")
		return
	}

	res, err := h.usecase.HandleEvent(r.Context(), id, req.Event, req.Details)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "load not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, rateConResultToResponse(res))
}

// Eligibility handles GET /loads/{id}/rate-confirmation/eligibility.
func (h *RateConHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	e, err := h.usecase.Eligibility(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "load not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, eligibilityToResponse(e))
}
