package handlers

import (
	"net/http"

	"loadvoice-synqall/internal/logx"
	"loadvoice-synqall/internal/quality"
)

// ReviewHandler serves call review and quality preference endpoints.
type ReviewHandler struct {
	usecase reviewUsecase
	logger  logx.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(logger logx.Logger, uc reviewUsecase) *ReviewHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ReviewHandler{usecase: uc, logger: logger}
}

// Ingest handles POST /calls.
func (h *ReviewHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var req extractionRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	rep, err := h.usecase.Ingest(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err, "call not found")
		return
	}
	w.Header().Set("Location", "/calls/"+rep.Review.CallID.String()+"/review")
	writeJSON(h.logger, w, r, http.StatusCreated, reportToResponse(rep))
}

// Review handles POST /calls/{id}/review.
func (h *ReviewHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	rep, err := h.usecase.Evaluate(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "call not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, reportToResponse(rep))
}

// GetReview handles GET /calls/{id}/review.
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	rv, err := h.usecase.StoredReview(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "review not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, storedReviewToResponse(rv))
}

// Preferences handles GET /users/{id}/quality-preferences.
func (h *ReviewHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	o, err := h.usecase.Preferences(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "user not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, o)
}

// SetPreferences handles PUT /users/{id}/quality-preferences.
func (h *ReviewHandler) SetPreferences(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var o quality.Overrides
	if ok := decodeJSON(h.logger, w, r, &o); !ok {
		return
	}

	if err := h.usecase.SetPreferences(r.Context(), id, o); err != nil {
		writeServiceError(h.logger, w, r, err, "user not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, o)
}
