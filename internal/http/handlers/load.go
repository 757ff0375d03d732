package handlers

import (
	"net/http"

	"loadvoice-synqall/internal/logx"
)

// LoadHandler serves load workflow endpoints.
type LoadHandler struct {
	usecase loadUsecase
	logger  logx.Logger
}

// NewLoadHandler creates a new LoadHandler.
func NewLoadHandler(logger logx.Logger, uc loadUsecase) *LoadHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &LoadHandler{usecase: uc, logger: logger}
}

// Get handles GET /loads/{id}.
func (h *LoadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	l, err := h.usecase.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "load not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, loadToResponse(l))
}

// Workflow handles GET /loads/{id}/workflow.
// @Summary Load lifecycle view
// @Tags loads
// @Produce json
// @Param id path string true "Load ID"
// @Success 200 {object} workflowDTO
// @Failure 404 {object} ErrorResponse "load not found"
// @Router /loads/{id}/workflow [get]
func (h *LoadHandler) Workflow(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	wf, err := h.usecase.Workflow(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "load not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, workflowToResponse(wf))
}

// History handles GET /loads/{id}/history.
func (h *LoadHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	list, err := h.usecase.History(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err, "load not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, historyToResponse(list))
}

// ChangeStatus handles POST /loads/{id}/status.
// @Summary Move a load to another status
// @Tags loads
// @Accept json
// @Produce json
// @Param id path string true "Load ID"
// @Param request body changeStatusRequest true "Target status"
// @Success 200 {object} loadDTO
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 404 {object} ErrorResponse "load not found"
// @Failure 409 {object} ErrorResponse "concurrent modification"
// @Failure 422 {object} ErrorResponse "transition not allowed"
// @Router /loads/{id}/status [post]
func (h *LoadHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req changeStatusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Status == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "status is required")
		return
	}

	l, err := h.usecase.ChangeStatus(r.Context(), id, req.Status, actorOf(r, req.Actor))
	if err != nil {
		writeServiceError(h.logger, w, r, err, "load not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, loadToResponse(l))
}

// Reverse handles POST /loads/{id}/status/reverse. The body is optional.
func (h *LoadHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req reverseRequest
	if r.ContentLength > 0 {
		if ok := decodeJSON(h.logger, w, r, &req); !ok {
			return
		}
	}

	l, err := h.usecase.Reverse(r.Context(), id, actorOf(r, req.Actor))
	if err != nil {
		writeServiceError(h.logger, w, r, err, "load not found")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, loadToResponse(l))
}
