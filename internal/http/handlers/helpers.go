package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"loadvoice-synqall/internal/apperr"
	"loadvoice-synqall/internal/logx"
	"loadvoice-synqall/internal/workflow"
)

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Error("json encode error", logx.String("req_id", reqID(r.Context())), logx.Err(err))
	}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error         string   `json:"error"`
	Kind          string   `json:"kind,omitempty"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeErrorBody(logger, w, r, status, ErrorResponse{Error: msg})
}

func writeErrorBody(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, body ErrorResponse) {
	logger.Info("http_error",
		logx.String("req_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("msg", body.Error),
	)
	writeJSON(logger, w, r, status, body)
}

// writeServiceError maps a service error onto a status code. notFound is the
// message used for apperr.ErrNotFound.
func writeServiceError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var te *workflow.TransitionError
	switch {
	case errors.As(err, &te):
		writeErrorBody(logger, w, r, http.StatusUnprocessableEntity, ErrorResponse{
			Error:         te.Message,
			Kind:          string(te.Kind),
			MissingFields: te.MissingFields,
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(logger, w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		writeError(logger, w, r, http.StatusNotFound, notFound)
	case errors.Is(err, apperr.ErrConflict):
		writeError(logger, w, r, http.StatusConflict, "resource was modified concurrently, retry")
	case errors.Is(err, context.DeadlineExceeded):
		writeError(logger, w, r, http.StatusGatewayTimeout, "timeout")
	default:
		logger.Error("request failed", logx.String("req_id", reqID(r.Context())), logx.Err(err))
		writeError(logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

const (
	bodyLimit = 1 << 20
)

func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data")
		return false
	}
	return true
}

func idFromURL(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

func actorOf(r *http.Request, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	if a := r.Header.Get("X-Actor"); a != "" {
		return a
	}
	return "api"
}
